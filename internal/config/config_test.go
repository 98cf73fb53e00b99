package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCUE(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.cue")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestParseMinimal(t *testing.T) {
	path := writeCUE(t, `
configVersion: "1"
basePath: "notes"
`)
	c, err := Parse(path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.ConfigVersion != "1" || c.BasePath != "notes" {
		t.Fatalf("unexpected config: %+v", c)
	}
	if c.Person.HasName || c.Args.HasInline || c.Discovery.HasEnabled {
		t.Fatalf("optional sections should be absent: %+v", c)
	}
}

func TestParseFull(t *testing.T) {
	path := writeCUE(t, `
configVersion: "1"
basePath: "notes"
person: {
	name:  "Alice Smith"
	age:   25
	email: "alice@example.com"
}
args: {
	inline: "return args"
}
discovery: {
	enabled:     true
	noGitignore: true
}
files: {
	read: ["a.txt", "b.txt"]
	write: [{name: "c.txt", content: "hello"}]
}
output: {
	out:    "report.yaml"
	format: "json"
	pretty: true
}
`)
	c, err := Parse(path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !c.Person.HasName || c.Person.Name != "Alice Smith" || c.Person.Age != 25 {
		t.Fatalf("unexpected person: %+v", c.Person)
	}
	if !c.Person.HasEmail || c.Person.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %+v", c.Person)
	}
	if !c.Args.HasInline || c.Args.Inline != "return args" {
		t.Fatalf("unexpected args: %+v", c.Args)
	}
	if !c.Discovery.Enabled || !c.Discovery.NoGitignore {
		t.Fatalf("unexpected discovery: %+v", c.Discovery)
	}
	if len(c.Files.Read) != 2 || c.Files.Read[1] != "b.txt" {
		t.Fatalf("unexpected read plan: %+v", c.Files.Read)
	}
	if len(c.Files.Write) != 1 || c.Files.Write[0].Name != "c.txt" || c.Files.Write[0].Content != "hello" {
		t.Fatalf("unexpected write plan: %+v", c.Files.Write)
	}
	if c.Output.Out != "report.yaml" || c.Output.Format != "json" || !c.Output.Pretty {
		t.Fatalf("unexpected output: %+v", c.Output)
	}
}

func TestParseMissingRequiredFields(t *testing.T) {
	path := writeCUE(t, `configVersion: "1"`)
	_, err := Parse(path)
	if err == nil || !strings.Contains(err.Error(), "missing required field: basePath") {
		t.Fatalf("unexpected error: %v", err)
	}

	path = writeCUE(t, `basePath: "notes"`)
	_, err = Parse(path)
	if err == nil || !strings.Contains(err.Error(), "missing required field: configVersion") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseRejectsNonCUE(t *testing.T) {
	_, err := Parse("run.yaml")
	if err == nil || !strings.Contains(err.Error(), "unsupported config format") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseRejectsUnknownFormat(t *testing.T) {
	path := writeCUE(t, `
configVersion: "1"
basePath: "notes"
output: {format: "toml"}
`)
	_, err := Parse(path)
	if err == nil || !strings.Contains(err.Error(), "output.format") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseRejectsBadWriteEntry(t *testing.T) {
	path := writeCUE(t, `
configVersion: "1"
basePath: "notes"
files: {write: [{name: "c.txt"}]}
`)
	_, err := Parse(path)
	if err == nil || !strings.Contains(err.Error(), "files.write entry") {
		t.Fatalf("unexpected error: %v", err)
	}
}
