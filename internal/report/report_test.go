package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func sampleDoc() map[string]any {
	return map[string]any{
		"greeting": "Hello, I'm Alice Smith and I'm 25 years old",
		"adult":    true,
		"args":     []string{"HELLO", "WORLD"},
		"stats": map[string]any{
			"processed_files_count": 2,
			"base_path":             "notes",
			"files":                 []string{"a.txt", "a.txt"},
		},
	}
}

func TestMarshalYAMLCanonical(t *testing.T) {
	b, err := MarshalYAML(sampleDoc())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := "adult: true\n" +
		"args:\n" +
		"  - HELLO\n" +
		"  - WORLD\n" +
		"greeting: Hello, I'm Alice Smith and I'm 25 years old\n" +
		"stats:\n" +
		"  base_path: notes\n" +
		"  files:\n" +
		"    - a.txt\n" +
		"    - a.txt\n" +
		"  processed_files_count: 2\n"
	if string(b) != want {
		t.Fatalf("unexpected canonical output\nwant:\n%s\ngot:\n%s", want, string(b))
	}
}

func TestMarshalYAMLRewriteStable(t *testing.T) {
	b1, err := MarshalYAML(sampleDoc())
	if err != nil {
		t.Fatalf("marshal first: %v", err)
	}
	b2, err := MarshalYAML(sampleDoc())
	if err != nil {
		t.Fatalf("marshal second: %v", err)
	}
	if !bytes.Equal(b1, b2) {
		t.Fatalf("not rewrite-stable\nfirst:\n%s\nsecond:\n%s", string(b1), string(b2))
	}
}

func TestMarshalYAMLEmptyDoc(t *testing.T) {
	b, err := MarshalYAML(map[string]any{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "{}\n" {
		t.Fatalf("unexpected output: %q", string(b))
	}
}

func TestMarshalJSONCompact(t *testing.T) {
	b, err := MarshalJSON(map[string]any{"b": 1, "a": []string{"x"}}, false)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"a":["x"],"b":1}` + "\n"
	if string(b) != want {
		t.Fatalf("unexpected output: %q", string(b))
	}
}

func TestMarshalJSONPretty(t *testing.T) {
	b, err := MarshalJSON(map[string]any{"a": 1}, true)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := "{\n  \"a\": 1\n}\n"
	if string(b) != want {
		t.Fatalf("unexpected output: %q", string(b))
	}
}

func TestWriteCreatesParentDirs(t *testing.T) {
	out := filepath.Join(t.TempDir(), "deep", "report.yaml")
	if err := Write(out, []byte("adult: true\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "adult: true\n" {
		t.Fatalf("unexpected content: %q", string(b))
	}
}
