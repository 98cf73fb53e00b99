package config

import (
	"fmt"

	"cuelang.org/go/cue"
)

// Config is the parsed run configuration.
// Required fields:
//   - configVersion: string
//   - basePath: string
//
// Everything else is optional and carries a presence flag so callers can tell
// "absent" from "zero".
type Config struct {
	ConfigVersion string
	BasePath      string
	Person        Person
	Args          Args
	Discovery     Discovery
	Files         Files
	Output        Output
}

// Person holds the optional sample person and presence flags.
type Person struct {
	Name     string
	Age      int
	Email    string
	HasName  bool
	HasAge   bool
	HasEmail bool
}

// Args holds the optional inline Lua transform over the normalized args.
type Args struct {
	Inline    string
	HasInline bool
}

// Discovery holds optional discovery config and presence flags.
type Discovery struct {
	Enabled        bool
	NoGitignore    bool
	HasEnabled     bool
	HasNoGitignore bool
}

// WriteEntry names a file to write and its content.
type WriteEntry struct {
	Name    string
	Content string
}

// Files lists the read and write plans for the run.
type Files struct {
	Read  []string
	Write []WriteEntry
}

// Output holds optional output config.
type Output struct {
	Out       string
	Format    string
	Pretty    bool
	HasOut    bool
	HasFormat bool
	HasPretty bool
}

// Parse validates and extracts the run configuration from a CUE file.
func Parse(path string) (Config, error) {
	v, err := compileCUE(path)
	if err != nil {
		return Config{}, err
	}
	if err := requireStringField(v, "configVersion"); err != nil {
		return Config{}, err
	}
	if err := requireStringField(v, "basePath"); err != nil {
		return Config{}, err
	}

	var c Config
	if err := v.LookupPath(cue.ParsePath("configVersion")).Decode(&c.ConfigVersion); err != nil {
		return Config{}, fmt.Errorf("invalid value for configVersion: %v", err)
	}
	if err := v.LookupPath(cue.ParsePath("basePath")).Decode(&c.BasePath); err != nil {
		return Config{}, fmt.Errorf("invalid value for basePath: %v", err)
	}

	parsePerson(v, &c.Person)
	parseArgs(v, &c.Args)
	parseDiscovery(v, &c.Discovery)
	if err := parseFiles(v, &c.Files); err != nil {
		return Config{}, err
	}
	if err := parseOutput(v, &c.Output); err != nil {
		return Config{}, err
	}
	return c, nil
}

func parsePerson(v cue.Value, out *Person) {
	pv := v.LookupPath(cue.ParsePath("person"))
	if !pv.Exists() {
		return
	}
	nv := pv.LookupPath(cue.ParsePath("name"))
	if nv.Exists() && nv.Kind() == cue.StringKind {
		if err := nv.Decode(&out.Name); err == nil {
			out.HasName = true
		}
	}
	av := pv.LookupPath(cue.ParsePath("age"))
	if av.Exists() && av.Kind() == cue.IntKind {
		if err := av.Decode(&out.Age); err == nil {
			out.HasAge = true
		}
	}
	ev := pv.LookupPath(cue.ParsePath("email"))
	if ev.Exists() && ev.Kind() == cue.StringKind {
		if err := ev.Decode(&out.Email); err == nil {
			out.HasEmail = true
		}
	}
}

func parseArgs(v cue.Value, out *Args) {
	av := v.LookupPath(cue.ParsePath("args"))
	if !av.Exists() {
		return
	}
	iv := av.LookupPath(cue.ParsePath("inline"))
	if iv.Exists() && iv.Kind() == cue.StringKind {
		if err := iv.Decode(&out.Inline); err == nil {
			out.HasInline = true
		}
	}
}

func parseDiscovery(v cue.Value, out *Discovery) {
	dv := v.LookupPath(cue.ParsePath("discovery"))
	if !dv.Exists() {
		return
	}
	ev := dv.LookupPath(cue.ParsePath("enabled"))
	if ev.Exists() && ev.Kind() == cue.BoolKind {
		if err := ev.Decode(&out.Enabled); err == nil {
			out.HasEnabled = true
		}
	}
	nv := dv.LookupPath(cue.ParsePath("noGitignore"))
	if nv.Exists() && nv.Kind() == cue.BoolKind {
		if err := nv.Decode(&out.NoGitignore); err == nil {
			out.HasNoGitignore = true
		}
	}
}

func parseFiles(v cue.Value, out *Files) error {
	fv := v.LookupPath(cue.ParsePath("files"))
	if !fv.Exists() {
		return nil
	}
	rv := fv.LookupPath(cue.ParsePath("read"))
	if rv.Exists() {
		if rv.Kind() != cue.ListKind {
			return fmt.Errorf("invalid type for field: files.read (expected list)")
		}
		if err := rv.Decode(&out.Read); err != nil {
			return fmt.Errorf("invalid value for files.read: %v", err)
		}
	}
	wv := fv.LookupPath(cue.ParsePath("write"))
	if wv.Exists() {
		if wv.Kind() != cue.ListKind {
			return fmt.Errorf("invalid type for field: files.write (expected list)")
		}
		iter, err := wv.List()
		if err != nil {
			return fmt.Errorf("invalid value for files.write: %v", err)
		}
		for iter.Next() {
			item := iter.Value()
			var w WriteEntry
			if err := requireStringField(item, "name"); err != nil {
				return fmt.Errorf("files.write entry: %v", err)
			}
			if err := requireStringField(item, "content"); err != nil {
				return fmt.Errorf("files.write entry: %v", err)
			}
			if err := item.LookupPath(cue.ParsePath("name")).Decode(&w.Name); err != nil {
				return fmt.Errorf("invalid value for files.write name: %v", err)
			}
			if err := item.LookupPath(cue.ParsePath("content")).Decode(&w.Content); err != nil {
				return fmt.Errorf("invalid value for files.write content: %v", err)
			}
			out.Write = append(out.Write, w)
		}
	}
	return nil
}

func parseOutput(v cue.Value, out *Output) error {
	ov := v.LookupPath(cue.ParsePath("output"))
	if !ov.Exists() {
		return nil
	}
	pv := ov.LookupPath(cue.ParsePath("out"))
	if pv.Exists() && pv.Kind() == cue.StringKind {
		if err := pv.Decode(&out.Out); err == nil {
			out.HasOut = true
		}
	}
	fv := ov.LookupPath(cue.ParsePath("format"))
	if fv.Exists() && fv.Kind() == cue.StringKind {
		if err := fv.Decode(&out.Format); err == nil {
			out.HasFormat = true
		}
	}
	if out.HasFormat && out.Format != "yaml" && out.Format != "json" {
		return fmt.Errorf("invalid value for output.format: %q (expected yaml or json)", out.Format)
	}
	bv := ov.LookupPath(cue.ParsePath("pretty"))
	if bv.Exists() && bv.Kind() == cue.BoolKind {
		if err := bv.Decode(&out.Pretty); err == nil {
			out.HasPretty = true
		}
	}
	return nil
}
