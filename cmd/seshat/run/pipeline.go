package run

import (
	"github.com/flarebyte/seshat-papyri/internal/args"
	"github.com/flarebyte/seshat-papyri/internal/config"
	"github.com/flarebyte/seshat-papyri/internal/person"
	"github.com/flarebyte/seshat-papyri/internal/processor"
)

const (
	defaultPersonName = "Alice Smith"
	defaultPersonAge  = 25
)

// executeRun performs the fixed demo sequence: write the planned files, read
// the planned (or discovered) files, normalize and optionally transform the
// positional args, then assemble the report document. Any I/O or Lua failure
// aborts the run with the processed log reflecting only the successful calls
// made before it.
func executeRun(cfg config.Config, argv []string) (map[string]any, error) {
	proc := processor.New(cfg.BasePath)

	for _, w := range cfg.Files.Write {
		if err := proc.WriteFile(w.Name, w.Content); err != nil {
			return nil, err
		}
	}

	readPlan := cfg.Files.Read
	if cfg.Discovery.Enabled {
		discovered, err := proc.Discover(cfg.Discovery.NoGitignore)
		if err != nil {
			return nil, err
		}
		readPlan = discovered
	}
	for _, name := range readPlan {
		if _, err := proc.ReadFile(name); err != nil {
			return nil, err
		}
	}

	// The binary name stands in as the conventional leading program name.
	normalized := args.Normalize(append([]string{"seshat"}, argv...))
	if cfg.Args.HasInline {
		transformed, err := args.Transform(cfg.Args.Inline, normalized)
		if err != nil {
			return nil, err
		}
		normalized = transformed
	}

	p := samplePerson(cfg.Person)
	doc := map[string]any{
		"adult":    p.IsAdult(),
		"args":     normalized,
		"greeting": p.Greet(),
		"person":   personDoc(p),
		"stats":    proc.Stats(),
	}
	return doc, nil
}

func samplePerson(spec config.Person) person.Person {
	name := defaultPersonName
	age := defaultPersonAge
	if spec.HasName {
		name = spec.Name
	}
	if spec.HasAge {
		age = spec.Age
	}
	p := person.New(name, age)
	if spec.HasEmail {
		p = p.WithEmail(spec.Email)
	}
	return p
}

func personDoc(p person.Person) map[string]any {
	doc := map[string]any{
		"age":  p.Age,
		"name": p.Name,
	}
	if p.Email != "" {
		doc["email"] = p.Email
	}
	return doc
}
