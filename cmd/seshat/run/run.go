package run

import (
	"fmt"

	"github.com/flarebyte/seshat-papyri/internal/config"
	"github.com/flarebyte/seshat-papyri/internal/report"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
)

// Cmd represents the `seshat run` command. Positional args are fed through
// the argument normalizer and show up in the report.
var Cmd = &cobra.Command{
	Use:           "run [args...]",
	Short:         "Run the file-processing demo defined in a config",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgPath == "" {
			return runExitError{code: exitCodeConfig, msg: "missing required flag: --config"}
		}
		cfg, err := config.Parse(cfgPath)
		if err != nil {
			return runExitError{code: exitCodeConfig, msg: err.Error()}
		}
		doc, err := executeRun(cfg, args)
		if err != nil {
			return err
		}
		data, err := renderReport(cfg.Output, doc)
		if err != nil {
			return err
		}
		return report.Write(outPath(cfg.Output), data)
	},
}

func outPath(out config.Output) string {
	if out.HasOut {
		return out.Out
	}
	return "-"
}

// renderReport picks the configured format; YAML is the default.
func renderReport(out config.Output, doc map[string]any) ([]byte, error) {
	switch {
	case !out.HasFormat, out.Format == "yaml":
		return report.MarshalYAML(doc)
	case out.Format == "json":
		return report.MarshalJSON(doc, out.Pretty)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", out.Format)
	}
}

func init() {
	Cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to config file (.cue)")
}
