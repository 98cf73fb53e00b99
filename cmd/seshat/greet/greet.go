package greet

import (
	"fmt"
	"os"

	"github.com/flarebyte/seshat-papyri/internal/person"
	"github.com/flarebyte/seshat-papyri/internal/report"
	"github.com/spf13/cobra"
)

var (
	flagName  string
	flagAge   int
	flagEmail string
	flagJSON  bool
)

// Cmd represents the `seshat greet` command.
var Cmd = &cobra.Command{
	Use:           "greet",
	Short:         "Print the greeting for a person",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := person.New(flagName, flagAge)
		if flagEmail != "" {
			p = p.WithEmail(flagEmail)
		}
		if flagJSON {
			out := map[string]any{
				"adult":    p.IsAdult(),
				"age":      p.Age,
				"greeting": p.Greet(),
				"name":     p.Name,
			}
			if p.Email != "" {
				out["email"] = p.Email
			}
			b, err := report.MarshalJSON(out, true)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(b)
			return err
		}
		if _, err := fmt.Fprintln(os.Stdout, p.Greet()); err != nil {
			return err
		}
		_, err := fmt.Fprintf(os.Stdout, "Is adult: %t\n", p.IsAdult())
		return err
	},
}

func init() {
	Cmd.Flags().StringVar(&flagName, "name", "Alice Smith", "Person name")
	Cmd.Flags().IntVar(&flagAge, "age", 25, "Person age")
	Cmd.Flags().StringVar(&flagEmail, "email", "", "Optional person email")
	Cmd.Flags().BoolVar(&flagJSON, "json", false, "Print a JSON object instead of text")
}
