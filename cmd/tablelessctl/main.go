// Command tablelessctl inspects tableless model definitions and
// round-trips records through their query-string form.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tuannm99/tableless"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tablelessctl:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tablelessctl",
		Short:         "Inspect tableless model definitions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newColumnsCmd())
	root.AddCommand(newEncodeCmd())
	root.AddCommand(newDecodeCmd())
	return root
}

// loadDefinition reads a YAML definition file, optionally overriding
// its mode.
func loadDefinition(path, modeOverride string) (*tableless.Definition, error) {
	cfg, err := tableless.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if modeOverride != "" {
		cfg.Mode = modeOverride
	}
	return cfg.Definition()
}

func newColumnsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "columns <config.yaml>",
		Short: "List the declared pseudo-columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDefinition(args[0], "")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "model %s (mode %s)\n", d.Name(), d.Mode())
			for _, c := range d.Columns() {
				null := "null"
				if !c.Nullable {
					null = "not null"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %-20s %-10s %s", c.Name, c.SQLType, null)
				if c.Default != nil {
					fmt.Fprintf(cmd.OutOrStdout(), " default %v", c.Default)
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
}

func newEncodeCmd() *cobra.Command {
	var (
		prefix string
		mode   string
	)

	cmd := &cobra.Command{
		Use:   "encode <config.yaml> [key=value...]",
		Short: "Build a record and print its query-string form",
		Example: `  tablelessctl encode contact.yaml name=alice age=30
  tablelessctl encode contact.yaml name=alice --prefix contact`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDefinition(args[0], mode)
			if err != nil {
				return err
			}

			attrs := make(map[string]any, len(args)-1)
			for _, arg := range args[1:] {
				k, v, ok := strings.Cut(arg, "=")
				if !ok || k == "" {
					return fmt.Errorf("attribute %q is not key=value", arg)
				}
				attrs[k] = v
			}

			fmt.Fprintln(cmd.OutOrStdout(), d.New(attrs).ToQueryString(prefix))
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "Wrap each key as prefix[key]")
	cmd.Flags().StringVar(&mode, "mode", "", "Override the configured mode")

	return cmd
}

func newDecodeCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "decode <config.yaml> <querystring>",
		Short: "Parse a query string into record attributes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDefinition(args[0], mode)
			if err != nil {
				return err
			}

			r := d.FromQueryString(args[1])
			for k, v := range r.Attributes() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%v (%T)\n", k, v, v)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Override the configured mode")

	return cmd
}
