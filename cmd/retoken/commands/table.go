package commands

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/retoken/cmd/retoken/opts"
	"github.com/walteh/retoken/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// NewTableCmd creates a new table command
func NewTableCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Show the replacement table",
		Long: `Table prints the built-in replacement table in the order the rules apply.
Rules whose order matters are listed after the table:
- shadowed: an earlier rule rewrites every match of this rule first
- chained: this rule rewrites text produced by an earlier rule`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := o.Config.Table

			data := pterm.TableData{{"#", "old", "new"}}
			for i, rule := range table.Rules {
				data = append(data, []string{strconv.Itoa(i), rule.Old, rule.New})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n\n", o.Config)

			if err := pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(out).Render(); err != nil {
				return errors.Errorf("rendering table: %w", err)
			}

			conflicts := table.Conflicts()
			if len(conflicts) == 0 {
				return nil
			}

			fmt.Fprintln(out)
			console := log.FromContext(cmd.Context())
			for _, c := range conflicts {
				console.Warningf("%s: %s", c.Kind, table.Describe(c))
			}
			return nil
		},
	}

	return cmd
}
