package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/animesh-sketch/red-flag-identifier/internal/analysis"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect detection rules",
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in rule catalog",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tSEVERITY\tPATTERN\tDESCRIPTION")
		for _, r := range analysis.BuiltinRules() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Category, r.Severity, r.Pattern, r.Description)
		}
		w.Flush()
	},
}

var rulesCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a custom rules file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rules, err := analysis.LoadRulesFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitUsageError
			return nil
		}
		fmt.Fprintf(os.Stdout, "%s: %d rule(s), all patterns compile\n", args[0], len(rules))
		return nil
	},
}

func init() {
	rulesCmd.AddCommand(rulesListCmd)
	rulesCmd.AddCommand(rulesCheckCmd)
}
