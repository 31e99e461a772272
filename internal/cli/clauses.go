package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/legalmate/legalmate/internal/clauses"
)

// clausesCmd represents the clauses command
var clausesCmd = &cobra.Command{
	Use:   "clauses",
	Short: "List the builtin clause library",
	Long: `Display the builtin clauses available for --clauses, with the
mandatory ones marked.

Example:
  legalmate clauses`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		mandatory := make(map[string]bool)
		for _, m := range clauses.Mandatory() {
			mandatory[m.ID] = true
		}

		for _, c := range clauses.Builtin() {
			marker := " "
			if mandatory[c.ID] {
				marker = "*"
			}
			fmt.Printf("%s %-16s %s\n", marker, c.ID, c.Title)
			if verbose {
				fmt.Printf("    %s\n", c.Content)
			}
		}
		fmt.Println("\n* mandatory: drafts without these get a warning")
	},
}

func init() {
	rootCmd.AddCommand(clausesCmd)
}
