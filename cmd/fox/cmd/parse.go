package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Dump the desugared program of a Fox script",
	Long: `Parse a script and print each definition after desugaring,
one per line. Collection, tuple and if-then-else literals appear as
the postfix Core.* sequences the evaluator actually runs.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		ctx, err := compileFile(args[0])
		if err != nil {
			return err
		}
		fmt.Println(ctx.Program.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
