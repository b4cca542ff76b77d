package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/foxlang/fox/internal/lexer"
	"github.com/foxlang/fox/internal/token"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Dump the token stream of a Fox script",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}

		l := lexer.New(string(content))
		for {
			tok := l.NextToken()
			fmt.Println(tok)
			if tok.Type == token.EOF {
				return nil
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
}
