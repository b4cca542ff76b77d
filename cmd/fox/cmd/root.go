package cmd

import (
	"github.com/spf13/cobra"
)

// Version information (set by build flags)
var Version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:   "fox",
	Short: "Fox concatenative language interpreter",
	Long: `fox runs programs written in the Fox concatenative language.

A Fox program is a list of word definitions; each word is a postfix
sequence of literals, terms, locals and quotations evaluated against a
shared operand stack. Evaluation starts at the word "main".`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
