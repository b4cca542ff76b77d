package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/foxlang/fox/internal/config"
	"github.com/foxlang/fox/internal/diagnostics"
	"github.com/foxlang/fox/internal/engine"
	"github.com/foxlang/fox/internal/lexer"
	"github.com/foxlang/fox/internal/parser"
	"github.com/foxlang/fox/internal/pipeline"
	"github.com/foxlang/fox/internal/stdlib"
	"github.com/foxlang/fox/internal/token"
)

var trace bool

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a Fox script",
	Long: `Compile a Fox script and evaluate its "main" word.

Examples:
  # Run a script file
  fox run script.fox

  # Run with per-expression stack tracing on stderr
  fox run --trace script.fox`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&trace, "trace", false, "trace the stack before every expression (also FOX_TRACE)")
}

func runScript(_ *cobra.Command, args []string) error {
	ctx, err := compileFile(args[0])
	if err != nil {
		return err
	}

	eng := engine.New()
	stdlib.Register(eng, os.Stdout)
	if trace || config.TraceEnabled() {
		eng.Trace = os.Stderr
	}

	eng.LoadProgram(ctx.Program)

	if !eng.Definitions.Has(config.EntryPointName) {
		return fmt.Errorf("%s: no %q definition", args[0], config.EntryPointName)
	}
	if err := eng.Invoke(config.EntryPointName); err != nil {
		diag := diagnostics.NewPhaseError(diagnostics.PhaseRuntime, diagnostics.ErrR001, token.Token{}, err.Error())
		diag.File = args[0]
		fmt.Fprintln(os.Stderr, diag.Error())
		return fmt.Errorf("evaluation failed")
	}
	return nil
}

// compileFile reads a script and runs the lex and parse stages,
// printing diagnostics to stderr on failure.
func compileFile(path string) (*pipeline.PipelineContext, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	ctx := pipeline.NewPipelineContext(string(content))
	ctx.FilePath = path

	p := pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{})
	ctx = p.Run(ctx)

	if ctx.HasErrors() {
		for _, e := range ctx.Errors {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		return nil, fmt.Errorf("compilation failed with %d error(s)", len(ctx.Errors))
	}
	return ctx, nil
}
