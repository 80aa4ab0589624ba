// Command apistub converts API documentation pages into source stubs.
//
// Object pages carry an annotated schema block whose documented fields
// become property accessors. Method pages carry a container of method
// sections, each of which becomes a function stub with a docstring.
//
// # Usage
//
//	apistub [flags] <file|-> [file ...]
//	apistub version
//
// Inputs are processed in order and their output is concatenated. Use
// --source to force how inputs are read and --format to choose between
// stubs, a YAML dump of the extracted records, and a JSON Schema.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/apistub/log"
	"go.jacobcolvin.com/apistub/pipeline"
	"go.jacobcolvin.com/apistub/profile"
	"go.jacobcolvin.com/apistub/version"
)

func main() {
	cmd, prof := newRootCmd(os.Stdin, os.Stdout, os.Stderr)

	err := errors.Join(cmd.Execute(), prof.Stop())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the root command. The returned [profile.Profiler] is
// started before any command runs and must be stopped by the caller.
func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) (*cobra.Command, *profile.Profiler) {
	cfg := pipeline.NewConfig()
	logCfg := log.NewConfig()
	profCfg := profile.NewConfig()
	prof := profCfg.NewProfiler()

	rootCmd := &cobra.Command{
		Use:   "apistub [flags] <file|-> [file ...]",
		Short: "Generate source stubs from API documentation pages",
		Long: `apistub reads API documentation pages and writes source stubs.

Annotated schema blocks, either raw or in the first <pre> of an HTML page,
become property accessors carrying the field comments as docstrings. HTML
pages with a method container become function stubs documenting the title,
endpoints, description, link, and return value of each method.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(stderr)
			if err != nil {
				return err //nolint:wrapcheck // Already wrapped.
			}

			slog.SetDefault(slog.New(handler))

			return prof.Start() //nolint:wrapcheck // Already wrapped.
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return run(cfg, args, stdin, stdout)
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profCfg.RegisterFlags(rootCmd.PersistentFlags())

	for _, register := range []func(*cobra.Command) error{cfg.RegisterCompletions, logCfg.RegisterCompletions} {
		err := register(rootCmd)
		if err != nil {
			fmt.Fprintf(stderr, "register completions: %v\n", err)
		}
	}

	rootCmd.AddCommand(newVersionCmd(stdout))

	return rootCmd, prof
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(stdout, version.Get())
			if err != nil {
				return fmt.Errorf("%w: %w", pipeline.ErrWriteOutput, err)
			}

			return nil
		},
	}
}

func run(cfg *pipeline.Config, args []string, stdin io.Reader, stdout io.Writer) error {
	gen, err := cfg.NewGenerator()
	if err != nil {
		return err //nolint:wrapcheck // Already wrapped.
	}

	inputs, err := pipeline.ReadInputs(stdin, args...)
	if err != nil {
		return err //nolint:wrapcheck // Already wrapped.
	}

	out, err := gen.Generate(inputs...)
	if err != nil {
		return err //nolint:wrapcheck // Already wrapped.
	}

	slog.Debug("generated output",
		slog.Int("inputs", len(inputs)),
		slog.Int("bytes", len(out)),
		slog.String("output", cfg.Output),
	)

	return pipeline.WriteOutput(stdout, cfg.Output, out) //nolint:wrapcheck // Already wrapped.
}
