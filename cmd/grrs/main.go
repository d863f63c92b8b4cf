package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/localrivet/grrs"
)

var version = "dev" // Will be set during build

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// cliOptions holds the flag values of the root command
type cliOptions struct {
	outfile   string
	encoding  string
	verbosity verbosity
}

func newRootCmd() *cobra.Command {
	var opts cliOptions

	cmd := &cobra.Command{
		Use:   "grrs [flags] PATTERN PATH",
		Short: "Search for a pattern in a file and display the lines that contain it",
		Long: `grrs reads a file line by line and prints every line containing PATTERN,
prefixed with its line number. PATTERN is a literal, case-sensitive substring.

EXAMPLES:
  grrs "test" notes.txt                    # Print matches to standard output
  grrs -o matches.txt "test" notes.txt     # Write matches to matches.txt (replaced each run)
  grrs -v "test" notes.txt                 # Log progress to standard error
  grrs --encoding latin1 "café" menu.txt   # Decode a non-UTF-8 input`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, &opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.outfile, "outfile", "o", "", "The path to the output file to write to")
	cmd.Flags().StringVar(&opts.encoding, "encoding", "", "Text encoding of the input file (default: detect from byte order mark)")
	opts.verbosity.addFlags(cmd.PersistentFlags())

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func runSearch(cmd *cobra.Command, opts *cliOptions, args []string) error {
	pattern, path := args[0], args[1]

	logger := opts.verbosity.logger(cmd.ErrOrStderr())
	defer func() { _ = logger.Sync() }()

	searchOpts := []grrs.Option{
		grrs.WithOutput(cmd.OutOrStdout()),
		grrs.WithLogger(logger),
	}
	if opts.outfile != "" {
		searchOpts = append(searchOpts, grrs.WithOutfile(opts.outfile))
	}
	if opts.encoding != "" {
		searchOpts = append(searchOpts, grrs.WithEncoding(opts.encoding))
	}

	_, err := grrs.Grep(cmd.Context(), pattern, path, searchOpts...)
	return err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "grrs %s\n", version)
		},
	}
}

var errorPrefix = color.New(color.FgRed, color.Bold)

func printError(w io.Writer, err error) {
	errorPrefix.Fprint(w, "Error:")
	fmt.Fprintf(w, " %v\n", err)
}
