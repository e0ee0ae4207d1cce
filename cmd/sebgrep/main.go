package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seb/sebgrep/internal/cli"
	"github.com/seb/sebgrep/internal/matcher"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var (
		cfg          cli.Config
		withFilename bool
		noFilename   bool
	)
	exit := 0

	root := &cobra.Command{
		Use:   "sebgrep [flags] expr [file_paths...]",
		Short: "grep for literal substrings",
		Long: `sebgrep scans files (or standard input) line by line and prints the
lines containing the expression. Newlines in the expression separate
alternative literal substrings; a line matches when it contains any of
them. No regular expressions, ever.`,
		Version:       version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case withFilename:
				cfg.FileNames = matcher.FileNameAlways
			case noFilename:
				cfg.FileNames = matcher.FileNameNever
			}
			cfg.Expr = args[0]
			cfg.Paths = args[1:]
			exit = cli.Run(cfg)
			return nil
		},
	}

	flags := root.Flags()
	flags.BoolVarP(&cfg.Invert, "invert-match", "v", false, "select lines not matching the expression")
	flags.BoolVarP(&cfg.IgnoreCase, "ignore-case", "i", false, "ignore case when comparing input with the expression")
	flags.BoolVarP(&cfg.LineNumbers, "line-number", "n", false, "prefix each line with its 1-based line number")
	flags.BoolVarP(&withFilename, "with-filename", "H", false, "print the source name for each match")
	flags.BoolVarP(&noFilename, "no-filename", "h", false, "do not print the source name for each match")
	flags.BoolVarP(&cfg.FilesWithMatches, "files-with-matches", "l", false, "print only names of sources with a match, stopping each scan at the first one")
	flags.BoolVarP(&cfg.FilesWithoutMatch, "files-without-match", "L", false, "print only names of sources without a match")
	flags.BoolVar(&cfg.JSONOutput, "json", false, "emit results as JSON Lines")
	// -h is taken by --no-filename, so register --help ourselves
	// before cobra installs its default shorthand.
	flags.Bool("help", false, "show this help message and exit")

	root.MarkFlagsMutuallyExclusive("with-filename", "no-filename")
	root.MarkFlagsMutuallyExclusive("files-with-matches", "files-without-match")

	root.SetArgs(append(cli.LoadConfigArgs(), args...))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sebgrep:", err)
		return 2
	}
	return exit
}
