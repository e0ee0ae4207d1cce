package cli

import (
	"fmt"

	"github.com/seb/sebgrep/internal/matcher"
)

// Config holds the raw option set for a sebgrep run, as tokenized by
// the command line. It is resolved into a matcher.Policy before any
// scanning.
type Config struct {
	Expr              string
	Paths             []string
	IgnoreCase        bool
	Invert            bool
	LineNumbers       bool
	FileNames         matcher.FileNameMode
	FilesWithMatches  bool
	FilesWithoutMatch bool
	JSONOutput        bool
}

// Validate checks that the config is coherent and returns an error if
// not. Runs before any I/O.
func (c *Config) Validate() error {
	if c.FilesWithMatches && c.FilesWithoutMatch {
		return fmt.Errorf("cannot use -l (files-with-matches) and -L (files-without-match) together")
	}
	return nil
}

// PolicyOptions maps the config onto policy construction input. The
// source count is taken from the requested paths, before any open.
func (c *Config) PolicyOptions() matcher.PolicyOptions {
	numSources := len(c.Paths)
	if numSources == 0 {
		numSources = 1 // stdin
	}
	return matcher.PolicyOptions{
		Expr:              c.Expr,
		NumSources:        numSources,
		IgnoreCase:        c.IgnoreCase,
		Invert:            c.Invert,
		LineNumbers:       c.LineNumbers,
		FileNames:         c.FileNames,
		FilesWithMatches:  c.FilesWithMatches,
		FilesWithoutMatch: c.FilesWithoutMatch,
	}
}
