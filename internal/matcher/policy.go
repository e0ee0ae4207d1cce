package matcher

import (
	"fmt"
	"strings"
)

// Mode selects what the scan emits.
type Mode int

const (
	ModeNormal            Mode = iota // matching lines
	ModeFilesWithMatch                // names of sources with at least one match
	ModeFilesWithoutMatch             // names of sources with no match
)

// FileNameMode controls the source-name prefix on output lines.
type FileNameMode int

const (
	FileNameAuto   FileNameMode = iota // show when more than one source is requested
	FileNameAlways                     // -H
	FileNameNever                      // -h
)

// Policy is the resolved matching and formatting configuration.
// Immutable after NewPolicy; everything downstream reads it, nothing
// mutates it.
type Policy struct {
	Patterns    []string // canonical comparison form, newline-split from the expression
	IgnoreCase  bool
	Invert      bool
	LineNumbers bool
	ShowName    bool
	Mode        Mode
}

// PolicyOptions is the validated option set a Policy is built from.
// NumSources is the number of *requested* sources, counted before any
// of them is opened, so the ShowName default is stable even when a
// later open fails.
type PolicyOptions struct {
	Expr              string
	NumSources        int
	IgnoreCase        bool
	Invert            bool
	LineNumbers       bool
	FileNames         FileNameMode
	FilesWithMatches  bool
	FilesWithoutMatch bool
}

// NewPolicy resolves options into a Policy. It fails before any I/O on
// contradictory input.
func NewPolicy(opts PolicyOptions) (Policy, error) {
	if opts.FilesWithMatches && opts.FilesWithoutMatch {
		return Policy{}, fmt.Errorf("cannot use -l (files-with-matches) and -L (files-without-match) together")
	}

	expr := opts.Expr
	if opts.IgnoreCase {
		expr = strings.ToLower(expr)
	}

	p := Policy{
		// Patterns are lowercased once here, not per comparison.
		Patterns:    strings.Split(expr, "\n"),
		IgnoreCase:  opts.IgnoreCase,
		Invert:      opts.Invert,
		LineNumbers: opts.LineNumbers,
	}

	switch opts.FileNames {
	case FileNameAlways:
		p.ShowName = true
	case FileNameNever:
		p.ShowName = false
	default:
		p.ShowName = opts.NumSources > 1
	}

	switch {
	case opts.FilesWithMatches:
		p.Mode = ModeFilesWithMatch
	case opts.FilesWithoutMatch:
		p.Mode = ModeFilesWithoutMatch
	default:
		p.Mode = ModeNormal
	}

	return p, nil
}

// FilesOnly reports whether output degenerates to source names.
func (p Policy) FilesOnly() bool {
	return p.Mode == ModeFilesWithMatch || p.Mode == ModeFilesWithoutMatch
}
