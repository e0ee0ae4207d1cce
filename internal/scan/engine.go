// Package scan streams lines from resolved sources through the match
// policy and yields formatted results lazily to the caller.
package scan

import (
	"fmt"
	"io"
	"iter"

	"github.com/seb/sebgrep/internal/input"
	"github.com/seb/sebgrep/internal/matcher"
	"github.com/seb/sebgrep/internal/output"
)

// Result is one formatted output record, or a read error for the source
// that produced it. Data is freshly allocated per result; callers may
// retain it.
type Result struct {
	Data []byte
	Err  error
}

// Engine drives the per-source scan loop.
type Engine struct {
	policy    matcher.Policy
	formatter output.Formatter
}

// New creates an Engine for the given policy and formatter.
func New(p matcher.Policy, f output.Formatter) *Engine {
	return &Engine{policy: p, formatter: f}
}

// Scan returns a lazy sequence of results over the given sources, in
// order. Sources are consumed one at a time; no line of a source is
// read before the previous source's results are drained. Every source
// is closed exactly once on every exit path, including the consumer
// abandoning the sequence early.
func (e *Engine) Scan(sources []*input.Source) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		defer func() {
			for _, src := range sources {
				src.Close()
			}
		}()
		for _, src := range sources {
			if !e.scanSource(src, yield) {
				return
			}
		}
	}
}

// scanSource runs the per-source state machine. Returns false when the
// consumer stopped pulling.
func (e *Engine) scanSource(src *input.Source, yield func(Result) bool) bool {
	defer src.Close()

	matched := 0
	num := 0
	var readErr error

	for {
		text, err := src.ReadLine()
		if err != nil && err != io.EOF {
			// A partial line from a failed read is never emitted.
			readErr = err
			break
		}
		if len(text) > 0 {
			num++
			if e.policy.Match(text) {
				matched++
				if e.policy.Mode == matcher.ModeFilesWithoutMatch {
					// First match disqualifies the source; stop reading it.
					break
				}
				line := matcher.Line{Source: src.Name, Num: num, Text: text}
				if !yield(Result{Data: e.formatter.Format(nil, line)}) {
					return false
				}
				if e.policy.Mode == matcher.ModeFilesWithMatch {
					break
				}
			}
		}
		if err == io.EOF {
			break
		}
	}

	if readErr != nil {
		// Release before the error is observed.
		src.Close()
		return yield(Result{Err: fmt.Errorf("read %s: %w", src.Name, readErr)})
	}

	if e.policy.Mode == matcher.ModeFilesWithoutMatch && matched == 0 {
		line := matcher.Line{Source: src.Name, Num: matcher.NoLineNum}
		return yield(Result{Data: e.formatter.Format(nil, line)})
	}
	return true
}
