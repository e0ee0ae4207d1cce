package cli

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/seb/sebgrep/internal/input"
	"github.com/seb/sebgrep/internal/matcher"
	"github.com/seb/sebgrep/internal/output"
	"github.com/seb/sebgrep/internal/scan"
)

// Run executes the search with the given config.
// Returns exit code: 0 = something was emitted, 1 = nothing, 2 = error.
func Run(cfg Config) int {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level: log.WarnLevel,
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid options", "err", err)
		return 2
	}

	policy, err := matcher.NewPolicy(cfg.PolicyOptions())
	if err != nil {
		logger.Error("invalid options", "err", err)
		return 2
	}

	var formatter output.Formatter
	if cfg.JSONOutput {
		formatter = output.NewJSONFormatter(policy)
	} else {
		formatter = output.NewTextFormatter(policy)
	}

	sources, err := input.Resolve(cfg.Paths)
	if err != nil {
		logger.Error("cannot open source", "err", err)
		return 2
	}

	w := output.NewWriter()
	engine := scan.New(policy, formatter)

	emitted := false
	failed := false
	for r := range engine.Scan(sources) {
		if r.Err != nil {
			logger.Warn("read error", "err", r.Err)
			failed = true
			continue
		}
		if err := w.Write(r.Data); err != nil {
			logger.Error("write failed", "err", err)
			return 2
		}
		emitted = true
	}

	switch {
	case failed:
		return 2
	case emitted:
		return 0
	default:
		return 1
	}
}
