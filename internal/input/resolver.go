package input

import (
	"fmt"
	"io"
	"os"
)

// StdinName is the display name of the standard-input source.
const StdinName = "stdin"

// Resolve turns the requested paths into opened sources, in order. An
// empty path list yields a single source bound to standard input. Every
// file is opened up front; if any open fails, sources opened so far are
// closed and the failure is returned with the offending path.
func Resolve(paths []string) ([]*Source, error) {
	if len(paths) == 0 {
		return []*Source{NewSource(StdinName, io.NopCloser(os.Stdin))}, nil
	}

	sources := make([]*Source, 0, len(paths))
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			for _, s := range sources {
				s.Close()
			}
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		sources = append(sources, NewSource(path, f))
	}
	return sources, nil
}
