package output

import (
	"encoding/json"
	"strings"

	"github.com/seb/sebgrep/internal/matcher"
)

// JSONFormatter renders lines as JSON Lines, one object per emitted
// result.
type JSONFormatter struct {
	showName  bool
	filesOnly bool
}

// NewJSONFormatter creates a JSONFormatter for the given policy.
func NewJSONFormatter(p matcher.Policy) *JSONFormatter {
	return &JSONFormatter{
		showName:  p.ShowName,
		filesOnly: p.FilesOnly(),
	}
}

// jsonLine is the serialization format for one result.
type jsonLine struct {
	Type    string `json:"type"`
	File    string `json:"file,omitempty"`
	LineNum int    `json:"line_number,omitempty"`
	Text    string `json:"text,omitempty"`
}

func (f *JSONFormatter) Format(buf []byte, line matcher.Line) []byte {
	jl := jsonLine{Type: "match"}
	if f.filesOnly {
		jl.Type = "file"
		jl.File = line.Source
	} else {
		if f.showName {
			jl.File = line.Source
		}
		jl.LineNum = line.Num
		jl.Text = strings.TrimSuffix(line.Text, "\n")
	}

	data, _ := json.Marshal(jl)
	buf = append(buf, data...)
	buf = append(buf, '\n')
	return buf
}

var _ Formatter = (*JSONFormatter)(nil)
