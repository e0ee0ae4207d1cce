package output

import (
	"strconv"

	"github.com/seb/sebgrep/internal/matcher"
)

// TextFormatter renders lines as plain text: in files-only modes the
// source name alone, otherwise the colon-joined optional source name,
// optional line number, and the raw line text. The raw text keeps its
// own terminator; none is added.
type TextFormatter struct {
	showName    bool
	lineNumbers bool
	filesOnly   bool
}

// NewTextFormatter creates a TextFormatter for the given policy.
func NewTextFormatter(p matcher.Policy) *TextFormatter {
	return &TextFormatter{
		showName:    p.ShowName,
		lineNumbers: p.LineNumbers,
		filesOnly:   p.FilesOnly(),
	}
}

func (f *TextFormatter) Format(buf []byte, line matcher.Line) []byte {
	if f.filesOnly {
		buf = append(buf, line.Source...)
		buf = append(buf, '\n')
		return buf
	}

	if f.showName {
		buf = append(buf, line.Source...)
		buf = append(buf, ':')
	}
	if f.lineNumbers {
		buf = strconv.AppendInt(buf, int64(line.Num), 10)
		buf = append(buf, ':')
	}
	buf = append(buf, line.Text...)
	return buf
}

var _ Formatter = (*TextFormatter)(nil)
