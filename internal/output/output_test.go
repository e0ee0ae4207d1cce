package output

import (
	"encoding/json"
	"testing"

	"github.com/seb/sebgrep/internal/matcher"
)

func mustPolicy(t *testing.T, opts matcher.PolicyOptions) matcher.Policy {
	t.Helper()
	p, err := matcher.NewPolicy(opts)
	if err != nil {
		t.Fatalf("NewPolicy() error: %v", err)
	}
	return p
}

func TestTextFormatter_Format(t *testing.T) {
	tests := []struct {
		name string
		opts matcher.PolicyOptions
		line matcher.Line
		want string
	}{
		{
			name: "raw line only",
			opts: matcher.PolicyOptions{Expr: "x", NumSources: 1},
			line: matcher.Line{Source: "f.txt", Num: 3, Text: "hello world\n"},
			want: "hello world\n",
		},
		{
			name: "name and number prefix",
			opts: matcher.PolicyOptions{Expr: "mia", NumSources: 1, FileNames: matcher.FileNameAlways, LineNumbers: true},
			line: matcher.Line{Source: "chanson.txt", Num: 2, Text: "Seb danse le mia\n"},
			want: "chanson.txt:2:Seb danse le mia\n",
		},
		{
			name: "name prefix only",
			opts: matcher.PolicyOptions{Expr: "x", NumSources: 2},
			line: matcher.Line{Source: "a.txt", Num: 1, Text: "xyz\n"},
			want: "a.txt:xyz\n",
		},
		{
			name: "number prefix only",
			opts: matcher.PolicyOptions{Expr: "x", NumSources: 1, LineNumbers: true},
			line: matcher.Line{Source: "a.txt", Num: 7, Text: "xyz\n"},
			want: "7:xyz\n",
		},
		{
			name: "no terminator is not invented",
			opts: matcher.PolicyOptions{Expr: "x", NumSources: 1},
			line: matcher.Line{Source: "a.txt", Num: 1, Text: "no newline"},
			want: "no newline",
		},
		{
			name: "files-with-match emits name only",
			opts: matcher.PolicyOptions{Expr: "x", NumSources: 1, FilesWithMatches: true, LineNumbers: true},
			line: matcher.Line{Source: "a.txt", Num: 4, Text: "xyz\n"},
			want: "a.txt\n",
		},
		{
			name: "files-without-match synthetic record",
			opts: matcher.PolicyOptions{Expr: "x", NumSources: 2, FilesWithoutMatch: true},
			line: matcher.Line{Source: "b.txt", Num: matcher.NoLineNum},
			want: "b.txt\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewTextFormatter(mustPolicy(t, tt.opts))
			got := f.Format(nil, tt.line)
			if string(got) != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextFormatter_BufferReuse(t *testing.T) {
	f := NewTextFormatter(mustPolicy(t, matcher.PolicyOptions{Expr: "x", NumSources: 1}))

	buf := f.Format(nil, matcher.Line{Source: "a", Num: 1, Text: "first\n"})
	buf = f.Format(buf[:0], matcher.Line{Source: "a", Num: 2, Text: "second\n"})
	if string(buf) != "second\n" {
		t.Errorf("reused buffer = %q, want %q", buf, "second\n")
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	f := NewJSONFormatter(mustPolicy(t, matcher.PolicyOptions{
		Expr: "mia", NumSources: 1, FileNames: matcher.FileNameAlways, LineNumbers: true,
	}))

	got := f.Format(nil, matcher.Line{Source: "chanson.txt", Num: 2, Text: "Seb danse le mia\n"})
	if got[len(got)-1] != '\n' {
		t.Fatalf("output %q does not end with newline", got)
	}

	var jl map[string]any
	if err := json.Unmarshal(got, &jl); err != nil {
		t.Fatalf("invalid JSON %q: %v", got, err)
	}
	if jl["type"] != "match" {
		t.Errorf("type = %v, want match", jl["type"])
	}
	if jl["file"] != "chanson.txt" {
		t.Errorf("file = %v, want chanson.txt", jl["file"])
	}
	if jl["line_number"] != float64(2) {
		t.Errorf("line_number = %v, want 2", jl["line_number"])
	}
	if jl["text"] != "Seb danse le mia" {
		t.Errorf("text = %v, want trimmed line", jl["text"])
	}
}

func TestJSONFormatter_FilesOnly(t *testing.T) {
	f := NewJSONFormatter(mustPolicy(t, matcher.PolicyOptions{
		Expr: "x", NumSources: 1, FilesWithMatches: true,
	}))

	got := f.Format(nil, matcher.Line{Source: "a.txt", Num: 1, Text: "xyz\n"})

	var jl map[string]any
	if err := json.Unmarshal(got, &jl); err != nil {
		t.Fatalf("invalid JSON %q: %v", got, err)
	}
	if jl["type"] != "file" {
		t.Errorf("type = %v, want file", jl["type"])
	}
	if jl["file"] != "a.txt" {
		t.Errorf("file = %v, want a.txt", jl["file"])
	}
	if _, ok := jl["text"]; ok {
		t.Errorf("text present in files-only output: %q", got)
	}
}
