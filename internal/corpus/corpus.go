// Package corpus reads annotated tokens from tab-separated corpus files
// such as CoNLL-U treebanks.
//
// Every line containing a tab is a token line. The line is trimmed and split
// on tabs; the form and lemma are taken from the configured columns. Lines
// without a tab (sentence breaks, comments) are ignored.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/happyhackingspace/lemmabase/lookup"
)

// Options controls how token lines are turned into records.
type Options struct {
	FormField     int // zero-based column of the word form
	LemmaField    int // zero-based column of the lemma
	SkipMalformed bool
	Normalize     func(string) string
}

// DefaultOptions returns the CoNLL-U layout: form in the second column,
// lemma in the third, malformed lines fatal.
func DefaultOptions() Options {
	return Options{FormField: 1, LemmaField: 2}
}

// LineError reports a token line with too few columns.
type LineError struct {
	Name   string
	Line   int
	Fields int
	Need   int
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: malformed token line: %d fields, need %d", e.Name, e.Line, e.Fields, e.Need)
}

// Stats counts what a Reader has consumed.
type Stats struct {
	Lines   int
	Records int
	Skipped int
}

// Reader yields records from a corpus stream. It implements lookup.RecordSource.
type Reader struct {
	name   string
	br     *bufio.Reader
	closer io.Closer
	opts   Options
	need   int
	rec    lookup.Record
	stats  Stats
	err    error
}

// NewReader reads records from r. name is used in error messages.
func NewReader(r io.Reader, name string, opts Options) *Reader {
	return &Reader{
		name: name,
		br:   bufio.NewReader(r),
		opts: opts,
		need: max(opts.FormField, opts.LemmaField) + 1,
	}
}

// Open opens the corpus file at path.
func Open(path string, opts Options) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	r := NewReader(f, path, opts)
	r.closer = f
	return r, nil
}

// Next advances to the next token record. Lines may be of any length.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}
	for {
		line, err := r.br.ReadString('\n')
		if line == "" && err != nil {
			if err != io.EOF {
				r.err = fmt.Errorf("read %s: %w", r.name, err)
			}
			return false
		}
		r.stats.Lines++
		if !strings.Contains(line, "\t") {
			continue
		}
		fields := strings.Split(strings.TrimSpace(line), "\t")
		if len(fields) < r.need {
			lerr := &LineError{Name: r.name, Line: r.stats.Lines, Fields: len(fields), Need: r.need}
			if !r.opts.SkipMalformed {
				r.err = lerr
				return false
			}
			slog.Warn("Skipping malformed line", "file", r.name, "line", r.stats.Lines, "fields", len(fields))
			r.stats.Skipped++
			continue
		}
		form, lemma := fields[r.opts.FormField], fields[r.opts.LemmaField]
		if r.opts.Normalize != nil {
			form, lemma = r.opts.Normalize(form), r.opts.Normalize(lemma)
		}
		r.rec = lookup.Record{Form: form, Lemma: lemma}
		r.stats.Records++
		return true
	}
}

// Record returns the current record.
func (r *Reader) Record() lookup.Record {
	return r.rec
}

// Err returns the first error encountered.
func (r *Reader) Err() error {
	return r.err
}

// Stats returns the counts so far.
func (r *Reader) Stats() Stats {
	return r.stats
}

// Close releases the underlying file, if any.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
