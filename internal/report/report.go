// Package report renders training statistics and test outcomes as labeled lines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/happyhackingspace/lemmabase/lookup"
)

// Entry is one labeled value. Exactly one of Count or Ratio is meaningful,
// selected by IsRatio.
type Entry struct {
	Label   string
	Count   int
	Ratio   lookup.Ratio
	IsRatio bool
}

// Value formats the entry's value.
func (e Entry) Value() string {
	if e.IsRatio {
		return e.Ratio.String()
	}
	return strconv.Itoa(e.Count)
}

// Section is an ordered group of entries under a heading.
type Section struct {
	Title   string
	Entries []Entry
}

// Report is an ordered list of sections.
type Report struct {
	Sections []Section
}

func count(label string, n int) Entry {
	return Entry{Label: label, Count: n}
}

func ratio(label string, r lookup.Ratio) Entry {
	return Entry{Label: label, Ratio: r, IsRatio: true}
}

// TrainingSection lists the training counters followed by the expected accuracies.
func TrainingSection(s lookup.TrainingStats) Section {
	return Section{
		Title: "Training statistics",
		Entries: []Entry{
			count("Wordform types", s.WordformTypes),
			count("Wordform tokens", s.WordformTokens),
			count("Unambiguous types", s.UnambiguousTypes),
			count("Unambiguous tokens", s.UnambiguousTokens),
			count("Ambiguous types", s.AmbiguousTypes),
			count("Ambiguous tokens", s.AmbiguousTokens),
			count("Ambiguous most common tokens", s.AmbiguousMostCommonTokens),
			count("Identity tokens", s.IdentityTokens),
			ratio("Expected lookup accuracy", s.ExpectedLookupAccuracy()),
			ratio("Expected identity accuracy", s.ExpectedIdentityAccuracy()),
		},
	}
}

// TestSection lists the test outcomes followed by the three accuracies.
func TestSection(o lookup.Outcomes) Section {
	return Section{
		Title: "Test results",
		Entries: []Entry{
			count("Total test items", o.Total),
			count("Found in lookup table", o.Found),
			count("Lookup match", o.LookupMatch),
			count("Lookup mismatch", o.LookupMismatch),
			count("Not found in lookup table", o.NotFound),
			count("Identity match", o.IdentityMatch),
			count("Identity mismatch", o.IdentityMismatch),
			ratio("Lookup accuracy", o.LookupAccuracy()),
			ratio("Identity accuracy", o.IdentityAccuracy()),
			ratio("Overall accuracy", o.OverallAccuracy()),
		},
	}
}

// New builds the full report.
func New(s lookup.TrainingStats, o lookup.Outcomes) *Report {
	return &Report{Sections: []Section{TrainingSection(s), TestSection(o)}}
}

// Format names an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("unknown report format %q", s)
}

// Write renders r to w in the given format.
func (r *Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatJSON:
		return r.WriteJSON(w)
	case FormatText, "":
		return r.WriteText(w)
	}
	return fmt.Errorf("unknown report format %q", f)
}

// WriteText writes each section title on its own line followed by
// "<label>: <value>" lines.
func (r *Report) WriteText(w io.Writer) error {
	for _, s := range r.Sections {
		if _, err := fmt.Fprintln(w, s.Title); err != nil {
			return err
		}
		for _, e := range s.Entries {
			if _, err := fmt.Fprintf(w, "%s: %s\n", e.Label, e.Value()); err != nil {
				return err
			}
		}
	}
	return nil
}

type jsonEntry struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

type jsonSection struct {
	Title   string      `json:"title"`
	Entries []jsonEntry `json:"entries"`
}

// WriteJSON writes the sections as an indented JSON array, keeping entry order.
// Undefined ratios are encoded as null.
func (r *Report) WriteJSON(w io.Writer) error {
	out := make([]jsonSection, len(r.Sections))
	for i, s := range r.Sections {
		out[i] = jsonSection{Title: s.Title, Entries: make([]jsonEntry, len(s.Entries))}
		for j, e := range s.Entries {
			var v any = e.Count
			if e.IsRatio {
				v = e.Ratio
			}
			out[i].Entries[j] = jsonEntry{Label: e.Label, Value: v}
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
