// Package lookup implements a frequency-based lemmatisation baseline.
//
// Training counts how often each lemma was annotated for each word form.
// The resulting table backs a lookup model that predicts the most common
// lemma of a known form and falls back to the form itself otherwise.
//
//	acc := lookup.NewAccumulator()
//	acc.Record("run", "run")
//	acc.Record("ran", "run")
//	table := acc.Table()
//	model := lookup.NewModel(table)
//	model.Predict("ran") // "run"
package lookup

import "sort"

// Record is a single annotated token.
type Record struct {
	Form  string
	Lemma string
}

// entry holds the lemma counts of one word form.
type entry struct {
	lemmas []string // first-seen order
	counts map[string]int
	total  int
	max    int
}

func (e *entry) add(lemma string) {
	n, ok := e.counts[lemma]
	if !ok {
		e.lemmas = append(e.lemmas, lemma)
	}
	n++
	e.counts[lemma] = n
	e.total++
	if n > e.max {
		e.max = n
	}
}

// Accumulator builds a frequency table from training records.
// It is the only writer of the table; Table hands the result over
// and no further records may be added.
type Accumulator struct {
	entries map[string]*entry
	tokens  int
	frozen  bool
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{entries: make(map[string]*entry)}
}

// Record increments the count of lemma under form, inserting either as needed.
func (a *Accumulator) Record(form, lemma string) {
	if a.frozen {
		panic("lookup: record after table was frozen")
	}
	e, ok := a.entries[form]
	if !ok {
		e = &entry{counts: make(map[string]int, 1)}
		a.entries[form] = e
	}
	e.add(lemma)
	a.tokens++
}

// Tokens returns the number of records seen so far.
func (a *Accumulator) Tokens() int {
	return a.tokens
}

// Table freezes the accumulator and returns the finished frequency table.
func (a *Accumulator) Table() *Table {
	a.frozen = true
	forms := make([]string, 0, len(a.entries))
	for f := range a.entries {
		forms = append(forms, f)
	}
	sort.Strings(forms)
	return &Table{entries: a.entries, forms: forms, tokens: a.tokens}
}

// Table is an immutable form -> lemma -> count mapping.
type Table struct {
	entries map[string]*entry
	forms   []string
	tokens  int
}

// Len returns the number of distinct forms.
func (t *Table) Len() int {
	return len(t.forms)
}

// Tokens returns the total number of training tokens.
func (t *Table) Tokens() int {
	return t.tokens
}

// Forms returns the distinct forms in sorted order.
func (t *Table) Forms() []string {
	out := make([]string, len(t.forms))
	copy(out, t.forms)
	return out
}

// Has reports whether form was seen in training.
func (t *Table) Has(form string) bool {
	_, ok := t.entries[form]
	return ok
}

// Count returns how often lemma was annotated for form, 0 if never.
func (t *Table) Count(form, lemma string) int {
	e, ok := t.entries[form]
	if !ok {
		return 0
	}
	return e.counts[lemma]
}

// Lemmas returns every lemma observed with form, in first-seen order.
func (t *Table) Lemmas(form string) []string {
	e, ok := t.entries[form]
	if !ok {
		return nil
	}
	out := make([]string, len(e.lemmas))
	copy(out, e.lemmas)
	return out
}

// FormTokens returns the number of training tokens with the given form.
func (t *Table) FormTokens(form string) int {
	if e, ok := t.entries[form]; ok {
		return e.total
	}
	return 0
}

// MaxCount returns the largest per-lemma count for form, 0 if unseen.
func (t *Table) MaxCount(form string) int {
	if e, ok := t.entries[form]; ok {
		return e.max
	}
	return 0
}
