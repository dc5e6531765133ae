package lookup

// Model is the lookup table learned from a frequency table.
//
// A form's candidates are all lemmas ever observed with it, not only the most
// frequent ones. Match re-checks the count of the queried lemma against the
// form's maximum, so any lemma tied for most frequent is accepted.
type Model struct {
	table      *Table
	candidates map[string][]string
}

// NewModel derives the lookup model from a frozen table.
func NewModel(t *Table) *Model {
	m := &Model{
		table:      t,
		candidates: make(map[string][]string, t.Len()),
	}
	for _, form := range t.forms {
		m.candidates[form] = t.entries[form].lemmas
	}
	return m
}

// Table returns the frequency table backing the model.
func (m *Model) Table() *Table {
	return m.table
}

// Known reports whether form is in the lookup table.
func (m *Model) Known(form string) bool {
	_, ok := m.candidates[form]
	return ok
}

// Candidates returns the candidate lemmas of form in first-seen order.
func (m *Model) Candidates(form string) []string {
	c, ok := m.candidates[form]
	if !ok {
		return nil
	}
	out := make([]string, len(c))
	copy(out, c)
	return out
}

// Predict returns the lemma for form. Unknown forms map to themselves.
// When several lemmas share the maximum count the first one seen wins.
func (m *Model) Predict(form string) string {
	c, ok := m.candidates[form]
	if !ok {
		return form
	}
	top := m.table.MaxCount(form)
	for _, lemma := range c {
		if m.table.Count(form, lemma) == top {
			return lemma
		}
	}
	return form
}

// Match reports whether predicting lemma for the known form counts as correct.
// It returns false for unknown forms.
func (m *Model) Match(form, lemma string) bool {
	c, ok := m.candidates[form]
	if !ok {
		return false
	}
	if len(c) == 1 && c[0] == lemma {
		return true
	}
	n := m.table.Count(form, lemma)
	return n > 0 && n == m.table.MaxCount(form)
}
