package lookup

// Outcomes tallies how test records were handled.
type Outcomes struct {
	Total            int
	Found            int
	LookupMatch      int
	LookupMismatch   int
	NotFound         int
	IdentityMatch    int
	IdentityMismatch int
}

// LookupAccuracy is the accuracy on test items found in the lookup table.
func (o Outcomes) LookupAccuracy() Ratio {
	return Ratio{Num: o.LookupMatch, Den: o.Found}
}

// IdentityAccuracy is the accuracy on test items that fell back to identity.
func (o Outcomes) IdentityAccuracy() Ratio {
	return Ratio{Num: o.IdentityMatch, Den: o.NotFound}
}

// OverallAccuracy is the accuracy over all test items.
func (o Outcomes) OverallAccuracy() Ratio {
	return Ratio{Num: o.LookupMatch + o.IdentityMatch, Den: o.Total}
}

// Evaluator scores test records against a model.
type Evaluator struct {
	model *Model
	out   Outcomes
}

// NewEvaluator creates an evaluator for m.
func NewEvaluator(m *Model) *Evaluator {
	return &Evaluator{model: m}
}

// Observe scores one gold (form, lemma) pair.
func (e *Evaluator) Observe(form, lemma string) {
	e.out.Total++
	if !e.model.Known(form) {
		e.out.NotFound++
		if form == lemma {
			e.out.IdentityMatch++
		} else {
			e.out.IdentityMismatch++
		}
		return
	}
	e.out.Found++
	if e.model.Match(form, lemma) {
		e.out.LookupMatch++
	} else {
		e.out.LookupMismatch++
	}
}

// Outcomes returns the tallies so far.
func (e *Evaluator) Outcomes() Outcomes {
	return e.out
}
