package lookup

// TrainingStats summarises a frequency table.
//
// A form is ambiguous when more than one distinct lemma was observed with it,
// regardless of how the counts are distributed. The same test buckets both
// types and tokens.
type TrainingStats struct {
	WordformTypes             int
	WordformTokens            int
	UnambiguousTypes          int
	UnambiguousTokens         int
	AmbiguousTypes            int
	AmbiguousTokens           int
	AmbiguousMostCommonTokens int
	IdentityTokens            int
}

// ComputeTrainingStats walks every form of t once.
func ComputeTrainingStats(t *Table) TrainingStats {
	var s TrainingStats
	for _, form := range t.forms {
		e := t.entries[form]
		s.WordformTypes++
		s.WordformTokens += e.total
		if len(e.lemmas) == 1 {
			s.UnambiguousTypes++
			s.UnambiguousTokens += e.total
		} else {
			s.AmbiguousTypes++
			s.AmbiguousTokens += e.total
			s.AmbiguousMostCommonTokens += e.max
		}
		s.IdentityTokens += e.counts[form]
	}
	return s
}

// ExpectedLookupAccuracy is the share of training tokens a majority lookup
// would get right on the training data itself.
func (s TrainingStats) ExpectedLookupAccuracy() Ratio {
	return Ratio{Num: s.UnambiguousTokens + s.AmbiguousMostCommonTokens, Den: s.WordformTokens}
}

// ExpectedIdentityAccuracy is the share of training tokens whose lemma equals the form.
func (s TrainingStats) ExpectedIdentityAccuracy() Ratio {
	return Ratio{Num: s.IdentityTokens, Den: s.WordformTokens}
}
