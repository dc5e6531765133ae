package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCorpus is the running example: "run" is ambiguous, "running" is not.
var runCorpus = []Record{
	{"run", "run"},
	{"run", "run"},
	{"run", "ran"},
	{"running", "run"},
}

func trainModel(t *testing.T, recs []Record) *Model {
	t.Helper()
	table, err := Train(Records(recs...))
	require.NoError(t, err)
	return NewModel(table)
}

func TestAccumulatorCounts(t *testing.T) {
	acc := NewAccumulator()
	for _, r := range runCorpus {
		acc.Record(r.Form, r.Lemma)
	}
	assert.Equal(t, 4, acc.Tokens())
	table := acc.Table()

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, 4, table.Tokens())
	assert.Equal(t, []string{"run", "running"}, table.Forms())
	assert.Equal(t, 2, table.Count("run", "run"))
	assert.Equal(t, 1, table.Count("run", "ran"))
	assert.Equal(t, 0, table.Count("run", "jog"))
	assert.Equal(t, 0, table.Count("walk", "walk"))
	assert.Equal(t, []string{"run", "ran"}, table.Lemmas("run"))
	assert.Equal(t, 2, table.MaxCount("run"))
	assert.True(t, table.Has("running"))
	assert.False(t, table.Has("walk"))
}

func TestFormTokensSumCounts(t *testing.T) {
	table, err := Train(Records(runCorpus...))
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, r := range runCorpus {
		seen[r.Form]++
	}
	for _, form := range table.Forms() {
		sum := 0
		for _, lemma := range table.Lemmas(form) {
			sum += table.Count(form, lemma)
		}
		assert.Equal(t, seen[form], sum, "form %q", form)
		assert.Equal(t, seen[form], table.FormTokens(form), "form %q", form)
	}
}

func TestRecordAfterFreezePanics(t *testing.T) {
	acc := NewAccumulator()
	acc.Record("a", "a")
	acc.Table()
	assert.Panics(t, func() { acc.Record("b", "b") })
}

func TestTrainingStats(t *testing.T) {
	table, err := Train(Records(runCorpus...))
	require.NoError(t, err)
	s := ComputeTrainingStats(table)

	assert.Equal(t, TrainingStats{
		WordformTypes:             2,
		WordformTokens:            4,
		UnambiguousTypes:          1,
		UnambiguousTokens:         1,
		AmbiguousTypes:            1,
		AmbiguousTokens:           3,
		AmbiguousMostCommonTokens: 2,
		IdentityTokens:            2,
	}, s)
	assert.Equal(t, Ratio{Num: 3, Den: 4}, s.ExpectedLookupAccuracy())
	assert.Equal(t, Ratio{Num: 2, Den: 4}, s.ExpectedIdentityAccuracy())
}

func TestTrainingStatsTiedAmbiguity(t *testing.T) {
	// Two lemmas tied at the top still make the form ambiguous.
	table, err := Train(Records(
		Record{"saw", "see"},
		Record{"saw", "saw"},
		Record{"saw", "see"},
		Record{"saw", "saw"},
	))
	require.NoError(t, err)
	s := ComputeTrainingStats(table)

	assert.Equal(t, 1, s.AmbiguousTypes)
	assert.Equal(t, 4, s.AmbiguousTokens)
	assert.Equal(t, 2, s.AmbiguousMostCommonTokens)
	assert.Equal(t, 2, s.IdentityTokens)
	assert.Equal(t, s.WordformTypes, s.UnambiguousTypes+s.AmbiguousTypes)
	assert.Equal(t, s.WordformTokens, s.UnambiguousTokens+s.AmbiguousTokens)
}

func TestTrainingStatsEmpty(t *testing.T) {
	table, err := Train(Records())
	require.NoError(t, err)
	s := ComputeTrainingStats(table)

	assert.Equal(t, TrainingStats{}, s)
	assert.False(t, s.ExpectedLookupAccuracy().Defined())
	assert.False(t, s.ExpectedIdentityAccuracy().Defined())
}

func TestModelPredict(t *testing.T) {
	m := trainModel(t, append(runCorpus, Record{"left", "leave"}, Record{"left", "left"}))

	tests := []struct {
		form string
		want string
	}{
		{"run", "run"},
		{"running", "run"},
		{"left", "leave"}, // tie, first seen wins
		{"sprinting", "sprinting"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.Predict(tt.form), "Predict(%q)", tt.form)
	}
	assert.Equal(t, []string{"run", "ran"}, m.Candidates("run"))
	assert.Nil(t, m.Candidates("sprinting"))
}

func TestModelMatch(t *testing.T) {
	m := trainModel(t, append(runCorpus, Record{"left", "leave"}, Record{"left", "left"}))

	tests := []struct {
		form, lemma string
		want        bool
	}{
		{"run", "run", true},      // majority lemma
		{"run", "ran", false},     // observed but below the maximum
		{"running", "run", true},  // single candidate
		{"running", "jog", false}, // never observed
		{"left", "leave", true},   // tied
		{"left", "left", true},    // tied
		{"walk", "walk", false},   // unknown form
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.Match(tt.form, tt.lemma), "Match(%q, %q)", tt.form, tt.lemma)
	}
}

func TestEvaluatorScenarios(t *testing.T) {
	m := trainModel(t, runCorpus)

	tests := []struct {
		name string
		rec  Record
		want Outcomes
	}{
		{
			name: "majority lemma matches",
			rec:  Record{"run", "run"},
			want: Outcomes{Total: 1, Found: 1, LookupMatch: 1},
		},
		{
			name: "unseen lemma of unambiguous form",
			rec:  Record{"running", "jog"},
			want: Outcomes{Total: 1, Found: 1, LookupMismatch: 1},
		},
		{
			name: "unknown form falls back to identity",
			rec:  Record{"sprinting", "sprint"},
			want: Outcomes{Total: 1, NotFound: 1, IdentityMismatch: 1},
		},
		{
			name: "unknown form equal to lemma",
			rec:  Record{"sprint", "sprint"},
			want: Outcomes{Total: 1, NotFound: 1, IdentityMatch: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := NewEvaluator(m)
			ev.Observe(tt.rec.Form, tt.rec.Lemma)
			assert.Equal(t, tt.want, ev.Outcomes())
		})
	}
}

func TestEvaluateTotals(t *testing.T) {
	m := trainModel(t, runCorpus)
	out, err := Evaluate(m, Records(
		Record{"run", "run"},
		Record{"run", "ran"},
		Record{"running", "run"},
		Record{"running", "jog"},
		Record{"sprint", "sprint"},
		Record{"sprinting", "sprint"},
	))
	require.NoError(t, err)

	assert.Equal(t, 6, out.Total)
	assert.Equal(t, out.Found, out.LookupMatch+out.LookupMismatch)
	assert.Equal(t, out.NotFound, out.IdentityMatch+out.IdentityMismatch)
	assert.Equal(t, out.Total, out.Found+out.NotFound)
	assert.Equal(t, Ratio{Num: 2, Den: 4}, out.LookupAccuracy())
	assert.Equal(t, Ratio{Num: 1, Den: 2}, out.IdentityAccuracy())
	assert.Equal(t, Ratio{Num: 3, Den: 6}, out.OverallAccuracy())
}

func TestEvaluateEmpty(t *testing.T) {
	m := trainModel(t, runCorpus)
	out, err := Evaluate(m, Records())
	require.NoError(t, err)

	assert.Equal(t, Outcomes{}, out)
	assert.False(t, out.LookupAccuracy().Defined())
	assert.False(t, out.IdentityAccuracy().Defined())
	assert.False(t, out.OverallAccuracy().Defined())
}

func TestIdempotent(t *testing.T) {
	first := ComputeTrainingStats(trainModel(t, runCorpus).Table())
	second := ComputeTrainingStats(trainModel(t, runCorpus).Table())
	assert.Equal(t, first, second)
}

func TestRatioString(t *testing.T) {
	tests := []struct {
		r    Ratio
		want string
	}{
		{Ratio{3, 4}, "0.75"},
		{Ratio{4, 4}, "1.0"},
		{Ratio{0, 4}, "0.0"},
		{Ratio{2, 3}, "0.6666666666666666"},
		{Ratio{1, 100000}, "1e-05"},
		{Ratio{1, 0}, "undefined"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.r.String(), "Ratio%v", tt.r)
	}
}

func TestRatioJSON(t *testing.T) {
	b, err := Ratio{1, 2}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "0.5", string(b))

	b, err = Ratio{}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}
