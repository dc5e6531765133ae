package lemmabase

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/happyhackingspace/lemmabase/internal/corpus"
	"github.com/happyhackingspace/lemmabase/lookup"
)

const trainCorpus = `# sent_id = 1
1	run	run	VERB	_	_	0	root	_	_
2	run	run	VERB	_	_	1	conj	_	_

# sent_id = 2
1	run	ran	VERB	_	_	0	root	_	_
2	running	run	VERB	_	_	1	xcomp	_	_
`

const testCorpus = `# sent_id = 1
1	run	run	VERB	_	_	0	root	_	_
2	running	jog	VERB	_	_	1	xcomp	_	_
3	sprinting	sprint	VERB	_	_	1	xcomp	_	_
`

func writeCorpus(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	train := writeCorpus(t, "train.conllu", trainCorpus)
	test := writeCorpus(t, "test.conllu", testCorpus)

	res, err := Run(train, test, nil)
	if err != nil {
		t.Fatal(err)
	}

	wantStats := lookup.TrainingStats{
		WordformTypes:             2,
		WordformTokens:            4,
		UnambiguousTypes:          1,
		UnambiguousTokens:         1,
		AmbiguousTypes:            1,
		AmbiguousTokens:           3,
		AmbiguousMostCommonTokens: 2,
		IdentityTokens:            2,
	}
	if res.Training != wantStats {
		t.Errorf("Training = %+v, want %+v", res.Training, wantStats)
	}

	wantOut := lookup.Outcomes{
		Total:            3,
		Found:            2,
		LookupMatch:      1,
		LookupMismatch:   1,
		NotFound:         1,
		IdentityMismatch: 1,
	}
	if res.Test != wantOut {
		t.Errorf("Test = %+v, want %+v", res.Test, wantOut)
	}
}

func TestRunIdempotent(t *testing.T) {
	train := writeCorpus(t, "train.conllu", trainCorpus)
	test := writeCorpus(t, "test.conllu", testCorpus)

	first, err := Run(train, test, nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Run(train, test, nil)
	if err != nil {
		t.Fatal(err)
	}
	if *first != *second {
		t.Errorf("runs differ: %+v vs %+v", first, second)
	}
}

func TestPredictNormalized(t *testing.T) {
	train := writeCorpus(t, "train.conllu", "1\tRan\tRun\n1\tran\trun\n")
	b, err := Train(train, &Options{FormField: 1, LemmaField: 2, Lowercase: true})
	if err != nil {
		t.Fatal(err)
	}
	if got := b.Predict("RAN"); got != "run" {
		t.Errorf("Predict(%q) = %q, want %q", "RAN", got, "run")
	}
	if got := b.Predict("Walked"); got != "walked" {
		t.Errorf("Predict(%q) = %q, want %q", "Walked", got, "walked")
	}
	if b.Stats().WordformTypes != 1 {
		t.Errorf("WordformTypes = %d, want 1", b.Stats().WordformTypes)
	}
}

func TestTrainMalformed(t *testing.T) {
	train := writeCorpus(t, "train.conllu", "1\trun\trun\n2\tran\n")

	_, err := Train(train, nil)
	var lerr *corpus.LineError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected LineError, got %v", err)
	}

	opts := DefaultOptions()
	opts.SkipMalformed = true
	b, err := Train(train, opts)
	if err != nil {
		t.Fatal(err)
	}
	if b.Stats().WordformTokens != 1 {
		t.Errorf("WordformTokens = %d, want 1", b.Stats().WordformTokens)
	}
}

func TestTrainMissingFile(t *testing.T) {
	if _, err := Train("nonexistent.conllu", nil); err == nil {
		t.Error("expected error for missing training file")
	}
}

func TestTrainBadNormalization(t *testing.T) {
	train := writeCorpus(t, "train.conllu", trainCorpus)
	if _, err := Train(train, &Options{FormField: 1, LemmaField: 2, Normalize: "nfx"}); err == nil {
		t.Error("expected error for unknown normalization form")
	}
}

func TestEvaluateEmptyTest(t *testing.T) {
	train := writeCorpus(t, "train.conllu", trainCorpus)
	test := writeCorpus(t, "test.conllu", "# no tokens\n")

	res, err := Run(train, test, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Test.Total != 0 {
		t.Errorf("Total = %d, want 0", res.Test.Total)
	}
	if res.Test.OverallAccuracy().Defined() {
		t.Error("overall accuracy should be undefined for an empty test set")
	}
}

func TestTrainSameColumns(t *testing.T) {
	train := writeCorpus(t, "train.conllu", "1\tran\trun\n2\tgeese\tgoose\n")
	if _, err := Train(train, &Options{FormField: 2, LemmaField: 2}); err == nil {
		t.Error("expected error when form and lemma share a column")
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.FormField != 1 || opts.LemmaField != 2 {
		t.Errorf("DefaultOptions = %+v, want form 1, lemma 2", opts)
	}
}
