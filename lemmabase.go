// Package lemmabase is a frequency baseline for lemmatisation.
//
// It learns, from an annotated corpus, the most common lemma of every word
// form and evaluates that lookup table on held-out data. Forms never seen in
// training are lemmatised to themselves.
//
//	b, _ := lemmabase.Train("en_ewt-ud-train.conllu", nil)
//	fmt.Println(b.Predict("ran"))   // "run"
//	out, _ := b.Evaluate("en_ewt-ud-test.conllu")
//	fmt.Println(out.OverallAccuracy())
package lemmabase

import (
	"fmt"

	"github.com/happyhackingspace/lemmabase/internal/corpus"
	"github.com/happyhackingspace/lemmabase/internal/textutil"
	"github.com/happyhackingspace/lemmabase/lookup"
)

// Options controls how corpus files are read.
type Options struct {
	FormField     int // zero-based, CoNLL-U default 1
	LemmaField    int // zero-based, CoNLL-U default 2
	SkipMalformed bool
	Normalize     string // "", "nfc", "nfd", "nfkc" or "nfkd"
	Lowercase     bool
}

// DefaultOptions returns options for CoNLL-U files with no normalisation.
func DefaultOptions() *Options {
	d := corpus.DefaultOptions()
	return &Options{FormField: d.FormField, LemmaField: d.LemmaField}
}

// Baseline is a trained lookup lemmatiser.
type Baseline struct {
	opts      corpus.Options
	normalize textutil.Normalizer
	model     *lookup.Model
	stats     lookup.TrainingStats
}

// Result bundles the training statistics and test outcomes of one run.
type Result struct {
	Training lookup.TrainingStats
	Test     lookup.Outcomes
}

// Stats returns the statistics of the training data.
func (b *Baseline) Stats() lookup.TrainingStats {
	return b.stats
}

// Model returns the underlying lookup model.
func (b *Baseline) Model() *lookup.Model {
	return b.model
}

// Predict lemmatises a single form, normalised the same way as the corpora.
func (b *Baseline) Predict(form string) string {
	return b.model.Predict(b.normalize(form))
}

// Run trains on trainPath and evaluates on testPath.
func Run(trainPath, testPath string, opts *Options) (*Result, error) {
	b, err := Train(trainPath, opts)
	if err != nil {
		return nil, err
	}
	out, err := b.Evaluate(testPath)
	if err != nil {
		return nil, err
	}
	return &Result{Training: b.stats, Test: out}, nil
}

func readerOptions(opts *Options) (corpus.Options, textutil.Normalizer, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	n, err := textutil.NewNormalizer(opts.Normalize, opts.Lowercase)
	if err != nil {
		return corpus.Options{}, nil, fmt.Errorf("lemmabase: %w", err)
	}
	ro := corpus.Options{
		FormField:     opts.FormField,
		LemmaField:    opts.LemmaField,
		SkipMalformed: opts.SkipMalformed,
		Normalize:     n,
	}
	if ro.FormField < 0 || ro.LemmaField < 0 {
		return corpus.Options{}, nil, fmt.Errorf("lemmabase: negative column index")
	}
	if ro.FormField == ro.LemmaField {
		return corpus.Options{}, nil, fmt.Errorf("lemmabase: form and lemma columns must differ (both %d)", ro.FormField)
	}
	return ro, n, nil
}
