package lemmabase

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/happyhackingspace/lemmabase/internal/corpus"
	"github.com/happyhackingspace/lemmabase/lookup"
)

// Train reads the annotated corpus at path and builds the lookup model.
// The whole file is consumed before the model is derived.
func Train(path string, opts *Options) (*Baseline, error) {
	ro, n, err := readerOptions(opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	r, err := corpus.Open(path, ro)
	if err != nil {
		return nil, fmt.Errorf("lemmabase: %w", err)
	}
	defer func() { _ = r.Close() }()

	table, err := lookup.Train(r)
	if err != nil {
		return nil, fmt.Errorf("lemmabase: train: %w", err)
	}
	st := r.Stats()
	slog.Debug("Training data read", "path", path, "lines", st.Lines, "tokens", st.Records,
		"skipped", st.Skipped, "forms", table.Len(), "duration", time.Since(start))

	return &Baseline{
		opts:      ro,
		normalize: n,
		model:     lookup.NewModel(table),
		stats:     lookup.ComputeTrainingStats(table),
	}, nil
}

// Evaluate scores the annotated corpus at path against the model.
func (b *Baseline) Evaluate(path string) (lookup.Outcomes, error) {
	start := time.Now()
	r, err := corpus.Open(path, b.opts)
	if err != nil {
		return lookup.Outcomes{}, fmt.Errorf("lemmabase: %w", err)
	}
	defer func() { _ = r.Close() }()

	out, err := lookup.Evaluate(b.model, r)
	if err != nil {
		return lookup.Outcomes{}, fmt.Errorf("lemmabase: evaluate: %w", err)
	}
	st := r.Stats()
	slog.Debug("Test data scored", "path", path, "lines", st.Lines, "tokens", st.Records,
		"skipped", st.Skipped, "duration", time.Since(start))
	return out, nil
}
