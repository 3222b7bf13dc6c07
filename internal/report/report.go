// Package report aggregates per-document spell-check results across a
// batch and serializes the summary, detail and plain-text reports.
package report

import (
	"context"

	"golang.org/x/sync/errgroup"

	"spellcheck/internal/checker"
)

// Document is one (filename, text) input of a batch. Text must already
// be valid UTF-8; callers sanitize raw bytes before handing them over.
type Document struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Summary is the immutable per-document result.
type Summary struct {
	Name       string            `json:"filename"`
	TotalWords int               `json:"total_words"`
	ErrorCount int               `json:"error_count"`
	ErrorRate  float64           `json:"error_rate"`
	Errors     map[string]string `json:"errors"`
	Corrected  string            `json:"corrected,omitempty"`
}

// Process runs the full pipeline for one document. The error rate is a
// percentage of all alphabetic words, 0 for an empty document.
func Process(doc Document, chk *checker.Checker) Summary {
	errs := chk.Check(doc.Text)
	total := chk.WordCount(doc.Text)
	s := Summary{
		Name:       doc.Name,
		TotalWords: total,
		ErrorCount: len(errs),
		Errors:     errs,
		Corrected:  chk.Correct(doc.Text),
	}
	if total > 0 {
		s.ErrorRate = float64(len(errs)) / float64(total) * 100
	}
	return s
}

// Run checks every document and returns summaries in submission order,
// regardless of completion order. Up to workers documents are processed
// concurrently; each run is pure over its own text and only reads the
// shared dictionary. Cancelling ctx stops scheduling at a document
// boundary; summaries already produced stay valid and the context error
// is returned alongside them.
func Run(ctx context.Context, docs []Document, chk *checker.Checker, workers int) ([]Summary, error) {
	if workers <= 0 {
		workers = 1
	}
	summaries := make([]Summary, len(docs))

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			break
		}
		i, doc := i, doc
		g.Go(func() error {
			summaries[i] = Process(doc, chk)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return summaries, err
	}
	return summaries, ctx.Err()
}
