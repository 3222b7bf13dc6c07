package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spellcheck/internal/checker"
	"spellcheck/internal/dictionary"
)

const testWords = "the 500\ncat 100\nsat 90\non 80\nmat 70\nand 60\nthen 50\nit 40\nslept 30\nbig 20\nred 10"

func newTestChecker(t *testing.T) *checker.Checker {
	t.Helper()
	d, err := dictionary.Parse(strings.NewReader(testWords))
	require.NoError(t, err)
	return checker.New(d)
}

func TestRun_BatchScenario(t *testing.T) {
	t.Parallel()

	chk := newTestChecker(t)
	docs := []Document{
		{Name: "clean.txt", Text: "The cat sat on the mat and then it slept"},
		{Name: "typos.txt", Text: "The cat szt on teh big red mat"},
	}

	summaries, err := Run(context.Background(), docs, chk, 2)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	clean := summaries[0]
	assert.Equal(t, "clean.txt", clean.Name)
	assert.Equal(t, 10, clean.TotalWords)
	assert.Equal(t, 0, clean.ErrorCount)
	assert.Equal(t, 0.0, clean.ErrorRate)
	assert.Equal(t, docs[0].Text, clean.Corrected)

	typos := summaries[1]
	assert.Equal(t, "typos.txt", typos.Name)
	assert.Equal(t, 8, typos.TotalWords)
	assert.Equal(t, 2, typos.ErrorCount)
	assert.Equal(t, 25.0, typos.ErrorRate)
	assert.Equal(t, "The cat sat on the big red mat", typos.Corrected)
	assert.Equal(t, map[string]string{"szt": "sat", "teh": "the"}, typos.Errors)
}

func TestRun_PreservesSubmissionOrder(t *testing.T) {
	t.Parallel()

	chk := newTestChecker(t)
	var docs []Document
	for i := 0; i < 24; i++ {
		docs = append(docs, Document{
			Name: fmt.Sprintf("doc%02d.txt", i),
			Text: "teh cat sat",
		})
	}

	summaries, err := Run(context.Background(), docs, chk, 8)
	require.NoError(t, err)
	require.Len(t, summaries, len(docs))
	for i, s := range summaries {
		assert.Equal(t, docs[i].Name, s.Name)
		assert.Equal(t, 1, s.ErrorCount)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, []Document{{Name: "a.txt", Text: "teh"}}, newTestChecker(t), 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestProcess_EmptyDocument(t *testing.T) {
	t.Parallel()

	s := Process(Document{Name: "empty.txt"}, newTestChecker(t))
	assert.Equal(t, 0, s.TotalWords)
	assert.Equal(t, 0, s.ErrorCount)
	assert.Equal(t, 0.0, s.ErrorRate)
	assert.Empty(t, s.Corrected)
}

func TestWriteSummaryCSV(t *testing.T) {
	t.Parallel()

	summaries := []Summary{
		{Name: "clean.txt", TotalWords: 10, ErrorCount: 0, ErrorRate: 0},
		{Name: "typos.txt", TotalWords: 8, ErrorCount: 2, ErrorRate: 25},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSummaryCSV(&buf, summaries))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Filename", "Total Words", "Error Count", "Error Rate (%)"}, rows[0])
	assert.Equal(t, []string{"clean.txt", "10", "0", "0.00"}, rows[1])
	assert.Equal(t, []string{"typos.txt", "8", "2", "25.00"}, rows[2])
}

func TestWriteDetailsCSV_SortsCaseInsensitively(t *testing.T) {
	t.Parallel()

	summaries := []Summary{{
		Name: "a.txt",
		Errors: map[string]string{
			"Zebra":  "zebra",
			"apple":  "apples",
			"Banana": "banana",
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteDetailsCSV(&buf, summaries))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Filename", "Misspelled Word", "Correction"}, rows[0])
	assert.Equal(t, []string{"a.txt", "apple", "apples"}, rows[1])
	assert.Equal(t, []string{"a.txt", "Banana", "banana"}, rows[2])
	assert.Equal(t, []string{"a.txt", "Zebra", "zebra"}, rows[3])
}

func TestWriteTextReport(t *testing.T) {
	t.Parallel()

	summaries := []Summary{{
		Name:       "a.txt",
		ErrorCount: 1,
		Errors:     map[string]string{"teh": "the"},
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteTextReport(&buf, summaries))

	out := buf.String()
	assert.Contains(t, out, "File: a.txt")
	assert.Contains(t, out, "Total errors: 1")
	assert.Contains(t, out, "  teh → the")
}
