package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// WriteSummaryCSV emits one row per document with the error rate
// formatted to two decimals.
func WriteSummaryCSV(w io.Writer, summaries []Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Filename", "Total Words", "Error Count", "Error Rate (%)"}); err != nil {
		return err
	}
	for _, s := range summaries {
		rec := []string{
			s.Name,
			strconv.Itoa(s.TotalWords),
			strconv.Itoa(s.ErrorCount),
			strconv.FormatFloat(s.ErrorRate, 'f', 2, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteDetailsCSV emits one row per misspelling, sorted
// case-insensitively by word within each file.
func WriteDetailsCSV(w io.Writer, summaries []Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Filename", "Misspelled Word", "Correction"}); err != nil {
		return err
	}
	for _, s := range summaries {
		for _, word := range sortedWords(s.Errors) {
			if err := cw.Write([]string{s.Name, word, s.Errors[word]}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTextReport emits the human-readable per-file report.
func WriteTextReport(w io.Writer, summaries []Summary) error {
	if _, err := fmt.Fprintf(w, "Spelling Error Summary Report\n%s\n\n", strings.Repeat("=", 40)); err != nil {
		return err
	}
	for _, s := range summaries {
		if _, err := fmt.Fprintf(w, "File: %s\nTotal errors: %d\nCorrections:\n", s.Name, s.ErrorCount); err != nil {
			return err
		}
		for _, word := range sortedWords(s.Errors) {
			if _, err := fmt.Fprintf(w, "  %s → %s\n", word, s.Errors[word]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "\n%s\n\n", strings.Repeat("-", 30)); err != nil {
			return err
		}
	}
	return nil
}

// sortedWords orders misspellings case-insensitively; equal folds fall
// back to byte order so the output is stable.
func sortedWords(errs map[string]string) []string {
	words := make([]string, 0, len(errs))
	for w := range errs {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		li, lj := strings.ToLower(words[i]), strings.ToLower(words[j])
		if li != lj {
			return li < lj
		}
		return words[i] < words[j]
	})
	return words
}
