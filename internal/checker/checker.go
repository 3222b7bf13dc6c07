// Package checker ties the tokenizer and the frequency model together:
// it decides which tokens deserve spelling analysis, reports
// misspellings with a single best suggestion each, and rewrites text
// in place while preserving the original capitalization.
package checker

import (
	"strings"

	"spellcheck/internal/dictionary"
	"spellcheck/internal/tokenizer"
	"spellcheck/pkg/options"
)

type Checker struct {
	dict *dictionary.Dictionary
	opts options.CheckerOptions
}

func New(dict *dictionary.Dictionary, opts ...options.Option) *Checker {
	conf := options.DefaultOptions
	for _, o := range opts {
		o.Apply(&conf)
	}
	return &Checker{dict: dict, opts: conf}
}

// IsCandidate reports whether a token is eligible for spelling analysis.
// Rules apply in order: non-alphabetic tokens never qualify; with
// ignoreShort, tokens of one or two letters are skipped; with
// ignoreUpper, all-caps tokens are treated as acronyms and skipped.
func IsCandidate(tok tokenizer.Token, ignoreShort, ignoreUpper bool) bool {
	if !tok.IsAlphabetic() {
		return false
	}
	if ignoreShort && len([]rune(tok.Text)) <= 2 {
		return false
	}
	if ignoreUpper && isUpper(tok.Text) {
		return false
	}
	return true
}

// Check returns a mapping of misspelled tokens, keyed by their original
// surface form, to one suggestion re-cased to match. Distinct surface
// forms of the same word ("Teh" and "teh") are separate keys. The map
// is empty, never nil, for clean input.
func (c *Checker) Check(text string) map[string]string {
	errors := make(map[string]string)
	for _, tok := range tokenizer.Tokenize(text) {
		if !IsCandidate(tok, c.opts.IgnoreShortWords, c.opts.IgnoreAllCapsWords) {
			continue
		}
		lw := strings.ToLower(tok.Text)
		if c.dict.IsKnown(lw) {
			continue
		}
		errors[tok.Text] = recase(tok.Text, c.dict.BestCorrection(lw))
	}
	return errors
}

// Correct rewrites every misspelled candidate token with its re-cased
// suggestion and reassembles the stream. The token count never changes;
// only flagged positions change value. Text with nothing to fix is
// returned untouched, byte for byte, which also makes Correct
// idempotent.
func (c *Checker) Correct(text string) string {
	tokens := tokenizer.Tokenize(text)

	var candidateIdx []int
	var candidateWords []string
	for i, tok := range tokens {
		if IsCandidate(tok, c.opts.IgnoreShortWords, c.opts.IgnoreAllCapsWords) {
			candidateIdx = append(candidateIdx, i)
			candidateWords = append(candidateWords, strings.ToLower(tok.Text))
		}
	}

	misspelled := c.dict.Unknown(candidateWords)
	changed := false
	for k, i := range candidateIdx {
		lw := candidateWords[k]
		if !misspelled[lw] {
			continue
		}
		suggestion := recase(tokens[i].Text, c.dict.BestCorrection(lw))
		if suggestion == tokens[i].Text {
			continue
		}
		tokens[i] = tokenizer.Token{Text: suggestion, Kind: tokens[i].Kind}
		changed = true
	}
	if !changed {
		return text
	}
	return tokenizer.Detokenize(tokens)
}

// WordCount counts alphabetic tokens. It deliberately ignores the short
// and all-caps filters: this is the raw word total used for error
// rates, not the candidate set.
func (c *Checker) WordCount(text string) int {
	n := 0
	for _, tok := range tokenizer.Tokenize(text) {
		if tok.IsAlphabetic() {
			n++
		}
	}
	return n
}
