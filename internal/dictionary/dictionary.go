// Package dictionary holds the frequency model: known lowercase words
// with occurrence counts, loaded once at startup and then shared
// read-only across concurrent checks. User-supplied words are merged in
// with a very high count so they always win ranking.
package dictionary

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/edsrzf/mmap-go"
)

// Frequency assigned to user-supplied words.
const customWordFrequency = 1_000_000_000

type Dictionary struct {
	mu          sync.RWMutex
	frequencies map[string]int
}

// Load reads a frequency list ("word count" per line) from path. The
// file is mapped instead of read because production word lists run to
// hundreds of megabytes.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat dictionary: %w", err)
	}
	if fi.Size() == 0 {
		return nil, fmt.Errorf("dictionary %s is empty", path)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("map dictionary: %w", err)
	}
	defer m.Unmap()

	d, err := Parse(bytes.NewReader(m))
	if err != nil {
		return nil, fmt.Errorf("parse dictionary %s: %w", path, err)
	}
	return d, nil
}

// Parse reads "word count" lines. Counts may be integers or floats
// (floats are truncated); blank and malformed lines are skipped. Words
// are lowercased on the way in.
func Parse(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{frequencies: make(map[string]int)}
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		word := strings.ToLower(parts[0])
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			fv, err2 := strconv.ParseFloat(parts[1], 64)
			if err2 != nil {
				continue
			}
			count = int(fv)
		}
		if count < 0 {
			continue
		}
		d.frequencies[word] = count
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// Len returns the number of known words.
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.frequencies)
}

// IsKnown reports whether the lowercase word is in the model.
func (d *Dictionary) IsKnown(word string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.frequencies[word]
	return ok
}

// Frequency returns the occurrence count of a word, 0 if unknown.
func (d *Dictionary) Frequency(word string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.frequencies[word]
}

// Unknown returns the subset of words absent from the model, as a set.
// The corrector uses this to test a whole candidate list in one call.
func (d *Dictionary) Unknown(words []string) map[string]bool {
	out := make(map[string]bool)
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, w := range words {
		if _, ok := d.frequencies[w]; !ok {
			out[w] = true
		}
	}
	return out
}

// AddCustom registers a user word with maximum ranking weight.
func (d *Dictionary) AddCustom(word string) {
	lw := strings.ToLower(word)
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frequencies[lw] = customWordFrequency
}

// RemoveCustom drops a word from the model.
func (d *Dictionary) RemoveCustom(word string) {
	lw := strings.ToLower(word)
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.frequencies, lw)
}
