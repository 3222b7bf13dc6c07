package dictionary

const letters = "abcdefghijklmnopqrstuvwxyz"

// BestCorrection returns the most plausible known word within edit
// distance 2 of the lowercase input. A known word is returned as-is.
// Neighbours at distance 1 are preferred over distance 2; among equals
// the highest frequency wins, ties going to the lexicographically
// smaller word so the result is reproducible. A word with no known
// neighbour comes back unchanged — the caller must never fail on an
// unresolvable word.
func (d *Dictionary) BestCorrection(word string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if _, ok := d.frequencies[word]; ok {
		return word
	}

	e1 := edits1(word)
	if best, ok := d.pickKnown(e1); ok {
		return best
	}

	// Distance 2: edits of edits, scanned without materializing the
	// full neighbourhood.
	var best string
	bestFreq := -1
	for _, e := range e1 {
		for _, e2 := range edits1(e) {
			f, ok := d.frequencies[e2]
			if !ok {
				continue
			}
			if f > bestFreq || (f == bestFreq && e2 < best) {
				best, bestFreq = e2, f
			}
		}
	}
	if bestFreq >= 0 {
		return best
	}
	return word
}

// pickKnown selects the highest-frequency known candidate, breaking
// frequency ties lexicographically. Caller holds at least a read lock.
func (d *Dictionary) pickKnown(candidates []string) (string, bool) {
	var best string
	bestFreq := -1
	for _, c := range candidates {
		f, ok := d.frequencies[c]
		if !ok {
			continue
		}
		if f > bestFreq || (f == bestFreq && c < best) {
			best, bestFreq = c, f
		}
	}
	return best, bestFreq >= 0
}

// edits1 generates every string one edit away from word: deletes,
// adjacent transposes, replaces and inserts over a-z.
func edits1(word string) []string {
	r := []rune(word)
	n := len(r)
	out := make([]string, 0, 2*n+1+(2*n+1)*len(letters))

	for i := 0; i < n; i++ {
		out = append(out, string(r[:i])+string(r[i+1:]))
	}
	for i := 0; i+1 < n; i++ {
		s := make([]rune, n)
		copy(s, r)
		s[i], s[i+1] = s[i+1], s[i]
		out = append(out, string(s))
	}
	for i := 0; i < n; i++ {
		for _, c := range letters {
			if r[i] == c {
				continue
			}
			out = append(out, string(r[:i])+string(c)+string(r[i+1:]))
		}
	}
	for i := 0; i <= n; i++ {
		for _, c := range letters {
			out = append(out, string(r[:i])+string(c)+string(r[i:]))
		}
	}
	return out
}
