// Package tokenizer splits raw text into an ordered token stream and
// reassembles corrected streams back into readable text. The pair only
// promises whitespace-equivalent reconstruction, not byte fidelity.
package tokenizer

import "unicode"

type Kind int

const (
	Word Kind = iota
	Number
	Punct
)

// Token is one unit of the tokenized stream. Tokens are values; a
// correction produces a new token at the same sequence position.
type Token struct {
	Text string
	Kind Kind
}

// IsAlphabetic reports whether the token surface is letters only.
// Contractions and hyphenated forms carry interior punctuation and are
// therefore not alphabetic.
func (t Token) IsAlphabetic() bool {
	if t.Kind != Word || t.Text == "" {
		return false
	}
	for _, r := range t.Text {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isApostrophe(r rune) bool { return r == '\'' || r == '’' }

// Tokenize splits text on whitespace and punctuation. Letter runs become
// Word tokens; an apostrophe or hyphen flanked by letters stays inside
// the word, so "don't" and "well-known" are single tokens and the
// detokenizer never has to re-split them. Digit runs (with interior
// decimal/grouping marks) become Number tokens, everything else is a
// one-rune Punct token. Empty or whitespace-only input yields nil.
func Tokenize(text string) []Token {
	runes := []rune(text)
	var tokens []Token
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsLetter(r):
			j := i + 1
			for j < len(runes) {
				if unicode.IsLetter(runes[j]) {
					j++
					continue
				}
				if (isApostrophe(runes[j]) || runes[j] == '-') &&
					j+1 < len(runes) && unicode.IsLetter(runes[j+1]) {
					j += 2
					continue
				}
				break
			}
			tokens = append(tokens, Token{Text: string(runes[i:j]), Kind: Word})
			i = j
		case unicode.IsDigit(r):
			j := i + 1
			for j < len(runes) {
				if unicode.IsDigit(runes[j]) {
					j++
					continue
				}
				if (runes[j] == '.' || runes[j] == ',') &&
					j+1 < len(runes) && unicode.IsDigit(runes[j+1]) {
					j += 2
					continue
				}
				break
			}
			tokens = append(tokens, Token{Text: string(runes[i:j]), Kind: Number})
			i = j
		default:
			tokens = append(tokens, Token{Text: string(r), Kind: Punct})
			i++
		}
	}
	return tokens
}

var noSpaceBefore = map[string]bool{
	".": true, ",": true, "!": true, "?": true, ";": true, ":": true,
	")": true, "]": true, "}": true, "'": true, "’": true, "%": true,
	"…": true,
}

var noSpaceAfter = map[string]bool{
	"(": true, "[": true, "{": true,
}

// Detokenize joins a token sequence back into text. Tokens are separated
// by single spaces except that closing punctuation attaches to the token
// before it, opening brackets attach to the token after, and double
// quotes toggle between the two.
func Detokenize(tokens []Token) string {
	if len(tokens) == 0 {
		return ""
	}
	var b []byte
	openQuote := false
	glueNext := true // nothing written yet
	for _, t := range tokens {
		switch {
		case t.Text == `"`:
			if openQuote {
				b = append(b, t.Text...)
				openQuote = false
				glueNext = false
			} else {
				if !glueNext {
					b = append(b, ' ')
				}
				b = append(b, t.Text...)
				openQuote = true
				glueNext = true
			}
		case glueNext || noSpaceBefore[t.Text]:
			b = append(b, t.Text...)
			glueNext = noSpaceAfter[t.Text]
		default:
			b = append(b, ' ')
			b = append(b, t.Text...)
			glueNext = noSpaceAfter[t.Text]
		}
	}
	return string(b)
}
