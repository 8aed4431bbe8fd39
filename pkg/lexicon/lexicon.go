// Package lexicon provides fast keyword detection over brush descriptions:
// fiber terms, handle/knot indicator words, and knot size extraction. One
// Aho-Corasick automaton is built over all terms at construction and shared
// read-only afterwards.
package lexicon

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cloudflare/ahocorasick"
	"github.com/wetshaving/brushmatch/pkg/types"
)

// FiberHit is one fiber keyword occurrence in a text.
type FiberHit struct {
	Term  string
	Fiber types.Fiber
	Start int // byte offset in the lowercased text
}

// fiberTerms maps recognized fiber keywords to their fiber. Longer terms are
// listed before their abbreviations so first-hit reporting prefers them.
var fiberTerms = []struct {
	term  string
	fiber types.Fiber
}{
	{"silvertip", types.FiberBadger},
	{"badger", types.FiberBadger},
	{"manchurian", types.FiberBadger},
	{"shd", types.FiberBadger},
	{"boar", types.FiberBoar},
	{"bristle", types.FiberBoar},
	{"synthetic", types.FiberSynthetic},
	{"synth", types.FiberSynthetic},
	{"syn", types.FiberSynthetic},
	{"tuxedo", types.FiberSynthetic},
	{"cashmere", types.FiberSynthetic},
	{"timberwolf", types.FiberSynthetic},
	{"mixed", types.FiberMixed},
	{"hybrid", types.FiberMixed},
}

// sizeRe extracts an explicit knot diameter like "26mm", "26 mm", "26.5mm".
var sizeRe = regexp.MustCompile(`(\d{2}(?:\.\d+)?)\s*mm\b`)

// Lexicon is an immutable keyword index.
type Lexicon struct {
	matcher *ahocorasick.Matcher
	terms   []string
}

// New builds the lexicon automaton.
func New() *Lexicon {
	terms := make([]string, len(fiberTerms))
	for i, ft := range fiberTerms {
		terms[i] = ft.term
	}
	return &Lexicon{
		matcher: ahocorasick.NewStringMatcher(terms),
		terms:   terms,
	}
}

// FiberHits returns every fiber keyword occurring in text as a whole word,
// ordered by position. Matching is case-insensitive.
func (l *Lexicon) FiberHits(text string) []FiberHit {
	lower := strings.ToLower(text)
	hitIdx := l.matcher.Match([]byte(lower))
	if len(hitIdx) == 0 {
		return nil
	}

	var hits []FiberHit
	for _, idx := range hitIdx {
		term := l.terms[idx]
		for start := 0; ; {
			pos := strings.Index(lower[start:], term)
			if pos < 0 {
				break
			}
			pos += start
			if isWordBounded(lower, pos, len(term)) {
				hits = append(hits, FiberHit{
					Term:  term,
					Fiber: fiberTerms[idx].fiber,
					Start: pos,
				})
			}
			start = pos + len(term)
		}
	}
	sortHits(hits)
	return dedupeOverlapping(hits)
}

// Fiber returns the first fiber claim in text, if any.
func (l *Lexicon) Fiber(text string) (types.Fiber, bool) {
	hits := l.FiberHits(text)
	if len(hits) == 0 {
		return "", false
	}
	return hits[0].Fiber, true
}

// KnotSize returns an explicit knot diameter claim in text, if any.
func (l *Lexicon) KnotSize(text string) (float64, bool) {
	m := sizeRe.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return 0, false
	}
	size, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return size, true
}

// HasHandleIndicator reports whether text contains the literal word "handle".
func (l *Lexicon) HasHandleIndicator(text string) bool {
	return containsWord(strings.ToLower(text), "handle")
}

// HasKnotIndicator reports whether text contains the literal word "knot".
func (l *Lexicon) HasKnotIndicator(text string) bool {
	return containsWord(strings.ToLower(text), "knot")
}

func containsWord(lower, word string) bool {
	for start := 0; ; {
		pos := strings.Index(lower[start:], word)
		if pos < 0 {
			return false
		}
		pos += start
		if isWordBounded(lower, pos, len(word)) {
			return true
		}
		start = pos + len(word)
	}
}

// isWordBounded reports whether lower[pos:pos+n] is delimited by non-letter,
// non-digit characters on both sides.
func isWordBounded(lower string, pos, n int) bool {
	if pos > 0 && isWordChar(lower[pos-1]) {
		return false
	}
	end := pos + n
	if end < len(lower) && isWordChar(lower[end]) {
		return false
	}
	return true
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '_'
}

func sortHits(hits []FiberHit) {
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].Start < hits[j-1].Start; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
}

// dedupeOverlapping drops hits contained inside an earlier, longer hit, so
// "silvertip badger" reports both words but "synth" inside "synthetic" only
// reports once.
func dedupeOverlapping(hits []FiberHit) []FiberHit {
	var out []FiberHit
	end := -1
	for _, h := range hits {
		if h.Start < end {
			continue
		}
		out = append(out, h)
		end = h.Start + len(h.Term)
	}
	return out
}
