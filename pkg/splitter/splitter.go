// Package splitter decomposes a brush description into candidate
// (handle_text, knot_text) pairs. Delimiter splits rank highest; fiber-hint
// and quality heuristics fill in when no delimiter is present. The same
// algorithm backs both the automatic matcher and any manual-correction
// tooling, so the two never disagree about how a string divides.
package splitter

import (
	"fmt"
	"strings"

	"github.com/wetshaving/brushmatch/pkg/lexicon"
)

// Confidence ranks how trustworthy a split is.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// rank orders confidences for sorting; lower is better.
func (c Confidence) rank() int {
	switch c {
	case ConfidenceHigh:
		return 0
	case ConfidenceMedium:
		return 1
	}
	return 2
}

// Candidate is one proposed decomposition. HandleText precedes the
// delimiter by convention.
type Candidate struct {
	HandleText string
	KnotText   string
	Confidence Confidence
	Reasoning  string
}

// delimiters in detection priority order. The first delimiter present in
// the text wins; later ones are not consulted.
var delimiters = []string{" w/ ", " with ", " / ", "/", " - "}

// minComponentLen rejects splits whose side is too short to name anything.
const minComponentLen = 3

// Splitter produces split candidates for one input string.
type Splitter struct {
	lex *lexicon.Lexicon
}

// New creates a splitter sharing the given lexicon.
func New(lex *lexicon.Lexicon) *Splitter {
	return &Splitter{lex: lex}
}

// Split returns candidate decompositions in descending confidence order,
// or nil when no viable split exists. Input is expected to be normalized.
func (s *Splitter) Split(text string) []Candidate {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if cands := s.splitOnDelimiter(text); len(cands) > 0 {
		return cands
	}
	if cands := s.splitOnFiberHint(text); len(cands) > 0 {
		return cands
	}
	return s.splitOnQuality(text)
}

// splitOnDelimiter splits at every occurrence of the highest-priority
// delimiter found. Multiple occurrences yield one candidate per position;
// the scorer decides which decomposition matches best.
func (s *Splitter) splitOnDelimiter(text string) []Candidate {
	for _, delim := range delimiters {
		if !strings.Contains(text, delim) {
			continue
		}

		var cands []Candidate
		for start := 0; ; {
			pos := strings.Index(text[start:], delim)
			if pos < 0 {
				break
			}
			pos += start
			c, ok := s.makeCandidate(
				text[:pos], text[pos+len(delim):],
				ConfidenceHigh,
				fmt.Sprintf("delimiter %q at offset %d", delim, pos),
			)
			if ok {
				cands = append(cands, c)
			}
			start = pos + len(delim)
		}
		if len(cands) > 0 {
			return cands
		}
		// a delimiter was present but every split failed validation;
		// do not fall through to lower-priority delimiters
		return nil
	}
	return nil
}

// splitOnFiberHint splits before the first fiber keyword: the keyword side
// is the knot, the rest is the handle. Size-style tokens immediately before
// the keyword (e.g. "26mm boar") stay with the knot.
func (s *Splitter) splitOnFiberHint(text string) []Candidate {
	hits := s.lex.FiberHits(text)
	if len(hits) == 0 {
		return nil
	}

	boundary := knotStart(text, hits[0].Start)
	if boundary <= 0 {
		// fiber keyword leads the string; nothing left for a handle
		return nil
	}

	handleText := text[:boundary]
	knotText := text[boundary:]

	conf := ConfidenceHigh
	reason := fmt.Sprintf("fiber keyword %q marks knot side", hits[0].Term)
	if len(hits) > 1 {
		conf = ConfidenceMedium
		reason = "multiple fiber keywords; knot side chosen by position"
	}

	c, ok := s.makeCandidate(handleText, knotText, conf, reason)
	if !ok {
		return nil
	}
	return []Candidate{c}
}

// splitOnQuality falls back to the whitespace boundary nearest the middle
// of the string. Both sides passing the quality test yields medium
// confidence, otherwise low.
func (s *Splitter) splitOnQuality(text string) []Candidate {
	boundary := midpointBoundary(text)
	if boundary <= 0 {
		return nil
	}

	handleText := text[:boundary]
	knotText := text[boundary:]

	conf := ConfidenceLow
	if isQualityComponent(handleText) && isQualityComponent(knotText) {
		conf = ConfidenceMedium
	}

	c, ok := s.makeCandidate(handleText, knotText, conf, "midpoint heuristic, no delimiter or fiber hint")
	if !ok {
		return nil
	}
	return []Candidate{c}
}

// makeCandidate trims and validates both sides.
func (s *Splitter) makeCandidate(handleText, knotText string, conf Confidence, reason string) (Candidate, bool) {
	handleText = strings.TrimSpace(handleText)
	knotText = strings.TrimSpace(knotText)
	if len(handleText) < minComponentLen || len(knotText) < minComponentLen {
		return Candidate{}, false
	}
	return Candidate{
		HandleText: handleText,
		KnotText:   knotText,
		Confidence: conf,
		Reasoning:  reason,
	}, true
}

// knotStart walks left from the fiber keyword to find where the knot phrase
// begins: the keyword's word start, extended over immediately preceding
// digit-bearing tokens ("26mm", "2-band") that describe the knot.
func knotStart(text string, fiberPos int) int {
	start := wordStart(text, fiberPos)
	for start > 0 {
		prevEnd := start - 1
		for prevEnd > 0 && text[prevEnd-1] == ' ' {
			prevEnd--
		}
		prevStart := wordStart(text, prevEnd-1)
		token := text[prevStart:prevEnd]
		if !strings.ContainsAny(token, "0123456789") {
			break
		}
		start = prevStart
	}
	return start
}

// wordStart returns the index where the word containing pos begins.
func wordStart(text string, pos int) int {
	for pos > 0 && text[pos-1] != ' ' {
		pos--
	}
	return pos
}

// midpointBoundary returns the whitespace boundary nearest len(text)/2,
// or -1 when the text is a single token.
func midpointBoundary(text string) int {
	mid := len(text) / 2
	best := -1
	for i, r := range text {
		if r != ' ' {
			continue
		}
		if best < 0 || abs(i-mid) < abs(best-mid) {
			best = i
		}
	}
	return best
}

// isQualityComponent reports whether a side plausibly names a component:
// at least 5 characters and not purely numeric.
func isQualityComponent(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < 5 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
