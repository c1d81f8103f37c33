// Package dictionary loads the word corpus and hands out words by difficulty tier.
//
// The corpus is one word per line, sorted by first letter. Words are bucketed by
// first letter and by length: up to 5 letters is tier 1, 6-7 is tier 2, 8 or more
// is tier 3. Rows shorter than 3 or longer than 10 characters are skipped.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

const (
	Tiers   = 3
	Letters = 26

	MinWordLen = 3
	MaxWordLen = 10

	progressEvery = 50000
)

// Rand is the randomness Pick draws from. *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// FormatError reports a corpus row that breaks the file's ordering rules, or a tier
// left without words.
type FormatError struct {
	Line   int
	Word   string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line == 0 {
		return "dictionary: " + e.Reason
	}
	return fmt.Sprintf("dictionary line %d (%q): %s", e.Line, e.Word, e.Reason)
}

// Dictionary holds words bucketed by tier and first letter.
type Dictionary struct {
	buckets [Tiers][Letters][]string
	counts  [Tiers]int
}

// TierOf returns the difficulty tier of a word of length n.
func TierOf(n int) int {
	switch {
	case n <= 5:
		return 1
	case n <= 7:
		return 2
	default:
		return 3
	}
}

// LoadFile reads the corpus at path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load parses a corpus. First letters must never go backwards; a letter that comes
// back after a later one has started is a FormatError.
func Load(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{}
	sc := bufio.NewScanner(r)
	line := 0
	last := -1
	words := 0
	for sc.Scan() {
		line++
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if len(w) < MinWordLen || len(w) > MaxWordLen {
			continue
		}
		c := w[0]
		if c < 'a' || c > 'z' {
			return nil, &FormatError{Line: line, Word: w, Reason: "word does not start with a letter"}
		}
		letter := int(c - 'a')
		if letter < last {
			return nil, &FormatError{
				Line:   line,
				Word:   w,
				Reason: fmt.Sprintf("letter %q does not fit after %q", c, byte('a'+last)),
			}
		}
		last = letter

		tier := TierOf(len(w))
		d.buckets[tier-1][letter] = append(d.buckets[tier-1][letter], w)
		d.counts[tier-1]++
		words++
		if words%progressEvery == 0 {
			log.Printf("dictionary: parsed %d words...", words)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	for t, n := range d.counts {
		if n == 0 {
			return nil, &FormatError{Reason: fmt.Sprintf("tier %d has no words", t+1)}
		}
	}
	log.Printf("dictionary: parsed %d words (tier 1: %d, tier 2: %d, tier 3: %d)",
		words, d.counts[0], d.counts[1], d.counts[2])
	return d, nil
}

// Pick returns a random word for level. Levels outside 1..3 use the nearest tier.
// A letter is chosen uniformly among the letters that have words in the tier, then a
// word uniformly within it. It reports false when the tier is empty.
func (d *Dictionary) Pick(level int, rng Rand) (string, bool) {
	tier := min(max(level, 1), Tiers) - 1
	var letters [Letters]int
	n := 0
	for l, b := range d.buckets[tier] {
		if len(b) > 0 {
			letters[n] = l
			n++
		}
	}
	if n == 0 {
		return "", false
	}
	b := d.buckets[tier][letters[rng.IntN(n)]]
	return b[rng.IntN(len(b))], true
}

// Counts returns the number of words per tier.
func (d *Dictionary) Counts() [Tiers]int {
	return d.counts
}

// Len returns the total number of words.
func (d *Dictionary) Len() int {
	return d.counts[0] + d.counts[1] + d.counts[2]
}

// FromWords builds a dictionary from an in-memory list, applying the same rules as
// Load.
func FromWords(words ...string) (*Dictionary, error) {
	return Load(strings.NewReader(strings.Join(words, "\n")))
}
