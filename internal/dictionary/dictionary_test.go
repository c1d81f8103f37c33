package dictionary

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const corpus = `aa
abc
apple
abandon
absolute
absolutely
abbreviations
banana
bee
bakery
backpack
cat
cabinet
calendars
`

func TestLoadBuckets(t *testing.T) {
	d, err := Load(strings.NewReader(corpus))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// "aa" is too short, "abbreviations" too long.
	want := [Tiers]int{4, 4, 4}
	if got := d.Counts(); got != want {
		t.Errorf("Counts = %v, want %v", got, want)
	}
	if d.Len() != 12 {
		t.Errorf("Len = %d, want 12", d.Len())
	}
}

func TestPickRespectsTier(t *testing.T) {
	d, err := Load(strings.NewReader(corpus))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	rng := rand.New(rand.NewPCG(1, 2))
	tests := []struct {
		level  int
		minLen int
		maxLen int
	}{
		{0, 3, 5},
		{1, 3, 5},
		{2, 6, 7},
		{3, 8, 10},
		{9, 8, 10},
	}
	for _, tt := range tests {
		for i := 0; i < 200; i++ {
			w, ok := d.Pick(tt.level, rng)
			if !ok {
				t.Fatalf("level %d: Pick failed", tt.level)
			}
			if len(w) < tt.minLen || len(w) > tt.maxLen {
				t.Fatalf("level %d picked %q (len %d)", tt.level, w, len(w))
			}
		}
	}
}

func TestPickCoversLetters(t *testing.T) {
	d, err := FromWords("apple", "abandon", "absolute", "bee", "cat")
	if err != nil {
		t.Fatalf("FromWords: %v", err)
	}
	rng := rand.New(rand.NewPCG(3, 4))
	seen := map[byte]bool{}
	for i := 0; i < 300; i++ {
		w, _ := d.Pick(1, rng)
		seen[w[0]] = true
	}
	if len(seen) != 3 {
		t.Errorf("saw first letters %v, want a, b and c", seen)
	}
}

func TestLoadLowercasesAndTrims(t *testing.T) {
	d, err := FromWords("  APPLE\r", "Bandits", "Calendars")
	if err != nil {
		t.Fatalf("FromWords: %v", err)
	}
	w, _ := d.Pick(1, rand.New(rand.NewPCG(5, 6)))
	if w != "apple" {
		t.Errorf("Pick = %q, want apple", w)
	}
}

func TestLoadFormatErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		line int
	}{
		{"letter goes backwards", "apple\nbanana\nacorn\nabsolute", 3},
		{"non letter start", "apple\n1337x\n", 2},
		{"empty tier", "apple\nbanana\n", 0},
		{"empty input", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.in))
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("err = %v, want *FormatError", err)
			}
			if fe.Line != tt.line {
				t.Errorf("line = %d, want %d (%v)", fe.Line, tt.line, fe)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(corpus), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want not-exist", err)
	}
}

func TestTierOf(t *testing.T) {
	for n, want := range map[int]int{3: 1, 5: 1, 6: 2, 7: 2, 8: 3, 10: 3} {
		if got := TierOf(n); got != want {
			t.Errorf("TierOf(%d) = %d, want %d", n, got, want)
		}
	}
}
