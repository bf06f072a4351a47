// Package sample builds random texts for exercising the counting pipeline.
package sample

import (
	"math/rand"
	"strconv"
	"strings"
	"unicode"
)

// Generator produces randomized texts from a vocabulary.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator with a fixed seed so runs are reproducible.
func New(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Options controls Text.
type Options struct {
	// Words is the number of tokens emitted.
	Words int
	// CapsPct is the probability of capitalizing a word's first letter.
	CapsPct float64
	// NumberPct is the probability of emitting a decimal number instead of a word.
	NumberPct float64
	// SepPct is the probability of following a token with separator characters.
	SepPct float64
	// Separators are drawn from when a separator is emitted.
	Separators []rune
}

// Text joins randomly chosen vocabulary words with whitespace and separators.
func (g *Generator) Text(vocab []string, opts Options) string {
	var b strings.Builder
	for i := 0; i < opts.Words; i++ {
		if i > 0 {
			b.WriteString(g.whitespace())
		}
		var token string
		if opts.NumberPct > 0 && g.rnd.Float64() < opts.NumberPct {
			token = strconv.Itoa(g.rnd.Intn(100000))
		} else {
			token = applyCaps(g.rnd, vocab[g.rnd.Intn(len(vocab))], opts.CapsPct)
		}
		b.WriteString(token)
		b.WriteString(applySeparators(g.rnd, opts.SepPct, opts.Separators))
	}
	return b.String()
}

// Texts returns n independent texts.
func (g *Generator) Texts(n int, vocab []string, opts Options) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.Text(vocab, opts))
	}
	return out
}

func (g *Generator) whitespace() string {
	switch g.rnd.Intn(6) {
	case 0:
		return "\n"
	case 1:
		return "\t"
	case 2:
		return "  "
	default:
		return " "
	}
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 {
		return word
	}
	if rnd.Float64() > capsPct {
		return word
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func applySeparators(rnd *rand.Rand, sepPct float64, separators []rune) string {
	if sepPct <= 0 || len(separators) == 0 {
		return ""
	}
	if rnd.Float64() > sepPct {
		return ""
	}
	n := 1 + rnd.Intn(3)
	out := make([]rune, n)
	for i := range out {
		out[i] = separators[rnd.Intn(len(separators))]
	}
	return string(out)
}
