// Package tfidf implements the local intent classifier: a bag-of-n-grams
// TF-IDF vectorizer feeding a multinomial logistic regression model.
package tfidf

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// feature is one non-zero component of a sparse vector.
type feature struct {
	index int
	value float64
}

// Vectorizer converts raw text into sparse TF-IDF vectors over word
// n-grams. It is fitted once from the training texts and immutable
// afterwards: text seen later is transformed with the same vocabulary,
// and out-of-vocabulary n-grams contribute zero weight.
type Vectorizer struct {
	minN       int
	maxN       int
	vocabulary map[string]int
	idf        []float64
}

// NewVectorizer creates an unfitted vectorizer extracting n-grams of
// length minN through maxN.
func NewVectorizer(minN, maxN int) *Vectorizer {
	if minN < 1 {
		minN = 1
	}
	if maxN < minN {
		maxN = minN
	}
	return &Vectorizer{minN: minN, maxN: maxN}
}

// Fit builds the vocabulary and IDF weights from the training texts.
// Vocabulary indices are assigned in sorted n-gram order so fitting is
// fully deterministic.
func (v *Vectorizer) Fit(docs []string) {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, gram := range v.ngrams(doc) {
			if !seen[gram] {
				seen[gram] = true
				df[gram]++
			}
		}
	}

	grams := make([]string, 0, len(df))
	for gram := range df {
		grams = append(grams, gram)
	}
	sort.Strings(grams)

	v.vocabulary = make(map[string]int, len(grams))
	v.idf = make([]float64, len(grams))
	n := float64(len(docs))
	for i, gram := range grams {
		v.vocabulary[gram] = i
		// Smoothed IDF: acts as if one extra document contained
		// every term, so no term ever gets a zero weight.
		v.idf[i] = math.Log((1+n)/(1+float64(df[gram]))) + 1
	}
}

// Transform converts text into an L2-normalised sparse TF-IDF vector
// over the fitted vocabulary. Text entirely outside the vocabulary
// yields an empty (zero) vector, never an error.
func (v *Vectorizer) Transform(text string) []feature {
	counts := make(map[int]float64)
	for _, gram := range v.ngrams(text) {
		if idx, ok := v.vocabulary[gram]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	vec := make([]feature, 0, len(counts))
	var sumSquares float64
	for idx, count := range counts {
		w := count * v.idf[idx]
		vec = append(vec, feature{index: idx, value: w})
		sumSquares += w * w
	}

	norm := math.Sqrt(sumSquares)
	for i := range vec {
		vec[i].value /= norm
	}

	sort.Slice(vec, func(i, j int) bool { return vec[i].index < vec[j].index })
	return vec
}

// Dimensions returns the size of the fitted vocabulary.
func (v *Vectorizer) Dimensions() int {
	return len(v.vocabulary)
}

// ngrams extracts contiguous word n-grams of length minN through maxN.
func (v *Vectorizer) ngrams(text string) []string {
	tokens := tokenize(text)
	var grams []string
	for n := v.minN; n <= v.maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			grams = append(grams, strings.Join(tokens[i:i+n], " "))
		}
	}
	return grams
}

// tokenize lowercases text and splits it into runs of letters and
// digits. Punctuation-only input produces no tokens.
func tokenize(text string) []string {
	var tokens []string
	var current strings.Builder
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(r)
			continue
		}
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}
