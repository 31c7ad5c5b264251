package tfidf

import (
	"math"
	"math/rand"
	"sort"
)

// trainConfig controls the gradient descent run.
type trainConfig struct {
	maxIter   int
	learnRate float64
	tolerance float64
	l2        float64
	seed      int64
}

// model is a fitted multinomial logistic regression classifier.
// It is immutable after fitSoftmax returns.
type model struct {
	classes []string
	weights [][]float64 // [class][feature]
	bias    []float64
}

// fitSoftmax trains a softmax regression model by full-batch gradient
// descent. The seed only perturbs the initial weights to break
// symmetry; given a fixed seed, training is deterministic.
func fitSoftmax(docs [][]feature, labels []int, classes []string, dims int, cfg trainConfig) *model {
	k := len(classes)
	rng := rand.New(rand.NewSource(cfg.seed))

	m := &model{
		classes: classes,
		weights: make([][]float64, k),
		bias:    make([]float64, k),
	}
	for c := 0; c < k; c++ {
		m.weights[c] = make([]float64, dims)
		for j := range m.weights[c] {
			m.weights[c][j] = (rng.Float64() - 0.5) * 1e-4
		}
	}

	n := float64(len(docs))
	probs := make([]float64, k)

	gradW := make([][]float64, k)
	gradB := make([]float64, k)
	for c := 0; c < k; c++ {
		gradW[c] = make([]float64, dims)
	}

	for iter := 0; iter < cfg.maxIter; iter++ {
		for c := 0; c < k; c++ {
			for j := range gradW[c] {
				gradW[c][j] = 0
			}
			gradB[c] = 0
		}

		// Accumulate the cross-entropy gradient over all examples.
		for i, doc := range docs {
			m.scoresInto(doc, probs)
			softmaxInPlace(probs)
			for c := 0; c < k; c++ {
				diff := probs[c]
				if c == labels[i] {
					diff -= 1
				}
				for _, f := range doc {
					gradW[c][f.index] += diff * f.value
				}
				gradB[c] += diff
			}
		}

		var maxStep float64
		for c := 0; c < k; c++ {
			for j := range m.weights[c] {
				step := cfg.learnRate * (gradW[c][j]/n + cfg.l2*m.weights[c][j])
				m.weights[c][j] -= step
				if s := math.Abs(step); s > maxStep {
					maxStep = s
				}
			}
			step := cfg.learnRate * gradB[c] / n
			m.bias[c] -= step
			if s := math.Abs(step); s > maxStep {
				maxStep = s
			}
		}

		if maxStep < cfg.tolerance {
			break
		}
	}

	return m
}

// predict returns the best-scoring class for the vector. Ties resolve
// to the lexicographically smaller class because classes are sorted.
func (m *model) predict(vec []feature) string {
	scores := make([]float64, len(m.classes))
	m.scoresInto(vec, scores)

	best := 0
	for c := 1; c < len(scores); c++ {
		if scores[c] > scores[best] {
			best = c
		}
	}
	return m.classes[best]
}

// scoresInto writes the raw linear scores for the vector into out.
func (m *model) scoresInto(vec []feature, out []float64) {
	for c := range m.classes {
		score := m.bias[c]
		for _, f := range vec {
			score += m.weights[c][f.index] * f.value
		}
		out[c] = score
	}
}

// softmaxInPlace converts raw scores to probabilities, shifting by the
// max score for numerical stability.
func softmaxInPlace(scores []float64) {
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}

	var sum float64
	for i, s := range scores {
		scores[i] = math.Exp(s - maxScore)
		sum += scores[i]
	}
	for i := range scores {
		scores[i] /= sum
	}
}

// sortedClasses returns the distinct labels in lexicographic order and
// a lookup from label to class index.
func sortedClasses(labels []string) ([]string, map[string]int) {
	set := make(map[string]bool)
	for _, label := range labels {
		set[label] = true
	}

	classes := make([]string, 0, len(set))
	for label := range set {
		classes = append(classes, label)
	}
	sort.Strings(classes)

	lookup := make(map[string]int, len(classes))
	for i, class := range classes {
		lookup[class] = i
	}
	return classes, lookup
}
