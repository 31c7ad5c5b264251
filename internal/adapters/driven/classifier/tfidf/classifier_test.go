package tfidf

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayushsin9h/wanderstay-cli/internal/core/domain"
)

func trainingExamples() []domain.TrainingExample {
	return []domain.TrainingExample{
		{Text: "hi", Tag: "greeting"},
		{Text: "hello", Tag: "greeting"},
		{Text: "hey there", Tag: "greeting"},
		{Text: "good morning", Tag: "greeting"},
		{Text: "bye", Tag: "goodbye"},
		{Text: "goodbye", Tag: "goodbye"},
		{Text: "see you later", Tag: "goodbye"},
		{Text: "i want to book a room", Tag: "booking"},
		{Text: "do you have rooms available", Tag: "booking"},
		{Text: "reserve a suite for tonight", Tag: "booking"},
		{Text: "what amenities do you offer", Tag: "amenities"},
		{Text: "is there a pool", Tag: "amenities"},
		{Text: "do you have a gym and spa", Tag: "amenities"},
	}
}

func TestTrainThenClassifyTrainingPatterns(t *testing.T) {
	ctx := context.Background()
	c := NewClassifier(Config{Seed: 42})
	require.NoError(t, c.Train(ctx, trainingExamples()))

	// A fitted model reproduces the labels of its own training set.
	for _, ex := range trainingExamples() {
		tag, err := c.Classify(ctx, ex.Text)
		require.NoError(t, err)
		assert.Equal(t, ex.Tag, tag, "pattern %q", ex.Text)
	}
}

func TestClassifyUnseenVariants(t *testing.T) {
	ctx := context.Background()
	c := NewClassifier(Config{Seed: 42})
	require.NoError(t, c.Train(ctx, trainingExamples()))

	tests := []struct {
		input string
		want  string
	}{
		{"Hello!", "greeting"},
		{"hey", "greeting"},
		{"GOODBYE", "goodbye"},
		{"i want to reserve a room", "booking"},
		{"is there a gym", "amenities"},
	}
	for _, tt := range tests {
		tag, err := c.Classify(ctx, tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, tag, "input %q", tt.input)
	}
}

func TestClassifyNeverRefusesInput(t *testing.T) {
	ctx := context.Background()
	c := NewClassifier(Config{Seed: 42})
	require.NoError(t, c.Train(ctx, trainingExamples()))

	known := map[string]bool{
		"greeting": true, "goodbye": true, "booking": true, "amenities": true,
	}
	for _, input := range []string{"", "?!...", "zzzzz qqqqq", "   "} {
		tag, err := c.Classify(ctx, input)
		require.NoError(t, err, "input %q", input)
		assert.True(t, known[tag], "input %q produced unknown tag %q", input, tag)
	}
}

func TestClassifyBeforeTrain(t *testing.T) {
	c := NewClassifier(Config{})
	_, err := c.Classify(context.Background(), "hello")
	assert.ErrorIs(t, err, domain.ErrNotTrained)
}

func TestTrainNoExamples(t *testing.T) {
	c := NewClassifier(Config{})
	err := c.Train(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTrainingIsDeterministic(t *testing.T) {
	ctx := context.Background()
	inputs := []string{"hi", "bye bye", "any rooms free", "spa hours", "what", ""}

	var runs [][]string
	for i := 0; i < 2; i++ {
		c := NewClassifier(Config{Seed: 7})
		require.NoError(t, c.Train(ctx, trainingExamples()))

		tags := make([]string, len(inputs))
		for j, input := range inputs {
			tag, err := c.Classify(ctx, input)
			require.NoError(t, err)
			tags[j] = tag
		}
		runs = append(runs, tags)
	}

	assert.Equal(t, runs[0], runs[1])
}

func TestConcurrentClassify(t *testing.T) {
	ctx := context.Background()
	c := NewClassifier(Config{Seed: 42})
	require.NoError(t, c.Train(ctx, trainingExamples()))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tag, err := c.Classify(ctx, fmt.Sprintf("hello number %d", i))
			assert.NoError(t, err)
			assert.Equal(t, "greeting", tag)
		}(i)
	}
	wg.Wait()
}

func TestClassifyCancelledContext(t *testing.T) {
	c := NewClassifier(Config{Seed: 42})
	require.NoError(t, c.Train(context.Background(), trainingExamples()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Classify(ctx, "hello")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSingleClassCorpus(t *testing.T) {
	ctx := context.Background()
	c := NewClassifier(Config{Seed: 1})
	require.NoError(t, c.Train(ctx, []domain.TrainingExample{
		{Text: "hi", Tag: "greeting"},
		{Text: "hello", Tag: "greeting"},
	}))

	tag, err := c.Classify(ctx, "anything at all")
	require.NoError(t, err)
	assert.Equal(t, "greeting", tag)
}
