package domain

// IntentRecord pairs an intent tag with the example phrases that train it
// and the canned responses that answer it. Records are loaded once at
// startup and never mutated afterwards.
type IntentRecord struct {
	// Tag is the intent label, unique within a corpus.
	Tag string `json:"tag"`

	// Patterns are example phrases used as training input for the tag.
	Patterns []string `json:"patterns"`

	// Responses are the reply templates one of which is returned,
	// chosen uniformly at random, when the tag is predicted.
	Responses []string `json:"responses"`
}

// Validate checks the record invariants: a non-empty tag, at least one
// pattern, and at least one response.
func (r IntentRecord) Validate() error {
	if r.Tag == "" {
		return ErrInvalidInput
	}
	if len(r.Patterns) == 0 || len(r.Responses) == 0 {
		return ErrInvalidInput
	}
	return nil
}

// TrainingExample is one (pattern, owning tag) pair flattened from the
// corpus. Order is irrelevant to the classifier but Text and Tag must
// stay paired.
type TrainingExample struct {
	Text string
	Tag  string
}

// Corpus is the full set of intent records for one process lifetime.
type Corpus []IntentRecord

// TrainingExamples flattens the corpus into (pattern, tag) pairs in
// record order.
func (c Corpus) TrainingExamples() []TrainingExample {
	var examples []TrainingExample
	for _, record := range c {
		for _, pattern := range record.Patterns {
			examples = append(examples, TrainingExample{Text: pattern, Tag: record.Tag})
		}
	}
	return examples
}

// FindByTag returns the record whose tag matches, or false when no
// record matches. The miss path exists because a corpus can be edited
// on disk while a long-lived model keeps serving the labels it was
// trained on.
func (c Corpus) FindByTag(tag string) (IntentRecord, bool) {
	for _, record := range c {
		if record.Tag == tag {
			return record, true
		}
	}
	return IntentRecord{}, false
}

// TotalPatterns counts training texts across all records.
func (c Corpus) TotalPatterns() int {
	total := 0
	for _, record := range c {
		total += len(record.Patterns)
	}
	return total
}
