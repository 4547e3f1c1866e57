package model

// MixedOption is an answer option after shuffling, relabeled by its new
// position. Content is the same slice the source option carried.
type MixedOption struct {
	Label         string    `json:"label"`
	OriginalLabel string    `json:"original_label"`
	Content       []Segment `json:"content"`
}

// MixedQuestion is one question inside a mixed variant.
type MixedQuestion struct {
	OriginalNumber int `json:"original_number"`

	// DisplayNumber is the 1-based position within the variant.
	DisplayNumber int `json:"display_number"`

	Stem    []Segment     `json:"stem"`
	Options []MixedOption `json:"options"`

	// CorrectAnswer is the post-shuffle label of the originally-correct option.
	CorrectAnswer string `json:"correct_answer"`
}

// MixedExam is one shuffled edition of the source exam.
type MixedExam struct {
	ExamCode  string          `json:"exam_code"`
	Questions []MixedQuestion `json:"questions"`
}

// AnswerKeyRow cross-references one source question against every variant.
type AnswerKeyRow struct {
	// QuestionNumber is the question's number in source order.
	QuestionNumber int `json:"question_number"`

	OriginalAnswer string `json:"original_answer"`

	// PerVariant maps exam code to the relocated correct label.
	PerVariant map[string]string `json:"per_variant"`
}
