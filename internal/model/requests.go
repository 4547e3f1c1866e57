package model

// MixExamsRequest is the payload for generating exam variants.
type MixExamsRequest struct {
	// Exam may hold zero questions; mixing an empty exam is valid.
	Exam ParsedExam `json:"exam"`

	NumVariants int `json:"num_variants" binding:"required,min=1"`

	// ExamCodes optionally supplies the variant codes. When present it must
	// contain exactly NumVariants distinct non-empty entries.
	ExamCodes []string `json:"exam_codes" binding:"omitempty,dive,required"`

	// Seed fixes the shuffle base seed for reproducible output. When nil the
	// server derives one from the wall clock.
	Seed *int64 `json:"seed"`
}

// MixExamsResponse bundles the variants with their shared answer key.
type MixExamsResponse struct {
	Variants  []MixedExam    `json:"variants"`
	AnswerKey []AnswerKeyRow `json:"answer_key"`
}

// CheckExamRequest is the payload for pre-mix integrity validation.
type CheckExamRequest struct {
	Exam ParsedExam `json:"exam"`
}

// CheckExamResponse lists every integrity finding in the exam.
type CheckExamResponse struct {
	OK       bool      `json:"ok"`
	Findings []Finding `json:"findings"`
}
