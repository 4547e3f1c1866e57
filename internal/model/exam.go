package model

// SegmentKind discriminates the content atom types inside a stem or option.
type SegmentKind string

const (
	SegmentText  SegmentKind = "text"
	SegmentImage SegmentKind = "image"
	SegmentMath  SegmentKind = "math"
)

// Segment is one atomic content unit of a question stem or option body.
// The mixer never interprets segment payloads; it only carries them by
// position. Exactly one payload field is meaningful for a given kind:
// Text for "text", AssetPath for "image", OMML for "math".
type Segment struct {
	Kind      SegmentKind `json:"kind" binding:"required,oneof=text image math"`
	Text      string      `json:"text,omitempty"`
	AssetPath string      `json:"asset_path,omitempty"`
	OMML      string      `json:"omml,omitempty"`
}

// OptionItem is a single answer option as produced by the document parser.
type OptionItem struct {
	// Label is a single letter, unique within its question.
	Label string `json:"label" binding:"required"`

	// Locked is reserved for a future "exclude from shuffle" feature.
	// Shuffling currently ignores it.
	Locked bool `json:"locked"`

	Content []Segment `json:"content"`
}

// Question is one graded multiple-choice question in source order.
type Question struct {
	// Number is the 1-based position in the source exam.
	Number int `json:"number" binding:"required,min=1"`

	Stem    []Segment    `json:"stem"`
	Options []OptionItem `json:"options" binding:"dive"`

	// CorrectLabel must equal exactly one option's label.
	CorrectLabel string `json:"correct_label" binding:"required"`
}

// ParsedExam is the read-only input produced by the document parser.
type ParsedExam struct {
	Questions []Question `json:"questions" binding:"dive"`
}
