package model

// FindingCode is a stable identifier for one class of integrity problem.
type FindingCode string

const (
	FindingCorrectMarkMissing      FindingCode = "CORRECT_MARK_MISSING"
	FindingDuplicateQuestionNumber FindingCode = "DUPLICATE_QUESTION_NUMBER"
	FindingDuplicateOptionLabel    FindingCode = "DUPLICATE_OPTION_LABEL"
	FindingNoOptions               FindingCode = "NO_OPTIONS"
	FindingTooManyOptions          FindingCode = "TOO_MANY_OPTIONS"
)

// Finding is one integrity problem located in a parsed exam. Check reports
// all findings at once so a frontend can surface every broken question in a
// single pass instead of failing on the first.
type Finding struct {
	Code           FindingCode `json:"code"`
	QuestionNumber int         `json:"question_number"`

	// Detail names the offending label or number when the code alone is
	// ambiguous (e.g. which option label repeats).
	Detail string `json:"detail,omitempty"`
}
