package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Mixing ────────────────────────────────────────────────────────
	ErrInvalidVariantCount ErrCode = "INVALID_VARIANT_COUNT"
	ErrVariantLimit        ErrCode = "VARIANT_LIMIT_EXCEEDED"
	ErrQuestionLimit       ErrCode = "QUESTION_LIMIT_EXCEEDED"
	ErrAlphabetExceeded    ErrCode = "ALPHABET_EXCEEDED"
	ErrDataIntegrity       ErrCode = "DATA_INTEGRITY"

	// ─── Exam codes ────────────────────────────────────────────────────
	ErrDuplicateExamCode  ErrCode = "DUPLICATE_EXAM_CODE"
	ErrEmptyExamCode      ErrCode = "EMPTY_EXAM_CODE"
	ErrCodeCountMismatch  ErrCode = "CODE_COUNT_MISMATCH"
	ErrCodeSpaceExhausted ErrCode = "CODE_SPACE_EXHAUSTED"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidPayload:
		return "The request payload is invalid."

	// ─── Mixing ────────────────────────────────────────────────────────
	case ErrInvalidVariantCount:
		return "At least one variant must be requested."
	case ErrVariantLimit:
		return "The requested variant count exceeds the server limit."
	case ErrQuestionLimit:
		return "The exam has more questions than the server accepts."
	case ErrAlphabetExceeded:
		return "A question has more options than the label alphabet supports."
	case ErrDataIntegrity:
		return "A question's correct label matches none of its options."

	// ─── Exam codes ────────────────────────────────────────────────────
	case ErrDuplicateExamCode:
		return "Exam codes must be unique."
	case ErrEmptyExamCode:
		return "Exam codes must not be empty."
	case ErrCodeCountMismatch:
		return "The number of exam codes must match the variant count."
	case ErrCodeSpaceExhausted:
		return "More exam codes were requested than the code space permits."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
