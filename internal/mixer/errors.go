package mixer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidVariantCount is returned when fewer than one variant is requested.
	ErrInvalidVariantCount = errors.New("variant count must be at least 1")

	// ErrEmptyExamCode is returned when a caller-supplied exam code is blank.
	ErrEmptyExamCode = errors.New("exam code must not be empty")
)

// AlphabetExceededError reports a question whose option count cannot be
// covered by the label alphabet.
type AlphabetExceededError struct {
	OptionCount int
}

func (e *AlphabetExceededError) Error() string {
	return fmt.Sprintf("%d options exceed the %d-letter label alphabet", e.OptionCount, len(optionLabels))
}

// DataIntegrityError reports a question whose correct label matches none of
// its own options. The whole mixing run is aborted: a single malformed
// variant would invalidate the shared answer key.
type DataIntegrityError struct {
	QuestionNumber int
	CorrectLabel   string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("question %d: correct label %q matches no option", e.QuestionNumber, e.CorrectLabel)
}

// DuplicateCodeError reports a caller-supplied exam code that repeats.
type DuplicateCodeError struct {
	Code string
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("duplicate exam code %q", e.Code)
}

// CodeCountMismatchError reports caller-supplied codes whose count does not
// match the requested variant count.
type CodeCountMismatchError struct {
	Expected int
	Got      int
}

func (e *CodeCountMismatchError) Error() string {
	return fmt.Sprintf("%d exam codes supplied for %d variants", e.Got, e.Expected)
}

// ExhaustionError reports a request for more generated codes than the code
// space holds.
type ExhaustionError struct {
	Requested int
	Space     int
}

func (e *ExhaustionError) Error() string {
	return fmt.Sprintf("%d exam codes requested but only %d are available", e.Requested, e.Space)
}

// IncompleteVariantError reports a variant missing the mixed counterpart of
// a source question while building the answer key.
type IncompleteVariantError struct {
	ExamCode       string
	QuestionNumber int
}

func (e *IncompleteVariantError) Error() string {
	return fmt.Sprintf("variant %s has no entry for question %d", e.ExamCode, e.QuestionNumber)
}
