package mixer_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knt-work/siromix/internal/mixer"
	"github.com/knt-work/siromix/internal/model"
)

// makeOptions builds one option per label with distinctive text content.
func makeOptions(labels ...string) []model.OptionItem {
	opts := make([]model.OptionItem, len(labels))
	for i, label := range labels {
		opts[i] = model.OptionItem{
			Label: label,
			Content: []model.Segment{
				{Kind: model.SegmentText, Text: "option " + label},
			},
		}
	}
	return opts
}

// makeQuestion builds a four-option question with the given correct label.
func makeQuestion(number int, correct string) model.Question {
	return model.Question{
		Number: number,
		Stem: []model.Segment{
			{Kind: model.SegmentText, Text: fmt.Sprintf("question %d", number)},
			{Kind: model.SegmentMath, OMML: "<m:oMath/>"},
		},
		Options:      makeOptions("A", "B", "C", "D"),
		CorrectLabel: correct,
	}
}

// sampleExam builds n questions with correct labels rotating through A-D.
func sampleExam(n int) model.ParsedExam {
	labels := []string{"A", "B", "C", "D"}
	questions := make([]model.Question, n)
	for i := range questions {
		questions[i] = makeQuestion(i+1, labels[i%len(labels)])
	}
	return model.ParsedExam{Questions: questions}
}

// TestMix_FixedSeedReproducible covers the canonical scenario: two
// questions with correct labels B and A, two variants, fixed seed.
// Re-running must reproduce bit-identical variants.
func TestMix_FixedSeedReproducible(t *testing.T) {
	exam := model.ParsedExam{Questions: []model.Question{
		makeQuestion(1, "B"),
		makeQuestion(2, "A"),
	}}
	opts := mixer.Options{NumVariants: 2, Seed: 42}

	first, err := mixer.Mix(exam, opts)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := mixer.Mix(exam, opts)
	require.NoError(t, err)

	assert.Equal(t, first, second, "a fixed seed must reproduce identical variants")

	// A different seed must still be valid, though it may coincide on tiny
	// exams; only the structural invariants are asserted.
	other, err := mixer.Mix(exam, mixer.Options{NumVariants: 2, Seed: 43})
	require.NoError(t, err)
	for _, variant := range other {
		assertVariantInvariants(t, exam, variant)
	}
}

// TestMix_VariantInvariants verifies every structural invariant on a larger
// exam across several variants.
func TestMix_VariantInvariants(t *testing.T) {
	exam := sampleExam(12)

	variants, err := mixer.Mix(exam, mixer.Options{NumVariants: 5, Seed: 2024})
	require.NoError(t, err)
	require.Len(t, variants, 5)

	codes := make(map[string]struct{}, len(variants))
	for _, variant := range variants {
		_, dup := codes[variant.ExamCode]
		assert.False(t, dup, "exam code %s repeats within one run", variant.ExamCode)
		codes[variant.ExamCode] = struct{}{}

		assertVariantInvariants(t, exam, variant)
	}
}

// assertVariantInvariants checks one mixed variant against its source exam:
// question bijection, contiguous display numbers, option label bijection,
// verbatim stems and relocated correct answers.
func assertVariantInvariants(t *testing.T, exam model.ParsedExam, variant model.MixedExam) {
	t.Helper()

	require.Len(t, variant.Questions, len(exam.Questions))

	source := make(map[int]model.Question, len(exam.Questions))
	for _, q := range exam.Questions {
		source[q.Number] = q
	}

	seenNumbers := make(map[int]struct{}, len(variant.Questions))
	for idx, mq := range variant.Questions {
		assert.Equal(t, idx+1, mq.DisplayNumber, "display numbers must be contiguous from 1")

		src, ok := source[mq.OriginalNumber]
		require.True(t, ok, "original number %d not in source", mq.OriginalNumber)
		_, dup := seenNumbers[mq.OriginalNumber]
		assert.False(t, dup, "original number %d repeats", mq.OriginalNumber)
		seenNumbers[mq.OriginalNumber] = struct{}{}

		assert.Equal(t, src.Stem, mq.Stem, "stem must be copied verbatim")

		// Option originalLabel set must equal the source label set.
		originals := make([]string, 0, len(mq.Options))
		for _, opt := range mq.Options {
			originals = append(originals, opt.OriginalLabel)
		}
		sourceLabels := make([]string, 0, len(src.Options))
		for _, opt := range src.Options {
			sourceLabels = append(sourceLabels, opt.Label)
		}
		assert.ElementsMatch(t, sourceLabels, originals)

		// New labels are contiguous from "A" by position, and the correct
		// answer is wherever the originally-correct option landed.
		for i, opt := range mq.Options {
			assert.Equal(t, string(rune('A'+i)), opt.Label)
			if opt.OriginalLabel == src.CorrectLabel {
				assert.Equal(t, opt.Label, mq.CorrectAnswer, "question %d: correct answer must follow the correct option", mq.OriginalNumber)
			}
		}
	}
}

// TestMix_EmptyExam verifies an exam with zero questions yields the
// requested number of empty variants, not an error.
func TestMix_EmptyExam(t *testing.T) {
	variants, err := mixer.Mix(model.ParsedExam{}, mixer.Options{NumVariants: 3, Seed: 1})

	require.NoError(t, err)
	require.Len(t, variants, 3)
	for _, variant := range variants {
		assert.Empty(t, variant.Questions)
		assert.NotEmpty(t, variant.ExamCode)
	}
}

// TestMix_InvalidVariantCount verifies V ≤ 0 is rejected before any work.
func TestMix_InvalidVariantCount(t *testing.T) {
	for _, count := range []int{0, -1} {
		variants, err := mixer.Mix(sampleExam(2), mixer.Options{NumVariants: count, Seed: 1})
		assert.ErrorIs(t, err, mixer.ErrInvalidVariantCount)
		assert.Nil(t, variants)
	}
}

// TestMix_CustomCodes verifies caller-supplied codes are used verbatim.
func TestMix_CustomCodes(t *testing.T) {
	codes := []string{"D01", "D02", "D03"}

	variants, err := mixer.Mix(sampleExam(3), mixer.Options{NumVariants: 3, ExamCodes: codes, Seed: 5})
	require.NoError(t, err)

	got := make([]string, 0, len(variants))
	for _, variant := range variants {
		got = append(got, variant.ExamCode)
	}
	assert.Equal(t, codes, got)
}

// TestMix_DuplicateCustomCode verifies a repeated custom code aborts the
// run naming the offender, with zero variants produced.
func TestMix_DuplicateCustomCode(t *testing.T) {
	codes := []string{"101", "202", "303", "202", "404"}

	variants, err := mixer.Mix(sampleExam(2), mixer.Options{NumVariants: 5, ExamCodes: codes, Seed: 5})

	var dupErr *mixer.DuplicateCodeError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "202", dupErr.Code)
	assert.Nil(t, variants)
}

// TestMix_CodeCountMismatch verifies supplied codes must match the variant
// count exactly.
func TestMix_CodeCountMismatch(t *testing.T) {
	_, err := mixer.Mix(sampleExam(2), mixer.Options{NumVariants: 3, ExamCodes: []string{"101", "202"}, Seed: 5})

	var mismatchErr *mixer.CodeCountMismatchError
	require.ErrorAs(t, err, &mismatchErr)
	assert.Equal(t, 3, mismatchErr.Expected)
	assert.Equal(t, 2, mismatchErr.Got)
}

// TestMix_DataIntegrity verifies a correct label matching no option aborts
// the whole run naming the question.
func TestMix_DataIntegrity(t *testing.T) {
	exam := model.ParsedExam{Questions: []model.Question{
		makeQuestion(1, "A"),
		makeQuestion(2, "E"), // no option labeled E
		makeQuestion(3, "B"),
	}}

	variants, err := mixer.Mix(exam, mixer.Options{NumVariants: 4, Seed: 9})

	var integrityErr *mixer.DataIntegrityError
	require.ErrorAs(t, err, &integrityErr)
	assert.Equal(t, 2, integrityErr.QuestionNumber)
	assert.Equal(t, "E", integrityErr.CorrectLabel)
	assert.Nil(t, variants, "no partial output on integrity failure")
}

// TestMix_AlphabetExceeded verifies an oversized option list fails naming
// the question through the wrapped error.
func TestMix_AlphabetExceeded(t *testing.T) {
	wide := model.Question{
		Number:       1,
		Options:      makeOptions("A", "B", "C", "D", "E", "F", "G"),
		CorrectLabel: "A",
	}

	_, err := mixer.Mix(model.ParsedExam{Questions: []model.Question{wide}}, mixer.Options{NumVariants: 1, Seed: 1})

	var alphabetErr *mixer.AlphabetExceededError
	require.ErrorAs(t, err, &alphabetErr)
	assert.Contains(t, err.Error(), "question 1")
}

// TestMix_ParallelMatchesSequential verifies worker scheduling never
// changes the output: variant v always gets the seed intended for v.
func TestMix_ParallelMatchesSequential(t *testing.T) {
	exam := sampleExam(20)

	sequential, err := mixer.Mix(exam, mixer.Options{NumVariants: 8, Seed: 77, Workers: 1})
	require.NoError(t, err)

	parallel, err := mixer.Mix(exam, mixer.Options{NumVariants: 8, Seed: 77, Workers: 4})
	require.NoError(t, err)

	assert.Equal(t, sequential, parallel)
}

// TestMix_ParallelPropagatesFailure verifies a broken question still aborts
// the run when variants are built concurrently.
func TestMix_ParallelPropagatesFailure(t *testing.T) {
	exam := model.ParsedExam{Questions: []model.Question{
		makeQuestion(1, "A"),
		makeQuestion(2, "Z"),
	}}

	variants, err := mixer.Mix(exam, mixer.Options{NumVariants: 6, Seed: 3, Workers: 3})

	var integrityErr *mixer.DataIntegrityError
	require.ErrorAs(t, err, &integrityErr)
	assert.Equal(t, 2, integrityErr.QuestionNumber)
	assert.Nil(t, variants)
}
