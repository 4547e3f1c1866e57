// Package mixer generates shuffled exam variants from a parsed source exam.
//
// The whole package is a pure, synchronous transformation: every shuffle is
// driven by an explicit seed through the package-local Generator, so a fixed
// seed reproduces bit-identical output across runs. Wall-clock seeding, when
// wanted, is the caller's job.
package mixer

import (
	"fmt"
	"sync"

	"github.com/knt-work/siromix/internal/model"
)

// variantSeedStride separates the seed of consecutive variants so their
// question orders never collapse into each other.
const variantSeedStride = 1000

// Options configures one mixing run.
type Options struct {
	// NumVariants is the number of independent variants to build. Must be ≥ 1.
	NumVariants int

	// ExamCodes optionally supplies the variant codes. When empty, distinct
	// three-digit codes are generated from Seed. When present it must hold
	// exactly NumVariants distinct non-empty entries.
	ExamCodes []string

	// Seed is the base shuffle seed. Variant v shuffles its questions with
	// Seed + v*variantSeedStride; the question at new index idx shuffles its
	// options with that variant seed + idx.
	Seed int64

	// Workers caps how many variants are built concurrently. Values below 2
	// build sequentially. Each worker owns its generators, and variant v
	// always receives the seed intended for v regardless of scheduling.
	Workers int
}

// Mix builds opts.NumVariants shuffled variants of the source exam.
//
// Each variant reorders the questions, remaps every question's options and
// records where the originally-correct option moved. Any failure aborts the
// whole run with no partial output: a DataIntegrityError names a question
// whose correct label matches no option, an AlphabetExceededError a question
// with more options than labels. An exam with zero questions is valid and
// yields empty variants.
func Mix(exam model.ParsedExam, opts Options) ([]model.MixedExam, error) {
	if opts.NumVariants < 1 {
		return nil, ErrInvalidVariantCount
	}

	codes, err := resolveExamCodes(opts)
	if err != nil {
		return nil, err
	}

	variants := make([]model.MixedExam, opts.NumVariants)

	if opts.Workers < 2 || opts.NumVariants == 1 {
		for v := range variants {
			variants[v], err = buildVariant(exam, codes[v], variantSeed(opts.Seed, v))
			if err != nil {
				return nil, err
			}
		}
		return variants, nil
	}

	if err := mixParallel(exam, opts, codes, variants); err != nil {
		return nil, err
	}
	return variants, nil
}

// mixParallel fills variants using up to opts.Workers goroutines. Results
// land in their own slot, so output is identical to the sequential path.
func mixParallel(exam model.ParsedExam, opts Options, codes []string, variants []model.MixedExam) error {
	sem := make(chan struct{}, opts.Workers)
	errs := make([]error, opts.NumVariants)

	var wg sync.WaitGroup
	for v := 0; v < opts.NumVariants; v++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(v int) {
			defer wg.Done()
			defer func() { <-sem }()
			variants[v], errs[v] = buildVariant(exam, codes[v], variantSeed(opts.Seed, v))
		}(v)
	}
	wg.Wait()

	// Report the lowest-slot failure so the error is deterministic too.
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func variantSeed(base int64, v int) int64 {
	return base + int64(v)*variantSeedStride
}

// resolveExamCodes validates caller-supplied codes or generates fresh ones.
// Generated codes draw from a generator offset past every variant seed so
// they do not replay variant 0's shuffle stream.
func resolveExamCodes(opts Options) ([]string, error) {
	if len(opts.ExamCodes) > 0 {
		if len(opts.ExamCodes) != opts.NumVariants {
			return nil, &CodeCountMismatchError{Expected: opts.NumVariants, Got: len(opts.ExamCodes)}
		}
		if err := ValidateExamCodes(opts.ExamCodes); err != nil {
			return nil, err
		}
		return opts.ExamCodes, nil
	}

	gen := NewGenerator(variantSeed(opts.Seed, opts.NumVariants))
	return GenerateExamCodes(opts.NumVariants, gen)
}

// buildVariant shuffles the question order, remaps every question's options
// and tracks the relocated correct answer.
func buildVariant(exam model.ParsedExam, code string, seed int64) (model.MixedExam, error) {
	shuffled := Shuffle(exam.Questions, seed)

	questions := make([]model.MixedQuestion, len(shuffled))
	for idx, q := range shuffled {
		options, mapping, err := RemapOptions(q.Options, seed+int64(idx))
		if err != nil {
			return model.MixedExam{}, fmt.Errorf("question %d: %w", q.Number, err)
		}

		correct, ok := mapping[q.CorrectLabel]
		if !ok {
			return model.MixedExam{}, &DataIntegrityError{
				QuestionNumber: q.Number,
				CorrectLabel:   q.CorrectLabel,
			}
		}

		questions[idx] = model.MixedQuestion{
			OriginalNumber: q.Number,
			DisplayNumber:  idx + 1,
			Stem:           q.Stem,
			Options:        options,
			CorrectAnswer:  correct,
		}
	}

	return model.MixedExam{ExamCode: code, Questions: questions}, nil
}
