package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/knt-work/siromix/internal/config"
	"github.com/knt-work/siromix/internal/mixer"
	"github.com/knt-work/siromix/internal/model"
)

var (
	// ErrTooManyVariants is returned when a request exceeds MAX_VARIANTS.
	ErrTooManyVariants = errors.New("requested variant count exceeds the configured limit")
	// ErrTooManyQuestions is returned when a request exceeds MAX_QUESTIONS.
	ErrTooManyQuestions = errors.New("exam question count exceeds the configured limit")
)

// MixService orchestrates the mixing core: it enforces the server-side size
// limits, defaults the shuffle seed from the wall clock when the caller did
// not pin one, and assembles the answer key for the produced variants. The
// core itself stays fully deterministic; this is the only place a clock is
// consulted.
type MixService struct {
	cfg *config.Config
	log zerolog.Logger
}

// NewMixService creates a new MixService.
func NewMixService(cfg *config.Config, log zerolog.Logger) *MixService {
	return &MixService{
		cfg: cfg,
		log: log.With().Str("component", "mix_service").Logger(),
	}
}

// Mix builds the requested variants plus their shared answer key.
func (s *MixService) Mix(ctx context.Context, req *model.MixExamsRequest) (*model.MixExamsResponse, error) {
	if req.NumVariants > s.cfg.MaxVariants {
		return nil, ErrTooManyVariants
	}
	if len(req.Exam.Questions) > s.cfg.MaxQuestions {
		return nil, ErrTooManyQuestions
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	start := time.Now()

	variants, err := mixer.Mix(req.Exam, mixer.Options{
		NumVariants: req.NumVariants,
		ExamCodes:   req.ExamCodes,
		Seed:        seed,
		Workers:     s.cfg.MixWorkers,
	})
	if err != nil {
		return nil, err
	}

	answerKey, err := mixer.BuildAnswerKey(req.Exam, variants)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int("num_variants", req.NumVariants).
		Int("questions", len(req.Exam.Questions)).
		Bool("seeded", req.Seed != nil).
		Dur("elapsed", time.Since(start)).
		Msg("Exam mixed")

	return &model.MixExamsResponse{Variants: variants, AnswerKey: answerKey}, nil
}

// Check runs the pre-mix integrity validation over a parsed exam.
func (s *MixService) Check(ctx context.Context, exam model.ParsedExam) *model.CheckExamResponse {
	findings := mixer.CheckExam(exam)

	if len(findings) > 0 {
		s.log.Debug().
			Int("findings", len(findings)).
			Int("questions", len(exam.Questions)).
			Msg("Exam check found problems")
	}

	return &model.CheckExamResponse{
		OK:       len(findings) == 0,
		Findings: findings,
	}
}
