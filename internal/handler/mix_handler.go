package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/knt-work/siromix/internal/mixer"
	"github.com/knt-work/siromix/internal/model"
	"github.com/knt-work/siromix/internal/response"
	"github.com/knt-work/siromix/internal/service"
	"github.com/knt-work/siromix/internal/validator"
)

type MixHandler struct {
	mixService *service.MixService
}

func NewMixHandler(mixService *service.MixService) *MixHandler {
	return &MixHandler{mixService: mixService}
}

// MixExams godoc
// POST /api/v1/exams/mix
func (h *MixHandler) MixExams(c *gin.Context) {
	var req model.MixExamsRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	res, err := h.mixService.Mix(c.Request.Context(), &req)
	if err != nil {
		failMix(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

// CheckExam godoc
// POST /api/v1/exams/check
func (h *MixHandler) CheckExam(c *gin.Context) {
	var req model.CheckExamRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	response.Success(c, http.StatusOK, h.mixService.Check(c.Request.Context(), req.Exam))
}

// failMix maps mixing errors onto envelope error codes. Input problems are
// 400, integrity and allocation failures 422, anything unrecognized 500.
func failMix(c *gin.Context, err error) {
	var (
		integrityErr *mixer.DataIntegrityError
		alphabetErr  *mixer.AlphabetExceededError
		dupCodeErr   *mixer.DuplicateCodeError
		mismatchErr  *mixer.CodeCountMismatchError
		exhaustErr   *mixer.ExhaustionError
	)

	switch {
	case errors.Is(err, mixer.ErrInvalidVariantCount):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidVariantCount)
	case errors.Is(err, service.ErrTooManyVariants):
		response.Fail(c, http.StatusBadRequest, response.ErrVariantLimit)
	case errors.Is(err, service.ErrTooManyQuestions):
		response.Fail(c, http.StatusBadRequest, response.ErrQuestionLimit)
	case errors.Is(err, mixer.ErrEmptyExamCode):
		response.Fail(c, http.StatusBadRequest, response.ErrEmptyExamCode)
	case errors.As(err, &mismatchErr):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrCodeCountMismatch, map[string]string{
			"expected": strconv.Itoa(mismatchErr.Expected),
			"got":      strconv.Itoa(mismatchErr.Got),
		})
	case errors.As(err, &dupCodeErr):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrDuplicateExamCode, map[string]string{
			"exam_code": dupCodeErr.Code,
		})
	case errors.As(err, &alphabetErr):
		response.FailWithFields(c, http.StatusUnprocessableEntity, response.ErrAlphabetExceeded, map[string]string{
			"option_count": strconv.Itoa(alphabetErr.OptionCount),
		})
	case errors.As(err, &integrityErr):
		response.FailWithFields(c, http.StatusUnprocessableEntity, response.ErrDataIntegrity, map[string]string{
			"question_number": strconv.Itoa(integrityErr.QuestionNumber),
			"correct_label":   integrityErr.CorrectLabel,
		})
	case errors.As(err, &exhaustErr):
		response.FailWithFields(c, http.StatusUnprocessableEntity, response.ErrCodeSpaceExhausted, map[string]string{
			"requested": strconv.Itoa(exhaustErr.Requested),
		})
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
