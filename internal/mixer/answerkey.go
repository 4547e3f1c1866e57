package mixer

import "github.com/knt-work/siromix/internal/model"

// BuildAnswerKey cross-references the source question order against every
// variant's relocated correct label. The result has one row per source
// question with one populated cell per variant; a variant missing a
// question's mixed counterpart fails with an IncompleteVariantError.
func BuildAnswerKey(exam model.ParsedExam, variants []model.MixedExam) ([]model.AnswerKeyRow, error) {
	// Index each variant by original question number once, so row assembly
	// stays linear in questions × variants.
	indexes := make([]map[int]model.MixedQuestion, len(variants))
	for i, variant := range variants {
		idx := make(map[int]model.MixedQuestion, len(variant.Questions))
		for _, mq := range variant.Questions {
			idx[mq.OriginalNumber] = mq
		}
		indexes[i] = idx
	}

	rows := make([]model.AnswerKeyRow, 0, len(exam.Questions))
	for _, q := range exam.Questions {
		row := model.AnswerKeyRow{
			QuestionNumber: q.Number,
			OriginalAnswer: q.CorrectLabel,
			PerVariant:     make(map[string]string, len(variants)),
		}
		for i, variant := range variants {
			mq, ok := indexes[i][q.Number]
			if !ok {
				return nil, &IncompleteVariantError{
					ExamCode:       variant.ExamCode,
					QuestionNumber: q.Number,
				}
			}
			row.PerVariant[variant.ExamCode] = mq.CorrectAnswer
		}
		rows = append(rows, row)
	}

	return rows, nil
}
