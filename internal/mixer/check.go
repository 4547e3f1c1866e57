package mixer

import "github.com/knt-work/siromix/internal/model"

// CheckExam scans a parsed exam for structural problems that would make
// mixing unsafe. Unlike Mix, which aborts on the first broken question, it
// collects every finding so all problems can be fixed in one pass.
func CheckExam(exam model.ParsedExam) []model.Finding {
	findings := []model.Finding{}

	seenNumbers := make(map[int]struct{}, len(exam.Questions))
	for _, q := range exam.Questions {
		if _, dup := seenNumbers[q.Number]; dup {
			findings = append(findings, model.Finding{
				Code:           model.FindingDuplicateQuestionNumber,
				QuestionNumber: q.Number,
			})
		}
		seenNumbers[q.Number] = struct{}{}

		findings = append(findings, checkQuestion(q)...)
	}

	return findings
}

func checkQuestion(q model.Question) []model.Finding {
	var findings []model.Finding

	if len(q.Options) == 0 {
		return append(findings, model.Finding{
			Code:           model.FindingNoOptions,
			QuestionNumber: q.Number,
		})
	}
	if len(q.Options) > len(optionLabels) {
		findings = append(findings, model.Finding{
			Code:           model.FindingTooManyOptions,
			QuestionNumber: q.Number,
		})
	}

	seenLabels := make(map[string]struct{}, len(q.Options))
	correctFound := false
	for _, opt := range q.Options {
		if _, dup := seenLabels[opt.Label]; dup {
			findings = append(findings, model.Finding{
				Code:           model.FindingDuplicateOptionLabel,
				QuestionNumber: q.Number,
				Detail:         opt.Label,
			})
		}
		seenLabels[opt.Label] = struct{}{}

		if opt.Label == q.CorrectLabel {
			correctFound = true
		}
	}

	if !correctFound {
		findings = append(findings, model.Finding{
			Code:           model.FindingCorrectMarkMissing,
			QuestionNumber: q.Number,
			Detail:         q.CorrectLabel,
		})
	}

	return findings
}
