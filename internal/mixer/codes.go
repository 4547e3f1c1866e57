package mixer

import "strconv"

// Generated exam codes are three-digit numbers, matching the printed code
// on each paper variant.
const (
	codeMin = 100
	codeMax = 999
)

// GenerateExamCodes draws count pairwise-distinct three-digit codes from
// the generator. Codes come from the same deterministic stream as the
// shuffles, so a fixed seed reproduces them exactly.
func GenerateExamCodes(count int, gen *Generator) ([]string, error) {
	space := codeMax - codeMin + 1
	if count > space {
		return nil, &ExhaustionError{Requested: count, Space: space}
	}

	seen := make(map[string]struct{}, count)
	codes := make([]string, 0, count)
	for len(codes) < count {
		code := strconv.Itoa(codeMin + gen.Intn(space))
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}

	return codes, nil
}

// ValidateExamCodes checks caller-supplied codes for non-emptiness and
// uniqueness. It returns ErrEmptyExamCode or a DuplicateCodeError naming
// the first offending code.
func ValidateExamCodes(codes []string) error {
	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		if code == "" {
			return ErrEmptyExamCode
		}
		if _, dup := seen[code]; dup {
			return &DuplicateCodeError{Code: code}
		}
		seen[code] = struct{}{}
	}
	return nil
}
