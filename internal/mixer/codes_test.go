package mixer_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knt-work/siromix/internal/mixer"
)

// TestGenerateExamCodes_DistinctThreeDigit verifies generated codes are
// pairwise distinct three-digit numbers.
func TestGenerateExamCodes_DistinctThreeDigit(t *testing.T) {
	codes, err := mixer.GenerateExamCodes(20, mixer.NewGenerator(42))
	require.NoError(t, err)
	require.Len(t, codes, 20)

	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		_, dup := seen[code]
		assert.False(t, dup, "code %s repeats", code)
		seen[code] = struct{}{}

		n, convErr := strconv.Atoi(code)
		require.NoError(t, convErr)
		assert.GreaterOrEqual(t, n, 100)
		assert.LessOrEqual(t, n, 999)
	}
}

// TestGenerateExamCodes_Deterministic verifies a fixed seed reproduces the
// same codes in the same order.
func TestGenerateExamCodes_Deterministic(t *testing.T) {
	first, err := mixer.GenerateExamCodes(10, mixer.NewGenerator(7))
	require.NoError(t, err)
	second, err := mixer.GenerateExamCodes(10, mixer.NewGenerator(7))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestGenerateExamCodes_Exhaustion verifies requesting more codes than the
// space holds fails up front.
func TestGenerateExamCodes_Exhaustion(t *testing.T) {
	_, err := mixer.GenerateExamCodes(901, mixer.NewGenerator(1))

	var exhaustErr *mixer.ExhaustionError
	require.ErrorAs(t, err, &exhaustErr)
	assert.Equal(t, 901, exhaustErr.Requested)
	assert.Equal(t, 900, exhaustErr.Space)
}

// TestGenerateExamCodes_FullSpace verifies the entire code space can be
// drawn exactly once.
func TestGenerateExamCodes_FullSpace(t *testing.T) {
	codes, err := mixer.GenerateExamCodes(900, mixer.NewGenerator(3))
	require.NoError(t, err)

	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		seen[code] = struct{}{}
	}
	assert.Len(t, seen, 900)
}

// TestValidateExamCodes covers the accepted and rejected shapes of
// caller-supplied codes.
func TestValidateExamCodes(t *testing.T) {
	assert.NoError(t, mixer.ValidateExamCodes([]string{"101", "202", "303"}))
	assert.NoError(t, mixer.ValidateExamCodes(nil))

	assert.ErrorIs(t, mixer.ValidateExamCodes([]string{"101", ""}), mixer.ErrEmptyExamCode)

	err := mixer.ValidateExamCodes([]string{"101", "202", "101"})
	var dupErr *mixer.DuplicateCodeError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "101", dupErr.Code, "the offending code must be named")
}
