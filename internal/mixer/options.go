package mixer

import (
	"github.com/knt-work/siromix/internal/model"
)

// optionLabels is the supported label alphabet. Shuffled options are
// relabeled by their new position, first position first letter.
var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// RemapOptions shuffles a question's options with the given seed, relabels
// them in canonical order by new position and returns the mixed options
// together with the original-label to new-label mapping. Every original
// label appears exactly once as a mapping key. Option content is carried
// by reference, never copied or altered.
func RemapOptions(options []model.OptionItem, seed int64) ([]model.MixedOption, map[string]string, error) {
	if len(options) > len(optionLabels) {
		return nil, nil, &AlphabetExceededError{OptionCount: len(options)}
	}

	shuffled := Shuffle(options, seed)

	mapping := make(map[string]string, len(shuffled))
	mixed := make([]model.MixedOption, len(shuffled))
	for i, opt := range shuffled {
		newLabel := optionLabels[i]
		mapping[opt.Label] = newLabel
		mixed[i] = model.MixedOption{
			Label:         newLabel,
			OriginalLabel: opt.Label,
			Content:       opt.Content,
		}
	}

	return mixed, mapping, nil
}
