package core

import "fmt"

// SelectPalette draws count colors from base without replacement.
// Each draw picks a uniform index into the remaining candidates, so the
// result order depends only on the RNG sequence. base is not modified.
func SelectPalette(base []Color, count int, rng RNG) ([]Color, error) {
	if count < 1 || count > len(base) {
		return nil, fmt.Errorf("%w: palette size %d outside [1, %d]", ErrInvalidConfiguration, count, len(base))
	}

	remaining := make([]Color, len(base))
	copy(remaining, base)

	result := make([]Color, 0, count)
	for len(result) < count {
		i := rng.Intn(len(remaining))
		result = append(result, remaining[i])
		remaining = append(remaining[:i], remaining[i+1:]...)
	}
	return result, nil
}
