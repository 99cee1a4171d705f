package ring

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/core"
)

// MinCapacity is the smallest storage length a Buffer accepts.
const MinCapacity = 4

// Errors returned by New and Init under the FailFast policy.
var (
	ErrCapacityTooSmall      = errors.New("ring: capacity must be at least 4")
	ErrCapacityNotPowerOfTwo = errors.New("ring: capacity must be a power of two")
)

func validateCapacity(n int) error {
	if n < MinCapacity {
		return fmt.Errorf("%w: %d", ErrCapacityTooSmall, n)
	}
	if !core.IsPowerOfTwo(n) {
		return fmt.Errorf("%w: %d", ErrCapacityNotPowerOfTwo, n)
	}
	return nil
}
