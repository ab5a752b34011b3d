package game

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks a missing or invalid prototype, reference or setting.
	// It aborts the single fire or spawn attempt and leaves prior state intact.
	ErrConfiguration = errors.New("configuration error")

	// ErrStateViolation marks a request the current state does not allow.
	// It is never fatal; the request simply does not happen.
	ErrStateViolation = errors.New("state violation")

	ErrReloading    = fmt.Errorf("%w: cannon is reloading", ErrStateViolation)
	ErrOutOfAmmo    = fmt.Errorf("%w: out of ammo", ErrStateViolation)
	ErrNoFireIntent = fmt.Errorf("%w: pointer is not on the cannon", ErrStateViolation)
)

func configError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}
