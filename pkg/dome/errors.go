package dome

import "errors"

var (
	// ErrInvalidRadius indicates a non-positive radius.
	ErrInvalidRadius = errors.New("dome: radius must be positive")
	// ErrInvalidFrequency indicates a subdivision frequency outside [2,6].
	ErrInvalidFrequency = errors.New("dome: frequency must be between 2 and 6")
	// ErrInsufficientPalette indicates a palette with fewer than 2 colors.
	ErrInsufficientPalette = errors.New("dome: palette needs at least 2 colors")
	// ErrUnknownVariant indicates an unrecognized base-shape name.
	ErrUnknownVariant = errors.New("dome: unknown variant")
)
