package primitive

import "errors"

var (
	// ErrDegenerateTriangle is returned when two or more triangle vertices coincide.
	ErrDegenerateTriangle = errors.New("primitive: triangle vertices must be distinct")
	// ErrInvalidSize describes a box size with a NaN or infinite component.
	// NewAlignedBox and NewOrientedBox do not check size and never return it.
	ErrInvalidSize = errors.New("primitive: size must have finite, non-NaN components")
	// ErrIncompleteBuilder is returned by Builder.Build when not enough fields were set.
	ErrIncompleteBuilder = errors.New("primitive: builder does not have enough fields set to produce a collider")
)
