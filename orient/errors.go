package orient

import "errors"

// Sentinel errors for the orientation kernel. All public functions return
// these (possibly wrapped with fmt.Errorf("...: %w", Err)); tests and
// callers must match via errors.Is. No function panics on user input.
var (
	// ErrZeroVector is returned when a direction is required but the
	// input has (near-)zero magnitude.
	ErrZeroVector = errors.New("orient: zero-magnitude vector")

	// ErrNotUnit is returned when an axis or normal must be unit length
	// within UnitTol but is not.
	ErrNotUnit = errors.New("orient: vector is not unit length")

	// ErrNotOrthonormal is returned when three axes must form a
	// right-handed orthonormal triple within OrthoTol but do not.
	ErrNotOrthonormal = errors.New("orient: axes are not a right-handed orthonormal triple")

	// ErrNotRotation is returned when a tensor presented as a rotation
	// implies a cosine outside [-1,1] beyond AngleTol.
	ErrNotRotation = errors.New("orient: tensor is not a proper rotation")
)
