// Package orient provides the 3D orientation algebra used throughout
// faultkin: unit vectors, 3×3 tensors, spherical conversions, rotation
// construction and frame comparison.
//
// 🚀 What is orient?
//
//	A small, allocation-free kernel for orientation geometry in the
//	East-North-Up (ENU) frame used by structural geologists:
//	  • X = East, Y = North, Z = Up
//	  • azimuths measured in degrees, clockwise from North
//	  • plunges measured in degrees, positive downward from horizontal
//
// ✨ Key features:
//   - value-type Vec3 / Tensor3 with the usual products and norms
//   - spherical↔Cartesian conversion (LineVector, TrendPlunge)
//   - proper rotation tensors via Rodrigues' formula (RotationAboutAxis)
//   - right-handed frame tensors from axis triples (FrameRows)
//   - MinRotationAngle: minimum rotation between two frames whose axes
//     are only required to be parallel, not identically oriented
//   - PlaneBasis / GreatCircleTrace: strike & dip basis and great-circle
//     trace of a plane from its upward unit normal
//
// ⚙️ Usage:
//
//	n := orient.LineVector(90, -60) // upward pole of a plane dipping 30° E
//	b, err := orient.PlaneBasis(n)  // strike & dip vectors of the plane
//	if err != nil { ... }
//	θ, err := orient.MinRotationAngle(t)
//
// All functions are pure and deterministic; none allocate beyond their
// return values. Errors are package-level sentinels checked with errors.Is.
package orient
