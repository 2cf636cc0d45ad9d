// Package faultcheck decides whether one field observation describes a
// physically realizable striated plane, and derives its unit vectors
// when it does.
//
// 🚀 What is faultcheck?
//
//	Field records mix conventions: a striation is given as a rake from
//	a strike-line end for inclined planes, but as a compass trend for
//	horizontal ones; a dip direction means a compass bearing for an
//	inclined plane but marks the uplifted block for a vertical plane
//	with vertical striation. faultcheck encodes the full decision
//	procedure over these conventions and reports every violated rule
//	for a record in one pass.
//
// ✨ Key features:
//   - rule checks are independent functions; their diagnostics are
//     accumulated, never short-circuited (a user sees all problems at
//     once)
//   - two documented hard stops: missing/out-of-range strike or dip,
//     and the final striation-on-plane orthogonality check
//   - scalar ranges validated declaratively (go-playground/validator)
//   - on success, PlaneVectors: unit normal, strike, dip, striation
//     and striation-perpendicular vectors in the ENU frame, with
//     Dip × Strike = Normal
//   - a Normalized copy of the observation with Und written into the
//     fields the conventions declare meaningless for the given case
//
// ⚙️ Usage:
//
//	res := faultcheck.Check(obs)
//	if !res.OK {
//	    for _, d := range res.Errors { fmt.Println(obs.ID, d) }
//	    return
//	}
//	use(res.Vectors) // never nil when OK
//
// Validation is pure and per-record; records are independent and may be
// checked concurrently by the host.
package faultcheck
