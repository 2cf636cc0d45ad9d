// Package faultkin is the analysis core for fault-slip data: validate
// field measurements of striated planes and score candidate stress
// tensors against them.
//
// 🚀 What is faultkin?
//
//	A pure in-memory library that brings together:
//		• Orientation algebra: ENU vectors, rotation tensors, spherical
//		  conversion, plane bases, minimum-rotation frame comparison
//		• Fault vocabulary: direction/movement/data-type enumerations
//		  with tolerant text parsing and tabular record decoding
//		• Consistency checking: exhaustive per-record diagnostics and a
//		  normalized geometric form (normal, strike, dip, striation)
//		• Misfit engines: direct scoring of measured striations and
//		  Mohr-interval scoring of neoformed planes
//
// ✨ Why choose faultkin?
//
//   - Diagnoses everything – validation accumulates every defect in a
//     record instead of stopping at the first
//   - Honest degeneracy – hypotheses that predict no slip are flagged
//     and scored maximal, never thrown mid-batch
//   - Pure Go – no cgo, no I/O, no hidden state
//   - Search-agnostic – hypotheses are supplied per call, so any
//     inversion strategy can drive the scoring
//
// Under the hood, everything is organized under four subpackages:
//
//	orient/     — 3D vectors, rotation tensors & spherical conversion
//	fault/      — enumerations, observation records & tabular decoding
//	faultcheck/ — per-record validation, normalization & plane vectors
//	misfit/     — stress hypotheses, reduced tensors & misfit scoring
//
// Quick ASCII example:
//
//	      N
//	      │ strike
//	  ────┼────→ E
//	      │\
//	      │ \ striation (rake 90°: pure dip-slip)
//	      ↓  ↘
//
//	a plane striking North, dipping East, slipping downdip.
//
// Dive into the per-package docs for the conventions (ENU frame,
// azimuths clockwise from North, compression negative) and worked
// examples.
//
//	go get github.com/katalvlaran/faultkin
package faultkin
