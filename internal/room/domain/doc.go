// Package domain defines the live meeting room state model: participants,
// session lifecycle, mode and quorum derivations, casting, agenda and vote
// sub-state, and the capability projection.
//
// Everything in this package is pure: no I/O, no locking, no clocks beyond
// injected functions. The engine package owns the single mutable instance of
// these shapes and is the only writer.
package domain
