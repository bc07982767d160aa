// Package fsrs implements an FSRS-style spaced-repetition scheduling
// engine: a power-law forgetting curve, an interval calculator derived
// from it, and a review state machine that updates per-card difficulty
// and stability on every rating.
//
// Every function is pure. State values are passed and returned by value,
// the current time is always injected by the caller, and no function in
// this package performs I/O. Persistence of the resulting State and
// ReviewEntry values belongs to the caller.
package fsrs
