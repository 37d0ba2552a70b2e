// Package state models one analysis session as an explicit finite-state
// value.
//
// # Phases
//
//	Idle ──select──▶ FileSelected ──submit──▶ Uploading ──ok──▶ ResultsShown
//	                      ▲                       │
//	                      │                       └──fail──▶ ErrorShown
//	                      └────────── select (from any phase) ─────┘
//
// Session.Apply is the only transition function. It returns the next
// Session and an Effect for the caller to perform (start or cancel an
// upload), so the rules can be tested without a terminal or network.
//
// # Request tokens
//
// Every submission and every new selection advances a sequence number.
// Responses carry the token they were issued with and are applied only when
// it matches the latest one; anything else is reported as EffectDiscarded.
// Results therefore follow the last request made, not the last reply to
// arrive.
//
// # Errors
//
// Two kinds are shown, each with a fixed message:
//   - InvalidFileType: "Please upload a valid audio file."
//   - TransferFailure: "Analysis failed. Please check your connection."
//
// Results and errors are never on screen together. A failed upload clears
// the previous results.
//
// # Store
//
// Store wraps a Session with a mutex and owns the cancel function of the
// in-flight upload, so superseded requests are aborted as well as ignored.
package state
