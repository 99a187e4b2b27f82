package engine

import "errors"

// ErrNoPrincipal means an operation ran without an authenticated session.
// This is a contract violation of the caller, not a user-facing state.
var ErrNoPrincipal = errors.New("operation requires an authenticated session")

// ErrNotParticipating rejects MVP votes from users who did not answer yes
// for the current week.
var ErrNotParticipating = errors.New("voter is not participating this week")
