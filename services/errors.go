package services

import "errors"

// Sentinel errors shared across services and the HTTP mapping layer.
var (
	// Validation and business-rule failures. These never mutate state.
	ErrValidationFailed    = errors.New("validation failed")
	ErrInvalidPresentCount = errors.New("a draw needs exactly 6 or 8 present players")
	ErrEmptyPlayerName     = errors.New("player name must not be empty")
	ErrInvalidTeamSlot     = errors.New("team slot index must be between 0 and 3")
	ErrInvalidMatchIndex   = errors.New("match index must be between 0 and 11")
	ErrInvalidSide         = errors.New("score side must be A or B")
	ErrInvalidPresentTake  = errors.New("bulk presence accepts only 6 or 8 players")

	// A finalized tournament stays finalized until an explicit reset. The
	// second finalize is a no-op for the caller, not a user-facing failure.
	ErrAlreadyFinished = errors.New("tournament is already finished")

	// Privileged operation attempted without the admin capability.
	ErrPermissionDenied = errors.New("operation allowed only for the admin")

	// Authentication
	ErrAuthInvalidCredentials = errors.New("invalid username or password")
)
