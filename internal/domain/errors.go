package domain

import "errors"

// Domain errors
var (
	ErrDrillNotFound  = errors.New("drill not found")
	ErrInputFrozen    = errors.New("text and count cannot change while the drill is running")
	ErrNotStarted     = errors.New("drill has not been started")
	ErrAlreadyStarted = errors.New("drill already started")
	ErrTextTooLong    = errors.New("text is too long")
)
