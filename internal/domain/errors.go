package domain

import "errors"

// ErrScanFailure wraps any filesystem error that aborts a coverage scan.
var ErrScanFailure = errors.New("scan failed")

// Scaffold precondition failures. They are expected conditions the user can
// fix, reported without failing the command.
var (
	ErrTargetNotFound    = errors.New("file not found")
	ErrInvalidTarget     = errors.New("target must be a file, not a directory")
	ErrDestinationExists = errors.New("test already exists")
)
