package libpatch

import "errors"

var (
	ErrExists       = errors.New("module already exists")
	ErrNotFound     = errors.New("module not found")
	ErrHashMismatch = errors.New("bundle hash mismatch")
	ErrUnknownOp    = errors.New("unknown patch op")
)
