package services

import "errors"

// Sentinel errors forming the service error taxonomy. Services wrap them
// with %w and context; handlers classify with errors.Is and translate into
// HTTP status codes. Anything that is none of these is an internal error:
// its cause is logged server-side and callers only ever see ErrInternal.
var (
	// ErrNotFound signals that a lookup resolved no entity.
	ErrNotFound = errors.New("not found")

	// ErrConflict signals a uniqueness violation (duplicate title, slug
	// or email). The wrapping error carries the store's detail message.
	ErrConflict = errors.New("conflict")

	// ErrInvalidCredentials signals a failed login. Handlers must surface
	// it with a generic message only.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInternal is the opaque error returned for any unexpected
	// persistence failure. The underlying cause is never attached.
	ErrInternal = errors.New("unexpected error, check server logs")
)
