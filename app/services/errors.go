package services

import "errors"

var (
	// ErrForbidden means the requester is authenticated but does
	// not own the resource.
	ErrForbidden = errors.New("not authorized to modify this post")

	// ErrInvalidCredentials is deliberately generic: unknown email
	// and wrong password produce the same error.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers missing, malformed and expired tokens.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrInvalidPost wraps field validation failures.
	ErrInvalidPost = errors.New("invalid post")

	// ErrNotImage rejects uploads with a non-image MIME type.
	ErrNotImage = errors.New("only image files are allowed")

	// ErrImageTooLarge rejects uploads over MaxImageSize.
	ErrImageTooLarge = errors.New("image exceeds the maximum allowed size")
)
