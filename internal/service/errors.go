package service

import "errors"

var (
	ErrEmptyPost       = errors.New("post body is empty")
	ErrPostTooLarge    = errors.New("post body is too large")
	ErrInvalidFragment = errors.New("url has no title/payload fragment")
	ErrRoundTrip       = errors.New("decoded payload does not match the original post")
)
