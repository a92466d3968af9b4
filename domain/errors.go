package domain

import "errors"

var (
	// ErrInternalServerError is returned when an unexpected failure happens
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound is returned when the requested item does not exist
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict is returned when the item being created already exists
	ErrConflict = errors.New("your item already exists")
	// ErrBadParamInput is returned when the given request parameter is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrForbidden is returned when the actor lacks rights over the target
	ErrForbidden = errors.New("you are not allowed to perform this action")
	// ErrAuthenticationRequired is returned when the action needs an identified actor
	ErrAuthenticationRequired = errors.New("authentication required")
	// ErrInvalidParent is returned when a reply references a comment on a different post
	ErrInvalidParent = errors.New("parent comment does not belong to this post")
	// ErrCacheMiss is returned by cache layers when the key is absent
	ErrCacheMiss = errors.New("cache miss")
)
