package errors

import (
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid identity token")
	ErrInvalidSession     = errors.New("invalid session artifact")
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
)
