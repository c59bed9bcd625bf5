package models

import "errors"

// Domain-level errors shared by repositories, services and handlers.
var (
	ErrNotFound                = errors.New("not found")
	ErrAlreadyExists           = errors.New("already exists")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrInvalidToken            = errors.New("invalid token")
	ErrProductAlreadyInCapsule = errors.New("product already in capsule")
	ErrInvalidInput            = errors.New("invalid input")
)
