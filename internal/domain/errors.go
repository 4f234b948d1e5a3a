package domain

import "errors"

var (
	ErrNetwork            = errors.New("platform unreachable")
	ErrInvalidCredentials = errors.New("login rejected: invalid credentials or challenge")
	ErrCourseNotFound     = errors.New("course not found")
	ErrSessionClosed      = errors.New("session closed")
	ErrIndexNotReady      = errors.New("course index not loaded")
	ErrSecretNotFound     = errors.New("secret not found")
)
