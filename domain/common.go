package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest = "failed to process request body"
	MessageFailedGetToken    = "failed to get token"

	ErrTokenNotFound = errors.New("failed to token not found")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrTokenExpired  = errors.New("token expired")
)
