package storage

import "errors"

var ErrUserNotFound = errors.New("user not found in storage")
var ErrSessionNotFound = errors.New("session not found in storage")
var ErrUserAlreadyExists = errors.New("user with this email already exists")

var errStoreUnavailable = errors.New("storage temporarily unavailable")
