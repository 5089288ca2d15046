package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUserEmailExists  = errors.New("email already registered")
	ErrPermissionDenied = errors.New("You do not have permission to perform this action")
	ErrUnknownOperation = errors.New("unknown operation")
)
