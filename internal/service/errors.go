package service

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrWrongPassword     = errors.New("wrong password")
	ErrForbidden         = errors.New("not the author of this post")
	ErrPostNotFound      = errors.New("post not found")
	ErrInvalidInput      = errors.New("title and content are required")
)
