package service

import "errors"

// 业务哨兵错误，handler 层据此映射响应码与文案
var (
	ErrNotFound           = errors.New("record not found")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrWeakPassword       = errors.New("weak password")
	ErrEmailExists        = errors.New("email already exists")
	ErrUsernameExists     = errors.New("username already exists")
	ErrCategoryExists     = errors.New("category already exists")
	ErrCategoryInUse      = errors.New("category still referenced by posts")
	ErrExternalReadOnly   = errors.New("external posts are read only")
	ErrSourcesUnavailable = errors.New("all content sources unavailable")
	ErrAlreadyLiked       = errors.New("post already liked")
)
