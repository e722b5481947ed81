package game

import "errors"

var (
	ErrRoomNotFound       = errors.New("Room not found")
	ErrRoomFull           = errors.New("Room full")
	ErrNotAuthorized      = errors.New("Not authorized")
	ErrInvalidAction      = errors.New("Invalid action")
	ErrCodeSpaceExhausted = errors.New("Room code space exhausted")
)
