package core

import "errors"

// Error codes for domain errors, used in wire responses.
const (
	ErrCodeEmptyMessage   = "empty_message"
	ErrCodeMessageTooLong = "message_too_long"
	ErrCodeBadDeviceID    = "bad_device_id"
	ErrCodeBadRoom        = "bad_room"
	ErrCodeBanned         = "banned"
)

var (
	ErrEmptyMessage   = errors.New("invalid or missing message")
	ErrMessageTooLong = errors.New("message too long")
	ErrBadDeviceID    = errors.New("invalid or missing deviceId")
	ErrBadRoom        = errors.New("room name is required")
	ErrBanned         = errors.New("device is banned from the chat")
)
