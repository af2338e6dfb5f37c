package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrValidationEmptyNoteText       = errors.New("note text is empty")
	ErrValidationBadLocation         = errors.New("location is out of range")
	ErrValidationEmptyUpdate         = errors.New("update contains no fields")
	ErrValidationBadMarker           = errors.New("marker data is invalid")
	ErrUnsupportedAttachmentKind     = errors.New("unsupported attachment kind")
	ErrValidationEmptyAttachmentBody = errors.New("attachment body is empty")
)
