package domain

import "errors"

var (
	ErrSessionNotFound           = errors.New("session not found")
	ErrStepMismatch              = errors.New("action not allowed in current step")
	ErrInvalidTable              = errors.New("invalid table number")
	ErrUnknownPersona            = errors.New("unknown persona")
	ErrUnknownGender             = errors.New("unknown gender")
	ErrUnknownRelationshipStatus = errors.New("unknown relationship status")
	ErrPopupNotVisible           = errors.New("popup is not visible")
	ErrPopupStep                 = errors.New("action not allowed in current popup step")
	ErrChatNotReady              = errors.New("chat is not ready for messages")
)
