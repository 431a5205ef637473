package storage

import "errors"

var (
	ErrAdminExists   = errors.New("admin already exists")
	ErrAdminNotFound = errors.New("admin not found")
)

var (
	ErrParticipantExists   = errors.New("participant already exists")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrGiftExists          = errors.New("gift already exists")
	ErrGiftNotFound        = errors.New("gift not found")
	ErrAssociationNotFound = errors.New("association not found")
)
