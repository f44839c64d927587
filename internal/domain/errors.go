package domain

import "errors"

var (
	ErrEmptyDeck        = errors.New("deck is empty")
	ErrInvalidSlotIndex = errors.New("slot index out of range")
	ErrInvalidSlotCount = errors.New("slot count must be a positive even number")
	ErrNothingPending   = errors.New("no face-up pair awaiting resolution")
)
