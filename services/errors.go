package services

import "errors"

// Sentinel errors for lookup/constraint failures. Callers match these with
// errors.Is to tell "no such row" apart from a store failure, which is always
// returned wrapped with context.
var (
	ErrGuestNotFound       = errors.New("guest not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomTypeNotFound    = errors.New("room type not found")
	ErrReservationNotFound = errors.New("reservation not found")

	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
	ErrInvalidStatus    = errors.New("unknown reservation status")
	ErrNoFlagsGiven     = errors.New("no room flags to update")
	ErrDuplicateRoom    = errors.New("room number already exists")
)
