package main

import (
	"errors"
	"fmt"
)

// Errores del adaptador de persistencia. Se envuelven con %w para conservar la causa.
var (
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrSchema           = errors.New("schema error")
	ErrQuery            = errors.New("query error")
)

type ErrInvalidRoom struct{ RoomNumber int }

func (e ErrInvalidRoom) Error() string {
	return fmt.Sprintf("invalid room number %d (must be 1..%d)", e.RoomNumber, RoomCount)
}

type ErrAlreadyOccupied struct{ RoomNumber int }

func (e ErrAlreadyOccupied) Error() string {
	return fmt.Sprintf("room %d is already occupied", e.RoomNumber)
}

type ErrNotOccupied struct{ RoomNumber int }

func (e ErrNotOccupied) Error() string {
	return fmt.Sprintf("room %d is not occupied", e.RoomNumber)
}

// ErrInvalidRoomData: fila persistida que rompería los invariantes del modelo.
type ErrInvalidRoomData struct {
	RoomNumber int
	Reason     string
}

func (e ErrInvalidRoomData) Error() string {
	return fmt.Sprintf("invalid data for room %d: %s", e.RoomNumber, e.Reason)
}
