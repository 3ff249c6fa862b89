package main

import "fmt"

// RoomCount is the fixed size of the roster. Rooms are numbered 1..RoomCount.
const RoomCount = 50

// RoomStatus is persisted as its integer value.
type RoomStatus int

const (
	NotOccupied RoomStatus = iota
	Occupied
)

func (s RoomStatus) String() string {
	switch s {
	case NotOccupied:
		return "NOT_OCCUPIED"
	case Occupied:
		return "OCCUPIED"
	default:
		return fmt.Sprintf("RoomStatus(%d)", int(s))
	}
}

func (s RoomStatus) valid() bool { return s == NotOccupied || s == Occupied }

// Guest is only meaningful while the room is Occupied. Checkout leaves the
// previous guest in place until the next check-in overwrites it.
type Guest struct {
	Name         string
	CheckInDate  string
	CheckOutDate string
}

type Room struct {
	Number            int
	Capacity          int
	Status            RoomStatus
	Guest             Guest
	DataEntryStaff    string
	HousekeepingStaff string
}

func defaultRoom(i int) Room {
	n := i + 1
	return Room{
		Number:            n,
		Capacity:          (i % 5) + 1,
		Status:            NotOccupied,
		DataEntryStaff:    fmt.Sprintf("DataEntryStaff%d", n),
		HousekeepingStaff: fmt.Sprintf("HousekeepingStaff%d", n),
	}
}

// Resumen de ocupación para la cabecera del listado.
type Occupancy struct {
	Occupied         int
	TotalCapacity    int
	OccupiedCapacity int
}
