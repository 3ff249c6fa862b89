package main

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultSearchCacheSize = 64

// Inventory owns the 50 room slots, indexed by number-1.
// It is not safe for concurrent use; the menu loop is its only caller.
type Inventory struct {
	rooms [RoomCount]Room
	// nombre de huésped -> número de habitación (solo aciertos).
	// Todo mutador que cambie Status o Guest.Name debe hacer Purge().
	search    *lru.Cache[string, int]
	cacheSize int
}

func NewInventory(searchCacheSize int) (*Inventory, error) {
	if searchCacheSize <= 0 {
		searchCacheSize = defaultSearchCacheSize
	}
	c, err := lru.New[string, int](searchCacheSize)
	if err != nil {
		return nil, err
	}
	inv := &Inventory{search: c, cacheSize: searchCacheSize}
	inv.Initialize()
	return inv, nil
}

// Initialize resets every room to its default values.
func (inv *Inventory) Initialize() {
	for i := range inv.rooms {
		inv.rooms[i] = defaultRoom(i)
	}
	inv.search.Purge()
}

func (inv *Inventory) slot(number int) (*Room, error) {
	if number < 1 || number > RoomCount {
		return nil, ErrInvalidRoom{RoomNumber: number}
	}
	return &inv.rooms[number-1], nil
}

func (inv *Inventory) Room(number int) (Room, error) {
	r, err := inv.slot(number)
	if err != nil {
		return Room{}, err
	}
	return *r, nil
}

// CheckIn does not validate the dates, nor whether the guest already holds another room.
func (inv *Inventory) CheckIn(number int, guestName, checkInDate, checkOutDate string) error {
	r, err := inv.slot(number)
	if err != nil {
		return err
	}
	if r.Status == Occupied {
		return ErrAlreadyOccupied{RoomNumber: number}
	}
	r.Guest = Guest{Name: guestName, CheckInDate: checkInDate, CheckOutDate: checkOutDate}
	r.Status = Occupied
	inv.search.Purge()
	return nil
}

// CheckOut frees the room but keeps the guest fields.
func (inv *Inventory) CheckOut(number int) error {
	r, err := inv.slot(number)
	if err != nil {
		return err
	}
	if r.Status != Occupied {
		return ErrNotOccupied{RoomNumber: number}
	}
	r.Status = NotOccupied
	inv.search.Purge()
	return nil
}

// SearchByGuestName returns the lowest-numbered occupied room whose guest name
// is exactly name.
func (inv *Inventory) SearchByGuestName(name string) (int, bool) {
	if n, ok := inv.search.Get(name); ok {
		return n, true
	}
	for i := range inv.rooms {
		r := &inv.rooms[i]
		if r.Status == Occupied && r.Guest.Name == name {
			inv.search.Add(name, r.Number)
			return r.Number, true
		}
	}
	return 0, false
}

func (inv *Inventory) UpdateHousekeepingStaff(number int, name string) error {
	r, err := inv.slot(number)
	if err != nil {
		return err
	}
	r.HousekeepingStaff = name
	return nil
}

func (inv *Inventory) UpdateDataEntryStaff(number int, name string) error {
	r, err := inv.slot(number)
	if err != nil {
		return err
	}
	r.DataEntryStaff = name
	return nil
}

// ListAll returns copies in ascending room order.
func (inv *Inventory) ListAll() []Room {
	out := make([]Room, RoomCount)
	copy(out, inv.rooms[:])
	return out
}

// validateRoom checks the data model invariants for a room coming from outside
// the inventory.
func validateRoom(room Room) error {
	if room.Number < 1 || room.Number > RoomCount {
		return ErrInvalidRoom{RoomNumber: room.Number}
	}
	if room.Capacity < 1 {
		return ErrInvalidRoomData{RoomNumber: room.Number, Reason: fmt.Sprintf("capacity %d", room.Capacity)}
	}
	if !room.Status.valid() {
		return ErrInvalidRoomData{RoomNumber: room.Number, Reason: "status " + room.Status.String()}
	}
	return nil
}

// Apply overwrites the slot for room.Number with a persisted row.
func (inv *Inventory) Apply(room Room) error {
	if err := validateRoom(room); err != nil {
		return err
	}
	inv.rooms[room.Number-1] = room
	inv.search.Purge()
	return nil
}

// Replace copies every room from src. Used to swap in a fully loaded inventory.
func (inv *Inventory) Replace(src *Inventory) {
	inv.rooms = src.rooms
	inv.search.Purge()
}

func (inv *Inventory) Occupancy() Occupancy {
	var o Occupancy
	for _, r := range inv.rooms {
		o.TotalCapacity += r.Capacity
		if r.Status == Occupied {
			o.Occupied++
			o.OccupiedCapacity += r.Capacity
		}
	}
	return o
}
