package main

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInventory(t *testing.T) *Inventory {
	t.Helper()
	inv, err := NewInventory(8)
	require.NoError(t, err)
	return inv
}

func TestNewInventory_Defaults(t *testing.T) {
	inv := newTestInventory(t)

	rooms := inv.ListAll()
	require.Len(t, rooms, RoomCount)
	for i, r := range rooms {
		n := i + 1
		assert.Equal(t, n, r.Number)
		assert.Equal(t, (n-1)%5+1, r.Capacity)
		assert.Equal(t, NotOccupied, r.Status)
		assert.Equal(t, Guest{}, r.Guest)
		assert.Equal(t, "DataEntryStaff"+strconv.Itoa(n), r.DataEntryStaff)
		assert.Equal(t, "HousekeepingStaff"+strconv.Itoa(n), r.HousekeepingStaff)
	}
}

func TestCheckIn_InvalidRoom(t *testing.T) {
	inv := newTestInventory(t)

	for _, n := range []int{0, -1, 51} {
		err := inv.CheckIn(n, "Alice", "2024-01-01", "2024-01-05")
		var invalid ErrInvalidRoom
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, n, invalid.RoomNumber)
	}
}

func TestCheckIn_AlreadyOccupied(t *testing.T) {
	inv := newTestInventory(t)

	require.NoError(t, inv.CheckIn(5, "Alice", "2024-01-01", "2024-01-05"))
	err := inv.CheckIn(5, "Bob", "2024-02-01", "2024-02-02")
	assert.ErrorAs(t, err, &ErrAlreadyOccupied{})

	r, err := inv.Room(5)
	require.NoError(t, err)
	assert.Equal(t, Occupied, r.Status)
	assert.Equal(t, Guest{Name: "Alice", CheckInDate: "2024-01-01", CheckOutDate: "2024-01-05"}, r.Guest)
}

func TestCheckIn_DatesNotValidated(t *testing.T) {
	inv := newTestInventory(t)

	require.NoError(t, inv.CheckIn(1, "Carol", "2024-05-10", "2024-05-01"))
	require.NoError(t, inv.CheckIn(2, "Carol", "not a date", ""))
}

func TestCheckOut(t *testing.T) {
	inv := newTestInventory(t)
	require.NoError(t, inv.CheckIn(5, "Alice", "2024-01-01", "2024-01-05"))

	require.NoError(t, inv.CheckOut(5))
	r, _ := inv.Room(5)
	assert.Equal(t, NotOccupied, r.Status)
	// los datos del huésped se conservan
	assert.Equal(t, "Alice", r.Guest.Name)
	assert.Equal(t, "2024-01-05", r.Guest.CheckOutDate)

	assert.ErrorAs(t, inv.CheckOut(5), &ErrNotOccupied{})
	assert.ErrorAs(t, inv.CheckOut(51), &ErrInvalidRoom{})
	assert.ErrorAs(t, inv.CheckOut(0), &ErrInvalidRoom{})
}

func TestCheckIn_AfterCheckOutOverwritesGuest(t *testing.T) {
	inv := newTestInventory(t)
	require.NoError(t, inv.CheckIn(9, "Alice", "a", "b"))
	require.NoError(t, inv.CheckOut(9))
	require.NoError(t, inv.CheckIn(9, "Dan", "c", "d"))

	r, _ := inv.Room(9)
	assert.Equal(t, Guest{Name: "Dan", CheckInDate: "c", CheckOutDate: "d"}, r.Guest)
}

func TestSearchByGuestName(t *testing.T) {
	inv := newTestInventory(t)
	require.NoError(t, inv.CheckIn(5, "Alice", "2024-01-01", "2024-01-05"))

	n, ok := inv.SearchByGuestName("Alice")
	require.True(t, ok)
	assert.Equal(t, 5, n)

	_, ok = inv.SearchByGuestName("alice")
	assert.False(t, ok, "search is case-sensitive")
	_, ok = inv.SearchByGuestName("Ali")
	assert.False(t, ok, "search is exact")

	require.NoError(t, inv.CheckOut(5))
	_, ok = inv.SearchByGuestName("Alice")
	assert.False(t, ok, "stale guest data must not match after checkout")
}

func TestSearchByGuestName_LowestRoomWins(t *testing.T) {
	inv := newTestInventory(t)
	require.NoError(t, inv.CheckIn(30, "Eve", "", ""))
	require.NoError(t, inv.CheckIn(12, "Eve", "", ""))

	n, ok := inv.SearchByGuestName("Eve")
	require.True(t, ok)
	assert.Equal(t, 12, n)

	require.NoError(t, inv.CheckOut(12))
	n, ok = inv.SearchByGuestName("Eve")
	require.True(t, ok)
	assert.Equal(t, 30, n)
}

func TestSearchByGuestName_CacheFollowsMutations(t *testing.T) {
	inv := newTestInventory(t)
	require.NoError(t, inv.CheckIn(20, "Frank", "", ""))
	n, _ := inv.SearchByGuestName("Frank")
	require.Equal(t, 20, n)

	// una habitación menor con el mismo nombre debe ganar aunque haya caché
	require.NoError(t, inv.CheckIn(3, "Frank", "", ""))
	n, _ = inv.SearchByGuestName("Frank")
	assert.Equal(t, 3, n)

	require.NoError(t, inv.Apply(Room{Number: 3, Capacity: 4, Status: NotOccupied, Guest: Guest{Name: "Frank"}}))
	n, _ = inv.SearchByGuestName("Frank")
	assert.Equal(t, 20, n)

	inv.Initialize()
	_, ok := inv.SearchByGuestName("Frank")
	assert.False(t, ok)
}

func TestUpdateStaff(t *testing.T) {
	inv := newTestInventory(t)
	before := inv.ListAll()

	require.NoError(t, inv.UpdateHousekeepingStaff(12, "Jordan"))
	after := inv.ListAll()
	for i := range after {
		if after[i].Number == 12 {
			assert.Equal(t, "Jordan", after[i].HousekeepingStaff)
			assert.Equal(t, before[i].DataEntryStaff, after[i].DataEntryStaff)
			continue
		}
		assert.Equal(t, before[i], after[i])
	}

	require.NoError(t, inv.CheckIn(12, "Gina", "", ""))
	require.NoError(t, inv.UpdateDataEntryStaff(12, "Pat"))
	r, _ := inv.Room(12)
	assert.Equal(t, "Pat", r.DataEntryStaff)
	assert.Equal(t, Occupied, r.Status)

	assert.ErrorAs(t, inv.UpdateHousekeepingStaff(0, "x"), &ErrInvalidRoom{})
	assert.ErrorAs(t, inv.UpdateDataEntryStaff(51, "x"), &ErrInvalidRoom{})
}

func TestListAll_ReturnsCopies(t *testing.T) {
	inv := newTestInventory(t)
	rooms := inv.ListAll()
	rooms[0].Status = Occupied
	rooms[0].HousekeepingStaff = "changed"

	r, _ := inv.Room(1)
	assert.Equal(t, NotOccupied, r.Status)
	assert.Equal(t, "HousekeepingStaff1", r.HousekeepingStaff)
}

func TestApply(t *testing.T) {
	inv := newTestInventory(t)
	room := Room{Number: 7, Capacity: 5, Status: Occupied, Guest: Guest{Name: "Hal"}, DataEntryStaff: "d", HousekeepingStaff: "h"}
	require.NoError(t, inv.Apply(room))

	got, _ := inv.Room(7)
	assert.Equal(t, room, got)
	assert.ErrorAs(t, inv.Apply(Room{Number: 99, Capacity: 1}), &ErrInvalidRoom{})
}

func TestApply_RejectsBrokenInvariants(t *testing.T) {
	inv := newTestInventory(t)
	want := inv.ListAll()

	var bad ErrInvalidRoomData
	require.ErrorAs(t, inv.Apply(Room{Number: 7, Capacity: 0}), &bad)
	assert.Equal(t, 7, bad.RoomNumber)
	assert.ErrorAs(t, inv.Apply(Room{Number: 7, Capacity: -2}), &ErrInvalidRoomData{})
	assert.ErrorAs(t, inv.Apply(Room{Number: 7, Capacity: 3, Status: RoomStatus(7)}), &ErrInvalidRoomData{})
	assert.Equal(t, want, inv.ListAll())
}

func TestReplace(t *testing.T) {
	inv := newTestInventory(t)
	require.NoError(t, inv.CheckIn(2, "Ola", "", ""))
	n, _ := inv.SearchByGuestName("Ola")
	require.Equal(t, 2, n)

	src := newTestInventory(t)
	require.NoError(t, src.CheckIn(9, "Ola", "", ""))
	inv.Replace(src)

	n, ok := inv.SearchByGuestName("Ola")
	require.True(t, ok)
	assert.Equal(t, 9, n)
	assert.Equal(t, src.ListAll(), inv.ListAll())
}

func TestOccupancy(t *testing.T) {
	inv := newTestInventory(t)
	assert.Equal(t, Occupancy{TotalCapacity: 150}, inv.Occupancy())

	require.NoError(t, inv.CheckIn(4, "a", "", ""))
	require.NoError(t, inv.CheckIn(5, "b", "", ""))
	assert.Equal(t, Occupancy{Occupied: 2, TotalCapacity: 150, OccupiedCapacity: 9}, inv.Occupancy())
}

func TestRoomStatus_String(t *testing.T) {
	assert.Equal(t, "NOT_OCCUPIED", NotOccupied.String())
	assert.Equal(t, "OCCUPIED", Occupied.String())
	assert.Equal(t, "RoomStatus(7)", RoomStatus(7).String())
}
