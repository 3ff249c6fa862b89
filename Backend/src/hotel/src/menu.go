package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
)

const menuText = `
Hotel Management System
1. Display Rooms
2. Check-In
3. Check-Out
4. Search Guest
5. Update Housekeeping Staff
6. Update Data Entry Staff
7. Save Data
8. Exit
9. Reload Data
`

// Menu is the operator console. It owns no state besides its collaborators;
// the inventory is passed in by the caller.
type Menu struct {
	inv    *Inventory
	store  RoomStore
	events Events
	in     *bufio.Scanner
	out    io.Writer
}

func NewMenu(inv *Inventory, store RoomStore, events Events, in io.Reader, out io.Writer) *Menu {
	return &Menu{inv: inv, store: store, events: events, in: bufio.NewScanner(in), out: out}
}

// Run blocks until the operator picks Exit or the input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprint(m.out, menuText)
		line, ok := m.prompt("Enter your choice: ")
		if !ok {
			fmt.Fprintln(m.out)
			return m.in.Err()
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			choice = 0
		}

		switch choice {
		case 1:
			m.displayRooms(ctx)
		case 2:
			ok = m.checkIn(ctx)
		case 3:
			ok = m.checkOut(ctx)
		case 4:
			ok = m.searchGuest()
		case 5:
			ok = m.updateStaff(ctx, "housekeeping")
		case 6:
			ok = m.updateStaff(ctx, "data_entry")
		case 7:
			m.save(ctx)
		case 8:
			fmt.Fprintln(m.out, "Exiting the program.")
			return nil
		case 9:
			m.reload(ctx)
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
		if !ok {
			fmt.Fprintln(m.out)
			return m.in.Err()
		}
	}
}

func (m *Menu) prompt(text string) (string, bool) {
	fmt.Fprint(m.out, text)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// promptRoom devuelve 0 si la entrada no es un número.
func (m *Menu) promptRoom(text string) (int, bool) {
	line, ok := m.prompt(text)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, true
	}
	return n, true
}

func (m *Menu) report(err error) {
	var (
		invalid  ErrInvalidRoom
		occupied ErrAlreadyOccupied
		free     ErrNotOccupied
	)
	switch {
	case errors.As(err, &invalid):
		fmt.Fprintln(m.out, "Invalid room number.")
	case errors.As(err, &occupied):
		fmt.Fprintln(m.out, "Room is already occupied.")
	case errors.As(err, &free):
		fmt.Fprintln(m.out, "Room is not occupied.")
	default:
		fmt.Fprintf(m.out, "Error: %v\n", err)
	}
}

func (m *Menu) publish(ctx context.Context, key string, payload any) {
	if m.events == nil {
		return
	}
	if err := m.events.Publish(ctx, key, payload); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("event not published")
	}
}

func (m *Menu) displayRooms(ctx context.Context) {
	occ := m.inv.Occupancy()
	fmt.Fprintf(m.out, "\n%d/%d rooms occupied, %d of %d beds in use\n",
		occ.Occupied, RoomCount, occ.OccupiedCapacity, occ.TotalCapacity)
	if m.store != nil {
		if st, err := m.store.Stats(ctx); err != nil {
			log.Warn().Err(err).Msg("store stats unavailable")
		} else {
			fmt.Fprintf(m.out, "Store: %s rows for %s rooms\n",
				humanize.Comma(st.Rows), humanize.Comma(st.DistinctRooms))
		}
	}

	tw := tabwriter.NewWriter(m.out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "Room Number\tCapacity\tOccupied\tGuest\tData Entry Staff\tHousekeeping Staff")
	for _, r := range m.inv.ListAll() {
		occupied, guest := "No", "-"
		if r.Status == Occupied {
			occupied, guest = "Yes", r.Guest.Name
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\n",
			r.Number, r.Capacity, occupied, guest, r.DataEntryStaff, r.HousekeepingStaff)
	}
	_ = tw.Flush()
}

func (m *Menu) checkIn(ctx context.Context) bool {
	n, ok := m.promptRoom("Enter room number for check-in: ")
	if !ok {
		return false
	}
	// se valida antes de pedir los datos del huésped
	r, err := m.inv.Room(n)
	if err != nil {
		m.report(err)
		return true
	}
	if r.Status == Occupied {
		m.report(ErrAlreadyOccupied{RoomNumber: n})
		return true
	}

	name, ok := m.prompt("Enter guest name: ")
	if !ok {
		return false
	}
	in, ok := m.prompt("Enter check-in date: ")
	if !ok {
		return false
	}
	out, ok := m.prompt("Enter check-out date: ")
	if !ok {
		return false
	}

	if err := m.inv.CheckIn(n, name, in, out); err != nil {
		m.report(err)
		return true
	}
	log.Info().Int("room", n).Str("guest", name).Msg("check-in")
	fmt.Fprintln(m.out, "Check-in successful.")
	m.publish(ctx, RKRoomCheckedIn, RoomCheckedIn{RoomNumber: n, GuestName: name, CheckInDate: in, CheckOutDate: out})
	return true
}

func (m *Menu) checkOut(ctx context.Context) bool {
	n, ok := m.promptRoom("Enter room number for check-out: ")
	if !ok {
		return false
	}
	if err := m.inv.CheckOut(n); err != nil {
		m.report(err)
		return true
	}
	r, _ := m.inv.Room(n)
	log.Info().Int("room", n).Msg("check-out")
	fmt.Fprintln(m.out, "Check-out successful.")
	m.publish(ctx, RKRoomCheckedOut, RoomCheckedOut{RoomNumber: n, GuestName: r.Guest.Name})
	return true
}

func (m *Menu) searchGuest() bool {
	name, ok := m.prompt("Enter guest name to search: ")
	if !ok {
		return false
	}
	if n, found := m.inv.SearchByGuestName(name); found {
		fmt.Fprintf(m.out, "Guest found in room %d\n", n)
	} else {
		fmt.Fprintln(m.out, "Guest not found.")
	}
	return true
}

func (m *Menu) updateStaff(ctx context.Context, role string) bool {
	label, update := "housekeeping", m.inv.UpdateHousekeepingStaff
	if role == "data_entry" {
		label, update = "data entry", m.inv.UpdateDataEntryStaff
	}

	n, ok := m.promptRoom(fmt.Sprintf("Enter room number to update %s staff: ", label))
	if !ok {
		return false
	}
	if _, err := m.inv.Room(n); err != nil {
		m.report(err)
		return true
	}
	name, ok := m.prompt(fmt.Sprintf("Enter new %s staff name: ", label))
	if !ok {
		return false
	}
	if err := update(n, name); err != nil {
		m.report(err)
		return true
	}
	fmt.Fprintf(m.out, "%s staff updated for room %d.\n", capitalize(label), n)
	m.publish(ctx, RKRoomStaffUpdated, RoomStaffUpdated{RoomNumber: n, Role: role, StaffName: name})
	return true
}

func (m *Menu) save(ctx context.Context) {
	res, err := m.store.Save(ctx, m.inv)
	if err != nil {
		log.Error().Err(err).Msg("save failed")
		fmt.Fprintf(m.out, "Save failed: %v\n", err)
		return
	}
	if res.Failed > 0 {
		fmt.Fprintf(m.out, "Data saved with %d failed rooms (see log).\n", res.Failed)
	} else {
		fmt.Fprintln(m.out, "Data saved successfully.")
	}
	m.publish(ctx, RKInventorySaved, InventorySaved{BatchID: res.BatchID, Mode: string(res.Mode), Written: res.Written, Failed: res.Failed})
}

// reload descarta los cambios no guardados. Se carga sobre un inventario
// nuevo y solo se reemplaza el actual si la carga termina bien.
func (m *Menu) reload(ctx context.Context) {
	staged, err := NewInventory(m.inv.cacheSize)
	if err != nil {
		fmt.Fprintf(m.out, "Load failed: %v\n", err)
		return
	}
	if _, err := m.store.Load(ctx, staged); err != nil {
		log.Error().Err(err).Msg("reload failed")
		fmt.Fprintf(m.out, "Load failed: %v\n", err)
		return
	}
	m.inv.Replace(staged)
	fmt.Fprintln(m.out, "Data loaded successfully.")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
