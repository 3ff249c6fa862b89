package main

// Routing keys publicados por el servicio de habitaciones
const (
	RKRoomCheckedIn    = "hotel.room.checked_in"
	RKRoomCheckedOut   = "hotel.room.checked_out"
	RKRoomStaffUpdated = "hotel.room.staff_updated"
	RKInventorySaved   = "hotel.inventory.saved"
)

type RoomCheckedIn struct {
	RoomNumber   int    `json:"room_number"`
	GuestName    string `json:"guest_name"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
}

type RoomCheckedOut struct {
	RoomNumber int    `json:"room_number"`
	GuestName  string `json:"guest_name"`
}

type RoomStaffUpdated struct {
	RoomNumber int    `json:"room_number"`
	Role       string `json:"role"` // "housekeeping" | "data_entry"
	StaffName  string `json:"staff_name"`
}

type InventorySaved struct {
	BatchID string `json:"batch_id"`
	Mode    string `json:"mode"`
	Written int    `json:"written"`
	Failed  int    `json:"failed"`
}
