package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RoomStore is the durable mirror of the inventory, keyed by room number.
type RoomStore interface {
	EnsureSchema(ctx context.Context) error
	Save(ctx context.Context, inv *Inventory) (SaveResult, error)
	Load(ctx context.Context, inv *Inventory) (LoadResult, error)
	Stats(ctx context.Context) (StoreStats, error)
	Close() error
}

var _ RoomStore = (*Repository)(nil)

type SaveResult struct {
	BatchID string
	Mode    SaveMode
	Written int
	Failed  int
}

type LoadResult struct {
	Applied int
	Skipped int
}

type StoreStats struct {
	Rows          int64
	DistinctRooms int64
}

type Repository struct {
	DB   *sql.DB
	mode SaveMode
}

func NewRepository(ctx context.Context, cfg Config) (*Repository, error) {
	db, err := openSQLite(ctx, cfg.DBDriver, cfg.DBPath)
	if err != nil {
		return nil, err
	}
	return newRepositoryWithDB(db, cfg.SaveMode), nil
}

func newRepositoryWithDB(db *sql.DB, mode SaveMode) *Repository {
	if mode == "" {
		mode = SaveAppend
	}
	return &Repository{DB: db, mode: mode}
}

func (r *Repository) Close() error { return r.DB.Close() }

// Sin clave primaria: en modo append se acumulan filas por habitación.
const roomsSchema = `
CREATE TABLE IF NOT EXISTS rooms (
  roomNumber        INT,
  capacity          INT,
  status            INT,
  name              TEXT,
  checkInDate       TEXT,
  checkOutDate      TEXT,
  dataEntryStaff    TEXT,
  housekeepingStaff TEXT
);`

func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, roomsSchema); err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return nil
}

// Save writes every room inside one transaction. A failed row is logged and
// skipped; the transaction is committed regardless.
func (r *Repository) Save(ctx context.Context, inv *Inventory) (SaveResult, error) {
	res := SaveResult{BatchID: uuid.NewString(), Mode: r.mode}
	if err := r.EnsureSchema(ctx); err != nil {
		return res, err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return res, fmt.Errorf("%w: begin: %v", ErrQuery, err)
	}
	defer func() { _ = tx.Rollback() }()

	if r.mode == SaveReplace {
		if _, err := tx.ExecContext(ctx, `DELETE FROM rooms`); err != nil {
			return res, fmt.Errorf("%w: clear rooms: %v", ErrQuery, err)
		}
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO rooms (roomNumber, capacity, status, name, checkInDate, checkOutDate, dataEntryStaff, housekeepingStaff)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return res, fmt.Errorf("%w: prepare insert: %v", ErrQuery, err)
	}
	defer stmt.Close()

	for _, room := range inv.ListAll() {
		if _, err := stmt.ExecContext(ctx,
			room.Number, room.Capacity, int(room.Status),
			room.Guest.Name, room.Guest.CheckInDate, room.Guest.CheckOutDate,
			room.DataEntryStaff, room.HousekeepingStaff); err != nil {
			log.Error().Err(err).Int("room", room.Number).Str("batch", res.BatchID).Msg("save: row failed")
			res.Failed++
			continue
		}
		res.Written++
	}

	if err := tx.Commit(); err != nil {
		return res, fmt.Errorf("%w: commit: %v", ErrQuery, err)
	}
	log.Info().
		Str("batch", res.BatchID).
		Str("mode", string(r.mode)).
		Int("written", res.Written).
		Int("failed", res.Failed).
		Msg("rooms saved")
	return res, nil
}

// Load applies persisted rows in insertion order, so the last row for a room wins.
// Rooms without rows keep whatever the inventory already holds. Rows are only
// applied once the whole result set has been read; on error inv is untouched.
func (r *Repository) Load(ctx context.Context, inv *Inventory) (LoadResult, error) {
	var res LoadResult
	if err := r.EnsureSchema(ctx); err != nil {
		return res, err
	}

	rows, err := r.DB.QueryContext(ctx, `
SELECT roomNumber, capacity, status, name, checkInDate, checkOutDate, dataEntryStaff, housekeepingStaff
FROM rooms ORDER BY rowid`)
	if err != nil {
		return res, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	defer rows.Close()

	var staged []Room
	for rows.Next() {
		var (
			number, capacity, status       int
			name, checkIn, checkOut        sql.NullString
			dataEntryStaff, housekeepStaff sql.NullString
		)
		if err := rows.Scan(&number, &capacity, &status, &name, &checkIn, &checkOut, &dataEntryStaff, &housekeepStaff); err != nil {
			return LoadResult{}, fmt.Errorf("%w: scan: %v", ErrQuery, err)
		}
		room := Room{
			Number:   number,
			Capacity: capacity,
			Status:   RoomStatus(status),
			Guest: Guest{
				Name:         name.String,
				CheckInDate:  checkIn.String,
				CheckOutDate: checkOut.String,
			},
			DataEntryStaff:    dataEntryStaff.String,
			HousekeepingStaff: housekeepStaff.String,
		}
		if err := validateRoom(room); err != nil {
			log.Warn().Err(err).Msg("load: invalid row skipped")
			res.Skipped++
			continue
		}
		staged = append(staged, room)
	}
	if err := rows.Err(); err != nil {
		return LoadResult{}, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	for _, room := range staged {
		if err := inv.Apply(room); err != nil {
			log.Warn().Err(err).Msg("load: row skipped")
			res.Skipped++
			continue
		}
		res.Applied++
	}
	log.Info().Int("applied", res.Applied).Int("skipped", res.Skipped).Msg("rooms loaded")
	return res, nil
}

func (r *Repository) Stats(ctx context.Context) (StoreStats, error) {
	var s StoreStats
	if err := r.EnsureSchema(ctx); err != nil {
		return s, err
	}
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(1), COUNT(DISTINCT roomNumber) FROM rooms`).
		Scan(&s.Rows, &s.DistinctRooms)
	if err != nil {
		return s, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	return s, nil
}
