package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/arnavshah/shift-board-api/pkg/board"
	"github.com/arnavshah/shift-board-api/pkg/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const boardStateID = 1

// Repository stores board snapshots in SQL tables
type Repository struct {
	DB *gorm.DB
}

var _ board.Persister = (*Repository)(nil)

// NewRepository wraps an opened database
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Load reads the stored snapshot. ok is false until the first Save.
func (r *Repository) Load(ctx context.Context) (board.Snapshot, bool, error) {
	db := r.DB.WithContext(ctx)

	var state BoardState
	if err := db.First(&state, boardStateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return board.Snapshot{}, false, nil
		}
		return board.Snapshot{}, false, fmt.Errorf("failed to read board state: %w", err)
	}

	var slotRows []SlotRecord
	if err := db.Order("position asc").Find(&slotRows).Error; err != nil {
		return board.Snapshot{}, false, fmt.Errorf("failed to read slots: %w", err)
	}
	var reqRows []RequestRecord
	if err := db.Order("position asc").Find(&reqRows).Error; err != nil {
		return board.Snapshot{}, false, fmt.Errorf("failed to read requests: %w", err)
	}

	snap := board.Snapshot{
		Slots:      make([]models.Slot, 0, len(slotRows)),
		Requests:   make([]models.Request, 0, len(reqRows)),
		NextSlotID: state.NextSlotID,
		Schedule: models.Schedule{
			Status:        models.ScheduleStatus(state.Status),
			PublicationID: state.PublicationID,
			PublishedAt:   state.PublishedAt,
			PublishedBy:   state.PublishedBy,
		},
	}
	for _, s := range slotRows {
		snap.Slots = append(snap.Slots, models.Slot{
			ID: s.ID, Sector: s.Sector, Shift: s.Shift, Role: s.Role, Min: s.Min, Max: s.Max,
		})
	}
	for _, q := range reqRows {
		snap.Requests = append(snap.Requests, models.Request{
			ID: q.ID, Employee: q.Employee, Sector: q.Sector, Shift: q.Shift, Role: q.Role,
			Hours: q.Hours, Status: models.RequestStatus(q.Status),
		})
	}
	return snap, true, nil
}

// Save overwrites the stored snapshot in a single transaction
func (r *Repository) Save(ctx context.Context, snap board.Snapshot) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&SlotRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear slots: %w", err)
		}
		if len(snap.Slots) > 0 {
			rows := make([]SlotRecord, 0, len(snap.Slots))
			for i, s := range snap.Slots {
				rows = append(rows, SlotRecord{
					ID: s.ID, Position: i, Sector: s.Sector, Shift: s.Shift, Role: s.Role, Min: s.Min, Max: s.Max,
				})
			}
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("failed to write slots: %w", err)
			}
		}

		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&RequestRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear requests: %w", err)
		}
		if len(snap.Requests) > 0 {
			rows := make([]RequestRecord, 0, len(snap.Requests))
			for i, q := range snap.Requests {
				rows = append(rows, RequestRecord{
					ID: q.ID, Position: i, Employee: q.Employee, Sector: q.Sector, Shift: q.Shift, Role: q.Role,
					Hours: q.Hours, Status: string(q.Status),
				})
			}
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("failed to write requests: %w", err)
			}
		}

		state := BoardState{
			ID:            boardStateID,
			NextSlotID:    snap.NextSlotID,
			Status:        string(snap.Schedule.Status),
			PublicationID: snap.Schedule.PublicationID,
			PublishedAt:   snap.Schedule.PublishedAt,
			PublishedBy:   snap.Schedule.PublishedBy,
		}
		if state.Status == "" {
			state.Status = string(models.ScheduleDraft)
		}
		// Single-query upsert, supported by both Postgres and SQLite
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&state).Error; err != nil {
			return fmt.Errorf("failed to write board state: %w", err)
		}
		return nil
	})
}
