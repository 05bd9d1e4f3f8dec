package board

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/arnavshah/shift-board-api/pkg/coverage"
	"github.com/arnavshah/shift-board-api/pkg/models"
	"github.com/arnavshah/shift-board-api/pkg/store"
	"github.com/google/uuid"
)

var (
	ErrScheduleLocked      = errors.New("schedule is published")
	ErrCoverageUnsatisfied = errors.New("coverage does not meet every slot minimum")
	ErrRequestNotFound     = errors.New("request not found")
	ErrInvalidStatus       = errors.New("status must be approved or rejected")
)

// Snapshot is the full persisted state of a board
type Snapshot struct {
	Slots      []models.Slot
	Requests   []models.Request
	NextSlotID int
	Schedule   models.Schedule
}

// Persister loads and saves board snapshots. Load returns ok=false when
// nothing has been stored yet.
type Persister interface {
	Load(ctx context.Context) (snap Snapshot, ok bool, err error)
	Save(ctx context.Context, snap Snapshot) error
}

// Board holds the slot and request stores and the schedule lifecycle. All
// methods are safe for concurrent use.
type Board struct {
	mu       sync.RWMutex
	slots    *store.SlotStore
	requests *store.RequestStore
	schedule models.Schedule
	pattern  []models.Slot
	persist  Persister
	now      func() time.Time
}

// Option configures a Board
type Option func(*Board)

// WithPersister saves a snapshot after every mutation
func WithPersister(p Persister) Option {
	return func(b *Board) { b.persist = p }
}

// WithPattern sets the slots used by GenerateDefaultPattern
func WithPattern(slots []models.Slot) Option {
	return func(b *Board) { b.pattern = slots }
}

// WithClock overrides the clock used to stamp publications
func WithClock(now func() time.Time) Option {
	return func(b *Board) { b.now = now }
}

// New creates a draft board from a snapshot
func New(snap Snapshot, opts ...Option) *Board {
	sched := snap.Schedule
	if sched.Status == "" {
		sched.Status = models.ScheduleDraft
	}
	b := &Board{
		slots:    store.NewSlotStore(snap.Slots, snap.NextSlotID),
		requests: store.NewRequestStore(snap.Requests),
		schedule: sched,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Open restores a board from p, or builds one from initial when p has nothing
// stored (initial is then saved). p may be nil for a memory-only board.
func Open(ctx context.Context, p Persister, initial Snapshot, opts ...Option) (*Board, error) {
	if p == nil {
		return New(initial, opts...), nil
	}
	snap, ok, err := p.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load board: %w", err)
	}
	opts = append(opts, WithPersister(p))
	if ok {
		return New(snap, opts...), nil
	}
	b := New(initial, opts...)
	if err := p.Save(ctx, b.snapshotLocked()); err != nil {
		return nil, fmt.Errorf("failed to save initial board: %w", err)
	}
	return b, nil
}

// Slots returns the slots in order
func (b *Board) Slots() []models.Slot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.slots.All()
}

// Requests returns all requests in order
func (b *Board) Requests() []models.Request {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.requests.All()
}

// RequestsWithStatus returns the requests in the given status
func (b *Board) RequestsWithStatus(status models.RequestStatus) []models.Request {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.requests.Filter(status)
}

// AddSlot appends a slot. Values are stored as given.
func (b *Board) AddSlot(ctx context.Context, sector, shift, role string, min, max int) (models.Slot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkDraftLocked(); err != nil {
		return models.Slot{}, err
	}
	sl := b.slots.Add(sector, shift, role, min, max)
	return sl, b.saveLocked(ctx)
}

// RemoveSlot deletes a slot. Removing an unknown ID is a no-op.
func (b *Board) RemoveSlot(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkDraftLocked(); err != nil {
		return err
	}
	if !b.slots.Remove(id) {
		return nil
	}
	return b.saveLocked(ctx)
}

// ReplaceSlots overwrites every slot
func (b *Board) ReplaceSlots(ctx context.Context, slots []models.Slot) ([]models.Slot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkDraftLocked(); err != nil {
		return nil, err
	}
	b.slots.ReplaceAll(slots)
	return b.slots.All(), b.saveLocked(ctx)
}

// GenerateDefaultPattern replaces every slot with the configured pattern
func (b *Board) GenerateDefaultPattern(ctx context.Context) ([]models.Slot, error) {
	return b.ReplaceSlots(ctx, b.pattern)
}

// ClearSlots removes every slot
func (b *Board) ClearSlots(ctx context.Context) error {
	_, err := b.ReplaceSlots(ctx, nil)
	return err
}

// SetRequestStatus overwrites a request's status with approved or rejected.
// Decided requests may be flipped; only a published schedule blocks the change.
func (b *Board) SetRequestStatus(ctx context.Context, id string, status models.RequestStatus) (models.Request, error) {
	if !status.Decision() {
		return models.Request{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkDraftLocked(); err != nil {
		return models.Request{}, err
	}
	req, ok := b.requests.SetStatus(id, status)
	if !ok {
		return models.Request{}, fmt.Errorf("%w: %s", ErrRequestNotFound, id)
	}
	return req, b.saveLocked(ctx)
}

// Coverage computes coverage rows and the publish verdict from current state
func (b *Board) Coverage() models.CoverageResponse {
	b.mu.RLock()
	defer b.mu.RUnlock()
	rows := coverage.Compute(b.slots.All(), b.requests.All())
	return models.CoverageResponse{Rows: rows, CanPublish: coverage.CanPublish(rows)}
}

// Summary tallies requests and coverage under a single read lock
func (b *Board) Summary() models.Summary {
	b.mu.RLock()
	defer b.mu.RUnlock()

	requests := b.requests.All()
	rows := coverage.Compute(b.slots.All(), requests)

	sum := models.Summary{
		Slots:      len(rows),
		CanPublish: coverage.CanPublish(rows),
		Schedule:   b.schedule.Status,
	}
	for _, r := range requests {
		sum.Requests.Total++
		switch r.Status {
		case models.StatusPending:
			sum.Requests.Pending++
		case models.StatusApproved:
			sum.Requests.Approved++
			sum.ApprovedHours += r.Hours
		case models.StatusRejected:
			sum.Requests.Rejected++
		}
	}
	for _, row := range rows {
		if row.Satisfied {
			sum.SlotsSatisfied++
		}
	}
	return sum
}

// Schedule returns the schedule lifecycle state
func (b *Board) Schedule() models.Schedule {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.schedule
}

// Publish locks the schedule when every slot meets its minimum
func (b *Board) Publish(ctx context.Context, actor string) (models.Schedule, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkDraftLocked(); err != nil {
		return b.schedule, err
	}
	rows := coverage.Compute(b.slots.All(), b.requests.All())
	if !coverage.CanPublish(rows) {
		return b.schedule, fmt.Errorf("%w: %d slot(s) short", ErrCoverageUnsatisfied, len(coverage.Shortfalls(rows)))
	}
	at := b.now().UTC()
	b.schedule = models.Schedule{
		Status:        models.SchedulePublished,
		PublicationID: uuid.NewString(),
		PublishedAt:   &at,
		PublishedBy:   actor,
	}
	return b.schedule, b.saveLocked(ctx)
}

// Reopen returns a published schedule to draft. Reopening a draft is a no-op.
func (b *Board) Reopen(ctx context.Context) (models.Schedule, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.schedule.Status == models.ScheduleDraft {
		return b.schedule, nil
	}
	b.schedule = models.Schedule{Status: models.ScheduleDraft}
	return b.schedule, b.saveLocked(ctx)
}

// Snapshot returns a copy of the full board state
func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snapshotLocked()
}

func (b *Board) snapshotLocked() Snapshot {
	return Snapshot{
		Slots:      b.slots.All(),
		Requests:   b.requests.All(),
		NextSlotID: b.slots.NextID(),
		Schedule:   b.schedule,
	}
}

func (b *Board) checkDraftLocked() error {
	if b.schedule.Status == models.SchedulePublished {
		return ErrScheduleLocked
	}
	return nil
}

func (b *Board) saveLocked(ctx context.Context) error {
	if b.persist == nil {
		return nil
	}
	if err := b.persist.Save(ctx, b.snapshotLocked()); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}
	return nil
}
