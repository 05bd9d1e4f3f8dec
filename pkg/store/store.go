package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arnavshah/shift-board-api/pkg/models"
)

// SlotStore is an ordered collection of staffing slots. It is not safe for
// concurrent use.
type SlotStore struct {
	slots  []models.Slot
	nextID int
}

// NewSlotStore creates a slot store holding a copy of slots. nextID is the
// sequence number the next added slot will receive; values below 1 start at 1.
func NewSlotStore(slots []models.Slot, nextID int) *SlotStore {
	if nextID < 1 {
		nextID = 1
	}
	s := &SlotStore{nextID: nextID}
	s.ReplaceAll(slots)
	return s
}

// Add appends a new slot with the next sequential ID
func (s *SlotStore) Add(sector, shift, role string, min, max int) models.Slot {
	slot := models.Slot{
		ID:     fmt.Sprintf("slot-%d", s.nextID),
		Sector: sector,
		Shift:  shift,
		Role:   role,
		Min:    min,
		Max:    max,
	}
	s.nextID++
	s.slots = append(s.slots, slot)
	return slot
}

// Remove deletes the slot with the given ID. It reports whether a slot was removed.
func (s *SlotStore) Remove(id string) bool {
	for i := range s.slots {
		if s.slots[i].ID == id {
			s.slots = append(s.slots[:i], s.slots[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceAll overwrites the collection. Slots without an ID, or repeating an
// ID already seen, get a sequential one. Kept IDs of the form slot-N move the
// sequence past N.
func (s *SlotStore) ReplaceAll(slots []models.Slot) {
	for _, sl := range slots {
		if n, ok := slotSeq(sl.ID); ok && n >= s.nextID {
			s.nextID = n + 1
		}
	}

	seen := make(map[string]bool, len(slots))
	next := make([]models.Slot, 0, len(slots))
	for _, sl := range slots {
		if sl.ID == "" || seen[sl.ID] {
			sl.ID = fmt.Sprintf("slot-%d", s.nextID)
			s.nextID++
		}
		seen[sl.ID] = true
		next = append(next, sl)
	}
	s.slots = next
}

// slotSeq parses the sequence number out of a generated slot ID
func slotSeq(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, "slot-")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// All returns a copy of the slots in insertion order
func (s *SlotStore) All() []models.Slot {
	return clone(s.slots)
}

// NextID returns the sequence number the next slot will receive
func (s *SlotStore) NextID() int {
	return s.nextID
}

// RequestStore is an ordered collection of shift requests. Status is the only
// mutable field. It is not safe for concurrent use.
type RequestStore struct {
	requests []models.Request
}

// NewRequestStore creates a request store holding a copy of requests
func NewRequestStore(requests []models.Request) *RequestStore {
	cp := make([]models.Request, len(requests))
	copy(cp, requests)
	return &RequestStore{requests: cp}
}

// SetStatus overwrites the status of the request with the given ID. There is no
// guard on the current status, so decided requests can be flipped. It reports
// whether the request exists.
func (r *RequestStore) SetStatus(id string, status models.RequestStatus) (models.Request, bool) {
	for i := range r.requests {
		if r.requests[i].ID == id {
			r.requests[i].Status = status
			return r.requests[i], true
		}
	}
	return models.Request{}, false
}

// All returns a copy of the requests in seed order
func (r *RequestStore) All() []models.Request {
	cp := make([]models.Request, len(r.requests))
	copy(cp, r.requests)
	return cp
}

// Filter returns the requests with the given status, in order
func (r *RequestStore) Filter(status models.RequestStatus) []models.Request {
	out := make([]models.Request, 0)
	for _, req := range r.requests {
		if req.Status == status {
			out = append(out, req)
		}
	}
	return out
}

func clone(slots []models.Slot) []models.Slot {
	cp := make([]models.Slot, len(slots))
	copy(cp, slots)
	return cp
}
