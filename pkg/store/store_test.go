package store

import (
	"testing"

	"github.com/arnavshah/shift-board-api/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotStore_AddAssignsSequentialIDs(t *testing.T) {
	s := NewSlotStore(nil, 0)

	a := s.Add("Recepção", "Noite", "Atendente", 2, 4)
	b := s.Add("Recepção", "Noite", "Atendente", 2, 4)

	assert.Equal(t, "slot-1", a.ID)
	assert.Equal(t, "slot-2", b.ID)
	assert.Equal(t, 3, s.NextID())
	assert.Len(t, s.All(), 2, "duplicate combinations are kept")
}

func TestSlotStore_AddKeepsInvalidRanges(t *testing.T) {
	s := NewSlotStore(nil, 1)

	sl := s.Add("A", "B", "C", -1, -5)

	assert.Equal(t, -1, sl.Min)
	assert.Equal(t, -5, sl.Max)
}

func TestSlotStore_Remove(t *testing.T) {
	s := NewSlotStore(nil, 1)
	s.Add("A", "B", "C", 1, 1)
	s.Add("D", "E", "F", 1, 1)

	assert.True(t, s.Remove("slot-1"))
	assert.False(t, s.Remove("slot-1"), "second removal is a no-op")
	assert.False(t, s.Remove("missing"))

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, "slot-2", all[0].ID)
}

func TestSlotStore_IDsNotReusedAfterRemove(t *testing.T) {
	s := NewSlotStore(nil, 1)
	s.Add("A", "B", "C", 1, 1)
	s.Remove("slot-1")

	sl := s.Add("A", "B", "C", 1, 1)
	assert.Equal(t, "slot-2", sl.ID)
}

func TestSlotStore_ReplaceAll(t *testing.T) {
	s := NewSlotStore(nil, 5)
	s.Add("A", "B", "C", 1, 1)

	s.ReplaceAll([]models.Slot{
		{Sector: "X", Shift: "Y", Role: "Z", Min: 1, Max: 2},
		{ID: "kept", Sector: "X", Shift: "Y", Role: "W", Min: 0, Max: 1},
	})

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "slot-6", all[0].ID)
	assert.Equal(t, "kept", all[1].ID)

	s.ReplaceAll(nil)
	assert.Empty(t, s.All())
}

func TestSlotStore_AllReturnsCopy(t *testing.T) {
	s := NewSlotStore(nil, 1)
	s.Add("A", "B", "C", 1, 1)

	all := s.All()
	all[0].Sector = "mutated"

	assert.Equal(t, "A", s.All()[0].Sector)
}

func seedRequests() []models.Request {
	return []models.Request{
		{ID: "r1", Employee: "Ana", Sector: "A", Shift: "B", Role: "C", Hours: 8, Status: models.StatusPending},
		{ID: "r2", Employee: "Bruno", Sector: "A", Shift: "B", Role: "C", Hours: 8, Status: models.StatusApproved},
	}
}

func TestRequestStore_SetStatus(t *testing.T) {
	r := NewRequestStore(seedRequests())

	req, ok := r.SetStatus("r1", models.StatusApproved)
	require.True(t, ok)
	assert.Equal(t, models.StatusApproved, req.Status)
	assert.Equal(t, models.StatusApproved, r.All()[0].Status)
}

func TestRequestStore_SetStatusSameValueIsStable(t *testing.T) {
	r := NewRequestStore(seedRequests())

	r.SetStatus("r2", models.StatusApproved)
	before := r.All()
	r.SetStatus("r2", models.StatusApproved)

	assert.Equal(t, before, r.All())
}

func TestRequestStore_SetStatusOverwritesDecided(t *testing.T) {
	r := NewRequestStore(seedRequests())

	req, ok := r.SetStatus("r2", models.StatusRejected)
	require.True(t, ok)
	assert.Equal(t, models.StatusRejected, req.Status)
}

func TestRequestStore_SetStatusUnknownID(t *testing.T) {
	r := NewRequestStore(seedRequests())

	_, ok := r.SetStatus("nope", models.StatusApproved)
	assert.False(t, ok)
	assert.Equal(t, seedRequests(), r.All())
}

func TestRequestStore_Filter(t *testing.T) {
	r := NewRequestStore(seedRequests())

	pending := r.Filter(models.StatusPending)
	require.Len(t, pending, 1)
	assert.Equal(t, "r1", pending[0].ID)

	assert.Empty(t, r.Filter(models.StatusRejected))
	assert.NotNil(t, r.Filter(models.StatusRejected))
}

func TestSlotStore_ExplicitIDMovesSequence(t *testing.T) {
	s := NewSlotStore([]models.Slot{{ID: "slot-1", Sector: "A", Shift: "B", Role: "C"}}, 0)

	sl := s.Add("A", "B", "C", 1, 1)
	assert.Equal(t, "slot-2", sl.ID)

	s.ReplaceAll([]models.Slot{{ID: "slot-7", Sector: "X"}, {ID: "manual", Sector: "Y"}})
	assert.Equal(t, "slot-8", s.Add("Z", "Z", "Z", 0, 0).ID)
}

func TestSlotStore_DuplicateExplicitIDsAreReassigned(t *testing.T) {
	s := NewSlotStore(nil, 1)

	s.ReplaceAll([]models.Slot{
		{ID: "slot-3", Sector: "A"},
		{ID: "slot-3", Sector: "B"},
		{ID: "manual", Sector: "C"},
		{ID: "manual", Sector: "D"},
	})

	all := s.All()
	require.Len(t, all, 4)
	ids := map[string]bool{}
	for _, sl := range all {
		assert.False(t, ids[sl.ID], "duplicate id %s", sl.ID)
		ids[sl.ID] = true
	}
	assert.Equal(t, "slot-3", all[0].ID)
	assert.Equal(t, "slot-4", all[1].ID)
	assert.Equal(t, "manual", all[2].ID)
	assert.Equal(t, "slot-5", all[3].ID)

	assert.True(t, s.Remove("slot-3"))
	assert.False(t, s.Remove("slot-3"))
	assert.Len(t, s.All(), 3)
}
