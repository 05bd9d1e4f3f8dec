package handlers

import (
	"testing"

	"github.com/arnavshah/shift-board-api/pkg/models"
)

func TestCheckSlots(t *testing.T) {
	slots := []models.Slot{
		{ID: "slot-1", Sector: "A", Shift: "B", Role: "C", Min: 1, Max: 2},
		{ID: "slot-2", Sector: "A", Shift: "B", Role: "C", Min: 1, Max: 2},
		{ID: "slot-3", Sector: "A", Shift: "B", Role: "D", Min: 3, Max: 1},
		{ID: "slot-4", Sector: "A", Shift: "B", Role: "E", Min: -1, Max: 0},
	}

	warnings := CheckSlots(slots)
	if len(warnings) != 3 {
		t.Fatalf("Expected 3 warnings, got %d: %+v", len(warnings), warnings)
	}
	if warnings[0].SlotID != "slot-2" || warnings[0].Message != "duplicates slot slot-1" {
		t.Errorf("Unexpected duplicate warning: %+v", warnings[0])
	}
	if warnings[1].SlotID != "slot-3" {
		t.Errorf("Expected max<min warning for slot-3, got %+v", warnings[1])
	}
	if warnings[2].SlotID != "slot-4" || warnings[2].Message != "negative headcount" {
		t.Errorf("Unexpected negative warning: %+v", warnings[2])
	}
}

func TestCheckSlots_Clean(t *testing.T) {
	warnings := CheckSlots([]models.Slot{{ID: "slot-1", Sector: "A", Shift: "B", Role: "C", Min: 1, Max: 1}})
	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %+v", warnings)
	}
}
