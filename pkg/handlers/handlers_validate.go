package handlers

import (
	"fmt"
	"net/http"

	"github.com/arnavshah/shift-board-api/pkg/models"
	"github.com/gin-gonic/gin"
)

// SlotWarning flags a slot definition that is accepted but probably a mistake
type SlotWarning struct {
	SlotID  string `json:"slot_id"`
	Message string `json:"message"`
}

// CheckSlots lists suspicious slots: negative headcounts, max below min and
// repeated sector/shift/role combinations. Nothing is rejected.
func CheckSlots(slots []models.Slot) []SlotWarning {
	warnings := make([]SlotWarning, 0)
	seen := make(map[string]string)
	for _, s := range slots {
		if s.Min < 0 || s.Max < 0 {
			warnings = append(warnings, SlotWarning{SlotID: s.ID, Message: "negative headcount"})
		}
		if s.Max < s.Min {
			warnings = append(warnings, SlotWarning{SlotID: s.ID, Message: fmt.Sprintf("max %d is below min %d", s.Max, s.Min)})
		}
		combo := s.Sector + "\x00" + s.Shift + "\x00" + s.Role
		if first, ok := seen[combo]; ok {
			warnings = append(warnings, SlotWarning{SlotID: s.ID, Message: "duplicates slot " + first})
			continue
		}
		seen[combo] = s.ID
	}
	return warnings
}

// ValidateSlots reports warnings for the current slots
func (h *Handler) ValidateSlots(c *gin.Context) {
	warnings := CheckSlots(h.Board.Slots())
	c.JSON(http.StatusOK, gin.H{
		"valid":    len(warnings) == 0,
		"warnings": warnings,
	})
}
