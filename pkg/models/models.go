package models

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// RequestStatus is the review state of a shift request
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// Valid reports whether s is one of the three known statuses
func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Decision reports whether s can be set by a reviewer (approved or rejected)
func (s RequestStatus) Decision() bool {
	return s == StatusApproved || s == StatusRejected
}

// Slot is a staffing requirement for a sector/shift/role combination
type Slot struct {
	ID     string `json:"id" yaml:"id,omitempty"`
	Sector string `json:"sector" yaml:"sector"`
	Shift  string `json:"shift" yaml:"shift"`
	Role   string `json:"role" yaml:"role"`
	Min    int    `json:"min" yaml:"min"`
	Max    int    `json:"max" yaml:"max"`
}

// Request is a worker's submission to work a sector/shift/role
type Request struct {
	ID       string        `json:"id" yaml:"id"`
	Employee string        `json:"employee" yaml:"employee"`
	Sector   string        `json:"sector" yaml:"sector"`
	Shift    string        `json:"shift" yaml:"shift"`
	Role     string        `json:"role" yaml:"role"`
	Hours    float64       `json:"hours" yaml:"hours"`
	Status   RequestStatus `json:"status" yaml:"status"`
}

// CoverageRow is the derived staffing coverage for one slot
type CoverageRow struct {
	SlotID    string `json:"slot_id"`
	Sector    string `json:"sector"`
	Shift     string `json:"shift"`
	Role      string `json:"role"`
	Min       int    `json:"min"`
	Max       int    `json:"max"`
	Approved  int    `json:"approved"`
	Satisfied bool   `json:"satisfied"`
	Deficit   int    `json:"deficit"`
}

// ScheduleStatus is the lifecycle state of the draft schedule
type ScheduleStatus string

const (
	ScheduleDraft     ScheduleStatus = "draft"
	SchedulePublished ScheduleStatus = "published"
)

// Schedule records whether the board has been published and by whom
type Schedule struct {
	Status        ScheduleStatus `json:"status"`
	PublicationID string         `json:"publication_id,omitempty"`
	PublishedAt   *time.Time     `json:"published_at,omitempty"`
	PublishedBy   string         `json:"published_by,omitempty"`
}

// CoverageResponse is the payload of the coverage endpoint
type CoverageResponse struct {
	Rows       []CoverageRow `json:"rows"`
	CanPublish bool          `json:"can_publish"`
}

// RequestCounts tallies requests by status
type RequestCounts struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// Summary holds the dashboard headline totals, taken from one consistent read
type Summary struct {
	Slots          int            `json:"slots"`
	SlotsSatisfied int            `json:"slots_satisfied"`
	Requests       RequestCounts  `json:"requests"`
	ApprovedHours  float64        `json:"approved_hours"`
	CanPublish     bool           `json:"can_publish"`
	Schedule       ScheduleStatus `json:"schedule"`
}

// HealthResponse is the payload of the health endpoint
type HealthResponse struct {
	OK   bool   `json:"ok"`
	Name string `json:"name"`
}

// SlotInput is the body for adding a slot. Min and Max accept numbers or
// numeric strings; anything else becomes 0.
type SlotInput struct {
	Sector string `json:"sector"`
	Shift  string `json:"shift"`
	Role   string `json:"role"`
	Min    any    `json:"min"`
	Max    any    `json:"max"`
}

// StatusInput is the body for changing a request status
type StatusInput struct {
	Status RequestStatus `json:"status" binding:"required"`
}

// CoerceCount converts a loosely typed headcount to an int. Numbers are
// truncated toward zero, numeric strings are parsed, everything else is 0.
func CoerceCount(v any) int {
	var f float64
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		f = n
	case float32:
		f = float64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	// int(f) is implementation-defined outside the int range
	if f >= float64(math.MaxInt) {
		return math.MaxInt
	}
	if f <= float64(math.MinInt) {
		return math.MinInt
	}
	return int(f)
}
