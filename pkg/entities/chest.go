package entities

import "time"

// ChestType identifies a timed reward container
type ChestType string

const (
	ChestDaily   ChestType = "daily"
	ChestWeekly  ChestType = "weekly"
	ChestMonthly ChestType = "monthly"
)

// ChestTypes lists every chest type in display order
var ChestTypes = []ChestType{ChestDaily, ChestWeekly, ChestMonthly}

// Valid reports whether t is a known chest type
func (t ChestType) Valid() bool {
	switch t {
	case ChestDaily, ChestWeekly, ChestMonthly:
		return true
	}
	return false
}

// Title returns the display name of the chest
func (t ChestType) Title() string {
	switch t {
	case ChestDaily:
		return "Daily Chest"
	case ChestWeekly:
		return "Weekly Chest"
	case ChestMonthly:
		return "Monthly Chest"
	}
	return ""
}

// Interval is the cooldown between two openings.
// Weekly is three days and monthly is seven; the names are historical.
func (t ChestType) Interval() time.Duration {
	switch t {
	case ChestDaily:
		return 24 * time.Hour
	case ChestWeekly:
		return 3 * 24 * time.Hour
	case ChestMonthly:
		return 7 * 24 * time.Hour
	}
	return 0
}

// Reward is the number of coins granted on opening
func (t ChestType) Reward() int64 {
	switch t {
	case ChestDaily:
		return 100
	case ChestWeekly:
		return 300
	case ChestMonthly:
		return 1000
	}
	return 0
}

// Chest is one chest's cooldown state. LastOpenedAt is nil if never opened.
type Chest struct {
	Type         ChestType  `json:"type"`
	LastOpenedAt *time.Time `json:"last_opened_at,omitempty"`
}

// IsAvailable reports whether the chest can be opened at now
func (c Chest) IsAvailable(now time.Time) bool {
	if c.LastOpenedAt == nil {
		return true
	}
	return now.Sub(*c.LastOpenedAt) >= c.Type.Interval()
}

// NextAvailableAt returns when the chest can next be opened, or now if it never was
func (c Chest) NextAvailableAt(now time.Time) time.Time {
	if c.LastOpenedAt == nil {
		return now
	}
	return c.LastOpenedAt.Add(c.Type.Interval())
}

// Clone returns a deep copy
func (c Chest) Clone() Chest {
	if c.LastOpenedAt != nil {
		t := *c.LastOpenedAt
		c.LastOpenedAt = &t
	}
	return c
}
