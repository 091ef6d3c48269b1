package domain

import "strings"

// Status is the lifecycle label of a campaign. There are no enforced
// transition rules: any status may change to any other via update. Valid is
// the single place a transition table would hook into if one is ever added.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

var allStatuses = []Status{StatusDraft, StatusActive, StatusPaused, StatusCompleted, StatusArchived}

// Valid reports whether s is a member of the closed status set.
func (s Status) Valid() bool {
	for _, v := range allStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// StatusList returns the valid statuses joined for user-facing messages.
func StatusList() string {
	names := make([]string, len(allStatuses))
	for i, s := range allStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
