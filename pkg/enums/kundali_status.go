package enums

import "fmt"

// KundaliStatus tracks the fulfillment state of a kundali report request.
type KundaliStatus string

const (
	KundaliStatusPending    KundaliStatus = "pending"
	KundaliStatusInProgress KundaliStatus = "in_progress"
	KundaliStatusCompleted  KundaliStatus = "completed"
	KundaliStatusCancelled  KundaliStatus = "cancelled"
)

var validKundaliStatuses = []KundaliStatus{
	KundaliStatusPending,
	KundaliStatusInProgress,
	KundaliStatusCompleted,
	KundaliStatusCancelled,
}

// String implements fmt.Stringer.
func (s KundaliStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known KundaliStatus.
func (s KundaliStatus) IsValid() bool {
	for _, candidate := range validKundaliStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseKundaliStatus converts raw input into a KundaliStatus.
func ParseKundaliStatus(value string) (KundaliStatus, error) {
	for _, candidate := range validKundaliStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid kundali status %q", value)
}
