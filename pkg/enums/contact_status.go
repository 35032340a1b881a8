package enums

import "fmt"

// ContactStatus marks triage progress on a contact message.
type ContactStatus string

const (
	ContactStatusUnread   ContactStatus = "unread"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusResolved ContactStatus = "resolved"
)

var validContactStatuses = []ContactStatus{
	ContactStatusUnread,
	ContactStatusRead,
	ContactStatusResolved,
}

// String implements fmt.Stringer.
func (s ContactStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ContactStatus.
func (s ContactStatus) IsValid() bool {
	for _, candidate := range validContactStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseContactStatus converts raw input into a ContactStatus.
func ParseContactStatus(value string) (ContactStatus, error) {
	for _, candidate := range validContactStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid contact status %q", value)
}
