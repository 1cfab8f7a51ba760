package domain

import "github.com/google/uuid"

// User is a candidate license owner.
type User struct {
	ID          uuid.UUID
	Username    string
	DisplayName string
	Active      bool
	Blocked     bool
}

func (u *User) Eligible() bool {
	return u.Active && !u.Blocked
}

// Name returns the display name, falling back to the username for users
// created without one (e.g. during purchase).
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

// AssignmentImpact describes what evicting the current holder of a license
// would affect. It is the context behind an Unavailable rejection, so an
// administrator can make an informed override decision.
type AssignmentImpact struct {
	UserLicense      bool   `json:"user_license"`
	Name             string `json:"name"`
	ArchiveSizeBytes int64  `json:"archive_size_bytes"`
	ComputerCount    int    `json:"computer_count"`
}
