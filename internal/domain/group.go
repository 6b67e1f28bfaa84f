package domain

import "time"

type VolunteerGroup struct {
	ID          int64
	Name        string
	OrganizerID int64
	CreatedAt   time.Time
}

type GroupPatch struct {
	Name        Optional[string]
	OrganizerID Optional[int64]
}

type GroupMember struct {
	ID        int64
	GroupID   int64
	UserID    int64
	CreatedAt time.Time
}
