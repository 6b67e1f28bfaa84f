package domain

import "time"

type Project struct {
	ID               int64
	Title            string
	ShortDescription *string
	Description      *string
	OrganizerID      int64
	CreatedAt        time.Time
}

type ProjectPatch struct {
	Title            Optional[string]
	ShortDescription Optional[*string]
	Description      Optional[*string]
	OrganizerID      Optional[int64]
}

type ProjectParticipant struct {
	ID        int64
	ProjectID int64
	UserID    int64
	JoinedAt  time.Time
}
