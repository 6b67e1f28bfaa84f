package domain

import "time"

type TaskComment struct {
	ID        int64
	TaskID    int64
	Author    CommentAuthor
	Text      string
	CreatedAt time.Time
}

// CommentAuthor - краткие данные автора, которые отдаются вместе с комментарием
type CommentAuthor struct {
	ID      int64
	Name    string
	Surname string
}
