package model

import "time"

type Tweet struct {
	ID        int64
	Text      string
	UserID    int64
	CreatedAt time.Time
}
