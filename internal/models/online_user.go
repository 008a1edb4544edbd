package models

import (
	"time"
)

type OnlineUser struct {
	UserID        string    `db:"user_id"`
	FullName      string    `db:"full_name"`
	Role          string    `db:"role"`
	Email         string    `db:"email"`
	LastHeartbeat time.Time `db:"last_heartbeat"`
}
