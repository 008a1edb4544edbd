package models

import (
	"time"
)

type DispatcherShift struct {
	ID             int64      `db:"id"`
	DispatcherID   string     `db:"dispatcher_id"`
	DispatcherName string     `db:"dispatcher_name"`
	StartTime      time.Time  `db:"start_time"`
	EndTime        *time.Time `db:"end_time"`
	IsActive       bool       `db:"is_active"`
}
