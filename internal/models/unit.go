package models

import (
	"time"
)

type Unit struct {
	ID         int64     `db:"id"`
	UnitName   string    `db:"unit_name"`
	Status     string    `db:"status"`
	Location   string    `db:"location"`
	LastUpdate time.Time `db:"last_update"`
}

type UnitMember struct {
	UnitID     int64  `db:"unit_id"`
	MemberName string `db:"member_name"`
}
