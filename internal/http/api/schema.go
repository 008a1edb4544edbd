package api

import (
	"encoding/json"
	"time"
)

type OnlineUserSchema struct {
	UserID        string    `json:"user_id"`
	FullName      string    `json:"full_name"`
	Role          string    `json:"role"`
	Email         string    `json:"email"`
	LastHeartbeat time.Time `json:"last_heartbeat"`
}

type ShiftSchema struct {
	ID             int64      `json:"id"`
	DispatcherID   string     `json:"dispatcher_id"`
	DispatcherName string     `json:"dispatcher_name"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        *time.Time `json:"end_time,omitempty"`
	IsActive       bool       `json:"is_active"`
}

// UnitSchema keeps the camelCase field names the dispatch UI expects.
type UnitSchema struct {
	ID         int64     `json:"id"`
	UnitName   string    `json:"unitName"`
	Status     string    `json:"status"`
	Location   string    `json:"location"`
	LastUpdate time.Time `json:"lastUpdate"`
	Members    []string  `json:"members"`
}

type UnitsResponse struct {
	Units []UnitSchema `json:"units"`
}

type StorageEntrySchema struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type StoredResponse struct {
	Success bool   `json:"success"`
	Key     string `json:"key"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
