package snapshot

import (
	"time"

	"github.com/google/uuid"
)

// Blob is the persisted state format. It must stay forward-readable:
// unknown fields are ignored on decode and missing fields default safely
// (an absent dailyStats is zeroed counters).
type Blob struct {
	Devices     []DeviceRecord `json:"devices"`
	TotalProfit int64          `json:"totalProfit"`
	DailyStats  *DailyRecord   `json:"dailyStats,omitempty"`
	LastSave    time.Time      `json:"lastSave"`
}

type DeviceRecord struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Type     string         `json:"type"`
	Status   string         `json:"status"`
	Customer string         `json:"customer,omitempty"`
	Session  *SessionRecord `json:"session,omitempty"`
}

type SessionRecord struct {
	ID         uuid.UUID     `json:"id"`
	Mode       string        `json:"mode"`
	StartTime  time.Time     `json:"startTime"`
	EndTime    *time.Time    `json:"endTime"` // null for open-ended metering
	HourlyRate int64         `json:"hourlyRate,omitempty"`
	BasePrice  int64         `json:"basePrice"`
	PausedMs   int64         `json:"pausedMs,omitempty"`
	PausedAt   *time.Time    `json:"pausedAt,omitempty"`
	Orders     []OrderRecord `json:"orders"`
}

type OrderRecord struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Price   int64     `json:"price"`
	AddedAt time.Time `json:"addedAt"`
}

type DailyRecord struct {
	Revenue       int64 `json:"revenue"`
	Invoices      int   `json:"invoices"`
	Items         int   `json:"items"`
	ActiveMinutes int64 `json:"activeMinutes"`
}
