package response

import (
	"time"

	"playhall/internal/usecase/queries"

	"github.com/google/uuid"
)

type StationResponse struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Category string           `json:"category"`
	Status   string           `json:"status"`
	Session  *SessionResponse `json:"session,omitempty"`
}

type SessionResponse struct {
	ID               uuid.UUID           `json:"id"`
	Customer         string              `json:"customer"`
	Mode             string              `json:"mode"`
	StartedAt        time.Time           `json:"startedAt"`
	EndsAt           *time.Time          `json:"endsAt,omitempty"`
	ElapsedSeconds   int64               `json:"elapsedSeconds"`
	RemainingSeconds *int64              `json:"remainingSeconds,omitempty"`
	TimeCharge       int64               `json:"timeCharge"`
	ItemsCharge      int64               `json:"itemsCharge"`
	Total            int64               `json:"total"`
	Orders           []OrderItemResponse `json:"orders"`
}

type OrderItemResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Price   int64     `json:"price"`
	AddedAt time.Time `json:"addedAt"`
}

func FromStationView(rm *queries.StationView) *StationResponse {
	resp := &StationResponse{
		ID:       rm.ID,
		Name:     rm.Name,
		Category: rm.Category,
		Status:   rm.Status,
	}
	if rm.Session == nil {
		return resp
	}

	orders := make([]OrderItemResponse, len(rm.Session.Orders))
	for i, o := range rm.Session.Orders {
		orders[i] = OrderItemResponse{
			ID:      o.ID,
			Name:    o.Name,
			Price:   o.Price,
			AddedAt: o.AddedAt,
		}
	}

	resp.Session = &SessionResponse{
		ID:               rm.Session.ID,
		Customer:         rm.Session.Customer,
		Mode:             rm.Session.Mode,
		StartedAt:        rm.Session.StartedAt,
		EndsAt:           rm.Session.EndsAt,
		ElapsedSeconds:   rm.Session.ElapsedSeconds,
		RemainingSeconds: rm.Session.RemainingSeconds,
		TimeCharge:       rm.Session.TimeCharge,
		ItemsCharge:      rm.Session.ItemsCharge,
		Total:            rm.Session.Total,
		Orders:           orders,
	}
	return resp
}
