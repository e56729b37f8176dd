package response

import (
	"time"

	"playhall/internal/usecase/queries"

	"github.com/google/uuid"
)

type InvoiceResponse struct {
	ID            uuid.UUID `json:"id"`
	StationID     string    `json:"stationId"`
	StationName   string    `json:"stationName"`
	Customer      string    `json:"customer"`
	StartedAt     time.Time `json:"startedAt"`
	FinishedAt    time.Time `json:"finishedAt"`
	ActiveMinutes int64     `json:"activeMinutes"`
	TimeCharge    int64     `json:"timeCharge"`
	ItemsCharge   int64     `json:"itemsCharge"`
	Total         int64     `json:"total"`
}

func FromInvoiceView(rm *queries.InvoiceView) *InvoiceResponse {
	return &InvoiceResponse{
		ID:            rm.ID,
		StationID:     rm.StationID,
		StationName:   rm.StationName,
		Customer:      rm.Customer,
		StartedAt:     rm.StartedAt,
		FinishedAt:    rm.FinishedAt,
		ActiveMinutes: rm.ActiveMinutes,
		TimeCharge:    rm.TimeCharge,
		ItemsCharge:   rm.ItemsCharge,
		Total:         rm.Total,
	}
}

type RevenueResponse struct {
	Lifetime int64              `json:"lifetime"`
	Daily    DailyStatsResponse `json:"daily"`
}

type DailyStatsResponse struct {
	Revenue       int64 `json:"revenue"`
	Invoices      int   `json:"invoices"`
	Items         int   `json:"items"`
	ActiveMinutes int64 `json:"activeMinutes"`
}

func FromRevenueView(rm *queries.RevenueView) *RevenueResponse {
	return &RevenueResponse{
		Lifetime: rm.Lifetime,
		Daily: DailyStatsResponse{
			Revenue:       rm.Daily.Revenue,
			Invoices:      rm.Daily.Invoices,
			Items:         rm.Daily.Items,
			ActiveMinutes: rm.Daily.ActiveMinutes,
		},
	}
}

type CategoryPricingResponse struct {
	Category   string          `json:"category"`
	HourlyRate int64           `json:"hourlyRate"`
	Offers     []OfferResponse `json:"offers"`
}

type OfferResponse struct {
	Index     int    `json:"index"`
	Label     string `json:"label"`
	Minutes   int    `json:"minutes"`
	Price     int64  `json:"price"`
	OpenEnded bool   `json:"openEnded"`
}

func FromCategoryPricingView(rm *queries.CategoryPricingView) *CategoryPricingResponse {
	offers := make([]OfferResponse, len(rm.Offers))
	for i, o := range rm.Offers {
		offers[i] = OfferResponse{
			Index:     o.Index,
			Label:     o.Label,
			Minutes:   o.Minutes,
			Price:     o.Price,
			OpenEnded: o.OpenEnded,
		}
	}
	return &CategoryPricingResponse{
		Category:   rm.Category,
		HourlyRate: rm.HourlyRate,
		Offers:     offers,
	}
}
