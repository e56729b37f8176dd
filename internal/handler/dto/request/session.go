package request

type StartSessionRequest struct {
	Customer   string `json:"customer"`
	OfferIndex *int   `json:"offerIndex" binding:"required"`
}

func (r StartSessionRequest) Offer() int {
	if r.OfferIndex == nil {
		return 0
	}
	return *r.OfferIndex
}

type ExtendSessionRequest struct {
	Minutes int   `json:"minutes" binding:"required,gt=0"`
	Price   int64 `json:"price" binding:"gte=0"`
}

type AddOrderRequest struct {
	Name  string `json:"name" binding:"required"`
	Price int64  `json:"price" binding:"gte=0"`
}
