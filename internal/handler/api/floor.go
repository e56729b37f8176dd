package api

import (
	"errors"
	"net/http"

	resdto "playhall/internal/handler/dto/response"
	"playhall/internal/handler/httperr"
	"playhall/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FloorHandler struct {
	floorQueries queries.FloorQueries
}

func NewFloorHandler(floorQueries queries.FloorQueries) *FloorHandler {
	return &FloorHandler{
		floorQueries: floorQueries,
	}
}

// @Summary List stations
// @Description List all stations with live occupancy, charges and remaining time
// @Tags stations
// @Produce json
// @Success 200 {array} resdto.StationResponse
// @Router /stations [get]
func (h *FloorHandler) ListStations(c *gin.Context) {
	stationsRM, err := h.floorQueries.ListStations(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.StationResponse, len(stationsRM))
	for i, rm := range stationsRM {
		response[i] = resdto.FromStationView(rm)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get station
// @Description Get one station with its live session projection
// @Tags stations
// @Produce json
// @Param id path string true "Station ID"
// @Success 200 {object} resdto.StationResponse
// @Failure 404 {object} map[string]string
// @Router /stations/{id} [get]
func (h *FloorHandler) GetStation(c *gin.Context) {
	stationRM, err := h.floorQueries.GetStation(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrStationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Station not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromStationView(stationRM))
}

// @Summary Pricing catalog
// @Description Pricing offers and hourly rates per station category
// @Tags pricing
// @Produce json
// @Success 200 {array} resdto.CategoryPricingResponse
// @Router /pricing [get]
func (h *FloorHandler) GetPricing(c *gin.Context) {
	catalogRM, err := h.floorQueries.Catalog(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.CategoryPricingResponse, len(catalogRM))
	for i, rm := range catalogRM {
		response[i] = resdto.FromCategoryPricingView(rm)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Revenue report
// @Description Lifetime revenue plus rolling daily counters
// @Tags revenue
// @Produce json
// @Success 200 {object} resdto.RevenueResponse
// @Router /revenue [get]
func (h *FloorHandler) GetRevenue(c *gin.Context) {
	revenueRM, err := h.floorQueries.Revenue(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRevenueView(revenueRM))
}
