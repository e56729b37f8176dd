package api

import (
	"errors"
	"net/http"

	reqdto "playhall/internal/handler/dto/request"
	resdto "playhall/internal/handler/dto/response"
	"playhall/internal/handler/httperr"
	"playhall/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionCommands commands.SessionCommands
}

func NewSessionHandler(sessionCommands commands.SessionCommands) *SessionHandler {
	return &SessionHandler{
		sessionCommands: sessionCommands,
	}
}

// @Summary Start session
// @Description Open a rental session on an available station
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Station ID"
// @Param request body reqdto.StartSessionRequest true "Session request"
// @Success 201 {object} resdto.StationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /stations/{id}/session [post]
func (h *SessionHandler) Start(c *gin.Context) {
	var req reqdto.StartSessionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	stationRM, err := h.sessionCommands.Start(c.Request.Context(), commands.StartSessionParams{
		StationID:  c.Param("id"),
		Customer:   req.Customer,
		OfferIndex: req.Offer(),
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromStationView(stationRM))
}

// @Summary Pause session
// @Description Pause an occupied station, freezing remaining time and metering
// @Tags sessions
// @Produce json
// @Param id path string true "Station ID"
// @Success 200 {object} resdto.StationResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /stations/{id}/session/pause [post]
func (h *SessionHandler) Pause(c *gin.Context) {
	stationRM, err := h.sessionCommands.Pause(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromStationView(stationRM))
}

// @Summary Resume session
// @Description Resume a paused station, shifting any fixed end by the pause duration
// @Tags sessions
// @Produce json
// @Param id path string true "Station ID"
// @Success 200 {object} resdto.StationResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /stations/{id}/session/resume [post]
func (h *SessionHandler) Resume(c *gin.Context) {
	stationRM, err := h.sessionCommands.Resume(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromStationView(stationRM))
}

// @Summary Extend session
// @Description Add prepaid minutes to a fixed-duration session
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Station ID"
// @Param request body reqdto.ExtendSessionRequest true "Extension"
// @Success 200 {object} resdto.StationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /stations/{id}/session/extend [post]
func (h *SessionHandler) Extend(c *gin.Context) {
	var req reqdto.ExtendSessionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	stationRM, err := h.sessionCommands.Extend(c.Request.Context(), commands.ExtendSessionParams{
		StationID: c.Param("id"),
		Minutes:   req.Minutes,
		Price:     req.Price,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromStationView(stationRM))
}

// @Summary Add order item
// @Description Append an ancillary purchase to the session's bill
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Station ID"
// @Param request body reqdto.AddOrderRequest true "Order item"
// @Success 200 {object} resdto.StationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /stations/{id}/session/orders [post]
func (h *SessionHandler) AddOrder(c *gin.Context) {
	var req reqdto.AddOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	stationRM, err := h.sessionCommands.AddOrder(c.Request.Context(), commands.AddOrderParams{
		StationID: c.Param("id"),
		Name:      req.Name,
		Price:     req.Price,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromStationView(stationRM))
}

// @Summary Finish session
// @Description Close the session, commit the final bill and free the station
// @Tags sessions
// @Produce json
// @Param id path string true "Station ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /stations/{id}/session/finish [post]
func (h *SessionHandler) Finish(c *gin.Context) {
	invoiceRM, err := h.sessionCommands.Finish(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoiceView(invoiceRM))
}

func (h *SessionHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrStationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Station not found", nil)
	case errors.Is(err, commands.ErrStationOccupied):
		httperr.AbortWithError(c, http.StatusConflict, err, "Station already occupied", nil)
	case errors.Is(err, commands.ErrNoActiveSession):
		httperr.AbortWithError(c, http.StatusConflict, err, "Station has no active session", nil)
	case errors.Is(err, commands.ErrSessionAlreadyPaused):
		httperr.AbortWithError(c, http.StatusConflict, err, "Session is already paused", nil)
	case errors.Is(err, commands.ErrSessionNotPaused):
		httperr.AbortWithError(c, http.StatusConflict, err, "Session is not paused", nil)
	case errors.Is(err, commands.ErrOpenEndedExtend):
		httperr.AbortWithError(c, http.StatusConflict, err, "Open-ended sessions cannot be extended", nil)
	case errors.Is(err, commands.ErrInvalidOffer):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pricing offer", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
