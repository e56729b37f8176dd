//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"playhall/internal/handler/api"
	"playhall/internal/usecase/queries"
	"playhall/tests/common/builder"
	"playhall/tests/common/httptest"
	queriesmock "playhall/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FloorHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockFloorQueries
	handler     *api.FloorHandler
}

func (s *FloorHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockFloorQueries(s.mockCtrl)
	s.handler = api.NewFloorHandler(s.mockQueries)

	// Setup routes
	s.router.GET("/stations", s.handler.ListStations)
	s.router.GET("/stations/:id", s.handler.GetStation)
	s.router.GET("/pricing", s.handler.GetPricing)
	s.router.GET("/revenue", s.handler.GetRevenue)
}

func (s *FloorHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFloorHandlerSuite(t *testing.T) {
	suite.Run(t, new(FloorHandlerTestSuite))
}

func (s *FloorHandlerTestSuite) TestListStations() {
	s.Run("success: returns 200 OK with all stations", func() {
		views := []*queries.StationView{
			builder.NewStationBuilder().BuildView(),
			builder.NewStationBuilder().With(func(b *builder.StationBuilder) {
				b.ID = "console-2"
				b.Name = "Console 2"
			}).BuildAvailableView(),
		}
		s.mockQueries.EXPECT().ListStations(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stations", nil)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal("occupied", body[0]["status"])
		s.Equal("available", body[1]["status"])
		s.Nil(body[1]["session"])
	})
}

func (s *FloorHandlerTestSuite) TestGetStation() {
	s.Run("success: returns 200 OK with the live projection", func() {
		view := builder.NewStationBuilder().BuildView()
		s.mockQueries.EXPECT().GetStation(gomock.Any(), "console-1").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stations/console-1", nil)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("console-1", body["id"])

		session, ok := body["session"].(map[string]any)
		s.Require().True(ok)
		s.Equal("Walk-in", session["customer"])
		s.EqualValues(4000, session["timeCharge"])
	})

	s.Run("error: 404 Not Found for unknown station", func() {
		s.mockQueries.EXPECT().GetStation(gomock.Any(), "console-9").
			Return(nil, queries.ErrStationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stations/console-9", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Station not found")
	})
}

func (s *FloorHandlerTestSuite) TestGetPricing() {
	s.Run("success: returns 200 OK with the catalog", func() {
		views := []*queries.CategoryPricingView{
			{
				Category:   "console",
				HourlyRate: 4000,
				Offers: []queries.OfferView{
					{Index: 0, Label: "One hour", Minutes: 60, Price: 4000},
					{Index: 1, Label: "Open play", OpenEnded: true},
				},
			},
		}
		s.mockQueries.EXPECT().Catalog(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pricing", nil)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("console", body[0]["category"])
		s.EqualValues(4000, body[0]["hourlyRate"])
	})
}

func (s *FloorHandlerTestSuite) TestGetRevenue() {
	s.Run("success: returns 200 OK with aggregates", func() {
		view := &queries.RevenueView{
			Lifetime: 125000,
			Daily:    queries.DailyStatsView{Revenue: 9500, Invoices: 3, Items: 5, ActiveMinutes: 240},
		}
		s.mockQueries.EXPECT().Revenue(gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/revenue", nil)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.EqualValues(125000, body["lifetime"])

		daily, ok := body["daily"].(map[string]any)
		s.Require().True(ok)
		s.EqualValues(3, daily["invoices"])
	})
}
