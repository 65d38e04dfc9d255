//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"tripdesk/internal/handler/api"
	"tripdesk/internal/handler/middleware"
	"tripdesk/internal/infra/upstream"
	"tripdesk/internal/pkg/config"
	"tripdesk/internal/usecase/queries"
	"tripdesk/tests/common/httptest"
	queriesmock "tripdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCatalogQueries
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	handler := api.NewCatalogHandler(s.mockQueries)

	s.router.Use(middleware.ErrorHandler(config.NewTestConfig().Session))
	s.router.GET("/offer", handler.ListOffers)
	s.router.GET("/booking", handler.ListBookings)
	s.router.GET("/agency", handler.ListAgencies)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListOffers() {
	s.mockQueries.EXPECT().ListOffers(gomock.Any(), 2).
		Return(&queries.OfferList{
			Items:   []queries.OfferCard{{ID: 1, Title: "Summer Sale"}},
			HasMore: true,
		}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offer?pages=2", nil)

	var response queries.OfferList
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.True(response.HasMore)
	s.Equal("Summer Sale", response.Items[0].Title)
}

func (s *CatalogHandlerTestSuite) TestListBookings() {
	s.mockQueries.EXPECT().ListBookings(gomock.Any(), 1).
		Return(&queries.BookingList{Items: []queries.BookingCard{{ID: 9, Status: "Confirmed"}}}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking", nil)

	var response queries.BookingList
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal("Confirmed", response.Items[0].Status)
}

func (s *CatalogHandlerTestSuite) TestListAgencies() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().ListAgencies(gomock.Any(), 1).
			Return(&queries.AgencyList{Items: []queries.AgencyCard{{ID: 3, Name: "Al Noor Travel"}}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/agency", nil)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("upstream outage returns 502", func() {
		s.mockQueries.EXPECT().ListAgencies(gomock.Any(), 1).
			Return(nil, upstream.NewGatewayError(upstream.KindUpstreamDown, 500, "boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/agency", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Failed to load agencies")
	})
}
