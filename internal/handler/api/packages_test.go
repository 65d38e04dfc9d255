//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"tripdesk/internal/handler/api"
	reqdto "tripdesk/internal/handler/dto/request"
	"tripdesk/internal/handler/middleware"
	"tripdesk/internal/infra/upstream"
	"tripdesk/internal/pkg/config"
	"tripdesk/internal/pkg/errs"
	"tripdesk/internal/usecase/commands"
	"tripdesk/internal/usecase/queries"
	"tripdesk/tests/common/httptest"
	commandsmock "tripdesk/tests/mock/commands"
	queriesmock "tripdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PackageHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockPackageQueries
	mockForm     *queriesmock.MockFormQueries
	mockCommands *commandsmock.MockPackageCommands
}

func (s *PackageHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockPackageQueries(s.mockCtrl)
	s.mockForm = queriesmock.NewMockFormQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockPackageCommands(s.mockCtrl)
	handler := api.NewPackageHandler(s.mockQueries, s.mockForm, s.mockCommands)

	s.router.Use(middleware.ErrorHandler(config.NewTestConfig().Session))
	pkg := s.router.Group("/package")
	pkg.GET("", handler.List)
	pkg.POST("", handler.Create)
	pkg.GET("/new", handler.FormData)
	pkg.GET("/:id", handler.GetDetail)
	pkg.POST("/:id", handler.Update)
	pkg.DELETE("/:id", handler.Delete)
}

func (s *PackageHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPackageHandlerSuite(t *testing.T) {
	suite.Run(t, new(PackageHandlerTestSuite))
}

func createFormJSON(s *PackageHandlerTestSuite) string {
	form := map[string]any{
		"title":            "Desert Escape",
		"description":      "<p>Dunes</p>",
		"selling_price":    "1499",
		"pricing_type":     "per_person",
		"number_of_days":   "4",
		"number_of_nights": "3",
		"country_id":       1,
		"city_id":          2,
		"travel_agency_id": 3,
		"valid_till":       "2026-12-31",
		"category_ids":     []int{5},
	}
	raw, err := json.Marshal(form)
	s.Require().NoError(err)
	return string(raw)
}

func (s *PackageHandlerTestSuite) TestList() {
	s.Run("merges the requested number of pages", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), 3).
			Return(&queries.PackageList{
				Items:   []queries.PackageCard{{ID: 101, Title: "Desert Escape"}},
				HasMore: true,
				Pages:   3,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/package?pages=3", nil)

		var response queries.PackageList
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.HasMore)
		s.Equal(3, response.Pages)
	})

	s.Run("missing pages param defaults to one", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), 1).Return(&queries.PackageList{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/package", nil)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *PackageHandlerTestSuite) TestGetDetail() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().GetDetail(gomock.Any(), 101).
			Return(&queries.PackageDetail{ID: 101, Title: "Desert Escape"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/package/101", nil)

		var response queries.PackageDetail
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Desert Escape", response.Title)
	})

	s.Run("unknown package returns 404", func() {
		s.mockQueries.EXPECT().GetDetail(gomock.Any(), 404404).
			Return(nil, queries.ErrPackageNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/package/404404", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Package not found")
	})
}

func (s *PackageHandlerTestSuite) TestUpdate() {
	body := map[string]any{"title": "New Title", "description": "<p>New</p>", "selling_price": "1599"}

	s.Run("returns the re-read detail", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), 101, gomock.Any()).
			Return(&queries.PackageDetail{ID: 101, Title: "New Title"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/package/101", body)

		var response queries.PackageDetail
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("New Title", response.Title)
	})

	s.Run("missing fields return 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/package/101", map[string]any{"title": "Only"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("unknown package returns 404", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), 101, gomock.Any()).
			Return(nil, commands.ErrPackageNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/package/101", body)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Package not found")
	})
}

func (s *PackageHandlerTestSuite) TestDelete() {
	s.Run("requires explicit confirmation", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/package/101", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "confirm=true")
	})

	s.Run("success redirects to the list", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), 101).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/package/101?confirm=true", nil)

		httptest.AssertRedirect(s.T(), rec, "/package")
	})

	s.Run("unknown package returns 404", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), 101).
			Return(commands.ErrPackageNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/package/101?confirm=true", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Package not found")
	})
}

func (s *PackageHandlerTestSuite) TestCreate() {
	s.Run("valid submission with a cover returns 201 and a Location", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req reqdto.CreatePackageRequest, cover *commands.CoverImage) (*queries.PackageDetail, error) {
				s.Equal("Desert Escape", req.Title)
				s.Require().NotNil(cover)
				s.Equal("dunes.jpg", cover.Filename)
				s.Equal([]byte("jpeg-bytes"), cover.Content)
				return &queries.PackageDetail{ID: 321, Title: "Desert Escape"}, nil
			}).Times(1)

		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, "/package",
			map[string]string{"data": createFormJSON(s)}, "cover", "dunes.jpg", []byte("jpeg-bytes"))

		var response queries.PackageDetail
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(321, response.ID)
		s.Equal("/package", rec.Header().Get("Location"))
	})

	s.Run("cover is optional", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(&queries.PackageDetail{ID: 322}, nil).Times(1)

		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, "/package",
			map[string]string{"data": createFormJSON(s)}, "", "", nil)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("missing data part returns 400", func() {
		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, "/package",
			map[string]string{}, "", "", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing form data")
	})

	s.Run("invalid form fields return 400 before the command runs", func() {
		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, "/package",
			map[string]string{"data": `{"title": "Incomplete"}`}, "", "", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid form data")
	})

	s.Run("cover upload failure surfaces as 502 without a package", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(upstream.NewGatewayError(upstream.KindUpstreamDown, 500, "storage down"), commands.ErrCoverUploadFailed)).Times(1)

		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, "/package",
			map[string]string{"data": createFormJSON(s)}, "cover", "dunes.jpg", []byte("jpeg-bytes"))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "package was not created")
	})

	s.Run("upstream rejection returns 422", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(upstream.NewGatewayError(upstream.KindRejected, 422, "invalid dates"), commands.ErrPackageRejected)).Times(1)

		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, "/package",
			map[string]string{"data": createFormJSON(s)}, "", "", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Package rejected")
	})
}

func (s *PackageHandlerTestSuite) TestFormData() {
	s.mockForm.EXPECT().PackageFormData(gomock.Any()).
		Return(&queries.PackageFormData{
			Countries:  []queries.Option{{ID: 1, Name: "United Arab Emirates"}},
			Categories: []queries.Option{{ID: 5, Name: "Family"}},
		}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/package/new", nil)

	var response queries.PackageFormData
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Len(response.Countries, 1)
}
