//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"tripdesk/internal/handler/api"
	"tripdesk/internal/usecase/queries"
	"tripdesk/tests/common/httptest"
	queriesmock "tripdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDashboardShow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := queriesmock.NewMockDashboardQueries(ctrl)
	router := gin.New()
	router.GET("/", api.NewDashboardHandler(mockQueries).Show)

	t.Run("renders whatever panels loaded", func(t *testing.T) {
		count := 42
		mockQueries.EXPECT().Load(gomock.Any()).
			Return(&queries.Dashboard{UserCount: &count}).Times(1)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "42", string(body["user_count"]))
		// Failed panels serialize as null rather than failing the screen.
		assert.Equal(t, "null", string(body["overview"]))
	})
}
