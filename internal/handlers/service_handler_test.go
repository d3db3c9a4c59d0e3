package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorlink/mentor-booking-api/internal/middleware"
	"github.com/mentorlink/mentor-booking-api/internal/mocks"
	"github.com/mentorlink/mentor-booking-api/internal/models"
	ucServices "github.com/mentorlink/mentor-booking-api/internal/usecase/services"
)

func serviceTestRouter(repo *mocks.FakeRepository, mentorID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewServiceHandler(ucServices.NewReplaceServices(repo, nil), nil)

	r := gin.New()
	r.PUT("/services", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, mentorID)
		h.Update(c)
	})
	return r
}

func putServices(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPut, "/services", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReplaceServicesHandlerAcceptsEmptyList(t *testing.T) {
	repo := mocks.NewFakeRepository()
	repo.AddService(models.MentorService{
		MentorID:    7,
		ServiceName: "Old offering",
		MentorPrice: 10,
		TotalPrice:  10,
	})

	r := serviceTestRouter(repo, 7)

	w := putServices(t, r, `{"services": []}`)
	require.Equal(t, http.StatusOK, w.Code)

	left, err := repo.ListServices(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestReplaceServicesHandlerRejectsBadItem(t *testing.T) {
	repo := mocks.NewFakeRepository()
	r := serviceTestRouter(repo, 7)

	w := putServices(t, r, `{"services": [{"service_name": "Mentoring", "mentor_price": 100, "total_price": 90}]}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}
