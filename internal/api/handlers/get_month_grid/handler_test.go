package get_month_grid

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getMonthGrid "github.com/m04kA/HRS-EstimateService/internal/usecase/get_month_grid"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter() *mux.Router {
	uc := getMonthGrid.NewUseCase(nopLogger{})
	h := NewHandler(uc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/calendar", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_May2025(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar?year=2025&month=5", nil)
	newRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 5, resp.Primary.Month)
	assert.Equal(t, []int{27, 28, 29, 30}, resp.Primary.Leading)
	assert.Len(t, resp.Primary.Current, 31)
	assert.Equal(t, 6, resp.Secondary.Month)
}

func TestHandle_BadParams(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"missing year", "/api/v1/calendar?month=5"},
		{"non-numeric month", "/api/v1/calendar?year=2025&month=may"},
		{"month out of range", "/api/v1/calendar?year=2025&month=13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			newRouter().ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
