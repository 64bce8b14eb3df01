package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailability "github.com/inigoestebangomez/cool-mex-server/internal/usecase/get_availability"
	"github.com/inigoestebangomez/cool-mex-server/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	resp *getAvailability.Response
	err  error

	gotReq *getAvailability.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	s.gotReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func doRequest(t *testing.T, uc *stubUseCase, path string) *httptest.ResponseRecorder {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/reservation/availability/{date}/{numGuests}",
		NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandle_OK(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailability.Response{
		Date:           time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		NumGuests:      4,
		Category:       "3-4",
		AvailableTimes: []types.TimeString{"12:00", "12:30", "21:30"},
	}}

	w := doRequest(t, uc, "/reservation/availability/2025-10-15/4")

	assert.Equal(t, http.StatusOK, w.Code)

	// Форма ответа legacy API: только список времен
	var resp map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"12:00", "12:30", "21:30"}, resp["availableTimes"])

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, 4, uc.gotReq.NumGuests)
	assert.Equal(t, "2025-10-15", uc.gotReq.Date.Format("2006-01-02"))
}

func TestHandle_EmptyCatalog(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailability.Response{
		AvailableTimes: []types.TimeString{},
	}}

	w := doRequest(t, uc, "/reservation/availability/2025-10-15/2")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"availableTimes": []}`, w.Body.String())
}

func TestHandle_InvalidNumGuests(t *testing.T) {
	w := doRequest(t, &stubUseCase{}, "/reservation/availability/2025-10-15/four")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Guests must be a positive number.")
}

func TestHandle_InvalidDate(t *testing.T) {
	w := doRequest(t, &stubUseCase{}, "/reservation/availability/15-10-2025/4")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Date must be YYYY-MM-DD.")
}

func TestHandle_ValidationError(t *testing.T) {
	uc := &stubUseCase{err: getAvailability.ErrInvalidInput}

	w := doRequest(t, uc, "/reservation/availability/2025-10-15/0")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandle_StoreUnavailable(t *testing.T) {
	uc := &stubUseCase{err: getAvailability.ErrStoreUnavailable}

	w := doRequest(t, uc, "/reservation/availability/2025-10-15/4")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "Service temporarily unavailable, please retry.")
}

func TestHandle_InternalError(t *testing.T) {
	uc := &stubUseCase{err: getAvailability.ErrInternal}

	w := doRequest(t, uc, "/reservation/availability/2025-10-15/4")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
