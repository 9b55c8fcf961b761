package get_available_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-TableBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-TableBookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(uc *fakeUseCase, url string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/restaurants/{restaurantId}/tables/{tableId}/available-slots", NewHandler(uc, nopLogger{}).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle_Slots(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date:            time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		RestaurantID:    1,
		TableID:         7,
		Seats:           4,
		IntervalMinutes: 30,
		Slots:           []types.TimeString{"18:00", "18:30"},
	}}

	rec := serve(uc, "/restaurants/1/tables/7/available-slots?date=2025-10-15")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), uc.got.TableID)
	assert.JSONEq(t, `{"date":"2025-10-15","restaurantId":1,"tableId":7,"seats":4,"intervalMinutes":30,"slots":["18:00","18:30"]}`,
		rec.Body.String())
}

func TestHandle_EmptySlotsIsArray(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{Slots: []types.TimeString{}}}

	rec := serve(uc, "/restaurants/1/tables/7/available-slots?date=2025-10-15")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slots":[]`)
}

func TestHandle_BadParams(t *testing.T) {
	for _, url := range []string{
		"/restaurants/x/tables/7/available-slots?date=2025-10-15",
		"/restaurants/1/tables/x/available-slots?date=2025-10-15",
		"/restaurants/1/tables/7/available-slots",
		"/restaurants/1/tables/7/available-slots?date=tomorrow",
	} {
		uc := &fakeUseCase{}
		rec := serve(uc, url)
		assert.Equal(t, http.StatusBadRequest, rec.Code, url)
		assert.Nil(t, uc.got, url)
	}
}

func TestHandle_TableNotFound(t *testing.T) {
	rec := serve(&fakeUseCase{err: getAvailableSlots.ErrTableNotFound}, "/restaurants/1/tables/7/available-slots?date=2025-10-15")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
