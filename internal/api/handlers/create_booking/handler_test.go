package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/SMC-TableBookingService/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

const validBody = `{"restaurantId":1,"tableId":7,"guestName":"Анна","guestPhone":"+79991234567",` +
	`"guestCount":2,"date":"2025-10-15","startTime":"19:30"}`

func serve(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	h := NewHandler(uc, nopLogger{})
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:               10,
		RestaurantID:     1,
		TableID:          7,
		GuestName:        "Анна",
		GuestPhone:       "+79991234567",
		GuestCount:       2,
		DateTime:         time.Date(2025, 10, 15, 19, 30, 0, 0, time.UTC),
		Status:           "pending",
		PendingExpiresIn: 180,
		CreatedAt:        time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC),
	}}

	rec := serve(uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "19:30", uc.got.StartTime.String())
	assert.False(t, uc.got.AcknowledgeConflict)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2025-10-15T19:30:00", resp.DateTime)
	assert.Equal(t, "3:00", resp.Countdown)
	assert.Equal(t, 180, resp.ExpiresInSeconds)
}

func TestHandle_ConflictWarning(t *testing.T) {
	next := time.Date(2025, 10, 15, 21, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{err: &createBooking.ConflictWarning{NextBookingAt: next}}

	rec := serve(uc, validBody)

	assert.Equal(t, http.StatusConflict, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-10-15T21:00:00", body["nextBookingAt"])
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "slot taken", err: fmt.Errorf("%w: 19:30", createBooking.ErrSlotNotAvailable), wantStatus: http.StatusConflict},
		{name: "no slots", err: createBooking.ErrNoSlotsAvailable, wantStatus: http.StatusConflict},
		{name: "restaurant", err: createBooking.ErrRestaurantNotFound, wantStatus: http.StatusNotFound},
		{name: "table", err: createBooking.ErrTableNotFound, wantStatus: http.StatusNotFound},
		{name: "too many guests", err: createBooking.ErrTooManyGuests, wantStatus: http.StatusBadRequest},
		{name: "invalid phone", err: fmt.Errorf("%w: phone", createBooking.ErrInvalidInput), wantStatus: http.StatusBadRequest},
		{name: "internal", err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, validBody)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "bad date", body: strings.Replace(validBody, "2025-10-15", "15.10.2025", 1)},
		{name: "bad time", body: strings.Replace(validBody, "19:30", "7pm", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := serve(uc, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.got)
		})
	}
}
