package sos

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"safetrip/internal/app/server/api/http/apitest"
	"safetrip/internal/domain/sos"
	"safetrip/internal/domain/user"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Dispatch(ctx context.Context, userID int, req sos.Request) (sos.Result, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(sos.Result), args.Error(1)
}

func TestHandler_Dispatch(t *testing.T) {
	tests := []struct {
		name       string
		result     sos.Result
		svcErr     error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "partial success",
			result:     sos.Result{AlertID: "a1", TotalContacts: 3, Successful: 2, Failed: 1},
			wantStatus: http.StatusOK,
			wantBody: `{"status":"success","message":"SOS alerts sent successfully to 2 contacts",
				"alert_id":"a1","total_contacts":3,"successful_sends":2,"failed_sends":1}`,
		},
		{
			name:       "unknown user",
			svcErr:     user.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"status":"error","message":"User not found"}`,
		},
		{
			name:       "no contacts",
			svcErr:     sos.ErrNoContacts,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"status":"error","message":"No emergency contacts found. Please add emergency contacts first."}`,
		},
		{
			name:       "every send failed",
			result:     sos.Result{AlertID: "a1", TotalContacts: 2, Failed: 2},
			svcErr:     sos.ErrAllFailed,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"status":"error","message":"Failed to send alerts to any emergency contacts"}`,
		},
		{
			name:       "unexpected failure",
			svcErr:     errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"status":"error","message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			svc.On("Dispatch", mock.Anything, 9, mock.MatchedBy(func(req sos.Request) bool {
				return req.Latitude != nil && *req.Latitude == 28.61 && req.Longitude != nil && *req.Longitude == 77.2
			})).Return(tt.result, tt.svcErr)
			api := apitest.New(t)
			NewHandler(svc, slog.Default(), huma.Middlewares{}).SetupRoutes(api)

			resp := api.Post("/api/send-sos-alert/9", map[string]any{"latitude": 28.61, "longitude": 77.2})

			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.JSONEq(t, tt.wantBody, resp.Body.String())
		})
	}
}

func TestHandler_Dispatch_NullCoordinatesReachService(t *testing.T) {
	svc := new(MockService)
	svc.On("Dispatch", mock.Anything, 9, sos.Request{}).Return(sos.Result{}, sos.ErrMissingCoordinates)
	api := apitest.New(t)
	NewHandler(svc, slog.Default(), huma.Middlewares{}).SetupRoutes(api)

	resp := api.Post("/api/send-sos-alert/9", map[string]any{"latitude": nil})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"status":"error","message":"Location coordinates are required"}`, resp.Body.String())
}
