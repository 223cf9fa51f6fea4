package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"dexsearch/internal/api"
	"dexsearch/internal/handlers/mocks"
)

func TestHealthHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		mockSetup   func(m *mocks.MockBackend)
		wantStatus  int
		wantHealthy bool
	}{
		{
			name:   "backend healthy",
			method: http.MethodGet,
			mockSetup: func(m *mocks.MockBackend) {
				m.EXPECT().Health(gomock.Any()).Return(api.HealthStatus{Status: "healthy", Message: "Dex Search API is running"}, nil)
			},
			wantStatus:  http.StatusOK,
			wantHealthy: true,
		},
		{
			name:   "backend down",
			method: http.MethodGet,
			mockSetup: func(m *mocks.MockBackend) {
				m.EXPECT().Health(gomock.Any()).Return(api.HealthStatus{}, errors.New("connection refused"))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "method not allowed",
			method:     http.MethodPost,
			mockSetup:  func(m *mocks.MockBackend) {},
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			backend := mocks.NewMockBackend(ctrl)
			tt.mockSetup(backend)

			w := httptest.NewRecorder()
			NewHealthHandler(backend).ServeHTTP(w, httptest.NewRequest(tt.method, "/api/health", nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("ServeHTTP() status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.method != http.MethodGet {
				return
			}

			var resp HealthResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode: %v", err)
			}
			if tt.wantHealthy {
				if resp.Status != "healthy" || resp.Checks["backend"] != "ok" || resp.Backend == nil {
					t.Errorf("ServeHTTP() response = %+v", resp)
				}
				return
			}
			if resp.Status != "unhealthy" || len(resp.Issues) != 1 || resp.Issues[0] != "backend_unavailable" {
				t.Errorf("ServeHTTP() response = %+v", resp)
			}
		})
	}
}
