package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"dexsearch/internal/folders"
	"dexsearch/internal/handlers/mocks"
)

func TestActivityHandler_ServeHTTP(t *testing.T) {
	at := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	tests := []struct {
		name       string
		query      string
		mockSetup  func(m *mocks.MockActivityLister)
		wantStatus int
		wantLen    int
	}{
		{
			name:  "default limit",
			query: "",
			mockSetup: func(m *mocks.MockActivityLister) {
				m.EXPECT().ListRecent(gomock.Any(), 0).Return([]folders.Activity{
					{ID: "b", Action: folders.ActionIndex, FolderID: "1", Success: true, CreatedAt: at},
					{ID: "a", Action: folders.ActionLoad, Success: false, Message: "Chyba", CreatedAt: at},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantLen:    2,
		},
		{
			name:  "explicit limit",
			query: "?limit=5",
			mockSetup: func(m *mocks.MockActivityLister) {
				m.EXPECT().ListRecent(gomock.Any(), 5).Return([]folders.Activity{}, nil)
			},
			wantStatus: http.StatusOK,
			wantLen:    0,
		},
		{
			name:  "limit is capped",
			query: "?limit=100000",
			mockSetup: func(m *mocks.MockActivityLister) {
				m.EXPECT().ListRecent(gomock.Any(), maxActivityLimit).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
			wantLen:    0,
		},
		{
			name:       "invalid limit",
			query:      "?limit=-1",
			mockSetup:  func(m *mocks.MockActivityLister) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "journal failure",
			query: "",
			mockSetup: func(m *mocks.MockActivityLister) {
				m.EXPECT().ListRecent(gomock.Any(), 0).Return(nil, errors.New("disk I/O"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			journal := mocks.NewMockActivityLister(ctrl)
			tt.mockSetup(journal)

			w := httptest.NewRecorder()
			NewActivityHandler(journal).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/activity"+tt.query, nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("ServeHTTP() status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp []ActivityResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode: %v", err)
			}
			if len(resp) != tt.wantLen {
				t.Fatalf("ServeHTTP() len = %d, want %d", len(resp), tt.wantLen)
			}
			if tt.wantLen > 0 {
				if resp[0].ID != "b" || resp[0].CreatedAt != "2024-05-06T07:08:09Z" || resp[1].Message != "Chyba" {
					t.Errorf("ServeHTTP() response = %+v", resp)
				}
			}
		})
	}
}
