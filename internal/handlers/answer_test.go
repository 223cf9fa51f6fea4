package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"dexsearch/internal/api"
	"dexsearch/internal/handlers/mocks"
)

func TestAnswerHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		body          any
		mockSetup     func(m *mocks.MockBackend)
		wantStatus    int
		checkResponse func(t *testing.T, resp AnswerResponse)
	}{
		{
			name:   "renders markdown answer",
			method: http.MethodPost,
			body: AnswerRequest{
				Query:            "  kde je faktura? ",
				ContextDocuments: []map[string]any{{"file_name": "a.pdf"}},
			},
			mockSetup: func(m *mocks.MockBackend) {
				m.EXPECT().
					OllamaGenerateAnswer(gomock.Any(), api.GenerateAnswerRequest{
						Query:            "kde je faktura?",
						ContextDocuments: []map[string]any{{"file_name": "a.pdf"}},
					}).
					Return(api.GeneratedAnswer{
						Query:                 "kde je faktura?",
						Answer:                "Faktura je v **a.pdf**.<script>x()</script>",
						ContextDocumentsCount: 1,
					}, nil)
			},
			wantStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp AnswerResponse) {
				if !strings.Contains(resp.HTML, "<strong>a.pdf</strong>") {
					t.Errorf("HTML = %q, want bold file name", resp.HTML)
				}
				if strings.Contains(resp.HTML, "<script>") {
					t.Errorf("HTML = %q, raw html must not pass through", resp.HTML)
				}
				if resp.ContextDocumentsCount != 1 || !strings.HasPrefix(resp.Answer, "Faktura") {
					t.Errorf("response = %+v", resp)
				}
			},
		},
		{
			name:   "nil context becomes empty list",
			method: http.MethodPost,
			body:   AnswerRequest{Query: "ahoj", MaxLength: 200},
			mockSetup: func(m *mocks.MockBackend) {
				m.EXPECT().
					OllamaGenerateAnswer(gomock.Any(), api.GenerateAnswerRequest{
						Query:            "ahoj",
						ContextDocuments: []map[string]any{},
						MaxLength:        200,
					}).
					Return(api.GeneratedAnswer{Query: "ahoj", Answer: "Ahoj."}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "empty query",
			method:     http.MethodPost,
			body:       AnswerRequest{Query: "   "},
			mockSetup:  func(m *mocks.MockBackend) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid json",
			method:     http.MethodPost,
			body:       "nope",
			mockSetup:  func(m *mocks.MockBackend) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "method not allowed",
			method:     http.MethodGet,
			body:       "",
			mockSetup:  func(m *mocks.MockBackend) {},
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:   "model unavailable",
			method: http.MethodPost,
			body:   AnswerRequest{Query: "ahoj"},
			mockSetup: func(m *mocks.MockBackend) {
				m.EXPECT().OllamaGenerateAnswer(gomock.Any(), gomock.Any()).
					Return(api.GeneratedAnswer{}, &api.StatusError{StatusCode: http.StatusServiceUnavailable, Detail: "Ollama není dostupná"})
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:   "transport failure",
			method: http.MethodPost,
			body:   AnswerRequest{Query: "ahoj"},
			mockSetup: func(m *mocks.MockBackend) {
				m.EXPECT().OllamaGenerateAnswer(gomock.Any(), gomock.Any()).
					Return(api.GeneratedAnswer{}, errors.New("refused"))
			},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			backend := mocks.NewMockBackend(ctrl)
			tt.mockSetup(backend)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, "/api/answer", jsonBody(t, tt.body))
			NewAnswerHandler(backend).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("ServeHTTP() status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.checkResponse != nil {
				var resp AnswerResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode: %v", err)
				}
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestAnswerHandler_RenderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockBackend(ctrl)
	backend.EXPECT().OllamaGenerateAnswer(gomock.Any(), gomock.Any()).Return(api.GeneratedAnswer{Answer: "x"}, nil)

	h := NewAnswerHandler(backend)
	h.render = func(string) (string, error) { return "", errors.New("broken") }

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/answer", jsonBody(t, AnswerRequest{Query: "q"})))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("ServeHTTP() status = %d, want 500", w.Code)
	}
}
