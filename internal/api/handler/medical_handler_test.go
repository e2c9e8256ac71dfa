package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Huzaifa-dev-Og/docmed-ai/internal/models"
)

// Compile-time check to ensure MockMedicalInfoGenerator implements MedicalInfoGenerator
var _ MedicalInfoGenerator = (*MockMedicalInfoGenerator)(nil)

// MockMedicalInfoGenerator is a mock implementation of MedicalInfoGenerator.
type MockMedicalInfoGenerator struct {
	GenerateMedicalInfoFunc func(ctx context.Context, query string) (*models.MedicalInfo, error)

	CallCount int32
	LastQuery string
}

func (m *MockMedicalInfoGenerator) GenerateMedicalInfo(ctx context.Context, query string) (*models.MedicalInfo, error) {
	atomic.AddInt32(&m.CallCount, 1)
	m.LastQuery = query
	if m.GenerateMedicalInfoFunc != nil {
		return m.GenerateMedicalInfoFunc(ctx, query)
	}
	return nil, errors.New("GenerateMedicalInfoFunc not implemented in mock")
}

func setupMedicalRouter(generator MedicalInfoGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/get-medical-info", NewMedicalHandler(generator).GetMedicalInfo)
	return router
}

func postMedicalInfo(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/get-medical-info", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetMedicalInfo_ValidationFailures(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"no prompt field", `{}`},
		{"empty prompt", `{"prompt": ""}`},
		{"whitespace prompt", `{"prompt": "   \t\n"}`},
		{"malformed json", `{"prompt": `},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mock := &MockMedicalInfoGenerator{}
			router := setupMedicalRouter(mock)

			w := postMedicalInfo(router, tc.body)

			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", w.Code)
			}
			want := `{"error":"Missing 'prompt' in request body."}`
			if w.Body.String() != want {
				t.Errorf("Expected body %s, got %s", want, w.Body.String())
			}
			if atomic.LoadInt32(&mock.CallCount) != 0 {
				t.Error("Expected the generator to never be invoked on invalid input")
			}
		})
	}
}

func TestGetMedicalInfo_Success(t *testing.T) {
	mock := &MockMedicalInfoGenerator{
		GenerateMedicalInfoFunc: func(ctx context.Context, query string) (*models.MedicalInfo, error) {
			return &models.MedicalInfo{
				Query:               query,
				PotentialCondition:  "Viral infection",
				Summary:             "Headache with fever is commonly caused by viral infections.",
				CommonSymptoms:      []string{"headache", "fever"},
				RecommendedActions:  []string{"rest", "hydrate"},
				ImportantDisclaimer: "This is AI-generated educational information, not medical advice.",
			}, nil
		},
	}
	router := setupMedicalRouter(mock)

	w := postMedicalInfo(router, `{"prompt": "I have a headache and fever"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.MedicalInfoResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Expected a JSON body, got %v", err)
	}
	if !resp.Success {
		t.Error("Expected success to be true")
	}
	if resp.Data == nil || resp.Data.ImportantDisclaimer == "" {
		t.Error("Expected data.important_disclaimer to be non-empty")
	}
	if resp.Data.Query != "I have a headache and fever" {
		t.Errorf("Expected the query to be echoed, got %q", resp.Data.Query)
	}
}

func TestGetMedicalInfo_TrimsPromptBeforeGeneration(t *testing.T) {
	mock := &MockMedicalInfoGenerator{
		GenerateMedicalInfoFunc: func(ctx context.Context, query string) (*models.MedicalInfo, error) {
			return &models.MedicalInfo{Query: query, ImportantDisclaimer: "disclaimer"}, nil
		},
	}
	router := setupMedicalRouter(mock)

	w := postMedicalInfo(router, `{"prompt": "  what causes migraines?  "}`)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if mock.LastQuery != "what causes migraines?" {
		t.Errorf("Expected trimmed query, got %q", mock.LastQuery)
	}
}

func TestGetMedicalInfo_UpstreamFailure(t *testing.T) {
	mock := &MockMedicalInfoGenerator{
		GenerateMedicalInfoFunc: func(ctx context.Context, query string) (*models.MedicalInfo, error) {
			return nil, errors.New("openai api call failed: connection refused")
		},
	}
	router := setupMedicalRouter(mock)

	w := postMedicalInfo(router, `{"prompt": "I have a headache and fever"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Expected a JSON body, got %v", err)
	}
	if !strings.HasPrefix(resp.Error, "Failed to get medical information. Detail: ") {
		t.Errorf("Expected the upstream error prefix, got %q", resp.Error)
	}
	if !strings.Contains(resp.Error, "connection refused") {
		t.Errorf("Expected the failure detail to be included, got %q", resp.Error)
	}
}
