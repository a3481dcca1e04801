package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"meetmate/internal/scheduling"
	"meetmate/pkg/response"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockUseCase struct {
	analyzeOut   scheduling.AnalyzeOutput
	recommendOut scheduling.RecommendOutput
	err          error
	gotAnalyze   *scheduling.AnalyzeInput
	gotRecommend *scheduling.RecommendInput
}

func (m *mockUseCase) Analyze(ctx context.Context, input scheduling.AnalyzeInput) (scheduling.AnalyzeOutput, error) {
	m.gotAnalyze = &input
	return m.analyzeOut, m.err
}

func (m *mockUseCase) Recommend(ctx context.Context, input scheduling.RecommendInput) (scheduling.RecommendOutput, error) {
	m.gotRecommend = &input
	return m.recommendOut, m.err
}

func newTestRouter(uc scheduling.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(&mockLogger{}, uc)
	r.POST("/analyze", h.Analyze)
	r.POST("/recommend", h.Recommend)
	return r
}

func TestAnalyze_Handler(t *testing.T) {
	uc := &mockUseCase{analyzeOut: scheduling.AnalyzeOutput{
		Priority:   scheduling.PriorityAssessment{Level: "high", UrgencyScore: 7, Reasoning: "client call"},
		Preference: scheduling.TimePreference{PreferredTime: "10:00"},
	}}
	r := newTestRouter(uc)

	t.Run("valid request", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := `{"title": "Client demo", "attendees": ["a@x.com"], "duration_minutes": 60}`
		req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		data, _ := resp.Data.(map[string]interface{})
		priority, _ := data["priority"].(map[string]interface{})
		if priority["level"] != "high" {
			t.Errorf("unexpected priority payload: %v", resp.Data)
		}
	})

	t.Run("organizer notes forwarded", func(t *testing.T) {
		inner := &mockUseCase{}
		router := newTestRouter(inner)

		w := httptest.NewRecorder()
		body := `{"title": "Planning", "organizer_notes": "prefer next monday morning", "duration_minutes": 30}`
		req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		if inner.gotAnalyze == nil || inner.gotAnalyze.Request.OrganizerNotes != "prefer next monday morning" {
			t.Errorf("organizer notes not forwarded: %+v", inner.gotAnalyze)
		}
	})

	t.Run("empty title rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := `{"title": "  ", "duration_minutes": 60}`
		req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("malformed json rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("{not json"))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestRecommend_Handler(t *testing.T) {
	start := time.Date(2024, 5, 14, 9, 30, 0, 0, time.UTC)
	uc := &mockUseCase{recommendOut: scheduling.RecommendOutput{
		Found: true,
		Recommendation: &scheduling.Recommendation{
			SlotID:     "slot-1",
			StartTime:  start,
			EndTime:    start.Add(time.Hour),
			Score:      115,
			Confidence: 0.9,
		},
	}}
	r := newTestRouter(uc)

	t.Run("auto_book flag forwarded", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := `{"title": "Demo", "attendees": ["a@x.com"], "duration_minutes": 30, "auto_book": true}`
		req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(body))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		if uc.gotRecommend == nil || !uc.gotRecommend.AutoBook {
			t.Error("AutoBook not forwarded to the use case")
		}
		if uc.gotRecommend.Now.IsZero() {
			t.Error("handler must stamp the request time")
		}
	})

	t.Run("missing attendees rejected before the use case", func(t *testing.T) {
		inner := &mockUseCase{}
		router := newTestRouter(inner)

		w := httptest.NewRecorder()
		body := `{"title": "Demo", "duration_minutes": 30}`
		req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(body))
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
		if inner.gotRecommend != nil {
			t.Error("use case must not be called for invalid input")
		}
	})

	t.Run("booking failure maps to 400", func(t *testing.T) {
		inner := &mockUseCase{err: scheduling.ErrBookingFailed}
		router := newTestRouter(inner)

		w := httptest.NewRecorder()
		body := `{"title": "Demo", "attendees": ["a@x.com"], "duration_minutes": 30}`
		req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(body))
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}
