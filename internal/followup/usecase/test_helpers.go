package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"meetmate/internal/followup"
	"meetmate/internal/model"
	"meetmate/pkg/gemini"
	"meetmate/pkg/judgment"
)

// Mock logger for testing
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

// mockGenerator routes canned responses by a substring of the system
// instruction.
type mockGenerator struct {
	mu        sync.Mutex
	err       error
	responses map[string]string
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}

	instruction := ""
	if req.SystemInstruction != nil && len(req.SystemInstruction.Parts) > 0 {
		instruction = req.SystemInstruction.Parts[0].Text
	}
	text := ""
	for key, resp := range m.responses {
		if strings.Contains(instruction, key) {
			text = resp
			break
		}
	}
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: text}}}},
		},
	}, nil
}

// mockRepo serves fixed item lists.
type mockRepo struct {
	overdue  []followup.ActionItemSnapshot
	upcoming []followup.ActionItemSnapshot
	err      error
}

func (m *mockRepo) Overdue(ctx context.Context, now time.Time) ([]followup.ActionItemSnapshot, error) {
	return m.overdue, m.err
}

func (m *mockRepo) DueWithin(ctx context.Context, now time.Time, days int) ([]followup.ActionItemSnapshot, error) {
	return m.upcoming, m.err
}

// mockNotifier records reminders and can fail for selected item IDs.
type mockNotifier struct {
	mu       sync.Mutex
	failFor  map[string]error
	messages map[string]string // item ID -> custom message
}

func (m *mockNotifier) SendReminder(ctx context.Context, item followup.ActionItemSnapshot, customMessage string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.failFor[item.ID]; ok {
		return false, err
	}
	if m.messages == nil {
		m.messages = make(map[string]string)
	}
	m.messages[item.ID] = customMessage
	return true, nil
}

// mockSink records escalations.
type mockSink struct {
	mu        sync.Mutex
	err       error
	escalated []string
}

func (m *mockSink) Escalate(ctx context.Context, item followup.ActionItemSnapshot, strategy followup.FollowUpStrategy) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.escalated = append(m.escalated, item.ID)
	return nil
}

func newTestUseCase(gen *mockGenerator, repo *mockRepo, notifier *mockNotifier, sink *mockSink) *implUseCase {
	l := &mockLogger{}
	judge := judgment.New(gen, l, judgment.Config{})
	return New(l, judge, repo, notifier, sink, Config{})
}

func testItem(id string, due time.Time, priority model.Priority) followup.ActionItemSnapshot {
	return followup.ActionItemSnapshot{
		ID:           id,
		Title:        "item " + id,
		Assignee:     "dev@example.com",
		AssigneeName: "Dev",
		DueDate:      due,
		Priority:     priority,
		Status:       model.StatusPending,
		MeetingTitle: "planning sync",
	}
}
