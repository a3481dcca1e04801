package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"meetmate/internal/scheduling"
	"meetmate/pkg/datemath"
	"meetmate/pkg/gcalendar"
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
// instruction, since priority and preference judgments run concurrently and
// call order is not deterministic.
type mockGenerator struct {
	mu        sync.Mutex
	err       error
	responses map[string]string // system-instruction substring -> response text
	prompts   []string          // system instructions seen, in call order
	contents  []string          // user payloads seen, in call order
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	instruction := ""
	if req.SystemInstruction != nil && len(req.SystemInstruction.Parts) > 0 {
		instruction = req.SystemInstruction.Parts[0].Text
	}
	var payload strings.Builder
	for _, c := range req.Contents {
		for _, p := range c.Parts {
			payload.WriteString(p.Text)
		}
	}

	m.mu.Lock()
	m.prompts = append(m.prompts, instruction)
	m.contents = append(m.contents, payload.String())
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
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

// payloadContains reports whether any judgment call's user payload carried
// the given substring.
func (m *mockGenerator) payloadContains(substr string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.contents {
		if strings.Contains(c, substr) {
			return true
		}
	}
	return false
}

// promptCount returns how many judgment calls carried the given
// system-instruction substring.
func (m *mockGenerator) promptCount(substr string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, p := range m.prompts {
		if strings.Contains(p, substr) {
			n++
		}
	}
	return n
}

// mockAvailability serves a fixed busy map and slot list.
type mockAvailability struct {
	busy  map[string][]gcalendar.BusyInterval
	slots []gcalendar.Slot
	err   error

	gotStart time.Time
	gotEnd   time.Time
}

func (m *mockAvailability) Availability(ctx context.Context, attendees []string, start, end time.Time) (map[string][]gcalendar.BusyInterval, error) {
	m.gotStart = start
	m.gotEnd = end
	return m.busy, m.err
}

func (m *mockAvailability) FindSlots(busy map[string][]gcalendar.BusyInterval, start, end time.Time, durationMinutes, bufferMinutes int) []gcalendar.Slot {
	return m.slots
}

// mockBooker records booking calls.
type mockBooker struct {
	err    error
	booked []gcalendar.BookEventRequest
}

func (m *mockBooker) Book(ctx context.Context, req gcalendar.BookEventRequest) (*gcalendar.BookedEvent, error) {
	m.booked = append(m.booked, req)
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.BookedEvent{ID: "evt-1", Summary: req.Title, StartTime: req.StartTime, EndTime: req.EndTime}, nil
}

func newTestUseCase(gen *mockGenerator, avail *mockAvailability, booker *mockBooker) *implUseCase {
	l := &mockLogger{}
	judge := judgment.New(gen, l, judgment.Config{})
	parser, _ := datemath.NewParser("UTC")
	return New(l, judge, avail, booker, parser, Config{})
}

func candidate(id string, start time.Time, durationMinutes int) scheduling.CandidateSlot {
	return scheduling.CandidateSlot{
		ID:              id,
		StartTime:       start,
		EndTime:         start.Add(time.Duration(durationMinutes) * time.Minute),
		DurationMinutes: durationMinutes,
	}
}
