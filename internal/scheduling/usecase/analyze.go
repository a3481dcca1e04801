package usecase

import (
	"context"
	"sync"
	"time"

	"meetmate/internal/scheduling"
)

// Analyze runs priority classification and time-preference extraction without
// touching the calendar.
func (uc *implUseCase) Analyze(ctx context.Context, input scheduling.AnalyzeInput) (scheduling.AnalyzeOutput, error) {
	if err := validateRequest(input.Request); err != nil {
		return scheduling.AnalyzeOutput{}, err
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	pri, pref := uc.analyzeRequest(ctx, input.Request, now)
	return scheduling.AnalyzeOutput{Priority: pri, Preference: pref}, nil
}

// analyzeRequest issues the two independent judgments concurrently and joins
// before returning; slot scoring must not start until both are complete.
func (uc *implUseCase) analyzeRequest(ctx context.Context, req scheduling.MeetingRequest, now time.Time) (scheduling.PriorityAssessment, scheduling.TimePreference) {
	var (
		pri  scheduling.PriorityAssessment
		pref scheduling.TimePreference
		wg   sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		pri = uc.classifyPriority(ctx, req)
	}()
	go func() {
		defer wg.Done()
		pref = uc.extractPreference(ctx, req, now)
	}()
	wg.Wait()

	return pri, pref
}

func validateRequest(req scheduling.MeetingRequest) error {
	if req.Title == "" {
		return scheduling.ErrEmptyTitle
	}
	if req.DurationMinutes <= 0 {
		return scheduling.ErrInvalidDuration
	}
	return nil
}
