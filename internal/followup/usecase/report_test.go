package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"meetmate/internal/followup"
	"meetmate/internal/model"
)

func TestReport_Buckets(t *testing.T) {
	gen := &mockGenerator{err: errors.New("service unavailable")}
	repo := &mockRepo{
		overdue: []followup.ActionItemSnapshot{
			testItem("urgent-late", testNow.AddDate(0, 0, -10), model.PriorityUrgent), // critical risk
			testItem("late", testNow.AddDate(0, 0, -1), model.PriorityLow),            // high risk
		},
		upcoming: []followup.ActionItemSnapshot{
			testItem("soon", testNow.AddDate(0, 0, 3), model.PriorityMedium), // medium risk
			testItem("later", testNow.AddDate(0, 0, 6), model.PriorityLow),   // low risk
		},
	}
	uc := newTestUseCase(gen, repo, &mockNotifier{}, &mockSink{})

	report, err := uc.Report(context.Background(), followup.ReportInput{Now: testNow})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Summary.TotalActiveItems != 4 || report.Summary.OverdueItems != 2 || report.Summary.UpcomingItems != 2 {
		t.Errorf("summary wrong: %+v", report.Summary)
	}
	if len(report.HighRisk) != 2 || report.Summary.HighRiskItems != 2 {
		t.Errorf("high risk bucket = %d items", len(report.HighRisk))
	}
	if len(report.MediumRisk) != 1 || len(report.LowRisk) != 1 {
		t.Errorf("buckets = %d medium, %d low", len(report.MediumRisk), len(report.LowRisk))
	}

	// (0.3 + 0.3 + 0.7 + 0.8) / 4
	want := 0.525
	if diff := report.Summary.AverageCompletionProbability - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("avg completion probability = %f, want %f", report.Summary.AverageCompletionProbability, want)
	}
}

func TestReport_AlertsAndRecommendations(t *testing.T) {
	gen := &mockGenerator{err: errors.New("service unavailable")}
	repo := &mockRepo{
		overdue: []followup.ActionItemSnapshot{
			testItem("urgent-late", testNow.AddDate(0, 0, -10), model.PriorityUrgent),
		},
		upcoming: []followup.ActionItemSnapshot{
			testItem("high-near", testNow.AddDate(0, 0, 1), model.PriorityHigh), // high risk, due tomorrow
		},
	}
	uc := newTestUseCase(gen, repo, &mockNotifier{}, &mockSink{})

	report, err := uc.Report(context.Background(), followup.ReportInput{Now: testNow})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	joined := strings.Join(report.Alerts, "\n")
	if !strings.Contains(joined, "1 urgent items are overdue") {
		t.Errorf("missing urgent-overdue alert: %v", report.Alerts)
	}
	if !strings.Contains(joined, "more than 7 days overdue") {
		t.Errorf("missing long-overdue alert: %v", report.Alerts)
	}
	if !strings.Contains(joined, "due within 1 day") {
		t.Errorf("missing near-due alert: %v", report.Alerts)
	}

	recs := strings.Join(report.Recommendations, "\n")
	if !strings.Contains(recs, "Immediate attention needed") {
		t.Errorf("missing overdue recommendation: %v", report.Recommendations)
	}
	if !strings.Contains(recs, "low completion probability") {
		t.Errorf("missing completion-probability recommendation: %v", report.Recommendations)
	}
}

func TestReport_EmptyRepository(t *testing.T) {
	gen := &mockGenerator{err: errors.New("service unavailable")}
	uc := newTestUseCase(gen, &mockRepo{}, &mockNotifier{}, &mockSink{})

	report, err := uc.Report(context.Background(), followup.ReportInput{Now: testNow})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Summary.TotalActiveItems != 0 || report.Summary.AverageCompletionProbability != 0 {
		t.Errorf("expected zeroed summary, got %+v", report.Summary)
	}
	if len(report.Recommendations) != 1 || !strings.Contains(report.Recommendations[0], "on track") {
		t.Errorf("expected on-track recommendation, got %v", report.Recommendations)
	}
	if len(report.Alerts) != 0 {
		t.Errorf("expected no alerts, got %v", report.Alerts)
	}
}
