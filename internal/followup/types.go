package followup

import (
	"time"

	"meetmate/internal/model"
	"meetmate/pkg/judgment"
)

// ActionItemSnapshot is a read-only view of one action item at triage time.
type ActionItemSnapshot struct {
	ID           string
	Title        string
	Description  string
	Assignee     string // assignee email
	AssigneeName string
	DueDate      time.Time // zero when no due date was set
	Priority     model.Priority
	Status       model.ItemStatus
	MeetingID    string
	MeetingTitle string
	CreatedAt    time.Time
}

// HasDueDate reports whether a due date was set.
func (s ActionItemSnapshot) HasDueDate() bool {
	return !s.DueDate.IsZero()
}

// RiskAssessment is the outcome of analyzing one action item.
type RiskAssessment struct {
	Level                 model.RiskLevel
	CompletionProbability float64 // in [0,1]
	DependencyIssues      []string
	ResourceNeeds         []string
	Recommendations       []string
	DaysUntilDue          int // meaningful only when the item has a due date
	IsOverdue             bool
	Provenance            judgment.Provenance
}

// FollowUpStrategy is the recommended course of action for one item.
type FollowUpStrategy struct {
	PriorityLevel       model.Priority
	NextAction          model.NextAction
	EscalationRequired  bool
	ReminderCadenceDays int
	Stakeholders        []string
	Provenance          judgment.Provenance
}

// ActionTaken records what the orchestrator did for one item.
type ActionTaken struct {
	ItemID            string
	ItemTitle         string
	Action            model.NextAction
	ReminderSent      bool
	EscalationCreated bool
	Recommendation    string // set for logged-intent actions (redistribute etc.)
}

// AnalyzeInput is the input for the single-item analysis operation.
type AnalyzeInput struct {
	Item ActionItemSnapshot
	Now  time.Time
}

// AnalyzeOutput carries the risk assessment and derived strategy for one item.
type AnalyzeOutput struct {
	Analysis RiskAssessment
	Strategy FollowUpStrategy
}

// ProcessInput is the input for the triage batch.
type ProcessInput struct {
	Now time.Time
}

// ProcessOutput aggregates the batch result. Partial failures never abort the
// batch; they land in Errors.
type ProcessOutput struct {
	ProcessedAt        time.Time
	OverdueCount       int
	UpcomingCount      int
	ItemsProcessed     int
	RemindersSent      int
	EscalationsCreated int
	Actions            []ActionTaken
	Errors             []string
}

// ReportInput is the input for the summary report.
type ReportInput struct {
	Now time.Time
}

// AnalyzedItem pairs an item with its risk assessment for reporting.
type AnalyzedItem struct {
	Item     ActionItemSnapshot
	Analysis RiskAssessment
}

// ReportSummary holds the headline numbers of a follow-up report.
type ReportSummary struct {
	TotalActiveItems             int
	OverdueItems                 int
	UpcomingItems                int
	HighRiskItems                int
	AverageCompletionProbability float64
}

// Report is the management summary across overdue and upcoming items.
type Report struct {
	GeneratedAt     time.Time
	Summary         ReportSummary
	HighRisk        []AnalyzedItem
	MediumRisk      []AnalyzedItem
	LowRisk         []AnalyzedItem
	Recommendations []string
	Alerts          []string
}
