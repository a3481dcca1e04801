package model

// RiskLevel grades how likely an action item is to slip.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Valid reports whether r is one of the known risk levels.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	}
	return false
}

// ItemStatus is the lifecycle state of an action item.
type ItemStatus string

const (
	StatusPending    ItemStatus = "pending"
	StatusInProgress ItemStatus = "in_progress"
	StatusCompleted  ItemStatus = "completed"
	StatusOverdue    ItemStatus = "overdue"
)

// Valid reports whether s is one of the known item statuses.
func (s ItemStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusOverdue:
		return true
	}
	return false
}

// NextAction is the follow-up action a strategy recommends for an item.
type NextAction string

const (
	ActionGentleReminder     NextAction = "gentle_reminder"
	ActionDirectFollowUp     NextAction = "direct_follow_up"
	ActionUrgentFollowUp     NextAction = "urgent_follow_up"
	ActionEscalateToManager  NextAction = "escalate_to_manager"
	ActionRedistributeTask   NextAction = "redistribute_task"
	ActionDeadlineExtension  NextAction = "deadline_extension"
	ActionResourceAllocation NextAction = "resource_allocation"
)

// Valid reports whether a is one of the known next-action tags.
func (a NextAction) Valid() bool {
	switch a {
	case ActionGentleReminder, ActionDirectFollowUp, ActionUrgentFollowUp,
		ActionEscalateToManager, ActionRedistributeTask,
		ActionDeadlineExtension, ActionResourceAllocation:
		return true
	}
	return false
}
