package events

import "time"

const PayrollProcessedTopic = "hr.payroll.processed.v1"

type PayrollProcessedEvent struct {
	EventType      string    `json:"event_type"`
	PayrollID      string    `json:"payroll_id"`
	OrganizationID string    `json:"organization_id"`
	ProcessedBy    string    `json:"processed_by"`
	TotalAmount    int64     `json:"total_amount"`
	OccurredAt     time.Time `json:"occurred_at"`
}
