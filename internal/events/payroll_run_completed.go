package events

import "time"

const PayrollRunCompletedTopic = "hr.payroll.run.v1"

type PayrollRunCompletedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	PeriodID     string    `json:"period_id"`
	Year         int       `json:"year"`
	Month        int       `json:"month"`
	Finalized    bool      `json:"finalized"`
	PayslipCount int       `json:"payslip_count"`
	OccurredAt   time.Time `json:"occurred_at"`
}
