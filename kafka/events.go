package kafka

import "time"

// ReportEvent describes a comparison-report lifecycle change, consumed by
// the analytics pipeline.
type ReportEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	ReportID   string    `json:"report_id"`
	Name       string    `json:"name,omitempty"`
	UserID     string    `json:"user_id"`
	ProductIDs []uint    `json:"product_ids,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeReportCreated = "report.created"
	EventTypeReportRenamed = "report.renamed"
	EventTypeReportDeleted = "report.deleted"
)

// Kafka topics
const (
	TopicReportEvents = "comparison-reports"
)
