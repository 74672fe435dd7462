package events

import "time"

const (
	InquirySubmittedTopic = "nupo.inquiry.submitted.v1"
	InquirySubmittedType  = "inquiry.submitted"
)

type InquirySubmittedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	InquiryID   string    `json:"inquiry_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Company     string    `json:"company,omitempty"`
	InquiryType string    `json:"inquiry_type"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	Services    []string  `json:"services,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
