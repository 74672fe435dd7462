package events

import "time"

const (
	NewsletterSubscribedTopic = "nupo.newsletter.subscribed.v1"
	NewsletterSubscribedType  = "newsletter.subscribed"
)

type NewsletterSubscribedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	SubscriberID string    `json:"subscriber_id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	Outcome      string    `json:"outcome"`
	OccurredAt   time.Time `json:"occurred_at"`
}
