package newsletter

import "time"

// SubscribeRequest carries no binding rules; the service reports missing
// and malformed emails with the form messages.
type SubscribeRequest struct {
	Email string `json:"email" form:"email"`
	Name  string `json:"name" form:"name"`
}

type SubscribeResult struct {
	Outcome      Outcome `json:"outcome"`
	SubscriberID string  `json:"subscriber_id,omitempty"`
}

type UpdateRequest struct {
	Name        *string        `json:"name" binding:"omitempty,max=100"`
	IsActive    *bool          `json:"is_active"`
	Preferences map[string]any `json:"preferences"`
}

type ListFilter struct {
	IsActive *bool
	Search   string
	Page     int
	PageSize int
}

type SubscriberResponse struct {
	ID               string         `json:"id"`
	Email            string         `json:"email"`
	Name             string         `json:"name"`
	IsActive         bool           `json:"is_active"`
	SubscribedDate   time.Time      `json:"subscribed_date"`
	UnsubscribedDate *time.Time     `json:"unsubscribed_date"`
	Preferences      map[string]any `json:"preferences"`
}

func MapSubscriber(s Subscriber) SubscriberResponse {
	prefs := map[string]any(s.Preferences)
	if prefs == nil {
		prefs = map[string]any{}
	}
	return SubscriberResponse{
		ID:               s.ID.String(),
		Email:            s.Email,
		Name:             s.Name,
		IsActive:         s.IsActive,
		SubscribedDate:   s.SubscribedDate,
		UnsubscribedDate: s.UnsubscribedDate,
		Preferences:      prefs,
	}
}

func MapSubscribers(rows []Subscriber) []SubscriberResponse {
	res := make([]SubscriberResponse, 0, len(rows))
	for _, s := range rows {
		res = append(res, MapSubscriber(s))
	}
	return res
}
