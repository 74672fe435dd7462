package newsletter

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Outcome string

const (
	OutcomeSubscribed        Outcome = "subscribed"
	OutcomeAlreadySubscribed Outcome = "already_subscribed"
	OutcomeReactivated       Outcome = "reactivated"
)

func (o Outcome) Message() string {
	switch o {
	case OutcomeSubscribed:
		return "Successfully subscribed to newsletter!"
	case OutcomeReactivated:
		return "Welcome back! Your newsletter subscription has been reactivated."
	}
	return "Email already subscribed!"
}

// Success reports whether the request changed the subscription.
func (o Outcome) Success() bool {
	return o == OutcomeSubscribed || o == OutcomeReactivated
}

type Subscriber struct {
	ID               uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Email            string            `gorm:"size:254;not null;uniqueIndex:uq_newsletters_email"`
	Name             string            `gorm:"size:100"`
	IsActive         bool              `gorm:"not null;default:true;index"`
	SubscribedDate   time.Time         `gorm:"not null;index"`
	UnsubscribedDate *time.Time
	Preferences      datatypes.JSONMap `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Subscriber) TableName() string {
	return "newsletters"
}

func (s *Subscriber) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.SubscribedDate.IsZero() {
		s.SubscribedDate = tx.NowFunc()
	}
	if s.Preferences == nil {
		s.Preferences = datatypes.JSONMap{}
	}
	return nil
}
