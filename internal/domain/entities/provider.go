package entities

import "time"

// Provider is a company that publishes billable services on the platform and
// receives the conciliation reports for them.

type Provider struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
