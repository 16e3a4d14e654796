package entities

import "time"

// Consumer is an end user paying for services.
//
// ConsumerID is the consumer's national document number (cédula), distinct
// from the platform ID.

type Consumer struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	LastName   string    `json:"last_name"`
	ConsumerID string    `json:"consumer_id"`
	CreatedAt  time.Time `json:"created_at"`
}
