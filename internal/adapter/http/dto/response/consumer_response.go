package response

import (
	"time"

	"pagalotodo/internal/domain/entities"
)

type ConsumerResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	LastName   string    `json:"last_name"`
	ConsumerID string    `json:"consumer_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromConsumer(c entities.Consumer) ConsumerResponse {
	return ConsumerResponse{
		ID:         c.ID,
		Username:   c.Username,
		Email:      c.Email,
		Name:       c.Name,
		LastName:   c.LastName,
		ConsumerID: c.ConsumerID,
		CreatedAt:  c.CreatedAt,
	}
}
