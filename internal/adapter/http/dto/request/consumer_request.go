package request

import "pagalotodo/internal/domain/entities"

type ConsumerRequest struct {
	Username   string `json:"username" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Name       string `json:"name"`
	LastName   string `json:"last_name"`
	ConsumerID string `json:"consumer_id"`
}

func (r ConsumerRequest) ToEntity() entities.Consumer {
	return entities.Consumer{
		Username:   r.Username,
		Email:      r.Email,
		Name:       r.Name,
		LastName:   r.LastName,
		ConsumerID: r.ConsumerID,
	}
}
