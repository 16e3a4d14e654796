package response

import (
	"time"

	"pagalotodo/internal/domain/entities"
)

type ProviderResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func FromProvider(p entities.Provider) ProviderResponse {
	return ProviderResponse{ID: p.ID, Name: p.Name, Email: p.Email, CreatedAt: p.CreatedAt}
}

func FromProviders(ps []entities.Provider) []ProviderResponse {
	out := make([]ProviderResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProvider(p))
	}
	return out
}
