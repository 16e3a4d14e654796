package usecase

import (
	"context"
	"errors"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"pagalotodo/internal/domain/entities"
	"pagalotodo/internal/usecase/interfaces"
)

var (
	ErrConsumerNotFound     = errors.New("consumer not found")
	ErrInvalidConsumerID    = errors.New("invalid consumer id")
	ErrInvalidConsumerEmail = errors.New("invalid consumer email")
	ErrInvalidConsumerName  = errors.New("invalid consumer username")
)

type IConsumerUseCase interface {
	Create(ctx context.Context, c entities.Consumer) (entities.Consumer, error)
	GetByID(ctx context.Context, id string) (entities.Consumer, error)
}

type ConsumerUseCase struct {
	repo interfaces.IConsumerRepository
}

var _ IConsumerUseCase = (*ConsumerUseCase)(nil)

func NewConsumerUseCase(repo interfaces.IConsumerRepository) *ConsumerUseCase {
	return &ConsumerUseCase{repo: repo}
}

func (u *ConsumerUseCase) Create(ctx context.Context, c entities.Consumer) (entities.Consumer, error) {
	c.Username = strings.TrimSpace(c.Username)
	c.Email = strings.TrimSpace(c.Email)
	c.Name = strings.TrimSpace(c.Name)
	c.LastName = strings.TrimSpace(c.LastName)
	c.ConsumerID = strings.TrimSpace(c.ConsumerID)
	if c.Username == "" {
		return entities.Consumer{}, ErrInvalidConsumerName
	}
	if _, err := mail.ParseAddress(c.Email); err != nil || strings.Contains(c.Email, "<") {
		return entities.Consumer{}, ErrInvalidConsumerEmail
	}

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		log.Printf("[consumer][usecase] create failed username=%q err=%v", c.Username, err)
		return entities.Consumer{}, err
	}
	log.Printf("[consumer][usecase] created consumer_id=%s", created.ID)
	return created, nil
}

func (u *ConsumerUseCase) GetByID(ctx context.Context, id string) (entities.Consumer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Consumer{}, ErrInvalidConsumerID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Consumer{}, err
	}
	if c.ID == "" {
		return entities.Consumer{}, ErrConsumerNotFound
	}
	return c, nil
}
