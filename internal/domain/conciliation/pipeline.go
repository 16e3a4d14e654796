package conciliation

import (
	"context"
	"fmt"
	"log"
	"time"

	"pagalotodo/internal/domain/entities"
)

// MaxSendAttempts is the total number of tries per provider email.
const MaxSendAttempts = 5

// Sender delivers one email with every artifact of a provider attached.
// A nil error means the mail API accepted the message.
type Sender interface {
	Send(ctx context.Context, provider entities.Provider, artifacts []ReportArtifact) error
}

// ServiceBatch is a service with the records pending since the last close.
type ServiceBatch struct {
	Service entities.Service
	Records []Record
}

// ProviderBatch groups the services of one provider.
type ProviderBatch struct {
	Provider entities.Provider
	Services []ServiceBatch
}

// Summary counts what a close run produced.
type Summary struct {
	Files     int `json:"files"`
	Providers int `json:"providers"`
	Errors    int `json:"errors"`
}

func (s Summary) Message() string {
	return fmt.Sprintf("Se emitieron %d archivos a %d prestadores. Errores: %d", s.Files, s.Providers, s.Errors)
}

type Option func(*Pipeline)

// WithRetryDelay waits d between failed send attempts.
func WithRetryDelay(d time.Duration) Option {
	return func(p *Pipeline) { p.retryDelay = d }
}

// Pipeline builds every report first and only then starts sending, so a
// misconfigured template aborts the run before any provider is contacted.
type Pipeline struct {
	builder    *Builder
	sender     Sender
	retryDelay time.Duration
}

func NewPipeline(builder *Builder, sender Sender, opts ...Option) *Pipeline {
	p := &Pipeline{builder: builder, sender: sender}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type outbound struct {
	provider  entities.Provider
	artifacts []ReportArtifact
}

// Run returns an error only for build failures. Delivery failures are counted
// in Summary.Errors.
func (p *Pipeline) Run(ctx context.Context, batches []ProviderBatch) (Summary, error) {
	var summary Summary
	queue := make([]outbound, 0, len(batches))
	for _, pb := range batches {
		var artifacts []ReportArtifact
		for _, sb := range pb.Services {
			artifact, ok, err := p.builder.Build(sb.Service, sb.Records)
			if err != nil {
				return Summary{}, err
			}
			if ok {
				artifacts = append(artifacts, artifact)
			}
		}
		if len(artifacts) == 0 {
			continue
		}
		summary.Files += len(artifacts)
		queue = append(queue, outbound{provider: pb.Provider, artifacts: artifacts})
	}

	for _, o := range queue {
		if err := p.deliver(ctx, o.provider, o.artifacts); err != nil {
			log.Printf("[close][dispatch] provider failed provider_id=%s err=%v", o.provider.ID, err)
			summary.Errors++
			continue
		}
		summary.Providers++
	}
	return summary, nil
}

func (p *Pipeline) deliver(ctx context.Context, provider entities.Provider, artifacts []ReportArtifact) error {
	var err error
	for attempt := 1; attempt <= MaxSendAttempts; attempt++ {
		if err = p.sender.Send(ctx, provider, artifacts); err == nil {
			log.Printf("[close][dispatch] sent provider_id=%s files=%d attempt=%d", provider.ID, len(artifacts), attempt)
			return nil
		}
		log.Printf("[close][dispatch] send rejected provider_id=%s attempt=%d/%d err=%v", provider.ID, attempt, MaxSendAttempts, err)
		if attempt < MaxSendAttempts && p.retryDelay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.retryDelay):
			}
		}
	}
	return fmt.Errorf("provider %s after %d attempts: %w", provider.ID, MaxSendAttempts, err)
}
