package interfaces

import (
	"context"

	"pagalotodo/internal/domain/conciliation"
	"pagalotodo/internal/domain/entities"
)

// IConciliationSender emails a provider its balance sheets in one message.
// A nil error means the mail API accepted the message.
type IConciliationSender interface {
	Send(ctx context.Context, provider entities.Provider, artifacts []conciliation.ReportArtifact) error
}

var _ conciliation.Sender = (IConciliationSender)(nil)
