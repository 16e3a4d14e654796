package email

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"pagalotodo/internal/domain/conciliation"
	"pagalotodo/internal/domain/entities"
	"pagalotodo/internal/usecase/interfaces"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// mailClient is implemented by *sendgrid.Client.
type mailClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridSender mails a provider its conciliation reports, one CSV
// attachment per service.
type SendGridSender struct {
	client      mailClient
	senderEmail string
	senderName  string
	now         func() time.Time
}

var _ interfaces.IConciliationSender = (*SendGridSender)(nil)

func NewSendGridSender(apiKey, senderEmail, senderName string) *SendGridSender {
	return newSendGridSender(sendgrid.NewSendClient(apiKey), senderEmail, senderName)
}

func newSendGridSender(client mailClient, senderEmail, senderName string) *SendGridSender {
	return &SendGridSender{client: client, senderEmail: senderEmail, senderName: senderName, now: time.Now}
}

// Send reports success only when SendGrid answers 202 Accepted.
func (s *SendGridSender) Send(ctx context.Context, provider entities.Provider, artifacts []conciliation.ReportArtifact) error {
	msg := s.buildMessage(provider, artifacts)

	resp, err := s.client.SendWithContext(ctx, msg)
	if err != nil {
		log.Printf("[mail][sender] send failed provider_id=%s err=%v", provider.ID, err)
		return fmt.Errorf("%w: %v", conciliation.ErrNotAccepted, err)
	}
	if resp.StatusCode != http.StatusAccepted {
		log.Printf("[mail][sender] not accepted provider_id=%s status=%d", provider.ID, resp.StatusCode)
		return fmt.Errorf("%w: status %d", conciliation.ErrNotAccepted, resp.StatusCode)
	}
	log.Printf("[mail][sender] accepted provider_id=%s attachments=%d", provider.ID, len(artifacts))
	return nil
}

func (s *SendGridSender) buildMessage(provider entities.Provider, artifacts []conciliation.ReportArtifact) *mail.SGMailV3 {
	date := s.now().UTC().Format("02/01/2006")

	msg := mail.NewV3Mail()
	msg.SetFrom(mail.NewEmail(s.senderName, s.senderEmail))
	msg.Subject = fmt.Sprintf("Conciliación PagaloTodo %s", date)

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail(provider.Name, provider.Email))
	msg.AddPersonalizations(p)

	names := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		names = append(names, a.FileName)
		att := mail.NewAttachment()
		att.SetContent(base64.StdEncoding.EncodeToString(a.Content))
		att.SetType("text/csv")
		att.SetFilename(a.FileName)
		att.SetDisposition("attachment")
		msg.AddAttachment(att)
	}

	body := fmt.Sprintf("Estimado %s,\n\nAdjuntamos la conciliación de pagos al %s.\nArchivos: %s\n\nPagaloTodo",
		provider.Name, date, strings.Join(names, ", "))
	msg.AddContent(mail.NewContent("text/plain", body))
	return msg
}
