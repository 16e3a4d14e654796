package conciliation

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"pagalotodo/internal/domain/entities"
)

// FieldDelimiter separates report columns.
const FieldDelimiter = ';'

// ReportArtifact is one rendered balance sheet, ready to be attached to an email.
type ReportArtifact struct {
	ServiceID string
	FileName  string
	Content   []byte
}

// FileName builds "<service-name>_BalanceSheet_<yyyy-MM-dd>.csv" with spaces
// in the name replaced by hyphens and the date taken in UTC.
func FileName(serviceName string, at time.Time) string {
	return strings.ReplaceAll(serviceName, " ", "-") + "_BalanceSheet_" + at.UTC().Format("2006-01-02") + ".csv"
}

// Render writes the header and one row per record. Rows are CRLF-terminated.
func Render(t *Template, records []Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = FieldDelimiter
	w.UseCRLF = true

	if err := w.Write(t.Header()); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row, err := t.Project(r)
		if err != nil {
			return nil, err
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row for payment %s: %w", r.Payment.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush report: %w", err)
	}
	return buf.Bytes(), nil
}

// Builder turns a service and its pending records into a ReportArtifact.
type Builder struct {
	now func() time.Time
}

func NewBuilder(now func() time.Time) *Builder {
	if now == nil {
		now = time.Now
	}
	return &Builder{now: now}
}

// Build returns false when the service has no records; such services produce
// no file at all.
func (b *Builder) Build(service entities.Service, records []Record) (ReportArtifact, bool, error) {
	if len(records) == 0 {
		return ReportArtifact{}, false, nil
	}
	t, err := Compile(service.FieldTemplates)
	if err != nil {
		return ReportArtifact{}, false, fmt.Errorf("service %s: %w", service.ID, err)
	}
	now := b.now()
	t.runDate = now.UTC()
	content, err := Render(t, records)
	if err != nil {
		return ReportArtifact{}, false, fmt.Errorf("service %s: %w", service.ID, err)
	}
	return ReportArtifact{
		ServiceID: service.ID,
		FileName:  FileName(service.Name, now),
		Content:   content,
	}, true, nil
}
