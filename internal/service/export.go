package service

import (
	"context"

	"github.com/mverstraete/tripdash/internal/domain"
	"github.com/mverstraete/tripdash/internal/state"
)

// ExportService renders the session state for export: one flat row per
// itinerary item for tabular formats, or the full profile-plus-items
// document for structured formats.
type ExportService struct{}

// NewExportService constructs an ExportService.
func NewExportService() *ExportService {
	return &ExportService{}
}

// Rows returns one ExportRow per item, in storage order.
// Empty categories are exported as "Other", matching the aggregation rules.
func (s *ExportService) Rows(ctx context.Context, sess *state.Session) ([]domain.ExportRow, error) {
	items := sess.Items()
	rows := make([]domain.ExportRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, domain.ExportRow{
			Day:      it.Day,
			Time:     it.Time,
			Title:    it.Title,
			Category: domain.NormalizeCategory(it.Category),
			Cost:     it.Cost,
			Tags:     it.Tags,
		})
	}
	return rows, nil
}

// Document returns the minimal serializable unit of the session:
// the trip profile plus the full item list.
func (s *ExportService) Document(ctx context.Context, sess *state.Session) (domain.ExportDocument, error) {
	return domain.ExportDocument{
		Trip:  sess.Profile(),
		Items: sess.Items(),
	}, nil
}
