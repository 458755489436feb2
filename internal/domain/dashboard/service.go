package dashboard

import "context"

// Service defines business logic for the dashboard summary
type Service interface {
	GetSummary(ctx context.Context) (Summary, error)
}
