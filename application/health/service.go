package health

import (
	"context"
	"time"

	"booking/common"
)

const pingTimeout = 2 * time.Second

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// CheckHealth pings the store. The status map is returned even when the
// ping fails so callers can report which dependency is down.
func (s *Service) CheckHealth(ctx context.Context) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	result := map[string]string{"database": "ok"}
	if err := s.repo.Ping(ctx); err != nil {
		result["database"] = "error"
		return result, common.NewUnavailableError("Health check failed", err)
	}
	return result, nil
}
