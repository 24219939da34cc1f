package syncing

import (
	"context"
	"time"

	"github.com/adtrackr/profit-sync-api/internal/domain"
)

// resolveWindow calcula a janela de busca da plataforma. Se o tenant já tem
// linhas no cache para a plataforma, a janela é incremental (poucos dias,
// cobrindo atualizações retroativas de atribuição); caso contrário é a
// carga inicial completa.
func (s *Service) resolveWindow(ctx context.Context, tenantID int, platform domain.Platform) (domain.SyncWindow, error) {
	end := domain.DateOnly(time.Now().UTC())

	hasRows, err := s.cacheRepository.HasRowsForPlatform(ctx, tenantID, platform)
	if err != nil {
		return domain.SyncWindow{}, err
	}

	days := s.cfg.MetricsSync.FirstSyncDays
	if hasRows {
		days = s.cfg.MetricsSync.IncrementalDays
	}

	return domain.SyncWindow{
		Start: end.AddDate(0, 0, -days),
		End:   end,
	}, nil
}
