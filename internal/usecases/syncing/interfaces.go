package syncing

import (
	"context"

	"github.com/adtrackr/profit-sync-api/internal/domain"
)

// SourceAdapter é o contrato comum dos integradores de plataforma. Cada
// adapter busca as linhas cruas da janela pedida e deixa a normalização de
// país/data para o próprio integrador.
type SourceAdapter interface {
	Platform() domain.Platform
	Fetch(ctx context.Context, connection *domain.PlatformConnection, window domain.SyncWindow) ([]domain.RawMetricRow, error)
}

// Syncer orquestra a sincronização de métricas por tenant e por plataforma
type Syncer interface {
	// SyncTenant sincroniza todas as conexões ativas do tenant e espera o
	// término de todas as plataformas
	SyncTenant(ctx context.Context, tenantID int) error

	// SyncAll roda o ciclo completo sobre todos os tenants com conexão
	// ativa, limitado pelo pool de workers configurado
	SyncAll(ctx context.Context) error

	// TriggerSync dispara a sincronização do tenant em background e
	// retorna imediatamente
	TriggerSync(ctx context.Context, tenantID int) error

	// EnsureFirstLoad roda uma sincronização síncrona quando o tenant
	// ainda não tem nenhuma métrica no cache
	EnsureFirstLoad(ctx context.Context, tenantID int) error

	GetSyncStatus(ctx context.Context, tenantID int) (*domain.TenantSyncStatus, error)
}
