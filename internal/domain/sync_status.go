package domain

import "time"

type SyncState string

const (
	SyncStateIdle    SyncState = "idle"
	SyncStateSyncing SyncState = "syncing"
	SyncStateDone    SyncState = "done"
	SyncStateError   SyncState = "error"
)

// SyncStatus é o registro por (tenant, plataforma) que funciona ao mesmo
// tempo como lease lock e como ledger de observabilidade da sincronização
type SyncStatus struct {
	ID            int        `json:"id"`
	TenantID      int        `json:"tenant_id"`
	Platform      Platform   `json:"platform"`
	Status        SyncState  `json:"status"`
	StartedAt     *time.Time `json:"started_at"`
	LastSyncedAt  *time.Time `json:"last_synced_at"`
	ErrorMessage  *string    `json:"error_message"`
	RecordsSynced int        `json:"records_synced"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// SyncOutcome é o resultado reportado no release do lock
type SyncOutcome struct {
	Err           error
	RecordsSynced int
}

// PlatformSyncView é a visão por plataforma exposta no endpoint de status
type PlatformSyncView struct {
	Status        SyncState  `json:"status"`
	LastSyncedAt  *time.Time `json:"last_synced_at"`
	ErrorMessage  *string    `json:"error_message,omitempty"`
	RecordsSynced int        `json:"records_synced"`
}

// TenantSyncStatus agrega o ledger de todas as plataformas de um tenant
type TenantSyncStatus struct {
	LastSynced *time.Time                    `json:"last_synced"`
	IsSyncing  bool                          `json:"is_syncing"`
	Platforms  map[Platform]PlatformSyncView `json:"platforms"`
}
