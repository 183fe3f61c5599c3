package domain

import "time"

type AdPlatform string

const (
	PlatformGoogle AdPlatform = "google"
	PlatformMeta   AdPlatform = "meta"
)

// Sentinelas de campanha gravados pelos adaptadores de sincronização. As
// plataformas não retornam quebra por campanha nesta consulta, então o
// campaign_id identifica a origem da linha e fecha a chave de upsert.
const (
	GoogleSyncCampaignID = "google_ads_sync"
	MetaSyncCampaignID   = "meta_ads_sync"
)

// AdAccount é uma conta de anúncios conectada por um usuário. Tokens são
// mutados apenas pelos adaptadores de sincronização (refresh persistido após
// uso bem-sucedido, desativação quando a plataforma revoga a credencial).
type AdAccount struct {
	ID                string     `json:"id"`
	OwnerID           int        `json:"owner_id"`
	Platform          AdPlatform `json:"platform"`
	ExternalAccountID string     `json:"external_account_id"`
	AccessToken       string     `json:"-"`
	RefreshToken      string     `json:"-"`
	IsActive          bool       `json:"is_active"`
	TokenExpiresAt    *time.Time `json:"token_expires_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// SyncOutcome é o resultado de um adaptador para uma única conta
type SyncOutcome struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

// Status de uma conta dentro de um lote de sincronização
const (
	SyncStatusSuccess = "success"
	SyncStatusError   = "error"
)

// AccountSyncResult é a entrada de uma conta no resumo de um lote de
// sincronização. Error e ErrorKind são preenchidos quando o adaptador falhou.
type AccountSyncResult struct {
	Platform          AdPlatform   `json:"platform"`
	ExternalAccountID string       `json:"id"`
	Status            string       `json:"status"`
	Outcome           *SyncOutcome `json:"data,omitempty"`
	ErrorKind         string       `json:"error_kind,omitempty"`
	Error             string       `json:"error,omitempty"`
}

// SyncSummary agrega os resultados de todas as contas de um lote. Uma falha em
// uma conta nunca aborta as demais.
type SyncSummary struct {
	Results  []*AccountSyncResult `json:"summary"`
	SyncedAt time.Time            `json:"synced_at"`
	Message  string               `json:"message,omitempty"`
}
