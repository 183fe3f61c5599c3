package domain

import "time"

// SpendRecord é uma linha da coleção ad_spend. Linhas com o mesmo (owner, date)
// são somadas na agregação; a tripla (owner, date, campaign_id) é a chave de
// upsert usada pelos adaptadores de sincronização.
type SpendRecord struct {
	OwnerID     int       `json:"owner_id"`
	Date        time.Time `json:"date"`
	SpendAmount float64   `json:"spend_amount"`
	CampaignID  string    `json:"campaign_id"`
	Impressions int       `json:"impressions,omitempty"`
}

// SaleRecord é uma linha da coleção sales, aditiva por data como o SpendRecord.
type SaleRecord struct {
	OwnerID       int       `json:"owner_id"`
	Date          time.Time `json:"date"`
	SaleAmount    float64   `json:"sale_amount"`
	OrderID       string    `json:"order_id,omitempty"`
	CustomerEmail string    `json:"customer_email,omitempty"`
}

// UploadResult resume um upload de CSV aceito
type UploadResult struct {
	BatchID string `json:"batch_id"`
	Rows    int    `json:"rows"`
	Message string `json:"message"`
}
