package metadomain

// InsightsResponse é a resposta do endpoint /act_<id>/insights com quebra
// diária
type InsightsResponse struct {
	Data []InsightRow `json:"data"`
}

// InsightRow é uma linha diária de gasto. O Meta serializa o gasto como string.
type InsightRow struct {
	Spend     string `json:"spend"`
	DateStart string `json:"date_start"`
	DateStop  string `json:"date_stop,omitempty"`
	AccountID string `json:"account_id"`
}
