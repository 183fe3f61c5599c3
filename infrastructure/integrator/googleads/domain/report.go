package googledomain

import "encoding/json"

// SearchResponse é a resposta do endpoint googleAds:search para a consulta de
// gastos diários
type SearchResponse struct {
	Results       []ReportRow `json:"results"`
	NextPageToken string      `json:"nextPageToken,omitempty"`
}

type ReportRow struct {
	Segments Segments `json:"segments"`
	Metrics  Metrics  `json:"metrics"`
}

type Segments struct {
	Date string `json:"date"`
}

// Metrics carrega o custo em micros. A API serializa int64 como string JSON,
// então decodificamos como json.Number para aceitar os dois formatos.
type Metrics struct {
	CostMicros  json.Number `json:"costMicros"`
	Impressions json.Number `json:"impressions,omitempty"`
}

// TokenResponse é a resposta do endpoint OAuth de refresh de token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
