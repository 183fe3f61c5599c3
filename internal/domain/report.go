package domain

// DailyLedgerEntry é o agregado de um dia: gasto, receita, lucro e ROI.
// Derivado sob demanda, nunca persistido.
type DailyLedgerEntry struct {
	Date       string  `json:"date"`
	Spend      float64 `json:"spend"`
	Revenue    float64 `json:"revenue"`
	Profit     float64 `json:"profit"`
	ROIPercent int     `json:"roi"`
}

type ReportTotals struct {
	Revenue       float64 `json:"revenue"`
	Spend         float64 `json:"spend"`
	Profit        float64 `json:"profit"`
	AvgROIPercent int     `json:"avgRoi"`
}

// ROIReport é a resposta completa do cálculo de ROI. Quando as tabelas ainda
// não existem (deploy novo), o relatório vem zerado e Message explica o motivo.
type ROIReport struct {
	Entries []DailyLedgerEntry `json:"data"`
	Totals  ReportTotals       `json:"totals"`
	Message string             `json:"message,omitempty"`
}
