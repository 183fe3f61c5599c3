package reporting

import (
	"errors"
	"sort"
	"time"

	"github.com/vfg2006/roi-analytics-api/infrastructure/repository"
	"github.com/vfg2006/roi-analytics-api/internal/domain"
	"github.com/vfg2006/roi-analytics-api/pkg/log"
	"github.com/vfg2006/roi-analytics-api/pkg/utils"
)

const schemaMissingMessage = "Tabelas 'ad_spend' ou 'sales' ainda não existem. Crie-as para começar a importar dados."

// Reporter calcula o relatório de ROI do usuário autenticado
type Reporter interface {
	GetROIReport(ownerID int) (*domain.ROIReport, error)
}

type Service struct {
	spendRepo repository.SpendRepository
	saleRepo  repository.SaleRepository
}

func NewService(spendRepo repository.SpendRepository, saleRepo repository.SaleRepository) Reporter {
	return &Service{
		spendRepo: spendRepo,
		saleRepo:  saleRepo,
	}
}

// GetROIReport lê as coleções de gasto e venda do owner e agrega sob demanda.
// Nada é cacheado: cada chamada recalcula a partir do que está persistido.
// Se as tabelas ainda não existem (deploy novo), o retorno é um relatório
// zerado e bem formado, nunca um erro.
func (s *Service) GetROIReport(ownerID int) (*domain.ROIReport, error) {
	spendRecords, err := s.spendRepo.ListByOwner(ownerID)
	if err != nil {
		return s.recoverSchemaMissing(ownerID, err)
	}

	saleRecords, err := s.saleRepo.ListByOwner(ownerID)
	if err != nil {
		return s.recoverSchemaMissing(ownerID, err)
	}

	return ComputeROI(spendRecords, saleRecords), nil
}

func (s *Service) recoverSchemaMissing(ownerID int, err error) (*domain.ROIReport, error) {
	if !errors.Is(err, repository.ErrSchemaMissing) {
		return nil, err
	}

	log.L.WithField("owner_id", ownerID).Warn("roi: tabelas ainda não existem, retornando relatório zerado")

	report := ComputeROI(nil, nil)
	report.Message = schemaMissingMessage
	return report, nil
}

// ComputeROI consolida gastos e vendas em um razão diário. Função pura: cada
// data presente em qualquer uma das entradas aparece exatamente uma vez na
// saída, ordenada ascendente.
func ComputeROI(spendRecords []*domain.SpendRecord, saleRecords []*domain.SaleRecord) *domain.ROIReport {
	type accumulator struct {
		spend   float64
		revenue float64
	}

	dailyStats := make(map[string]*accumulator)

	touch := func(date string) *accumulator {
		if acc, ok := dailyStats[date]; ok {
			return acc
		}
		acc := &accumulator{}
		dailyStats[date] = acc
		return acc
	}

	for _, record := range spendRecords {
		touch(record.Date.Format(time.DateOnly)).spend += record.SpendAmount
	}

	for _, record := range saleRecords {
		touch(record.Date.Format(time.DateOnly)).revenue += record.SaleAmount
	}

	dates := make([]string, 0, len(dailyStats))
	for date := range dailyStats {
		dates = append(dates, date)
	}
	// Comparação lexical basta: datas são YYYY-MM-DD de largura fixa
	sort.Strings(dates)

	entries := make([]domain.DailyLedgerEntry, 0, len(dates))
	totals := domain.ReportTotals{}

	for _, date := range dates {
		acc := dailyStats[date]
		profit := acc.revenue - acc.spend

		entries = append(entries, domain.DailyLedgerEntry{
			Date:    date,
			Spend:   utils.RoundWithTwoDecimalPlace(acc.spend),
			Revenue: utils.RoundWithTwoDecimalPlace(acc.revenue),
			Profit:  utils.RoundWithTwoDecimalPlace(profit),
			// Gasto zero dá ROI 0, não infinito nem nulo
			ROIPercent: utils.RoundPercent(profit, acc.spend),
		})

		totals.Spend += acc.spend
		totals.Revenue += acc.revenue
		totals.Profit += profit
	}

	totals.Spend = utils.RoundWithTwoDecimalPlace(totals.Spend)
	totals.Revenue = utils.RoundWithTwoDecimalPlace(totals.Revenue)
	totals.Profit = utils.RoundWithTwoDecimalPlace(totals.Profit)
	totals.AvgROIPercent = utils.RoundPercent(totals.Profit, totals.Spend)

	return &domain.ROIReport{
		Entries: entries,
		Totals:  totals,
	}
}
