package ingesting

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vfg2006/roi-analytics-api/infrastructure/repository"
	"github.com/vfg2006/roi-analytics-api/internal/domain"
	"github.com/vfg2006/roi-analytics-api/pkg/log"
	"github.com/vfg2006/roi-analytics-api/pkg/utils"
)

// Aliases aceitos para os campos de valor. O primeiro presente no cabeçalho
// vence.
var (
	spendAmountAliases = []string{"spend_amount", "amount", "spend"}
	saleAmountAliases  = []string{"sale_amount", "amount", "revenue"}
)

// ParseError é a rejeição integral de um upload malformado: nenhuma linha é
// importada e os diagnósticos do parser voltam para o cliente.
type ParseError struct {
	Diagnostics []string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("falha ao interpretar o CSV: %d problema(s) encontrado(s)", len(e.Diagnostics))
}

// Ingester recebe uploads tabulares e grava as linhas normalizadas já
// carimbadas com o owner autenticado
type Ingester interface {
	IngestSpendCSV(ownerID int, input io.Reader) (*domain.UploadResult, error)
	IngestSalesCSV(ownerID int, input io.Reader) (*domain.UploadResult, error)
}

type Service struct {
	spendRepo repository.SpendRepository
	saleRepo  repository.SaleRepository
}

func NewService(spendRepo repository.SpendRepository, saleRepo repository.SaleRepository) Ingester {
	return &Service{
		spendRepo: spendRepo,
		saleRepo:  saleRepo,
	}
}

func (s *Service) IngestSpendCSV(ownerID int, input io.Reader) (*domain.UploadResult, error) {
	header, rows, err := parseCSV(input)
	if err != nil {
		return nil, err
	}

	records := make([]*domain.SpendRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, &domain.SpendRecord{
			OwnerID: ownerID,
			Date:    resolveDate(row.value(header, "date")),
			// Valores não numéricos viram 0, nunca rejeição (política
			// leniente herdada do caminho de upload)
			SpendAmount: utils.LenientFloat(row.valueAliases(header, spendAmountAliases)),
			CampaignID:  row.value(header, "campaign_id"),
			Impressions: utils.LenientInt(row.value(header, "impressions")),
		})
	}

	if err := s.spendRepo.BulkInsert(records); err != nil {
		return nil, err
	}

	return buildResult(len(records), "ad_spend")
}

func (s *Service) IngestSalesCSV(ownerID int, input io.Reader) (*domain.UploadResult, error) {
	header, rows, err := parseCSV(input)
	if err != nil {
		return nil, err
	}

	records := make([]*domain.SaleRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, &domain.SaleRecord{
			OwnerID:       ownerID,
			Date:          resolveDate(row.value(header, "date")),
			SaleAmount:    utils.LenientFloat(row.valueAliases(header, saleAmountAliases)),
			OrderID:       row.value(header, "order_id"),
			CustomerEmail: row.value(header, "customer_email"),
		})
	}

	if err := s.saleRepo.BulkInsert(records); err != nil {
		return nil, err
	}

	return buildResult(len(records), "sales")
}

func buildResult(rows int, collection string) (*domain.UploadResult, error) {
	batchID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	return &domain.UploadResult{
		BatchID: batchID,
		Rows:    rows,
		Message: fmt.Sprintf("%d linha(s) importada(s) para %s.", rows, collection),
	}, nil
}

type csvRow []string

// value retorna a célula da coluna normalizada, ou vazio se a coluna não
// existe ou a linha é curta
func (r csvRow) value(header map[string]int, column string) string {
	idx, ok := header[column]
	if !ok || idx >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[idx])
}

func (r csvRow) valueAliases(header map[string]int, aliases []string) string {
	for _, alias := range aliases {
		if v := r.value(header, alias); v != "" {
			return v
		}
	}
	return ""
}

// parseCSV lê o arquivo inteiro validando a estrutura. Qualquer falha de
// parsing rejeita o upload por completo com a lista de diagnósticos; não
// existe ingestão parcial.
func parseCSV(input io.Reader) (map[string]int, []csvRow, error) {
	reader := csv.NewReader(input)

	headerFields, err := reader.Read()
	if err == io.EOF {
		return nil, nil, &ParseError{Diagnostics: []string{"arquivo vazio, cabeçalho ausente"}}
	}
	if err != nil {
		return nil, nil, &ParseError{Diagnostics: []string{err.Error()}}
	}

	header := make(map[string]int, len(headerFields))
	for i, field := range headerFields {
		header[normalizeHeader(field)] = i
	}

	rows := make([]csvRow, 0)
	diagnostics := make([]string, 0)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			diagnostics = append(diagnostics, err.Error())
			if _, ok := err.(*csv.ParseError); ok {
				continue
			}
			break
		}

		// Pular linhas totalmente vazias
		if isBlank(record) {
			continue
		}

		rows = append(rows, csvRow(record))
	}

	if len(diagnostics) > 0 {
		return nil, nil, &ParseError{Diagnostics: diagnostics}
	}

	return header, rows, nil
}

// normalizeHeader aplica trim, caixa baixa e troca espaços por underscores
// antes de casar com os nomes esperados
func normalizeHeader(field string) string {
	normalized := strings.ToLower(strings.TrimSpace(field))
	return strings.ReplaceAll(normalized, " ", "_")
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

// resolveDate interpreta a data da linha; ausente ou inválida vira a data
// corrente (leniência herdada do caminho original de upload, fixada em teste)
func resolveDate(raw string) time.Time {
	date, err := utils.ParseDate(raw)
	if err != nil {
		log.L.WithField("date", raw).Warn("upload: data inválida, usando a data corrente")
		return today()
	}

	if date.IsZero() {
		return today()
	}

	return *date
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
