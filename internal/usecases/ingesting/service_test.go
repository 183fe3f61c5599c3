package ingesting

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/roi-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/roi-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_IngestSpendCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSpendRepo := mocks.NewMockSpendRepository(ctrl)
	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)

	service := NewService(mockSpendRepo, mockSaleRepo)

	t.Run("Deve normalizar cabeçalhos com espaços e maiúsculas", func(t *testing.T) {
		csvData := strings.Join([]string{
			" Date , Spend Amount ,Campaign ID,Impressions",
			"2024-01-15,125.50,camp-001,3200",
		}, "\n")

		var captured []*domain.SpendRecord
		mockSpendRepo.EXPECT().
			BulkInsert(gomock.Any()).
			DoAndReturn(func(records []*domain.SpendRecord) error {
				captured = records
				return nil
			})

		result, err := service.IngestSpendCSV(7, strings.NewReader(csvData))

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Rows)
		assert.NotEmpty(t, result.BatchID)

		assert.Len(t, captured, 1)
		assert.Equal(t, 7, captured[0].OwnerID)
		assert.Equal(t, "2024-01-15", captured[0].Date.Format(time.DateOnly))
		assert.Equal(t, 125.50, captured[0].SpendAmount)
		assert.Equal(t, "camp-001", captured[0].CampaignID)
		assert.Equal(t, 3200, captured[0].Impressions)
	})

	t.Run("Valores não numéricos devem virar zero, nunca rejeição", func(t *testing.T) {
		csvData := strings.Join([]string{
			"date,spend_amount,campaign_id,impressions",
			"2024-01-15,N/A,camp-001,abc",
			"2024-01-16,-10.00,camp-002,100",
		}, "\n")

		var captured []*domain.SpendRecord
		mockSpendRepo.EXPECT().
			BulkInsert(gomock.Any()).
			DoAndReturn(func(records []*domain.SpendRecord) error {
				captured = records
				return nil
			})

		result, err := service.IngestSpendCSV(7, strings.NewReader(csvData))

		assert.NoError(t, err)
		assert.Equal(t, 2, result.Rows)

		assert.Equal(t, 0.0, captured[0].SpendAmount)
		assert.Equal(t, 0, captured[0].Impressions)
		// Valores negativos também são coagidos para zero
		assert.Equal(t, 0.0, captured[1].SpendAmount)
	})

	t.Run("Alias 'amount' deve ser aceito para o valor de gasto", func(t *testing.T) {
		csvData := strings.Join([]string{
			"date,amount,campaign_id",
			"2024-01-15,99.90,camp-001",
		}, "\n")

		var captured []*domain.SpendRecord
		mockSpendRepo.EXPECT().
			BulkInsert(gomock.Any()).
			DoAndReturn(func(records []*domain.SpendRecord) error {
				captured = records
				return nil
			})

		_, err := service.IngestSpendCSV(7, strings.NewReader(csvData))

		assert.NoError(t, err)
		assert.Equal(t, 99.90, captured[0].SpendAmount)
	})

	t.Run("Data ausente ou inválida deve virar a data corrente", func(t *testing.T) {
		csvData := strings.Join([]string{
			"date,spend_amount,campaign_id",
			",50.00,camp-001",
			"15/01/2024,75.00,camp-002",
		}, "\n")

		var captured []*domain.SpendRecord
		mockSpendRepo.EXPECT().
			BulkInsert(gomock.Any()).
			DoAndReturn(func(records []*domain.SpendRecord) error {
				captured = records
				return nil
			})

		_, err := service.IngestSpendCSV(7, strings.NewReader(csvData))
		assert.NoError(t, err)

		expected := time.Now().UTC().Format(time.DateOnly)
		assert.Equal(t, expected, captured[0].Date.Format(time.DateOnly))
		assert.Equal(t, expected, captured[1].Date.Format(time.DateOnly))
	})

	t.Run("Linhas totalmente vazias devem ser ignoradas", func(t *testing.T) {
		csvData := strings.Join([]string{
			"date,spend_amount,campaign_id",
			"2024-01-15,10.00,camp-001",
			",,",
			"2024-01-16,20.00,camp-002",
		}, "\n")

		mockSpendRepo.EXPECT().
			BulkInsert(gomock.Len(2)).
			Return(nil)

		result, err := service.IngestSpendCSV(7, strings.NewReader(csvData))

		assert.NoError(t, err)
		assert.Equal(t, 2, result.Rows)
	})

	t.Run("CSV malformado deve rejeitar o upload inteiro", func(t *testing.T) {
		csvData := strings.Join([]string{
			"date,spend_amount,campaign_id",
			"2024-01-15,10.00,camp-001",
			`2024-01-16,"quebrado,camp-002`,
		}, "\n")

		// Nenhuma linha deve ser persistida
		result, err := service.IngestSpendCSV(7, strings.NewReader(csvData))

		assert.Error(t, err)
		assert.Nil(t, result)

		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
		assert.NotEmpty(t, parseErr.Diagnostics)
	})

	t.Run("Arquivo vazio deve ser rejeitado com diagnóstico", func(t *testing.T) {
		result, err := service.IngestSpendCSV(7, strings.NewReader(""))

		assert.Error(t, err)
		assert.Nil(t, result)

		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
	})
}

func TestService_IngestSalesCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSpendRepo := mocks.NewMockSpendRepository(ctrl)
	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)

	service := NewService(mockSpendRepo, mockSaleRepo)

	t.Run("Deve importar vendas com todos os campos", func(t *testing.T) {
		csvData := strings.Join([]string{
			"date,sale_amount,order_id,customer_email",
			"2024-01-15,350.00,ord-123,cliente@example.com",
		}, "\n")

		var captured []*domain.SaleRecord
		mockSaleRepo.EXPECT().
			BulkInsert(gomock.Any()).
			DoAndReturn(func(records []*domain.SaleRecord) error {
				captured = records
				return nil
			})

		result, err := service.IngestSalesCSV(9, strings.NewReader(csvData))

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Rows)

		assert.Equal(t, 9, captured[0].OwnerID)
		assert.Equal(t, 350.0, captured[0].SaleAmount)
		assert.Equal(t, "ord-123", captured[0].OrderID)
		assert.Equal(t, "cliente@example.com", captured[0].CustomerEmail)
	})

	t.Run("Alias 'revenue' deve ser aceito para o valor de venda", func(t *testing.T) {
		csvData := strings.Join([]string{
			"date,revenue,order_id",
			"2024-01-15,500.00,ord-456",
		}, "\n")

		var captured []*domain.SaleRecord
		mockSaleRepo.EXPECT().
			BulkInsert(gomock.Any()).
			DoAndReturn(func(records []*domain.SaleRecord) error {
				captured = records
				return nil
			})

		_, err := service.IngestSalesCSV(9, strings.NewReader(csvData))

		assert.NoError(t, err)
		assert.Equal(t, 500.0, captured[0].SaleAmount)
	})

	t.Run("Erro do repositório deve ser propagado", func(t *testing.T) {
		csvData := strings.Join([]string{
			"date,sale_amount,order_id",
			"2024-01-15,350.00,ord-123",
		}, "\n")

		mockSaleRepo.EXPECT().
			BulkInsert(gomock.Any()).
			Return(assert.AnError)

		result, err := service.IngestSalesCSV(9, strings.NewReader(csvData))

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
