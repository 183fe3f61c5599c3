package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/roi-analytics-api/infrastructure/integrator/metaads/domain"
	"github.com/vfg2006/roi-analytics-api/internal/config"
	"github.com/vfg2006/roi-analytics-api/internal/domain"
)

type Client interface {
	GetDailySpendInsights(externalAccountID, accessToken string) ([]metadomain.InsightRow, error)
}

type MetaClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetDailySpendInsights busca o gasto dos últimos 30 dias com quebra diária
// via Graph API. O token de longa duração é usado como está, sem refresh.
func (c *MetaClient) GetDailySpendInsights(externalAccountID, accessToken string) ([]metadomain.InsightRow, error) {
	baseURL := fmt.Sprintf("%s/act_%s/insights", c.cfg.MetaAds.URL, externalAccountID)

	params := url.Values{}
	params.Add("access_token", accessToken)
	params.Add("date_preset", "last_30d")
	params.Add("time_increment", "1") // quebra diária
	params.Add("fields", "spend,date_start,account_id")

	resp, err := c.httpClient.Get(baseURL + "?" + params.Encode())
	if err != nil {
		return nil, errors.Wrap(err, "erro ao fazer a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.classifyError(resp.StatusCode, body)
	}

	var response metadomain.InsightsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar JSON")
	}

	return response.Data, nil
}

func (c *MetaClient) classifyError(statusCode int, body []byte) error {
	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		switch {
		case errResp.IsTokenExpired():
			return domain.NewSyncError(
				domain.SyncErrCredentialExpired,
				domain.PlatformMeta,
				errors.New(errResp.Error.Message),
			)
		case errResp.IsRateLimited():
			return domain.NewSyncError(
				domain.SyncErrRateLimited,
				domain.PlatformMeta,
				errors.New(errResp.Error.Message),
			)
		}
	}

	if statusCode == http.StatusTooManyRequests {
		return domain.NewSyncError(
			domain.SyncErrRateLimited,
			domain.PlatformMeta,
			fmt.Errorf("status %d", statusCode),
		)
	}

	return domain.NewSyncError(
		domain.SyncErrUnknown,
		domain.PlatformMeta,
		fmt.Errorf("erro na API do Meta. Status: %d, Resposta: %s", statusCode, body),
	)
}
