package googleclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	googledomain "github.com/vfg2006/roi-analytics-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/roi-analytics-api/internal/config"
	"github.com/vfg2006/roi-analytics-api/internal/domain"
	"github.com/vfg2006/roi-analytics-api/pkg/log"
)

// Consulta GAQL usada na sincronização: gasto diário dos últimos 30 dias.
// Sem paginação além da primeira página (limitação conhecida).
const dailySpendQuery = `
	SELECT
		segments.date,
		metrics.cost_micros
	FROM ad_group
	WHERE segments.date DURING LAST_30_DAYS
`

type Client interface {
	RefreshAccessToken(refreshToken string) (*googledomain.TokenResponse, error)
	SearchDailySpend(externalAccountID, accessToken string) ([]googledomain.ReportRow, error)
}

type GoogleClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &GoogleClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// RefreshAccessToken troca o refresh token por um novo token de acesso. O token
// renovado NÃO é persistido aqui; o adaptador grava depois de uma
// sincronização bem-sucedida.
func (c *GoogleClient) RefreshAccessToken(refreshToken string) (*googledomain.TokenResponse, error) {
	if refreshToken == "" {
		return nil, domain.NewSyncError(
			domain.SyncErrCredentialExpired,
			domain.PlatformGoogle,
			errors.New("conta sem refresh token armazenado"),
		)
	}

	form := url.Values{}
	form.Add("grant_type", "refresh_token")
	form.Add("client_id", c.cfg.GoogleAds.ClientID)
	form.Add("client_secret", c.cfg.GoogleAds.ClientSecret)
	form.Add("refresh_token", refreshToken)

	resp, err := c.httpClient.Post(
		c.cfg.GoogleAds.TokenURL,
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao chamar o endpoint de token do Google")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta do endpoint de token")
	}

	if resp.StatusCode != http.StatusOK {
		var oauthErr googledomain.OAuthErrorResponse
		if err := json.Unmarshal(body, &oauthErr); err == nil && oauthErr.IsCredentialRevoked() {
			return nil, domain.NewSyncError(
				domain.SyncErrCredentialExpired,
				domain.PlatformGoogle,
				fmt.Errorf("refresh token rejeitado: %s", oauthErr.ErrorDescription),
			)
		}

		return nil, domain.NewSyncError(
			domain.SyncErrUnknown,
			domain.PlatformGoogle,
			fmt.Errorf("erro ao renovar token. Status: %d, Resposta: %s", resp.StatusCode, body),
		)
	}

	var tokenResp googledomain.TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar resposta de token")
	}

	if tokenResp.AccessToken == "" {
		return nil, errors.New("token retornado pela API é vazio")
	}

	return &tokenResp, nil
}

func (c *GoogleClient) SearchDailySpend(externalAccountID, accessToken string) ([]googledomain.ReportRow, error) {
	requestURL := fmt.Sprintf("%s/customers/%s/googleAds:search", c.cfg.GoogleAds.URL, externalAccountID)

	payload, err := json.Marshal(map[string]string{"query": dailySpendQuery})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar a consulta")
	}

	req, err := http.NewRequest(http.MethodPost, requestURL, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("developer-token", c.cfg.GoogleAds.DeveloperToken)
	req.Header.Set("login-customer-id", externalAccountID)

	resp, err := c.httpClient.Do(req)
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

	var response googledomain.SearchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar JSON")
	}

	if response.NextPageToken != "" {
		log.L.WithField("account_id", externalAccountID).
			Warn("google: relatório tem mais páginas; apenas a primeira foi consumida")
	}

	return response.Results, nil
}

func (c *GoogleClient) classifyError(statusCode int, body []byte) error {
	var errResp googledomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		switch {
		case errResp.IsRateLimited():
			return domain.NewSyncError(
				domain.SyncErrRateLimited,
				domain.PlatformGoogle,
				errors.New(errResp.Error.Message),
			)
		case errResp.IsCredentialExpired():
			return domain.NewSyncError(
				domain.SyncErrCredentialExpired,
				domain.PlatformGoogle,
				errors.New(errResp.Error.Message),
			)
		}
	}

	if statusCode == http.StatusTooManyRequests {
		return domain.NewSyncError(
			domain.SyncErrRateLimited,
			domain.PlatformGoogle,
			fmt.Errorf("status %d", statusCode),
		)
	}

	return domain.NewSyncError(
		domain.SyncErrUnknown,
		domain.PlatformGoogle,
		fmt.Errorf("erro na API do Google Ads. Status: %d, Resposta: %s", statusCode, body),
	)
}
