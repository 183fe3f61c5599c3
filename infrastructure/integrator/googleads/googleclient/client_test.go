package googleclient

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/roi-analytics-api/internal/config"
	"github.com/vfg2006/roi-analytics-api/internal/domain"
)

func newTestConfig(tokenURL, adsURL string) *config.Config {
	return &config.Config{
		GoogleAds: config.GoogleAds{
			ClientID:       "client-id",
			ClientSecret:   "client-secret",
			DeveloperToken: "dev-token",
			TokenURL:       tokenURL,
			URL:            adsURL,
		},
	}
}

func TestGoogleClient_RefreshAccessToken(t *testing.T) {
	t.Run("Deve trocar o refresh token por um token de acesso", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "refresh_token", r.Form.Get("grant_type"))
			assert.Equal(t, "refresh-abc", r.Form.Get("refresh_token"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token":"novo-token","token_type":"Bearer","expires_in":3600}`))
		}))
		defer server.Close()

		client := NewClient(newTestConfig(server.URL, ""))

		resp, err := client.RefreshAccessToken("refresh-abc")

		assert.NoError(t, err)
		assert.Equal(t, "novo-token", resp.AccessToken)
		assert.Equal(t, int64(3600), resp.ExpiresIn)
	})

	t.Run("invalid_grant deve ser classificado como credencial expirada", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_grant","error_description":"Token has been expired or revoked."}`))
		}))
		defer server.Close()

		client := NewClient(newTestConfig(server.URL, ""))

		resp, err := client.RefreshAccessToken("refresh-revogado")

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Equal(t, domain.SyncErrCredentialExpired, domain.ClassifySyncError(err))
	})

	t.Run("Conta sem refresh token deve falhar como credencial expirada", func(t *testing.T) {
		client := NewClient(newTestConfig("http://localhost", ""))

		resp, err := client.RefreshAccessToken("")

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Equal(t, domain.SyncErrCredentialExpired, domain.ClassifySyncError(err))
	})

	t.Run("Outros erros do endpoint de token são desconhecidos", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"internal_failure"}`))
		}))
		defer server.Close()

		client := NewClient(newTestConfig(server.URL, ""))

		_, err := client.RefreshAccessToken("refresh-abc")

		assert.Error(t, err)
		assert.Equal(t, domain.SyncErrUnknown, domain.ClassifySyncError(err))
	})
}

func TestGoogleClient_SearchDailySpend(t *testing.T) {
	t.Run("Deve enviar os cabeçalhos exigidos e decodificar as linhas", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
			assert.Equal(t, "dev-token", r.Header.Get("developer-token"))
			assert.Equal(t, "1234567890", r.Header.Get("login-customer-id"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"results": [
					{"segments":{"date":"2024-01-15"},"metrics":{"costMicros":"125500000","impressions":"3200"}},
					{"segments":{"date":"2024-01-16"},"metrics":{"costMicros":"98000000"}}
				]
			}`))
		}))
		defer server.Close()

		client := NewClient(newTestConfig("", server.URL))

		rows, err := client.SearchDailySpend("1234567890", "token-abc")

		assert.NoError(t, err)
		assert.Len(t, rows, 2)
		assert.Equal(t, "2024-01-15", rows[0].Segments.Date)

		costMicros, err := rows[0].Metrics.CostMicros.Float64()
		assert.NoError(t, err)
		assert.Equal(t, 125500000.0, costMicros)
	})

	t.Run("RESOURCE_EXHAUSTED deve ser classificado como rate limit", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"code":429,"message":"Quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
		}))
		defer server.Close()

		client := NewClient(newTestConfig("", server.URL))

		rows, err := client.SearchDailySpend("1234567890", "token-abc")

		assert.Error(t, err)
		assert.Nil(t, rows)
		assert.Equal(t, domain.SyncErrRateLimited, domain.ClassifySyncError(err))
	})

	t.Run("UNAUTHENTICATED deve ser classificado como credencial expirada", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"code":401,"message":"Request had invalid authentication credentials","status":"UNAUTHENTICATED"}}`))
		}))
		defer server.Close()

		client := NewClient(newTestConfig("", server.URL))

		_, err := client.SearchDailySpend("1234567890", "token-abc")

		assert.Error(t, err)
		assert.Equal(t, domain.SyncErrCredentialExpired, domain.ClassifySyncError(err))
	})

	t.Run("Erro sem corpo estruturado deve ser desconhecido", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`banco de dados indisponível`))
		}))
		defer server.Close()

		client := NewClient(newTestConfig("", server.URL))

		_, err := client.SearchDailySpend("1234567890", "token-abc")

		assert.Error(t, err)
		assert.Equal(t, domain.SyncErrUnknown, domain.ClassifySyncError(err))
	})
}
