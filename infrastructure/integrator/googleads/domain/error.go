package googledomain

// ErrorResponse é o envelope de erro da API do Google Ads
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// OAuthErrorResponse é o envelope de erro do endpoint de token OAuth
type OAuthErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// IsCredentialRevoked verifica se o refresh token foi revogado ou expirou.
// O OAuth do Google responde invalid_grant nesses casos.
func (e *OAuthErrorResponse) IsCredentialRevoked() bool {
	return e.Error == "invalid_grant"
}

// IsCredentialExpired verifica se a API rejeitou o token de acesso
func (e *ErrorResponse) IsCredentialExpired() bool {
	return e.Error.Status == "UNAUTHENTICATED" || e.Error.Code == 401
}

// IsRateLimited verifica se a API sinalizou excesso de requisições
func (e *ErrorResponse) IsRateLimited() bool {
	return e.Error.Status == "RESOURCE_EXHAUSTED" || e.Error.Code == 429
}
