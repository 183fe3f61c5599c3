package domain

import (
	"errors"
	"fmt"
)

// SyncErrorKind classifica as falhas de sincronização para o chamador. O
// conjunto é fechado: o que não é rate limit nem credencial expirada é
// propagado verbatim como unknown.
type SyncErrorKind string

const (
	SyncErrRateLimited       SyncErrorKind = "rate_limited"
	SyncErrCredentialExpired SyncErrorKind = "credential_expired"
	SyncErrUnknown           SyncErrorKind = "unknown"
)

// SyncError é a falha classificada de um adaptador de plataforma. Nunca há
// retry automático dentro do adaptador; quem decide repetir é o chamador.
type SyncError struct {
	Kind     SyncErrorKind
	Platform AdPlatform
	Err      error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Platform, e.Kind, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func NewSyncError(kind SyncErrorKind, platform AdPlatform, err error) *SyncError {
	return &SyncError{
		Kind:     kind,
		Platform: platform,
		Err:      err,
	}
}

// ClassifySyncError extrai o tipo de uma falha de sincronização; erros não
// classificados contam como unknown
func ClassifySyncError(err error) SyncErrorKind {
	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return syncErr.Kind
	}
	return SyncErrUnknown
}
