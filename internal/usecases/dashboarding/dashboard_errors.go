package dashboarding

import (
	"errors"
)

// Erros específicos para o contexto de dashboard
var (
	ErrInvalidRequest     = errors.New("invalid dashboard request")
	ErrInvalidPeriod      = errors.New("start date must not be after end date")
	ErrAccountNotFound    = errors.New("account not found")
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrMissingCredentials = errors.New("tenant has no ads integration configured")
)
