package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

func GetDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		request, err := parseDashboardRequest(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"query": r.URL.RawQuery,
				"error": err.Error(),
			}).Warn("dashboard: parâmetros de consulta inválidos")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"tenant_id": request.TenantID,
			"accounts":  len(request.AccountIDs),
		}).WithFields(timeRangeLogFields(request.Period)).Info("dashboard: montando dashboard de anúncios")

		result, err := service.BuildDashboard(request)
		if err != nil {
			writeDashboardError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("dashboard: falha ao serializar a resposta")
		}
	})
}

func parseDashboardRequest(r *http.Request) (*domain.DashboardRequest, error) {
	query := r.URL.Query()

	tenantID, err := strconv.Atoi(query.Get("tenant_id"))
	if err != nil {
		return nil, errors.New("tenant_id é obrigatório e deve ser numérico")
	}

	since, err := utils.ParseDate(query.Get("since"))
	if err != nil {
		return nil, errors.New("since deve estar no formato YYYY-MM-DD")
	}

	until, err := utils.ParseDate(query.Get("until"))
	if err != nil {
		return nil, errors.New("until deve estar no formato YYYY-MM-DD")
	}

	if (since == nil) != (until == nil) {
		return nil, errors.New("since e until devem ser informados juntos")
	}

	request := &domain.DashboardRequest{
		TenantID:   tenantID,
		AccountIDs: splitParam(query.Get("account_ids")),
		Filters: domain.DashboardFilters{
			CampaignIDs: splitParam(query.Get("campaign_ids")),
			Objectives:  splitParam(query.Get("objectives")),
			Statuses:    splitParam(query.Get("statuses")),
			Goals:       splitParam(query.Get("goals")),
		},
	}

	if since != nil && until != nil {
		request.Period = &domain.DateRange{Since: *since, Until: *until}

		// A janela anterior tem o mesmo tamanho e termina na véspera do
		// início da janela atual.
		if query.Get("compare_previous") == "true" {
			length := until.Sub(*since)
			previousUntil := since.AddDate(0, 0, -1)
			previousSince := previousUntil.Add(-length)

			request.Previous = &domain.DateRange{
				Since: previousSince,
				Until: previousUntil,
			}
		}
	}

	return request, nil
}

// splitParam quebra um parâmetro com valores separados por vírgula,
// descartando entradas vazias.
func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}

	values := make([]string, 0)
	for _, value := range strings.Split(raw, ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			values = append(values, value)
		}
	}

	return values
}

// writeDashboardError traduz os erros do serviço para a resposta HTTP. Erros
// da API de anúncios já chegam com o status normalizado.
func writeDashboardError(w http.ResponseWriter, logger log.Logger, err error) {
	var apiErr *metadomain.APIError
	if errors.As(err, &apiErr) {
		logger.WithFields(log.Fields{
			"status": apiErr.Status,
			"error":  apiErr.Message,
		}).Error("dashboard: falha na API de anúncios")

		apiErrors.WriteErrorWithStatus(w, apiErr.Status, apiErrors.ErrExternalService, apiErr.Message, nil)
		return
	}

	switch {
	case errors.Is(err, dashboarding.ErrInvalidRequest), errors.Is(err, dashboarding.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, dashboarding.ErrAccountNotFound), errors.Is(err, dashboarding.ErrCampaignNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
	case errors.Is(err, dashboarding.ErrMissingCredentials):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	default:
		logger.WithError(err).Error("dashboard: erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}

// timeRangeLogFields resume uma janela para os logs.
func timeRangeLogFields(window *domain.DateRange) log.Fields {
	if window == nil {
		return log.Fields{}
	}

	return log.Fields{
		"since": window.Since.Format(time.DateOnly),
		"until": window.Until.Format(time.DateOnly),
	}
}
