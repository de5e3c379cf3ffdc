package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

func GetCampaignCreatives(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		tenantID, err := strconv.Atoi(r.URL.Query().Get("tenant_id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "tenant_id é obrigatório e deve ser numérico", nil)
			return
		}

		accountID := r.URL.Query().Get("account_id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "account_id é obrigatório", nil)
			return
		}

		logger.WithFields(log.Fields{
			"tenant_id":   tenantID,
			"account_id":  accountID,
			"campaign_id": campaignID,
		}).Info("dashboard: montando relatório de criativos da campanha")

		reports, err := service.CampaignCreativeReport(tenantID, accountID, campaignID)
		if err != nil {
			if errors.Is(err, dashboarding.ErrAccountNotFound) || errors.Is(err, dashboarding.ErrCampaignNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
				return
			}

			writeDashboardError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(reports); err != nil {
			logger.WithError(err).Error("dashboard: falha ao serializar o relatório de criativos")
		}
	})
}
