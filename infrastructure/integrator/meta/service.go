package meta

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// MetaIntegrator é a fachada da integração com a API de anúncios: busca
// campanhas e insights pelo client e entrega os agregados prontos para o
// dashboard.
type MetaIntegrator struct {
	cfg    *config.Config
	client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		client: client,
	}
}

// FetchCampaigns lista as campanhas da conta já convertidas para o domínio.
func (s *MetaIntegrator) FetchCampaigns(creds domain.Credentials, accountID string) ([]domain.Campaign, error) {
	raw, err := s.client.ListCampaigns(creds, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: falha ao listar campanhas da conta")
		return nil, err
	}

	campaigns := make([]domain.Campaign, 0, len(raw))
	for _, campaign := range raw {
		campaigns = append(campaigns, domain.Campaign{
			ID:        campaign.ID,
			Name:      campaign.Name,
			Status:    campaign.Status,
			Objective: campaign.Objective,
		})
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"campaigns":  len(campaigns),
	}).Debug("insights: campanhas da conta recuperadas")

	return campaigns, nil
}

// FetchAdsetBundles busca os insights de conjunto da conta na janela pedida
// e devolve os agregados por campanha.
func (s *MetaIntegrator) FetchAdsetBundles(creds domain.Credentials, accountID string, window *domain.DateRange) (map[string][]*domain.AdsetBundle, error) {
	rows, err := s.client.ListAdsetInsights(creds, accountID, window)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: falha ao listar insights de conjuntos da conta")
		return nil, err
	}

	return AggregateAdsetInsights(rows), nil
}

// CampaignMetrics consolida os conjuntos de uma campanha em métricas de
// campanha. Mantido como método para a camada de usecase depender só da
// fachada.
func (s *MetaIntegrator) CampaignMetrics(campaign domain.Campaign, bundles []*domain.AdsetBundle) *domain.DashboardCampaignMetrics {
	return BuildCampaignMetrics(campaign, bundles)
}
