package dashboarding

import (
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// Insighter é a fatia do integrador de anúncios que o dashboard consome.
type Insighter interface {
	// FetchCampaigns lista as campanhas de uma conta de anúncios.
	FetchCampaigns(creds domain.Credentials, accountID string) ([]domain.Campaign, error)

	// FetchAdsetBundles busca e agrega os insights de conjunto da conta na
	// janela pedida, agrupados por campanha.
	FetchAdsetBundles(creds domain.Credentials, accountID string, window *domain.DateRange) (map[string][]*domain.AdsetBundle, error)

	// CampaignMetrics consolida os conjuntos de uma campanha em métricas.
	CampaignMetrics(campaign domain.Campaign, bundles []*domain.AdsetBundle) *domain.DashboardCampaignMetrics

	// BuildCreativeReport monta o relatório por criativo de uma campanha.
	BuildCreativeReport(creds domain.Credentials, campaign domain.Campaign) ([]*domain.CampaignCreativeReport, error)
}

// Dashboarder é o contrato do serviço de dashboard para a camada HTTP.
type Dashboarder interface {
	// BuildDashboard monta o dashboard das contas pedidas, com comparação do
	// período anterior quando solicitada.
	BuildDashboard(request *domain.DashboardRequest) (*domain.MetaDashboardResult, error)

	// CampaignCreativeReport monta o relatório de criativos de uma campanha
	// de uma conta do tenant.
	CampaignCreativeReport(tenantID int, accountID, campaignID string) ([]*domain.CampaignCreativeReport, error)
}
