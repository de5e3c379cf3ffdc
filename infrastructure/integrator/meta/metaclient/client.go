package metaclient

import (
	"net/http"
	"time"

	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// Client expõe as consultas da API de relatórios usadas pelo motor de
// agregação. Toda chamada recebe as credenciais do chamador — o cliente
// não guarda token nem renova nada.
type Client interface {
	ListCampaigns(creds domain.Credentials, accountID string) ([]metadomain.Campaign, error)
	ListAdsetInsights(creds domain.Credentials, accountID string, window *domain.DateRange) ([]metadomain.AdsetInsight, error)
	ListAdInsights(creds domain.Credentials, campaignID string) ([]metadomain.AdInsight, error)
	ListAdCreatives(creds domain.Credentials, campaignID string) (map[string]string, error)
	GetCreativesMetadata(creds domain.Credentials, creativeIDs []string) (map[string]metadomain.CreativeMetadata, error)
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
