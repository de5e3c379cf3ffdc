package metaclient

import (
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// ListCampaigns lista as campanhas de uma conta de anúncios.
func (c *MetaClient) ListCampaigns(creds domain.Credentials, accountID string) ([]metadomain.Campaign, error) {
	params := url.Values{}
	params.Add("fields", "id,name,status,objective")
	params.Add("limit", "100")

	endpoint := fmt.Sprintf("%s/act_%s/campaigns", c.cfg.Meta.URL, accountID)

	return fetchEdge[metadomain.Campaign](c, creds, endpoint, params)
}
