package metaclient

import (
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

const adInsightFields = "ad_id,ad_name,spend,impressions,clicks,actions"

// ListAdInsights lista os insights no nível de anúncio de uma campanha,
// usados pelo relatório de criativos.
func (c *MetaClient) ListAdInsights(creds domain.Credentials, campaignID string) ([]metadomain.AdInsight, error) {
	params := url.Values{}
	params.Add("level", "ad")
	params.Add("fields", adInsightFields)
	params.Add("action_attribution_windows", attributionWindowsParam())
	params.Add("limit", "200")

	endpoint := fmt.Sprintf("%s/%s/insights", c.cfg.Meta.URL, campaignID)

	return fetchEdge[metadomain.AdInsight](c, creds, endpoint, params)
}
