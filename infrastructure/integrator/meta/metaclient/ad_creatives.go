package metaclient

import (
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// ListAdCreatives mapeia anúncio -> criativo para uma campanha. Anúncios sem
// criativo associado ficam fora do mapa.
func (c *MetaClient) ListAdCreatives(creds domain.Credentials, campaignID string) (map[string]string, error) {
	params := url.Values{}
	params.Add("fields", "id,creative{id}")
	params.Add("limit", "200")

	endpoint := fmt.Sprintf("%s/%s/ads", c.cfg.Meta.URL, campaignID)

	refs, err := fetchEdge[metadomain.AdCreativeRef](c, creds, endpoint, params)
	if err != nil {
		return nil, err
	}

	adToCreative := make(map[string]string, len(refs))
	for _, ref := range refs {
		if ref.ID == "" || ref.Creative.ID == "" {
			continue
		}
		adToCreative[ref.ID] = ref.Creative.ID
	}

	return adToCreative, nil
}
