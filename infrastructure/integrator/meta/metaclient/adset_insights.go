package metaclient

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

const adsetInsightFields = "campaign_id,campaign_name,adset_id,adset_name," +
	"optimization_goal,spend,impressions,clicks,reach,actions,cost_per_action_type"

// ListAdsetInsights lista os insights no nível de conjunto de anúncios de
// uma conta. Sem janela explícita, a consulta usa o maior retrospecto que a
// API oferece (date_preset=maximum).
func (c *MetaClient) ListAdsetInsights(creds domain.Credentials, accountID string, window *domain.DateRange) ([]metadomain.AdsetInsight, error) {
	params := url.Values{}
	params.Add("level", "adset")
	params.Add("fields", adsetInsightFields)
	params.Add("action_attribution_windows", attributionWindowsParam())
	params.Add("limit", "200")

	if window != nil {
		params.Add("time_range", timeRangeParam(window))
	} else {
		params.Add("date_preset", "maximum")
	}

	endpoint := fmt.Sprintf("%s/act_%s/insights", c.cfg.Meta.URL, accountID)

	return fetchEdge[metadomain.AdsetInsight](c, creds, endpoint, params)
}

// timeRangeParam monta o parâmetro time_range no formato JSON da API.
func timeRangeParam(window *domain.DateRange) string {
	return fmt.Sprintf(
		"{\"since\":\"%s\",\"until\":\"%s\"}",
		window.Since.Format(time.DateOnly),
		window.Until.Format(time.DateOnly),
	)
}

// attributionWindowsParam serializa o conjunto fixo de janelas de atribuição
// pedido explicitamente em toda consulta de insights.
func attributionWindowsParam() string {
	quoted := make([]string, len(metadomain.AttributionWindows))
	for i, window := range metadomain.AttributionWindows {
		quoted[i] = fmt.Sprintf("%q", window)
	}

	return "[" + strings.Join(quoted, ",") + "]"
}
