package metadomain

import (
	"encoding/json"
	"strconv"
)

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// Campaign é a campanha como devolvida pela edge /campaigns.
type Campaign struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Objective string `json:"objective"`
}

// AdsetInsight é uma linha de insights no nível de conjunto de anúncios.
// Métricas numéricas chegam como string; campo ausente significa
// "não reportado" e vale zero para a agregação.
type AdsetInsight struct {
	AccountID        string        `json:"account_id"`
	CampaignID       string        `json:"campaign_id"`
	CampaignName     string        `json:"campaign_name"`
	AdsetID          string        `json:"adset_id"`
	AdsetName        string        `json:"adset_name"`
	OptimizationGoal string        `json:"optimization_goal"`
	Spend            string        `json:"spend"`
	Impressions      string        `json:"impressions"`
	Clicks           string        `json:"clicks"`
	Reach            string        `json:"reach"`
	Actions          []ActionEntry `json:"actions"`
	CostPerActions   []ActionEntry `json:"cost_per_action_type"`
	DateStart        string        `json:"date_start"`
	DateStop         string        `json:"date_stop"`
}

// AdInsight é uma linha de insights no nível de anúncio.
type AdInsight struct {
	AdID        string        `json:"ad_id"`
	AdName      string        `json:"ad_name"`
	Spend       string        `json:"spend"`
	Impressions string        `json:"impressions"`
	Clicks      string        `json:"clicks"`
	Actions     []ActionEntry `json:"actions"`
}

// AdCreativeRef liga um anúncio ao criativo dele (edge /ads com fields=creative).
type AdCreativeRef struct {
	ID       string `json:"id"`
	Creative struct {
		ID string `json:"id"`
	} `json:"creative"`
}

type AssetFeedImage struct {
	Hash string `json:"hash,omitempty"`
	URL  string `json:"url,omitempty"`
}

type AssetFeedSpec struct {
	Images []AssetFeedImage `json:"images,omitempty"`
}

type LinkData struct {
	Picture string `json:"picture,omitempty"`
}

type ObjectStorySpec struct {
	LinkData *LinkData `json:"link_data,omitempty"`
}

// CreativeMetadata são os metadados de um criativo buscados em lote.
type CreativeMetadata struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	ThumbnailURL    string           `json:"thumbnail_url,omitempty"`
	ObjectStorySpec *ObjectStorySpec `json:"object_story_spec,omitempty"`
	AssetFeedSpec   *AssetFeedSpec   `json:"asset_feed_spec,omitempty"`
}

// ActionEntry é uma contagem observada para um tipo de ação. A API ora manda
// o total direto em "value", ora quebra por janela de atribuição, ora usa
// outros campos; os campos desconhecidos ficam preservados em Fields.
type ActionEntry struct {
	ActionType string
	Value      string
	Fields     map[string]string
}

func (a *ActionEntry) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	a.Fields = make(map[string]string, len(raw))

	for key, value := range raw {
		str := stringifyField(value)

		switch key {
		case "action_type":
			a.ActionType = str
		case "value":
			a.Value = str
		default:
			a.Fields[key] = str
		}
	}

	return nil
}

// stringifyField normaliza valores string e numéricos do JSON para string;
// qualquer outro tipo vira vazio e é ignorado pela extração.
func stringifyField(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
