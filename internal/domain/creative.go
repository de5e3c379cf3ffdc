package domain

// CreativeAsset é um recurso visual de um criativo (thumbnail, imagem do
// asset feed ou imagem de preview de link), deduplicado por Key.
type CreativeAsset struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	URL   string `json:"url,omitempty"`
}

type CreativePerformance struct {
	Impressions   int      `json:"impressions"`
	Clicks        int      `json:"clicks"`
	Spend         float64  `json:"spend"`
	Results       int      `json:"results"`
	CostPerResult *float64 `json:"custo_por_resultado"`
}

// CampaignCreativeReport é o relatório por criativo de uma campanha.
type CampaignCreativeReport struct {
	CreativeID  string              `json:"creative_id"`
	Name        string              `json:"name"`
	Thumbnail   string              `json:"thumbnail,omitempty"`
	Assets      []CreativeAsset     `json:"assets"`
	Performance CreativePerformance `json:"performance"`
}
