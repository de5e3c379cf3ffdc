package meta

import (
	"fmt"
	"sort"

	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// creativeAccumulator acumula as métricas no nível de anúncio de todos os
// anúncios que compartilham o mesmo criativo.
type creativeAccumulator struct {
	spend       float64
	impressions int
	clicks      int
	actions     map[string]int
}

// BuildCreativeReport monta o relatório por criativo de uma campanha:
// agrega os insights de anúncio por criativo, busca os metadados em lote e
// resolve os resultados pela regra do objetivo da campanha.
func (s *MetaIntegrator) BuildCreativeReport(creds domain.Credentials, campaign domain.Campaign) ([]*domain.CampaignCreativeReport, error) {
	rows, err := s.client.ListAdInsights(creds, campaign.ID)
	if err != nil {
		return nil, err
	}

	adToCreative, err := s.client.ListAdCreatives(creds, campaign.ID)
	if err != nil {
		return nil, err
	}

	accumulators := make(map[string]*creativeAccumulator)
	order := make([]string, 0, len(adToCreative))

	for i := range rows {
		row := &rows[i]

		// Linha sem criativo conhecido não tem onde ser creditada.
		creativeID, ok := adToCreative[row.AdID]
		if !ok {
			continue
		}

		acc, found := accumulators[creativeID]
		if !found {
			acc = &creativeAccumulator{actions: make(map[string]int)}
			accumulators[creativeID] = acc
			order = append(order, creativeID)
		}

		acc.spend += utils.ParseFloatSafe(row.Spend)
		acc.impressions += utils.ParseIntSafe(row.Impressions)
		acc.clicks += utils.ParseIntSafe(row.Clicks)

		for _, entry := range row.Actions {
			actionType := metadomain.NormalizeActionType(entry.ActionType)
			if actionType == "" {
				continue
			}

			if quantity := int(metadomain.ExtractEntryTotal(entry)); quantity > 0 {
				acc.actions[actionType] += quantity
			}
		}
	}

	if len(order) == 0 {
		return []*domain.CampaignCreativeReport{}, nil
	}

	metadata, err := s.client.GetCreativesMetadata(creds, order)
	if err != nil {
		return nil, err
	}

	rule := metadomain.ObjectiveRuleFor(campaign.Objective)

	reports := make([]*domain.CampaignCreativeReport, 0, len(order))
	for _, creativeID := range order {
		acc := accumulators[creativeID]

		results := resolveCreativeResults(rule, acc.actions)

		var costPerResult *float64
		if results > 0 && acc.spend > 0 {
			cost := utils.RoundWithTwoDecimalPlace(acc.spend / float64(results))
			costPerResult = &cost
		}

		meta := metadata[creativeID]
		name := meta.Name
		if name == "" {
			name = creativeID
		}

		reports = append(reports, &domain.CampaignCreativeReport{
			CreativeID: creativeID,
			Name:       name,
			Thumbnail:  meta.ThumbnailURL,
			Assets:     collectCreativeAssets(meta),
			Performance: domain.CreativePerformance{
				Impressions:   acc.impressions,
				Clicks:        acc.clicks,
				Spend:         utils.RoundWithTwoDecimalPlace(acc.spend),
				Results:       results,
				CostPerResult: costPerResult,
			},
		})
	}

	return reports, nil
}

// resolveCreativeResults aplica a regra do objetivo da campanha às ações do
// criativo; sem regra ou sem volume em nenhum candidato, cai no maior volume
// observado entre todos os tipos.
func resolveCreativeResults(rule *metadomain.ObjectiveResultRule, actions map[string]int) int {
	if rule != nil {
		switch rule.Mode {
		case metadomain.RuleModeFirst:
			for _, actionType := range rule.ActionTypes {
				if quantity := actions[actionType]; quantity > 0 {
					return quantity
				}
			}
		case metadomain.RuleModeSum:
			total := 0
			for _, actionType := range rule.ActionTypes {
				total += actions[actionType]
			}
			if total > 0 {
				return total
			}
		}
	}

	types := make([]string, 0, len(actions))
	for actionType := range actions {
		types = append(types, actionType)
	}
	sort.Strings(types)

	best := 0
	for _, actionType := range types {
		if actions[actionType] > best {
			best = actions[actionType]
		}
	}

	return best
}

// collectCreativeAssets junta os recursos visuais do criativo, deduplicados
// pela URL (ou pelo hash quando a imagem não tem URL). Criativo sem nenhum
// recurso recebe um placeholder para o card não sair vazio.
func collectCreativeAssets(meta metadomain.CreativeMetadata) []domain.CreativeAsset {
	assets := make([]domain.CreativeAsset, 0, 4)
	seen := make(map[string]struct{})

	add := func(key, label, assetURL string) {
		if key == "" {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}

		assets = append(assets, domain.CreativeAsset{
			Key:   key,
			Label: label,
			URL:   assetURL,
		})
	}

	add(meta.ThumbnailURL, "Thumbnail", meta.ThumbnailURL)

	if meta.AssetFeedSpec != nil {
		for i, image := range meta.AssetFeedSpec.Images {
			label := image.Hash
			if label == "" {
				label = fmt.Sprintf("Imagem %d", i+1)
			}

			key := image.URL
			if key == "" {
				key = image.Hash
			}

			add(key, label, image.URL)
		}
	}

	if meta.ObjectStorySpec != nil && meta.ObjectStorySpec.LinkData != nil {
		picture := meta.ObjectStorySpec.LinkData.Picture
		add(picture, "Link preview", picture)
	}

	if len(assets) == 0 {
		assets = append(assets, domain.CreativeAsset{
			Key:   "placeholder",
			Label: "Sem imagem",
		})
	}

	return assets
}
