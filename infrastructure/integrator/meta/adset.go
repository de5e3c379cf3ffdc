package meta

import (
	"sort"

	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// aggregatedAdsetMetrics acumula as linhas brutas de um mesmo conjunto de
// anúncios antes da finalização.
type aggregatedAdsetMetrics struct {
	id               string
	name             string
	campaignID       string
	campaignName     string
	optimizationGoal string
	spend            float64
	impressions      int
	clicks           int
	reach            int
	actions          map[string]metadomain.ActionStat
}

// AggregateAdsetInsights dobra as linhas de insights por conjunto de
// anúncios e devolve os bundles finalizados agrupados por campanha.
// Linhas sem adset_id são descartadas.
func AggregateAdsetInsights(rows []metadomain.AdsetInsight) map[string][]*domain.AdsetBundle {
	accumulators := make(map[string]*aggregatedAdsetMetrics)

	// Ordem de chegada preservada para uma saída determinística.
	order := make([]string, 0, len(rows))

	for i := range rows {
		row := &rows[i]
		if row.AdsetID == "" {
			continue
		}

		acc, ok := accumulators[row.AdsetID]
		if !ok {
			acc = &aggregatedAdsetMetrics{
				id:      row.AdsetID,
				actions: make(map[string]metadomain.ActionStat),
			}
			accumulators[row.AdsetID] = acc
			order = append(order, row.AdsetID)
		}

		acc.fold(row)
	}

	byCampaign := make(map[string][]*domain.AdsetBundle)
	for _, adsetID := range order {
		bundle := accumulators[adsetID].finalize()
		byCampaign[bundle.CampaignID] = append(byCampaign[bundle.CampaignID], bundle)
	}

	return byCampaign
}

// fold soma as métricas aditivas da linha e mescla ações e custos. Para o
// custo por ação fica o menor valor não nulo observado entre as linhas — a
// aproximação por linha da API é ruidosa e o menor é o menos poluído.
func (a *aggregatedAdsetMetrics) fold(row *metadomain.AdsetInsight) {
	if a.name == "" {
		a.name = row.AdsetName
	}
	if a.campaignID == "" {
		a.campaignID = row.CampaignID
	}
	if a.campaignName == "" {
		a.campaignName = row.CampaignName
	}
	if a.optimizationGoal == "" {
		a.optimizationGoal = row.OptimizationGoal
	}

	a.spend += utils.ParseFloatSafe(row.Spend)
	a.impressions += utils.ParseIntSafe(row.Impressions)
	a.clicks += utils.ParseIntSafe(row.Clicks)
	a.reach += utils.ParseIntSafe(row.Reach)

	for _, entry := range row.Actions {
		actionType := metadomain.NormalizeActionType(entry.ActionType)
		if actionType == "" {
			continue
		}

		quantity := int(metadomain.ExtractEntryTotal(entry))
		if quantity == 0 {
			continue
		}

		stat := a.actions[actionType]
		stat.Quantity += quantity
		a.actions[actionType] = stat
	}

	for _, entry := range row.CostPerActions {
		actionType := metadomain.NormalizeActionType(entry.ActionType)
		if actionType == "" {
			continue
		}

		cost := metadomain.ExtractEntryTotal(entry)
		if cost <= 0 {
			continue
		}

		stat := a.actions[actionType]
		if stat.Cost == nil || cost < *stat.Cost {
			merged := cost
			stat.Cost = &merged
		}
		a.actions[actionType] = stat
	}
}

// finalize produz a visão somente leitura do conjunto, com o resultado
// oficial resolvido e o custo preenchido por spend/quantidade quando nenhum
// custo direto foi reportado.
func (a *aggregatedAdsetMetrics) finalize() *domain.AdsetBundle {
	official := metadomain.PickOfficialResult(a.optimizationGoal, a.actions)

	actions := make([]domain.AdsetAction, 0, len(a.actions))
	leads := 0

	for actionType, stat := range a.actions {
		if metadomain.IsLeadType(actionType) {
			leads += stat.Quantity
		}

		actions = append(actions, domain.AdsetAction{
			Type:     actionType,
			Label:    metadomain.ResultLabel(actionType),
			Quantity: stat.Quantity,
			Cost:     stat.Cost,
		})
	}

	// Ordenadas por volume para o detalhe da UI; desempate por tipo.
	sort.Slice(actions, func(i, j int) bool {
		if actions[i].Quantity != actions[j].Quantity {
			return actions[i].Quantity > actions[j].Quantity
		}
		return actions[i].Type < actions[j].Type
	})

	resultCost := official.Cost
	if resultCost == nil && official.Quantity > 0 && a.spend > 0 {
		cost := utils.RoundWithTwoDecimalPlace(a.spend / float64(official.Quantity))
		resultCost = &cost
	}

	return &domain.AdsetBundle{
		ID:               a.id,
		Name:             a.name,
		CampaignID:       a.campaignID,
		OptimizationGoal: a.optimizationGoal,
		Goal:             metadomain.NormalizeOptimizationGoal(a.optimizationGoal),
		Spend:            utils.RoundWithTwoDecimalPlace(a.spend),
		Impressions:      a.impressions,
		Clicks:           a.clicks,
		Reach:            a.reach,
		Leads:            leads,
		Actions:          actions,
		Result: domain.AdsetAction{
			Type:     official.Type,
			Label:    official.Label,
			Quantity: official.Quantity,
			Cost:     resultCost,
		},
		ResultQuantity: official.Quantity,
		ResultCost:     resultCost,
	}
}
