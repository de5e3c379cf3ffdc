package meta

import (
	"sort"

	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// Gastos que diferem por menos que isso são empate; decide o volume.
const spendTieEpsilon = 1e-6

// goalGroup reúne os conjuntos de anúncios de uma campanha que compartilham
// a mesma meta de otimização normalizada.
type goalGroup struct {
	goal    string
	spend   float64
	bundles []*domain.AdsetBundle
}

// BuildCampaignMetrics consolida os conjuntos de anúncios de uma campanha em
// métricas de campanha. Os totais de gasto, impressões, cliques e leads somam
// todos os conjuntos; o resultado oficial vem apenas do grupo de meta
// dominante, interpretado pela regra do objetivo da campanha.
func BuildCampaignMetrics(campaign domain.Campaign, bundles []*domain.AdsetBundle) *domain.DashboardCampaignMetrics {
	metrics := &domain.DashboardCampaignMetrics{
		ID:        campaign.ID,
		Name:      campaign.Name,
		Status:    campaign.Status,
		Objective: campaign.Objective,
	}

	for _, bundle := range bundles {
		metrics.Totals.Spend += bundle.Spend
		metrics.Totals.Impressions += bundle.Impressions
		metrics.Totals.Clicks += bundle.Clicks
		metrics.Totals.Leads += bundle.Leads
	}
	metrics.Totals.Spend = utils.RoundWithTwoDecimalPlace(metrics.Totals.Spend)

	summary := domain.CampaignResultSummary{
		Goal:   metadomain.GoalUnknown,
		ByType: []domain.ResultByType{},
		Adsets: []domain.AdsetResultRow{},
	}

	if len(bundles) == 0 {
		metrics.Result = summary
		metrics.Totals.RefreshCostPerResult()
		return metrics
	}

	dominant := dominantGroup(groupByGoal(bundles))
	summary.Goal = dominant.goal

	rule := metadomain.ObjectiveRuleFor(campaign.Objective)
	if rule == nil {
		// Objetivo sem regra: a campanha não declara resultado, mas cada
		// conjunto ainda reporta o próprio resultado oficial.
		for _, bundle := range bundles {
			summary.Adsets = append(summary.Adsets, adsetOwnResultRow(bundle))
		}

		metrics.Result = summary
		metrics.Totals.RefreshCostPerResult()
		return metrics
	}

	summary.Label = rule.Label
	applyObjectiveRule(rule, dominant, &summary)

	// Linhas de detalhe: conjuntos do grupo dominante seguem a regra do
	// objetivo; os demais mantêm o próprio resultado oficial.
	inDominant := make(map[string]bool, len(dominant.bundles))
	for _, bundle := range dominant.bundles {
		inDominant[bundle.ID] = true
	}

	for _, bundle := range bundles {
		if inDominant[bundle.ID] {
			summary.Adsets = append(summary.Adsets, adsetRuleResultRow(rule, bundle))
		} else {
			summary.Adsets = append(summary.Adsets, adsetOwnResultRow(bundle))
		}
	}

	metrics.Result = summary

	if summary.Quantity != nil {
		metrics.Totals.Results = *summary.Quantity
		metrics.Totals.ResultSpend = utils.RoundWithTwoDecimalPlace(dominant.spend)
	}
	metrics.Totals.RefreshCostPerResult()

	return metrics
}

// DominantGoal devolve a meta de otimização dominante entre os conjuntos,
// pelo mesmo critério de gasto e desempate usado na consolidação da campanha.
func DominantGoal(bundles []*domain.AdsetBundle) string {
	if len(bundles) == 0 {
		return metadomain.GoalUnknown
	}

	return dominantGroup(groupByGoal(bundles)).goal
}

// groupByGoal particiona os conjuntos por meta normalizada, em ordem
// alfabética de meta para uma saída determinística.
func groupByGoal(bundles []*domain.AdsetBundle) []*goalGroup {
	byGoal := make(map[string]*goalGroup)
	for _, bundle := range bundles {
		group, ok := byGoal[bundle.Goal]
		if !ok {
			group = &goalGroup{goal: bundle.Goal}
			byGoal[bundle.Goal] = group
		}

		group.spend += bundle.Spend
		group.bundles = append(group.bundles, bundle)
	}

	goals := make([]string, 0, len(byGoal))
	for goal := range byGoal {
		goals = append(goals, goal)
	}
	sort.Strings(goals)

	groups := make([]*goalGroup, 0, len(goals))
	for _, goal := range goals {
		groups = append(groups, byGoal[goal])
	}

	return groups
}

// dominantGroup escolhe o grupo de maior gasto; em empate por gasto, vence o
// de maior volume de resultados.
func dominantGroup(groups []*goalGroup) *goalGroup {
	var best *goalGroup
	for _, group := range groups {
		if best == nil {
			best = group
			continue
		}

		diff := group.spend - best.spend
		if diff > spendTieEpsilon {
			best = group
			continue
		}
		if diff >= -spendTieEpsilon && groupResultQuantity(group) > groupResultQuantity(best) {
			best = group
		}
	}

	return best
}

func groupResultQuantity(group *goalGroup) int {
	total := 0
	for _, bundle := range group.bundles {
		total += bundle.ResultQuantity
	}
	return total
}

// applyObjectiveRule resolve o resultado de campanha dentro do grupo
// dominante conforme o modo da regra: "first" fica com o primeiro tipo
// candidato com volume; "sum" soma todos os candidatos com volume.
func applyObjectiveRule(rule *metadomain.ObjectiveResultRule, dominant *goalGroup, summary *domain.CampaignResultSummary) {
	switch rule.Mode {
	case metadomain.RuleModeFirst:
		for _, actionType := range rule.ActionTypes {
			quantity := groupActionQuantity(dominant, actionType)
			if quantity == 0 {
				continue
			}

			cost := firstModeCost(dominant, actionType, quantity)
			summary.ByType = append(summary.ByType, domain.ResultByType{
				Type:     actionType,
				Label:    metadomain.ResultLabel(actionType),
				Quantity: quantity,
				Cost:     cost,
			})
			summary.Quantity = &quantity
			summary.CostPerResult = cost
			return
		}

		// Nenhum candidato com volume: a campanha reporta zero do alvo
		// pretendido, sem custo.
		zero := 0
		summary.Quantity = &zero

	case metadomain.RuleModeSum:
		total := 0
		for _, actionType := range rule.ActionTypes {
			quantity := groupActionQuantity(dominant, actionType)
			if quantity == 0 {
				continue
			}

			summary.ByType = append(summary.ByType, domain.ResultByType{
				Type:     actionType,
				Label:    metadomain.ResultLabel(actionType),
				Quantity: quantity,
				Cost:     firstModeCost(dominant, actionType, quantity),
			})
			total += quantity
		}

		summary.Quantity = &total
		if total > 0 && dominant.spend > 0 {
			cost := utils.RoundWithTwoDecimalPlace(dominant.spend / float64(total))
			summary.CostPerResult = &cost
		}
	}
}

func groupActionQuantity(group *goalGroup, actionType string) int {
	total := 0
	for _, bundle := range group.bundles {
		total += bundle.ActionQuantity(actionType)
	}
	return total
}

// firstModeCost calcula o custo do tipo no grupo: média ponderada pelos
// volumes dos custos observados nos conjuntos; sem nenhum custo observado,
// gasto do grupo dividido pela quantidade.
func firstModeCost(group *goalGroup, actionType string, quantity int) *float64 {
	var weightedSpend float64
	covered := 0

	for _, bundle := range group.bundles {
		q := bundle.ActionQuantity(actionType)
		if q == 0 {
			continue
		}

		if cost := bundle.ActionCost(actionType); cost != nil {
			weightedSpend += *cost * float64(q)
			covered += q
		}
	}

	if covered > 0 {
		cost := utils.RoundWithTwoDecimalPlace(weightedSpend / float64(covered))
		return &cost
	}

	if quantity > 0 && group.spend > 0 {
		cost := utils.RoundWithTwoDecimalPlace(group.spend / float64(quantity))
		return &cost
	}

	return nil
}

// adsetRuleResultRow monta a linha de detalhe de um conjunto do grupo
// dominante, com o resultado reinterpretado pela regra do objetivo.
func adsetRuleResultRow(rule *metadomain.ObjectiveResultRule, bundle *domain.AdsetBundle) domain.AdsetResultRow {
	row := domain.AdsetResultRow{
		ID:               bundle.ID,
		Name:             bundle.Name,
		OptimizationGoal: bundle.OptimizationGoal,
		Spend:            bundle.Spend,
		Impressions:      bundle.Impressions,
		Clicks:           bundle.Clicks,
		Label:            rule.Label,
	}

	switch rule.Mode {
	case metadomain.RuleModeFirst:
		for _, actionType := range rule.ActionTypes {
			quantity := bundle.ActionQuantity(actionType)
			if quantity == 0 {
				continue
			}

			resolved := actionType
			row.Type = &resolved
			row.Label = metadomain.ResultLabel(actionType)
			row.Quantity = quantity
			row.Cost = adsetTypeCost(bundle, actionType, quantity)
			return row
		}

		// Zero em todos os candidatos: a linha aponta o alvo pretendido.
		if len(rule.ActionTypes) > 0 {
			resolved := rule.ActionTypes[0]
			row.Type = &resolved
		}

	case metadomain.RuleModeSum:
		total := 0
		for _, actionType := range rule.ActionTypes {
			total += bundle.ActionQuantity(actionType)
		}

		row.Quantity = total
		if total > 0 && bundle.Spend > 0 {
			cost := utils.RoundWithTwoDecimalPlace(bundle.Spend / float64(total))
			row.Cost = &cost
		}
	}

	return row
}

// adsetOwnResultRow monta a linha de detalhe de um conjunto fora do grupo
// dominante, preservando o resultado oficial do próprio conjunto.
func adsetOwnResultRow(bundle *domain.AdsetBundle) domain.AdsetResultRow {
	resolved := bundle.Result.Type

	return domain.AdsetResultRow{
		ID:               bundle.ID,
		Name:             bundle.Name,
		OptimizationGoal: bundle.OptimizationGoal,
		Spend:            bundle.Spend,
		Impressions:      bundle.Impressions,
		Clicks:           bundle.Clicks,
		Type:             &resolved,
		Label:            bundle.Result.Label,
		Quantity:         bundle.Result.Quantity,
		Cost:             bundle.Result.Cost,
	}
}

func adsetTypeCost(bundle *domain.AdsetBundle, actionType string, quantity int) *float64 {
	if cost := bundle.ActionCost(actionType); cost != nil {
		return cost
	}

	if quantity > 0 && bundle.Spend > 0 {
		cost := utils.RoundWithTwoDecimalPlace(bundle.Spend / float64(quantity))
		return &cost
	}

	return nil
}
