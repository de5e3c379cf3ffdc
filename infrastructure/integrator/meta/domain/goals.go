package metadomain

import (
	"sort"
	"strings"
)

// Buckets canônicos de meta de otimização.
const (
	GoalLeadGeneration   = "LEAD_GENERATION"
	GoalMessages         = "MESSAGES"
	GoalPurchase         = "PURCHASE"
	GoalLinkClicks       = "LINK_CLICKS"
	GoalLandingPageViews = "LANDING_PAGE_VIEWS"
	GoalVideoViews       = "VIDEO_VIEWS"
	GoalEngagement       = "ENGAGEMENT"
	GoalReach            = "OUTCOME_REACH"
	GoalAppInstalls      = "APP_INSTALLS"
	GoalStoreVisits      = "STORE_VISITS"

	// GoalUnknown é o bucket literal de metas não mapeadas.
	GoalUnknown = "unknown"
)

// Mapeamento de "optimization_goal" -> bucket canônico. A API usa várias
// grafias para a mesma intenção de otimização.
var optimizationGoalAliases = map[string]string{
	"LEAD_GENERATION": GoalLeadGeneration,
	"QUALITY_LEAD":    GoalLeadGeneration,

	"CONVERSATIONS": GoalMessages,
	"REPLIES":       GoalMessages,

	"OFFSITE_CONVERSIONS": GoalPurchase,
	"VALUE":               GoalPurchase,
	"PURCHASE":            GoalPurchase,

	"LINK_CLICKS": GoalLinkClicks,
	"CLICKS":      GoalLinkClicks,

	"LANDING_PAGE_VIEWS": GoalLandingPageViews,

	"THRUPLAY":                          GoalVideoViews,
	"TWO_SECOND_CONTINUOUS_VIDEO_VIEWS": GoalVideoViews,
	"VIDEO_VIEWS":                       GoalVideoViews,

	"POST_ENGAGEMENT": GoalEngagement,
	"PAGE_LIKES":      GoalEngagement,
	"EVENT_RESPONSES": GoalEngagement,

	"REACH":          GoalReach,
	"IMPRESSIONS":    GoalReach,
	"AD_RECALL_LIFT": GoalReach,

	"APP_INSTALLS": GoalAppInstalls,
	"APP_INSTALLS_AND_OFFSITE_CONVERSIONS": GoalAppInstalls,

	"STORE_VISITS": GoalStoreVisits,
}

// Candidatos a "resultado" por bucket, em ordem de preferência. A ordem
// declarada decide qual métrica vira o resultado oficial — não reordenar.
var goalResultCandidates = map[string][]string{
	GoalLeadGeneration: {
		"lead",
		"onsite_conversion.lead_grouped",
		"leadgen_grouped",
		"offsite_conversion.fb_pixel_lead",
	},
	GoalMessages: {
		"onsite_conversion.messaging_conversation_started_7d",
		"onsite_conversion.messaging_first_reply",
	},
	GoalPurchase: {
		"purchase",
		"offsite_conversion.fb_pixel_purchase",
		"omni_purchase",
		"onsite_conversion.purchase",
	},
	GoalLinkClicks: {
		"link_click",
	},
	GoalLandingPageViews: {
		"landing_page_view",
		"link_click",
	},
	GoalVideoViews: {
		"thruplay_watched_actions",
		"video_view",
	},
	GoalEngagement: {
		"post_engagement",
		"page_engagement",
		"post_reaction",
	},
	GoalReach: {},
	GoalAppInstalls: {
		"app_install",
		"omni_app_install",
	},
	GoalStoreVisits: {
		"store_visit",
	},
}

// Lista geral anexada após os candidatos do bucket, para que quase sempre
// exista um resultado mesmo para metas não mapeadas.
var fallbackResultCandidates = []string{
	"purchase",
	"offsite_conversion.fb_pixel_purchase",
	"lead",
	"onsite_conversion.messaging_conversation_started_7d",
	"link_click",
	"landing_page_view",
	"post_engagement",
	"video_view",
}

// NormalizeOptimizationGoal colapsa a meta bruta no bucket canônico;
// metas desconhecidas caem no bucket literal "unknown".
func NormalizeOptimizationGoal(raw string) string {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if normalized == "" {
		return GoalUnknown
	}

	if goal, ok := optimizationGoalAliases[normalized]; ok {
		return goal
	}

	return GoalUnknown
}

// ResultCandidatesForGoal devolve a lista ordenada de candidatos do bucket
// com a lista geral anexada ao final, sem duplicados.
func ResultCandidatesForGoal(goal string) []string {
	bucketCandidates := goalResultCandidates[goal]

	candidates := make([]string, 0, len(bucketCandidates)+len(fallbackResultCandidates))
	seen := make(map[string]struct{}, cap(candidates))

	for _, list := range [][]string{bucketCandidates, fallbackResultCandidates} {
		for _, candidate := range list {
			if _, ok := seen[candidate]; ok {
				continue
			}
			seen[candidate] = struct{}{}
			candidates = append(candidates, candidate)
		}
	}

	return candidates
}

// Buckets canônicos de objetivo de campanha.
const (
	ObjectiveLeads        = "LEADS"
	ObjectiveMessages     = "MESSAGES"
	ObjectiveSales        = "SALES"
	ObjectiveTraffic      = "TRAFFIC"
	ObjectiveEngagement   = "ENGAGEMENT"
	ObjectiveAwareness    = "AWARENESS"
	ObjectiveAppPromotion = "APP_PROMOTION"
)

// Mapeamento de "objective" da campanha -> bucket canônico, independente
// dos aliases de meta de otimização.
var campaignObjectiveAliases = map[string]string{
	"OUTCOME_LEADS":   ObjectiveLeads,
	"LEAD_GENERATION": ObjectiveLeads,

	"OUTCOME_SALES":         ObjectiveSales,
	"CONVERSIONS":           ObjectiveSales,
	"PRODUCT_CATALOG_SALES": ObjectiveSales,

	"OUTCOME_ENGAGEMENT": ObjectiveMessages,
	"MESSAGES":           ObjectiveMessages,

	"OUTCOME_TRAFFIC": ObjectiveTraffic,
	"LINK_CLICKS":     ObjectiveTraffic,
	"TRAFFIC":         ObjectiveTraffic,

	"POST_ENGAGEMENT": ObjectiveEngagement,
	"PAGE_LIKES":      ObjectiveEngagement,
	"VIDEO_VIEWS":     ObjectiveEngagement,

	"OUTCOME_AWARENESS": ObjectiveAwareness,
	"BRAND_AWARENESS":   ObjectiveAwareness,
	"REACH":             ObjectiveAwareness,

	"OUTCOME_APP_PROMOTION": ObjectiveAppPromotion,
	"APP_INSTALLS":          ObjectiveAppPromotion,
}

type RuleMode string

const (
	// RuleModeFirst pega o primeiro candidato com volume.
	RuleModeFirst RuleMode = "first"
	// RuleModeSum soma o volume de todos os candidatos.
	RuleModeSum RuleMode = "sum"
)

// ObjectiveResultRule define como computar o resultado oficial de uma
// campanha a partir do bucket de objetivo.
type ObjectiveResultRule struct {
	Label       string
	ActionTypes []string
	Mode        RuleMode
}

// Apenas alguns buckets têm regra; campanhas com objetivo fora deste mapa
// ficam sem resultado oficial no nível de campanha.
var objectiveResultRules = map[string]ObjectiveResultRule{
	ObjectiveLeads: {
		Label: "Leads",
		ActionTypes: []string{
			"lead",
			"onsite_conversion.lead_grouped",
			"leadgen_grouped",
			"offsite_conversion.fb_pixel_lead",
		},
		Mode: RuleModeFirst,
	},
	ObjectiveMessages: {
		Label: "Conversas iniciadas",
		ActionTypes: []string{
			"onsite_conversion.messaging_conversation_started_7d",
			"onsite_conversion.messaging_first_reply",
		},
		Mode: RuleModeFirst,
	},
	ObjectiveSales: {
		Label: "Compras",
		ActionTypes: []string{
			"purchase",
			"offsite_conversion.fb_pixel_purchase",
			"omni_purchase",
		},
		Mode: RuleModeFirst,
	},
	ObjectiveTraffic: {
		Label: "Cliques no link",
		ActionTypes: []string{
			"link_click",
			"landing_page_view",
		},
		Mode: RuleModeSum,
	},
	ObjectiveEngagement: {
		Label: "Engajamento",
		ActionTypes: []string{
			"post_engagement",
			"page_engagement",
			"post_reaction",
			"comment",
		},
		Mode: RuleModeSum,
	},
}

// NormalizeObjective colapsa o objetivo bruto no bucket canônico; objetivos
// desconhecidos devolvem vazio.
func NormalizeObjective(raw string) string {
	return campaignObjectiveAliases[strings.ToUpper(strings.TrimSpace(raw))]
}

// ObjectiveRuleFor resolve a regra de resultado do objetivo da campanha.
// Devolve nil quando o objetivo não tem bucket ou o bucket não tem regra.
func ObjectiveRuleFor(objective string) *ObjectiveResultRule {
	bucket := NormalizeObjective(objective)
	if bucket == "" {
		return nil
	}

	rule, ok := objectiveResultRules[bucket]
	if !ok {
		return nil
	}

	return &rule
}

// ActionStat é a visão agregada de um tipo de ação dentro de um conjunto:
// quantidade somada e menor custo por ação observado.
type ActionStat struct {
	Quantity int
	Cost     *float64
}

// OfficialResult é a métrica única escolhida como resultado de um conjunto.
type OfficialResult struct {
	Type     string
	Label    string
	Quantity int
	Cost     *float64
}

// PickOfficialResult escolhe o resultado oficial de um conjunto de anúncios:
// primeiro candidato da meta com volume; senão o tipo observado de maior
// volume; sem ações, o primeiro candidato com quantidade zero — todo
// conjunto sempre tem um resultado rotulado, mesmo que zerado.
func PickOfficialResult(optimizationGoal string, stats map[string]ActionStat) OfficialResult {
	candidates := ResultCandidatesForGoal(NormalizeOptimizationGoal(optimizationGoal))

	for _, candidate := range candidates {
		if stat, ok := stats[candidate]; ok && stat.Quantity > 0 {
			return OfficialResult{
				Type:     candidate,
				Label:    ResultLabel(candidate),
				Quantity: stat.Quantity,
				Cost:     stat.Cost,
			}
		}
	}

	// Nenhum candidato com volume: maior volume observado de qualquer tipo.
	// A varredura é ordenada para manter o desempate determinístico.
	types := make([]string, 0, len(stats))
	for actionType := range stats {
		types = append(types, actionType)
	}
	sort.Strings(types)

	var bestType string
	var best ActionStat
	for _, actionType := range types {
		if stat := stats[actionType]; stat.Quantity > best.Quantity {
			bestType = actionType
			best = stat
		}
	}

	if bestType != "" {
		return OfficialResult{
			Type:     bestType,
			Label:    ResultLabel(bestType),
			Quantity: best.Quantity,
			Cost:     best.Cost,
		}
	}

	first := candidates[0]

	return OfficialResult{
		Type:     first,
		Label:    ResultLabel(first),
		Quantity: 0,
	}
}
