package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

func leadBundle(id string, spend float64, leads int, cost *float64) *domain.AdsetBundle {
	return &domain.AdsetBundle{
		ID:               id,
		Name:             "Conjunto " + id,
		CampaignID:       "CAMP1",
		OptimizationGoal: "LEAD_GENERATION",
		Goal:             metadomain.GoalLeadGeneration,
		Spend:            spend,
		Impressions:      1000,
		Clicks:           100,
		Leads:            leads,
		Actions: []domain.AdsetAction{
			{Type: "lead", Label: "Leads", Quantity: leads, Cost: cost},
		},
		Result:         domain.AdsetAction{Type: "lead", Label: "Leads", Quantity: leads, Cost: cost},
		ResultQuantity: leads,
		ResultCost:     cost,
	}
}

func TestBuildCampaignMetrics(t *testing.T) {
	campaign := domain.Campaign{
		ID:        "CAMP1",
		Name:      "Campanha de Leads",
		Status:    "ACTIVE",
		Objective: "OUTCOME_LEADS",
	}

	t.Run("Campanha de leads com um conjunto - resultado e custo derivados do gasto", func(t *testing.T) {
		metrics := BuildCampaignMetrics(campaign, []*domain.AdsetBundle{
			leadBundle("ADSET1", 100, 10, nil),
		})

		assert.Equal(t, "Leads", metrics.Result.Label)
		if assert.NotNil(t, metrics.Result.Quantity) {
			assert.Equal(t, 10, *metrics.Result.Quantity)
		}
		if assert.NotNil(t, metrics.Result.CostPerResult) {
			assert.Equal(t, 10.0, *metrics.Result.CostPerResult)
		}

		assert.Equal(t, 10, metrics.Totals.Results)
		assert.Equal(t, 100.0, metrics.Totals.ResultSpend)
		if assert.NotNil(t, metrics.Totals.CostPerResult) {
			assert.Equal(t, 10.0, *metrics.Totals.CostPerResult)
		}
	})

	t.Run("Custos observados nos conjuntos - media ponderada pelo volume", func(t *testing.T) {
		costA := 10.0
		costB := 20.0

		metrics := BuildCampaignMetrics(campaign, []*domain.AdsetBundle{
			leadBundle("ADSET1", 100, 10, &costA),
			leadBundle("ADSET2", 100, 5, &costB),
		})

		// (10*10 + 20*5) / 15 = 13.33
		if assert.NotNil(t, metrics.Result.CostPerResult) {
			assert.Equal(t, 13.33, *metrics.Result.CostPerResult)
		}
		if assert.NotNil(t, metrics.Result.Quantity) {
			assert.Equal(t, 15, *metrics.Result.Quantity)
		}
	})

	t.Run("Metas concorrentes - grupo de maior gasto decide o resultado", func(t *testing.T) {
		messages := &domain.AdsetBundle{
			ID:               "ADSET2",
			CampaignID:       "CAMP1",
			OptimizationGoal: "CONVERSATIONS",
			Goal:             metadomain.GoalMessages,
			Spend:            400,
			Actions: []domain.AdsetAction{
				{Type: "onsite_conversion.messaging_conversation_started_7d", Quantity: 30},
			},
			Result:         domain.AdsetAction{Type: "onsite_conversion.messaging_conversation_started_7d", Label: "Conversas iniciadas", Quantity: 30},
			ResultQuantity: 30,
		}

		metrics := BuildCampaignMetrics(campaign, []*domain.AdsetBundle{
			leadBundle("ADSET1", 100, 10, nil),
			messages,
		})

		// O grupo de mensagens gasta mais, mas a regra do objetivo (leads)
		// não encontra volume de lead nele: a campanha reporta zero.
		assert.Equal(t, metadomain.GoalMessages, metrics.Result.Goal)
		if assert.NotNil(t, metrics.Result.Quantity) {
			assert.Equal(t, 0, *metrics.Result.Quantity)
		}

		// O gasto total ainda soma os dois grupos.
		assert.Equal(t, 500.0, metrics.Totals.Spend)
	})

	t.Run("Empate de gasto entre grupos - maior volume de resultados decide", func(t *testing.T) {
		lead := leadBundle("ADSET1", 100, 3, nil)
		messages := &domain.AdsetBundle{
			ID:               "ADSET2",
			CampaignID:       "CAMP1",
			OptimizationGoal: "CONVERSATIONS",
			Goal:             metadomain.GoalMessages,
			Spend:            100,
			Actions: []domain.AdsetAction{
				{Type: "onsite_conversion.messaging_conversation_started_7d", Quantity: 30},
			},
			Result:         domain.AdsetAction{Type: "onsite_conversion.messaging_conversation_started_7d", Label: "Conversas iniciadas", Quantity: 30},
			ResultQuantity: 30,
		}

		metrics := BuildCampaignMetrics(campaign, []*domain.AdsetBundle{lead, messages})

		assert.Equal(t, metadomain.GoalMessages, metrics.Result.Goal)
	})

	t.Run("Objetivo de trafego - modo sum soma os candidatos com volume", func(t *testing.T) {
		traffic := domain.Campaign{ID: "CAMP2", Objective: "OUTCOME_TRAFFIC"}

		bundle := &domain.AdsetBundle{
			ID:               "ADSET1",
			CampaignID:       "CAMP2",
			OptimizationGoal: "LINK_CLICKS",
			Goal:             metadomain.GoalLinkClicks,
			Spend:            50,
			Actions: []domain.AdsetAction{
				{Type: "link_click", Label: "Cliques no link", Quantity: 80},
				{Type: "landing_page_view", Label: "Visualizações da página de destino", Quantity: 20},
			},
			Result:         domain.AdsetAction{Type: "link_click", Label: "Cliques no link", Quantity: 80},
			ResultQuantity: 80,
		}

		metrics := BuildCampaignMetrics(traffic, []*domain.AdsetBundle{bundle})

		if assert.NotNil(t, metrics.Result.Quantity) {
			assert.Equal(t, 100, *metrics.Result.Quantity)
		}
		assert.Len(t, metrics.Result.ByType, 2)
		if assert.NotNil(t, metrics.Result.CostPerResult) {
			assert.Equal(t, 0.5, *metrics.Result.CostPerResult)
		}

		// No modo sum a linha do conjunto não tem tipo único.
		assert.Len(t, metrics.Result.Adsets, 1)
		assert.Nil(t, metrics.Result.Adsets[0].Type)
		assert.Equal(t, 100, metrics.Result.Adsets[0].Quantity)
	})

	t.Run("Objetivo sem regra - campanha sem resultado mas conjuntos reportam o proprio", func(t *testing.T) {
		awareness := domain.Campaign{ID: "CAMP3", Objective: "OUTCOME_AWARENESS"}

		metrics := BuildCampaignMetrics(awareness, []*domain.AdsetBundle{
			leadBundle("ADSET1", 100, 10, nil),
		})

		assert.Nil(t, metrics.Result.Quantity)
		assert.Equal(t, 0, metrics.Totals.Results)
		assert.Nil(t, metrics.Totals.CostPerResult)

		if assert.Len(t, metrics.Result.Adsets, 1) {
			row := metrics.Result.Adsets[0]
			assert.Equal(t, "Leads", row.Label)
			assert.Equal(t, 10, row.Quantity)
		}
	})

	t.Run("Conjunto fora do grupo dominante - linha mantem o resultado oficial dele", func(t *testing.T) {
		dominantLead := leadBundle("ADSET1", 300, 12, nil)
		messages := &domain.AdsetBundle{
			ID:               "ADSET2",
			CampaignID:       "CAMP1",
			OptimizationGoal: "CONVERSATIONS",
			Goal:             metadomain.GoalMessages,
			Spend:            50,
			Actions: []domain.AdsetAction{
				{Type: "onsite_conversion.messaging_conversation_started_7d", Quantity: 7},
			},
			Result:         domain.AdsetAction{Type: "onsite_conversion.messaging_conversation_started_7d", Label: "Conversas iniciadas", Quantity: 7},
			ResultQuantity: 7,
		}

		metrics := BuildCampaignMetrics(campaign, []*domain.AdsetBundle{dominantLead, messages})

		assert.Len(t, metrics.Result.Adsets, 2)

		var messagesRow *domain.AdsetResultRow
		for i := range metrics.Result.Adsets {
			if metrics.Result.Adsets[i].ID == "ADSET2" {
				messagesRow = &metrics.Result.Adsets[i]
			}
		}

		if assert.NotNil(t, messagesRow) {
			assert.Equal(t, "Conversas iniciadas", messagesRow.Label)
			assert.Equal(t, 7, messagesRow.Quantity)
		}
	})

	t.Run("Campanha sem conjuntos - totais zerados e resultado vazio", func(t *testing.T) {
		metrics := BuildCampaignMetrics(campaign, nil)

		assert.Equal(t, 0.0, metrics.Totals.Spend)
		assert.Nil(t, metrics.Result.Quantity)
		assert.Equal(t, metadomain.GoalUnknown, metrics.Result.Goal)
		assert.Empty(t, metrics.Result.Adsets)
	})
}

func TestDominantGoal(t *testing.T) {
	t.Run("Meta de maior gasto vence, mesmo com conjunto residual de outra meta", func(t *testing.T) {
		goal := DominantGoal([]*domain.AdsetBundle{
			{ID: "A1", Goal: metadomain.GoalPurchase, Spend: 500},
			{ID: "A2", Goal: metadomain.GoalLeadGeneration, Spend: 0},
		})

		assert.Equal(t, metadomain.GoalPurchase, goal)
	})

	t.Run("Empate de gasto - decide o volume de resultados", func(t *testing.T) {
		goal := DominantGoal([]*domain.AdsetBundle{
			{ID: "A1", Goal: metadomain.GoalPurchase, Spend: 100, ResultQuantity: 2},
			{ID: "A2", Goal: metadomain.GoalMessages, Spend: 100, ResultQuantity: 9},
		})

		assert.Equal(t, metadomain.GoalMessages, goal)
	})

	t.Run("Sem conjuntos - bucket desconhecido", func(t *testing.T) {
		assert.Equal(t, metadomain.GoalUnknown, DominantGoal(nil))
	})
}
