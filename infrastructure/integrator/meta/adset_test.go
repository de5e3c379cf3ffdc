package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
)

func TestAggregateAdsetInsights(t *testing.T) {
	t.Run("Linhas do mesmo conjunto - metricas somadas e custo minimo", func(t *testing.T) {
		rows := []metadomain.AdsetInsight{
			{
				CampaignID:       "CAMP1",
				AdsetID:          "ADSET1",
				AdsetName:        "Conjunto A",
				OptimizationGoal: "LEAD_GENERATION",
				Spend:            "60.5",
				Impressions:      "1000",
				Clicks:           "50",
				Reach:            "800",
				Actions: []metadomain.ActionEntry{
					{ActionType: "lead", Value: "6"},
					{ActionType: "link_click", Value: "40"},
				},
				CostPerActions: []metadomain.ActionEntry{
					{ActionType: "lead", Value: "12.5"},
				},
			},
			{
				CampaignID:       "CAMP1",
				AdsetID:          "ADSET1",
				AdsetName:        "Conjunto A",
				OptimizationGoal: "LEAD_GENERATION",
				Spend:            "39.5",
				Impressions:      "500",
				Clicks:           "30",
				Reach:            "400",
				Actions: []metadomain.ActionEntry{
					{ActionType: "lead", Value: "4"},
				},
				CostPerActions: []metadomain.ActionEntry{
					{ActionType: "lead", Value: "9.0"},
				},
			},
		}

		byCampaign := AggregateAdsetInsights(rows)

		assert.Len(t, byCampaign, 1)
		assert.Len(t, byCampaign["CAMP1"], 1)

		bundle := byCampaign["CAMP1"][0]
		assert.Equal(t, "ADSET1", bundle.ID)
		assert.Equal(t, "Conjunto A", bundle.Name)
		assert.Equal(t, 100.0, bundle.Spend)
		assert.Equal(t, 1500, bundle.Impressions)
		assert.Equal(t, 80, bundle.Clicks)
		assert.Equal(t, 1200, bundle.Reach)
		assert.Equal(t, 10, bundle.Leads)

		// O custo mesclado é o menor entre as linhas.
		assert.Equal(t, 10, bundle.ActionQuantity("lead"))
		if assert.NotNil(t, bundle.ActionCost("lead")) {
			assert.Equal(t, 9.0, *bundle.ActionCost("lead"))
		}

		// Resultado oficial segue a meta de otimização.
		assert.Equal(t, "lead", bundle.Result.Type)
		assert.Equal(t, "Leads", bundle.Result.Label)
		assert.Equal(t, 10, bundle.Result.Quantity)
		if assert.NotNil(t, bundle.Result.Cost) {
			assert.Equal(t, 9.0, *bundle.Result.Cost)
		}
	})

	t.Run("Conjuntos de campanhas diferentes - agrupados pela campanha", func(t *testing.T) {
		rows := []metadomain.AdsetInsight{
			{CampaignID: "CAMP1", AdsetID: "ADSET1", Spend: "10"},
			{CampaignID: "CAMP2", AdsetID: "ADSET2", Spend: "20"},
			{CampaignID: "CAMP1", AdsetID: "ADSET3", Spend: "30"},
		}

		byCampaign := AggregateAdsetInsights(rows)

		assert.Len(t, byCampaign["CAMP1"], 2)
		assert.Len(t, byCampaign["CAMP2"], 1)
	})

	t.Run("Linha sem adset_id - descartada", func(t *testing.T) {
		rows := []metadomain.AdsetInsight{
			{CampaignID: "CAMP1", Spend: "10"},
		}

		assert.Empty(t, AggregateAdsetInsights(rows))
	})

	t.Run("Sem custo direto - custo do resultado vem de gasto por quantidade", func(t *testing.T) {
		rows := []metadomain.AdsetInsight{
			{
				CampaignID:       "CAMP1",
				AdsetID:          "ADSET1",
				OptimizationGoal: "LEAD_GENERATION",
				Spend:            "100",
				Actions: []metadomain.ActionEntry{
					{ActionType: "lead", Value: "10"},
				},
			},
		}

		bundle := AggregateAdsetInsights(rows)["CAMP1"][0]

		if assert.NotNil(t, bundle.ResultCost) {
			assert.Equal(t, 10.0, *bundle.ResultCost)
		}
	})

	t.Run("Acao quebrada por janelas - quantidade vem da soma das janelas", func(t *testing.T) {
		rows := []metadomain.AdsetInsight{
			{
				CampaignID:       "CAMP1",
				AdsetID:          "ADSET1",
				OptimizationGoal: "CONVERSATIONS",
				Spend:            "50",
				Actions: []metadomain.ActionEntry{
					{
						ActionType: "onsite_conversion.messaging_conversation_started_7d",
						Fields:     map[string]string{"7d_click": "3", "1d_view": "2"},
					},
				},
			},
		}

		bundle := AggregateAdsetInsights(rows)["CAMP1"][0]

		assert.Equal(t, "onsite_conversion.messaging_conversation_started_7d", bundle.Result.Type)
		assert.Equal(t, 5, bundle.Result.Quantity)
	})

	t.Run("Conjunto sem nenhuma acao - resultado zerado mas rotulado", func(t *testing.T) {
		rows := []metadomain.AdsetInsight{
			{
				CampaignID:       "CAMP1",
				AdsetID:          "ADSET1",
				OptimizationGoal: "LEAD_GENERATION",
				Spend:            "25",
			},
		}

		bundle := AggregateAdsetInsights(rows)["CAMP1"][0]

		assert.Equal(t, "lead", bundle.Result.Type)
		assert.Equal(t, "Leads", bundle.Result.Label)
		assert.Equal(t, 0, bundle.Result.Quantity)
		assert.Nil(t, bundle.Result.Cost)
	})

	t.Run("Acoes ordenadas por volume decrescente", func(t *testing.T) {
		rows := []metadomain.AdsetInsight{
			{
				CampaignID: "CAMP1",
				AdsetID:    "ADSET1",
				Actions: []metadomain.ActionEntry{
					{ActionType: "lead", Value: "3"},
					{ActionType: "link_click", Value: "80"},
					{ActionType: "landing_page_view", Value: "40"},
				},
			},
		}

		bundle := AggregateAdsetInsights(rows)["CAMP1"][0]

		assert.Equal(t, "link_click", bundle.Actions[0].Type)
		assert.Equal(t, "landing_page_view", bundle.Actions[1].Type)
		assert.Equal(t, "lead", bundle.Actions[2].Type)
	})
}
