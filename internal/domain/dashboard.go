package domain

import (
	"time"

	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// DateRange representa uma janela de datas no formato YYYY-MM-DD da API.
type DateRange struct {
	Since time.Time `json:"since"`
	Until time.Time `json:"until"`
}

// DashboardFilters são os filtros opcionais aplicados sobre as campanhas.
// Todos os valores são normalizados para comparação (upper-case, exceto goals
// que seguem os buckets canônicos).
type DashboardFilters struct {
	CampaignIDs []string `json:"campaign_ids,omitempty"`
	Objectives  []string `json:"objectives,omitempty"`
	Statuses    []string `json:"statuses,omitempty"`
	Goals       []string `json:"goals,omitempty"`
}

// Active indica se algum filtro foi de fato informado pelo chamador.
func (f *DashboardFilters) Active() bool {
	if f == nil {
		return false
	}
	return len(f.CampaignIDs) > 0 || len(f.Objectives) > 0 || len(f.Statuses) > 0 || len(f.Goals) > 0
}

// DashboardRequest é a entrada do builder de dashboard.
type DashboardRequest struct {
	TenantID   int
	AccountIDs []string
	Period     *DateRange
	Previous   *DateRange
	Filters    DashboardFilters
}

// MetricTotals acumula métricas agregadas. CostPerResult nunca é somado:
// é recalculado como ResultSpend/Results a cada acumulação.
type MetricTotals struct {
	Spend         float64  `json:"spend"`
	ResultSpend   float64  `json:"result_spend"`
	Impressions   int      `json:"impressions"`
	Clicks        int      `json:"clicks"`
	Leads         int      `json:"leads"`
	Results       int      `json:"results"`
	CostPerResult *float64 `json:"custo_por_resultado"`
}

// Accumulate soma campo a campo e recalcula o custo por resultado.
func (t *MetricTotals) Accumulate(other *MetricTotals) {
	if other == nil {
		return
	}

	t.Spend += other.Spend
	t.ResultSpend += other.ResultSpend
	t.Impressions += other.Impressions
	t.Clicks += other.Clicks
	t.Leads += other.Leads
	t.Results += other.Results

	t.RefreshCostPerResult()
}

// RefreshCostPerResult recalcula CostPerResult a partir de ResultSpend e
// Results. Com zero resultados o custo fica nulo, nunca zero.
func (t *MetricTotals) RefreshCostPerResult() {
	if t.Results > 0 {
		cost := utils.RoundWithTwoDecimalPlace(t.ResultSpend / float64(t.Results))
		t.CostPerResult = &cost
		return
	}

	t.CostPerResult = nil
}

// AdsetAction é uma ação agregada de um conjunto de anúncios.
type AdsetAction struct {
	Type     string   `json:"tipo"`
	Label    string   `json:"label"`
	Quantity int      `json:"quantidade"`
	Cost     *float64 `json:"custo"`
}

// AdsetBundle é a visão finalizada de um conjunto de anúncios, com o
// resultado oficial já resolvido.
type AdsetBundle struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	CampaignID       string        `json:"campaign_id"`
	OptimizationGoal string        `json:"optimization_goal"`
	Goal             string        `json:"goal"`
	Spend            float64       `json:"spend"`
	Impressions      int           `json:"impressions"`
	Clicks           int           `json:"clicks"`
	Reach            int           `json:"reach"`
	Leads            int           `json:"leads"`
	Actions          []AdsetAction `json:"actions"`
	Result           AdsetAction   `json:"resultado"`
	ResultQuantity   int           `json:"result_quantity"`
	ResultCost       *float64      `json:"result_cost"`
}

// ActionQuantity retorna a quantidade agregada para um tipo de ação.
func (b *AdsetBundle) ActionQuantity(actionType string) int {
	for i := range b.Actions {
		if b.Actions[i].Type == actionType {
			return b.Actions[i].Quantity
		}
	}
	return 0
}

// ActionCost retorna o custo por ação observado para um tipo, se houver.
func (b *AdsetBundle) ActionCost(actionType string) *float64 {
	for i := range b.Actions {
		if b.Actions[i].Type == actionType {
			return b.Actions[i].Cost
		}
	}
	return nil
}

// ResultByType é uma linha do detalhamento do resultado por tipo de ação.
type ResultByType struct {
	Type     string   `json:"tipo"`
	Label    string   `json:"label"`
	Quantity int      `json:"quantidade"`
	Cost     *float64 `json:"custo"`
}

// AdsetResultRow alimenta a tabela de detalhamento por conjunto na UI.
// Type é nulo quando o resultado veio da soma de vários tipos.
type AdsetResultRow struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	OptimizationGoal string   `json:"optimization_goal"`
	Type             *string  `json:"tipo"`
	Label            string   `json:"label"`
	Quantity         int      `json:"quantidade"`
	Cost             *float64 `json:"custo"`
	Spend            float64  `json:"spend"`
	Impressions      int      `json:"impressions"`
	Clicks           int      `json:"clicks"`
}

// CampaignResultSummary é o resultado oficial escolhido para a campanha.
// Quantity fica nulo quando o objetivo da campanha não tem regra mapeada.
type CampaignResultSummary struct {
	Label         string           `json:"label"`
	Quantity      *int             `json:"quantidade"`
	CostPerResult *float64         `json:"custo_por_resultado"`
	Goal          string           `json:"goal"`
	ByType        []ResultByType   `json:"por_tipo"`
	Adsets        []AdsetResultRow `json:"adsets"`
}

type DashboardCampaignMetrics struct {
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	Status    string                `json:"status"`
	Objective string                `json:"objective"`
	Totals    MetricTotals          `json:"totals"`
	Result    CampaignResultSummary `json:"resultado"`
}

type DashboardAccountMetrics struct {
	AccountID string                      `json:"account_id"`
	Name      string                      `json:"name"`
	Campaigns []*DashboardCampaignMetrics `json:"campaigns"`
	Totals    MetricTotals                `json:"totals"`
}

// MetaDashboardResult é a estrutura final devolvida ao chamador. O core não
// define formato de transporte; o handler apenas a serializa.
type MetaDashboardResult struct {
	Accounts       []*DashboardAccountMetrics `json:"accounts"`
	Totals         MetricTotals               `json:"totals"`
	PreviousTotals *MetricTotals              `json:"previous_totals,omitempty"`
	Period         *DateRange                 `json:"period,omitempty"`
	PreviousPeriod *DateRange                 `json:"previous_period,omitempty"`
}
