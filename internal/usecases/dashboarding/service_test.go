package dashboarding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	repomocks "github.com/vfg2006/ads-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/dashboarding/mocks"
	"go.uber.org/mock/gomock"
)

const tenantID = 42

var testCreds = domain.Credentials{AccessToken: "token", AppSecret: "secret"}

func activeAccount(externalID, name string) *domain.AdAccount {
	return &domain.AdAccount{
		ID:         1,
		ExternalID: externalID,
		Name:       name,
		Status:     domain.AdAccountStatusActive,
		TenantID:   tenantID,
	}
}

func campaignMetricsWith(id string, spend float64, results int) *domain.DashboardCampaignMetrics {
	metrics := &domain.DashboardCampaignMetrics{
		ID: id,
		Totals: domain.MetricTotals{
			Spend:       spend,
			ResultSpend: spend,
			Results:     results,
		},
	}
	metrics.Totals.RefreshCostPerResult()

	return metrics
}

func newServiceForTest(t *testing.T) (*Service, *mocks.MockInsighter, *repomocks.MockAccountRepository, *repomocks.MockIntegrationRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockInsighter := mocks.NewMockInsighter(ctrl)
	mockAccountRepo := repomocks.NewMockAccountRepository(ctrl)
	mockIntegrationRepo := repomocks.NewMockIntegrationRepository(ctrl)

	service := &Service{
		insighter:             mockInsighter,
		accountRepository:     mockAccountRepo,
		integrationRepository: mockIntegrationRepo,
	}

	return service, mockInsighter, mockAccountRepo, mockIntegrationRepo
}

func expectIntegration(mockIntegrationRepo *repomocks.MockIntegrationRepository) {
	mockIntegrationRepo.EXPECT().
		GetByTenantID(tenantID).
		Return(&domain.Integration{
			TenantID:    tenantID,
			AccessToken: testCreds.AccessToken,
			AppSecret:   testCreds.AppSecret,
		}, nil)
}

func TestBuildDashboard(t *testing.T) {
	t.Run("Conta unica sem filtros - campanhas consolidadas e totais acumulados", func(t *testing.T) {
		service, mockInsighter, mockAccountRepo, mockIntegrationRepo := newServiceForTest(t)

		expectIntegration(mockIntegrationRepo)

		mockAccountRepo.EXPECT().
			ListAccounts(tenantID, []domain.AdAccountStatus{domain.AdAccountStatusActive}).
			Return([]*domain.AdAccount{activeAccount("ACC1", "Loja A")}, nil)

		campaigns := []domain.Campaign{
			{ID: "C1", Objective: "OUTCOME_LEADS"},
			{ID: "C2", Objective: "OUTCOME_TRAFFIC"},
		}
		bundles := map[string][]*domain.AdsetBundle{
			"C1": {{ID: "A1", CampaignID: "C1"}},
		}

		mockInsighter.EXPECT().FetchCampaigns(testCreds, "ACC1").Return(campaigns, nil)
		mockInsighter.EXPECT().FetchAdsetBundles(testCreds, "ACC1", nil).Return(bundles, nil)
		mockInsighter.EXPECT().CampaignMetrics(campaigns[0], bundles["C1"]).Return(campaignMetricsWith("C1", 100, 10))
		mockInsighter.EXPECT().CampaignMetrics(campaigns[1], nil).Return(campaignMetricsWith("C2", 300, 5))

		result, err := service.BuildDashboard(&domain.DashboardRequest{TenantID: tenantID})

		assert.NoError(t, err)
		if assert.Len(t, result.Accounts, 1) {
			account := result.Accounts[0]
			assert.Equal(t, "Loja A", account.Name)

			// Campanhas ordenadas por gasto decrescente.
			assert.Equal(t, "C2", account.Campaigns[0].ID)
			assert.Equal(t, "C1", account.Campaigns[1].ID)

			assert.Equal(t, 400.0, account.Totals.Spend)
			assert.Equal(t, 15, account.Totals.Results)
		}

		assert.Equal(t, 400.0, result.Totals.Spend)
		assert.Equal(t, 15, result.Totals.Results)

		// Custo por resultado dos totais é recalculado, nunca somado.
		if assert.NotNil(t, result.Totals.CostPerResult) {
			assert.InDelta(t, 400.0/15.0, *result.Totals.CostPerResult, 0.01)
		}
	})

	t.Run("Filtro de objetivo - so as campanhas do bucket entram", func(t *testing.T) {
		service, mockInsighter, mockAccountRepo, mockIntegrationRepo := newServiceForTest(t)

		expectIntegration(mockIntegrationRepo)

		mockAccountRepo.EXPECT().
			ListAccounts(tenantID, gomock.Any()).
			Return([]*domain.AdAccount{activeAccount("ACC1", "Loja A")}, nil)

		campaigns := []domain.Campaign{
			{ID: "C1", Objective: "OUTCOME_LEADS"},
			{ID: "C2", Objective: "OUTCOME_TRAFFIC"},
		}

		mockInsighter.EXPECT().FetchCampaigns(testCreds, "ACC1").Return(campaigns, nil)
		mockInsighter.EXPECT().FetchAdsetBundles(testCreds, "ACC1", nil).Return(nil, nil)
		mockInsighter.EXPECT().CampaignMetrics(campaigns[0], nil).Return(campaignMetricsWith("C1", 100, 10))

		result, err := service.BuildDashboard(&domain.DashboardRequest{
			TenantID: tenantID,
			Filters:  domain.DashboardFilters{Objectives: []string{"leads"}},
		})

		assert.NoError(t, err)
		if assert.Len(t, result.Accounts[0].Campaigns, 1) {
			assert.Equal(t, "C1", result.Accounts[0].Campaigns[0].ID)
		}
	})

	t.Run("Filtro ativo sem correspondencia - conta fica sem campanhas", func(t *testing.T) {
		service, mockInsighter, mockAccountRepo, mockIntegrationRepo := newServiceForTest(t)

		expectIntegration(mockIntegrationRepo)

		mockAccountRepo.EXPECT().
			ListAccounts(tenantID, gomock.Any()).
			Return([]*domain.AdAccount{activeAccount("ACC1", "Loja A")}, nil)

		campaigns := []domain.Campaign{
			{ID: "C1", Objective: "OUTCOME_LEADS"},
		}

		mockInsighter.EXPECT().FetchCampaigns(testCreds, "ACC1").Return(campaigns, nil)
		mockInsighter.EXPECT().FetchAdsetBundles(testCreds, "ACC1", nil).Return(nil, nil)

		result, err := service.BuildDashboard(&domain.DashboardRequest{
			TenantID: tenantID,
			Filters:  domain.DashboardFilters{CampaignIDs: []string{"INEXISTENTE"}},
		})

		assert.NoError(t, err)
		assert.Len(t, result.Accounts[0].Campaigns, 0)
		assert.Equal(t, 0.0, result.Totals.Spend)
	})

	t.Run("Sem filtro ativo e sem insights - lista completa com metricas zeradas", func(t *testing.T) {
		service, mockInsighter, mockAccountRepo, mockIntegrationRepo := newServiceForTest(t)

		expectIntegration(mockIntegrationRepo)

		mockAccountRepo.EXPECT().
			ListAccounts(tenantID, gomock.Any()).
			Return([]*domain.AdAccount{activeAccount("ACC1", "Loja A")}, nil)

		campaigns := []domain.Campaign{
			{ID: "C1", Objective: "OUTCOME_LEADS"},
			{ID: "C2", Objective: "OUTCOME_TRAFFIC"},
		}

		mockInsighter.EXPECT().FetchCampaigns(testCreds, "ACC1").Return(campaigns, nil)
		mockInsighter.EXPECT().FetchAdsetBundles(testCreds, "ACC1", nil).Return(nil, nil)
		mockInsighter.EXPECT().CampaignMetrics(campaigns[0], nil).Return(campaignMetricsWith("C1", 0, 0))
		mockInsighter.EXPECT().CampaignMetrics(campaigns[1], nil).Return(campaignMetricsWith("C2", 0, 0))

		result, err := service.BuildDashboard(&domain.DashboardRequest{TenantID: tenantID})

		assert.NoError(t, err)
		assert.Len(t, result.Accounts[0].Campaigns, 2)
		assert.Equal(t, 0.0, result.Totals.Spend)
		assert.Nil(t, result.Totals.CostPerResult)
	})

	t.Run("Varias contas - ordenadas por gasto decrescente", func(t *testing.T) {
		service, mockInsighter, mockAccountRepo, mockIntegrationRepo := newServiceForTest(t)

		expectIntegration(mockIntegrationRepo)

		// O repositório devolve a conta de menor gasto primeiro.
		mockAccountRepo.EXPECT().
			ListAccounts(tenantID, gomock.Any()).
			Return([]*domain.AdAccount{
				activeAccount("ACC_BAIXA", "Loja B"),
				activeAccount("ACC_ALTA", "Loja A"),
			}, nil)

		lowCampaigns := []domain.Campaign{{ID: "C1", Objective: "OUTCOME_LEADS"}}
		highCampaigns := []domain.Campaign{{ID: "C2", Objective: "OUTCOME_LEADS"}}

		mockInsighter.EXPECT().FetchCampaigns(testCreds, "ACC_BAIXA").Return(lowCampaigns, nil)
		mockInsighter.EXPECT().FetchAdsetBundles(testCreds, "ACC_BAIXA", nil).Return(nil, nil)
		mockInsighter.EXPECT().CampaignMetrics(lowCampaigns[0], nil).Return(campaignMetricsWith("C1", 10, 1))

		mockInsighter.EXPECT().FetchCampaigns(testCreds, "ACC_ALTA").Return(highCampaigns, nil)
		mockInsighter.EXPECT().FetchAdsetBundles(testCreds, "ACC_ALTA", nil).Return(nil, nil)
		mockInsighter.EXPECT().CampaignMetrics(highCampaigns[0], nil).Return(campaignMetricsWith("C2", 900, 9))

		result, err := service.BuildDashboard(&domain.DashboardRequest{TenantID: tenantID})

		assert.NoError(t, err)
		if assert.Len(t, result.Accounts, 2) {
			assert.Equal(t, "ACC_ALTA", result.Accounts[0].AccountID)
			assert.Equal(t, "ACC_BAIXA", result.Accounts[1].AccountID)
		}
	})

	t.Run("Filtro de meta - compara com a meta dominante da campanha", func(t *testing.T) {
		service, mockInsighter, mockAccountRepo, mockIntegrationRepo := newServiceForTest(t)

		expectIntegration(mockIntegrationRepo)

		mockAccountRepo.EXPECT().
			ListAccounts(tenantID, gomock.Any()).
			Return([]*domain.AdAccount{activeAccount("ACC1", "Loja A")}, nil)

		campaigns := []domain.Campaign{
			{ID: "C1", Objective: "OUTCOME_SALES"},
			{ID: "C2", Objective: "OUTCOME_LEADS"},
		}

		// C1 é dominada por PURCHASE; o conjunto residual de leads sem gasto
		// não pode segurar a campanha no filtro de meta.
		bundles := map[string][]*domain.AdsetBundle{
			"C1": {
				{ID: "A1", CampaignID: "C1", Goal: metadomain.GoalPurchase, Spend: 500},
				{ID: "A2", CampaignID: "C1", Goal: metadomain.GoalLeadGeneration, Spend: 0},
			},
			"C2": {
				{ID: "A3", CampaignID: "C2", Goal: metadomain.GoalLeadGeneration, Spend: 50},
			},
		}

		mockInsighter.EXPECT().FetchCampaigns(testCreds, "ACC1").Return(campaigns, nil)
		mockInsighter.EXPECT().FetchAdsetBundles(testCreds, "ACC1", nil).Return(bundles, nil)
		mockInsighter.EXPECT().CampaignMetrics(campaigns[1], bundles["C2"]).Return(campaignMetricsWith("C2", 50, 5))

		result, err := service.BuildDashboard(&domain.DashboardRequest{
			TenantID: tenantID,
			Filters:  domain.DashboardFilters{Goals: []string{metadomain.GoalLeadGeneration}},
		})

		assert.NoError(t, err)
		if assert.Len(t, result.Accounts[0].Campaigns, 1) {
			assert.Equal(t, "C2", result.Accounts[0].Campaigns[0].ID)
		}
	})

	t.Run("Comparacao com periodo anterior - mesma consulta na janela deslocada", func(t *testing.T) {
		service, mockInsighter, mockAccountRepo, mockIntegrationRepo := newServiceForTest(t)

		expectIntegration(mockIntegrationRepo)

		account := activeAccount("ACC1", "Loja A")
		mockAccountRepo.EXPECT().
			GetAccountByExternalID(tenantID, "ACC1").
			Return(account, nil)

		period := &domain.DateRange{
			Since: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			Until: time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
		}
		previous := &domain.DateRange{
			Since: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			Until: time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
		}

		campaigns := []domain.Campaign{{ID: "C1", Objective: "OUTCOME_LEADS"}}

		// A lista de campanhas é buscada uma única vez e reaproveitada na
		// janela anterior.
		mockInsighter.EXPECT().FetchCampaigns(testCreds, "ACC1").Return(campaigns, nil).Times(1)
		mockInsighter.EXPECT().FetchAdsetBundles(testCreds, "ACC1", period).Return(nil, nil)
		mockInsighter.EXPECT().FetchAdsetBundles(testCreds, "ACC1", previous).Return(nil, nil)
		mockInsighter.EXPECT().CampaignMetrics(campaigns[0], nil).Return(campaignMetricsWith("C1", 100, 10))
		mockInsighter.EXPECT().CampaignMetrics(campaigns[0], nil).Return(campaignMetricsWith("C1", 80, 8))

		result, err := service.BuildDashboard(&domain.DashboardRequest{
			TenantID:   tenantID,
			AccountIDs: []string{"ACC1"},
			Period:     period,
			Previous:   previous,
		})

		assert.NoError(t, err)
		assert.Equal(t, 100.0, result.Totals.Spend)
		if assert.NotNil(t, result.PreviousTotals) {
			assert.Equal(t, 80.0, result.PreviousTotals.Spend)
			assert.Equal(t, 8, result.PreviousTotals.Results)
		}
	})

	t.Run("Periodo invertido - requisicao rejeitada", func(t *testing.T) {
		service, _, _, _ := newServiceForTest(t)

		_, err := service.BuildDashboard(&domain.DashboardRequest{
			TenantID: tenantID,
			Period: &domain.DateRange{
				Since: time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
				Until: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			},
		})

		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})

	t.Run("Tenant sem integracao nem credencial padrao - erro", func(t *testing.T) {
		service, _, _, mockIntegrationRepo := newServiceForTest(t)

		mockIntegrationRepo.EXPECT().GetByTenantID(tenantID).Return(nil, nil)

		_, err := service.BuildDashboard(&domain.DashboardRequest{TenantID: tenantID})

		assert.ErrorIs(t, err, ErrMissingCredentials)
	})

	t.Run("Nenhuma conta pedida existe - erro de conta nao encontrada", func(t *testing.T) {
		service, _, mockAccountRepo, mockIntegrationRepo := newServiceForTest(t)

		expectIntegration(mockIntegrationRepo)

		mockAccountRepo.EXPECT().
			GetAccountByExternalID(tenantID, "ACC_X").
			Return(nil, nil)

		_, err := service.BuildDashboard(&domain.DashboardRequest{
			TenantID:   tenantID,
			AccountIDs: []string{"ACC_X"},
		})

		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestCampaignCreativeReport(t *testing.T) {
	t.Run("Campanha encontrada - relatorio delegado ao integrador", func(t *testing.T) {
		service, mockInsighter, mockAccountRepo, mockIntegrationRepo := newServiceForTest(t)

		expectIntegration(mockIntegrationRepo)

		account := activeAccount("ACC1", "Loja A")
		mockAccountRepo.EXPECT().GetAccountByExternalID(tenantID, "ACC1").Return(account, nil)

		campaigns := []domain.Campaign{{ID: "C1", Objective: "OUTCOME_LEADS"}}
		reports := []*domain.CampaignCreativeReport{{CreativeID: "CR1"}}

		mockInsighter.EXPECT().FetchCampaigns(testCreds, "ACC1").Return(campaigns, nil)
		mockInsighter.EXPECT().BuildCreativeReport(testCreds, campaigns[0]).Return(reports, nil)

		result, err := service.CampaignCreativeReport(tenantID, "ACC1", "C1")

		assert.NoError(t, err)
		assert.Equal(t, reports, result)
	})

	t.Run("Campanha inexistente na conta - erro", func(t *testing.T) {
		service, mockInsighter, mockAccountRepo, mockIntegrationRepo := newServiceForTest(t)

		expectIntegration(mockIntegrationRepo)

		account := activeAccount("ACC1", "Loja A")
		mockAccountRepo.EXPECT().GetAccountByExternalID(tenantID, "ACC1").Return(account, nil)
		mockInsighter.EXPECT().FetchCampaigns(testCreds, "ACC1").Return([]domain.Campaign{}, nil)

		_, err := service.CampaignCreativeReport(tenantID, "ACC1", "C_X")

		assert.ErrorIs(t, err, ErrCampaignNotFound)
	})
}
