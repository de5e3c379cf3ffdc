package dashboarding

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// Service monta o dashboard de anúncios de um tenant: resolve credenciais e
// contas nos repositórios, busca e consolida as métricas pelo integrador e
// acumula os totais por conta e gerais.
type Service struct {
	cfg                   *config.Config
	insighter             Insighter
	accountRepository     repository.AccountRepository
	integrationRepository repository.IntegrationRepository
}

func NewService(
	cfg *config.Config,
	insighter Insighter,
	accountRepository repository.AccountRepository,
	integrationRepository repository.IntegrationRepository,
) Dashboarder {
	return &Service{
		cfg:                   cfg,
		insighter:             insighter,
		accountRepository:     accountRepository,
		integrationRepository: integrationRepository,
	}
}

func (s *Service) BuildDashboard(request *domain.DashboardRequest) (*domain.MetaDashboardResult, error) {
	if request == nil {
		return nil, ErrInvalidRequest
	}

	if request.Period != nil && request.Period.Since.After(request.Period.Until) {
		return nil, ErrInvalidPeriod
	}

	creds, err := s.credentialsForTenant(request.TenantID)
	if err != nil {
		return nil, err
	}

	accounts, err := s.resolveAccounts(request)
	if err != nil {
		return nil, err
	}

	result := &domain.MetaDashboardResult{
		Accounts:       make([]*domain.DashboardAccountMetrics, 0, len(accounts)),
		Period:         request.Period,
		PreviousPeriod: request.Previous,
	}

	// A lista de campanhas de cada conta é buscada uma única vez e
	// compartilhada com a passada do período anterior, para que os dois
	// períodos filtrem exatamente o mesmo conjunto.
	campaignsByAccount := make(map[string][]domain.Campaign, len(accounts))

	for _, account := range accounts {
		campaigns, err := s.insighter.FetchCampaigns(creds, account.ExternalID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ExternalID,
				"error":      err.Error(),
			}).Error("dashboard: falha ao listar campanhas da conta")
			return nil, err
		}
		campaignsByAccount[account.ExternalID] = campaigns

		accountMetrics, err := s.buildAccountMetrics(creds, account, campaigns, request.Period, &request.Filters)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ExternalID,
				"error":      err.Error(),
			}).Error("dashboard: falha ao montar métricas da conta")
			return nil, err
		}

		result.Accounts = append(result.Accounts, accountMetrics)
		result.Totals.Accumulate(&accountMetrics.Totals)
	}

	// Contas de maior gasto primeiro.
	sort.SliceStable(result.Accounts, func(i, j int) bool {
		return result.Accounts[i].Totals.Spend > result.Accounts[j].Totals.Spend
	})

	// O período anterior repete a mesma consulta, mesmos filtros, só com a
	// janela deslocada; apenas os totais entram na resposta.
	if request.Previous != nil {
		previousTotals := &domain.MetricTotals{}

		for _, account := range accounts {
			accountMetrics, err := s.buildAccountMetrics(creds, account, campaignsByAccount[account.ExternalID], request.Previous, &request.Filters)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"account_id": account.ExternalID,
					"error":      err.Error(),
				}).Error("dashboard: falha ao montar métricas do período anterior")
				return nil, err
			}

			previousTotals.Accumulate(&accountMetrics.Totals)
		}

		result.PreviousTotals = previousTotals
	}

	return result, nil
}

func (s *Service) CampaignCreativeReport(tenantID int, accountID, campaignID string) ([]*domain.CampaignCreativeReport, error) {
	creds, err := s.credentialsForTenant(tenantID)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepository.GetAccountByExternalID(tenantID, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
	}

	campaigns, err := s.insighter.FetchCampaigns(creds, account.ExternalID)
	if err != nil {
		return nil, err
	}

	for i := range campaigns {
		if campaigns[i].ID == campaignID {
			return s.insighter.BuildCreativeReport(creds, campaigns[i])
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrCampaignNotFound, campaignID)
}

// credentialsForTenant prefere a integração cadastrada do tenant; sem ela,
// cai nas credenciais padrão da aplicação.
func (s *Service) credentialsForTenant(tenantID int) (domain.Credentials, error) {
	integration, err := s.integrationRepository.GetByTenantID(tenantID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"error":     err.Error(),
		}).Error("dashboard: falha ao buscar integração do tenant")
		return domain.Credentials{}, err
	}

	if integration != nil {
		return integration.Credentials(), nil
	}

	if s.cfg != nil && s.cfg.Meta.AccessToken != "" {
		return domain.Credentials{
			AccessToken: s.cfg.Meta.AccessToken,
			AppSecret:   s.cfg.Meta.AppSecret,
		}, nil
	}

	return domain.Credentials{}, fmt.Errorf("%w: tenant %d", ErrMissingCredentials, tenantID)
}

// resolveAccounts materializa as contas pedidas; sem ids explícitos, todas as
// contas ativas do tenant entram no dashboard.
func (s *Service) resolveAccounts(request *domain.DashboardRequest) ([]*domain.AdAccount, error) {
	if len(request.AccountIDs) == 0 {
		return s.accountRepository.ListAccounts(request.TenantID, []domain.AdAccountStatus{domain.AdAccountStatusActive})
	}

	accounts := make([]*domain.AdAccount, 0, len(request.AccountIDs))
	for _, externalID := range request.AccountIDs {
		account, err := s.accountRepository.GetAccountByExternalID(request.TenantID, externalID)
		if err != nil {
			return nil, err
		}

		if account == nil {
			logrus.WithFields(logrus.Fields{
				"tenant_id":  request.TenantID,
				"account_id": externalID,
			}).Warn("dashboard: conta não encontrada para o tenant")
			continue
		}

		accounts = append(accounts, account)
	}

	if len(accounts) == 0 {
		return nil, fmt.Errorf("%w: tenant %d", ErrAccountNotFound, request.TenantID)
	}

	return accounts, nil
}

func (s *Service) buildAccountMetrics(
	creds domain.Credentials,
	account *domain.AdAccount,
	campaigns []domain.Campaign,
	period *domain.DateRange,
	filters *domain.DashboardFilters,
) (*domain.DashboardAccountMetrics, error) {
	bundlesByCampaign, err := s.insighter.FetchAdsetBundles(creds, account.ExternalID, period)
	if err != nil {
		return nil, err
	}

	// Filtro ativo que não casa com nada deixa a conta sem campanhas; sem
	// nenhum filtro ativo a lista completa entra, com métricas zeradas para
	// as campanhas sem insights na janela.
	selected := filterCampaigns(campaigns, bundlesByCampaign, filters)

	accountMetrics := &domain.DashboardAccountMetrics{
		AccountID: account.ExternalID,
		Name:      account.DisplayName(),
		Campaigns: make([]*domain.DashboardCampaignMetrics, 0, len(selected)),
	}

	for _, campaign := range selected {
		metrics := s.insighter.CampaignMetrics(campaign, bundlesByCampaign[campaign.ID])

		accountMetrics.Campaigns = append(accountMetrics.Campaigns, metrics)
		accountMetrics.Totals.Accumulate(&metrics.Totals)
	}

	// Campanhas de maior gasto primeiro.
	sort.SliceStable(accountMetrics.Campaigns, func(i, j int) bool {
		return accountMetrics.Campaigns[i].Totals.Spend > accountMetrics.Campaigns[j].Totals.Spend
	})

	return accountMetrics, nil
}

func filterCampaigns(
	campaigns []domain.Campaign,
	bundlesByCampaign map[string][]*domain.AdsetBundle,
	filters *domain.DashboardFilters,
) []domain.Campaign {
	if !filters.Active() {
		return campaigns
	}

	selected := make([]domain.Campaign, 0, len(campaigns))
	for _, campaign := range campaigns {
		if matchesFilters(campaign, bundlesByCampaign[campaign.ID], filters) {
			selected = append(selected, campaign)
		}
	}

	return selected
}

func matchesFilters(campaign domain.Campaign, bundles []*domain.AdsetBundle, filters *domain.DashboardFilters) bool {
	if len(filters.CampaignIDs) > 0 && !containsFold(filters.CampaignIDs, campaign.ID) {
		return false
	}

	if len(filters.Statuses) > 0 && !containsFold(filters.Statuses, campaign.Status) {
		return false
	}

	if len(filters.Objectives) > 0 {
		// Aceita tanto o objetivo bruto da campanha quanto o bucket.
		bucket := metadomain.NormalizeObjective(campaign.Objective)
		if !containsFold(filters.Objectives, campaign.Objective) && !containsFold(filters.Objectives, bucket) {
			return false
		}
	}

	// O filtro de meta compara com a meta dominante da campanha, o mesmo
	// critério de gasto usado na consolidação; um conjunto residual com
	// outra meta não segura a campanha no resultado.
	if len(filters.Goals) > 0 && !containsFold(filters.Goals, meta.DominantGoal(bundles)) {
		return false
	}

	return true
}

func containsFold(values []string, target string) bool {
	for _, value := range values {
		if strings.EqualFold(value, target) {
			return true
		}
	}
	return false
}
