package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

const integrationsTable = "integrations i"

type IntegrationRepository interface {
	GetByTenantID(tenantID int) (*domain.Integration, error)
}

type integrationRepository struct {
	conn *postgres.Connection
}

func NewIntegrationRepository(conn *postgres.Connection) IntegrationRepository {
	return &integrationRepository{
		conn: conn,
	}
}

func (r *integrationRepository) GetByTenantID(tenantID int) (*domain.Integration, error) {
	integrationSQL, integrationArgs, err := squirrel.
		Select("i.id, i.tenant_id, i.access_token, i.app_secret").
		From(integrationsTable).
		Where(squirrel.Eq{"i.tenant_id": tenantID}).
		OrderBy("i.id DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(integrationSQL, integrationArgs...)

	integration := &domain.Integration{}
	if err := row.Scan(
		&integration.ID,
		&integration.TenantID,
		&integration.AccessToken,
		&integration.AppSecret,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return integration, nil
}
