package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/dashfy/client-dashboard-api/infrastructure/database/postgres"
	"github.com/dashfy/client-dashboard-api/internal/domain"
)

const dashboardsTable = "dashboards"

type DashboardRepository interface {
	CreateDashboard(dashboard *domain.Dashboard) (*domain.Dashboard, error)
	GetDashboardByID(dashboardID int) (*domain.Dashboard, error)
	ListDashboards() ([]*domain.Dashboard, error)
}

type dashboardRepository struct {
	conn *postgres.Connection
}

func NewDashboardRepository(conn *postgres.Connection) DashboardRepository {
	return &dashboardRepository{
		conn: conn,
	}
}

func (r *dashboardRepository) CreateDashboard(dashboard *domain.Dashboard) (*domain.Dashboard, error) {
	queryBuilder := squirrel.
		Insert(dashboardsTable).
		Columns("name", "business_model", "sheets_url", "client_password_hash").
		Values(dashboard.Name, dashboard.BusinessModel, dashboard.SheetsURL, dashboard.ClientPasswordHash).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	insertSQL, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(insertSQL, args...).Scan(
		&dashboard.ID,
		&dashboard.CreatedAt,
		&dashboard.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return dashboard, nil
}

func (r *dashboardRepository) GetDashboardByID(dashboardID int) (*domain.Dashboard, error) {
	queryBuilder := squirrel.
		Select("id", "name", "business_model", "sheets_url", "client_password_hash", "created_at", "updated_at").
		From(dashboardsTable).
		Where(squirrel.Eq{"id": dashboardID}).
		PlaceholderFormat(squirrel.Dollar)

	selectSQL, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	var dashboard domain.Dashboard
	err = r.conn.QueryRow(selectSQL, args...).Scan(
		&dashboard.ID,
		&dashboard.Name,
		&dashboard.BusinessModel,
		&dashboard.SheetsURL,
		&dashboard.ClientPasswordHash,
		&dashboard.CreatedAt,
		&dashboard.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &dashboard, nil
}

func (r *dashboardRepository) ListDashboards() ([]*domain.Dashboard, error) {
	queryBuilder := squirrel.
		Select("id", "name", "business_model", "sheets_url", "client_password_hash", "created_at", "updated_at").
		From(dashboardsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	selectSQL, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(selectSQL, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dashboards []*domain.Dashboard
	for rows.Next() {
		var dashboard domain.Dashboard
		if err := rows.Scan(
			&dashboard.ID,
			&dashboard.Name,
			&dashboard.BusinessModel,
			&dashboard.SheetsURL,
			&dashboard.ClientPasswordHash,
			&dashboard.CreatedAt,
			&dashboard.UpdatedAt,
		); err != nil {
			return nil, err
		}

		dashboards = append(dashboards, &dashboard)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return dashboards, nil
}
