package repository

import (
	"github.com/Masterminds/squirrel"

	"github.com/dashfy/client-dashboard-api/infrastructure/database/postgres"
	"github.com/dashfy/client-dashboard-api/internal/domain"
)

const operationalCostsTable = "operational_costs"

type OperationalCostRepository interface {
	CreateCost(cost *domain.OperationalCost) (*domain.OperationalCost, error)
	GetByDashboard(dashboardID int, dateRange domain.DateRange) ([]*domain.OperationalCost, error)
}

type operationalCostRepository struct {
	conn *postgres.Connection
}

func NewOperationalCostRepository(conn *postgres.Connection) OperationalCostRepository {
	return &operationalCostRepository{
		conn: conn,
	}
}

func (r *operationalCostRepository) CreateCost(cost *domain.OperationalCost) (*domain.OperationalCost, error) {
	queryBuilder := squirrel.
		Insert(operationalCostsTable).
		Columns("dashboard_id", "description", "amount", "date_from", "date_to").
		Values(cost.DashboardID, cost.Description, cost.Amount, cost.DateFrom, cost.DateTo).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	insertSQL, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(insertSQL, args...).Scan(&cost.ID, &cost.CreatedAt)
	if err != nil {
		return nil, err
	}

	return cost, nil
}

func (r *operationalCostRepository) GetByDashboard(dashboardID int, dateRange domain.DateRange) ([]*domain.OperationalCost, error) {
	queryBuilder := squirrel.
		Select("id", "dashboard_id", "description", "amount", "date_from", "date_to", "created_at").
		From(operationalCostsTable).
		Where(squirrel.Eq{"dashboard_id": dashboardID}).
		OrderBy("date_from ASC").
		PlaceholderFormat(squirrel.Dollar)

	// Filtro por interseção de vigência, não contenção: um custo que começa
	// antes ou termina depois da janela ainda pertence a ela
	if dateRange.To != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"date_from": *dateRange.To})
	}

	if dateRange.From != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"date_to": *dateRange.From})
	}

	selectSQL, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(selectSQL, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var costs []*domain.OperationalCost
	for rows.Next() {
		var cost domain.OperationalCost
		if err := rows.Scan(
			&cost.ID,
			&cost.DashboardID,
			&cost.Description,
			&cost.Amount,
			&cost.DateFrom,
			&cost.DateTo,
			&cost.CreatedAt,
		); err != nil {
			return nil, err
		}

		costs = append(costs, &cost)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return costs, nil
}
