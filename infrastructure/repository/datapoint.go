package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/dashfy/client-dashboard-api/infrastructure/database/postgres"
	"github.com/dashfy/client-dashboard-api/internal/domain"
)

const dataPointsTable = "dashboard_data"

type DataPointRepository interface {
	// ReplaceForDashboard substitui atomicamente toda a série histórica do
	// dashboard pelo conjunto informado. A fonte de verdade é sempre o estado
	// atual da planilha, então um merge parcial deixaria contadores obsoletos
	// de linhas removidas na origem.
	ReplaceForDashboard(ctx context.Context, dashboardID int, points []*domain.DataPoint) error
	GetByDashboard(dashboardID int, dateRange domain.DateRange) ([]*domain.DataPoint, error)
}

type dataPointRepository struct {
	conn *postgres.Connection
}

func NewDataPointRepository(conn *postgres.Connection) DataPointRepository {
	return &dataPointRepository{
		conn: conn,
	}
}

func (r *dataPointRepository) ReplaceForDashboard(ctx context.Context, dashboardID int, points []*domain.DataPoint) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteSQL, deleteArgs, err := squirrel.
			Delete(dataPointsTable).
			Where(squirrel.Eq{"dashboard_id": dashboardID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return err
		}

		if len(points) == 0 {
			return nil
		}

		queryBuilder := squirrel.
			Insert(dataPointsTable).
			Columns(
				"dashboard_id", "date", "investment", "impressions", "clicks",
				"page_views", "leads", "conversations", "meetings", "negotiations",
				"sales_page_views", "checkouts", "sales", "revenue",
			).
			PlaceholderFormat(squirrel.Dollar)

		for _, p := range points {
			queryBuilder = queryBuilder.Values(
				dashboardID, p.Date, p.Investment, p.Impressions, p.Clicks,
				p.PageViews, p.Leads, p.Conversations, p.Meetings, p.Negotiations,
				p.SalesPageViews, p.Checkouts, p.Sales, p.Revenue,
			)
		}

		insertSQL, insertArgs, err := queryBuilder.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, insertSQL, insertArgs...)
		return err
	})
}

func (r *dataPointRepository) GetByDashboard(dashboardID int, dateRange domain.DateRange) ([]*domain.DataPoint, error) {
	queryBuilder := squirrel.
		Select(
			"id", "dashboard_id", "date", "investment", "impressions", "clicks",
			"page_views", "leads", "conversations", "meetings", "negotiations",
			"sales_page_views", "checkouts", "sales", "revenue",
		).
		From(dataPointsTable).
		Where(squirrel.Eq{"dashboard_id": dashboardID}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar)

	if dateRange.From != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"date": *dateRange.From})
	}

	if dateRange.To != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"date": *dateRange.To})
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

	var points []*domain.DataPoint
	for rows.Next() {
		var p domain.DataPoint
		if err := rows.Scan(
			&p.ID,
			&p.DashboardID,
			&p.Date,
			&p.Investment,
			&p.Impressions,
			&p.Clicks,
			&p.PageViews,
			&p.Leads,
			&p.Conversations,
			&p.Meetings,
			&p.Negotiations,
			&p.SalesPageViews,
			&p.Checkouts,
			&p.Sales,
			&p.Revenue,
		); err != nil {
			return nil, err
		}

		points = append(points, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return points, nil
}
