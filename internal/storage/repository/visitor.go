package repository

import (
	"context"
	"fmt"

	"github.com/CrisDa7/activeGym/internal/models"
)

// CreateVisitorBatch вставляет новую группу разовых посетителей
// и возвращает её ID.
func (s *Storage) CreateVisitorBatch(ctx context.Context, batch models.VisitorBatch) (int, error) {
	const op = "storage.CreateVisitorBatch"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO daily_visitors (visitor_count, price_per_visitor, total)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		batch.VisitorCount, batch.PricePerVisitor, batch.Total).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// UpdateVisitorBatch обновляет группу посетителей по ID, включая
// пересчитанный итог, и возвращает количество изменённых строк.
func (s *Storage) UpdateVisitorBatch(ctx context.Context, batch models.VisitorBatch, id int) (int, error) {
	const op = "storage.UpdateVisitorBatch"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE daily_visitors
			  SET visitor_count = $1, price_per_visitor = $2, total = $3
			  WHERE id = $4`
	result, err := s.DB.ExecContext(ctx, query,
		batch.VisitorCount, batch.PricePerVisitor, batch.Total, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveVisitorBatch удаляет группу посетителей по ID и возвращает
// количество удалённых строк.
func (s *Storage) RemoveVisitorBatch(ctx context.Context, id int) (int, error) {
	const op = "storage.RemoveVisitorBatch"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM daily_visitors WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListVisitorBatches возвращает все группы посетителей, новые первыми.
func (s *Storage) ListVisitorBatches(ctx context.Context) ([]*models.VisitorBatch, error) {
	const op = "storage.ListVisitorBatches"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, visitor_count, price_per_visitor, total, created_at
			  FROM daily_visitors
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var result []*models.VisitorBatch
	for rows.Next() {
		var item models.VisitorBatch
		if err := rows.Scan(&item.ID, &item.VisitorCount, &item.PricePerVisitor,
			&item.Total, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
