package repository

import (
	"context"
	"fmt"

	"github.com/CrisDa7/activeGym/internal/models"
)

// CreateSale вставляет новую продажу и возвращает её ID.
func (s *Storage) CreateSale(ctx context.Context, sale models.Sale) (int, error) {
	const op = "storage.CreateSale"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO sales (product, quantity, unit_price, total)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		sale.Product, sale.Quantity, sale.UnitPrice, sale.Total).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// UpdateSale обновляет продажу по ID, включая пересчитанный итог,
// и возвращает количество изменённых строк.
func (s *Storage) UpdateSale(ctx context.Context, sale models.Sale, id int) (int, error) {
	const op = "storage.UpdateSale"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE sales
			  SET product = $1, quantity = $2, unit_price = $3, total = $4
			  WHERE id = $5`
	result, err := s.DB.ExecContext(ctx, query,
		sale.Product, sale.Quantity, sale.UnitPrice, sale.Total, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveSale удаляет продажу по ID и возвращает количество удалённых строк.
func (s *Storage) RemoveSale(ctx context.Context, id int) (int, error) {
	const op = "storage.RemoveSale"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM sales WHERE id = $1`
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

// ListSales возвращает все продажи, новые первыми.
func (s *Storage) ListSales(ctx context.Context) ([]*models.Sale, error) {
	const op = "storage.ListSales"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, product, quantity, unit_price, total, created_at
			  FROM sales
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var result []*models.Sale
	for rows.Next() {
		var item models.Sale
		if err := rows.Scan(&item.ID, &item.Product, &item.Quantity,
			&item.UnitPrice, &item.Total, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
