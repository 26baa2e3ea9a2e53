package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/CrisDa7/activeGym/internal/models"
)

// CreateMember вставляет нового клиента и возвращает его ID.
func (s *Storage) CreateMember(ctx context.Context, member models.Member) (int, error) {
	const op = "storage.CreateMember"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO members (name, surname, weight, phone, monthly_price,
			      start_date, end_date, duration, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		member.Name, member.Surname, member.Weight, member.Phone, member.MonthlyPrice,
		member.StartDate, member.EndDate, member.Duration, member.Status).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// UpdateMember обновляет данные клиента по его ID, включая пересчитанную
// дату окончания, и возвращает количество изменённых строк.
func (s *Storage) UpdateMember(ctx context.Context, member models.Member, id int) (int, error) {
	const op = "storage.UpdateMember"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE members
			  SET name = $1, surname = $2, weight = $3, phone = $4, monthly_price = $5,
			      start_date = $6, end_date = $7, duration = $8, status = $9,
			      updated_at = now()
			  WHERE id = $10`
	result, err := s.DB.ExecContext(ctx, query,
		member.Name, member.Surname, member.Weight, member.Phone, member.MonthlyPrice,
		member.StartDate, member.EndDate, member.Duration, member.Status, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RenewMember перезапускает цикл абонемента: новые даты, срок и цена,
// статус принудительно ACTIVE. Возвращает количество изменённых строк.
func (s *Storage) RenewMember(ctx context.Context, id int, renewal models.Member) (int, error) {
	const op = "storage.RenewMember"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE members
			  SET start_date = $1, end_date = $2, duration = $3, monthly_price = $4,
			      status = $5, updated_at = now()
			  WHERE id = $6`
	result, err := s.DB.ExecContext(ctx, query,
		renewal.StartDate, renewal.EndDate, renewal.Duration, renewal.MonthlyPrice,
		renewal.Status, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveMember удаляет клиента по ID и возвращает количество удалённых строк.
func (s *Storage) RemoveMember(ctx context.Context, id int) (int, error) {
	const op = "storage.RemoveMember"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM members WHERE id = $1`
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

// ReadMember возвращает данные клиента по его ID.
func (s *Storage) ReadMember(ctx context.Context, id int) (*models.Member, error) {
	const op = "storage.ReadMember"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, surname, weight, phone, monthly_price, start_date,
			      end_date, duration, status, created_at, updated_at
			  FROM members WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Member
	err := row.Scan(&result.ID, &result.Name, &result.Surname, &result.Weight,
		&result.Phone, &result.MonthlyPrice, &result.StartDate, &result.EndDate,
		&result.Duration, &result.Status, &result.CreatedAt, &result.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListMembers возвращает всех клиентов, новые записи первыми.
func (s *Storage) ListMembers(ctx context.Context) ([]*models.Member, error) {
	const op = "storage.ListMembers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, surname, weight, phone, monthly_price, start_date,
			      end_date, duration, status, created_at, updated_at
			  FROM members
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var result []*models.Member
	for rows.Next() {
		var item models.Member
		if err := rows.Scan(&item.ID, &item.Name, &item.Surname, &item.Weight,
			&item.Phone, &item.MonthlyPrice, &item.StartDate, &item.EndDate,
			&item.Duration, &item.Status, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListMemberStatusRows возвращает минимальную проекцию всех клиентов
// для пересчёта статусов.
func (s *Storage) ListMemberStatusRows(ctx context.Context) ([]models.MemberStatusRow, error) {
	const op = "storage.ListMemberStatusRows"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, end_date FROM members`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var result []models.MemberStatusRow
	for rows.Next() {
		var item models.MemberStatusRow
		if err := rows.Scan(&item.ID, &item.EndDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateMemberStatus записывает статус клиента.
func (s *Storage) UpdateMemberStatus(ctx context.Context, id int, status string) error {
	const op = "storage.UpdateMemberStatus"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE members SET status = $1 WHERE id = $2`
	if _, err := s.DB.ExecContext(ctx, query, status, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
