package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HRS-EstimateService/internal/domain"
	"github.com/m04kA/HRS-EstimateService/pkg/dbmetrics"
	"github.com/m04kA/HRS-EstimateService/pkg/psqlbuilder"
)

// Repository репозиторий сессий расчёта стоимости
//
// Счётчики сессии хранятся одним JSONB-полем: они читаются и пишутся
// только целиком, внутри сериализуемой транзакции, поэтому построчная
// схема не нужна
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую сессию расчёта
func (r *Repository) Create(ctx context.Context, sess *domain.EstimateSession) (*domain.EstimateSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	ledger, err := json.Marshal(sess.Ledger)
	if err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrEncodeLedger, err)
	}

	query, args, err := psqlbuilder.Insert("estimate_sessions").
		Columns(
			"id",
			"user_id",
			"check_in",
			"check_out",
			"selection_mode",
			"ledger",
		).
		Values(
			sess.ID,
			sess.UserID,
			dateToNull(sess.Selection.Range.CheckIn),
			dateToNull(sess.Selection.Range.CheckOut),
			string(sess.Selection.Mode),
			ledger,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	sess.CreatedAt = createdAt.Time
	sess.UpdatedAt = updatedAt.Time

	return sess, nil
}

// GetByID получает сессию по идентификатору
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.EstimateSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"check_in",
		"check_out",
		"selection_mode",
		"ledger",
		"created_at",
		"updated_at",
	).
		From("estimate_sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		sess               domain.EstimateSession
		checkIn, checkOut  sql.NullTime
		mode               string
		ledgerRaw          []byte
		createdAt, updated sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sess.ID,
		&sess.UserID,
		&checkIn,
		&checkOut,
		&mode,
		&ledgerRaw,
		&createdAt,
		&updated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan: %v", ErrScanRow, err)
	}

	sess.Selection = domain.Selection{
		Range: domain.DateRange{
			CheckIn:  nullToDate(checkIn),
			CheckOut: nullToDate(checkOut),
		},
		Mode: domain.SelectionMode(mode),
	}

	if err := json.Unmarshal(ledgerRaw, &sess.Ledger); err != nil {
		return nil, fmt.Errorf("%w: GetByID - decode ledger: %v", ErrScanRow, err)
	}

	sess.CreatedAt = createdAt.Time
	sess.UpdatedAt = updated.Time

	return &sess, nil
}

// Update перезаписывает состояние сессии целиком
func (r *Repository) Update(ctx context.Context, sess *domain.EstimateSession) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	ledger, err := json.Marshal(sess.Ledger)
	if err != nil {
		return fmt.Errorf("%w: Update: %v", ErrEncodeLedger, err)
	}

	query, args, err := psqlbuilder.Update("estimate_sessions").
		Set("check_in", dateToNull(sess.Selection.Range.CheckIn)).
		Set("check_out", dateToNull(sess.Selection.Range.CheckOut)).
		Set("selection_mode", string(sess.Selection.Mode)).
		Set("ledger", ledger).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": sess.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// Delete удаляет сессию
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("estimate_sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// dateToNull конвертирует опциональную дату в nullable-значение для БД
func dateToNull(d *domain.CalendarDate) sql.NullTime {
	if d == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: d.Time(), Valid: true}
}

// nullToDate конвертирует nullable-значение БД в опциональную дату
func nullToDate(t sql.NullTime) *domain.CalendarDate {
	if !t.Valid {
		return nil
	}
	d := domain.NewCalendarDate(t.Time.Year(), t.Time.Month(), t.Time.Day())
	return &d
}
