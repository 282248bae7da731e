package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/HRS-EstimateService/internal/domain"
	"github.com/m04kA/HRS-EstimateService/pkg/dbmetrics"
	"github.com/m04kA/HRS-EstimateService/pkg/psqlbuilder"
)

// Repository репозиторий каталога залов и типов номеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var hallColumns = []string{
	"id",
	"name",
	"price_per_day",
	"capacity",
	"area_sqm",
	"images",
	"created_at",
	"updated_at",
}

var roomColumns = []string{
	"id",
	"name",
	"room_type_label",
	"bed_description",
	"area_sqm",
	"weekday_price",
	"weekend_price",
	"amenities",
	"images",
	"created_at",
	"updated_at",
}

// ListHalls возвращает все залы каталога в стабильном порядке
func (r *Repository) ListHalls(ctx context.Context) ([]domain.Hall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hallColumns...).
		From("halls").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListHalls - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListHalls - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	halls := make([]domain.Hall, 0)
	for rows.Next() {
		hall, err := scanHall(rows)
		if err != nil {
			return nil, err
		}
		halls = append(halls, *hall)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListHalls - iterate rows: %v", ErrScanRow, err)
	}

	return halls, nil
}

// GetHallByName получает зал по имени
func (r *Repository) GetHallByName(ctx context.Context, name string) (*domain.Hall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hallColumns...).
		From("halls").
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetHallByName - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetHallByName - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("%w: GetHallByName - iterate rows: %v", ErrScanRow, err)
		}
		return nil, ErrHallNotFound
	}

	return scanHall(rows)
}

// UpsertHall создает зал или обновляет его данные по имени
// Используется синхронизацией каталога из CMS
func (r *Repository) UpsertHall(ctx context.Context, hall *domain.Hall) (*domain.Hall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("halls").
		Columns("name", "price_per_day", "capacity", "area_sqm", "images").
		Values(hall.Name, hall.PricePerDay, hall.Capacity, hall.AreaSqm, pq.Array(hall.Images)).
		Suffix(`ON CONFLICT (name) DO UPDATE SET
			price_per_day = EXCLUDED.price_per_day,
			capacity = EXCLUDED.capacity,
			area_sqm = EXCLUDED.area_sqm,
			images = EXCLUDED.images,
			updated_at = now()
		RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertHall - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&hall.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertHall - execute insert: %v", ErrExecQuery, err)
	}

	hall.CreatedAt = createdAt.Time
	hall.UpdatedAt = updatedAt.Time

	return hall, nil
}

// ListRooms возвращает все типы номеров каталога в стабильном порядке
func (r *Repository) ListRooms(ctx context.Context) ([]domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRooms - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRooms - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]domain.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, *room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRooms - iterate rows: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// GetRoomByName получает тип номера по имени
func (r *Repository) GetRoomByName(ctx context.Context, name string) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomByName - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomByName - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("%w: GetRoomByName - iterate rows: %v", ErrScanRow, err)
		}
		return nil, ErrRoomNotFound
	}

	return scanRoom(rows)
}

// UpsertRoom создает тип номера или обновляет его данные по имени
// Используется синхронизацией каталога из CMS
func (r *Repository) UpsertRoom(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rooms").
		Columns("name", "room_type_label", "bed_description", "area_sqm",
			"weekday_price", "weekend_price", "amenities", "images").
		Values(room.Name, room.RoomTypeLabel, room.BedDescription, room.AreaSqm,
			room.WeekdayPrice, room.WeekendPrice, pq.Array(room.Amenities), pq.Array(room.Images)).
		Suffix(`ON CONFLICT (name) DO UPDATE SET
			room_type_label = EXCLUDED.room_type_label,
			bed_description = EXCLUDED.bed_description,
			area_sqm = EXCLUDED.area_sqm,
			weekday_price = EXCLUDED.weekday_price,
			weekend_price = EXCLUDED.weekend_price,
			amenities = EXCLUDED.amenities,
			images = EXCLUDED.images,
			updated_at = now()
		RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertRoom - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&room.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertRoom - execute insert: %v", ErrExecQuery, err)
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return room, nil
}

func scanHall(rows *sql.Rows) (*domain.Hall, error) {
	var hall domain.Hall
	var images pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&hall.ID,
		&hall.Name,
		&hall.PricePerDay,
		&hall.Capacity,
		&hall.AreaSqm,
		&images,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHallNotFound
		}
		return nil, fmt.Errorf("%w: scanHall: %v", ErrScanRow, err)
	}

	hall.Images = images
	hall.CreatedAt = createdAt.Time
	hall.UpdatedAt = updatedAt.Time

	return &hall, nil
}

func scanRoom(rows *sql.Rows) (*domain.Room, error) {
	var room domain.Room
	var amenities, images pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&room.ID,
		&room.Name,
		&room.RoomTypeLabel,
		&room.BedDescription,
		&room.AreaSqm,
		&room.WeekdayPrice,
		&room.WeekendPrice,
		&amenities,
		&images,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("%w: scanRoom: %v", ErrScanRow, err)
	}

	room.Amenities = amenities
	room.Images = images
	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return &room, nil
}
