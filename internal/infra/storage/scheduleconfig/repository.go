package scheduleconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с конфигурацией расписания
// Мастерская одна, поэтому таблица хранит единственную строку
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает текущую конфигурацию расписания
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Get(ctx context.Context) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"max_daily_bookings",
		"open_time",
		"close_time",
		"slot_duration_minutes",
		"created_at",
		"updated_at",
	).
		From("schedule_config").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var config domain.ScheduleConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&config.MaxDailyBookings,
		&config.OpenTime,
		&config.CloseTime,
		&config.SlotDurationMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan config: %v", ErrScanRow, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// Upsert сохраняет конфигурацию расписания: обновляет существующую строку
// или создаёт её при первом сохранении
func (r *Repository) Upsert(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	current, err := r.Get(ctx)
	if err != nil && err != ErrConfigNotFound {
		return nil, err
	}

	if current == nil {
		query, args, err := psqlbuilder.Insert("schedule_config").
			Columns(
				"max_daily_bookings",
				"open_time",
				"close_time",
				"slot_duration_minutes",
			).
			Values(
				config.MaxDailyBookings,
				config.OpenTime,
				config.CloseTime,
				config.SlotDurationMinutes,
			).
			Suffix("RETURNING id, created_at, updated_at").
			ToSql()

		if err != nil {
			return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
		}

		var createdAt, updatedAt sql.NullTime
		err = executor.QueryRowContext(ctx, query, args...).Scan(&config.ID, &createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
		}

		config.CreatedAt = createdAt.Time
		config.UpdatedAt = updatedAt.Time
		return config, nil
	}

	query, args, err := psqlbuilder.Update("schedule_config").
		Set("max_daily_bookings", config.MaxDailyBookings).
		Set("open_time", config.OpenTime).
		Set("close_time", config.CloseTime).
		Set("slot_duration_minutes", config.SlotDurationMinutes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": current.ID}).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&config.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute update: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time
	return config, nil
}
