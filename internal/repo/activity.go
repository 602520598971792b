package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-planner/internal/domain"
)

// ActivityRepo defines the persistence operations for Activities.
// Single-row reads and writes are scoped by tripID; trip ownership is checked
// by the service layer before any of these are called.
type ActivityRepo interface {
	// Create inserts a new activity and returns the persisted record.
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)

	// CreateBatch inserts activities in one round trip and returns them in
	// input order. Outside an explicit transaction the batch runs as one
	// implicit transaction: if any row fails, none are stored.
	CreateBatch(ctx context.Context, activities []domain.Activity) ([]domain.Activity, error)

	// GetByID retrieves a single activity under the given trip.
	// Returns domain.ErrNotFound if no such activity exists under that trip.
	GetByID(ctx context.Context, tripID, activityID uuid.UUID) (domain.Activity, error)

	// ListByTripID returns all activities of a trip ordered by day_number,
	// start_time, then insertion order.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)

	// Update overwrites the mutable fields of an activity under its trip.
	Update(ctx context.Context, activity domain.Activity) (domain.Activity, error)

	// Delete removes a single activity under the given trip.
	Delete(ctx context.Context, tripID, activityID uuid.UUID) error

	// DeleteByTripID removes every activity of a trip and reports how many
	// rows went away. Zero is not an error.
	DeleteByTripID(ctx context.Context, tripID uuid.UUID) (int64, error)
}

// pgActivityRepo is the Postgres implementation of ActivityRepo.
type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db connection.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

const activityColumns = `id, trip_id, day_number, title, location, start_time, end_time,
	notes, latitude, longitude, place_id, created_at, updated_at`

const insertActivity = `
	INSERT INTO activities (trip_id, day_number, title, location, start_time, end_time,
	                        notes, latitude, longitude, place_id)
	VALUES (@trip_id, @day_number, @title, @location, @start_time, @end_time,
	        @notes, @latitude, @longitude, @place_id)
	RETURNING ` + activityColumns

func (r *pgActivityRepo) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	result, err := scanActivity(r.db.QueryRow(ctx, insertActivity, activityArgs(activity)))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) CreateBatch(ctx context.Context, activities []domain.Activity) ([]domain.Activity, error) {
	if len(activities) == 0 {
		return []domain.Activity{}, nil
	}

	b := &pgx.Batch{}
	for _, a := range activities {
		b.Queue(insertActivity, activityArgs(a))
	}

	br := r.db.SendBatch(ctx, b)
	out := make([]domain.Activity, 0, len(activities))
	for i := range activities {
		a, err := scanActivity(br.QueryRow())
		if err != nil {
			_ = br.Close()
			return nil, fmt.Errorf("repo.ActivityRepo.CreateBatch: row %d: %w", i, err)
		}
		out = append(out, a)
	}
	if err := br.Close(); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.CreateBatch: close: %w", err)
	}
	return out, nil
}

func (r *pgActivityRepo) GetByID(ctx context.Context, tripID, activityID uuid.UUID) (domain.Activity, error) {
	const q = `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE id = @id AND trip_id = @trip_id`

	result, err := scanActivity(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": activityID, "trip_id": tripID}))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	const q = `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE trip_id = @trip_id
		ORDER BY day_number, start_time, seq`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	activities := []domain.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: scan: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: rows: %w", err)
	}
	return activities, nil
}

func (r *pgActivityRepo) Update(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	const q = `
		UPDATE activities
		SET day_number = @day_number,
		    title      = @title,
		    location   = @location,
		    start_time = @start_time,
		    end_time   = @end_time,
		    notes      = @notes,
		    latitude   = @latitude,
		    longitude  = @longitude,
		    place_id   = @place_id,
		    updated_at = now()
		WHERE id = @id AND trip_id = @trip_id
		RETURNING ` + activityColumns

	args := activityArgs(activity)
	args["id"] = activity.ID

	result, err := scanActivity(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) Delete(ctx context.Context, tripID, activityID uuid.UUID) error {
	const q = `DELETE FROM activities WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": activityID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgActivityRepo) DeleteByTripID(ctx context.Context, tripID uuid.UUID) (int64, error) {
	const q = `DELETE FROM activities WHERE trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return 0, fmt.Errorf("repo.ActivityRepo.DeleteByTripID: %w", err)
	}
	return tag.RowsAffected(), nil
}

func activityArgs(a domain.Activity) pgx.NamedArgs {
	return pgx.NamedArgs{
		"trip_id":    a.TripID,
		"day_number": a.DayNumber,
		"title":      a.Title,
		"location":   a.Location,
		"start_time": a.StartTime,
		"end_time":   a.EndTime,
		"notes":      a.Notes,
		"latitude":   a.Latitude, // nil becomes NULL
		"longitude":  a.Longitude,
		"place_id":   a.PlaceID,
	}
}

// scanActivity maps a single database row into a domain.Activity.
func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a        domain.Activity
		id       pgtype.UUID
		tripID   pgtype.UUID
		lat, lng pgtype.Float8
	)

	err := s.Scan(&id, &tripID, &a.DayNumber, &a.Title, &a.Location, &a.StartTime, &a.EndTime,
		&a.Notes, &lat, &lng, &a.PlaceID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Activity{}, domain.ErrNotFound
		}
		return domain.Activity{}, err
	}

	a.ID = uuid.UUID(id.Bytes)
	a.TripID = uuid.UUID(tripID.Bytes)
	if lat.Valid {
		v := lat.Float64
		a.Latitude = &v
	}
	if lng.Valid {
		v := lng.Float64
		a.Longitude = &v
	}
	return a, nil
}
