package parkingrepo

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/Rextro-Exhibition-2025/Crowd-Handling-Backend/model"
)

// Stats is the aggregate the dashboard header shows.
type Stats struct {
	TotalLocations     int64 `json:"totalLocations"`
	TotalSlots         int64 `json:"totalSlots"`
	AvailableSlots     int64 `json:"availableSlots"`
	OccupiedSlots      int64 `json:"occupiedSlots"`
	AvailableLocations int64 `json:"availableLocations"`
}

// Repo persists parking records. Methods return sql.ErrNoRows when the id
// does not resolve and raw pg errors otherwise; the service classifies them.
type Repo interface {
	Insert(ctx context.Context, p *model.Parking) error
	List(ctx context.Context) ([]model.Parking, error)
	ByID(ctx context.Context, id uuid.UUID) (*model.Parking, error)
	Update(ctx context.Context, p *model.Parking) error
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*Stats, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Insert(ctx context.Context, p *model.Parking) error {
	const q = `
INSERT INTO parkings (name, total_slots, available_slots, is_available)
VALUES ($1,$2,$3,$4)
RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, q, p.Name, p.TotalSlots, p.AvailableSlots, p.IsAvailable).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *repo) List(ctx context.Context) ([]model.Parking, error) {
	const q = `
SELECT id, name, total_slots, available_slots, is_available, created_at, updated_at
FROM parkings
ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Parking
	for rows.Next() {
		var p model.Parking
		if err := rows.Scan(&p.ID, &p.Name, &p.TotalSlots, &p.AvailableSlots, &p.IsAvailable, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, id uuid.UUID) (*model.Parking, error) {
	const q = `
SELECT id, name, total_slots, available_slots, is_available, created_at, updated_at
FROM parkings
WHERE id=$1`
	var p model.Parking
	if err := r.db.QueryRowContext(ctx, q, id).
		Scan(&p.ID, &p.Name, &p.TotalSlots, &p.AvailableSlots, &p.IsAvailable, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repo) Update(ctx context.Context, p *model.Parking) error {
	const q = `
UPDATE parkings
SET total_slots=$1, available_slots=$2, is_available=$3, updated_at=now()
WHERE id=$4
RETURNING updated_at`
	return r.db.QueryRowContext(ctx, q, p.TotalSlots, p.AvailableSlots, p.IsAvailable, p.ID).
		Scan(&p.UpdatedAt)
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM parkings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repo) Stats(ctx context.Context) (*Stats, error) {
	const q = `
SELECT COUNT(*),
       COALESCE(SUM(total_slots),0)::BIGINT,
       COALESCE(SUM(available_slots),0)::BIGINT,
       COUNT(*) FILTER (WHERE is_available AND available_slots > 0)
FROM parkings`
	var s Stats
	if err := r.db.QueryRowContext(ctx, q).
		Scan(&s.TotalLocations, &s.TotalSlots, &s.AvailableSlots, &s.AvailableLocations); err != nil {
		return nil, err
	}
	s.OccupiedSlots = s.TotalSlots - s.AvailableSlots
	return &s, nil
}
