package parkingsvc

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Rextro-Exhibition-2025/Crowd-Handling-Backend/model"
	parkingrepo "github.com/Rextro-Exhibition-2025/Crowd-Handling-Backend/repository/parking"
	"github.com/Rextro-Exhibition-2025/Crowd-Handling-Backend/util/keylock"
)

// errors used by controllers

var (
	ErrNotFound      = errors.New("parking not found")
	ErrDuplicateName = errors.New("parking name already exists")
)

// Stats = repository shape
type Stats = parkingrepo.Stats

// UpdateInput carries a full update. Absent fields keep their stored value;
// the name is not updatable at all.
type UpdateInput struct {
	TotalSlots     *int
	AvailableSlots *int
}

// AvailabilityInput carries the availability patch. Supplying AvailableSlots
// recomputes the flag; supplying only IsAvailable sets the flag directly.
type AvailabilityInput struct {
	AvailableSlots *int
	IsAvailable    *bool
}

type Repo interface {
	Insert(ctx context.Context, p *model.Parking) error
	List(ctx context.Context) ([]model.Parking, error)
	ByID(ctx context.Context, id uuid.UUID) (*model.Parking, error)
	Update(ctx context.Context, p *model.Parking) error
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*Stats, error)
}

type Service interface {
	Create(ctx context.Context, name string, totalSlots, availableSlots int) (*model.Parking, error)
	List(ctx context.Context) ([]model.Parking, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Parking, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*model.Parking, error)
	SetAvailability(ctx context.Context, id uuid.UUID, in AvailabilityInput) (*model.Parking, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*Stats, error)
}

// ----- Service implementation -----

type service struct {
	r     Repo
	locks *keylock.KeyLock
}

func New(r Repo) Service {
	return &service{r: r, locks: keylock.New()}
}

func (s *service) Create(ctx context.Context, name string, totalSlots, availableSlots int) (*model.Parking, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Reason: "name must not be empty"}
	}

	candidate, err := resolveSlots(model.Parking{
		Name:           name,
		TotalSlots:     totalSlots,
		AvailableSlots: availableSlots,
	}, true)
	if err != nil {
		return nil, err
	}

	if err := s.r.Insert(ctx, &candidate); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return &candidate, nil
}

func (s *service) List(ctx context.Context) ([]model.Parking, error) {
	return s.r.List(ctx)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*model.Parking, error) {
	p, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Update replaces the slot counts of an existing record. The availability
// flag is always recomputed here, so a flag smuggled into the request body
// never survives a slot change.
func (s *service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*model.Parking, error) {
	if in.TotalSlots == nil && in.AvailableSlots == nil {
		return nil, &ValidationError{Reason: "provide totalSlots or availableSlots"}
	}

	s.locks.Lock(id.String())
	defer s.locks.Unlock(id.String())

	stored, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	candidate := *stored
	if in.TotalSlots != nil {
		candidate.TotalSlots = *in.TotalSlots
	}
	if in.AvailableSlots != nil {
		candidate.AvailableSlots = *in.AvailableSlots
	}
	candidate, err = resolveSlots(candidate, true)
	if err != nil {
		return nil, err
	}

	if err := s.r.Update(ctx, &candidate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &candidate, nil
}

// SetAvailability applies the PATCH /availability semantics: a new slot
// count re-derives the flag, a bare flag is taken as-is.
func (s *service) SetAvailability(ctx context.Context, id uuid.UUID, in AvailabilityInput) (*model.Parking, error) {
	if in.AvailableSlots == nil && in.IsAvailable == nil {
		return nil, &ValidationError{Reason: "provide availableSlots or isAvailable"}
	}

	s.locks.Lock(id.String())
	defer s.locks.Unlock(id.String())

	stored, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	candidate := *stored
	if in.AvailableSlots != nil {
		candidate.AvailableSlots = *in.AvailableSlots
	}
	if in.IsAvailable != nil {
		candidate.IsAvailable = *in.IsAvailable
	}
	candidate, err = resolveSlots(candidate, in.AvailableSlots != nil)
	if err != nil {
		return nil, err
	}

	if err := s.r.Update(ctx, &candidate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &candidate, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.r.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	return s.r.Stats(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
