package parking

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Rextro-Exhibition-2025/Crowd-Handling-Backend/model"
	parkingsvc "github.com/Rextro-Exhibition-2025/Crowd-Handling-Backend/service/parking"
)

type mockSvc struct {
	createFn func(ctx context.Context, name string, totalSlots, availableSlots int) (*model.Parking, error)
	listFn   func(ctx context.Context) ([]model.Parking, error)
	getFn    func(ctx context.Context, id uuid.UUID) (*model.Parking, error)
	updateFn func(ctx context.Context, id uuid.UUID, in parkingsvc.UpdateInput) (*model.Parking, error)
	availFn  func(ctx context.Context, id uuid.UUID, in parkingsvc.AvailabilityInput) (*model.Parking, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
	statsFn  func(ctx context.Context) (*parkingsvc.Stats, error)
}

var _ parkingsvc.Service = (*mockSvc)(nil)

func (m *mockSvc) Create(ctx context.Context, name string, totalSlots, availableSlots int) (*model.Parking, error) {
	return m.createFn(ctx, name, totalSlots, availableSlots)
}
func (m *mockSvc) List(ctx context.Context) ([]model.Parking, error) { return m.listFn(ctx) }
func (m *mockSvc) Get(ctx context.Context, id uuid.UUID) (*model.Parking, error) {
	return m.getFn(ctx, id)
}
func (m *mockSvc) Update(ctx context.Context, id uuid.UUID, in parkingsvc.UpdateInput) (*model.Parking, error) {
	return m.updateFn(ctx, id, in)
}
func (m *mockSvc) SetAvailability(ctx context.Context, id uuid.UUID, in parkingsvc.AvailabilityInput) (*model.Parking, error) {
	return m.availFn(ctx, id, in)
}
func (m *mockSvc) Delete(ctx context.Context, id uuid.UUID) error { return m.deleteFn(ctx, id) }
func (m *mockSvc) Stats(ctx context.Context) (*parkingsvc.Stats, error) {
	return m.statsFn(ctx)
}

func newController(svc parkingsvc.Service) *Controller {
	return &Controller{
		Svc: svc,
		V:   validator.New(),
		Log: slog.Default(),
	}
}

func do(t *testing.T, h echo.HandlerFunc, method, target, body string, pathParam ...string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(pathParam) == 2 {
		c.SetParamNames(pathParam[0])
		c.SetParamValues(pathParam[1])
	}

	require.NoError(t, h(c))

	var env map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestCreate_MissingFields(t *testing.T) {
	h := newController(&mockSvc{})

	rec, env := do(t, h.Create, http.MethodPost, "/api/parkings", `{"name":"Lot A","totalSlots":10}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, false, env["success"])
	require.Equal(t, "Please provide name, totalSlots, and availableSlots", env["message"])
}

func TestCreate_ZeroSlotsCountAsProvided(t *testing.T) {
	h := newController(&mockSvc{
		createFn: func(ctx context.Context, name string, totalSlots, availableSlots int) (*model.Parking, error) {
			require.Equal(t, 0, totalSlots)
			require.Equal(t, 0, availableSlots)
			return &model.Parking{ID: uuid.New(), Name: name}, nil
		},
	})

	rec, env := do(t, h.Create, http.MethodPost, "/api/parkings", `{"name":"Lot A","totalSlots":0,"availableSlots":0}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, true, env["success"])
	require.Equal(t, "Parking created successfully", env["message"])
}

func TestCreate_DuplicateName(t *testing.T) {
	h := newController(&mockSvc{
		createFn: func(ctx context.Context, name string, totalSlots, availableSlots int) (*model.Parking, error) {
			return nil, parkingsvc.ErrDuplicateName
		},
	})

	rec, env := do(t, h.Create, http.MethodPost, "/api/parkings", `{"name":"Lot A","totalSlots":10,"availableSlots":5}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Parking with this name already exists", env["message"])
}

func TestCreate_InvariantViolation(t *testing.T) {
	h := newController(&mockSvc{
		createFn: func(ctx context.Context, name string, totalSlots, availableSlots int) (*model.Parking, error) {
			return nil, &parkingsvc.ValidationError{Reason: "available slots cannot exceed total slots"}
		},
	})

	rec, env := do(t, h.Create, http.MethodPost, "/api/parkings", `{"name":"Lot A","totalSlots":5,"availableSlots":8}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "available slots cannot exceed total slots", env["message"])
}

func TestList_Envelope(t *testing.T) {
	h := newController(&mockSvc{
		listFn: func(ctx context.Context) ([]model.Parking, error) {
			return []model.Parking{{Name: "Lot A"}, {Name: "Lot B"}}, nil
		},
	})

	rec, env := do(t, h.List, http.MethodGet, "/api/parkings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, env["success"])
	require.Equal(t, float64(2), env["count"])
}

func TestList_EmptyIsArrayNotNull(t *testing.T) {
	h := newController(&mockSvc{
		listFn: func(ctx context.Context) ([]model.Parking, error) { return nil, nil },
	})

	rec, env := do(t, h.List, http.MethodGet, "/api/parkings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []any{}, env["data"])
}

func TestDetail_NotFound(t *testing.T) {
	h := newController(&mockSvc{
		getFn: func(ctx context.Context, id uuid.UUID) (*model.Parking, error) {
			return nil, parkingsvc.ErrNotFound
		},
	})

	rec, env := do(t, h.Detail, http.MethodGet, "/api/parkings/x", "", "id", uuid.NewString())
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Parking not found", env["message"])
}

func TestDetail_InvalidID(t *testing.T) {
	h := newController(&mockSvc{})

	rec, env := do(t, h.Detail, http.MethodGet, "/api/parkings/x", "", "id", "not-a-uuid")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid id", env["message"])
}

func TestUpdate_BodyNameIsIgnored(t *testing.T) {
	var got parkingsvc.UpdateInput
	h := newController(&mockSvc{
		updateFn: func(ctx context.Context, id uuid.UUID, in parkingsvc.UpdateInput) (*model.Parking, error) {
			got = in
			return &model.Parking{ID: id, Name: "Lot A"}, nil
		},
	})

	body := `{"name":"Renamed","totalSlots":12,"availableSlots":3}`
	rec, env := do(t, h.Update, http.MethodPut, "/api/parkings/x", body, "id", uuid.NewString())
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Parking updated successfully", env["message"])
	require.NotNil(t, got.TotalSlots)
	require.Equal(t, 12, *got.TotalSlots)
}

func TestUpdateAvailability_ServerError(t *testing.T) {
	h := newController(&mockSvc{
		availFn: func(ctx context.Context, id uuid.UUID, in parkingsvc.AvailabilityInput) (*model.Parking, error) {
			return nil, context.DeadlineExceeded
		},
	})

	rec, env := do(t, h.UpdateAvailability, http.MethodPatch, "/api/parkings/x/availability", `{"isAvailable":false}`, "id", uuid.NewString())
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "Server Error", env["message"])
	require.NotEmpty(t, env["error"])
}

func TestDelete_Success(t *testing.T) {
	h := newController(&mockSvc{
		deleteFn: func(ctx context.Context, id uuid.UUID) error { return nil },
	})

	rec, env := do(t, h.Delete, http.MethodDelete, "/api/parkings/x", "", "id", uuid.NewString())
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Parking deleted successfully", env["message"])
	require.Equal(t, map[string]any{}, env["data"])
}

func TestStats_Envelope(t *testing.T) {
	h := newController(&mockSvc{
		statsFn: func(ctx context.Context) (*parkingsvc.Stats, error) {
			return &parkingsvc.Stats{TotalLocations: 3, TotalSlots: 45, AvailableSlots: 20, OccupiedSlots: 25, AvailableLocations: 2}, nil
		},
	})

	rec, env := do(t, h.Stats, http.MethodGet, "/api/parkings/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data, ok := env["data"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(25), data["occupiedSlots"])
}
