package views

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/EpicMandM/laptop-desk/internal/logger"
	"github.com/EpicMandM/laptop-desk/internal/models"
	"github.com/EpicMandM/laptop-desk/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockAPI struct {
	listFn      func(ctx context.Context) ([]models.Laptop, error)
	recommendFn func(ctx context.Context, role string, gpu models.GPUPreference) (*models.RecommendResponse, error)
	onboardFn   func(ctx context.Context, id, name, role string, gpu models.GPUPreference) (*models.MessageResponse, error)
	offboardFn  func(ctx context.Context, id, laptop string) (*models.MessageResponse, error)
	reserveFn   func(ctx context.Context, laptop, manager string) (*models.MessageResponse, error)
	checkFn     func(ctx context.Context, laptop string) (*models.MessageResponse, error)
	calls       int
}

func (m *mockAPI) ListLaptops(ctx context.Context) ([]models.Laptop, error) {
	m.calls++
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockAPI) Recommend(ctx context.Context, role string, gpu models.GPUPreference) (*models.RecommendResponse, error) {
	m.calls++
	if m.recommendFn != nil {
		return m.recommendFn(ctx, role, gpu)
	}
	return &models.RecommendResponse{}, nil
}

func (m *mockAPI) Onboard(ctx context.Context, id, name, role string, gpu models.GPUPreference) (*models.MessageResponse, error) {
	m.calls++
	if m.onboardFn != nil {
		return m.onboardFn(ctx, id, name, role, gpu)
	}
	return &models.MessageResponse{}, nil
}

func (m *mockAPI) Offboard(ctx context.Context, id, laptop string) (*models.MessageResponse, error) {
	m.calls++
	if m.offboardFn != nil {
		return m.offboardFn(ctx, id, laptop)
	}
	return &models.MessageResponse{}, nil
}

func (m *mockAPI) Reserve(ctx context.Context, laptop, manager string) (*models.MessageResponse, error) {
	m.calls++
	if m.reserveFn != nil {
		return m.reserveFn(ctx, laptop, manager)
	}
	return &models.MessageResponse{}, nil
}

func (m *mockAPI) CheckReservation(ctx context.Context, laptop string) (*models.MessageResponse, error) {
	m.calls++
	if m.checkFn != nil {
		return m.checkFn(ctx, laptop)
	}
	return &models.MessageResponse{}, nil
}

func apiErr(status int, body models.ErrorBody) error {
	return &service.APIError{Method: http.MethodPost, Path: "/x", StatusCode: status, Body: body}
}

// --- tests ---

func TestNew_NilLogger(t *testing.T) {
	v := New(&mockAPI{}, nil)
	require.NotNil(t, v.Logger)
}

func TestOnboard_Success(t *testing.T) {
	api := &mockAPI{
		onboardFn: func(_ context.Context, id, name, role string, gpu models.GPUPreference) (*models.MessageResponse, error) {
			assert.Equal(t, "E-1", id)
			assert.Equal(t, "Ada", name)
			assert.Equal(t, "engineer", role)
			assert.Equal(t, models.GPUYes, gpu)
			return &models.MessageResponse{Message: "Employee onboarded"}, nil
		},
	}
	v := New(api, nil)
	form := &OnboardingForm{EmployeeID: "E-1", Name: "Ada", Role: "engineer", RequireGPU: models.GPUYes}

	v.Onboard(context.Background(), form)

	assert.Equal(t, "Employee onboarded", form.Message)
	assert.Equal(t, 1, api.calls)
}

func TestOnboard_FailureKeepsFields(t *testing.T) {
	api := &mockAPI{
		onboardFn: func(context.Context, string, string, string, models.GPUPreference) (*models.MessageResponse, error) {
			return nil, apiErr(http.StatusConflict, models.ErrorBody{Message: "Employee ID exists"})
		},
	}
	var buf bytes.Buffer
	v := New(api, logger.NewWithWriter(&buf))
	form := &OnboardingForm{EmployeeID: "E-1", Name: "Ada", Role: "engineer", RequireGPU: models.GPUNo}

	v.Onboard(context.Background(), form)

	assert.Equal(t, &OnboardingForm{
		EmployeeID: "E-1",
		Name:       "Ada",
		Role:       "engineer",
		RequireGPU: models.GPUNo,
		Message:    "Employee ID exists",
	}, form)
	assert.Contains(t, buf.String(), "LEVEL=WARNING MESSAGE=Onboarding failed")
}

func TestOnboard_TransportFailure(t *testing.T) {
	api := &mockAPI{
		onboardFn: func(context.Context, string, string, string, models.GPUPreference) (*models.MessageResponse, error) {
			return nil, errors.New("POST /onboard: connection refused")
		},
	}
	form := &OnboardingForm{EmployeeID: "E-1"}
	New(api, nil).Onboard(context.Background(), form)
	assert.Equal(t, "POST /onboard: connection refused", form.Message)
}

func TestRecommend_Success(t *testing.T) {
	api := &mockAPI{
		recommendFn: func(_ context.Context, role string, gpu models.GPUPreference) (*models.RecommendResponse, error) {
			assert.Equal(t, "engineer", role)
			assert.Equal(t, models.GPUUnspecified, gpu)
			return &models.RecommendResponse{Laptop: "Dell XPS"}, nil
		},
	}
	form := &RecommendationForm{Role: "engineer", Error: "stale"}
	New(api, nil).Recommend(context.Background(), form)

	assert.Equal(t, "Dell XPS", form.Result)
	assert.Empty(t, form.Error)
}

func TestRecommend_Failure(t *testing.T) {
	api := &mockAPI{
		recommendFn: func(context.Context, string, models.GPUPreference) (*models.RecommendResponse, error) {
			return nil, apiErr(http.StatusBadRequest, models.ErrorBody{Error: "Role not found in dataset. Ticket ID: 7"})
		},
	}
	form := &RecommendationForm{Role: "astronaut", Result: "stale"}
	New(api, nil).Recommend(context.Background(), form)

	assert.Empty(t, form.Result)
	assert.Equal(t, "Role not found in dataset. Ticket ID: 7", form.Error)
	assert.Equal(t, "astronaut", form.Role)
}

func TestOffboard(t *testing.T) {
	api := &mockAPI{
		offboardFn: func(_ context.Context, id, laptop string) (*models.MessageResponse, error) {
			assert.Equal(t, "E-1", id)
			assert.Equal(t, "Dell XPS", laptop)
			return &models.MessageResponse{Message: "Laptop 'Dell XPS' returned by employee 'E-1' and record deleted."}, nil
		},
	}
	form := &OffboardingForm{EmployeeID: "E-1", LaptopName: "Dell XPS"}
	New(api, nil).Offboard(context.Background(), form)
	assert.Equal(t, "Laptop 'Dell XPS' returned by employee 'E-1' and record deleted.", form.Message)
}

func TestOffboard_Failure(t *testing.T) {
	api := &mockAPI{
		offboardFn: func(context.Context, string, string) (*models.MessageResponse, error) {
			return nil, apiErr(http.StatusInternalServerError, models.ErrorBody{})
		},
	}
	form := &OffboardingForm{EmployeeID: "E-1", LaptopName: "Dell XPS"}
	New(api, nil).Offboard(context.Background(), form)
	assert.Equal(t, "POST /x returned status 500", form.Message)
	assert.Equal(t, "Dell XPS", form.LaptopName)
}

func TestReserve(t *testing.T) {
	api := &mockAPI{
		reserveFn: func(_ context.Context, laptop, manager string) (*models.MessageResponse, error) {
			assert.Equal(t, "Dell XPS", laptop)
			assert.Equal(t, "Grace", manager)
			return &models.MessageResponse{Message: "Laptop 'Dell XPS' reserved by 'Grace'."}, nil
		},
	}
	form := &ReservationForm{LaptopName: "Dell XPS", ManagerName: "Grace"}
	New(api, nil).Reserve(context.Background(), form)
	assert.Equal(t, "Laptop 'Dell XPS' reserved by 'Grace'.", form.Message)
}

func TestCheckReservation(t *testing.T) {
	api := &mockAPI{
		checkFn: func(_ context.Context, laptop string) (*models.MessageResponse, error) {
			assert.Equal(t, "Dell XPS", laptop)
			return &models.MessageResponse{Message: "Laptop 'Dell XPS' is not reserved."}, nil
		},
	}
	form := &ReservationForm{LaptopName: "Dell XPS", ManagerName: "ignored"}
	New(api, nil).CheckReservation(context.Background(), form)
	assert.Equal(t, "Laptop 'Dell XPS' is not reserved.", form.Message)
}

func TestCheckReservation_EmptyNameStillCallsBackend(t *testing.T) {
	api := &mockAPI{
		checkFn: func(context.Context, string) (*models.MessageResponse, error) {
			return nil, apiErr(http.StatusBadRequest, models.ErrorBody{Message: "Laptop name is required."})
		},
	}
	form := &ReservationForm{}
	New(api, nil).CheckReservation(context.Background(), form)
	assert.Equal(t, 1, api.calls)
	assert.Equal(t, "Laptop name is required.", form.Message)
}

func TestLaptops_Success(t *testing.T) {
	api := &mockAPI{
		listFn: func(context.Context) ([]models.Laptop, error) {
			return []models.Laptop{{ID: 1, Name: "Dell XPS"}}, nil
		},
	}
	list := New(api, nil).Laptops(context.Background())
	assert.Equal(t, []models.Laptop{{ID: 1, Name: "Dell XPS"}}, list.Laptops)
	assert.Equal(t, 1, api.calls)
}

func TestLaptops_FailureIsSwallowed(t *testing.T) {
	api := &mockAPI{
		listFn: func(context.Context) ([]models.Laptop, error) {
			return nil, errors.New("GET /laptops: connection refused")
		},
	}
	var buf bytes.Buffer
	list := New(api, logger.NewWithWriter(&buf)).Laptops(context.Background())

	require.NotNil(t, list)
	assert.Empty(t, list.Laptops)
	assert.Equal(t, 1, api.calls)
	assert.Contains(t, buf.String(), "LEVEL=ERROR MESSAGE=Error fetching laptops")
	assert.Contains(t, buf.String(), "connection refused")
}

func TestFromValues(t *testing.T) {
	v := url.Values{
		"employee_id":  {"E-1"},
		"name":         {"Ada"},
		"role":         {"engineer"},
		"require_gpu":  {"yes"},
		"laptop_name":  {"Dell XPS"},
		"manager_name": {"Grace"},
	}

	assert.Equal(t, &OnboardingForm{EmployeeID: "E-1", Name: "Ada", Role: "engineer", RequireGPU: models.GPUYes}, OnboardingFromValues(v))
	assert.Equal(t, &RecommendationForm{Role: "engineer", RequireGPU: models.GPUYes}, RecommendationFromValues(v))
	assert.Equal(t, &OffboardingForm{EmployeeID: "E-1", LaptopName: "Dell XPS"}, OffboardingFromValues(v))
	assert.Equal(t, &ReservationForm{LaptopName: "Dell XPS", ManagerName: "Grace"}, ReservationFromValues(v))
}

func TestFromValues_BlankGPUIsUnspecified(t *testing.T) {
	form := RecommendationFromValues(url.Values{"role": {"engineer"}, "require_gpu": {""}})
	assert.Equal(t, models.GPUUnspecified, form.RequireGPU)

	form = RecommendationFromValues(url.Values{"role": {"engineer"}})
	assert.Equal(t, models.GPUUnspecified, form.RequireGPU)
}
