package service

import (
	"context"

	"github.com/EpicMandM/laptop-desk/internal/models"
)

// LaptopAPI abstracts the backend operations for testability.
type LaptopAPI interface {
	ListLaptops(ctx context.Context) ([]models.Laptop, error)
	Recommend(ctx context.Context, role string, requireGPU models.GPUPreference) (*models.RecommendResponse, error)
	Onboard(ctx context.Context, employeeID, name, role string, requireGPU models.GPUPreference) (*models.MessageResponse, error)
	Offboard(ctx context.Context, employeeID, laptopName string) (*models.MessageResponse, error)
	Reserve(ctx context.Context, laptopName, managerName string) (*models.MessageResponse, error)
	CheckReservation(ctx context.Context, laptopName string) (*models.MessageResponse, error)
}

var _ LaptopAPI = (*Client)(nil)
