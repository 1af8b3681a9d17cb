package views

import (
	"net/url"

	"github.com/EpicMandM/laptop-desk/internal/models"
)

// OnboardingForm is the state of the onboarding view. Fields are kept
// exactly as entered so a failed submit can be redisplayed unchanged.
type OnboardingForm struct {
	EmployeeID string
	Name       string
	Role       string
	RequireGPU models.GPUPreference
	Message    string
}

// RecommendationForm is the state of the recommendation view.
// At most one of Result and Error is set after a submit.
type RecommendationForm struct {
	Role       string
	RequireGPU models.GPUPreference
	Result     string
	Error      string
}

// OffboardingForm is the state of the offboarding view.
type OffboardingForm struct {
	EmployeeID string
	LaptopName string
	Message    string
}

// ReservationForm backs both the reserve and the check actions.
type ReservationForm struct {
	LaptopName  string
	ManagerName string
	Message     string
}

// LaptopList is the state of the listing view. Empty after a failed fetch.
type LaptopList struct {
	Laptops []models.Laptop
}

func OnboardingFromValues(v url.Values) *OnboardingForm {
	return &OnboardingForm{
		EmployeeID: v.Get("employee_id"),
		Name:       v.Get("name"),
		Role:       v.Get("role"),
		RequireGPU: models.ParseGPUPreference(v.Get("require_gpu")),
	}
}

func RecommendationFromValues(v url.Values) *RecommendationForm {
	return &RecommendationForm{
		Role:       v.Get("role"),
		RequireGPU: models.ParseGPUPreference(v.Get("require_gpu")),
	}
}

func OffboardingFromValues(v url.Values) *OffboardingForm {
	return &OffboardingForm{
		EmployeeID: v.Get("employee_id"),
		LaptopName: v.Get("laptop_name"),
	}
}

func ReservationFromValues(v url.Values) *ReservationForm {
	return &ReservationForm{
		LaptopName:  v.Get("laptop_name"),
		ManagerName: v.Get("manager_name"),
	}
}
