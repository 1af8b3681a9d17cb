// Package views holds the per-page state of the laptop desk and the single
// backend call each page makes. It knows nothing about HTTP or HTML.
package views

import (
	"context"

	"github.com/EpicMandM/laptop-desk/internal/logger"
	"github.com/EpicMandM/laptop-desk/internal/service"
)

// Views runs user actions against the backend.
type Views struct {
	Logger *logger.Logger
	API    service.LaptopAPI
}

// New creates a Views. A nil logger discards output.
func New(api service.LaptopAPI, log *logger.Logger) *Views {
	if log == nil {
		log = logger.Discard()
	}
	return &Views{Logger: log, API: api}
}

// Onboard submits the onboarding form and sets its message from the
// response, or from the failed response's message.
func (v *Views) Onboard(ctx context.Context, form *OnboardingForm) {
	resp, err := v.API.Onboard(ctx, form.EmployeeID, form.Name, form.Role, form.RequireGPU)
	if err != nil {
		form.Message = service.ErrorMessage(err)
		v.Logger.Warn("Onboarding failed", logger.Action("onboard"), logger.Employee(form.EmployeeID), logger.Error(err))
		return
	}
	form.Message = resp.Message
	v.Logger.Info("Employee onboarded", logger.Action("onboard"), logger.Status("success"), logger.Employee(form.EmployeeID))
}

// Recommend submits the recommendation form. On success only Result is
// set, on failure only Error.
func (v *Views) Recommend(ctx context.Context, form *RecommendationForm) {
	resp, err := v.API.Recommend(ctx, form.Role, form.RequireGPU)
	if err != nil {
		form.Result = ""
		form.Error = service.ErrorDetail(err)
		v.Logger.Warn("Recommendation failed",
			logger.Action("recommend"), logger.Role(form.Role), logger.F("REQUIRE_GPU", form.RequireGPU), logger.Error(err))
		return
	}
	form.Result = resp.Laptop
	form.Error = ""
	v.Logger.Info("Laptop recommended",
		logger.Action("recommend"), logger.Status("success"), logger.Role(form.Role), logger.Laptop(resp.Laptop))
}

// Offboard submits the offboarding form.
func (v *Views) Offboard(ctx context.Context, form *OffboardingForm) {
	resp, err := v.API.Offboard(ctx, form.EmployeeID, form.LaptopName)
	if err != nil {
		form.Message = service.ErrorMessage(err)
		v.Logger.Warn("Offboarding failed",
			logger.Action("offboard"), logger.Employee(form.EmployeeID), logger.Laptop(form.LaptopName), logger.Error(err))
		return
	}
	form.Message = resp.Message
	v.Logger.Info("Employee offboarded",
		logger.Action("offboard"), logger.Status("success"), logger.Employee(form.EmployeeID), logger.Laptop(form.LaptopName))
}

// Reserve submits the reservation form's reserve action.
func (v *Views) Reserve(ctx context.Context, form *ReservationForm) {
	resp, err := v.API.Reserve(ctx, form.LaptopName, form.ManagerName)
	if err != nil {
		form.Message = service.ErrorMessage(err)
		v.Logger.Warn("Reservation failed", logger.Action("reserve"), logger.Laptop(form.LaptopName), logger.Error(err))
		return
	}
	form.Message = resp.Message
	v.Logger.Info("Reservation submitted", logger.Action("reserve"), logger.Status("success"), logger.Laptop(form.LaptopName))
}

// CheckReservation submits the reservation form's check action. The
// manager name is ignored.
func (v *Views) CheckReservation(ctx context.Context, form *ReservationForm) {
	resp, err := v.API.CheckReservation(ctx, form.LaptopName)
	if err != nil {
		form.Message = service.ErrorMessage(err)
		v.Logger.Warn("Reservation check failed", logger.Action("check"), logger.Laptop(form.LaptopName), logger.Error(err))
		return
	}
	form.Message = resp.Message
	v.Logger.Info("Reservation checked", logger.Action("check"), logger.Status("success"), logger.Laptop(form.LaptopName))
}

// Laptops fetches the laptop list once. A failure is logged and yields an
// empty list.
func (v *Views) Laptops(ctx context.Context) *LaptopList {
	laptops, err := v.API.ListLaptops(ctx)
	if err != nil {
		v.Logger.Error("Error fetching laptops", logger.Action("list"), logger.Error(err))
		return &LaptopList{}
	}
	v.Logger.Info("Laptops fetched", logger.Action("list"), logger.Count(len(laptops)))
	return &LaptopList{Laptops: laptops}
}
