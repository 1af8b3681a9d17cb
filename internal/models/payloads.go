package models

// RecommendRequest is the body of POST /recommend.
type RecommendRequest struct {
	Role       string        `json:"role"`
	RequireGPU GPUPreference `json:"require_gpu"`
}

// OnboardRequest is the body of POST /onboard.
type OnboardRequest Employee

// OffboardRequest is the body of POST /offboard.
type OffboardRequest struct {
	EmployeeID string `json:"employee_id"`
	LaptopName string `json:"laptop_name"`
}

// ReserveRequest is the body of POST /reserve.
type ReserveRequest Reservation

// CheckRequest is the body of POST /check.
type CheckRequest struct {
	LaptopName string `json:"laptop_name"`
}

// RecommendResponse is the success body of POST /recommend.
type RecommendResponse struct {
	Laptop string `json:"laptop"`
	Status string `json:"status,omitempty"`
}

// MessageResponse is the success body of onboard, offboard, reserve and check.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorBody is whatever a failed response carried. The backend uses
// "message" for most endpoints and "error" for /recommend.
type ErrorBody struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
