package models

// Laptop is one entry of the backend's laptop list.
type Laptop struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Employee is the data collected by the onboarding form.
type Employee struct {
	EmployeeID string        `json:"employee_id"`
	Name       string        `json:"name"`
	Role       string        `json:"role"`
	RequireGPU GPUPreference `json:"require_gpu"`
}

// Reservation is a manager's claim on a laptop. Its lifecycle lives on the backend.
type Reservation struct {
	LaptopName  string `json:"laptop_name"`
	ManagerName string `json:"manager_name"`
}
