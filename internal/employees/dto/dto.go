package dto

import (
	"time"
)

// ListEmployeesInput lists employee records
type ListEmployeesInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	Department    string `query:"department" description:"Filter by department"`
	Status        string `query:"status" enum:"active,on_leave,inactive" description:"Filter by employment status"`
	Search        string `query:"search" description:"Case-insensitive match on name or email"`
}

// EmployeeOutput is the wire shape of an employee record
type EmployeeOutput struct {
	ID         string     `json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Position   string     `json:"position"`
	Department string     `json:"department"`
	SalaryBand string     `json:"salary_band"`
	Status     string     `json:"status"`
	HiredAt    *time.Time `json:"hired_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ListEmployeesOutput wraps the listing
type ListEmployeesOutput struct {
	Body struct {
		Employees []EmployeeOutput `json:"employees"`
		Total     int              `json:"total"`
	}
}

// GetEmployeeInput fetches one employee record
type GetEmployeeInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	EmployeeID    string `path:"employee_id" required:"true" description:"Employee document id"`
}

// EmployeeOutputWrapper wraps a single employee
type EmployeeOutputWrapper struct {
	Body EmployeeOutput `json:"body"`
}

// CreateEmployeeInput creates an employee record
type CreateEmployeeInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	Body          struct {
		FirstName  string     `json:"first_name" minLength:"1" maxLength:"100" required:"true"`
		LastName   string     `json:"last_name" minLength:"1" maxLength:"100" required:"true"`
		Email      string     `json:"email" format:"email" required:"true"`
		Phone      string     `json:"phone" maxLength:"50" validate:"omitempty,phone_number"`
		Position   string     `json:"position" maxLength:"100"`
		Department string     `json:"department" maxLength:"100"`
		SalaryBand string     `json:"salary_band" maxLength:"20" validate:"omitempty,salary_band"`
		Status     string     `json:"status" enum:"active,on_leave,inactive" default:"active"`
		HiredAt    *time.Time `json:"hired_at,omitempty"`
	}
}

// UpdateEmployeeInput partially updates an employee record
type UpdateEmployeeInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	EmployeeID    string `path:"employee_id" required:"true" description:"Employee document id"`
	Body          struct {
		FirstName  *string    `json:"first_name,omitempty" maxLength:"100"`
		LastName   *string    `json:"last_name,omitempty" maxLength:"100"`
		Email      *string    `json:"email,omitempty" format:"email"`
		Phone      *string    `json:"phone,omitempty" maxLength:"50" validate:"omitempty,phone_number"`
		Position   *string    `json:"position,omitempty" maxLength:"100"`
		Department *string    `json:"department,omitempty" maxLength:"100"`
		SalaryBand *string    `json:"salary_band,omitempty" maxLength:"20" validate:"omitempty,salary_band"`
		Status     *string    `json:"status,omitempty" enum:"active,on_leave,inactive"`
		HiredAt    *time.Time `json:"hired_at,omitempty"`
	}
}

// DeleteEmployeeInput removes an employee record
type DeleteEmployeeInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	EmployeeID    string `path:"employee_id" required:"true" description:"Employee document id"`
}

// MessageOutput is a generic confirmation body
type MessageOutput struct {
	Body struct {
		Message string `json:"message"`
	}
}

// ExportEmployeesInput renders matching records to a spreadsheet
type ExportEmployeesInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing staffhub_auth_token"`
	Department    string `query:"department" description:"Filter by department"`
	Status        string `query:"status" enum:"active,on_leave,inactive" description:"Filter by employment status"`
}

// ExportEmployeesOutput is the rendered xlsx blob
type ExportEmployeesOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}
