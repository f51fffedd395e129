package routes

import (
	"context"
	"errors"
	"strings"
	"time"

	authMiddleware "go-staffhub/internal/auth/middleware"
	"go-staffhub/internal/employees/dto"
	"go-staffhub/internal/employees/models"
	"go-staffhub/internal/employees/services"
	"go-staffhub/pkg/permissions"

	"github.com/danielgtaylor/huma/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Routes exposes the employee records surface
type Routes struct {
	service *services.Service
	gate    *authMiddleware.Gate
}

func NewRoutes(service *services.Service, gate *authMiddleware.Gate) *Routes {
	return &Routes{
		service: service,
		gate:    gate,
	}
}

// RegisterUnifiedRoutes registers all employee routes with the Huma API
func (hr *Routes) RegisterUnifiedRoutes(api huma.API) {
	huma.Get(api, "/employees", hr.list)
	huma.Post(api, "/employees", hr.create)
	huma.Get(api, "/employees/export", hr.export)
	huma.Get(api, "/employees/{employee_id}", hr.get)
	huma.Patch(api, "/employees/{employee_id}", hr.update)
	huma.Delete(api, "/employees/{employee_id}", hr.delete)
}

func (hr *Routes) list(ctx context.Context, input *dto.ListEmployeesInput) (*dto.ListEmployeesOutput, error) {
	_, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyEmployeesView)
	if err != nil {
		return nil, err
	}

	employees, err := hr.service.List(ctx, services.ListFilter{
		Department: input.Department,
		Status:     input.Status,
		Search:     input.Search,
	})
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list employees", err)
	}

	out := &dto.ListEmployeesOutput{}
	out.Body.Employees = make([]dto.EmployeeOutput, len(employees))
	for i, e := range employees {
		out.Body.Employees[i] = employeeOutput(&e)
	}
	out.Body.Total = len(employees)
	return out, nil
}

func (hr *Routes) create(ctx context.Context, input *dto.CreateEmployeeInput) (*dto.EmployeeOutputWrapper, error) {
	_, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyEmployeesCreate)
	if err != nil {
		return nil, err
	}

	if messages := dto.ValidateBody(input.Body); len(messages) > 0 {
		return nil, huma.Error422UnprocessableEntity(strings.Join(messages, "; "))
	}

	employee := &models.Employee{
		FirstName:  input.Body.FirstName,
		LastName:   input.Body.LastName,
		Email:      input.Body.Email,
		Phone:      input.Body.Phone,
		Position:   input.Body.Position,
		Department: input.Body.Department,
		SalaryBand: input.Body.SalaryBand,
		Status:     input.Body.Status,
		HiredAt:    input.Body.HiredAt,
	}

	created, err := hr.service.Create(ctx, employee)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to create employee", err)
	}

	return &dto.EmployeeOutputWrapper{Body: employeeOutput(created)}, nil
}

func (hr *Routes) get(ctx context.Context, input *dto.GetEmployeeInput) (*dto.EmployeeOutputWrapper, error) {
	_, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyEmployeesView)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(input.EmployeeID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid employee id")
	}

	employee, err := hr.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			return nil, huma.Error404NotFound("employee not found")
		}
		return nil, huma.Error500InternalServerError("Failed to load employee", err)
	}

	return &dto.EmployeeOutputWrapper{Body: employeeOutput(employee)}, nil
}

func (hr *Routes) update(ctx context.Context, input *dto.UpdateEmployeeInput) (*dto.EmployeeOutputWrapper, error) {
	_, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyEmployeesEdit)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(input.EmployeeID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid employee id")
	}

	if messages := dto.ValidateBody(input.Body); len(messages) > 0 {
		return nil, huma.Error422UnprocessableEntity(strings.Join(messages, "; "))
	}

	set := bson.M{}
	setIf(set, "first_name", input.Body.FirstName)
	setIf(set, "last_name", input.Body.LastName)
	setIf(set, "email", input.Body.Email)
	setIf(set, "phone", input.Body.Phone)
	setIf(set, "position", input.Body.Position)
	setIf(set, "department", input.Body.Department)
	setIf(set, "salary_band", input.Body.SalaryBand)
	setIf(set, "status", input.Body.Status)
	if input.Body.HiredAt != nil {
		set["hired_at"] = *input.Body.HiredAt
	}

	employee, err := hr.service.Update(ctx, id, set)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			return nil, huma.Error404NotFound("employee not found")
		}
		return nil, huma.Error500InternalServerError("Failed to update employee", err)
	}

	return &dto.EmployeeOutputWrapper{Body: employeeOutput(employee)}, nil
}

func (hr *Routes) delete(ctx context.Context, input *dto.DeleteEmployeeInput) (*dto.MessageOutput, error) {
	_, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyEmployeesDelete)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(input.EmployeeID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid employee id")
	}

	if err := hr.service.Delete(ctx, id); err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			return nil, huma.Error404NotFound("employee not found")
		}
		return nil, huma.Error500InternalServerError("Failed to delete employee", err)
	}

	out := &dto.MessageOutput{}
	out.Body.Message = "Employee deleted"
	return out, nil
}

func (hr *Routes) export(ctx context.Context, input *dto.ExportEmployeesInput) (*dto.ExportEmployeesOutput, error) {
	_, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyEmployeesExport)
	if err != nil {
		return nil, err
	}

	data, err := hr.service.Export(ctx, services.ListFilter{
		Department: input.Department,
		Status:     input.Status,
	})
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to export employees", err)
	}

	filename := "employees-" + time.Now().UTC().Format("2006-01-02") + ".xlsx"
	return &dto.ExportEmployeesOutput{
		ContentType:        "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		ContentDisposition: `attachment; filename="` + filename + `"`,
		Body:               data,
	}, nil
}

func setIf(set bson.M, key string, value *string) {
	if value != nil {
		set[key] = *value
	}
}

func employeeOutput(e *models.Employee) dto.EmployeeOutput {
	return dto.EmployeeOutput{
		ID:         e.ID.Hex(),
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Phone:      e.Phone,
		Position:   e.Position,
		Department: e.Department,
		SalaryBand: e.SalaryBand,
		Status:     e.Status,
		HiredAt:    e.HiredAt,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
