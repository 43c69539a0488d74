package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kmorales/heladeria-api/internal/application/dto"
	"github.com/kmorales/heladeria-api/internal/application/usecase"
	"github.com/kmorales/heladeria-api/internal/domain"
)

// PeopleHandler maneja empleados (solo admin) y clientes.
type PeopleHandler struct {
	employeeUC *usecase.EmployeeUseCase
	customerUC *usecase.CustomerUseCase
}

// NewPeopleHandler construye el handler de empleados y clientes.
func NewPeopleHandler(employeeUC *usecase.EmployeeUseCase, customerUC *usecase.CustomerUseCase) *PeopleHandler {
	return &PeopleHandler{employeeUC: employeeUC, customerUC: customerUC}
}

func peopleError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case domain.ErrEmailAlreadyExists, domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// CreateEmployee registra un empleado (solo admin).
func (h *PeopleHandler) CreateEmployee(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	employee, err := h.employeeUC.Create(in)
	if err != nil {
		return peopleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}

// ListEmployees lista empleados.
func (h *PeopleHandler) ListEmployees(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.employeeUC.List(page.Limit, page.Offset)
	if err != nil {
		return peopleError(c, err)
	}
	return c.JSON(out)
}

// GetEmployee obtiene un empleado por ID.
func (h *PeopleHandler) GetEmployee(c *fiber.Ctx) error {
	employee, err := h.employeeUC.GetByID(c.Params("id"))
	if err != nil {
		return peopleError(c, err)
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
	}
	return c.JSON(employee)
}

// UpdateEmployee actualiza un empleado.
func (h *PeopleHandler) UpdateEmployee(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	employee, err := h.employeeUC.Update(c.Params("id"), in)
	if err != nil {
		return peopleError(c, err)
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
	}
	return c.JSON(employee)
}

// DeleteEmployee elimina un empleado.
func (h *PeopleHandler) DeleteEmployee(c *fiber.Ctx) error {
	if err := h.employeeUC.Delete(c.Params("id")); err != nil {
		return peopleError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}

// RegisterCustomer registra un cliente (endpoint público, app móvil).
func (h *PeopleHandler) RegisterCustomer(c *fiber.Ctx) error {
	var in dto.RegisterCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.customerUC.Register(in)
	if err != nil {
		return peopleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// ListCustomers lista clientes registrados.
func (h *PeopleHandler) ListCustomers(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.customerUC.List(page.Limit, page.Offset)
	if err != nil {
		return peopleError(c, err)
	}
	return c.JSON(out)
}

// UpdateCustomer actualiza los datos de contacto de un cliente (staff).
func (h *PeopleHandler) UpdateCustomer(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.customerUC.Update(c.Params("id"), in)
	if err != nil {
		return peopleError(c, err)
	}
	if customer == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	return c.JSON(customer)
}

// GetCustomer obtiene un cliente por ID.
func (h *PeopleHandler) GetCustomer(c *fiber.Ctx) error {
	customer, err := h.customerUC.GetByID(c.Params("id"))
	if err != nil {
		return peopleError(c, err)
	}
	if customer == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	return c.JSON(customer)
}
