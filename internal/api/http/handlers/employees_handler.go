package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/david8219501/leader-app-server-08-09-25/internal/api/dto"
	"github.com/david8219501/leader-app-server-08-09-25/internal/service"
	"github.com/david8219501/leader-app-server-08-09-25/pkg/util"
)

// EmployeesHandler exposes roster endpoints, all scoped to the
// authenticated manager.
type EmployeesHandler struct {
	roster *service.RosterService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(roster *service.RosterService) *EmployeesHandler {
	return &EmployeesHandler{roster: roster}
}

// Add handles POST /employees.
func (h *EmployeesHandler) Add(c *fiber.Ctx) error {
	principal, err := managerPrincipal(c)
	if err != nil {
		return err
	}

	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := validateEmployeeFields(req); err != nil {
		return err
	}

	employee, err := h.roster.AddEmployee(c.Context(), principal.ManagerID, req.FirstName, req.LastName, optionalString(req.Phone))
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"id":      employee.ID,
		"message": "employee added successfully",
	})
}

// List handles GET /employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	principal, err := managerPrincipal(c)
	if err != nil {
		return err
	}

	employees, err := h.roster.ListEmployees(c.Context(), principal.ManagerID)
	if err != nil {
		return err
	}
	return c.JSON(employees)
}

// Update handles PUT /employees/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	principal, err := managerPrincipal(c)
	if err != nil {
		return err
	}
	employeeID, err := employeeIDParam(c)
	if err != nil {
		return err
	}

	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := validateEmployeeFields(req); err != nil {
		return err
	}

	if err := h.roster.UpdateEmployee(c.Context(), principal.ManagerID, employeeID, req.FirstName, req.LastName, optionalString(req.Phone)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "employee updated successfully"})
}

// Delete handles DELETE /employees/:id.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	principal, err := managerPrincipal(c)
	if err != nil {
		return err
	}
	employeeID, err := employeeIDParam(c)
	if err != nil {
		return err
	}

	if err := h.roster.DeleteEmployee(c.Context(), principal.ManagerID, employeeID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "employee deleted successfully"})
}

func validateEmployeeFields(req dto.EmployeeRequest) error {
	if util.IsEmpty(req.FirstName) || util.IsEmpty(req.LastName) {
		return fiber.NewError(http.StatusBadRequest, "first and last name are required")
	}
	if req.Phone != "" && !util.IsValidPhone(req.Phone) {
		return fiber.NewError(http.StatusBadRequest, "invalid phone number")
	}
	return nil
}

func employeeIDParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(http.StatusBadRequest, "invalid employee id")
	}
	return id, nil
}
