package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/david8219501/leader-app-server-08-09-25/internal/api/dto"
	"github.com/david8219501/leader-app-server-08-09-25/internal/auth"
	"github.com/david8219501/leader-app-server-08-09-25/internal/service"
	"github.com/david8219501/leader-app-server-08-09-25/pkg/util"
)

// ManagerHandler exposes the authenticated manager's own profile endpoints.
type ManagerHandler struct {
	accounts *service.AccountService
}

// NewManagerHandler constructs handler.
func NewManagerHandler(accounts *service.AccountService) *ManagerHandler {
	return &ManagerHandler{accounts: accounts}
}

// GetProfile handles GET /manager/profile.
func (h *ManagerHandler) GetProfile(c *fiber.Ctx) error {
	principal, err := managerPrincipal(c)
	if err != nil {
		return err
	}

	manager, err := h.accounts.GetProfile(c.Context(), principal.ManagerID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewManagerResponse(manager))
}

// UpdateProfile handles PUT /manager/profile.
func (h *ManagerHandler) UpdateProfile(c *fiber.Ctx) error {
	principal, err := managerPrincipal(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if util.IsEmpty(req.FirstName) || util.IsEmpty(req.LastName) || util.IsEmpty(req.Email) {
		return fiber.NewError(http.StatusBadRequest, "name and email are required")
	}
	if req.Phone != "" && !util.IsValidPhone(req.Phone) {
		return fiber.NewError(http.StatusBadRequest, "invalid phone number")
	}

	if err := h.accounts.UpdateProfile(c.Context(), principal.ManagerID, req.FirstName, req.LastName, optionalString(req.Phone), req.Email); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "profile updated successfully"})
}

// ChangePassword handles PUT /manager/password.
func (h *ManagerHandler) ChangePassword(c *fiber.Ctx) error {
	principal, err := managerPrincipal(c)
	if err != nil {
		return err
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return fiber.NewError(http.StatusBadRequest, "both passwords are required")
	}
	if !util.IsValidPasswordLength(req.NewPassword) {
		return fiber.NewError(http.StatusBadRequest, "new password must contain at least 6 characters")
	}

	if err := h.accounts.ChangePassword(c.Context(), principal.ManagerID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "password changed successfully"})
}

func managerPrincipal(c *fiber.Ctx) (*auth.Principal, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return nil, fiber.NewError(http.StatusUnauthorized, "authentication required")
	}
	return principal, nil
}

// optionalString maps an empty form value to NULL.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
