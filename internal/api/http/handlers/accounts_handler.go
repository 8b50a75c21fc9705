package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/david8219501/leader-app-server-08-09-25/internal/api/dto"
	"github.com/david8219501/leader-app-server-08-09-25/internal/service"
	"github.com/david8219501/leader-app-server-08-09-25/pkg/util"
)

// AccountsHandler exposes the unauthenticated registration and login
// endpoints.
type AccountsHandler struct {
	accounts *service.AccountService
}

// NewAccountsHandler constructs handler.
func NewAccountsHandler(accounts *service.AccountService) *AccountsHandler {
	return &AccountsHandler{accounts: accounts}
}

// Register handles POST /register. All validation happens before any store
// access.
func (h *AccountsHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if util.IsEmpty(req.FirstName) || util.IsEmpty(req.LastName) || util.IsEmpty(req.Phone) ||
		util.IsEmpty(req.Email) || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "missing details")
	}
	if !util.IsValidPhone(req.Phone) {
		return fiber.NewError(http.StatusBadRequest, "invalid phone number (10 digits required)")
	}
	if !util.IsValidPasswordLength(req.Password) {
		return fiber.NewError(http.StatusBadRequest, "password must contain at least 6 characters")
	}

	manager, err := h.accounts.Register(c.Context(), req.FirstName, req.LastName, req.Phone, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"id":      manager.ID,
		"message": "registered successfully",
	})
}

// Login handles POST /login.
func (h *AccountsHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if util.IsEmpty(req.Email) || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "please fill in email and password")
	}

	manager, token, exp, err := h.accounts.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.LoginResponse{
		Token:     token,
		ExpiresAt: exp,
		Manager:   dto.NewManagerResponse(manager),
	})
}
