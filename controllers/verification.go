package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/meinhoongagan/edumate/utils"
	"github.com/meinhoongagan/edumate/verification"
)

type sendCodeInput struct {
	Email string `json:"email"`
}

type verifyCodeInput struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type verifyCodeResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// SendVerificationCode mails a fresh code to the address in the body.
func (h *Controller) SendVerificationCode(c *fiber.Ctx) error {
	var input sendCodeInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Email is required", err)
	}

	err := h.ledger.RequestCode(c.UserContext(), input.Email)
	switch {
	case err == nil:
		return c.JSON(messageResponse{Message: "Verification code sent"})
	case errors.Is(err, verification.ErrEmailRequired):
		return fail(c, fiber.StatusBadRequest, "Email is required", nil)
	default:
		return fail(c, fiber.StatusInternalServerError, "Error sending email", err)
	}
}

// VerifyCode consumes the code for the email in the body. With tickets enabled
// the response carries a token for the register endpoints.
func (h *Controller) VerifyCode(c *fiber.Ctx) error {
	var input verifyCodeInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid code", nil)
	}

	err := h.ledger.VerifyCode(c.UserContext(), input.Email, input.Code)
	if errors.Is(err, verification.ErrInvalidCode) {
		return fail(c, fiber.StatusBadRequest, "Invalid code", nil)
	}
	if err != nil {
		h.log.Error("verify code", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Could not verify code", err)
	}

	resp := verifyCodeResponse{Message: "Code verified"}
	if h.tickets.Enabled {
		token, err := utils.IssueVerificationTicket(input.Email, h.tickets.Secret, h.tickets.TTL)
		if err != nil {
			h.log.Error("issue verification ticket", zap.Error(err))
			return fail(c, fiber.StatusInternalServerError, "Could not verify code", err)
		}
		resp.Token = token
	}
	return c.JSON(resp)
}
