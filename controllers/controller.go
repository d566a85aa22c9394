// Package controllers maps HTTP requests onto the verification ledger and the
// account and appointment services.
package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/meinhoongagan/edumate/services"
	"github.com/meinhoongagan/edumate/utils"
	"github.com/meinhoongagan/edumate/verification"
)

// TicketConfig controls whether verify-code hands out a signed ticket that the
// register endpoints then require.
type TicketConfig struct {
	Enabled bool
	Secret  []byte
	TTL     time.Duration
}

type Controller struct {
	ledger       *verification.Ledger
	accounts     *services.Accounts
	appointments *services.Appointments
	tickets      TicketConfig
	log          *zap.Logger
}

func New(
	ledger *verification.Ledger,
	accounts *services.Accounts,
	appointments *services.Appointments,
	tickets TicketConfig,
	log *zap.Logger,
) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		ledger:       ledger,
		accounts:     accounts,
		appointments: appointments,
		tickets:      tickets,
		log:          log,
	}
}

// messageResponse is the body of a request that succeeded or failed with a
// message only.
type messageResponse struct {
	Message string `json:"message"`
}

type userResponse struct {
	Message string      `json:"message"`
	User    interface{} `json:"user"`
}

func fail(c *fiber.Ctx, status int, message string, err error) error {
	resp := utils.ErrorResponse{Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	return c.Status(status).JSON(resp)
}

// Status is the liveness probe served at the root path.
func (h *Controller) Status(c *fiber.Ctx) error {
	return c.JSON(messageResponse{Message: "Running"})
}
