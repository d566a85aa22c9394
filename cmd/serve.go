package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meinhoongagan/edumate/config"
	"github.com/meinhoongagan/edumate/controllers"
	"github.com/meinhoongagan/edumate/cron"
	"github.com/meinhoongagan/edumate/db"
	"github.com/meinhoongagan/edumate/mailer"
	"github.com/meinhoongagan/edumate/media"
	"github.com/meinhoongagan/edumate/middleware"
	"github.com/meinhoongagan/edumate/redis"
	"github.com/meinhoongagan/edumate/repository"
	"github.com/meinhoongagan/edumate/routes"
	"github.com/meinhoongagan/edumate/services"
	"github.com/meinhoongagan/edumate/verification"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, log)
	},
}

func serve(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	srv, err := build(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer srv.close()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", zap.String("port", cfg.Port))
		errCh <- srv.app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info("shutting down")
	return srv.app.ShutdownWithTimeout(shutdownTimeout)
}

type server struct {
	app     *fiber.App
	closers []func()
}

func (s *server) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// build wires storage, mail, media and services into a fiber app according to cfg.
func build(ctx context.Context, cfg *config.Config, log *zap.Logger) (*server, error) {
	srv := &server{}
	fail := func(err error) (*server, error) {
		srv.close()
		return nil, err
	}

	var (
		accounts     repository.AccountRepository
		appointments repository.AppointmentRepository
	)
	switch cfg.DBDriver {
	case config.DriverPostgres:
		conn, err := db.Init(cfg.DatabaseURL)
		if err != nil {
			return fail(err)
		}
		if err := db.Migrate(conn); err != nil {
			return fail(err)
		}
		if sqlDB, err := conn.DB(); err == nil {
			srv.closers = append(srv.closers, func() { _ = sqlDB.Close() })
		}
		store := repository.NewGormStore(conn)
		accounts, appointments = store, store
	default:
		log.Warn("using in-memory storage, data is lost on restart")
		store := repository.NewMemoryStore()
		accounts, appointments = store, store
	}

	var codes verification.Store
	switch cfg.VerificationStore {
	case config.StoreRedis:
		client, err := redis.Init(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return fail(err)
		}
		srv.closers = append(srv.closers, func() { _ = client.Close() })
		codes = verification.NewRedisStore(client)
	default:
		store := verification.NewMemoryStore()
		scheduler, err := cron.StartCronJobs(cfg.VerificationSweepSpec, store, log)
		if err != nil {
			return fail(err)
		}
		srv.closers = append(srv.closers, func() { <-scheduler.Stop().Done() })
		codes = store
	}

	sender, err := newSender(cfg, log)
	if err != nil {
		return fail(err)
	}

	images, err := media.New(cfg.Cloudinary)
	if err != nil {
		return fail(err)
	}

	accountService, err := services.NewAccounts(accounts, images, cfg.BcryptCost, log)
	if err != nil {
		return fail(err)
	}
	handler := controllers.New(
		verification.NewLedger(codes, sender, cfg.VerificationCodeTTL, log),
		accountService,
		services.NewAppointments(appointments, cfg.StrictStatusTransitions, log),
		controllers.TicketConfig{
			Enabled: cfg.RequireVerifiedEmail,
			Secret:  []byte(cfg.JWTSecret),
			TTL:     cfg.VerificationTicketTTL,
		},
		log,
	)

	srv.app = newApp(cfg, log)
	routes.Setup(srv.app, handler, middleware.VerifiedEmail(cfg.RequireVerifiedEmail, []byte(cfg.JWTSecret)))
	return srv, nil
}

// newSender returns the SMTP transport unless log-only delivery was chosen explicitly.
func newSender(cfg *config.Config, log *zap.Logger) (verification.Sender, error) {
	switch cfg.MailTransport {
	case config.MailLog:
		log.Warn("MAIL_TRANSPORT=log, verification emails are only logged")
		return mailer.NewLogSender(log), nil
	case config.MailSMTP:
		if !cfg.SMTP.Enabled() {
			return nil, errors.New("SMTP_HOST and SMTP_PORT are required for MAIL_TRANSPORT=smtp")
		}
		return mailer.NewSMTPSender(cfg.SMTP), nil
	}
	return nil, fmt.Errorf("unsupported MAIL_TRANSPORT %q", cfg.MailTransport)
}

func newApp(cfg *config.Config, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "edumate",
		BodyLimit:             cfg.BodyLimit,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: strings.Join([]string{
			fiber.MethodPost, fiber.MethodGet, fiber.MethodPut, fiber.MethodDelete,
		}, ","),
	}))
	return app
}
