package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ibroximov13/FindCourse/internal/config"
	httpx "github.com/ibroximov13/FindCourse/internal/http"
	"github.com/ibroximov13/FindCourse/internal/http/handlers"
	"github.com/ibroximov13/FindCourse/internal/http/middleware"
	"github.com/ibroximov13/FindCourse/internal/logging"
	"github.com/ibroximov13/FindCourse/internal/services"
)

// Run wires the whole service together and blocks until SIGINT/SIGTERM.
func Run(cfg *config.Config) error {
	log := logging.Component("app")

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := services.SyncRoutePolicies(c.PolicySvc); err != nil {
		return err
	}
	if cfg.SeedEnabled {
		if err := seed(context.Background(), c.RegionRepo, c.UserRepo, c.PasswordSvc); err != nil {
			return err
		}
	}

	if err := handlers.RegisterValidators(); err != nil {
		return err
	}

	h := httpx.Handlers{
		Auth:     handlers.NewAuthHandlers(c.AuthSvc, c.AccountSvc, c.OTPSvc),
		Users:    handlers.NewUserHandlers(c.AccountSvc),
		Sessions: handlers.NewSessionHandlers(c.SessionRepo),
		Regions:  handlers.NewRegionHandlers(c.RegionRepo),
		Policies: handlers.NewPolicyHandlers(c.PolicySvc),
	}
	jwtMW := middleware.NewAuthMW(c.TokenSvc)
	casbinMW := middleware.NewCasbinMW(c.Casbin.E)

	r := httpx.BuildRouter(h, jwtMW, casbinMW)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
