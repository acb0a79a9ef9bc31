package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/avstrong/diamond/internal/booking"
	"github.com/avstrong/diamond/internal/boost"
	"github.com/avstrong/diamond/internal/config"
	"github.com/avstrong/diamond/internal/idgen/uuidgen"
	"github.com/avstrong/diamond/internal/logger"
	"github.com/avstrong/diamond/internal/pricing"
	"github.com/avstrong/diamond/internal/storage/memory"
	"github.com/avstrong/diamond/internal/transport/web"
)

const shutdownTimeout = 4 * time.Second

// NewLogger builds the application logger from configuration.
func NewLogger(cfg config.Config) (*logger.Logger, error) {
	l, err := logger.New(logger.Conf{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxAgeDays: cfg.LogMaxAgeDays,
		Color:      cfg.LogColor,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return l, nil
}

// NewCalculator loads the rate table, from RATES_FILE when set.
func NewCalculator(l *logger.Logger, cfg config.Config) (*pricing.Calculator, error) {
	rates := pricing.DefaultRates()

	if cfg.RatesFile != "" {
		loaded, err := pricing.LoadRates(cfg.RatesFile)
		if err != nil {
			return nil, fmt.Errorf("load rates: %w", err)
		}

		rates = loaded

		l.LogInfo("Rates loaded from %v", cfg.RatesFile)
	}

	return pricing.NewCalculator(rates, boost.New().Strategies()...), nil
}

func Run(l *logger.Logger, cfg config.Config) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	calculator, err := NewCalculator(l, cfg)
	if err != nil {
		return err
	}

	storage := memory.New(memory.Config{L: l, TTL: cfg.DraftTTL})
	bookManager := booking.New(l, booking.Conf{Recipient: cfg.BookingEmail}, storage, uuidgen.New())

	webConf := web.Conf{
		L:                 l,
		ServerLogger:      l.StdLogger(),
		Host:              cfg.Host,
		Port:              cfg.Port,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		LivenessEndpoint:  cfg.LivenessEndpoint,
	}

	srv, err := web.New(ctx, webConf, calculator, bookManager)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	//nolint:contextcheck
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Srv().Shutdown(ctx); err != nil {
			l.LogErrorf("Failed to stop http server: %v", err.Error())
		}
	}()

	l.LogInfo("Application is running on %v:%v...", webConf.Host, webConf.Port)

	if err := srv.Srv().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		l.LogErrorf("Failed to run http server: %v", err.Error())

		cancel()
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}
