package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Cyclone1070/fman/internal/clock"
	"github.com/Cyclone1070/fman/internal/config"
	"github.com/Cyclone1070/fman/internal/engine"
	"github.com/Cyclone1070/fman/internal/logging"
	"github.com/Cyclone1070/fman/internal/metrics"
	"go.uber.org/zap"
)

// ErrReported marks an error whose details were already printed by the command.
var ErrReported = errors.New("reported")

// ErrNoRoot is returned by one-shot commands when no directory was given.
var ErrNoRoot = errors.New("no directory given: pass --root or set FMAN_ROOT")

const metricsShutdownTimeout = 2 * time.Second

// session holds everything one command invocation needs.
type session struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics *metrics.Metrics
	server  *http.Server
	engine  *engine.Engine
}

// openSession loads config, applies flag overrides and wires the engine.
func openSession(opts *options) (*session, error) {
	loader := config.NewLoader()
	if opts.configPath != "" {
		loader = loader.WithPath(opts.configPath)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.metricsAddr != "" {
		cfg.Metrics.Addr = opts.metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// The UI owns the terminal, so logs go to a file unless configured otherwise.
	logFile := cfg.Log.File
	if logFile == "" {
		logFile = logging.DefaultFile()
	}
	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, File: logFile})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	s := &session{cfg: cfg, logger: logger}
	if cfg.Metrics.Addr != "" {
		s.metrics = metrics.New()
		s.server = s.metrics.NewServer(cfg.Metrics.Addr)
		go func() {
			if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Warn("metrics server stopped", zap.String("addr", cfg.Metrics.Addr), zap.Error(err))
			}
		}()
	}
	s.engine = engine.NewFromConfig(cfg, s.metrics, clock.RealClock{}, logger)

	logger.Debug("session opened", zap.String("log_file", logFile), zap.Bool("metrics", s.metrics != nil))
	return s, nil
}

// Close stops the metrics listener and flushes the logger.
func (s *session) Close() {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		if err := s.server.Shutdown(ctx); err != nil {
			s.logger.Warn("failed to stop metrics server", zap.Error(err))
		}
	}
	_ = s.logger.Sync()
}

// rootPath picks the directory from the --root flag or the configured default.
func (s *session) rootPath(opts *options) string {
	if opts.root != "" {
		return opts.root
	}
	return s.cfg.Engine.DefaultRoot
}

func (s *session) chooseRoot(path string) error {
	if path == "" {
		return ErrNoRoot
	}
	_, err := s.engine.ChooseRoot(path)
	return err
}
