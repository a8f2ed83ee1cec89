package app

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/pkg/browser"
	"go.uber.org/zap"

	"github.com/five82/shorty/internal/config"
	"github.com/five82/shorty/internal/logger"
	"github.com/five82/shorty/internal/shortener"
	"github.com/five82/shorty/internal/submission"
	"github.com/five82/shorty/internal/ui"
)

var _ submission.Shortener = (*shortener.Client)(nil)

// Options configure the shorty application. Non-empty fields override the
// config file.
type Options struct {
	ConfigPath string
	APIURL     string
	LogLevel   string
}

// session holds the wired components for one run.
type session struct {
	configPath string
	cfg        config.Config
	logger     *zap.Logger
	client     *shortener.Client
	controller *submission.Controller
}

// Run boots the shorty TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	s, err := setup(opts, openBrowser)
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	s.logger.Info("shorty starting",
		zap.String("config_path", s.configPath),
		zap.String("api_url", s.client.BaseURL()),
		zap.Duration("request_timeout", s.cfg.RequestTimeout),
		zap.Bool("keep_error_on_edit", s.cfg.KeepErrorOnEdit),
		zap.Bool("allow_overlapping_submits", s.cfg.AllowOverlappingSubmits),
	)
	if !slices.Contains(ui.ThemeNames(), s.cfg.Theme) {
		s.logger.Warn("unknown theme, using default", zap.String("theme", s.cfg.Theme), zap.Strings("available", ui.ThemeNames()))
	}

	err = ui.Run(ui.Options{
		Context:    ctx,
		Controller: s.controller,
		APIURL:     s.client.BaseURL(),
		LogPath:    s.cfg.LogPath,
		ThemeName:  s.cfg.Theme,
		Logger:     s.logger.Named("ui"),
	})

	snap := s.controller.Snapshot()
	s.logger.Info("shorty stopped", zap.Uint64("attempts", snap.Attempts), zap.Error(err))
	return err
}

func setup(opts Options, navigate submission.Navigator) (*session, error) {
	configPath := opts.ConfigPath
	if strings.TrimSpace(configPath) == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(opts.APIURL); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(opts.LogLevel); v != "" {
		cfg.LogLevel = v
	}

	log, err := logger.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	client, err := shortener.NewClient(cfg.APIURL,
		shortener.WithTimeout(cfg.RequestTimeout),
		shortener.WithLogger(log.Named("client")),
	)
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("init shortener client: %w", err)
	}

	controller := submission.NewController(client, submission.Options{
		KeepErrorOnEdit: cfg.KeepErrorOnEdit,
		AllowOverlap:    cfg.AllowOverlappingSubmits,
		Navigator:       navigate,
		Logger:          log.Named("submission"),
		RequestContext: func(ctx context.Context, a submission.Attempt) context.Context {
			return shortener.WithRequestID(ctx, a.RequestID)
		},
	})

	return &session{configPath: configPath, cfg: cfg, logger: log, client: client, controller: controller}, nil
}

// openBrowser opens target in the system browser. The launcher's own output
// would corrupt the alt screen, so it is discarded.
func openBrowser(target string) error {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return browser.OpenURL(target)
}
