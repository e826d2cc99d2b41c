package launcher

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"chroma-launcher/core/chroma"

	"go.uber.org/zap"
)

// LocateFunc resolves the server entry point from the configured binary.
type LocateFunc func(binary string) (*chroma.Application, error)

// Result is what a successful Start hands back.
type Result struct {
	Settings chroma.Settings
	App      *chroma.Application
}

// Launcher runs the startup routine for one deployment.
type Launcher struct {
	cfg          chroma.Config
	logger       *zap.Logger
	locate       LocateFunc
	client       *chroma.Client
	pollInterval time.Duration
	state        stateBox
}

// Option customizes a Launcher.
type Option func(*Launcher)

// WithLocator replaces chroma.Locate.
func WithLocator(fn LocateFunc) Option {
	return func(l *Launcher) { l.locate = fn }
}

// WithClient sets the client used to wait for readiness in Serve. By default
// it targets the settings URL.
func WithClient(c *chroma.Client) Option {
	return func(l *Launcher) { l.client = c }
}

// New creates a launcher for cfg.
func New(cfg chroma.Config, logger *zap.Logger, opts ...Option) *Launcher {
	l := &Launcher{
		cfg:          cfg,
		logger:       logger,
		locate:       chroma.Locate,
		pollInterval: 500 * time.Millisecond,
	}
	l.state.s.Phase = PhaseIdle
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns the current launcher state. Safe for concurrent use.
func (l *Launcher) State() State {
	return l.state.get()
}

// Start runs the startup routine. It never serves; see Serve.
func (l *Launcher) Start() (*Result, error) {
	res, err := l.start()
	if err != nil {
		l.fail(err)
		return nil, err
	}

	l.logger.Info("✅ Chroma服务器启动成功!")
	l.state.update(func(s *State) {
		s.Phase = PhaseStarted
		s.Settings = &res.Settings
		s.LastError = ""
	})
	return res, nil
}

func (l *Launcher) start() (*Result, error) {
	dir, err := resolveDataDir(l.cfg.DataDir)
	if err != nil {
		return nil, &StartupError{Stage: StageDirectory, Err: err}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &StartupError{Stage: StageDirectory, Err: err}
	}

	settings, err := chroma.NewSettings(dir)
	if err != nil {
		return nil, &StartupError{Stage: StageSettings, Err: err}
	}

	l.logger.Info("正在启动Chroma向量数据库...")
	l.logger.Info("数据目录: "+dir, zap.String("data_dir", dir))
	l.logger.Info("服务器地址: "+settings.URL(), zap.String("url", settings.URL()))

	app, err := l.locate(l.cfg.Binary)
	if err != nil {
		return nil, &StartupError{Stage: StageLocate, Err: err}
	}

	return &Result{Settings: settings, App: app}, nil
}

func (l *Launcher) fail(err error) {
	fields := []zap.Field{zap.Error(err)}
	var serr *StartupError
	if errors.As(err, &serr) {
		fields = append(fields, zap.String("stage", string(serr.Stage)))
	}
	l.logger.Error(fmt.Sprintf("❌ Chroma服务器启动失败: %v", err), fields...)
	l.state.update(func(s *State) {
		s.Phase = PhaseFailed
		s.LastError = err.Error()
	})
}

func resolveDataDir(dir string) (string, error) {
	if dir == "" {
		return "", errors.New("data directory is not configured")
	}
	return filepath.Abs(dir)
}
