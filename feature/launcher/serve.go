package launcher

import (
	"context"
	"fmt"
	"time"

	"chroma-launcher/core/chroma"

	"go.uber.org/zap"
)

const defaultReadyTimeout = 30 * time.Second

// Serve runs the server described by res until it exits or ctx is cancelled.
// A cancelled context is a clean stop and returns nil.
func (l *Launcher) Serve(ctx context.Context, res *Result) error {
	cmd := res.App.Command(ctx, res.Settings)
	out := newLineWriter(l.logger.Named("chroma"))
	cmd.Stdout = out
	cmd.Stderr = out

	if err := cmd.Start(); err != nil {
		serr := &StartupError{Stage: StageServe, Err: err}
		l.fail(serr)
		return serr
	}

	now := time.Now()
	l.logger.Info("Chroma进程已启动",
		zap.Int("pid", cmd.Process.Pid),
		zap.String("addr", res.Settings.Addr()),
	)
	l.state.update(func(s *State) {
		s.Phase = PhaseServing
		s.Settings = &res.Settings
		s.PID = cmd.Process.Pid
		s.StartedAt = &now
		s.ReadyAt = nil
		s.LastError = ""
	})

	readyCtx, cancelReady := context.WithCancel(ctx)
	readyDone := make(chan struct{})
	go func() {
		defer close(readyDone)
		l.awaitReady(readyCtx, res.Settings)
	}()

	err := cmd.Wait()
	cancelReady()
	<-readyDone
	out.Flush()

	switch {
	case ctx.Err() != nil:
		l.logger.Info("Chroma进程已停止")
		l.state.update(func(s *State) { s.Phase = PhaseStopped; s.PID = 0 })
		return nil
	case err != nil:
		serr := &StartupError{Stage: StageServe, Err: fmt.Errorf("server exited: %w", err)}
		l.logger.Error("Chroma进程异常退出", zap.Error(err))
		l.state.update(func(s *State) {
			s.Phase = PhaseCrashed
			s.PID = 0
			s.LastError = serr.Error()
		})
		return serr
	default:
		l.logger.Info("Chroma进程已退出")
		l.state.update(func(s *State) { s.Phase = PhaseStopped; s.PID = 0 })
		return nil
	}
}

// awaitReady polls the heartbeat until it answers, the timeout passes or ctx ends.
func (l *Launcher) awaitReady(ctx context.Context, settings chroma.Settings) {
	timeout := time.Duration(l.cfg.ReadyTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultReadyTimeout
	}
	client := l.client
	if client == nil {
		client = chroma.NewClient(settings.URL(), time.Second)
	}

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(l.pollInterval)
	defer ticker.Stop()

	for {
		if ns, err := client.Heartbeat(); err == nil {
			now := time.Now()
			l.logger.Info("Chroma心跳正常", zap.Int64("heartbeat", ns))
			l.state.update(func(s *State) {
				if s.Phase == PhaseServing {
					s.Phase = PhaseReady
					s.ReadyAt = &now
				}
			})
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-deadline.C:
			l.logger.Warn("等待Chroma就绪超时", zap.Duration("timeout", timeout))
			return
		case <-ticker.C:
		}
	}
}
