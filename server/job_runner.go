package server

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	config "github.com/inference-gateway/super8/server/config"
	zap "go.uber.org/zap"
)

const (
	// maxJobOutput bounds the diagnostic text carried by a JobError
	maxJobOutput = 4096

	// jobWaitDelay bounds how long Wait keeps draining output pipes after the
	// process group has been killed
	jobWaitDelay = 5 * time.Second
)

// JobRunner invokes the external transformation on an inbound file.
// A nil error means the process reported success; whether the outbound
// file really exists is checked by whoever serves it.
//
//go:generate go tool counterfeiter -o mocks/fake_job_runner.go . JobRunner
type JobRunner interface {
	Run(ctx context.Context, inboundPath, outboundPath string) error
}

// ExecJobRunner runs the transformation as a child process
type ExecJobRunner struct {
	cfg    config.JobConfig
	logger *zap.Logger
}

var _ JobRunner = (*ExecJobRunner)(nil)

// NewExecJobRunner creates a job runner for the configured command
func NewExecJobRunner(cfg config.JobConfig, logger *zap.Logger) *ExecJobRunner {
	return &ExecJobRunner{
		cfg:    cfg,
		logger: logger,
	}
}

// Run executes `<command> <args...> <inbound> <outbound>` and blocks until it exits.
// The command runs in its own process group. When the timeout expires or ctx is
// cancelled the whole group is killed, including anything the command spawned.
func (r *ExecJobRunner) Run(ctx context.Context, inboundPath, outboundPath string) error {
	runCtx := ctx
	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	args := make([]string, 0, len(r.cfg.Args)+2)
	args = append(args, r.cfg.Args...)
	args = append(args, inboundPath, outboundPath)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(runCtx, r.cfg.Command, args...)
	cmd.Dir = r.cfg.WorkingDir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = jobWaitDelay
	killProcessGroupOnCancel(cmd)

	r.logger.Debug("starting transformation",
		zap.String("command", r.cfg.Command),
		zap.Strings("args", args),
		zap.String("dir", r.cfg.WorkingDir))

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)
	output := diagnostic(stderr.String(), stdout.String())

	if ctxErr := runCtx.Err(); ctxErr != nil {
		timedOut := errors.Is(ctxErr, context.DeadlineExceeded)
		r.logger.Warn("transformation interrupted",
			zap.Bool("timed_out", timedOut),
			zap.Duration("duration", duration),
			zap.Error(ctxErr))
		return NewJobError(0, output, timedOut, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		r.logger.Warn("transformation exited with non-zero code",
			zap.Int("exit_code", exitErr.ExitCode()),
			zap.Duration("duration", duration),
			zap.String("stderr", truncate(stderr.String())))
		return NewJobError(exitErr.ExitCode(), output, false, nil)
	}

	if err != nil {
		r.logger.Error("transformation could not be executed", zap.Error(err))
		return NewJobError(0, output, false, err)
	}

	r.logger.Debug("transformation completed", zap.Duration("duration", duration))
	return nil
}

// diagnostic prefers stderr and falls back to stdout
func diagnostic(stderr, stdout string) string {
	out := strings.TrimSpace(stderr)
	if out == "" {
		out = strings.TrimSpace(stdout)
	}
	return truncate(out)
}

func truncate(s string) string {
	if len(s) <= maxJobOutput {
		return s
	}
	return s[len(s)-maxJobOutput:]
}
