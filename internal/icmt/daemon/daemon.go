// Package daemon runs the web front-end as a background process and manages
// it through its PID and log files.
package daemon

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	godaemon "github.com/sevlyar/go-daemon"

	"github.com/icmt/icmt/internal/log"
)

// Config locates the daemon's files.
type Config struct {
	PidFile     string
	LogFile     string
	StopTimeout time.Duration
}

// DefaultConfig keeps the daemon files under .icmt/ in the working directory.
var DefaultConfig = Config{
	PidFile:     filepath.Join(".icmt", "serve.pid"),
	LogFile:     filepath.Join(".icmt", "serve.log"),
	StopTimeout: 5 * time.Second,
}

func (c Config) withDefaults() Config {
	if c.PidFile == "" {
		c.PidFile = DefaultConfig.PidFile
	}
	if c.LogFile == "" {
		c.LogFile = DefaultConfig.LogFile
	}
	if c.StopTimeout <= 0 {
		c.StopTimeout = DefaultConfig.StopTimeout
	}
	return c
}

// Start forks the current command into the background. The child process
// runs fn until it receives SIGINT or SIGTERM; the parent returns as soon as
// the child is started.
func Start(cfg Config, fn func(ctx context.Context) error) error {
	cfg = cfg.withDefaults()

	if !godaemon.WasReborn() {
		if st := GetStatus(cfg); st.Running {
			return fmt.Errorf("daemon already running with PID %d", st.PID)
		}
	}

	if err := EnsureDirectoriesExist(cfg.PidFile, cfg.LogFile); err != nil {
		return err
	}

	daemonCtx := &godaemon.Context{
		LogFileName: cfg.LogFile,
		LogFilePerm: 0640,
		WorkDir:     "./",
		Umask:       027,
	}

	child, err := daemonCtx.Reborn()
	if err != nil {
		return fmt.Errorf("failed to fork daemon: %w", err)
	}
	if child != nil {
		log.Success("icmt web daemon started (PID %d)", child.Pid)
		log.Info("PID file: %s", cfg.PidFile)
		log.Info("Log file: %s", cfg.LogFile)
		return nil
	}
	defer func() { _ = daemonCtx.Release() }()

	return runChild(cfg, fn)
}

func runChild(cfg Config, fn func(ctx context.Context) error) error {
	pid := os.Getpid()
	if err := WritePIDFile(cfg.PidFile, pid); err != nil {
		log.Error("Failed to write PID file: %v", err)
		return err
	}
	defer func() {
		if err := os.Remove(cfg.PidFile); err != nil && !os.IsNotExist(err) {
			log.Error("Failed to remove PID file: %v", err)
		}
	}()

	log.Info("icmt web daemon running (PID %d)", pid)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := fn(ctx); err != nil {
		log.Error("Daemon exited with error: %v", err)
		return err
	}
	log.Info("icmt web daemon stopped")
	return nil
}

// Stop sends SIGTERM to the daemon and escalates to SIGKILL when it is still
// alive after cfg.StopTimeout.
func Stop(cfg Config) error {
	cfg = cfg.withDefaults()

	pid, err := ReadPIDFromFile(cfg.PidFile)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("daemon is not running (PID file not found)")
		}
		return err
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("failed to find process: %w", err)
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		if !alive(process) {
			removeStalePID(cfg.PidFile)
			return fmt.Errorf("daemon is not running (stale PID %d)", pid)
		}
		return fmt.Errorf("failed to send SIGTERM to process %d: %w", pid, err)
	}

	deadline := time.Now().Add(cfg.StopTimeout)
	for alive(process) && time.Now().Before(deadline) {
		time.Sleep(100 * time.Millisecond)
	}

	if alive(process) {
		log.Warn("Process %d still running, sending SIGKILL...", pid)
		if err := process.Kill(); err != nil {
			return fmt.Errorf("failed to kill process %d: %w", pid, err)
		}
	}

	removeStalePID(cfg.PidFile)
	log.Success("icmt web daemon stopped")
	return nil
}

func alive(process *os.Process) bool {
	return process.Signal(syscall.Signal(0)) == nil
}

func removeStalePID(pidFile string) {
	if err := os.Remove(pidFile); err != nil && !os.IsNotExist(err) {
		log.Warn("Failed to remove PID file %s: %v", pidFile, err)
	}
}
