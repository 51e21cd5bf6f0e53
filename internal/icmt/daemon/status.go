package daemon

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/icmt/icmt/internal/log"
)

// Daemon states reported by GetStatus.
const (
	StateRunning = "running"
	StateStopped = "stopped"
	StateDead    = "dead"
	StateError   = "error"
)

// Status describes the background web front-end.
type Status struct {
	Running bool   `json:"daemon_running"`
	State   string `json:"status"`
	PID     int    `json:"pid,omitempty"`
	PidFile string `json:"pid_file"`
	LogFile string `json:"log_file"`
	Message string `json:"message,omitempty"`
}

// GetStatus inspects the PID file and the process it names. A PID file left
// behind by a dead process is removed.
func GetStatus(cfg Config) Status {
	cfg = cfg.withDefaults()
	st := Status{PidFile: cfg.PidFile, LogFile: cfg.LogFile}

	pid, err := ReadPIDFromFile(cfg.PidFile)
	if err != nil {
		if os.IsNotExist(err) {
			st.State = StateStopped
			st.Message = "PID file not found"
		} else {
			st.State = StateError
			st.Message = err.Error()
		}
		return st
	}
	st.PID = pid

	process, err := os.FindProcess(pid)
	if err != nil {
		st.State = StateError
		st.Message = fmt.Sprintf("Failed to find process: %v", err)
		return st
	}

	if err := process.Signal(syscall.Signal(0)); err != nil {
		st.State = StateDead
		if removeErr := os.Remove(cfg.PidFile); removeErr != nil && !os.IsNotExist(removeErr) {
			st.Message = fmt.Sprintf("Process not running, failed to clean stale PID file: %v", removeErr)
		} else {
			st.Message = "Process not running (cleaned up stale PID file)"
		}
		return st
	}

	st.Running = true
	st.State = StateRunning
	st.Message = "Daemon is running"
	return st
}

// ShowStatus prints the daemon status, as JSON to out when jsonOutput is set.
func ShowStatus(cfg Config, jsonOutput bool, out io.Writer) error {
	st := GetStatus(cfg)

	if jsonOutput {
		data, err := json.MarshalIndent(st, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal status to JSON: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	log.InfoH2("icmt web daemon")
	switch st.State {
	case StateRunning:
		log.Success("Status: RUNNING (PID %d)", st.PID)
		log.Info("PID file: %s", st.PidFile)
		log.Info("Log file: %s", st.LogFile)
		ShowRecentLogs(st.LogFile, 5)
	case StateDead:
		log.Warn("Status: STOPPED (stale PID file found)")
		log.Info("%s", st.Message)
		log.Info("Run 'icmt serve --daemon' to start a new daemon")
	case StateStopped:
		log.Info("Status: NOT RUNNING")
		log.Info("Run 'icmt serve --daemon' to start the daemon")
	default:
		log.Error("Status: ERROR")
		log.Error("%s", st.Message)
		log.Info("PID file: %s", st.PidFile)
	}
	return nil
}
