package daemon

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tail "github.com/hpcloud/tail"

	"github.com/icmt/icmt/internal/log"
)

// RecentLines returns up to n trailing non-blank lines of logFile.
func RecentLines(logFile string, n int) ([]string, error) {
	//nolint:gosec // G304: log path is constructed by application
	f, err := os.Open(logFile)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	ring := make([]string, 0, n)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || n <= 0 {
			continue
		}
		if len(ring) == n {
			ring = ring[1:]
		}
		ring = append(ring, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ring, nil
}

// ShowRecentLogs prints the last n lines of logFile if it exists.
func ShowRecentLogs(logFile string, n int) {
	lines, err := RecentLines(logFile, n)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Info("   (Unable to read log file)")
		}
		return
	}

	log.Info("")
	log.Info("Recent activity (last %d lines from log):", n)
	for _, line := range lines {
		log.Info("   %s", line)
	}
}

// FollowLogs writes new lines of logFile to out until ctx is done.
func FollowLogs(ctx context.Context, logFile string, out io.Writer) error {
	t, err := tail.TailFile(logFile, tail.Config{
		ReOpen:    true,
		Follow:    true,
		MustExist: false,
		Poll:      true,
		Location:  &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd},
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		return fmt.Errorf("failed to tail log file: %w", err)
	}
	defer t.Cleanup()
	defer func() { _ = t.Stop() }()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-t.Lines:
			if !ok {
				return fmt.Errorf("log tail channel closed")
			}
			if line == nil || strings.TrimSpace(line.Text) == "" {
				continue
			}
			if line.Err != nil {
				log.Debug("tail: %v", line.Err)
				continue
			}
			if _, err := fmt.Fprintln(out, line.Text); err != nil {
				return err
			}
		}
	}
}
