package pidfile

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
)

// ErrLocked is returned when a live process already holds the file
type ErrLocked struct {
	Path string
	PID  int
}

func (e *ErrLocked) Error() string {
	return fmt.Sprintf("%s is held by running process %d", e.Path, e.PID)
}

// PIDFile marks a resource as owned by this process. Journaled sqlite runs
// hold one next to the database file.
type PIDFile struct {
	path string
	held bool
}

// New creates a new PIDFile manager
func New(path string) *PIDFile {
	return &PIDFile{path: path}
}

// ForDatabase returns the pid file guarding the sqlite file at dbPath
func ForDatabase(dbPath string) *PIDFile {
	return New(dbPath + ".pid")
}

func (p *PIDFile) Path() string { return p.path }

// Acquire writes this process ID to the file. A file left behind by a dead
// process, or holding garbage, is taken over.
func (p *PIDFile) Acquire() error {
	if pid, err := p.owner(); err == nil && pid != os.Getpid() && isProcessRunning(pid) {
		return &ErrLocked{Path: p.path, PID: pid}
	}

	f, err := os.OpenFile(p.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to write PID file: %w", err)
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "%d\n", os.Getpid()); err != nil {
		return fmt.Errorf("failed to write PID file: %w", err)
	}

	p.held = true
	return nil
}

// Release removes the file if this PIDFile acquired it
func (p *PIDFile) Release() error {
	if !p.held {
		return nil
	}
	p.held = false
	if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove PID file: %w", err)
	}
	return nil
}

func (p *PIDFile) owner() (int, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}

// isProcessRunning sends signal 0, which only checks that pid exists
func isProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	err = process.Signal(syscall.Signal(0))
	switch {
	case err == nil:
		return true
	case errors.Is(err, syscall.EPERM):
		// Exists but belongs to another user
		return true
	default:
		return false
	}
}
