package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const (
	maxLogSize  = 5 * 1024 * 1024 // 5MB
	maxLogFiles = 3               // Keep 3 backup files
	logFileName = "huewheel.log"
)

var (
	logMutex sync.Mutex
	logFile  *rotatingFile
)

// rotatingFile is an append-only log file that rolls itself over to
// huewheel.log.1..N once it grows past maxSize.
type rotatingFile struct {
	dir     string
	maxSize int64
	file    *os.File
	size    int64
}

func openRotatingFile(dir string, maxSize int64) (*rotatingFile, error) {
	r := &rotatingFile{dir: dir, maxSize: maxSize}

	if info, err := os.Stat(r.path()); err == nil {
		r.size = info.Size()
		if r.size >= r.maxSize {
			if err := r.rotate(); err != nil {
				return nil, fmt.Errorf("failed to rotate logs: %w", err)
			}
		}
	}

	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *rotatingFile) path() string {
	return filepath.Join(r.dir, logFileName)
}

func (r *rotatingFile) open() error {
	file, err := os.OpenFile(r.path(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.file = file
	return nil
}

func (r *rotatingFile) Write(p []byte) (int, error) {
	if r.file == nil {
		return 0, os.ErrClosed
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	if err != nil {
		return n, err
	}

	if r.size >= r.maxSize {
		if err := r.rotate(); err != nil {
			return n, err
		}
		if err := r.open(); err != nil {
			return n, err
		}
	}
	return n, nil
}

// rotate closes the current file and shifts the backups up by one.
func (r *rotatingFile) rotate() error {
	if r.file != nil {
		r.file.Close()
		r.file = nil
	}

	basePath := r.path()

	// Remove oldest backup
	os.Remove(fmt.Sprintf("%s.%d", basePath, maxLogFiles))

	for i := maxLogFiles - 1; i >= 1; i-- {
		oldPath := fmt.Sprintf("%s.%d", basePath, i)
		newPath := fmt.Sprintf("%s.%d", basePath, i+1)
		os.Rename(oldPath, newPath) // Ignore error if source doesn't exist
	}

	if err := os.Rename(basePath, basePath+".1"); err != nil && !os.IsNotExist(err) {
		return err
	}

	r.size = 0
	return nil
}

func (r *rotatingFile) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// lockedWriter serialises writes with InitLogger/CloseLogger.
type lockedWriter struct{}

func (lockedWriter) Write(p []byte) (int, error) {
	logMutex.Lock()
	defer logMutex.Unlock()

	if logFile == nil {
		return len(p), nil
	}
	return logFile.Write(p)
}

// InitLogger sends the standard logger to stderr and to huewheel.log in dir.
// This should be called once during application startup
func InitLogger(dir string) error {
	logMutex.Lock()
	defer logMutex.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}

	r, err := openRotatingFile(dir, maxLogSize)
	if err != nil {
		return err
	}
	logFile = r

	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetOutput(io.MultiWriter(os.Stderr, lockedWriter{}))

	return nil
}

// LogPath returns the path of the active log file, or "" before InitLogger.
func LogPath() string {
	logMutex.Lock()
	defer logMutex.Unlock()

	if logFile == nil {
		return ""
	}
	return logFile.path()
}

// CloseLogger closes the log file. Later output only goes to stderr.
func CloseLogger() {
	logMutex.Lock()
	defer logMutex.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
