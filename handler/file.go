package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ticklog/ticklog/core"
	"github.com/ticklog/ticklog/formatter"
)

// FileHandler writes log entries to a file with rotation support.
type FileHandler struct {
	filename       string
	file           *os.File
	formatter      formatter.Formatter
	async          bool
	queue          *asyncQueue
	closed         chan struct{}
	closeOnce      sync.Once
	mu             sync.Mutex
	maxSize        int64
	maxAge         time.Duration
	maxBackups     int
	rotateInterval time.Duration
	currentSize    int64
	lastRotateTime time.Time
	stats          *Stats
}

// FileConfig holds configuration for the file handler.
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Async enables asynchronous logging (default: false)
	Async bool
	// BufferSize is the size of the async queue (default: 1000)
	BufferSize int
	// MaxSize is the maximum size in bytes before rotation (0 = no size rotation)
	MaxSize int64
	// MaxAge is the maximum age before rotation (0 = no age rotation)
	MaxAge time.Duration
	// MaxBackups is the maximum number of old log files to retain (0 = keep all)
	MaxBackups int
	// RotateInterval is the interval for time-based rotation (0 = no interval rotation)
	RotateInterval time.Duration
	// OverflowPolicy defines per-level overflow behavior (default: DefaultLevelPolicy)
	OverflowPolicy map[core.Level]OverflowPolicy
	// BlockTimeout is the timeout for the Block overflow policy (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout is the timeout for draining the queue on Close (default: 5s)
	DrainTimeout time.Duration
}

// NewFileHandler creates a file handler, creating the target directory
// when needed.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.OverflowPolicy == nil {
		cfg.OverflowPolicy = DefaultLevelPolicy()
	}
	if cfg.BlockTimeout == 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Filename), 0755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	h := &FileHandler{
		filename:       cfg.Filename,
		file:           file,
		formatter:      cfg.Formatter,
		async:          cfg.Async,
		maxSize:        cfg.MaxSize,
		maxAge:         cfg.MaxAge,
		maxBackups:     cfg.MaxBackups,
		rotateInterval: cfg.RotateInterval,
		currentSize:    info.Size(),
		lastRotateTime: time.Now(),
		closed:         make(chan struct{}),
		stats:          NewStats(),
	}

	if h.async {
		h.queue = newAsyncQueue(cfg.BufferSize, cfg.OverflowPolicy, cfg.BlockTimeout, cfg.DrainTimeout, h.stats, h.closed)
		h.queue.start(h.write)
	}

	return h, nil
}

// Handle processes a log entry.
func (h *FileHandler) Handle(entry *core.Entry) error {
	if !h.async {
		return h.write(entry)
	}
	switch h.queue.enqueue(entry) {
	case syncFallback:
		return h.write(entry)
	default:
		return nil
	}
}

// write formats and writes an entry, rotating first when due.
func (h *FileHandler) write(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	if err := h.rotateIfNeeded(); err != nil {
		return err
	}

	n, err := h.file.Write(data)
	if err == nil {
		h.currentSize += int64(n)
		h.stats.IncrementProcessed()
	}
	return err
}

// CanRecycleEntry reports whether the caller may recycle the entry
// after Handle returns.
func (h *FileHandler) CanRecycleEntry() bool {
	return !h.async
}

// rotateIfNeeded rotates when any configured limit is exceeded.
// Callers must hold mu.
func (h *FileHandler) rotateIfNeeded() error {
	due := false
	if h.maxSize > 0 && h.currentSize >= h.maxSize {
		due = true
	}
	if h.maxAge > 0 && time.Since(h.lastRotateTime) >= h.maxAge {
		due = true
	}
	if h.rotateInterval > 0 && time.Since(h.lastRotateTime) >= h.rotateInterval {
		due = true
	}
	if !due {
		return nil
	}
	return h.rotate()
}

// rotate closes the current file, renames it with a timestamp suffix
// and opens a fresh one. Callers must hold mu.
func (h *FileHandler) rotate() error {
	if err := h.file.Sync(); err != nil {
		return err
	}
	if err := h.file.Close(); err != nil {
		return err
	}

	timestamp := time.Now().Format("2006-01-02T15-04-05")
	rotatedName := fmt.Sprintf("%s.%s", h.filename, timestamp)

	if err := os.Rename(h.filename, rotatedName); err != nil {
		// Reopen the original so logging can continue.
		file, openErr := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if openErr != nil {
			return fmt.Errorf("rotation failed: %v, reopen failed: %v", err, openErr)
		}
		h.file = file
		return err
	}

	if h.maxBackups > 0 {
		h.cleanupOldBackups()
	}

	file, err := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	h.file = file
	h.currentSize = 0
	h.lastRotateTime = time.Now()
	return nil
}

// cleanupOldBackups removes the oldest rotated files beyond MaxBackups.
func (h *FileHandler) cleanupOldBackups() {
	dir := filepath.Dir(h.filename)
	base := filepath.Base(h.filename)

	matches, err := filepath.Glob(filepath.Join(dir, base+".*"))
	if err != nil {
		return
	}

	var backups []string
	for _, match := range matches {
		if strings.HasPrefix(filepath.Base(match), base+".") {
			backups = append(backups, match)
		}
	}

	sort.Slice(backups, func(i, j int) bool {
		infoI, errI := os.Stat(backups[i])
		infoJ, errJ := os.Stat(backups[j])
		if errI != nil || errJ != nil {
			return false
		}
		return infoI.ModTime().Before(infoJ.ModTime())
	})

	if len(backups) > h.maxBackups {
		for _, file := range backups[:len(backups)-h.maxBackups] {
			if err := os.Remove(file); err != nil {
				return
			}
		}
	}
}

// Stats returns a snapshot of the current counters.
func (h *FileHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close drains the queue, syncs and closes the file. Close is
// idempotent.
func (h *FileHandler) Close() error {
	var err error
	h.closeOnce.Do(func() {
		close(h.closed)
		if h.async {
			h.queue.stop()
		}

		h.mu.Lock()
		defer h.mu.Unlock()
		if h.file == nil {
			return
		}
		if syncErr := h.file.Sync(); syncErr != nil {
			h.file.Close()
			err = syncErr
			return
		}
		err = h.file.Close()
	})
	return err
}
