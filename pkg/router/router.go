package router

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// Router appends rendered lines to per-account output files. One Router
// instance covers one batch run: the first time a path is targeted any
// leftover file from a previous run is deleted, and every later append
// for that path lands behind the earlier ones. Appends are synchronous,
// so a line is durably written before the next line is processed.
type Router struct {
	fs     afero.Fs
	dir    string // empty means next to the input file
	seen   map[string]bool
	logger *log.Logger
}

func New(fs afero.Fs, dir string, logger *log.Logger) *Router {
	return &Router{
		fs:     fs,
		dir:    dir,
		seen:   make(map[string]bool),
		logger: logger,
	}
}

// Path computes the sink path for an input file and a routing key:
// <input base>#<key><input ext>, in the configured output directory or
// next to the input file.
func (r *Router) Path(inputPath, key string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)
	dir := r.dir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	return filepath.Join(dir, base+"#"+key+ext)
}

// Append routes one rendered line to the sink for key and returns the
// key for summary collection. A failed write is reported and the run
// continues; the line is lost but never silently dropped.
func (r *Router) Append(inputPath, key, line string) string {
	path := r.Path(inputPath, key)
	if !r.seen[path] {
		if ok, err := afero.Exists(r.fs, path); err != nil {
			r.logger.Error("failed to check output file", "path", path, "error", err)
		} else if ok {
			if err := r.fs.Remove(path); err != nil {
				r.logger.Error("failed to reset output file", "path", path, "error", err)
			}
		}
		r.seen[path] = true
	}

	f, err := r.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		r.logger.Error("failed to open output file", "path", path, "error", err)
		return key
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		r.logger.Error("failed to append record", "path", path, "error", err)
	}
	return key
}
