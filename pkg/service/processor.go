package service

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/mvanbeek/rabomut/pkg/config"
	"github.com/mvanbeek/rabomut/pkg/models"
	"github.com/mvanbeek/rabomut/pkg/parser"
	"github.com/mvanbeek/rabomut/pkg/router"
	"github.com/mvanbeek/rabomut/pkg/schema"
	"github.com/mvanbeek/rabomut/pkg/transform"
)

// Processor drives one batch run: it reads each input file, feeds the
// lines through tokenizer, validator, transformer and router in order,
// and reports the distinct account keys found per file. Lines are
// processed strictly sequentially; the router's sink state lives for
// the whole run, so an output file is truncated at most once even when
// several inputs feed the same account.
type Processor struct {
	config *config.Config
	logger *log.Logger
	fs     afero.Fs
	parser *parser.Parser
	router *router.Router
}

func NewProcessor(cfg *config.Config, logger *log.Logger) *Processor {
	return NewProcessorWithFs(cfg, logger, afero.NewOsFs())
}

func NewProcessorWithFs(cfg *config.Config, logger *log.Logger, fs afero.Fs) *Processor {
	return &Processor{
		config: cfg,
		logger: logger,
		fs:     fs,
		parser: parser.New(logger),
		router: router.New(fs, cfg.OutputDir, logger),
	}
}

// ProcessFiles runs every input in the order given. A file that cannot
// be read fails that file only; the rest of the batch still runs, and
// the error returned at the end makes the process exit non-zero.
func (p *Processor) ProcessFiles(paths []string) error {
	var failed int
	for _, path := range paths {
		keys, err := p.ProcessFile(path)
		if err != nil {
			p.logger.Error("failed to process file", "file", path, "error", err)
			failed++
			continue
		}
		fmt.Printf("%s: accounts %s\n", filepath.Base(path), strings.Join(keys, ", "))
	}
	if failed > 0 {
		return fmt.Errorf("%d input file(s) failed", failed)
	}
	return nil
}

// ProcessFile converts one export file using the configured format and
// returns the distinct routing keys in order of first appearance.
func (p *Processor) ProcessFile(path string) ([]string, error) {
	return p.ProcessFileAs(path, schema.Version(p.config.Format))
}

// ProcessFileAs converts one export file using an explicit format
// version, as plan entries may override the configured default.
func (p *Processor) ProcessFileAs(path string, version schema.Version) ([]string, error) {
	s, err := schema.Get(version)
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	p.logger.Info("processing file", "file", path, "format", s.Version)

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	lineBase := 1
	if s.HasHeader && len(lines) > 0 {
		lines = lines[1:]
		lineBase = 2
	}

	transformer := transform.New(s, p.logger)

	var keys []string
	seen := make(map[string]bool)
	for n, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		tokens := p.parser.Fields(line)
		if problems := p.parser.Validate(tokens, s); len(problems) > 0 {
			p.logger.Warn("record does not match schema", "file", filepath.Base(path), "line", n+lineBase, "problems", strings.Join(problems, "; "))
		}

		rec := models.Record(tokens)
		target := transformer.Transform(rec)
		key := p.router.Append(path, rec.Get(s.Account), target.Render())

		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}

	return keys, nil
}

// ProcessDirectory feeds every eligible file in dir through the run.
func (p *Processor) ProcessDirectory(dir string) error {
	entries, err := afero.ReadDir(p.fs, dir)
	if err != nil {
		return fmt.Errorf("failed to read directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.ToLower(entry.Name())
		if !strings.HasSuffix(name, ".csv") && !strings.HasSuffix(name, ".txt") {
			continue
		}
		// Skip our own output from a previous run.
		if strings.Contains(entry.Name(), "#") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	return p.ProcessFiles(paths)
}
