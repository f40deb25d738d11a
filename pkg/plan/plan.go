package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan is a YAML manifest describing one batch run: which export files
// to convert, in which layout each was written, and where the output
// goes.
type Plan struct {
	OutputDir  string      `yaml:"output_dir"`
	Statements []Statement `yaml:"statements"`
}

// Statement is a single export file to convert. An empty format falls
// back to the run's configured default.
type Statement struct {
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if len(p.Statements) == 0 {
		return nil, fmt.Errorf("plan has no statements")
	}
	return &p, nil
}

func (p *Plan) Print() {
	for i, st := range p.Statements {
		fmt.Printf("[%d] format=%s file=%s\n", i+1, st.Format, st.File)
	}
}
