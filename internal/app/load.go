package app

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// FileConfig is the decoded form of an HCL configuration file:
//
//	log_level  = "debug"
//	log_format = "text"
//
//	puzzle "wordsearch" {
//	  part = 2
//	  word = "MAS"
//	}
//
// Unset attributes stay nil so callers can tell them from zero values.
type FileConfig struct {
	LogLevel  *string        `hcl:"log_level,optional"`
	LogFormat *string        `hcl:"log_format,optional"`
	Puzzles   []PuzzleConfig `hcl:"puzzle,block"`
}

// PuzzleConfig holds the settings of one puzzle block.
type PuzzleConfig struct {
	Name     string  `hcl:"name,label"`
	Part     *int    `hcl:"part,optional"`
	Word     *string `hcl:"word,optional"`
	Metric   *string `hcl:"metric,optional"`
	MaxSteps *int    `hcl:"max_steps,optional"`
}

// LoadFile parses and decodes the HCL file at path.
func LoadFile(path string) (*FileConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	var fc FileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &fc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}
	seen := make(map[string]bool, len(fc.Puzzles))
	for _, p := range fc.Puzzles {
		if seen[p.Name] {
			return nil, fmt.Errorf("HCL file %s: duplicate puzzle block %q", path, p.Name)
		}
		seen[p.Name] = true
	}
	return &fc, nil
}

// Puzzle returns the block labelled name, or nil.
func (fc *FileConfig) Puzzle(name string) *PuzzleConfig {
	for i := range fc.Puzzles {
		if fc.Puzzles[i].Name == name {
			return &fc.Puzzles[i]
		}
	}
	return nil
}

// Apply copies every attribute set in the file into cfg, except fields
// listed in locked (already set explicitly on the command line). When cfg
// names no puzzle and the file has exactly one block, that block is used.
func (fc *FileConfig) Apply(cfg *Config, locked map[string]bool) {
	if fc.LogLevel != nil && !locked["log-level"] {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil && !locked["log-format"] {
		cfg.LogFormat = *fc.LogFormat
	}
	if cfg.Puzzle == "" && len(fc.Puzzles) == 1 {
		cfg.Puzzle = fc.Puzzles[0].Name
	}
	p := fc.Puzzle(cfg.Puzzle)
	if p == nil {
		return
	}
	if p.Part != nil && !locked["part"] {
		cfg.Part = *p.Part
	}
	if p.Word != nil && !locked["word"] {
		cfg.Word = *p.Word
	}
	if p.Metric != nil && !locked["metric"] {
		cfg.Metric = *p.Metric
	}
	if p.MaxSteps != nil && !locked["max-steps"] {
		cfg.MaxSteps = *p.MaxSteps
	}
}
