package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

// hclConfig is the HCL layout of a Config:
//
//	team_names = ["Red", "Blue"]
//
//	score_scale {
//	  min = 1
//	  max = 5
//	}
//
//	draft {
//	  max_attempts = 5000
//	  timeout      = "5s"
//	}
//
//	player "Alex" {
//	  score = 3
//	}
//
// Optional blocks decode into slices so a missing block stays nil.
type hclConfig struct {
	TeamNames  []string        `hcl:"team_names,optional"`
	ScoreScale []hclScoreScale `hcl:"score_scale,block"`
	Draft      []hclDraft      `hcl:"draft,block"`
	Players    []hclPlayer     `hcl:"player,block"`
}

type hclPlayer struct {
	Name  string  `hcl:"name,label"`
	Score float64 `hcl:"score"`
}

type hclScoreScale struct {
	Min float64 `hcl:"min"`
	Max float64 `hcl:"max"`
}

type hclDraft struct {
	TeamSize    int    `hcl:"team_size,optional"`
	MaxAttempts int    `hcl:"max_attempts,optional"`
	Workers     int    `hcl:"workers,optional"`
	Timeout     string `hcl:"timeout,optional"`
	// Zero means unseeded; HCL files cannot pin seed 0
	Seed int64 `hcl:"seed,optional"`
}

// LoadHCL decodes and validates an HCL configuration. filename is only used
// in diagnostics.
func LoadHCL(data []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw hclConfig
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg, err := raw.toConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// EncodeHCL renders cfg in the HCL layout accepted by LoadHCL
func EncodeHCL(cfg *Config) []byte {
	f := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(fromConfig(cfg), f.Body())
	return f.Bytes()
}

func (h *hclConfig) toConfig() (*Config, error) {
	if len(h.ScoreScale) > 1 {
		return nil, fmt.Errorf("%w: only one score_scale block is allowed", ErrInvalidConfig)
	}
	if len(h.Draft) > 1 {
		return nil, fmt.Errorf("%w: only one draft block is allowed", ErrInvalidConfig)
	}

	cfg := &Config{TeamNames: h.TeamNames}
	for _, p := range h.Players {
		cfg.Players = append(cfg.Players, PlayerEntry{Name: p.Name, Score: p.Score})
	}
	if len(h.ScoreScale) == 1 {
		cfg.ScoreScale = &ScoreScale{Min: h.ScoreScale[0].Min, Max: h.ScoreScale[0].Max}
	}
	if len(h.Draft) == 1 {
		d := h.Draft[0]
		cfg.Draft = &DraftSettings{
			TeamSize:    d.TeamSize,
			MaxAttempts: d.MaxAttempts,
			Workers:     d.Workers,
			Timeout:     d.Timeout,
		}
		if d.Seed != 0 {
			seed := d.Seed
			cfg.Draft.Seed = &seed
		}
	}
	return cfg, nil
}

func fromConfig(cfg *Config) *hclConfig {
	h := &hclConfig{TeamNames: cfg.TeamNames}
	if h.TeamNames == nil {
		h.TeamNames = []string{}
	}
	for _, p := range cfg.Players {
		h.Players = append(h.Players, hclPlayer{Name: p.Name, Score: p.Score})
	}
	if s := cfg.ScoreScale; s != nil {
		h.ScoreScale = []hclScoreScale{{Min: s.Min, Max: s.Max}}
	}
	if d := cfg.Draft; d != nil {
		hd := hclDraft{
			TeamSize:    d.TeamSize,
			MaxAttempts: d.MaxAttempts,
			Workers:     d.Workers,
			Timeout:     d.Timeout,
		}
		if d.Seed != nil {
			hd.Seed = *d.Seed
		}
		h.Draft = []hclDraft{hd}
	}
	return h
}
