package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"crewspp/pairing"
	"crewspp/sample"
)

var (
	generateSolution string
	generateConfig   string
	generateOut      string
)

// generateCmd expands a seed solution into one candidate-pool file per
// (size tier × mode) combination.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate candidate pairing pools from a seed solution",
	Long: `Generate candidate pairing pools from a seed solution.

Reads the solution text, then for every size tier and every mode in the
batch configuration runs the sampler and writes
<out>/size_<tier>/<mode>.json. Without --config, the built-in tiers are
used: 0K (seed only, 10s), 50K (30s) and 500K (180s), each across the
local, forced and mixed modes with seed 42.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateSolution, "solution", "", "seed solution text file (required)")
	generateCmd.Flags().StringVar(&generateConfig, "config", "", "YAML batch configuration (optional)")
	generateCmd.Flags().StringVar(&generateOut, "out", "samples", "output directory for pool files")
	_ = generateCmd.MarkFlagRequired("solution")
}

// tierConfig is one size tier of the generation batch.
type tierConfig struct {
	Name             string  `yaml:"name"`
	Target           int     `yaml:"target"`
	TimeLimitSeconds float64 `yaml:"time_limit_seconds"`
}

// batchConfig is the YAML shape of --config.
type batchConfig struct {
	Seed  int64         `yaml:"seed"`
	Modes []sample.Mode `yaml:"modes"`
	Tiers []tierConfig  `yaml:"tiers"`
}

// defaultBatchConfig mirrors the reference batch: three size tiers by
// three modes, seed 42.
func defaultBatchConfig() batchConfig {
	return batchConfig{
		Seed:  42,
		Modes: []sample.Mode{sample.ModeLocal, sample.ModeForced, sample.ModeMixed},
		Tiers: []tierConfig{
			{Name: "0K", Target: 0, TimeLimitSeconds: 10},
			{Name: "50K", Target: 50_000, TimeLimitSeconds: 30},
			{Name: "500K", Target: 500_000, TimeLimitSeconds: 180},
		},
	}
}

func loadBatchConfig(path string) (batchConfig, error) {
	if path == "" {
		return defaultBatchConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return batchConfig{}, fmt.Errorf("read config: %w", err)
	}

	cfg := defaultBatchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return batchConfig{}, fmt.Errorf("parse config: %w", err)
	}
	for _, tier := range cfg.Tiers {
		if tier.TimeLimitSeconds <= 0 {
			return batchConfig{}, fmt.Errorf("tier %q: time_limit_seconds must be positive", tier.Name)
		}
		if tier.Target < 0 {
			return batchConfig{}, fmt.Errorf("tier %q: target must be non-negative", tier.Name)
		}
	}

	return cfg, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadBatchConfig(generateConfig)
	if err != nil {
		return err
	}

	sol, err := pairing.LoadSolution(generateSolution)
	if err != nil {
		return err
	}
	logger.Info("parsed seed solution",
		zap.String("path", generateSolution),
		zap.Int("pairings", len(sol)))

	for _, tier := range cfg.Tiers {
		dir := filepath.Join(generateOut, "size_"+tier.Name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}

		for _, mode := range cfg.Modes {
			pool, elapsed, err := sample.Generate(sol,
				sample.WithTargetSize(tier.Target),
				sample.WithTimeLimit(time.Duration(tier.TimeLimitSeconds*float64(time.Second))),
				sample.WithMode(mode),
				sample.WithSeed(cfg.Seed),
			)
			if err != nil {
				return fmt.Errorf("tier %s mode %s: %w", tier.Name, mode, err)
			}

			outfile := filepath.Join(dir, string(mode)+".json")
			if err := pairing.SavePool(outfile, pool); err != nil {
				return err
			}

			logger.Info("generated pool",
				zap.String("tier", tier.Name),
				zap.String("mode", string(mode)),
				zap.Int("pairings", len(pool)),
				zap.Duration("elapsed", elapsed),
				zap.String("file", outfile))
		}
	}

	return nil
}
