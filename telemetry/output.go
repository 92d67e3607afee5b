package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/backdrop/config"
)

// CSVFile appends gocsv rows to a file, writing the header with the first batch.
type CSVFile struct {
	f      *os.File
	header bool
}

// CreateCSV creates or truncates path.
func CreateCSV(path string) (*CSVFile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &CSVFile{f: f}, nil
}

// Append writes rows, a slice of csv-tagged structs or struct pointers.
func (c *CSVFile) Append(rows any) error {
	if c.f == nil {
		return os.ErrClosed
	}
	if c.header {
		return gocsv.MarshalWithoutHeaders(rows, c.f)
	}
	if err := gocsv.Marshal(rows, c.f); err != nil {
		return err
	}
	c.header = true
	return nil
}

// Close closes the file. Closing twice is a no-op.
func (c *CSVFile) Close() error {
	if c.f == nil {
		return nil
	}
	err := c.f.Close()
	c.f = nil
	return err
}

// OutputManager writes a run's effects.csv, perf.csv and config snapshot.
type OutputManager struct {
	dir     string
	effects *CSVFile
	perf    *CSVFile
}

// NewOutputManager creates the output directory and its CSV files.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	effects, err := CreateCSV(filepath.Join(dir, "effects.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating effects.csv: %w", err)
	}
	perf, err := CreateCSV(filepath.Join(dir, "perf.csv"))
	if err != nil {
		effects.Close()
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}

	return &OutputManager{dir: dir, effects: effects, perf: perf}, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteEffects appends one row per effect to effects.csv.
func (om *OutputManager) WriteEffects(stats []EffectStats) error {
	if om == nil || len(stats) == 0 {
		return nil
	}
	if err := om.effects.Append(stats); err != nil {
		return fmt.Errorf("writing effects: %w", err)
	}
	return nil
}

// WritePerf appends a frame timing row to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int32) error {
	if om == nil {
		return nil
	}
	if err := om.perf.Append([]PerfStatsCSV{stats.ToCSV(windowEnd)}); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes all output files, returning the first error.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	err := om.effects.Close()
	if perr := om.perf.Close(); err == nil {
		err = perr
	}
	return err
}
