package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/pthm-cable/folio/config"
)

// csvLog is an append-only CSV file whose header is written with the first record.
type csvLog struct {
	name          string
	file          *os.File
	headerWritten bool
}

func openCSVLog(dir, name string) (*csvLog, error) {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return &csvLog{name: name, file: f}, nil
}

// append marshals records, which must be a slice of csv-tagged structs.
func (l *csvLog) append(records any) error {
	var err error
	if l.headerWritten {
		err = gocsv.MarshalWithoutHeaders(records, l.file)
	} else {
		err = gocsv.Marshal(records, l.file)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", l.name, err)
	}
	l.headerWritten = true
	return nil
}

func (l *csvLog) close() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// OutputManager writes overlay telemetry to an output directory.
// A nil manager is valid and discards everything.
type OutputManager struct {
	dir       string
	telemetry *csvLog
	perf      *csvLog
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

	tel, err := openCSVLog(dir, "telemetry.csv")
	if err != nil {
		return nil, err
	}
	perf, err := openCSVLog(dir, "perf.csv")
	if err != nil {
		tel.close()
		return nil, err
	}

	return &OutputManager{dir: dir, telemetry: tel, perf: perf}, nil
}

// WriteConfig saves the effective configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteTelemetry appends a window stats record to telemetry.csv.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}
	return om.telemetry.append([]WindowStats{stats})
}

// WritePerf appends a performance record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int32) error {
	if om == nil {
		return nil
	}
	return om.perf.append([]PerfStatsCSV{stats.ToCSV(windowEnd)})
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
	var firstErr error
	for _, l := range []*csvLog{om.telemetry, om.perf} {
		if err := l.close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
