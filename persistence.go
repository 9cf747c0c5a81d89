package sort_suite

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	gorm "gorm.io/gorm"
)

type LedgerConfig struct {
	Enabled       bool     `toml:"enabled"`
	Path          string   `toml:"path"`
	Name          string   `toml:"name"`
	SQLitePragmas []string `toml:"sqlite_pragmas"`
	SQLiteOptions []string `toml:"sqlite_options"`
}

// RunRecord is the persisted summary of one benchmark run. Sorted output is
// never stored, only how long each algorithm took.
type RunRecord struct {
	ID              uint
	CreatedAt       time.Time
	Source          string
	InputLength     int
	InputSortedness byte
	Measurements    []Measurement
}

type Measurement struct {
	ID          uint
	RunRecordID uint   `gorm:"index"`
	Algorithm   string `gorm:"index"`
	ElapsedNS   int64
	Verified    bool
}

// Ledger keeps a history of benchmark runs in sqlite.
type Ledger struct {
	Config *LedgerConfig
	DB     *gorm.DB
}

func (lc *LedgerConfig) DSN() string {
	var params []string
	for _, prag := range lc.SQLitePragmas {
		params = append(params, fmt.Sprintf("_pragma=%s", prag))
	}
	params = append(params, lc.SQLiteOptions...)

	var path strings.Builder
	path.WriteString(filepath.Join(lc.Path, lc.Name))
	if len(params) > 0 {
		path.WriteRune('?')
		path.WriteString(strings.Join(params, "&"))
	}
	return path.String()
}

func NewLedger(config *LedgerConfig) (*Ledger, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if len(config.Path) == 0 {
		return nil, fmt.Errorf("Path to database must be defined")
	}

	if len(config.Name) == 0 {
		return nil, fmt.Errorf("Name of database must be defined")
	}

	db, err := gorm.Open(sqlite.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	db = db.Session(&gorm.Session{PrepareStmt: true, CreateBatchSize: 100})

	l := &Ledger{Config: config, DB: db}
	if err = l.initialize(); err != nil {
		l.Shutdown()
		return nil, err
	}

	return l, nil
}

func (l *Ledger) initialize() error {
	return l.DB.AutoMigrate(
		&RunRecord{},
		&Measurement{},
	)
}

func (l *Ledger) Shutdown() {
	if sqldb, err := l.DB.DB(); err != nil {
		Logger().Errorf("Failed to retrieve raw DB: %v", err)
	} else {
		sqldb.Close()
	}
}

// Record stores the timings of report. verified marks whether the outputs
// were checked during the run.
func (l *Ledger) Record(report *Report, verified bool) (uint, error) {
	if report == nil {
		return 0, fmt.Errorf("Report cannot be nil")
	}

	run := &RunRecord{
		Source:          report.Source,
		InputLength:     report.InputLength,
		InputSortedness: report.InputSortedness,
	}
	for _, s := range report.Samples {
		run.Measurements = append(run.Measurements, Measurement{
			Algorithm: s.Algorithm,
			ElapsedNS: s.Elapsed.Nanoseconds(),
			Verified:  verified,
		})
	}

	if result := l.DB.Create(run); result.Error != nil {
		return 0, fmt.Errorf("Failed to call gorm.Create(): %w", result.Error)
	}

	return run.ID, nil
}

func (l *Ledger) RunCount() (int64, error) {
	var count int64
	if result := l.DB.Model(&RunRecord{}).Count(&count); result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
