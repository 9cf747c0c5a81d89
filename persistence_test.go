package sort_suite

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/glebarez/go-sqlite"
	"github.com/stretchr/testify/require"
)

func testLedger(t *testing.T) *Ledger {
	ledger, err := NewLedger(&LedgerConfig{
		Path:          t.TempDir(),
		Name:          "ledger.db",
		SQLitePragmas: []string{"journal_mode(WAL)"},
	})
	require.NoError(t, err)
	t.Cleanup(ledger.Shutdown)
	return ledger
}

func TestNewLedgerValidation(t *testing.T) {
	_, err := NewLedger(nil)
	require.Error(t, err)

	_, err = NewLedger(&LedgerConfig{Name: "x.db"})
	require.Error(t, err)

	_, err = NewLedger(&LedgerConfig{Path: t.TempDir()})
	require.Error(t, err)
}

func TestLedgerDSN(t *testing.T) {
	lc := &LedgerConfig{
		Path:          "/tmp/ledger",
		Name:          "runs.db",
		SQLitePragmas: []string{"journal_mode(WAL)", "busy_timeout(5000)"},
		SQLiteOptions: []string{"cache=shared"},
	}
	require.Equal(t, "/tmp/ledger/runs.db?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&cache=shared", lc.DSN())

	require.Equal(t, "runs.db", (&LedgerConfig{Path: ".", Name: "runs.db"}).DSN())
}

func TestLedgerRecord(t *testing.T) {
	ledger := testLedger(t)

	_, err := ledger.Record(nil, true)
	require.Error(t, err)

	id, err := ledger.Record(testReport(), true)
	require.NoError(t, err)
	require.NotZero(t, id)

	runs, err := ledger.RunCount()
	require.NoError(t, err)
	require.Equal(t, int64(1), runs)

	var stored RunRecord
	require.NoError(t, ledger.DB.Preload("Measurements").First(&stored, id).Error)
	require.Equal(t, "data.txt", stored.Source)
	require.Equal(t, 3, stored.InputLength)
	require.Len(t, stored.Measurements, 3)
	require.Equal(t, "bubble", stored.Measurements[0].Algorithm)
	require.Equal(t, int64(3*time.Millisecond), stored.Measurements[0].ElapsedNS)
	require.True(t, stored.Measurements[0].Verified)
}

func TestLedgerRawSchema(t *testing.T) {
	dir := t.TempDir()
	ledger, err := NewLedger(&LedgerConfig{Path: dir, Name: "raw.db"})
	require.NoError(t, err)
	_, err = ledger.Record(testReport(), false)
	require.NoError(t, err)
	ledger.Shutdown()

	db, err := sql.Open("sqlite", filepath.Join(dir, "raw.db"))
	require.NoError(t, err)
	defer db.Close()

	var count int64
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM measurements WHERE verified = 0").Scan(&count))
	require.Equal(t, int64(3), count)
}
