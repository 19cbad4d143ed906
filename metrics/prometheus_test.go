package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liamg/shark/scan"
)

func TestRecorderCountsPorts(t *testing.T) {
	r := NewRecorder()

	r.PortScanned(scan.StatusOpen)
	r.PortScanned(scan.StatusOpen)
	r.PortScanned(scan.StatusRefused)
	r.PortScanned(scan.StatusTimedOut)

	assert.Equal(t, float64(2), testutil.ToFloat64(r.ports.WithLabelValues("open")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.ports.WithLabelValues("refused")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.ports.WithLabelValues("timed_out")))
	assert.Equal(t, 3, testutil.CollectAndCount(r.ports))
}

func TestRecorderBannersAndWorkers(t *testing.T) {
	r := NewRecorder()

	r.BannerProbed(true)
	r.BannerProbed(false)
	r.BannerProbed(false)
	assert.Equal(t, float64(1), testutil.ToFloat64(r.banners.WithLabelValues("true")))
	assert.Equal(t, float64(2), testutil.ToFloat64(r.banners.WithLabelValues("false")))

	r.WorkerBusy()
	r.WorkerBusy()
	r.WorkerIdle()
	assert.Equal(t, float64(1), testutil.ToFloat64(r.busyWorkers))
}

func TestRecorderScanCompleted(t *testing.T) {
	r := NewRecorder()
	r.ScanCompleted(2 * time.Second)

	assert.Equal(t, float64(1), testutil.ToFloat64(r.scans))
	assert.Equal(t, 1, testutil.CollectAndCount(r.scanDuration))
	assert.Greater(t, testutil.ToFloat64(r.lastCompleted), float64(0))
}

func TestRecorderWriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.PortScanned(scan.StatusOpen)
	r.ScanCompleted(time.Second)

	path := filepath.Join(t.TempDir(), "shark.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `shark_scan_ports_total{status="open"} 1`)
	assert.Contains(t, string(data), "shark_scan_runs_total 1")
}
