package scan

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Scanner interface {
	Scan(ctx context.Context, host string, ports []uint16) *Report
}

// Observer is told about every port outcome and worker transition. Calls
// arrive concurrently from the worker goroutines.
type Observer interface {
	PortScanned(status Status)
	BannerProbed(captured bool)
	WorkerBusy()
	WorkerIdle()
	ScanCompleted(duration time.Duration)
}

type nopObserver struct{}

func (nopObserver) PortScanned(Status)          {}
func (nopObserver) BannerProbed(bool)           {}
func (nopObserver) WorkerBusy()                 {}
func (nopObserver) WorkerIdle()                 {}
func (nopObserver) ScanCompleted(time.Duration) {}

type Option func(*ConnectScanner)

// WithProbe enables the HTTP banner probe against open ports.
func WithProbe(enabled bool) Option {
	return func(s *ConnectScanner) {
		s.probe = enabled
	}
}

func WithReadTimeout(timeout time.Duration) Option {
	return func(s *ConnectScanner) {
		s.readTimeout = timeout
	}
}

func WithObserver(observer Observer) Option {
	return func(s *ConnectScanner) {
		s.observer = observer
	}
}

func WithLogger(logger logrus.Ext1FieldLogger) Option {
	return func(s *ConnectScanner) {
		s.logger = logger
	}
}

// ConnectScanner scans ports with full TCP connects from a fixed number of
// worker goroutines.
type ConnectScanner struct {
	timeout     time.Duration
	readTimeout time.Duration
	maxRoutines int
	probe       bool
	observer    Observer
	logger      logrus.Ext1FieldLogger
}

type portJob struct {
	host    string
	port    uint16
	results *ResultSet
	logger  logrus.Ext1FieldLogger
}

func NewConnectScanner(timeout time.Duration, parallelism int, opts ...Option) *ConnectScanner {
	if parallelism < 1 {
		parallelism = 1
	}
	s := &ConnectScanner{
		timeout:     timeout,
		readTimeout: DefaultReadTimeout,
		maxRoutines: parallelism,
		observer:    nopObserver{},
		logger:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan attempts every port in ports against host and returns once all of
// them have been tried. Only open ports appear in the report results. ctx is
// the parent of every dial but a cancelled ctx does not stop the run early.
func (s *ConnectScanner) Scan(ctx context.Context, host string, ports []uint16) *Report {

	report := &Report{
		ID:      uuid.NewString(),
		Target:  host,
		Started: time.Now(),
		Scanned: len(ports),
	}

	logger := s.logger.WithFields(logrus.Fields{
		"scan_id": report.ID,
		"host":    host,
	})
	logger.WithField("ports", len(ports)).WithField("workers", s.maxRoutines).Info("Starting scan")

	results := NewResultSet()
	jobChan := make(chan portJob, s.maxRoutines)
	wg := &sync.WaitGroup{}

	for i := 0; i < s.maxRoutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobChan {
				s.observer.WorkerBusy()
				s.scanPort(ctx, job)
				s.observer.WorkerIdle()
			}
		}()
	}

	for _, port := range ports {
		jobChan <- portJob{
			host:    host,
			port:    port,
			results: results,
			logger:  logger.WithField("port", port),
		}
	}
	close(jobChan)
	wg.Wait()

	report.Duration = time.Since(report.Started)
	report.Seconds = report.Duration.Seconds()
	report.Results = results.Results()
	report.Counts = results.Counts()

	s.observer.ScanCompleted(report.Duration)
	logger.WithFields(logrus.Fields{
		"open":     len(report.Results),
		"duration": report.Duration.String(),
	}).Info("Scan complete")

	return report
}

func (s *ConnectScanner) scanPort(ctx context.Context, job portJob) {

	conn, status, err := Connect(ctx, job.host, job.port, s.timeout)
	s.observer.PortScanned(status)

	if status != StatusOpen {
		job.logger.WithError(err).WithField("status", status.String()).Info("Port not open")
		job.results.Record(Result{Port: job.port, Status: status})
		return
	}
	defer conn.Close()

	job.logger.Debug("Connection established")

	result := Result{
		Port:    job.port,
		Status:  StatusOpen,
		Service: DescribePort(job.port),
	}

	if s.probe {
		banner, captured := GrabBanner(conn, job.host, s.readTimeout, job.logger)
		s.observer.BannerProbed(captured)
		result.Banner = banner
	}

	job.results.Record(result)
}
