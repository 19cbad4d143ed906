package scan

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

type Status uint8

const (
	StatusUnknown Status = iota
	StatusOpen
	StatusClosed
	StatusRefused
	StatusTimedOut
	StatusFailed
)

var statusNames = map[Status]string{
	StatusUnknown:  "unknown",
	StatusOpen:     "open",
	StatusClosed:   "closed",
	StatusRefused:  "refused",
	StatusTimedOut: "timed_out",
	StatusFailed:   "failed",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if strings.EqualFold(name, string(text)) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown port status '%s'", string(text))
}

// Result is the outcome of scanning a single port. Banner is empty when no
// banner was captured.
type Result struct {
	Port    uint16 `json:"port" yaml:"port"`
	Status  Status `json:"status" yaml:"status"`
	Banner  string `json:"banner,omitempty" yaml:"banner,omitempty"`
	Service string `json:"service,omitempty" yaml:"service,omitempty"`
}

func (r Result) HasBanner() bool {
	return r.Banner != ""
}

func (r Result) String() string {
	if r.HasBanner() {
		return fmt.Sprintf("Port %d %s - %s", r.Port, r.Status, r.Banner)
	}
	return fmt.Sprintf("Port %d %s", r.Port, r.Status)
}

// ResultSet collects the outcomes of one scan run. It is safe for concurrent
// use. Every outcome is counted, only open ports are kept.
type ResultSet struct {
	mu      sync.Mutex
	results []Result
	counts  map[Status]int
}

func NewResultSet() *ResultSet {
	return &ResultSet{
		results: []Result{},
		counts:  map[Status]int{},
	}
}

func (rs *ResultSet) Record(result Result) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.counts[result.Status]++
	if result.Status == StatusOpen {
		rs.results = append(rs.results, result)
	}
}

// Results returns a copy of the kept results ordered by port.
func (rs *ResultSet) Results() []Result {
	rs.mu.Lock()
	out := make([]Result, len(rs.results))
	copy(out, rs.results)
	rs.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Port < out[j].Port
	})
	return out
}

func (rs *ResultSet) Len() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return len(rs.results)
}

func (rs *ResultSet) Count(status Status) int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.counts[status]
}

func (rs *ResultSet) Counts() map[string]int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	out := make(map[string]int, len(rs.counts))
	for status, n := range rs.counts {
		out[status.String()] = n
	}
	return out
}

// Report is everything a single call to Scan produced.
type Report struct {
	ID       string         `json:"id" yaml:"id"`
	Target   string         `json:"target" yaml:"target"`
	Host     *Host          `json:"host,omitempty" yaml:"host,omitempty"`
	Started  time.Time      `json:"started" yaml:"started"`
	Duration time.Duration  `json:"-" yaml:"-"`
	Seconds  float64        `json:"elapsed_seconds" yaml:"elapsed_seconds"`
	Scanned  int            `json:"ports_scanned" yaml:"ports_scanned"`
	Results  []Result       `json:"results" yaml:"results"`
	Counts   map[string]int `json:"counts" yaml:"counts"`
}

func (r *Report) HasOpenPorts() bool {
	return len(r.Results) > 0
}
