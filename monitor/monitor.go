// Package monitor turns a tester session into a small HTTP server so the
// state of a long FULL-mode run can be watched from outside.
package monitor

import (
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/rs/xid"
	"github.com/shirou/gopsutil/process"
)

// Status is what the status endpoint reports.
type Status struct {
	Session      string  `json:"session"`
	Mode         string  `json:"mode"`
	ClockHz      float64 `json:"clock_hz"`
	ClockRunning bool    `json:"clock_running"`
	CPUPercent   float64 `json:"cpu_percent"`
	MemoryRSS    uint64  `json:"memory_rss"`
}

// A Monitor exposes session status and run progress over HTTP.
type Monitor struct {
	portNumber int
	statusFn   func() Status

	progressBarsLock sync.Mutex
	progressBars     []*ProgressBar
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterStatusSource sets the function that snapshots session status.
func (m *Monitor) RegisterStatusSource(fn func() Status) {
	m.statusFn = fn
}

// CreateProgressBar creates a new progress bar.
func (m *Monitor) CreateProgressBar(name string, total uint64) *ProgressBar {
	bar := &ProgressBar{
		ID:        xid.New().String(),
		Name:      name,
		StartTime: time.Now(),
		Total:     total,
	}

	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	m.progressBars = append(m.progressBars, bar)

	return bar
}

// CompleteProgressBar removes a completed bar from the live list.
func (m *Monitor) CompleteProgressBar(bar *ProgressBar) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	bars := make([]*ProgressBar, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		if b != bar {
			bars = append(bars, b)
		}
	}

	m.progressBars = bars
}

// StartServer starts the monitoring server and returns its address.
func (m *Monitor) StartServer(open bool) string {
	r := mux.NewRouter()
	r.HandleFunc("/api/status", m.statusHandler)
	r.HandleFunc("/api/progress", m.progressHandler)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", m.portNumber))
	if err != nil {
		log.Panic(err)
	}

	addr := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring server started on %s\n", addr)

	go func() {
		if err := http.Serve(listener, r); err != nil {
			log.Print(err)
		}
	}()

	if open {
		if err := browser.OpenURL(addr + "/api/status"); err != nil {
			log.Print(err)
		}
	}

	return addr
}

func (m *Monitor) statusHandler(w http.ResponseWriter, _ *http.Request) {
	var status Status
	if m.statusFn != nil {
		status = m.statusFn()
	}

	m.fillProcessStats(&status)

	writeJSON(w, status)
}

func (m *Monitor) fillProcessStats(status *Status) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return
	}

	if cpu, err := p.CPUPercent(); err == nil {
		status.CPUPercent = cpu
	}

	if memInfo, err := p.MemoryInfo(); err == nil {
		status.MemoryRSS = memInfo.RSS
	}
}

func (m *Monitor) progressHandler(w http.ResponseWriter, _ *http.Request) {
	m.progressBarsLock.Lock()
	bars := make([]ProgressBar, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		bars = append(bars, b.snapshot())
	}
	m.progressBarsLock.Unlock()

	writeJSON(w, bars)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
