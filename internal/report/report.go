package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// ErrNoSessions is returned when a report file holds no sessions.
var ErrNoSessions = errors.New("no sessions in report")

// BenchmarkResult holds results for one test run.
type BenchmarkResult struct {
	Implementation      string  `json:"implementation"`
	NumProducers        int     `json:"num_producers"`
	NumConsumers        int     `json:"num_consumers"`
	NumMessages         int64   `json:"num_messages"`          // produced count
	NumMessagesConsumed int64   `json:"num_messages_consumed"` // consumed count
	TestDuration        string  `json:"test_duration"`         // e.g. "10s"
	ActualElapsed       string  `json:"actual_elapsed"`        // measured time
	Throughput          float64 `json:"throughput_msgs_sec"`   // based on consumed count
	Timestamp           int64   `json:"timestamp"`
	GoVersion           string  `json:"go_version"`
}

// SystemInfo holds system information.
type SystemInfo struct {
	NumCPU            int     `json:"num_cpu"`
	TrueCPU           int     `json:"true_cpu,omitempty"`
	SimulatedCPUCount int     `json:"simulated_cpu_count,omitempty"`
	CPUModel          string  `json:"cpu_model,omitempty"`
	CPUSpeedMHz       float64 `json:"cpu_speed_mhz,omitempty"`
	GOARCH            string  `json:"go_arch"`
	TotalMemory       uint64  `json:"total_memory_bytes,omitempty"`
}

// FullReport represents a complete test session.
type FullReport struct {
	SessionTime string            `json:"session_time"`
	SystemInfo  SystemInfo        `json:"system_info"`
	Benchmarks  []BenchmarkResult `json:"benchmarks"`
}

// CPUs returns the CPU count the session ran with.
func (r FullReport) CPUs() int {
	if r.SystemInfo.SimulatedCPUCount != 0 {
		return r.SystemInfo.SimulatedCPUCount
	}
	return r.SystemInfo.NumCPU
}

// Meta describes an implementation for the summary table.
type Meta struct {
	PkgName  string
	Features []string
	Authors  []string
}

// GatherSystemInfo collects basic CPU and memory details. Missing details are
// left empty rather than failing.
func GatherSystemInfo() SystemInfo {
	info := SystemInfo{
		NumCPU: runtime.NumCPU(),
		GOARCH: runtime.GOARCH,
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		info.CPUModel = infos[0].ModelName
		info.CPUSpeedMHz = infos[0].Mhz
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.TotalMemory = vm.Total
	}
	return info
}

// Load reads all sessions from a report file.
func Load(path string) ([]FullReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report %q: %w", path, err)
	}
	var sessions []FullReport
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("decode report %q: %w", path, err)
	}
	return sessions, nil
}

// Append adds sessions to the report file, creating it if needed.
func Append(path string, sessions []FullReport) error {
	previous, err := Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	data, err := json.MarshalIndent(append(previous, sessions...), "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report %q: %w", path, err)
	}
	return nil
}

// WriteMarkdownTable writes the last session as a table sorted by throughput.
func WriteMarkdownTable(w io.Writer, sessions []FullReport, meta map[string]Meta) error {
	if len(sessions) == 0 {
		return ErrNoSessions
	}
	last := sessions[len(sessions)-1]

	type row struct {
		impl, pkg, features, authors string
		throughput                   float64
	}
	rows := make([]row, 0, len(last.Benchmarks))
	for _, b := range last.Benchmarks {
		m := meta[b.Implementation]
		rows = append(rows, row{
			impl:       b.Implementation,
			pkg:        m.PkgName,
			features:   strings.Join(m.Features, ", "),
			authors:    strings.Join(m.Authors, ", "),
			throughput: b.Throughput,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].throughput > rows[j].throughput
	})

	var sb strings.Builder
	sb.WriteString("## Last Session Benchmark Summary\n\n")
	sb.WriteString("| Implementation           | Package         | Features                    | Author                      | Throughput (msgs/sec) |\n")
	sb.WriteString("|--------------------------|-----------------|-----------------------------|-----------------------------|-----------------------|\n")
	for _, r := range rows {
		fmt.Fprintf(&sb, "| %-24s | %-15s | %-27s | %-27s | %21.0f |\n",
			r.impl, r.pkg, r.features, r.authors, r.throughput)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
