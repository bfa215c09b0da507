package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/schollz/progressbar/v3"

	"github.com/i5heu/GoStateHooks/internal/report"
	"github.com/i5heu/GoStateHooks/internal/testbench"
	"github.com/i5heu/GoStateHooks/pkg/config"
)

// options are the parsed command line flags.
type options struct {
	configFile      string
	iterations      int
	cpuMax          int
	jsonExport      bool
	jsonFile        string
	highConcurrency bool
	markdownTable   bool
	progress        bool
	logLevel        string
}

func parseFlags(args []string) (options, map[string]bool, error) {
	var o options
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	fs.StringVar(&o.configFile, "config", "", "Path to a YAML benchmark config")
	fs.IntVar(&o.iterations, "iter", 5, "Number of test iterations per concurrency setting")
	fs.IntVar(&o.cpuMax, "cpu", 0, "If non-zero, test only that GOMAXPROCS value; if 0, test common CPU/vCPU values up to runtime.NumCPU()")
	fs.BoolVar(&o.jsonExport, "json", false, "Append results as JSON to -jsonfile")
	fs.StringVar(&o.jsonFile, "jsonfile", "test-results.json", "Path to the JSON report file")
	fs.BoolVar(&o.highConcurrency, "high-concurrency", false, "Include high concurrency configurations")
	fs.BoolVar(&o.markdownTable, "markdown-table", false, "Output markdown table from -jsonfile and exit")
	fs.BoolVar(&o.progress, "progress", false, "Display a progress bar with ETA")
	fs.StringVar(&o.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return o, nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return o, set, nil
}

// resolveConfig loads the config file, if any, and applies explicitly set
// flags on top of it.
func resolveConfig(o options, set map[string]bool) (config.Config, error) {
	cfg := config.Default()
	if o.configFile != "" {
		var err error
		if cfg, err = config.Load(o.configFile); err != nil {
			return cfg, err
		}
	}

	if set["iter"] {
		cfg.Iterations = o.iterations
	}
	if set["high-concurrency"] {
		cfg.HighConcurrency = o.highConcurrency
	}
	if o.cpuMax > 0 {
		cfg.CPUs = []int{o.cpuMax}
	}
	return cfg, cfg.Validate()
}

func main() {
	o, set, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "bench",
		Level: hclog.LevelFromString(o.logLevel),
	})

	if err := run(context.Background(), logger, o, set); err != nil {
		logger.Error("benchmark failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger hclog.Logger, o options, set map[string]bool) error {
	if o.markdownTable {
		sessions, err := report.Load(o.jsonFile)
		if err != nil {
			return err
		}
		return report.WriteMarkdownTable(os.Stdout, sessions, implementationMeta())
	}

	cfg, err := resolveConfig(o, set)
	if err != nil {
		return err
	}

	impls := filterImplementations(getImplementations(), cfg.Implementations)
	if len(impls) == 0 {
		return fmt.Errorf("no implementation matches %v", cfg.Implementations)
	}

	trueCPUCount := runtime.NumCPU()
	cpuSettings := cfg.CPUSettings(trueCPUCount)
	concurrencyConfigs := cfg.ConcurrencySettings()

	totalTests := len(cpuSettings) * len(concurrencyConfigs) * cfg.Iterations * len(impls)
	var bar *progressbar.ProgressBar
	if o.progress {
		bar = progressbar.Default(int64(totalTests), "benchmarking")
		defer bar.Finish()
	}

	var allSessions []report.FullReport
	for _, cpus := range cpuSettings {
		runtime.GOMAXPROCS(cpus)
		sysInfo := report.GatherSystemInfo()
		sysInfo.NumCPU = cpus
		sysInfo.TrueCPU = trueCPUCount
		sysInfo.SimulatedCPUCount = cpus

		cpuLog := logger.With("gomaxprocs", cpus)
		cpuLog.Info("starting CPU setting", "cpu_model", sysInfo.CPUModel)

		var results []report.BenchmarkResult
		for _, cc := range concurrencyConfigs {
			for iteration := 1; iteration <= cfg.Iterations; iteration++ {
				for _, impl := range impls {
					runtime.GC()
					q := impl.newQueue(cfg.Capacity)

					res := testbench.RunTimedTest[*int](ctx, q, cc, cfg.TestDuration, func(i int) *int {
						return &i
					})

					cpuLog.Info("run finished",
						"impl", impl.name,
						"producers", cc.NumProducers,
						"consumers", cc.NumConsumers,
						"iteration", iteration,
						"produced", res.Produced,
						"consumed", res.Consumed,
						"throughput", fmt.Sprintf("%.0f msg/s", res.Throughput()),
						"took", res.Elapsed,
					)
					if bar != nil {
						_ = bar.Add(1)
					}

					results = append(results, report.BenchmarkResult{
						Implementation:      impl.name,
						NumProducers:        cc.NumProducers,
						NumConsumers:        cc.NumConsumers,
						NumMessages:         res.Produced,
						NumMessagesConsumed: res.Consumed,
						TestDuration:        cfg.TestDuration.String(),
						ActualElapsed:       res.Elapsed.String(),
						Throughput:          res.Throughput(),
						Timestamp:           time.Now().Unix(),
						GoVersion:           runtime.Version(),
					})

					if err := ctx.Err(); err != nil {
						return err
					}
				}
			}
		}

		allSessions = append(allSessions, report.FullReport{
			SessionTime: time.Now().Format(time.RFC3339),
			SystemInfo:  sysInfo,
			Benchmarks:  results,
		})
	}

	if o.jsonExport {
		if err := report.Append(o.jsonFile, allSessions); err != nil {
			return err
		}
		logger.Info("wrote results", "file", o.jsonFile)
	}
	return nil
}
