package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dining-sim/dining-sim/table"
)

var (
	// CLI flags for table configs
	logLevel        string        // Log verbosity level
	seats           int           // Ring size: philosophers and forks
	pickupTimeout   time.Duration // Hungry wait bound before a seat is declared deadlocked
	thinkMin        time.Duration // Min think delay
	thinkMax        time.Duration // Max think delay
	dineMin         time.Duration // Min dine delay
	dineMax         time.Duration // Max dine delay
	journalCapacity int           // Number of recent journal entries kept
	seed            int64         // Seed for per-seat delay generation (0 = derive from clock)

	// CLI flags for the driver loop
	runFor            time.Duration // How long to keep the sitting open
	pollInterval      time.Duration // Snapshot poll cadence
	restartOnDeadlock bool          // Reopen the sitting when a seat deadlocks
	preset            string        // Named preset from the presets file
	presetsFilePath   string        // Path to the presets yaml
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "dining-sim",
	Short: "Dining-philosophers fork arbitration monitor",
}

// runCmd opens a sitting, polls snapshots for the requested duration, then
// closes it and drains the philosopher loops.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the dining table",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := buildConfig(cmd)
		tb, err := table.New(cfg)
		if err != nil {
			logrus.Fatalf("Invalid table config: %v", err)
		}

		logrus.Infof("Opening table: %d seats, pickup timeout %v, think %v-%v, dine %v-%v, seed %d",
			cfg.Seats, cfg.PickupTimeout, cfg.ThinkDelay.Min, cfg.ThinkDelay.Max,
			cfg.DineDelay.Min, cfg.DineDelay.Max, cfg.Seed)
		tb.Start()

		deadline := time.After(runFor)
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()

	poll:
		for {
			select {
			case <-ticker.C:
				snap := tb.Snapshot()
				logrus.Info(snap.String())
				if restartOnDeadlock {
					if snap.HasDeadlock() {
						logrus.Warn("Deadlocked seat observed; reopening the sitting")
					}
					// Also re-seat any loop that exited after a timeout the
					// poller never caught in a snapshot.
					if snap.HasDeadlock() || snap.ActiveLoops < cfg.Seats {
						tb.Start()
					}
				}
			case <-deadline:
				break poll
			}
		}

		tb.Stop()
		tb.Wait()
		for _, line := range tb.Snapshot().Journal {
			logrus.Info(line)
		}
		logrus.Info("Table closed.")
	},
}

// buildConfig layers the preset (if any) over the defaults, then any flag the
// user set explicitly over the preset.
func buildConfig(cmd *cobra.Command) table.Config {
	cfg := table.DefaultConfig()

	if preset != "" {
		presets, err := LoadPresets(presetsFilePath)
		if err != nil {
			logrus.Fatalf("Failed to load presets: %v", err)
		}
		cfg, err = presets.Apply(preset, cfg)
		if err != nil {
			logrus.Fatalf("Failed to apply preset %q: %v", preset, err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seats") {
		cfg.Seats = seats
	}
	if flags.Changed("pickup-timeout") {
		cfg.PickupTimeout = pickupTimeout
	}
	if flags.Changed("think-min") {
		cfg.ThinkDelay.Min = thinkMin
	}
	if flags.Changed("think-max") {
		cfg.ThinkDelay.Max = thinkMax
	}
	if flags.Changed("dine-min") {
		cfg.DineDelay.Min = dineMin
	}
	if flags.Changed("dine-max") {
		cfg.DineDelay.Max = dineMax
	}
	if flags.Changed("journal-capacity") {
		cfg.JournalCapacity = journalCapacity
	}
	cfg.Seed = seed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Table configs
	runCmd.Flags().IntVar(&seats, "seats", 5, "Number of seats (philosophers and forks)")
	runCmd.Flags().DurationVar(&pickupTimeout, "pickup-timeout", 5*time.Second, "How long a hungry seat waits for both forks before deadlocking")
	runCmd.Flags().DurationVar(&thinkMin, "think-min", 1*time.Second, "Minimum think delay")
	runCmd.Flags().DurationVar(&thinkMax, "think-max", 3*time.Second, "Maximum think delay")
	runCmd.Flags().DurationVar(&dineMin, "dine-min", 1*time.Second, "Minimum dine delay")
	runCmd.Flags().DurationVar(&dineMax, "dine-max", 3*time.Second, "Maximum dine delay")
	runCmd.Flags().IntVar(&journalCapacity, "journal-capacity", 20, "Number of recent journal entries kept")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for per-seat delay generation (0 derives one from the clock)")

	// Driver configs
	runCmd.Flags().DurationVar(&runFor, "duration", 30*time.Second, "How long to keep the sitting open")
	runCmd.Flags().DurationVar(&pollInterval, "poll-interval", 1*time.Second, "Snapshot poll cadence")
	runCmd.Flags().BoolVar(&restartOnDeadlock, "restart-on-deadlock", false, "Reopen the sitting when a seat deadlocks")
	runCmd.Flags().StringVar(&preset, "preset", "", "Named preset from the presets file (classic, brisk, gridlock)")
	runCmd.Flags().StringVar(&presetsFilePath, "presets-file", "presets.yaml", "Path to the presets file")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
