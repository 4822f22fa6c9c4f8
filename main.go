package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
	"gorgonia.org/tensor"

	"github.com/samuelfneumann/gogymnasium/environment"
	"github.com/samuelfneumann/gogymnasium/environment/envconfig"
	"github.com/samuelfneumann/gogymnasium/environment/wrappers"
	"github.com/samuelfneumann/gogymnasium/experiment"
	"github.com/samuelfneumann/gogymnasium/experiment/trackers"
	"github.com/samuelfneumann/gogymnasium/utils/progressbar"
)

const (
	renderModeEnv = "GOGYMNASIUM_RENDER_MODE"
	seedEnv       = "GOGYMNASIUM_SEED"
)

// defaultConfig is run when no configuration file is given
var defaultConfig = envconfig.Config{
	Environment: envconfig.CartPole,
	Wrappers: []envconfig.Wrapper{
		{Name: envconfig.OrderEnforcing},
		{Name: envconfig.TimeLimit, MaxEpisodeSteps: 500},
		{Name: envconfig.RecordEpisodeStatistics},
	},
}

type runFlags struct {
	config     string
	episodes   uint
	maxSteps   uint
	renderMode string
	seed       uint64
	saveDir    string
	progress   bool
}

func main() {
	for _, envFile := range []string{".env", "../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	rootCmd := &cobra.Command{
		Use:   "gogymnasium",
		Short: "gogymnasium runs reinforcement learning environments",
	}
	rootCmd.AddCommand(runCommand())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func runCommand() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run episodes of an environment with a uniform random policy",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), flags)
		},
	}

	// Unset or malformed seeds default to 0
	seed, _ := strconv.ParseUint(os.Getenv(seedEnv), 10, 64)

	cmd.Flags().StringVar(&flags.config, "config", "",
		"path to a JSON environment configuration")
	cmd.Flags().UintVar(&flags.episodes, "episodes", 1,
		"number of episodes to run")
	cmd.Flags().UintVar(&flags.maxSteps, "max-steps", 0,
		"maximum number of timesteps to run, 0 for no limit")
	cmd.Flags().StringVar(&flags.renderMode, "render-mode",
		os.Getenv(renderModeEnv), "render mode, one of human or rgb_array")
	cmd.Flags().Uint64Var(&flags.seed, "seed", seed, "random seed")
	cmd.Flags().StringVar(&flags.saveDir, "save-dir", "",
		"directory to save episode returns and lengths to")
	cmd.Flags().BoolVar(&flags.progress, "progress", false,
		"show a progress bar instead of logging each episode")

	return cmd
}

func run(ctx context.Context, flags runFlags) error {
	runID := uuid.New()
	logger := log.New(os.Stderr, fmt.Sprintf("[%v] ", runID), log.LstdFlags)

	config := defaultConfig
	if flags.config != "" {
		var err error
		config, err = envconfig.Load(flags.config)
		if err != nil {
			return err
		}
	}
	if flags.renderMode != "" {
		config.RenderMode = environment.RenderMode(flags.renderMode)
	}

	statsKey := ""
	for _, w := range config.Wrappers {
		if w.Name == envconfig.RecordEpisodeStatistics {
			statsKey = w.StatsKey
			if statsKey == "" {
				statsKey = wrappers.DefaultStatsKey
			}
		}
	}

	var returnFile, lengthFile string
	if flags.saveDir != "" {
		if err := os.MkdirAll(flags.saveDir, 0o755); err != nil {
			return fmt.Errorf("run: %w", err)
		}
		returnFile = filepath.Join(flags.saveDir, runID.String()+"-returns.bin")
		lengthFile = filepath.Join(flags.saveDir, runID.String()+"-lengths.bin")
	}
	ret := trackers.NewReturn[*tensor.Dense](returnFile, statsKey)
	length := trackers.NewEpisodeLength[*tensor.Dense](lengthFile, statsKey)

	expConfig := experiment.Config{
		Type:     experiment.OnlineExp,
		Episodes: flags.episodes,
		MaxSteps: flags.maxSteps,
		EnvConf:  config,
	}
	exp, err := expConfig.CreateExp(flags.seed, ret, length)
	if err != nil {
		return err
	}
	defer exp.Close()

	logger.Printf("running %v episodes of %v (seed: %v, render mode: %q)",
		flags.episodes, config.Environment, flags.seed, config.RenderMode)

	var bar *progressbar.ManualProgressBar
	if flags.progress && flags.episodes > 0 {
		bar, err = progressbar.NewManualProgressBar(os.Stderr, 50,
			int(flags.episodes))
		if err != nil {
			return err
		}
	}

	for episode := 0; ; {
		done, err := exp.RunEpisode(ctx)
		if err != nil {
			return err
		}

		returns, lengths := ret.Data(), length.Data()
		if len(returns) > episode {
			if bar != nil {
				bar.Increment()
				if err := bar.Display(); err != nil {
					return err
				}
			} else {
				logger.Printf("episode %v: return %v, length %v", episode,
					returns[episode], lengths[episode])
			}
			episode++
		}
		if done {
			break
		}
	}

	if returns := ret.Data(); len(returns) > 0 {
		logger.Printf("mean return over %v episodes: %v", len(returns),
			stat.Mean(returns, nil))
	}

	if err := exp.Save(); err != nil {
		return err
	}
	if flags.saveDir != "" {
		logger.Printf("saved episode data to %v", flags.saveDir)
	}
	return nil
}
