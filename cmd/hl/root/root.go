package root

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hunterlog/internal/config"
	"hunterlog/internal/engine"
	"hunterlog/internal/logging"
	"hunterlog/internal/ui"
)

const Version = "0.1.0"

// globalOptions are the persistent flags; empty values fall back to the environment.
type globalOptions struct {
	dbPath   string
	store    string
	logLevel string
	timezone string
}

func (o *globalOptions) config() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if o.store != "" {
		cfg.Store = o.store
		if o.dbPath == "" && os.Getenv("HUNTERLOG_DB") == "" {
			cfg.DBPath = ""
		}
	}
	if o.dbPath != "" {
		cfg.DBPath = o.dbPath
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.timezone != "" {
		cfg.Timezone = o.timezone
	}
	if err := cfg.Normalize(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:           "hl",
		Short:         "hunterlog: level up by keeping your habits",
		Long:          "hunterlog is a local-first habit tracker with hunter ranks, quests, dungeon missions and loot.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logging.WithContext(ctx, log))
			return nil
		},
	}
	cmd.Version = Version
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.dbPath, "db", "", "State file path (env HUNTERLOG_DB)")
	pf.StringVar(&opts.store, "store", "", "Storage backend: sqlite|bolt (env HUNTERLOG_STORE)")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level: debug|info|warn|error (env HUNTERLOG_LOG_LEVEL)")
	pf.StringVar(&opts.timezone, "tz", "", "IANA timezone for calendar days (env HUNTERLOG_TZ)")

	cmd.AddCommand(
		newInitCmd(opts),
		newStatusCmd(opts),
		newHabitCmd(opts),
		newQuestCmd(opts),
		newMissionCmd(opts),
		newInventoryCmd(opts),
		newEquipCmd(opts),
		newUnequipCmd(opts),
		newNotificationsCmd(opts),
		newDismissCmd(opts),
		newHistoryCmd(opts),
		newSweepCmd(opts),
		newWatchCmd(opts),
		newBoardCmd(opts),
		newResetCmd(opts),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		os.Exit(1)
	}
}

// renderError shows engine rejections as warnings and everything else as errors.
func renderError(err error) string {
	var gate engine.LevelGateError
	switch {
	case errors.As(err, &gate):
		return ui.Warn.Render(ui.IconWarn + " " + err.Error())
	case isRejection(err):
		return ui.Warn.Render(ui.IconWarn + " " + err.Error())
	default:
		return ui.Bad.Render(ui.IconError + " " + err.Error())
	}
}

func isRejection(err error) bool {
	for _, target := range []error{
		engine.ErrHabitNotFound,
		engine.ErrQuestNotFound,
		engine.ErrQuestAlreadyComplete,
		engine.ErrQuestNotReady,
		engine.ErrNotificationNotFound,
		engine.ErrItemNotOwned,
		engine.ErrMissionActive,
		engine.ErrNoActiveMission,
		engine.ErrMissionMismatch,
		engine.ErrMissionNotStartable,
		engine.ErrMissionNoSteps,
		engine.ErrStepNotFound,
		engine.ErrStepNotInProgress,
		engine.ErrMonsterNotFound,
		errAmbiguousID,
		errUnknownID,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
