package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"routine/internal/config"
	"routine/internal/engine"
	"routine/internal/logging"
	"routine/internal/period"
	"routine/internal/storage"
)

func openService(ctx context.Context, flags *rootFlags) (*engine.Service, func(), error) {
	cfg, err := config.Load(flags.configFile)
	if err != nil {
		return nil, nil, err
	}
	if flags.dbPath != "" {
		cfg.Storage.Driver = storage.DriverSQLite
		cfg.Storage.Path = flags.dbPath
	}

	logger, logCloser, err := logging.New(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		return nil, nil, err
	}
	kv, err := storage.OpenKV(ctx, cfg.Storage.Options())
	if err != nil {
		_ = logCloser.Close()
		return nil, nil, err
	}

	svc := engine.NewService(kv,
		engine.WithLogger(logger),
		engine.WithKeys(cfg.Storage.DailyKey, cfg.Storage.WeeklyKey),
	)
	svc.Load(ctx)

	cleanup := func() {
		_ = kv.Close()
		_ = logCloser.Close()
	}
	return svc, cleanup, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.New("id must be an integer")
	}
	return id, nil
}

// resolveTask finds the list holding id and returns the task.
func resolveTask(svc *engine.Service, id int64) (engine.ListKind, engine.Task, error) {
	kind, err := svc.Resolve(id)
	if err != nil {
		return "", engine.Task{}, fmt.Errorf("task %d: %w", id, err)
	}
	l, err := svc.Store().List(kind)
	if err != nil {
		return "", engine.Task{}, err
	}
	t, _ := l.Get(id)
	return kind, t, nil
}

// referenceDate parses --date, defaulting to today.
func referenceDate(svc *engine.Service, value string) (time.Time, error) {
	if value == "" {
		return svc.Today(), nil
	}
	return period.ParseDay(value)
}

// idArgs validates "<id> ..." positional args: exactly n of them, the first an integer.
func idArgs(n int, usage string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errors.New(usage)
		}
		_, err := parseID(args[0])
		return err
	}
}
