package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/straye-as/pipeline-api/internal/config"
	"github.com/straye-as/pipeline-api/internal/logger"
	"go.uber.org/zap"
)

const defaultMigrationsDir = "./migrations"

// migration is one subcommand of the migrate tool
type migration struct {
	usage string
	run   func(ctx context.Context, db *sql.DB, dir string, args []string) (string, error)
}

var commands = map[string]migration{
	"up": {
		usage: "up",
		run: func(ctx context.Context, db *sql.DB, dir string, _ []string) (string, error) {
			return "lead schema is up to date", goose.UpContext(ctx, db, dir)
		},
	},
	"up-to": {
		usage: "up-to VERSION",
		run: func(ctx context.Context, db *sql.DB, dir string, args []string) (string, error) {
			version, err := versionArg(args)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("lead schema migrated to version %d", version), goose.UpToContext(ctx, db, dir, version)
		},
	},
	"down": {
		usage: "down",
		run: func(ctx context.Context, db *sql.DB, dir string, _ []string) (string, error) {
			return "rolled back one migration", goose.DownContext(ctx, db, dir)
		},
	},
	"redo": {
		usage: "redo",
		run: func(ctx context.Context, db *sql.DB, dir string, _ []string) (string, error) {
			return "re-applied the latest migration", goose.RedoContext(ctx, db, dir)
		},
	},
	"reset": {
		usage: "reset",
		run: func(ctx context.Context, db *sql.DB, dir string, _ []string) (string, error) {
			return "dropped the lead schema", goose.ResetContext(ctx, db, dir)
		},
	},
	"status": {
		usage: "status",
		run: func(ctx context.Context, db *sql.DB, dir string, _ []string) (string, error) {
			return "", goose.StatusContext(ctx, db, dir)
		},
	},
	"version": {
		usage: "version",
		run: func(ctx context.Context, db *sql.DB, dir string, _ []string) (string, error) {
			return "", goose.VersionContext(ctx, db, dir)
		},
	},
	"create": {
		usage: "create NAME",
		run: func(ctx context.Context, db *sql.DB, dir string, args []string) (string, error) {
			if len(args) == 0 {
				return "", fmt.Errorf("create requires a migration name")
			}
			return "created migration " + args[0], goose.Create(db, dir, args[0], "sql")
		},
	},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Migration error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	args := os.Args[1:]
	if len(args) == 0 {
		return fmt.Errorf("usage: migrate %s", usage())
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q, usage: migrate %s", args[0], usage())
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	log = log.Named("migrate")

	dir := defaultMigrationsDir
	if env := os.Getenv("MIGRATIONS_DIR"); env != "" {
		dir = env
	}

	db, err := sql.Open("postgres", cfg.Database.ConnectionString())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	goose.SetLogger(gooseLogger{log.Sugar()})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	log.Info("running migration command",
		zap.String("command", args[0]),
		zap.String("dir", dir),
		zap.String("database", cfg.Database.Name))

	msg, err := cmd.run(ctx, db, dir, args[1:])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	if msg != "" {
		log.Info(msg)
	}
	return nil
}

func versionArg(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("up-to requires a version")
	}
	version, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", args[0], err)
	}
	return version, nil
}

func usage() string {
	names := make([]string, 0, len(commands))
	for _, c := range commands {
		names = append(names, c.usage)
	}
	sort.Strings(names)
	return "[" + strings.Join(names, "|") + "]"
}

// gooseLogger routes goose output through zap
type gooseLogger struct {
	log *zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.log.Infof(strings.TrimSuffix(format, "\n"), v...)
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Fatalf(strings.TrimSuffix(format, "\n"), v...)
}
