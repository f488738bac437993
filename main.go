package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lmsmodules/bootstrap"
	"lmsmodules/config"
	"lmsmodules/pkg/logger"
	"lmsmodules/repository"
	"lmsmodules/services"
)

const usage = `usage: lmsmodules <command> [args]

commands:
  migrate        create the menu tables
  seed [file]    install users and module groups from a YAML seed file
  export         print every module group with its modules as JSON
  summary        print every module group with its module count as JSON
`

func main() {
	// 1) Load config
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("LoadConfig error: %v", err)
	}

	// 2) Init logger with config
	logger.Init(logger.Options{
		File:       config.Cfg.LogFile,
		Level:      logger.ParseLogLevel(config.Cfg.LogLevel),
		MaxSize:    config.Cfg.LogMaxSize,
		MaxBackups: config.Cfg.LogMaxBackups,
		MaxAge:     config.Cfg.LogMaxAge,
		Compress:   config.Cfg.LogCompress,
	})

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	// 3) Connect DB (GORM)
	if err := config.ConnectDB(); err != nil {
		log.Fatalf("ConnectDB error: %v", err)
	}
	if config.DB == nil {
		log.Fatal("Database is nil after ConnectDB")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	config.CloseDB()
	if err != nil {
		logger.Errorf("%s failed: %v", os.Args[1], err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	// An in-memory database starts empty on every run.
	if config.Cfg.DBDriver == config.DriverMemory {
		if err := repository.Migrate(config.DB); err != nil {
			return err
		}
		if args[0] != "seed" {
			if _, err := bootstrap.Seed(ctx, config.Cfg.SeedFile); err != nil {
				return err
			}
		}
	}

	switch args[0] {
	case "migrate":
		return repository.Migrate(config.DB)

	case "seed":
		path := config.Cfg.SeedFile
		if len(args) > 1 {
			path = args[1]
		}
		_, err := bootstrap.Seed(ctx, path)
		return err

	case "export":
		groups, err := services.NewModuleGroupService().GetAllGroups(ctx)
		if err != nil {
			return err
		}
		return writeJSON(out, groups)

	case "summary":
		summaries, err := services.NewModuleGroupService().GetGroupSummaries(ctx)
		if err != nil {
			return err
		}
		return writeJSON(out, summaries)

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
