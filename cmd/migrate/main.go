package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/moneytracker/api/infra"
	"github.com/moneytracker/api/internal/migrations"
	"github.com/moneytracker/api/pkg/config"
)

const usage = "Usage: migrate up | down [steps] | version"

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(2)
	}
	if err := run(os.Args[1], os.Args[2:]); err != nil {
		_, _ = color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(cmd string, args []string) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}
	db, err := infra.NewDBConnection(cfg.DB, "production")
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close() //nolint:errcheck

	switch cmd {
	case "up":
		if err := migrations.Up(sqlDB); err != nil {
			return err
		}
	case "down":
		steps := 1
		if len(args) > 0 {
			if steps, err = strconv.Atoi(args[0]); err != nil {
				return fmt.Errorf("invalid steps %q: %w", args[0], err)
			}
		}
		if err := migrations.Down(sqlDB, steps); err != nil {
			return err
		}
	case "version":
	default:
		fmt.Println(usage)
		return fmt.Errorf("unknown command %q", cmd)
	}

	v, dirty, err := migrations.Version(sqlDB)
	if err != nil {
		return err
	}
	_, _ = color.New(color.FgGreen).Printf("schema version %d (dirty=%t)\n", v, dirty)
	return nil
}
