package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/config"
	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/repository"
	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operation to run (1: reference data, 2: random staff, 3: random registrations)")
	flag.IntVar(&n, "n", 10, "number of records to insert")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Error("failed to load .env file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to the database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 1:
		seed.ReferenceData(repo)
	case 2:
		seed.RandomStaffs(repo, cfg.Seed.Staff.Password, n)
	case 3:
		seed.RandomRegistrations(repo, time.Now())
	default:
		logger.Error("unknown operation", "op", op)
		os.Exit(1)
	}
}
