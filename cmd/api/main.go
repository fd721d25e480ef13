package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/config"
	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/database"
	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/handler"
	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	/**********************************************
	 * create logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * load configuration
	 **********************************************/
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Error("failed to load .env file", "error", err)
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		return
	}

	/**********************************************
	 * connect to the database
	 **********************************************/
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

	// sql.Open does not touch the network, ping to verify the DSN
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to the database", "error", err)
		return
	}

	/**********************************************
	 * run migrations
	 **********************************************/
	if cfg.Database.AutoMigrate {
		if err := database.RunMigrations(dbpool, logger); err != nil {
			logger.Error("failed to run database migrations", "error", err)
			return
		}
	}

	/**********************************************
	 * create repository
	 **********************************************/
	repo := repository.NewRepository(cfg, dbpool)

	/**********************************************
	 * make sure the initial manager account exists
	 **********************************************/
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.InitialManager.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("failed to hash the initial manager password", "error", err)
		return
	}
	initialManager := &domain.Staff{
		Username:     cfg.InitialManager.Username,
		PasswordHash: string(passwordHash),
		FullName:     cfg.InitialManager.FullName,
		Phone:        cfg.InitialManager.Phone,
		Email:        cfg.InitialManager.Email,
		StaffType:    domain.StaffTypeManager,
		Status:       domain.StaffStatusFullTime,
	}
	if err := repo.CreateStaff(initialManager); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "staffs_username_key":
				// already bootstrapped, nothing to do
			default:
				logger.Error("failed to create the initial manager", "error", err)
				return
			}
		default:
			logger.Error("failed to create the initial manager", "error", err)
			return
		}
	}

	/**********************************************
	 * connect to rabbitmq
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("failed to open a rabbitmq channel", "error", err)
		return
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		domain.MailQueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("failed to declare the mail queue", "error", err)
		return
	}

	/**********************************************
	 * connect to redis
	 **********************************************/
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	/**********************************************
	 * create handler
	 **********************************************/
	handler, err := handler.NewHandler(cfg, repo, ch, rdb)
	if err != nil {
		logger.Error("failed to create handler", "error", err)
		return
	}
	handler.RegisterRoutes()

	/**********************************************
	 * start the HTTP server
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("starting server...", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("failed to start server", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("failed to shut down server", slog.String("error", err.Error()))
	}
	logger.Info("server stopped")
}
