package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	actorapp "github.com/muhammadheryan/pickup-inventory/application/actor"
	auditapp "github.com/muhammadheryan/pickup-inventory/application/audit"
	inventoryapp "github.com/muhammadheryan/pickup-inventory/application/inventory"
	movementapp "github.com/muhammadheryan/pickup-inventory/application/movement"
	orderapp "github.com/muhammadheryan/pickup-inventory/application/order"
	"github.com/muhammadheryan/pickup-inventory/application/reservation"
	"github.com/muhammadheryan/pickup-inventory/cmd/config"
	redisclient "github.com/muhammadheryan/pickup-inventory/cmd/redis"
	_ "github.com/muhammadheryan/pickup-inventory/docs"
	branchRepo "github.com/muhammadheryan/pickup-inventory/repository/branch"
	inventoryRepo "github.com/muhammadheryan/pickup-inventory/repository/inventory"
	movementRepo "github.com/muhammadheryan/pickup-inventory/repository/movement"
	orderRepo "github.com/muhammadheryan/pickup-inventory/repository/order"
	productRepo "github.com/muhammadheryan/pickup-inventory/repository/product"
	redisRepo "github.com/muhammadheryan/pickup-inventory/repository/redis"
	txRepo "github.com/muhammadheryan/pickup-inventory/repository/tx"
	"github.com/muhammadheryan/pickup-inventory/thirdparty/rabbitmq"
	"github.com/muhammadheryan/pickup-inventory/transport"
	"github.com/muhammadheryan/pickup-inventory/utils/logger"
	"go.uber.org/zap"
)

// @title PICKUP INVENTORY API
// @version 1.0
// @description Inventory reservation ledger and order fulfillment API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	redisClient, err := redisclient.New(cfg)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisClient.Close()
	}()

	// without a broker the API keeps serving; audit events are dropped and orders do not expire
	var auditPublisher auditapp.Publisher
	var expirationPublisher orderapp.ExpirationPublisher
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("err connect rabbitmq, audit and expiration disabled", zap.Error(err))
	} else {
		defer publisher.Close()
		auditPublisher = publisher
		expirationPublisher = publisher
	}

	// repositories
	TxRepo := txRepo.NewTxRepository(db)
	InventoryRepo := inventoryRepo.NewInventoryRepository(db)
	MovementRepo := movementRepo.NewMovementRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	BranchRepo := branchRepo.NewBranchRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	RedisRepo := redisRepo.NewRepository(redisClient)

	// application layers
	AuditEmitter := auditapp.NewEmitter(auditPublisher)
	MovementApp := movementapp.NewMovementApp(TxRepo, MovementRepo, InventoryRepo, BranchRepo, ProductRepo, AuditEmitter)
	ReservationManager := reservation.NewManager(TxRepo, InventoryRepo, MovementApp)
	InventoryApp := inventoryapp.NewInventoryApp(TxRepo, InventoryRepo, OrderRepo, MovementApp)
	OrderApp := orderapp.NewOrderApp(cfg, TxRepo, OrderRepo, BranchRepo, ProductRepo, ReservationManager, RedisRepo, AuditEmitter, expirationPublisher)
	ActorApp := actorapp.NewActorApp(cfg, RedisRepo)

	httpTransport := transport.NewTransport(OrderApp, InventoryApp, MovementApp, ActorApp, cfg.Internal.APIKey)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	// drain audit events before the publisher is closed
	AuditEmitter.Wait()
}
