package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/pickup-inventory/cmd/config"
	"github.com/muhammadheryan/pickup-inventory/thirdparty/rabbitmq"
	"github.com/muhammadheryan/pickup-inventory/utils/logger"
	"go.uber.org/zap"
)

// The worker expires PENDING orders through the API's internal endpoint.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
		cfg.Internal.APIURL, cfg.Internal.APIKey)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("Order expiration worker running", zap.String("api_url", cfg.Internal.APIURL))

	<-ctx.Done()
	logger.Info("Shutting down worker")
}
