package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/exp/slog"

	"safetrip/internal/app/server/api"
	"safetrip/internal/config"
	"safetrip/internal/infrastructure/events"
	"safetrip/internal/infrastructure/geocoding"
	"safetrip/internal/infrastructure/llm"
	"safetrip/internal/infrastructure/mail"
	"safetrip/internal/infrastructure/news"
	"safetrip/internal/infrastructure/storage/postgres"
	"safetrip/internal/utils/logger"
)

func main() {
	conf := config.MustLoad()
	log := logger.WithLevel(conf.Env, conf.Logger.LogLevel)

	if err := run(conf, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(conf *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, err := postgres.New(ctx, conf)
	if err != nil {
		return err
	}
	defer storage.Close()
	log.Info("database ready", "schema_version", storage.SchemaVersion())

	publisher := newPublisher(conf, log)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Warn("close event publisher", "error", err)
		}
	}()

	router := api.New(conf, storage, api.Upstreams{
		LLM: llm.NewClient(llm.Config{
			Endpoint:  conf.AI.Endpoint,
			APIKey:    conf.AI.APIKey,
			MaxTokens: conf.AI.MaxTokens,
			Timeout:   conf.AI.Timeout,
		}, log),
		News: news.NewGoogleNews(news.Config{
			FeedURL:  conf.News.FeedURL,
			Region:   conf.News.Region,
			MaxItems: conf.News.MaxItems,
			Timeout:  conf.News.Timeout,
		}, log),
		Geocoder: geocoding.NewOpenCage(geocoding.Config{
			Endpoint: conf.Geocoder.Endpoint,
			APIKey:   conf.Geocoder.APIKey,
			Timeout:  conf.Geocoder.Timeout,
		}, log),
		Mailer: mail.NewSMTP(mail.Config{
			Host:     conf.Mail.Host,
			Port:     conf.Mail.Port,
			User:     conf.Mail.User,
			Password: conf.Mail.Password,
			From:     conf.Mail.From,
			FromName: conf.Mail.FromName,
			UseTLS:   conf.Mail.UseTLS,
		}, log),
		Publisher: publisher,
	}, log)

	server := &http.Server{
		Addr:         conf.Server.RunAddress,
		Handler:      router,
		ReadTimeout:  conf.Server.ReadTimeout,
		WriteTimeout: conf.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", conf.Server.RunAddress, "env", conf.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server exited")
	return nil
}

func newPublisher(conf *config.Config, log *slog.Logger) events.Publisher {
	if len(conf.Kafka.Brokers) == 0 {
		log.Info("no kafka brokers configured, events are dropped")
		return events.Noop{}
	}
	return events.NewKafka(events.NewKafkaWriter(conf.Kafka.Brokers, conf.Kafka.Topic), conf.Kafka.PublishTimeout, log)
}
