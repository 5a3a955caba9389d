package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alexose/planka-notifications/api"
	"github.com/alexose/planka-notifications/integrations"
)

func main() {
	levelStr := strings.ToLower(os.Getenv("LOG_LEVEL"))
	if levelStr == "" {
		levelStr = "debug"
	}
	level, err := zapcore.ParseLevel(levelStr)
	if err != nil {
		level = zapcore.InfoLevel
	}

	atom := zap.NewAtomicLevelAt(level)

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	config := zap.Config{
		Level:            atom,
		Development:      true,
		Encoding:         "console",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, _ := config.Build()
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		zap.L().Fatal("Error reading config file", zap.Error(err))
	}

	applyLogLevel(atom)
	viper.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("Config file changed", zap.String("file", e.Name))
		applyLogLevel(atom)
	})
	viper.WatchConfig()

	port := viper.GetString("server.port")
	if port == "" {
		port = "8080"
	}

	slackToken := viper.GetString("slack.token")
	if slackToken == "" {
		zap.L().Fatal("slack.token is not configured")
	}

	slackClient := integrations.NewSlackClient(slackToken)
	if err := slackClient.CheckAuth(context.Background()); err != nil {
		zap.L().Fatal("Failed to authenticate with Slack", zap.Error(err))
	}

	if viper.GetString("relay.token") == "" {
		zap.L().Warn("relay.token is empty; webhook authentication is disabled")
	}
	if viper.GetString("slack.default_channel") == "" {
		zap.L().Warn("slack.default_channel is empty; events without a channel target will be dropped")
	}

	router := gin.New()
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))

	apiHandler := &api.Handler{
		Slack: slackClient,
	}
	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/planka-webhook", api.TokenAuth(), apiHandler.PlankaWebhookHandler)
		apiGroup.HEAD("/planka-webhook", apiHandler.PlankaWebhookHandler)
		apiGroup.GET("/health", apiHandler.HealthCheckHandler)
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	zap.L().Info("Starting server", zap.String("port", port))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("Server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	var once sync.Once

	cleanup := func(reason string) {
		zap.L().Info("Shutdown initiated", zap.String("reason", reason))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		zap.L().Info("Shutting down HTTP server...")
		if err := srv.Shutdown(ctx); err != nil {
			zap.L().Error("Error shutting down server", zap.Error(err))
		} else {
			zap.L().Info("HTTP server shut down gracefully.")
		}

		close(done)
	}

	go func() {
		sig := <-sigCh
		once.Do(func() {
			cleanup(sig.String())
		})

		// if a second signal is caught, exit immediately
		go func() {
			<-sigCh
			zap.L().Info("Second interrupt signal received. Exiting immediately.")
			os.Exit(1)
		}()
	}()

	<-done
	zap.L().Info("Exiting...")
}

// applyLogLevel picks up log.level from the config file, keeping the current
// level when the key is absent or unparsable. Runs again on every config
// reload so the level can be changed without a restart.
func applyLogLevel(atom zap.AtomicLevel) {
	levelStr := viper.GetString("log.level")
	if levelStr == "" {
		return
	}
	level, err := zapcore.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		zap.L().Warn("Invalid log.level in config", zap.String("value", levelStr))
		return
	}
	atom.SetLevel(level)
}
