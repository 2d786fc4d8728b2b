package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resumefit/internal/ai"
	"github.com/spigell/resumefit/internal/ai/gemini"
	"github.com/spigell/resumefit/internal/logger"
	"github.com/spigell/resumefit/internal/secrets"
	"github.com/spigell/resumefit/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analyzer endpoint backed by Gemini",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", "", "listen address (default :8000)")

	viper.BindPFlag("server.address", serveCmd.Flags().Lookup("address"))
}

func serve() {
	// .env is optional and only used for local runs
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("loading .env: %v", err)
	}

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the resumefit analyzer", zap.String("version", version))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	matcher, err := newAIMatcher(ctx, config.AI, logger)
	if err != nil {
		logger.Fatal("building ai matcher", zap.Error(err))
	}

	srv, err := server.New(server.Config{
		Address:        config.Server.Address,
		AllowedOrigins: config.Server.AllowedOrigins,
		Debug:          viper.GetBool("debug"),
	}, matcher, logger)
	if err != nil {
		logger.Fatal("configuring analyzer server", zap.Error(err))
	}

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("analyzer server stopped", zap.Error(err))
	}

	logger.Info("analyzer server exited")
}

func newAIMatcher(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Matcher, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		File:  cfg.Gemini.APIKeyFile,
		Value: cfg.Gemini.APIKey,
		Env:   "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file, GEMINI_API_KEY_FILE or GEMINI_API_KEY)", err)
	}

	genLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, gemini.Options{
		Model:       cfg.Gemini.Model,
		MaxRetries:  cfg.Gemini.MaxRetries,
		Temperature: cfg.Gemini.Temperature,
	}, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewMatcher(generator, cfg.Gemini.MaxLogLength, logger), nil
}
