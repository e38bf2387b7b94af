package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"telegram-techq-bot/internal/config"
	"telegram-techq-bot/internal/handler"
	"telegram-techq-bot/internal/questions"
	"telegram-techq-bot/internal/repository"
	"telegram-techq-bot/internal/scheduler"
	"telegram-techq-bot/internal/selection"
	"telegram-techq-bot/internal/service"
	"telegram-techq-bot/internal/telegram"
)

func main() {
	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	zapConfig.EncoderConfig.TimeKey = "timestamp"

	logger, err := zapConfig.Build()
	if err != nil {
		panic(fmt.Errorf("init logger: %w", err))
	}
	defer logger.Sync()

	zap.ReplaceGlobals(logger)

	if err := godotenv.Load(); err != nil {
		zap.S().Debug("load .env file", zap.Error(err))
	}

	cfg, err := config.Load()
	if err != nil {
		zap.S().Fatal("load configuration", zap.Error(err))
	}

	loc, err := cfg.Location()
	if err != nil {
		zap.S().Fatal("load timezone", zap.Error(err), zap.String("timezone", cfg.Timezone))
	}

	repo, err := repository.New(cfg.DBDriver, cfg.DBDSN, 10, 20)
	if err != nil {
		zap.S().Error("connect to database", zap.Error(err), zap.String("driver", cfg.DBDriver))
		os.Exit(1)
	}
	defer repo.Close()

	if err = repo.Up(cfg.MigrationsDir); err != nil {
		zap.S().Error("run migrations", zap.Error(err))
		os.Exit(1)
	}

	bank, err := questions.Load(cfg.QuestionsPath)
	if err != nil {
		zap.S().Error("load question catalog", zap.Error(err), zap.String("path", cfg.QuestionsPath))
		os.Exit(1)
	}
	zap.S().Info("question catalog loaded", zap.Int("questions", bank.Len()))

	client, err := telegram.NewClient(cfg.TelegramToken)
	if err != nil {
		zap.S().Error("create telegram client", zap.Error(err))
		os.Exit(1)
	}

	policy := selection.New(bank, nil)
	svc := service.New(repo, bank, policy, client, loc)

	sched := scheduler.New(cfg.ScheduleHour, cfg.ScheduleMinute, loc, func() {
		if err := svc.BroadcastToday(context.Background()); err != nil {
			zap.S().Error("daily broadcast", zap.Error(err))
		}
	})
	if err := sched.Start(); err != nil {
		zap.S().Error("start scheduler", zap.Error(err))
		os.Exit(1)
	}
	defer sched.Stop()

	bot := handler.New(client, svc, cfg.WebhookURL, cfg.ListenAddr)
	if err := bot.Start(); err != nil {
		zap.S().Error("run bot", zap.Error(err))
		os.Exit(1)
	}
}
