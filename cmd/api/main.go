package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meetmate/config"
	_ "meetmate/docs" // Swagger docs
	"meetmate/internal/followup"
	"meetmate/internal/followup/notify"
	followupRepo "meetmate/internal/followup/repository/inmem"
	followupUC "meetmate/internal/followup/usecase"
	"meetmate/internal/httpserver"
	"meetmate/internal/scheduling"
	schedulingUC "meetmate/internal/scheduling/usecase"
	"meetmate/pkg/datemath"
	"meetmate/pkg/gcalendar"
	"meetmate/pkg/gemini"
	"meetmate/pkg/judgment"
	"meetmate/pkg/log"
	"meetmate/pkg/telegram"
)

// @title       MeetMate API
// @description AI meeting scheduler and follow-up triage with Gemini, Google Calendar, and Telegram.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting MeetMate...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Shared clients
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	if cfg.Gemini.Model != "" {
		geminiClient.SetModel(cfg.Gemini.Model)
	}

	judgeTimeout, tErr := time.ParseDuration(cfg.Gemini.Timeout)
	if tErr != nil {
		logger.Warnf(ctx, "Invalid gemini timeout %q, using default: %v", cfg.Gemini.Timeout, tErr)
		judgeTimeout = 0
	}
	judge := judgment.New(geminiClient, logger, judgment.Config{
		Timeout:     judgeTimeout,
		Temperature: cfg.Gemini.Temperature,
	})

	timezone := cfg.GoogleCalendar.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	dateMathParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Scheduling domain (requires Google Calendar)
	var schedulingUseCase scheduling.UseCase
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, gcalendar.Config{
			CalendarID:   cfg.GoogleCalendar.CalendarID,
			Timezone:     timezone,
			DayStartHour: cfg.Scheduler.WorkingDayStartHour,
			DayEndHour:   cfg.Scheduler.WorkingDayEndHour,
			StepMinutes:  cfg.Scheduler.SlotStepMinutes,
		})
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available, scheduling disabled: %v", calErr)
		} else {
			schedulingUseCase = schedulingUC.New(logger, judge, calendarClient, calendarClient, dateMathParser, schedulingUC.Config{
				SearchWindowDays:    cfg.Scheduler.SearchWindowDays,
				PreferredWindowDays: cfg.Scheduler.PreferredWindowDays,
				BufferMinutes:       cfg.Scheduler.BufferMinutes,
			})
			logger.Info(ctx, "Scheduling domain initialized")
		}
	} else {
		logger.Warn(ctx, "GOOGLE_CALENDAR_CREDENTIALS not set, scheduling disabled")
	}

	// 5. Follow-up domain
	var notifier followup.Notifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		notifier = notify.NewTelegramNotifier(bot, cfg.Telegram.ChatID, logger)
		logger.Info(ctx, "Telegram notifier initialized")
	} else {
		notifier = notify.NewLogNotifier(logger)
		logger.Warn(ctx, "TELEGRAM_BOT_TOKEN not set, reminders go to the log")
	}

	itemRepo := followupRepo.New()
	followUpUseCase := followupUC.New(logger, judge, itemRepo, notifier, notify.NewLogEscalationSink(logger), followupUC.Config{
		UpcomingWindowDays: cfg.FollowUp.UpcomingWindowDays,
		ReportWindowDays:   cfg.FollowUp.ReportWindowDays,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		SchedulingUC:    schedulingUseCase,
		FollowUpUC:      followUpUseCase,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
