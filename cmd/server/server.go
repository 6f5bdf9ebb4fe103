package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	tele "gopkg.in/telebot.v3"
	"gorm.io/gorm"

	"github.com/Badsnus/club-directory/internal/adapters/config"
	"github.com/Badsnus/club-directory/internal/adapters/database/redis"
	"github.com/Badsnus/club-directory/internal/domain/service"
	"github.com/Badsnus/club-directory/pkg/logger"
	"github.com/Badsnus/club-directory/pkg/logger/types"
	"github.com/Badsnus/club-directory/pkg/smtp"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	Router   *chi.Mux
	DB       *gorm.DB
	Redis    *redis.Client
	Sessions *scs.SessionManager
	Mailer   *smtp.Client
	// Notify is nil when Telegram notifications are disabled.
	Notify *service.NotifyService
	Logger *types.Logger
}

func New(config *config.Config) (*Server, error) {
	serverLogger, err := logger.Named("http")
	if err != nil {
		return nil, err
	}
	mailLogger, err := logger.Named("smtp")
	if err != nil {
		return nil, err
	}

	sessions := scs.New()
	sessions.Store = config.Redis.Sessions
	sessions.Lifetime = viper.GetDuration("server.session-lifetime")
	sessions.Cookie.Name = "club_session"
	sessions.Cookie.HttpOnly = true
	sessions.Cookie.SameSite = http.SameSiteLaxMode
	sessions.Cookie.Secure = !viper.GetBool("settings.debug")

	mailer := smtp.NewClient(config.SMTPDialer, smtp.Options{
		From:    viper.GetString("service.smtp.from"),
		Domain:  viper.GetString("service.smtp.domain"),
		SiteURL: viper.GetString("settings.base-url"),
	}, mailLogger)

	s := &Server{
		Router:   chi.NewRouter(),
		DB:       config.Database,
		Redis:    config.Redis,
		Sessions: sessions,
		Mailer:   mailer,
		Logger:   serverLogger,
	}

	if config.NotifyBot != nil {
		notifyLogger, err := logger.Named("notify")
		if err != nil {
			return nil, err
		}
		s.Notify = service.NewNotifyService(
			config.NotifyBot,
			&tele.Chat{ID: viper.GetInt64("notify.telegram.chat-id")},
			viper.GetString("settings.base-url"),
			notifyLogger,
		)
	}

	return s, nil
}

// Start serves HTTP until SIGINT or SIGTERM, then shuts down gracefully and
// releases the storage connections.
func (s *Server) Start() {
	if s.Notify != nil && viper.GetBool("notify.telegram.log-errors") {
		logger.SetLogHook(s.Notify.LogHook(zapcore.Level(viper.GetInt("notify.telegram.log-level"))))
	}

	httpServer := &http.Server{
		Addr:              viper.GetString("server.addr"),
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Log.Infof("Server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("Server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("Failed to shut down server: %v", err)
	}
	if err := s.Redis.Close(); err != nil {
		logger.Log.Errorf("Failed to close redis: %v", err)
	}
	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
