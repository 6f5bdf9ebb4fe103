package service

import (
	"fmt"
	"html"
	"strings"

	"go.uber.org/zap/zapcore"
	tele "gopkg.in/telebot.v3"

	"github.com/Badsnus/club-directory/internal/domain/entity"
	"github.com/Badsnus/club-directory/pkg/logger/types"
)

type notifyBot interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// NotifyService posts moderation events to the admins' Telegram chat. A nil
// *NotifyService is valid and drops everything.
type NotifyService struct {
	bot     notifyBot
	chat    tele.Recipient
	baseURL string
	logger  *types.Logger
}

func NewNotifyService(bot notifyBot, chat tele.Recipient, baseURL string, logger *types.Logger) *NotifyService {
	return &NotifyService{
		bot:     bot,
		chat:    chat,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

func (s *NotifyService) ClubCreated(club *entity.Club) {
	if s == nil {
		return
	}
	s.send(fmt.Sprintf(
		"🆕 <b>New club:</b> %s\nOwner: %s\n%s/clubs/%s",
		html.EscapeString(club.Name), html.EscapeString(club.OwnerEmail), s.baseURL, club.ID,
	))
}

func (s *NotifyService) ClubDeleted(club *entity.Club, by *entity.User) {
	if s == nil {
		return
	}
	s.send(fmt.Sprintf(
		"🗑 <b>Club deleted:</b> %s\nOwner: %s\nBy: %s",
		html.EscapeString(club.Name), html.EscapeString(club.OwnerEmail), html.EscapeString(by.Email),
	))
}

// LogHook returns a log hook forwarding entries at or above level to the
// chat.
func (s *NotifyService) LogHook(level zapcore.Level) types.LogHook {
	return func(log types.Log) {
		if log.Level < level || strings.Contains(log.Message, "failed to send to notify chat") {
			return
		}
		s.send(fmt.Sprintf(
			"<b>%s</b> %s\n<code>%s</code>\n%s",
			log.Level.CapitalString(), log.Timestamp.Format("2006-01-02 15:04:05"),
			html.EscapeString(log.Caller), html.EscapeString(log.Message),
		))
	}
}

func (s *NotifyService) send(text string) {
	if _, err := s.bot.Send(s.chat, text, tele.ModeHTML); err != nil {
		s.logger.Errorf("failed to send to notify chat: %v", err)
	}
}
