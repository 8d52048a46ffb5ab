package tg

import (
	"context"
	"strings"

	gobot "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"pulse/internal/deeplink"
	"pulse/internal/metrics"
)

// Sender is the part of *gobot.BotAPI the dispatcher needs.
type Sender interface {
	Send(c gobot.Chattable) (gobot.Message, error)
	Request(c gobot.Chattable) (*gobot.APIResponse, error)
}

// Links describes where the deep links handed out by the bot point.
type Links struct {
	Host     string
	BotName  string
	AppLabel string
}

func (l Links) url(payload string) string {
	return deeplink.StartAppLink(l.Host, l.BotName, payload)
}

type Bot struct {
	token string
	links Links
}

func NewBot(token string, links Links) *Bot { return &Bot{token: token, links: links} }

func (b *Bot) Run(ctx context.Context) error {
	if b.token == "" {
		log.Warn().Msg("BOT_TOKEN empty: bot disabled")
		return nil
	}
	bot, err := gobot.NewBotAPI(b.token)
	if err != nil {
		return err
	}
	bot.Debug = false
	log.Info().Str("@", bot.Self.UserName).Msg("bot connected")

	u := gobot.NewUpdate(0)
	u.Timeout = 30

	updates := bot.GetUpdatesChan(u)
	defer bot.StopReceivingUpdates()
	for {
		select {
		case <-ctx.Done():
			return nil
		case up, ok := <-updates:
			if !ok {
				return nil
			}
			b.handle(bot, up)
		}
	}
}

const (
	textStart   = "Hi! The buttons below open the Pulse mini-app and its modes (Daily/Retro/Incident)."
	textPulse   = "Open Pulse from the menu below."
	textHelp    = "Tip: use the open button or a mode deep link."
	textDefault = "Send /pulse or tap a button below."
)

type modeHint struct {
	keyword string
	label   string
	payload string
}

// hints are matched against free text in order.
var hints = []modeHint{
	{"daily", "Daily", "daily_today"},
	{"retro", "Retro", "retro_sprint12"},
	{"incident", "Incident", "incident_INC-481"},
}

func (b *Bot) handle(s Sender, up gobot.Update) {
	switch {
	case up.CallbackQuery != nil:
		b.handleCallback(s, up.CallbackQuery)
	case up.Message != nil:
		b.handleMessage(s, up.Message)
	}
}

func (b *Bot) handleMessage(s Sender, m *gobot.Message) {
	chatID := m.Chat.ID
	if m.IsCommand() {
		switch m.Command() {
		case "start":
			log.Info().Int64("chat", chatID).Msg("command_start")
			b.sendMenu(s, chatID, textStart)
			return
		case "pulse":
			log.Info().Int64("chat", chatID).Msg("command_pulse")
			b.sendMenu(s, chatID, textPulse)
			return
		}
	}
	text := strings.ToLower(m.Text)
	for _, h := range hints {
		if strings.Contains(text, h.keyword) {
			b.sendModeHint(s, chatID, h)
			return
		}
	}
	b.sendMenu(s, chatID, textDefault)
}

func (b *Bot) handleCallback(s Sender, q *gobot.CallbackQuery) {
	if _, err := s.Request(gobot.NewCallback(q.ID, "")); err != nil {
		log.Error().Err(err).Msg("answer callback")
	}
	if q.Data != "help" || q.Message == nil {
		return
	}
	log.Info().Int64("chat", q.Message.Chat.ID).Msg("action_help")
	b.sendMenu(s, q.Message.Chat.ID, textHelp)
}

func (b *Bot) menu() gobot.InlineKeyboardMarkup {
	link := func(label, payload string) gobot.InlineKeyboardButton {
		return gobot.NewInlineKeyboardButtonURL(label, b.links.url(payload))
	}
	return gobot.NewInlineKeyboardMarkup(
		gobot.NewInlineKeyboardRow(link(b.links.AppLabel, "")),
		gobot.NewInlineKeyboardRow(
			link("Daily", "daily_today"),
			link("Retro", "retro_sprint12"),
			link("Incident", "incident_INC-481"),
		),
		gobot.NewInlineKeyboardRow(gobot.NewInlineKeyboardButtonData("Help", "help")),
	)
}

func (b *Bot) sendMenu(s Sender, chatID int64, text string) {
	msg := gobot.NewMessage(chatID, text)
	msg.ReplyMarkup = b.menu()
	if _, err := s.Send(msg); err != nil {
		log.Error().Err(err).Int64("chat", chatID).Msg("send menu")
		return
	}
	metrics.BotLinks.WithLabelValues("menu").Inc()
}

func (b *Bot) sendModeHint(s Sender, chatID int64, h modeHint) {
	msg := gobot.NewMessage(chatID, "Opening "+h.label+" mode. Tap the button below.")
	msg.ReplyMarkup = gobot.NewInlineKeyboardMarkup(
		gobot.NewInlineKeyboardRow(gobot.NewInlineKeyboardButtonURL(h.label, b.links.url(h.payload))),
	)
	if _, err := s.Send(msg); err != nil {
		log.Error().Err(err).Int64("chat", chatID).Str("payload", h.payload).Msg("send mode hint")
		return
	}
	metrics.BotLinks.WithLabelValues(string(deeplink.Parse(h.payload).Mode)).Inc()
}
