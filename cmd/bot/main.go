package main

import (
	"github.com/Jerusalemgirma/BotForSenbet/config"
	"github.com/Jerusalemgirma/BotForSenbet/internal/bot"
	"github.com/Jerusalemgirma/BotForSenbet/internal/db"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is not set")
	}

	db.InitDB(cfg.DatabasePath)
	bot.SetDraftTTL(cfg.DraftTTL)

	botAPI, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		log.Fatal("Failed to start bot: ", err)
	}
	log.Infof("✅ Bot %s started", botAPI.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	u.AllowedUpdates = []string{"message", "callback_query", "poll_answer"}
	updates := botAPI.GetUpdatesChan(u)
	for update := range updates {
		switch {
		case update.PollAnswer != nil:
			bot.HandlePollAnswer(botAPI, update.PollAnswer)
		case update.CallbackQuery != nil:
			bot.HandleCallbackQuery(botAPI, update.CallbackQuery)
		case update.Message != nil:
			bot.HandleMessage(botAPI, update.Message)
		}
	}
}
