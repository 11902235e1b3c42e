package bot

import (
	"fmt"

	"github.com/Jerusalemgirma/BotForSenbet/internal/db"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// ClosePoll stops a live poll in Telegram and marks it closed. Answers that
// arrive after closing are dropped.
func ClosePoll(bot *tgbotapi.BotAPI, pollID string) error {
	p, err := db.FindPollByPollID(pollID)
	if err != nil {
		return fmt.Errorf("poll %s not found: %w", pollID, err)
	}
	if p.IsClosed {
		return fmt.Errorf("poll is already closed")
	}

	stopConfig := tgbotapi.NewStopPoll(p.ChatID, p.MessageID)
	if _, err := bot.StopPoll(stopConfig); err != nil {
		return fmt.Errorf("failed to stop poll: %w", err)
	}

	p.IsClosed = true
	if err := db.SavePoll(p); err != nil {
		return fmt.Errorf("failed to save poll status: %w", err)
	}
	log.WithField("poll_id", pollID).Info("🛑 Poll closed")
	return nil
}

func handleClose(bot *tgbotapi.BotAPI, msg *tgbotapi.Message) {
	if !msg.Chat.IsPrivate() {
		sendNormalMessage(bot, msg.Chat.ID, "Please use /close in a private chat with me.")
		return
	}

	p, err := db.LatestOpenPollByCreator(msg.From.ID)
	if err != nil {
		sendQuietMessage(bot, msg.Chat.ID, "You have no open polls.")
		return
	}

	if err := ClosePoll(bot, p.PollID); err != nil {
		log.WithError(err).WithField("poll_id", p.PollID).Error("❌ Failed to close poll")
		sendNormalMessage(bot, msg.Chat.ID, "Failed to close the poll, please try again.")
		return
	}
	sendNormalMessage(bot, msg.Chat.ID, "Poll closed. See how it went with /results.")
}
