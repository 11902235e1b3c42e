package bot

import (
	"fmt"

	"github.com/Jerusalemgirma/BotForSenbet/internal/db"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// PostQuestionPoll stores the finished draft and publishes it as a
// non-anonymous quiz poll in the chosen group.
func PostQuestionPoll(bot *tgbotapi.BotAPI, cq *tgbotapi.CallbackQuery, d *Draft, group *db.Group) {
	q, err := db.AddQuestion(cq.From.ID, d.Text, d.Options, d.CorrectOption)
	if err != nil {
		log.WithError(err).WithField("user_id", cq.From.ID).Error("❌ Failed to save question")
		editCallbackMessage(bot, cq, "Failed to save the question, please try /newquestion again.")
		return
	}

	cfg := tgbotapi.NewPoll(group.ChatID, d.Text, d.Options...)
	cfg.IsAnonymous = false
	cfg.AllowsMultipleAnswers = false
	cfg.Type = "quiz"
	cfg.CorrectOptionID = int64(d.CorrectOption)

	sent, err := bot.Send(cfg)
	if err != nil || sent.Poll == nil {
		log.WithError(err).WithField("chat_id", group.ChatID).Error("❌ Failed to post poll")
		editCallbackMessage(bot, cq,
			"Failed to post the poll. Make sure I am a member of the group and try again.")
		return
	}

	if err := db.AttachPoll(q.ID, sent.Poll.ID, group.ChatID, sent.MessageID); err != nil {
		log.WithError(err).WithField("poll_id", sent.Poll.ID).Error("❌ Failed to save posted poll")
		editCallbackMessage(bot, cq, "The poll was posted but could not be saved. Results may be incomplete.")
		return
	}

	editCallbackMessage(bot, cq, fmt.Sprintf("Poll posted to '%s'!", group.Title))
	log.WithFields(log.Fields{
		"poll_id": sent.Poll.ID,
		"chat_id": group.ChatID,
		"user_id": cq.From.ID,
	}).Info("✅ Poll posted")
}
