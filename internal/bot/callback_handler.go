package bot

import (
	"strconv"
	"strings"

	"github.com/Jerusalemgirma/BotForSenbet/internal/db"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

func HandleCallbackQuery(bot *tgbotapi.BotAPI, cq *tgbotapi.CallbackQuery) {
	data := cq.Data

	switch {
	case strings.HasPrefix(data, "opt_"):
		handleCorrectAnswer(bot, cq, strToInt(strings.TrimPrefix(data, "opt_")))

	case strings.HasPrefix(data, "grp_"):
		handleGroupSelect(bot, cq, strToInt64(strings.TrimPrefix(data, "grp_")))

	default:
		// not ours
	}

	// Stop the button spinner.
	bot.Request(tgbotapi.NewCallback(cq.ID, ""))
}

func handleCorrectAnswer(bot *tgbotapi.BotAPI, cq *tgbotapi.CallbackQuery, optionID int) {
	userID := cq.From.ID
	d, ok := getDraft(userID)
	if !ok || d.Step != StepCorrectAnswer {
		bot.Request(tgbotapi.NewCallbackWithAlert(cq.ID, "This draft has expired. Start over with /newquestion."))
		return
	}
	if optionID < 0 || optionID >= len(d.Options) {
		log.WithField("option_id", optionID).Warn("⚠️ Correct-answer callback out of range")
		return
	}

	d.CorrectOption = optionID
	d.Step = StepSelectGroup
	saveDraft(userID, d)
	promptGroupSelect(bot, cq)
}

func handleGroupSelect(bot *tgbotapi.BotAPI, cq *tgbotapi.CallbackQuery, chatID int64) {
	userID := cq.From.ID
	d, ok := getDraft(userID)
	if !ok || d.Step != StepSelectGroup {
		bot.Request(tgbotapi.NewCallbackWithAlert(cq.ID, "This draft has expired. Start over with /newquestion."))
		return
	}

	// Only registered groups can be poll targets.
	group, err := db.FindGroup(chatID)
	if err != nil {
		bot.Request(tgbotapi.NewCallbackWithAlert(cq.ID, "That group is not registered."))
		log.WithError(err).WithField("chat_id", chatID).Warn("⚠️ Poll target not registered")
		return
	}

	PostQuestionPoll(bot, cq, d, group)
	dropDraft(userID)
}

func editCallbackMessage(bot *tgbotapi.BotAPI, cq *tgbotapi.CallbackQuery, text string) {
	edit := tgbotapi.NewEditMessageText(cq.Message.Chat.ID, cq.Message.MessageID, text)
	if _, err := bot.Send(edit); err != nil {
		log.WithError(err).Error("Failed to edit callback message")
	}
}

func strToInt(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func strToInt64(s string) int64 {
	i, _ := strconv.ParseInt(s, 10, 64)
	return i
}
