package bot

import (
	"fmt"
	"strings"

	"github.com/Jerusalemgirma/BotForSenbet/internal/constants"
	"github.com/Jerusalemgirma/BotForSenbet/internal/db"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

func handleNewQuestion(bot *tgbotapi.BotAPI, msg *tgbotapi.Message) {
	if !msg.Chat.IsPrivate() {
		sendNormalMessage(bot, msg.Chat.ID, "Please use /newquestion in a private chat with me.")
		return
	}

	// Starting over replaces any existing draft.
	startDraft(msg.From.ID)
	sendNormalMessage(bot, msg.Chat.ID, "What is the question you want to ask?")
}

func handleCancel(bot *tgbotapi.BotAPI, msg *tgbotapi.Message) {
	if _, ok := getDraft(msg.From.ID); !ok {
		sendQuietMessage(bot, msg.Chat.ID, "Nothing to cancel.")
		return
	}
	dropDraft(msg.From.ID)
	sendNormalMessage(bot, msg.Chat.ID, "Question creation cancelled.")
}

func handleDraftReply(bot *tgbotapi.BotAPI, msg *tgbotapi.Message) {
	userID := msg.From.ID
	d, ok := getDraft(userID)
	if !ok {
		return
	}

	switch d.Step {
	case StepQuestion:
		text := strings.TrimSpace(msg.Text)
		if text == "" {
			sendNormalMessage(bot, msg.Chat.ID, "The question can't be empty. What is the question?")
			return
		}
		d.Text = text
		d.Step = StepOptions
		saveDraft(userID, d)
		sendNormalMessage(bot, msg.Chat.ID,
			"Great! Now send me the options, separated by a new line. (Max 10 options)")

	case StepOptions:
		options := splitOptions(msg.Text)
		if len(options) < constants.MinOptions {
			sendNormalMessage(bot, msg.Chat.ID, "Please provide at least 2 options.")
			return
		}
		if len(options) > constants.MaxOptions {
			sendNormalMessage(bot, msg.Chat.ID,
				"Telegram polls only support up to 10 options. Please reduce the number of options.")
			return
		}
		d.Options = options
		d.Step = StepCorrectAnswer
		saveDraft(userID, d)
		sendCorrectAnswerKeyboard(bot, msg.Chat.ID, options)

	default:
		// These steps expect an inline button press, not text.
	}
}

// splitOptions reads one option per line, dropping blank lines.
func splitOptions(text string) []string {
	var options []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			options = append(options, line)
		}
	}
	return options
}

func sendCorrectAnswerKeyboard(bot *tgbotapi.BotAPI, chatID int64, options []string) {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, opt := range options {
		btn := tgbotapi.NewInlineKeyboardButtonData(opt, fmt.Sprintf("opt_%d", i))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(btn))
	}

	m := tgbotapi.NewMessage(chatID, "Which one is the correct answer?")
	m.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	if _, err := bot.Send(m); err != nil {
		log.WithError(err).Error("Failed to send correct-answer keyboard")
	}
}

// promptGroupSelect swaps the keyboard message for the list of registered
// groups. Ends the conversation when there is nothing to post to.
func promptGroupSelect(bot *tgbotapi.BotAPI, cq *tgbotapi.CallbackQuery) {
	groups, err := db.GetRegisteredGroups()
	if err != nil {
		log.WithError(err).Error("❌ Failed to load registered groups")
		editCallbackMessage(bot, cq, "Something went wrong, please try /newquestion again.")
		dropDraft(cq.From.ID)
		return
	}
	if len(groups) == 0 {
		editCallbackMessage(bot, cq, constants.MsgNoGroups)
		dropDraft(cq.From.ID)
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, g := range groups {
		btn := tgbotapi.NewInlineKeyboardButtonData(g.Title, fmt.Sprintf("grp_%d", g.ChatID))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(btn))
	}

	edit := tgbotapi.NewEditMessageTextAndMarkup(
		cq.Message.Chat.ID,
		cq.Message.MessageID,
		"Select the group to post this poll to:",
		tgbotapi.NewInlineKeyboardMarkup(rows...),
	)
	if _, err := bot.Send(edit); err != nil {
		log.WithError(err).Error("Failed to send group keyboard")
	}
}
