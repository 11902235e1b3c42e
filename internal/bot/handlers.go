package bot

import (
	"fmt"

	"github.com/Jerusalemgirma/BotForSenbet/internal/constants"
	"github.com/Jerusalemgirma/BotForSenbet/internal/db"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

func HandleMessage(bot *tgbotapi.BotAPI, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			sendNormalMessage(bot, chatID, constants.MsgStart)
		case "help":
			sendQuietMessage(bot, chatID, constants.MsgHelp)
		case "register":
			handleRegister(bot, msg)
		case "newquestion":
			handleNewQuestion(bot, msg)
		case "results":
			handleResults(bot, msg)
		case "close":
			handleClose(bot, msg)
		case "cancel":
			handleCancel(bot, msg)
		default:
			sendQuietMessage(bot, chatID, constants.MsgUnknownCommand)
		}
		return
	}

	// Free text in a private chat is the reply to the current draft step.
	if msg.Chat.IsPrivate() {
		handleDraftReply(bot, msg)
	}
}

func handleRegister(bot *tgbotapi.BotAPI, msg *tgbotapi.Message) {
	chat := msg.Chat
	if !chat.IsGroup() && !chat.IsSuperGroup() {
		sendNormalMessage(bot, chat.ID, "This command can only be used in a group.")
		return
	}

	if err := db.RegisterGroup(chat.ID, chat.Title); err != nil {
		log.WithError(err).WithField("chat_id", chat.ID).Error("❌ Failed to register group")
		sendNormalMessage(bot, chat.ID, "Failed to register the group, please try again.")
		return
	}
	sendNormalMessage(bot, chat.ID, fmt.Sprintf("Group '%s' has been registered successfully!", chat.Title))
}

func handleResults(bot *tgbotapi.BotAPI, msg *tgbotapi.Message) {
	text, err := BuildResults(msg.From.ID)
	if err != nil {
		log.WithError(err).WithField("user_id", msg.From.ID).Error("❌ Failed to build results")
		sendNormalMessage(bot, msg.Chat.ID, "Failed to load your results, please try again.")
		return
	}
	sendNormalMessage(bot, msg.Chat.ID, text)
}

func sendNormalMessage(bot *tgbotapi.BotAPI, chatID int64, text string) {
	m := tgbotapi.NewMessage(chatID, text)
	if _, err := bot.Send(m); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("Failed to send message")
	}
}

// sendQuietMessage sends without a notification, for help/unknown replies.
func sendQuietMessage(bot *tgbotapi.BotAPI, chatID int64, text string) {
	m := tgbotapi.NewMessage(chatID, text)
	m.DisableNotification = true
	if _, err := bot.Send(m); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("Failed to send quiet message")
	}
}
