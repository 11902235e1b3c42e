package bot

import (
	"strings"

	"github.com/Jerusalemgirma/BotForSenbet/internal/db"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// HandlePollAnswer is called for every poll_answer update.
func HandlePollAnswer(bot *tgbotapi.BotAPI, answer *tgbotapi.PollAnswer) {
	pollID := answer.PollID
	user := answer.User
	userName := user.UserName
	if userName == "" {
		userName = strings.TrimSpace(user.FirstName + " " + user.LastName)
	}

	p, err := db.FindPollByPollID(pollID)
	if err != nil {
		log.WithField("poll_id", pollID).Warn("⚠️ Answer for unknown poll, dropping")
		return
	}
	if p.IsClosed {
		log.WithField("poll_id", pollID).Warn("⚠️ Answer for closed poll, dropping")
		return
	}

	// An empty option list means the user retracted their vote.
	if len(answer.OptionIDs) == 0 {
		if err := db.RetractVote(pollID, user.ID); err != nil {
			log.WithError(err).WithField("poll_id", pollID).Error("❌ Failed to retract vote")
		}
		return
	}

	// Quiz polls are single-answer, so only the first option matters.
	optionID := answer.OptionIDs[0]
	if q, err := db.FindQuestionByPollID(pollID); err == nil {
		if options, err := q.OptionList(); err == nil {
			if optionID < 0 || optionID >= len(options) {
				log.WithFields(log.Fields{"poll_id": pollID, "option_id": optionID}).
					Warn("⚠️ Vote for option out of range, dropping")
				return
			}
		}
	}

	if err := db.SaveVote(pollID, user.ID, userName, optionID); err != nil {
		log.WithError(err).WithFields(log.Fields{"poll_id": pollID, "user_id": user.ID}).
			Error("❌ Failed to save vote")
		return
	}

	log.WithFields(log.Fields{
		"poll_id":   pollID,
		"user_id":   user.ID,
		"option_id": optionID,
	}).Info("✅ Vote saved")
}
