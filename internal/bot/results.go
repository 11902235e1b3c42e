package bot

import (
	"fmt"
	"strings"

	"github.com/Jerusalemgirma/BotForSenbet/internal/constants"
	"github.com/Jerusalemgirma/BotForSenbet/internal/db"

	log "github.com/sirupsen/logrus"
)

// BuildResults renders a summary of every poll the user has posted: who
// answered what, per-option counts and how many got it right.
func BuildResults(creatorID int64) (string, error) {
	posted, err := db.GetPostedQuestions(creatorID)
	if err != nil {
		return "", err
	}
	if len(posted) == 0 {
		return constants.MsgNoPolls, nil
	}

	var sb strings.Builder
	sb.WriteString("Your Poll Results:\n\n")
	for i := range posted {
		renderQuestion(&sb, &posted[i])
	}
	return sb.String(), nil
}

func renderQuestion(sb *strings.Builder, pq *db.PostedQuestion) {
	q := pq.Question
	sb.WriteString(fmt.Sprintf("❓ %s\n", q.Text))

	options, err := q.OptionList()
	if err != nil {
		log.WithError(err).WithField("question_id", q.ID).Error("❌ Broken option list")
		sb.WriteString("Could not read this question's options.\n\n")
		return
	}

	votes, err := db.GetVotes(pq.Poll.PollID)
	if err != nil {
		log.WithError(err).WithField("poll_id", pq.Poll.PollID).Error("❌ Failed to load votes")
		sb.WriteString("Could not read the votes for this question.\n\n")
		return
	}
	if len(votes) == 0 {
		sb.WriteString("No votes yet.\n\n")
		return
	}

	correct := 0
	counts := make([]int, len(options))
	for _, v := range votes {
		if v.OptionID < 0 || v.OptionID >= len(options) {
			continue
		}
		counts[v.OptionID]++
		mark := "❌"
		if v.OptionID == q.CorrectOption {
			mark = "✅"
			correct++
		}
		sb.WriteString(fmt.Sprintf("- %s: %s %s\n", v.UserName, options[v.OptionID], mark))
	}

	for i, opt := range options {
		sb.WriteString(fmt.Sprintf("%s — %d\n", opt, counts[i]))
	}
	sb.WriteString(fmt.Sprintf("Summary: %d/%d correct\n\n", correct, len(votes)))
}
