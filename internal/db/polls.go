package db

// AttachPoll records the Telegram poll a question was published as.
func AttachPoll(questionID uint, pollID string, chatID int64, messageID int) error {
	p := Poll{
		QuestionID: questionID,
		PollID:     pollID,
		ChatID:     chatID,
		MessageID:  messageID,
	}
	return DB.Create(&p).Error
}

func FindPollByPollID(pollID string) (*Poll, error) {
	var p Poll
	if err := DB.Where("poll_id = ?", pollID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func SavePoll(p *Poll) error {
	return DB.Save(p).Error
}

// LatestOpenPollByCreator finds the creator's most recent poll that is still
// accepting answers.
func LatestOpenPollByCreator(creatorID int64) (*Poll, error) {
	var p Poll
	err := DB.Joins("JOIN questions ON questions.id = polls.question_id").
		Where("questions.creator_id = ? AND polls.is_closed = ?", creatorID, false).
		Order("polls.id DESC").
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
