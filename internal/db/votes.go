package db

// SaveVote stores a voter's choice, replacing any previous one. Telegram
// resends poll_answer whenever a user changes their vote, so last write wins.
func SaveVote(pollID string, userID int64, userName string, optionID int) error {
	err := DB.Where("poll_id = ? AND user_id = ?", pollID, userID).Delete(&Vote{}).Error
	if err != nil {
		return err
	}
	return DB.Create(&Vote{
		PollID:   pollID,
		UserID:   userID,
		UserName: userName,
		OptionID: optionID,
	}).Error
}

// RetractVote removes a voter's stored choice.
func RetractVote(pollID string, userID int64) error {
	return DB.Where("poll_id = ? AND user_id = ?", pollID, userID).Delete(&Vote{}).Error
}

func GetVotes(pollID string) ([]Vote, error) {
	var votes []Vote
	err := DB.Where("poll_id = ?", pollID).Order("created_at ASC").Find(&votes).Error
	if err != nil {
		return nil, err
	}
	return votes, nil
}

func CountVotes(pollID string) int {
	var count int64
	DB.Model(&Vote{}).Where("poll_id = ?", pollID).Count(&count)
	return int(count)
}
