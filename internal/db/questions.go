package db

import (
	"encoding/json"
	"errors"

	"github.com/Jerusalemgirma/BotForSenbet/internal/constants"
)

var (
	ErrBadOptionCount  = errors.New("a question needs between 2 and 10 options")
	ErrBadCorrectIndex = errors.New("correct option index out of range")
)

// AddQuestion stores a new question. Once posted the record is never changed.
func AddQuestion(creatorID int64, text string, options []string, correctOption int) (*Question, error) {
	if len(options) < constants.MinOptions || len(options) > constants.MaxOptions {
		return nil, ErrBadOptionCount
	}
	if correctOption < 0 || correctOption >= len(options) {
		return nil, ErrBadCorrectIndex
	}

	raw, err := json.Marshal(options)
	if err != nil {
		return nil, err
	}

	q := Question{
		CreatorID:     creatorID,
		Text:          text,
		Options:       string(raw),
		CorrectOption: correctOption,
	}
	if err := DB.Create(&q).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func FindQuestionByPollID(pollID string) (*Question, error) {
	p, err := FindPollByPollID(pollID)
	if err != nil {
		return nil, err
	}
	var q Question
	if err := DB.First(&q, p.QuestionID).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

// PostedQuestion is a question together with the poll it was published as.
type PostedQuestion struct {
	Question Question
	Poll     Poll
}

// GetPostedQuestions returns the creator's questions that made it into a
// group as a live poll. Questions that were never posted are skipped.
func GetPostedQuestions(creatorID int64) ([]PostedQuestion, error) {
	var questions []Question
	err := DB.Where("creator_id = ?", creatorID).Order("id ASC").Find(&questions).Error
	if err != nil {
		return nil, err
	}

	var posted []PostedQuestion
	for _, q := range questions {
		var p Poll
		if err := DB.Where("question_id = ?", q.ID).First(&p).Error; err != nil {
			continue
		}
		posted = append(posted, PostedQuestion{Question: q, Poll: p})
	}
	return posted, nil
}
