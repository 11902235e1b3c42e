package db

import (
	"encoding/json"

	"gorm.io/gorm"
)

type Group struct {
	gorm.Model
	ChatID int64 `gorm:"uniqueIndex"`
	Title  string
}

type Question struct {
	gorm.Model
	CreatorID     int64 `gorm:"index"`
	Text          string
	Options       string // JSON array of option strings
	CorrectOption int
}

type Poll struct {
	gorm.Model
	QuestionID uint   `gorm:"index"`
	PollID     string `gorm:"uniqueIndex"`
	ChatID     int64
	MessageID  int
	IsClosed   bool
}

type Vote struct {
	gorm.Model
	PollID   string `gorm:"index"`
	UserID   int64
	UserName string
	OptionID int
}

// OptionList decodes the stored JSON option array.
func (q *Question) OptionList() ([]string, error) {
	var options []string
	if err := json.Unmarshal([]byte(q.Options), &options); err != nil {
		return nil, err
	}
	return options, nil
}
