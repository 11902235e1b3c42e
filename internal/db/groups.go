package db

import (
	"errors"

	"gorm.io/gorm"
)

// RegisterGroup registers a group chat or refreshes its title.
// Registering the same chat twice never duplicates the record.
func RegisterGroup(chatID int64, title string) error {
	var g Group
	err := DB.Where("chat_id = ?", chatID).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DB.Create(&Group{ChatID: chatID, Title: title}).Error
	}
	if err != nil {
		return err
	}
	g.Title = title
	return DB.Save(&g).Error
}

func GetRegisteredGroups() ([]Group, error) {
	var groups []Group
	if err := DB.Order("title ASC").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func FindGroup(chatID int64) (*Group, error) {
	var g Group
	if err := DB.Where("chat_id = ?", chatID).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}
