package models

import (
	"time"
)

// Message 代表留言板上的一則留言，對應 messages 資料表
type Message struct {
	ID        uint       `gorm:"primaryKey;autoIncrement"`
	Body      *string    `gorm:"type:text"`
	Username  *string    `gorm:"type:text"`
	CreatedAt time.Time  `gorm:"not null"`           // 建立時由 gorm 寫入，之後不再變動
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"` // 第一次更新前為 NULL
}

func (Message) TableName() string {
	return "messages"
}
