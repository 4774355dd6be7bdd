package entity

import "time"

// KnowledgeFact — факт "пользователь знает эту категорию".
// Журнал только для добавления: факты не обновляются и не удаляются,
// дубликаты пары (user_id, category) допустимы и схлопываются при чтении.
type KnowledgeFact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"size:100;not null;index" json:"user_id"`
	Category  string    `gorm:"size:100;not null" json:"category"`
	CreatedAt time.Time `json:"-"`
}

// TableName определяет имя таблицы для GORM
func (KnowledgeFact) TableName() string {
	return "user_knowledge"
}
