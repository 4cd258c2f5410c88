package model

import "time"

// CustomFields — фиксированный набор типизированных последовательностей
// пользовательских полей инвентаря. Каждый список однородный, любой может
// быть пустым. Хранится как JSON-текст одной колонкой.
type CustomFields struct {
	StringFields   []string  `json:"stringFields"`   // короткие строки
	TextFields     []string  `json:"textFields"`     // текстовые блоки
	NumberFields   []float64 `json:"numberFields"`
	LinkFields     []string  `json:"linkFields"`
	BooleanFields  []bool    `json:"booleanFields"`
	DropdownFields []string  `json:"dropdownFields"`
}

// Inventory — коллекция пользователя. UserID неизменяем после создания:
// владение не передаётся.
type Inventory struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Category    string `gorm:"not null;default:General" json:"category"`

	Tags []string `gorm:"serializer:json;type:text" json:"tags"`

	UserID string `gorm:"not null;index" json:"userId"`
	User   *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user,omitempty"`

	CustomFields CustomFields `gorm:"serializer:json;type:text" json:"customFields"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
