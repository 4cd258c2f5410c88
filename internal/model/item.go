package model

import (
	"time"

	"gorm.io/datatypes"
)

// Item — запись внутри инвентаря. ItemID — бизнес-идентификатор, уникальный
// глобально (по всем инвентарям, не per-inventory). Права на изменение
// выводятся из владельца родительского инвентаря, а не из поля UserID.
type Item struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	ItemID string `gorm:"not null;uniqueIndex" json:"itemId"`

	Name     string `gorm:"not null" json:"name"`
	Quantity int    `gorm:"not null;default:0" json:"quantity"`

	// Неизменяемая ссылка на инвентарь. Без FK-констрейнта: удаление
	// инвентаря не каскадирует и не блокируется существующими items.
	InventoryID string `gorm:"type:uuid;not null;index" json:"inventoryId"`

	UserID string `gorm:"not null" json:"userId"` // создатель записи

	// Свободная карта ключ→значение, в отличие от типизированных списков
	// инвентаря. Асимметрия намеренная.
	CustomFields datatypes.JSONMap `json:"customFields"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
