package auth

import "github.com/shahedzaman612/Inventory-Backend/internal/model"

// CanMutate — владелец ресурса или админ. Одно и то же правило для
// инвентарей и для items (item делегирует владельцу родительского инвентаря).
func CanMutate(actor Identity, resourceOwnerID string) bool {
	return actor.UserID == resourceOwnerID || actor.Role == model.RoleAdmin
}

// CanRead: приватных инвентарей нет, любой аутентифицированный читает всё.
func CanRead(actor Identity) bool {
	return actor.UserID != ""
}
