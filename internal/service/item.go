package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/shahedzaman612/Inventory-Backend/internal/auth"
	"github.com/shahedzaman612/Inventory-Backend/internal/model"
	"github.com/shahedzaman612/Inventory-Backend/internal/repo"
)

// ItemService — операции над items. Право на изменение всегда проверяется
// по владельцу родительского инвентаря, создатель item роли не играет.
type ItemService struct {
	items       repo.ItemRepository
	inventories repo.InventoryRepository
}

func NewItemService(items repo.ItemRepository, inventories repo.InventoryRepository) *ItemService {
	return &ItemService{items: items, inventories: inventories}
}

// ItemInput — данные добавления item. Quantity через указатель:
// отсутствие поля отличается от нуля.
type ItemInput struct {
	ItemID       string
	Name         string
	Quantity     *int
	CustomFields map[string]any
}

// ItemPatch — частичное обновление item.
type ItemPatch struct {
	ItemID       *string
	Name         *string
	Quantity     *int
	CustomFields map[string]any
}

// parentForMutation достаёт инвентарь и проверяет право изменения.
func (s *ItemService) parentForMutation(ctx context.Context, inventoryID string, actor auth.Identity) (*model.Inventory, error) {
	inv, err := s.inventories.GetByID(ctx, inventoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fail(ErrNotFound, "Inventory not found")
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	if !auth.CanMutate(actor, inv.UserID) {
		return nil, fail(ErrForbidden, "Unauthorized")
	}
	return inv, nil
}

// Add добавляет item в инвентарь. ItemID уникален глобально, по всем
// инвентарям сразу, поэтому дубль в чужом инвентаре — тоже конфликт.
func (s *ItemService) Add(ctx context.Context, inventoryID string, actor auth.Identity, in ItemInput) (*model.Item, error) {
	if in.ItemID == "" || in.Name == "" || in.Quantity == nil {
		return nil, fail(ErrValidation, "All fields are required")
	}
	if *in.Quantity < 0 {
		return nil, fail(ErrValidation, "Quantity must be non-negative")
	}

	inv, err := s.parentForMutation(ctx, inventoryID, actor)
	if err != nil {
		return nil, err
	}

	if _, err := s.items.GetByItemID(ctx, in.ItemID); err == nil {
		return nil, fail(ErrConflict, "Item ID already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup item: %w", err)
	}

	cf := in.CustomFields
	if cf == nil {
		cf = map[string]any{}
	}
	item := &model.Item{
		ID:           uuid.NewString(),
		ItemID:       in.ItemID,
		Name:         in.Name,
		Quantity:     *in.Quantity,
		InventoryID:  inv.ID,
		UserID:       actor.UserID,
		CustomFields: datatypes.JSONMap(cf),
	}
	item, err = s.items.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

// List отдаёт items инвентаря. Чтение открыто любому аутентифицированному.
func (s *ItemService) List(ctx context.Context, inventoryID string) ([]model.Item, error) {
	items, err := s.items.ListByInventory(ctx, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Update применяет патч к item внутри инвентаря. Смена ItemID допустима,
// глобальная уникальность проверяется и для нового значения.
func (s *ItemService) Update(ctx context.Context, inventoryID, itemID string, actor auth.Identity, patch ItemPatch) (*model.Item, error) {
	if _, err := s.parentForMutation(ctx, inventoryID, actor); err != nil {
		return nil, err
	}

	item, err := s.items.GetInInventory(ctx, inventoryID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fail(ErrNotFound, "Item not found")
		}
		return nil, fmt.Errorf("get item: %w", err)
	}

	if patch.ItemID != nil && *patch.ItemID != item.ItemID {
		if _, err := s.items.GetByItemID(ctx, *patch.ItemID); err == nil {
			return nil, fail(ErrConflict, "Item ID already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("lookup item: %w", err)
		}
		item.ItemID = *patch.ItemID
	}
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Quantity != nil {
		if *patch.Quantity < 0 {
			return nil, fail(ErrValidation, "Quantity must be non-negative")
		}
		item.Quantity = *patch.Quantity
	}
	if patch.CustomFields != nil {
		item.CustomFields = datatypes.JSONMap(patch.CustomFields)
	}

	if err := s.items.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return item, nil
}

// Delete удаляет item из инвентаря.
func (s *ItemService) Delete(ctx context.Context, inventoryID, itemID string, actor auth.Identity) error {
	if _, err := s.parentForMutation(ctx, inventoryID, actor); err != nil {
		return err
	}

	item, err := s.items.GetInInventory(ctx, inventoryID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(ErrNotFound, "Item not found")
		}
		return fmt.Errorf("get item: %w", err)
	}
	if err := s.items.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
