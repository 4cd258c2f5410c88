package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/shahedzaman612/Inventory-Backend/internal/model"
)

// ItemRepository — контракт доступа к Item.
type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) (*model.Item, error)

	// GetByItemID ищет по бизнес-идентификатору в пределах всей системы.
	GetByItemID(ctx context.Context, itemID string) (*model.Item, error)

	// GetInInventory ищет item по itemID внутри конкретного инвентаря.
	GetInInventory(ctx context.Context, inventoryID, itemID string) (*model.Item, error)

	ListByInventory(ctx context.Context, inventoryID string) ([]model.Item, error)

	Update(ctx context.Context, item *model.Item) error
	Delete(ctx context.Context, id string) error

	Count(ctx context.Context) (int64, error)
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(ctx context.Context, item *model.Item) (*model.Item, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *itemRepo) GetByItemID(ctx context.Context, itemID string) (*model.Item, error) {
	var it model.Item
	if err := r.db.WithContext(ctx).Where("item_id = ?", itemID).First(&it).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) GetInInventory(ctx context.Context, inventoryID, itemID string) (*model.Item, error) {
	var it model.Item
	err := r.db.WithContext(ctx).
		Where("inventory_id = ? AND item_id = ?", inventoryID, itemID).
		First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) ListByInventory(ctx context.Context, inventoryID string) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).Where("inventory_id = ?", inventoryID).Find(&items).Error
	return items, err
}

func (r *itemRepo) Update(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Item{}, "id = ?", id).Error
}

func (r *itemRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Item{}).Count(&n).Error
	return n, err
}
