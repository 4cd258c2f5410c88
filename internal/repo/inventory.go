package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/shahedzaman612/Inventory-Backend/internal/model"
)

// InventoryRepository — контракт доступа к Inventory.
type InventoryRepository interface {
	Create(ctx context.Context, inv *model.Inventory) (*model.Inventory, error)

	// GetByID возвращает gorm.ErrRecordNotFound, если инвентаря нет.
	GetByID(ctx context.Context, id string) (*model.Inventory, error)

	// List — все инвентари, новые сверху, с владельцем.
	List(ctx context.Context) ([]model.Inventory, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Inventory, error)

	// All — без сортировки, в порядке хранения. Используется поиском.
	All(ctx context.Context) ([]model.Inventory, error)

	Update(ctx context.Context, inv *model.Inventory) error
	Delete(ctx context.Context, id string) error

	Count(ctx context.Context) (int64, error)
}

type inventoryRepo struct {
	db *gorm.DB
}

// NewInventoryRepository создаёт реализацию репозитория для Inventory.
func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) Create(ctx context.Context, inv *model.Inventory) (*model.Inventory, error) {
	if err := r.db.WithContext(ctx).Create(inv).Error; err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *inventoryRepo) GetByID(ctx context.Context, id string) (*model.Inventory, error) {
	var inv model.Inventory
	if err := r.db.WithContext(ctx).Preload("User").First(&inv, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *inventoryRepo) List(ctx context.Context) ([]model.Inventory, error) {
	var invs []model.Inventory
	err := r.db.WithContext(ctx).Preload("User").Order("created_at DESC").Find(&invs).Error
	return invs, err
}

func (r *inventoryRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Inventory, error) {
	var invs []model.Inventory
	err := r.db.WithContext(ctx).Where("user_id = ?", ownerID).Order("created_at DESC").Find(&invs).Error
	return invs, err
}

func (r *inventoryRepo) All(ctx context.Context) ([]model.Inventory, error) {
	var invs []model.Inventory
	err := r.db.WithContext(ctx).Find(&invs).Error
	return invs, err
}

func (r *inventoryRepo) Update(ctx context.Context, inv *model.Inventory) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

func (r *inventoryRepo) Delete(ctx context.Context, id string) error {
	// Items намеренно не трогаем: удаление инвентаря не каскадирует.
	return r.db.WithContext(ctx).Delete(&model.Inventory{}, "id = ?", id).Error
}

func (r *inventoryRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Inventory{}).Count(&n).Error
	return n, err
}
