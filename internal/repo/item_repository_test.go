package repo

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/shahedzaman612/Inventory-Backend/internal/model"
)

func seedInventory(t *testing.T, db *gorm.DB, ownerID, title string) *model.Inventory {
	t.Helper()
	inv := &model.Inventory{ID: uuid.NewString(), Title: title, UserID: ownerID}
	if err := db.Create(inv).Error; err != nil {
		t.Fatalf("seed inventory: %v", err)
	}
	return inv
}

func TestItemRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@example.com")
	inv := seedInventory(t, db, owner.ID, "Tools")

	item, err := r.Create(ctx, &model.Item{
		ID:           uuid.NewString(),
		ItemID:       "SKU1",
		Name:         "Hammer",
		Quantity:     3,
		InventoryID:  inv.ID,
		UserID:       owner.ID,
		CustomFields: datatypes.JSONMap{"color": "red", "weight": 1.5},
	})
	assert.NoError(t, err)

	got, err := r.GetByItemID(ctx, "SKU1")
	assert.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, "red", got.CustomFields["color"])

	got, err = r.GetInInventory(ctx, inv.ID, "SKU1")
	assert.NoError(t, err)
	assert.Equal(t, "Hammer", got.Name)

	// в другом инвентаре этого itemID нет
	_, err = r.GetInInventory(ctx, uuid.NewString(), "SKU1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestItemRepository_GlobalUniqueItemID(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@example.com")
	invX := seedInventory(t, db, owner.ID, "X")
	invY := seedInventory(t, db, owner.ID, "Y")

	_, err := r.Create(ctx, &model.Item{
		ID: uuid.NewString(), ItemID: "SKU1", Name: "a", InventoryID: invX.ID, UserID: owner.ID,
	})
	assert.NoError(t, err)

	// уникальность по item_id глобальная: дубль в другом инвентаре — ошибка
	_, err = r.Create(ctx, &model.Item{
		ID: uuid.NewString(), ItemID: "SKU1", Name: "b", InventoryID: invY.ID, UserID: owner.ID,
	})
	assert.Error(t, err)
}

func TestItemRepository_ListUpdateDelete(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@example.com")
	inv := seedInventory(t, db, owner.ID, "Tools")
	other := seedInventory(t, db, owner.ID, "Other")

	for _, it := range []*model.Item{
		{ID: uuid.NewString(), ItemID: "A", Name: "a", InventoryID: inv.ID, UserID: owner.ID},
		{ID: uuid.NewString(), ItemID: "B", Name: "b", InventoryID: inv.ID, UserID: owner.ID},
		{ID: uuid.NewString(), ItemID: "C", Name: "c", InventoryID: other.ID, UserID: owner.ID},
	} {
		_, err := r.Create(ctx, it)
		assert.NoError(t, err)
	}

	items, err := r.ListByInventory(ctx, inv.ID)
	assert.NoError(t, err)
	assert.Len(t, items, 2)

	item, err := r.GetInInventory(ctx, inv.ID, "A")
	assert.NoError(t, err)
	item.Quantity = 10
	assert.NoError(t, r.Update(ctx, item))
	got, err := r.GetInInventory(ctx, inv.ID, "A")
	assert.NoError(t, err)
	assert.Equal(t, 10, got.Quantity)

	n, err := r.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)

	assert.NoError(t, r.Delete(ctx, item.ID))
	_, err = r.GetInInventory(ctx, inv.ID, "A")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestItemRepository_InventoryDeleteKeepsItems(t *testing.T) {
	db := newTestDB(t)
	items := NewItemRepository(db)
	invs := NewInventoryRepository(db)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@example.com")
	inv := seedInventory(t, db, owner.ID, "Tools")

	_, err := items.Create(ctx, &model.Item{
		ID: uuid.NewString(), ItemID: "A", Name: "a", InventoryID: inv.ID, UserID: owner.ID,
	})
	assert.NoError(t, err)

	// удаление инвентаря не каскадирует на items — документированное поведение
	assert.NoError(t, invs.Delete(ctx, inv.ID))
	left, err := items.ListByInventory(ctx, inv.ID)
	assert.NoError(t, err)
	assert.Len(t, left, 1)
}
