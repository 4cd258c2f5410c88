package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shahedzaman612/Inventory-Backend/internal/auth"
	"github.com/shahedzaman612/Inventory-Backend/internal/model"
	"github.com/shahedzaman612/Inventory-Backend/internal/repo"
	"github.com/shahedzaman612/Inventory-Backend/internal/search"
)

// InventoryService — CRUD и поиск по инвентарям с проверкой владения.
type InventoryService struct {
	inventories repo.InventoryRepository
	items       repo.ItemRepository
}

func NewInventoryService(inventories repo.InventoryRepository, items repo.ItemRepository) *InventoryService {
	return &InventoryService{inventories: inventories, items: items}
}

// InventoryInput — данные создания инвентаря.
type InventoryInput struct {
	Title        string
	Description  string
	Category     string
	Tags         []string
	CustomFields model.CustomFields
}

// InventoryPatch — частичное обновление: nil-поля не трогаются.
type InventoryPatch struct {
	Title        *string
	Description  *string
	Category     *string
	Tags         *[]string
	CustomFields *model.CustomFields
}

// Stats — агрегированные счётчики по всей системе.
type Stats struct {
	Inventories int64 `json:"inventories"`
	Items       int64 `json:"items"`
}

// Create заводит инвентарь; создатель становится владельцем навсегда.
func (s *InventoryService) Create(ctx context.Context, actor auth.Identity, in InventoryInput) (*model.Inventory, error) {
	if in.Title == "" {
		return nil, fail(ErrValidation, "Title is required")
	}
	if in.Category == "" {
		in.Category = "General"
	}
	if in.Tags == nil {
		in.Tags = []string{}
	}
	inv := &model.Inventory{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Description:  in.Description,
		Category:     in.Category,
		Tags:         in.Tags,
		UserID:       actor.UserID,
		CustomFields: in.CustomFields,
	}
	inv, err := s.inventories.Create(ctx, inv)
	if err != nil {
		return nil, fmt.Errorf("create inventory: %w", err)
	}
	return inv, nil
}

func (s *InventoryService) Get(ctx context.Context, id string) (*model.Inventory, error) {
	inv, err := s.inventories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fail(ErrNotFound, "Inventory not found")
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return inv, nil
}

func (s *InventoryService) List(ctx context.Context) ([]model.Inventory, error) {
	return s.inventories.List(ctx)
}

func (s *InventoryService) ListByOwner(ctx context.Context, ownerID string) ([]model.Inventory, error) {
	return s.inventories.ListByOwner(ctx, ownerID)
}

// Update применяет патч. Только владелец или админ; UserID неизменен.
func (s *InventoryService) Update(ctx context.Context, id string, actor auth.Identity, patch InventoryPatch) (*model.Inventory, error) {
	inv, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.CanMutate(actor, inv.UserID) {
		return nil, fail(ErrForbidden, "Unauthorized")
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, fail(ErrValidation, "Title is required")
		}
		inv.Title = *patch.Title
	}
	if patch.Description != nil {
		inv.Description = *patch.Description
	}
	if patch.Category != nil {
		inv.Category = *patch.Category
	}
	if patch.Tags != nil {
		inv.Tags = *patch.Tags
	}
	if patch.CustomFields != nil {
		inv.CustomFields = *patch.CustomFields
	}

	if err := s.inventories.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("update inventory: %w", err)
	}
	return inv, nil
}

// Delete удаляет инвентарь. Items при этом остаются: каскада нет,
// это документированное поведение, а не недосмотр.
func (s *InventoryService) Delete(ctx context.Context, id string, actor auth.Identity) error {
	inv, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanMutate(actor, inv.UserID) {
		return fail(ErrForbidden, "Unauthorized")
	}
	if err := s.inventories.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	return nil
}

// Search — регистронезависимый поиск по всем текстовым полям,
// максимум search.Limit результатов в порядке хранения.
func (s *InventoryService) Search(ctx context.Context, query string) ([]model.Inventory, error) {
	m := search.NewMatcher(query)
	result := []model.Inventory{}
	if m.Empty() {
		return result, nil
	}

	invs, err := s.inventories.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search inventories: %w", err)
	}
	for i := range invs {
		if m.Matches(&invs[i]) {
			result = append(result, invs[i])
			if len(result) == search.Limit {
				break
			}
		}
	}
	return result, nil
}

func (s *InventoryService) Stats(ctx context.Context) (Stats, error) {
	invCount, err := s.inventories.Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count inventories: %w", err)
	}
	itemCount, err := s.items.Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count items: %w", err)
	}
	return Stats{Inventories: invCount, Items: itemCount}, nil
}
