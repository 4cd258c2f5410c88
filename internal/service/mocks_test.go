package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shahedzaman612/Inventory-Backend/internal/mail"
	"github.com/shahedzaman612/Inventory-Backend/internal/model"
	"github.com/shahedzaman612/Inventory-Backend/internal/repo"
)

// моки репозиториев для тестов сервисного слоя

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) UpdateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockInventoryRepo struct{ mock.Mock }

func (m *mockInventoryRepo) Create(ctx context.Context, inv *model.Inventory) (*model.Inventory, error) {
	args := m.Called(ctx, inv)
	if v, ok := args.Get(0).(*model.Inventory); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryRepo) GetByID(ctx context.Context, id string) (*model.Inventory, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Inventory); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryRepo) List(ctx context.Context) ([]model.Inventory, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Inventory); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Inventory, error) {
	args := m.Called(ctx, ownerID)
	if v, ok := args.Get(0).([]model.Inventory); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryRepo) All(ctx context.Context) ([]model.Inventory, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Inventory); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryRepo) Update(ctx context.Context, inv *model.Inventory) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *mockInventoryRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockInventoryRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.InventoryRepository = (*mockInventoryRepo)(nil)

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) Create(ctx context.Context, item *model.Item) (*model.Item, error) {
	args := m.Called(ctx, item)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) GetByItemID(ctx context.Context, itemID string) (*model.Item, error) {
	args := m.Called(ctx, itemID)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) GetInInventory(ctx context.Context, inventoryID, itemID string) (*model.Item, error) {
	args := m.Called(ctx, inventoryID, itemID)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) ListByInventory(ctx context.Context, inventoryID string) ([]model.Item, error) {
	args := m.Called(ctx, inventoryID)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) Update(ctx context.Context, item *model.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockItemRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockItemRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

// mockSender запоминает отправленные письма.
type mockSender struct {
	sent []sentEmail
	err  error
}

type sentEmail struct {
	to      string
	subject string
	body    string
}

func (s *mockSender) Send(to, subject, htmlBody string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentEmail{to: to, subject: subject, body: htmlBody})
	return nil
}

var _ mail.Sender = (*mockSender)(nil)
