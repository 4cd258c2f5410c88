package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shahedzaman612/Inventory-Backend/internal/auth"
	"github.com/shahedzaman612/Inventory-Backend/internal/config"
	"github.com/shahedzaman612/Inventory-Backend/internal/handlers"
	"github.com/shahedzaman612/Inventory-Backend/internal/model"
	"github.com/shahedzaman612/Inventory-Backend/internal/repo"
	"github.com/shahedzaman612/Inventory-Backend/internal/service"
)

// testSender копит письма вместо отправки.
type testSender struct {
	sent []testEmail
}

type testEmail struct {
	to      string
	subject string
	body    string
}

func (s *testSender) Send(to, subject, htmlBody string) error {
	s.sent = append(s.sent, testEmail{to: to, subject: subject, body: htmlBody})
	return nil
}

type testEnv struct {
	router http.Handler
	db     *gorm.DB
	tokens *auth.TokenManager
	sender *testSender
}

// newTestEnv поднимает полный стек поверх in-memory SQLite.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := repo.InitDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("init db: %v", err)
	}

	cfg := &config.Config{
		AuthSecret: "test-secret",
		TokenTTL:   time.Hour,
		ClientURL:  "http://front.test",
	}
	tokens := auth.NewTokenManager(cfg.AuthSecret, cfg.TokenTTL)
	sender := &testSender{}
	logger := zap.NewNop().Sugar()

	userRepo := repo.NewUserRepository(db)
	inventoryRepo := repo.NewInventoryRepository(db)
	itemRepo := repo.NewItemRepository(db)

	userSvc := service.NewUserService(userRepo, tokens, sender, cfg.ClientURL)
	inventorySvc := service.NewInventoryService(inventoryRepo, itemRepo)
	itemSvc := service.NewItemService(itemRepo, inventoryRepo)

	h := handlers.NewHandler(userSvc, inventorySvc, itemSvc, tokens, nil, logger, cfg)
	return &testEnv{router: h.Router, db: db, tokens: tokens, sender: sender}
}

// do выполняет запрос против роутера; token подставляется Bearer-заголовком.
func (e *testEnv) do(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// seedVerifiedUser заводит подтверждённого пользователя напрямую в БД
// и возвращает его вместе с сессионным токеном.
func (e *testEnv) seedVerifiedUser(t *testing.T, username, email, role string) (*model.User, string) {
	t.Helper()
	rr := e.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username, "email": email, "password": "p@ssw0rd",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("register %s: %d %s", email, rr.Code, rr.Body.String())
	}

	var u model.User
	if err := e.db.First(&u, "email = ?", email).Error; err != nil {
		t.Fatalf("find user: %v", err)
	}
	u.IsVerified = true
	u.Role = role
	if err := e.db.Save(&u).Error; err != nil {
		t.Fatalf("verify user: %v", err)
	}

	token, err := e.tokens.Issue(u.ID, u.Role)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return &u, token
}

var emailTokenRe = regexp.MustCompile(`/(?:verify-email|reset-password)/([A-Za-z0-9._-]+)`)

// lastEmailToken вытаскивает токен из последнего письма.
func (e *testEnv) lastEmailToken(t *testing.T) string {
	t.Helper()
	if len(e.sender.sent) == 0 {
		t.Fatal("no emails sent")
	}
	m := emailTokenRe.FindStringSubmatch(e.sender.sent[len(e.sender.sent)-1].body)
	if len(m) != 2 {
		t.Fatalf("no token link in email body: %s", e.sender.sent[len(e.sender.sent)-1].body)
	}
	return m[1]
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rr.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
	return v
}
