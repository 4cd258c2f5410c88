// Package client — HTTP-клиент API для cmd/client.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Client ходит в inventory-backend. Token подставляется Bearer-заголовком,
// если он непустой.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{BaseURL: baseURL, Token: token, HTTP: http.DefaultClient}
}

// apiMessage — структурированный ответ сервера с message.
type apiMessage struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

func (c *Client) do(method, path string, payload any) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return 0, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, raw, nil
}

// call делает запрос и превращает не-2xx в ошибку с сообщением сервера.
func (c *Client) call(method, path string, payload any) ([]byte, error) {
	status, raw, err := c.do(method, path, payload)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		var m apiMessage
		if json.Unmarshal(raw, &m) == nil && m.Message != "" {
			return nil, fmt.Errorf("server: %s (%d)", m.Message, status)
		}
		return nil, fmt.Errorf("server returned %d", status)
	}
	return raw, nil
}

// Register создаёт пользователя; подтверждение почты — отдельным шагом.
func (c *Client) Register(username, email, password string) (string, error) {
	raw, err := c.call(http.MethodPost, "/api/auth/register", map[string]string{
		"username": username, "email": email, "password": password,
	})
	if err != nil {
		return "", err
	}
	var m apiMessage
	_ = json.Unmarshal(raw, &m)
	return m.Message, nil
}

// Login возвращает сессионный токен.
func (c *Client) Login(email, password string) (string, error) {
	raw, err := c.call(http.MethodPost, "/api/auth/login", map[string]string{
		"email": email, "password": password,
	})
	if err != nil {
		return "", err
	}
	var m apiMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return "", err
	}
	if m.Token == "" {
		return "", fmt.Errorf("no token in response")
	}
	return m.Token, nil
}

func (c *Client) Inventories() ([]byte, error) {
	return c.call(http.MethodGet, "/api/inventories", nil)
}

func (c *Client) MyInventories() ([]byte, error) {
	return c.call(http.MethodGet, "/api/inventories/my", nil)
}

func (c *Client) SearchInventories(query string) ([]byte, error) {
	return c.call(http.MethodGet, "/api/inventories/search?q="+url.QueryEscape(query), nil)
}

func (c *Client) Stats() ([]byte, error) {
	return c.call(http.MethodGet, "/api/inventories/stats", nil)
}

func (c *Client) CreateInventory(title, description, category string, tags []string) ([]byte, error) {
	return c.call(http.MethodPost, "/api/inventories", map[string]any{
		"title": title, "description": description, "category": category, "tags": tags,
	})
}

func (c *Client) Items(inventoryID string) ([]byte, error) {
	return c.call(http.MethodGet, "/api/inventories/"+inventoryID+"/items", nil)
}

func (c *Client) AddItem(inventoryID, itemID, name string, quantity int) ([]byte, error) {
	return c.call(http.MethodPost, "/api/inventories/"+inventoryID+"/items", map[string]any{
		"itemId": itemID, "name": name, "quantity": quantity,
	})
}
