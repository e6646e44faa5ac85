package mirror

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"golang.org/x/text/language"
)

const (
	// TestnetBaseURL 测试网 mirror node REST 地址
	TestnetBaseURL = "https://testnet.mirrornode.hedera.com/api/v1"
	DefaultTimeout = 10 * time.Second
)

// Balance 账户余额 (已格式化为 ℏ)
type Balance struct {
	Balance string `json:"balance"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

// Client mirror node 只读查询客户端, 不重试
type Client struct {
	http   *resty.Client
	locale language.Tag
}

type Option func(*Client)

// WithLocale 指定千分位格式使用的 locale
func WithLocale(tag language.Tag) Option {
	return func(c *Client) {
		c.locale = tag
	}
}

// NewClient baseURL 为空时使用测试网地址, timeout 为 0 时使用 10s
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = TestnetBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json").
			SetHeader("Content-Type", "application/json"),
		locale: language.AmericanEnglish,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetAccountBalance GET /accounts/{address}, 余额按 locale 格式化为 ℏ
func (c *Client) GetAccountBalance(ctx context.Context, address string) (*Balance, error) {
	tinybars, err := c.GetAccountTinybars(ctx, address)
	if err != nil {
		return nil, err
	}

	return &Balance{
		Balance: FormatTinybarAsHbarIn(c.locale, tinybars),
		Name:    "HBAR",
		Symbol:  "ℏ",
	}, nil
}

// GetAccountTinybars 读取 balance.balance (tinybar)
func (c *Client) GetAccountTinybars(ctx context.Context, address string) (int64, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("address", address).
		Get("/accounts/{address}")
	if err != nil {
		return 0, fmt.Errorf("mirror node request failed: %w", err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("mirror node returned %d for account %s", resp.StatusCode(), address)
	}

	tinybars := gjson.GetBytes(resp.Body(), "balance.balance")
	if !tinybars.Exists() {
		return 0, fmt.Errorf("mirror node response for account %s has no balance.balance", address)
	}
	return tinybars.Int(), nil
}
