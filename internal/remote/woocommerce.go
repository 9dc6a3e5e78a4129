package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/catalogops/catalog-sync/internal/platform"
	"github.com/catalogops/catalog-sync/internal/platform/models"
	"github.com/catalogops/catalog-sync/internal/reconcile"
)

// Client builds http requests and pushes product updates to a WooCommerce store.
type Client struct {
	client         *http.Client
	baseURL        string
	consumerKey    string
	consumerSecret string
	userAgent      string
}

// NewClient returns new Client.
func NewClient(client *http.Client, baseURL, consumerKey, consumerSecret, userAgent string) *Client {
	return &Client{
		client:         client,
		baseURL:        baseURL,
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		userAgent:      userAgent,
	}
}

// productPayload is the WooCommerce products endpoint body.
// WooCommerce expects prices as strings.
type productPayload struct {
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	RegularPrice string `json:"regular_price"`
	SalePrice    string `json:"sale_price"`
	ExternalURL  string `json:"external_url"`
	StockStatus  string `json:"stock_status"`
}

// UpdateProduct pushes product's current state to the store under provided website ID.
func (c *Client) UpdateProduct(ctx context.Context, websiteID string, product *models.Product) error {
	body, err := json.Marshal(toProductPayload(product))
	if err != nil {
		return fmt.Errorf("can't encode product payload: %w", err)
	}

	url := fmt.Sprintf("%s/wp-json/wc/v3/products/%s", c.baseURL, websiteID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	req.Header.Add("User-Agent", c.userAgent)
	req.SetBasicAuth(c.consumerKey, c.consumerSecret)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", platform.ErrRemoteWriteFailed, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %w (status %d)", platform.ErrRemoteWriteFailed, ErrStatusNotOK, resp.StatusCode)
	}

	return nil
}

func toProductPayload(product *models.Product) productPayload {
	return productPayload{
		SKU:          product.SKU,
		Name:         product.Title,
		RegularPrice: strconv.FormatFloat(product.Price, 'f', -1, 64),
		SalePrice:    strconv.FormatFloat(product.PromotionalPrice, 'f', -1, 64),
		ExternalURL:  product.ExternalURL,
		StockStatus:  stockStatus(product.Stock),
	}
}

// stockStatus maps normalized stock to WooCommerce statuses.
// Unknown flags keep the product purchasable.
func stockStatus(flag models.StockFlag) string {
	if reconcile.NormalizeStockState(flag) == models.StockOut {
		return "outofstock"
	}
	return "instock"
}
