// Package basescan counts Base L2 transactions for a verified address. The
// indexer query counts sent and received transactions; when the indexer is
// rate-limited or down the client falls back to eth_getTransactionCount
// against a node RPC, which only sees sent transactions but keeps the stat
// alive.
package basescan

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"standcast-backend/internal/common/logger"
)

const (
	defaultAPIURL = "https://api.basescan.org/api"
	defaultRPCURL = "https://mainnet.base.org"

	// txListPageSize caps how many transactions one indexer query returns.
	// An address at the cap is already deep into the top grade.
	txListPageSize = 10000
)

type Client struct {
	httpClient *http.Client
	apiURL     string
	rpcURL     string
}

func NewClient(apiURL, rpcURL string, timeout time.Duration) *Client {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	if rpcURL == "" {
		rpcURL = defaultRPCURL
	}
	if timeout <= 0 {
		timeout = 6 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiURL:     apiURL,
		rpcURL:     rpcURL,
	}
}

type txListResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

type rpcResponse struct {
	Result string `json:"result"`
}

// TransactionCount returns the transaction count for one address. It tries
// the indexer first and falls back to the node RPC; the returned error marks
// that neither source answered, so the caller can switch to a secondary
// metric instead of treating the count as a real zero.
func (c *Client) TransactionCount(ctx context.Context, address string) (int64, error) {
	count, err := c.indexerCount(ctx, address)
	if err == nil {
		return count, nil
	}
	logger.Warn().Err(err).Str("address", address).Msg("Indexer lookup failed, falling back to RPC")

	count, rpcErr := c.rpcCount(ctx, address)
	if rpcErr != nil {
		return 0, fmt.Errorf("basescan: indexer: %v; rpc: %w", err, rpcErr)
	}
	return count, nil
}

func (c *Client) indexerCount(ctx context.Context, address string) (int64, error) {
	q := url.Values{}
	q.Set("module", "account")
	q.Set("action", "txlist")
	q.Set("address", address)
	q.Set("startblock", "0")
	q.Set("endblock", "99999999")
	q.Set("page", "1")
	q.Set("offset", strconv.Itoa(txListPageSize))
	q.Set("sort", "asc")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+q.Encode(), nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("indexer returned %d", resp.StatusCode)
	}

	var payload txListResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, err
	}
	if payload.Status != "1" {
		return 0, fmt.Errorf("indexer status %q: %s", payload.Status, payload.Message)
	}
	var txs []json.RawMessage
	if err := json.Unmarshal(payload.Result, &txs); err != nil {
		return 0, fmt.Errorf("indexer result not a list: %w", err)
	}
	return int64(len(txs)), nil
}

func (c *Client) rpcCount(ctx context.Context, address string) (int64, error) {
	body, err := json.Marshal(map[string]interface{}{
		"jsonrpc": "2.0",
		"method":  "eth_getTransactionCount",
		"params":  []string{address, "latest"},
		"id":      1,
	})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rpcURL, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rpc returned %d", resp.StatusCode)
	}

	var payload rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, err
	}
	if payload.Result == "" {
		return 0, fmt.Errorf("rpc returned empty result")
	}
	count, err := strconv.ParseInt(strings.TrimPrefix(payload.Result, "0x"), 16, 64)
	if err != nil {
		return 0, fmt.Errorf("rpc result %q not hex: %w", payload.Result, err)
	}
	return count, nil
}
