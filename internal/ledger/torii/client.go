// Package torii implements the ledger client against an Iroha torii HTTP
// gateway. Transfer transactions are signed with the engine's ed25519 key
// before submission; queries page the account-asset history the observer
// consumes.
package torii

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/interledger-go/iroha-settlement/internal/ledger"
	"github.com/interledger-go/iroha-settlement/internal/model"
	"github.com/shopspring/decimal"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	defaultTimeout           = 30 * time.Second
	defaultRequestsPerSecond = 50

	statusCommitted = "COMMITTED"
)

type (
	// Metrics records metrics for torii calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Config carries the torii endpoint and the engine's ledger identity.
type Config struct {
	// BaseURL is the torii gateway endpoint, e.g. http://127.0.0.1:50051.
	BaseURL string
	// Account is the engine's own ledger account; it signs every transaction.
	Account model.LedgerAccountID
	// Key is the engine's ed25519 private key (see LoadKeyPair).
	Key ed25519.PrivateKey
	// Timeout bounds a single HTTP round trip. Zero means 30s.
	Timeout time.Duration
	// RequestsPerSecond paces calls to the gateway. Zero means 50.
	RequestsPerSecond int
}

// Client talks to the torii gateway. It implements ledger.Client.
type Client struct {
	baseURL *url.URL
	account model.LedgerAccountID
	key     ed25519.PrivateKey
	http    *http.Client
	rl      ratelimit.Limiter
	metrics Metrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewClient constructs a rate-limited, instrumented torii client.
func NewClient(cfg Config, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if metrics == nil {
		return nil, errors.New("torii metrics is required")
	}
	if len(cfg.Key) != ed25519.PrivateKeySize {
		return nil, errors.New("torii signing key is required")
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse torii url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("torii url %q is missing scheme or host", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}

	return &Client{
		baseURL: base,
		account: cfg.Account,
		key:     cfg.Key,
		http:    &http.Client{Timeout: timeout},
		rl:      ratelimit.New(rps),
		metrics: metrics,
		logger:  logger.Named("torii"),
		now:     time.Now,
	}, nil
}

// --- wire types ---

type wireTransfer struct {
	SrcAccountID  string `json:"src_account_id"`
	DestAccountID string `json:"dest_account_id"`
	AssetID       string `json:"asset_id"`
	Description   string `json:"description"`
	Amount        string `json:"amount"`
}

type wireCommand struct {
	TransferAsset *wireTransfer `json:"transfer_asset,omitempty"`
}

type wireTransaction struct {
	TxHash   string        `json:"tx_hash"`
	Commands []wireCommand `json:"commands"`
}

type transactionPayload struct {
	CreatorAccountID string        `json:"creator_account_id"`
	CreatedTime      int64         `json:"created_time"`
	Commands         []wireCommand `json:"commands"`
}

type wireSignature struct {
	PublicKey string `json:"public_key"`
	Signature string `json:"signature"`
}

type submitRequest struct {
	Payload    transactionPayload `json:"payload"`
	Signatures []wireSignature    `json:"signatures"`
}

type submitResponse struct {
	TxHash   string `json:"tx_hash"`
	TxStatus string `json:"tx_status"`
}

type listResponse struct {
	Transactions []wireTransaction `json:"transactions"`
}

// --- ledger.Client ---

// GetAccount probes the gateway for an account. Used as the startup
// liveness/auth check.
func (c *Client) GetAccount(ctx context.Context, account model.LedgerAccountID) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_account", err, started)
	}()

	resp, err := c.do(ctx, http.MethodGet, c.endpoint("accounts", string(account)), nil)
	if err != nil {
		return fmt.Errorf("get account: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get account %s: unexpected status %d", account, resp.StatusCode)
	}
	return nil
}

// SubmitTransfer signs a single-command transfer transaction and blocks
// until the gateway reports commitment. Every failure observable before
// commitment is a *ledger.Error.
func (c *Client) SubmitTransfer(ctx context.Context, transfer ledger.Transfer) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("submit_transfer", err, started)
	}()

	payload := transactionPayload{
		CreatorAccountID: string(c.account),
		CreatedTime:      c.now().UnixMilli(),
		Commands: []wireCommand{{
			TransferAsset: &wireTransfer{
				SrcAccountID:  string(transfer.Src),
				DestAccountID: string(transfer.Dst),
				AssetID:       string(transfer.Asset),
				Description:   transfer.Description,
				Amount:        transfer.Amount.String(),
			},
		}},
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		err = &ledger.Error{Op: "submit_transfer", Err: fmt.Errorf("marshal payload: %w", err)}
		return err
	}

	signature := ed25519.Sign(c.key, payloadBytes)
	request := submitRequest{
		Payload: payload,
		Signatures: []wireSignature{{
			PublicKey: hex.EncodeToString(c.key.Public().(ed25519.PublicKey)),
			Signature: hex.EncodeToString(signature),
		}},
	}

	body, err := json.Marshal(request)
	if err != nil {
		err = &ledger.Error{Op: "submit_transfer", Err: fmt.Errorf("marshal transaction: %w", err)}
		return err
	}

	resp, err := c.do(ctx, http.MethodPost, c.endpoint("transactions"), bytes.NewReader(body))
	if err != nil {
		err = &ledger.Error{Op: "submit_transfer", Err: err}
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		err = &ledger.Error{Op: "submit_transfer", Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
		return err
	}

	var result submitResponse
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		err = &ledger.Error{Op: "submit_transfer", Err: fmt.Errorf("decode response: %w", err)}
		return err
	}
	if result.TxStatus != statusCommitted {
		err = &ledger.Error{Op: "submit_transfer", Err: fmt.Errorf("transaction %s ended in status %s", result.TxHash, result.TxStatus)}
		return err
	}

	c.logger.Info("transfer committed",
		zap.String("tx_hash", result.TxHash),
		zap.String("dst", string(transfer.Dst)),
		zap.String("amount", transfer.Amount.String()),
	)
	return nil
}

// ListAccountAssetTransactions pages the account-asset history after
// afterHash (exclusive). An empty afterHash returns the oldest page.
func (c *Client) ListAccountAssetTransactions(ctx context.Context, account model.LedgerAccountID, asset model.AssetID, pageSize int, afterHash string) (txs []ledger.Transaction, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("list_account_asset_transactions", err, started)
	}()

	endpoint := c.endpoint("accounts", string(account), "assets", string(asset), "transactions")
	query := url.Values{"page_size": []string{strconv.Itoa(pageSize)}}
	if afterHash != "" {
		query.Set("first_tx_hash", afterHash)
	}
	endpoint.RawQuery = query.Encode()

	resp, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("list account asset transactions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list account asset transactions: unexpected status %d", resp.StatusCode)
	}
	return decodeTransactions(resp.Body)
}

// ListTransactionsByHashes fetches transactions by hash, for re-checking
// previously unchecked transactions.
func (c *Client) ListTransactionsByHashes(ctx context.Context, hashes []string) (txs []ledger.Transaction, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("list_transactions_by_hashes", err, started)
	}()

	body, err := json.Marshal(map[string][]string{"tx_hashes": hashes})
	if err != nil {
		return nil, fmt.Errorf("marshal hash list: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, c.endpoint("transactions", "list"), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("list transactions by hashes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list transactions by hashes: unexpected status %d", resp.StatusCode)
	}
	return decodeTransactions(resp.Body)
}

// --- helpers ---

func (c *Client) do(ctx context.Context, method string, endpoint *url.URL, body io.Reader) (*http.Response, error) {
	c.rl.Take()

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.http.Do(req)
}

func (c *Client) endpoint(parts ...string) *url.URL {
	endpoint := *c.baseURL
	for _, part := range parts {
		// Path holds the decoded form; URL.String escapes it.
		endpoint.Path += "/" + part
	}
	return &endpoint
}

func decodeTransactions(body io.Reader) ([]ledger.Transaction, error) {
	var result listResponse
	if err := json.NewDecoder(body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}

	txs := make([]ledger.Transaction, 0, len(result.Transactions))
	for _, wire := range result.Transactions {
		tx := ledger.Transaction{Hash: wire.TxHash}
		for _, cmd := range wire.Commands {
			if cmd.TransferAsset == nil {
				tx.Commands = append(tx.Commands, ledger.Command{})
				continue
			}
			amount, err := decimal.NewFromString(cmd.TransferAsset.Amount)
			if err != nil {
				return nil, fmt.Errorf("transaction %s carries amount %q: %w", wire.TxHash, cmd.TransferAsset.Amount, err)
			}
			tx.Commands = append(tx.Commands, ledger.Command{TransferAsset: &ledger.Transfer{
				Src:         model.LedgerAccountID(cmd.TransferAsset.SrcAccountID),
				Dst:         model.LedgerAccountID(cmd.TransferAsset.DestAccountID),
				Asset:       model.AssetID(cmd.TransferAsset.AssetID),
				Description: cmd.TransferAsset.Description,
				Amount:      amount,
			}})
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
