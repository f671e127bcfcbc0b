package escrow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/paulrouge/multitoken-presale/internal/presale/model"
)

const (
	routePath          = "/presaleTxRouter"
	idempotencyHeader  = "Idempotency-Key"
	defaultHTTPTimeout = 10 * time.Second
)

type settleRequest struct {
	Escrow   string `json:"escrow"`
	Amount   string `json:"amount"`
	Buyer    string `json:"buyer"`
	Treasury string `json:"treasury"`
	TokenID  uint64 `json:"tokenId"`
}

// HTTPSettler posts route instructions to the escrow service.
type HTTPSettler struct {
	baseURL string
	client  *http.Client
	rl      ratelimit.Limiter
	logger  *zap.Logger
}

// NewHTTPSettler constructs a settler. rps <= 0 disables pacing.
func NewHTTPSettler(baseURL string, client *http.Client, rps int, logger *zap.Logger) *HTTPSettler {
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	rl := ratelimit.NewUnlimited()
	if rps > 0 {
		rl = ratelimit.New(rps)
	}
	return &HTTPSettler{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		rl:      rl,
		logger:  logger.Named("escrow_settler"),
	}
}

// Settle posts one route. A 409 means the escrow already accepted this sequence.
func (s *HTTPSettler) Settle(ctx context.Context, route model.EscrowRoute) error {
	body, err := json.Marshal(settleRequest{
		Escrow:   route.Escrow.Hex(),
		Amount:   route.Amount.Dec(),
		Buyer:    route.Buyer.Hex(),
		Treasury: route.Treasury.Hex(),
		TokenID:  route.TokenID,
	})
	if err != nil {
		return fmt.Errorf("marshal settle request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+routePath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build settle request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(idempotencyHeader, strconv.FormatUint(route.Seq, 10))

	s.rl.Take()
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post route %d: %w", route.Seq, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusConflict:
		s.logger.Debug("route already settled", zap.Uint64("seq", route.Seq))
		return nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("post route %d: unexpected status %d: %s", route.Seq, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
}
