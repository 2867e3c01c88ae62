package partner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"artmarket-partner-console/internal/apperr"
	"artmarket-partner-console/internal/domain"
	"artmarket-partner-console/internal/logx"
)

const (
	activePath        = "/delivery-partner/requests/active"
	pendingPath       = "/delivery-status/pending"
	comprehensivePath = "/delivery-status/update-comprehensive"

	bodyLimit = 1 << 20
)

// SessionProvider yields the session whose token authenticates backend calls.
type SessionProvider interface {
	Current() domain.Session
}

// Client is the delivery partner gateway over the marketplace REST backend.
type Client struct {
	baseURL string
	http    *http.Client
	session SessionProvider
	logger  logx.Logger
}

// NewClient creates a gateway rooted at baseURL. A nil httpClient means http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client, session SessionProvider, logger logx.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		session: session,
		logger:  logger,
	}
}

// GetActiveDeliveries fetches the deliveries assigned to the partner.
func (c *Client) GetActiveDeliveries(ctx context.Context) (*ActiveResponse, error) {
	var out ActiveResponse
	if err := c.do(ctx, http.MethodGet, activePath, nil, &out); err != nil {
		return nil, fmt.Errorf("partner gateway: GetActiveDeliveries: %w", err)
	}
	for _, r := range out.Requests {
		c.warnUnparsed(string(r.ID), map[string]Timestamp{
			"orderDate":    r.OrderDate,
			"acceptedDate": r.AcceptedDate,
			"deadline":     r.Deadline,
		})
	}
	return &out, nil
}

// GetPendingDeliveries fetches orders and commissions awaiting delivery (legacy shape).
func (c *Client) GetPendingDeliveries(ctx context.Context) (*PendingResponse, error) {
	var out PendingResponse
	if err := c.do(ctx, http.MethodGet, pendingPath, nil, &out); err != nil {
		return nil, fmt.Errorf("partner gateway: GetPendingDeliveries: %w", err)
	}
	for _, o := range out.Data.ArtworkOrders {
		c.warnUnparsed(string(o.ID), map[string]Timestamp{
			"order_date":              o.OrderDate,
			"accepted_date":           o.AcceptedDate,
			"estimated_delivery_date": o.EstimatedDelivery,
		})
	}
	for _, r := range out.Data.CommissionRequests {
		c.warnUnparsed(string(r.ID), map[string]Timestamp{
			"created_at":    r.CreatedAt,
			"accepted_date": r.AcceptedDate,
			"deadline":      r.Deadline,
		})
	}
	return &out, nil
}

// MarkOutForDelivery reports that the partner picked the order up.
func (c *Client) MarkOutForDelivery(ctx context.Context, orderType domain.OrderType, orderID string) (*StatusUpdateResponse, error) {
	var out StatusUpdateResponse
	if err := c.do(ctx, http.MethodPut, statusPath(orderType, orderID, "out-for-delivery"), nil, &out); err != nil {
		return nil, fmt.Errorf("partner gateway: MarkOutForDelivery: %w", err)
	}
	return &out, nil
}

// MarkDelivered reports that the order reached the buyer.
func (c *Client) MarkDelivered(ctx context.Context, orderType domain.OrderType, orderID string) (*StatusUpdateResponse, error) {
	var out StatusUpdateResponse
	if err := c.do(ctx, http.MethodPut, statusPath(orderType, orderID, "delivered"), nil, &out); err != nil {
		return nil, fmt.Errorf("partner gateway: MarkDelivered: %w", err)
	}
	return &out, nil
}

// UpdateComprehensive sends a full status update.
func (c *Client) UpdateComprehensive(ctx context.Context, u ComprehensiveUpdate) (*StatusUpdateResponse, error) {
	var out StatusUpdateResponse
	if err := c.do(ctx, http.MethodPut, comprehensivePath, u, &out); err != nil {
		return nil, fmt.Errorf("partner gateway: UpdateComprehensive: %w", err)
	}
	return &out, nil
}

// UpdateDeliveryStatus routes a status change to the matching endpoint.
// picked_up and in_transit share the out-for-delivery endpoint because the
// backend keeps a single transit state.
func (c *Client) UpdateDeliveryStatus(ctx context.Context, d domain.DeliveryRequest, status domain.DeliveryStatus) (*StatusUpdateResponse, error) {
	switch status {
	case domain.StatusPickedUp, domain.StatusInTransit:
		return c.MarkOutForDelivery(ctx, d.OrderType(), d.ID)
	case domain.StatusDelivered:
		return c.MarkDelivered(ctx, d.OrderType(), d.ID)
	default:
		return c.UpdateComprehensive(ctx, ComprehensiveUpdate{
			OrderID:           d.ID,
			OrderType:         d.OrderType(),
			DeliveryStatus:    status,
			ShippingFee:       d.ShippingFee,
			DeliveryPartnerID: c.partnerID(),
		})
	}
}

func (c *Client) warnUnparsed(id string, dates map[string]Timestamp) {
	for field, ts := range dates {
		if ts.Unparsed == "" {
			continue
		}
		c.logger.Warn("backend date ignored",
			logx.String("delivery_id", id),
			logx.String("field", field),
			logx.String("value", ts.Unparsed),
		)
	}
}

func statusPath(orderType domain.OrderType, orderID, action string) string {
	return "/delivery-status/" + url.PathEscape(string(orderType)) + "/" + url.PathEscape(orderID) + "/" + action
}

func (c *Client) partnerID() string {
	if c.session == nil {
		return ""
	}
	return c.session.Current().UserID
}

func (c *Client) token() string {
	if c.session == nil {
		return ""
	}
	return c.session.Current().Token
}

// do issues one request and decodes the body into out.
// Transport failures and failure bodies come back as *apperr.APIError.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed",
			logx.String("method", method),
			logx.String("path", path),
			logx.Err(err),
		)
		return &apperr.APIError{Success: false, Err: err.Error(), Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, bodyLimit))
	if err != nil {
		return &apperr.APIError{Success: false, Err: fmt.Sprintf("read response: %v", err), Cause: err}
	}

	var env envelope
	envErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &apperr.APIError{StatusCode: resp.StatusCode}
		if envErr == nil {
			apiErr.Err, apiErr.Message, apiErr.Details = env.Error, env.Message, env.details()
		}
		if apiErr.Err == "" && apiErr.Message == "" && apiErr.Details == "" {
			apiErr.Err = http.StatusText(resp.StatusCode)
		}
		c.logger.Warn("backend returned error",
			logx.String("method", method),
			logx.String("path", path),
			logx.Int("status", resp.StatusCode),
			logx.String("error", apiErr.Error()),
		)
		return apiErr
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if envErr != nil {
		return malformed(resp.StatusCode, envErr)
	}
	if env.Success != nil && !*env.Success {
		return &apperr.APIError{
			StatusCode: resp.StatusCode,
			Err:        env.Error,
			Message:    env.Message,
			Details:    env.details(),
		}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return malformed(resp.StatusCode, err)
	}
	return nil
}

func malformed(status int, err error) error {
	return &apperr.APIError{StatusCode: status, Err: "malformed backend response", Details: err.Error(), Cause: err}
}
