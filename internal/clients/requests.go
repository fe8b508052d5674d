package clients

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Evecotrip/god-aurumx-sub000/internal/models"
)

const requestsBasePath = "/api/v1/master-node/add-money-requests"

// RequestList is a page of add-money requests together with the summary
// counts rendered next to every listing.
type RequestList struct {
	Items      []models.AddMoneyRequest `json:"requests"`
	Summary    models.RequestSummary    `json:"summary"`
	Pagination models.Pagination        `json:"pagination"`
}

// RequestsClient calls the add-money request endpoints of the platform
// API. It is a dumb transport: all state-machine guards live in the
// review service.
type RequestsClient struct {
	caller *Caller
}

// NewRequestsClient creates a new RequestsClient.
func NewRequestsClient(caller *Caller) *RequestsClient {
	return &RequestsClient{caller: caller}
}

// List fetches one page of requests plus summary counts. Zero-valued
// filters are omitted from the query.
func (c *RequestsClient) List(ctx context.Context, token string, f models.RequestFilters) (*RequestList, error) {
	q := url.Values{}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Currency != "" {
		q.Set("currency", f.Currency)
	}

	path := requestsBasePath
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	env, err := c.caller.JSON(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}

	var list RequestList
	if err := decodeData(env, &list); err != nil {
		return nil, err
	}
	if env.Pagination != nil {
		list.Pagination = *env.Pagination
	}
	return &list, nil
}

// Get fetches the full detail record for one request.
func (c *RequestsClient) Get(ctx context.Context, token, id string) (*models.AddMoneyRequest, error) {
	env, err := c.caller.JSON(ctx, http.MethodGet, requestsBasePath+"/"+id, token, nil)
	if err != nil {
		return nil, err
	}

	var req models.AddMoneyRequest
	if err := decodeData(env, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// SendBankDetails asks the backend to send deposit instructions to the
// requesting user and record the send timestamp.
func (c *RequestsClient) SendBankDetails(ctx context.Context, token, id string) error {
	_, err := c.caller.JSON(ctx, http.MethodPost, requestsBasePath+"/"+id+"/send-bank-details", token, nil)
	return err
}

type verifyRequest struct {
	AdminNotes string `json:"adminNotes,omitempty"`
}

// Verify transitions a request to COMPLETED and credits the computed
// total.
func (c *RequestsClient) Verify(ctx context.Context, token, id, adminNotes string) error {
	_, err := c.caller.JSON(ctx, http.MethodPost, requestsBasePath+"/"+id+"/verify", token,
		verifyRequest{AdminNotes: adminNotes})
	return err
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

// Reject transitions a request to REJECTED with the given reason.
func (c *RequestsClient) Reject(ctx context.Context, token, id, reason string) error {
	_, err := c.caller.JSON(ctx, http.MethodPost, requestsBasePath+"/"+id+"/reject", token,
		rejectRequest{Reason: reason})
	return err
}
