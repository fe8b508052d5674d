package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/Evecotrip/god-aurumx-sub000/internal/clients"
	"github.com/Evecotrip/god-aurumx-sub000/internal/logger"
	"github.com/Evecotrip/god-aurumx-sub000/internal/models"
)

// Error variables
var (
	ErrInvalidRequestState     = errors.New("request is not in an actionable state")
	ErrBankDetailsAlreadySent  = errors.New("bank details were already sent")
	ErrNoPaymentProof          = errors.New("request has no payment proof")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
)

// Listing modes. Pending mode forces the status filter; all mode passes
// the operator's selection through.
const (
	ListModePending = "pending"
	ListModeAll     = "all"
)

// TokenResolver supplies the operator's platform token.
type TokenResolver interface {
	Resolve(ctx context.Context, operatorID uuid.UUID) (string, error)
}

// RequestsAPI defines the platform calls the review workflow drives.
type RequestsAPI interface {
	List(ctx context.Context, token string, f models.RequestFilters) (*clients.RequestList, error)
	Get(ctx context.Context, token, id string) (*models.AddMoneyRequest, error)
	SendBankDetails(ctx context.Context, token, id string) error
	Verify(ctx context.Context, token, id, adminNotes string) error
	Reject(ctx context.Context, token, id, reason string) error
}

// ActionRecorder captures operator actions for the audit trail.
type ActionRecorder interface {
	Record(ctx context.Context, operatorID uuid.UUID, action, targetID, detail string)
}

// RequestReviewService drives the add-money request lifecycle:
// PENDING -> (send bank details, stays PENDING with the timestamp set)
// -> PROCESSING once the user submits proof -> COMPLETED via verify, or
// REJECTED via reject. Guards are checked against a fresh detail fetch
// before any mutation endpoint is touched, and every successful
// mutation is followed by a list+summary re-fetch so the caller renders
// confirmed state only. This is the sole component that mutates request
// state.
type RequestReviewService struct {
	tokens TokenResolver
	api    RequestsAPI
	audit  ActionRecorder
}

// NewRequestReviewService creates a new RequestReviewService.
func NewRequestReviewService(tokens TokenResolver, api RequestsAPI, audit ActionRecorder) *RequestReviewService {
	return &RequestReviewService{
		tokens: tokens,
		api:    api,
		audit:  audit,
	}
}

// List fetches one page of requests plus summary counts. Without a
// resolved token no backend call is made.
func (s *RequestReviewService) List(ctx context.Context, operatorID uuid.UUID, mode string, f models.RequestFilters) (*clients.RequestList, error) {
	token, err := s.tokens.Resolve(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	if mode == ListModePending {
		f.Status = models.RequestStatusPending
	}

	return s.api.List(ctx, token, f)
}

// Get fetches one request's full detail record.
func (s *RequestReviewService) Get(ctx context.Context, operatorID uuid.UUID, id string) (*models.AddMoneyRequest, error) {
	token, err := s.tokens.Resolve(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	return s.api.Get(ctx, token, id)
}

// SendBankDetails sends deposit instructions for a PENDING request that
// has not received them yet.
func (s *RequestReviewService) SendBankDetails(ctx context.Context, operatorID uuid.UUID, id string, refresh models.RequestFilters) (*clients.RequestList, error) {
	token, err := s.tokens.Resolve(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	req, err := s.api.Get(ctx, token, id)
	if err != nil {
		return nil, err
	}
	if req.Status != models.RequestStatusPending {
		logger.Log.Warnw("send bank details blocked", "request_id", id, "status", req.Status)
		return nil, ErrInvalidRequestState
	}
	if req.BankDetailsSentAt != nil {
		logger.Log.Warnw("bank details already sent", "request_id", id, "sent_at", req.BankDetailsSentAt)
		return nil, ErrBankDetailsAlreadySent
	}

	if err := s.api.SendBankDetails(ctx, token, id); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, operatorID, models.AuditActionSendBankDetails, id, "")
	return s.api.List(ctx, token, refresh)
}

// Verify completes a PROCESSING request with payment proof, crediting
// the computed total.
func (s *RequestReviewService) Verify(ctx context.Context, operatorID uuid.UUID, id, adminNotes string, refresh models.RequestFilters) (*clients.RequestList, error) {
	token, err := s.tokens.Resolve(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	req, err := s.api.Get(ctx, token, id)
	if err != nil {
		return nil, err
	}
	if req.Status != models.RequestStatusProcessing {
		logger.Log.Warnw("verify blocked", "request_id", id, "status", req.Status)
		return nil, ErrInvalidRequestState
	}
	if req.PaymentProof == "" {
		logger.Log.Warnw("verify blocked, no payment proof", "request_id", id)
		return nil, ErrNoPaymentProof
	}

	if err := s.api.Verify(ctx, token, id, adminNotes); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, operatorID, models.AuditActionVerifyRequest, id, adminNotes)
	return s.api.List(ctx, token, refresh)
}

// Reject declines a PROCESSING request with payment proof. The reason
// is mandatory and checked before anything leaves the gateway.
func (s *RequestReviewService) Reject(ctx context.Context, operatorID uuid.UUID, id, reason string, refresh models.RequestFilters) (*clients.RequestList, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrRejectionReasonRequired
	}

	token, err := s.tokens.Resolve(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	req, err := s.api.Get(ctx, token, id)
	if err != nil {
		return nil, err
	}
	if req.Status != models.RequestStatusProcessing {
		logger.Log.Warnw("reject blocked", "request_id", id, "status", req.Status)
		return nil, ErrInvalidRequestState
	}
	if req.PaymentProof == "" {
		logger.Log.Warnw("reject blocked, no payment proof", "request_id", id)
		return nil, ErrNoPaymentProof
	}

	if err := s.api.Reject(ctx, token, id, reason); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, operatorID, models.AuditActionRejectRequest, id, reason)
	return s.api.List(ctx, token, refresh)
}
