package models

// Audit actions recorded for every mutation the gateway performs
// against the platform API.
const (
	AuditActionSendBankDetails    = "request.send_bank_details"
	AuditActionVerifyRequest      = "request.verify"
	AuditActionRejectRequest      = "request.reject"
	AuditActionCreateCurrency     = "currency.create"
	AuditActionUpdateCurrency     = "currency.update"
	AuditActionUploadQR           = "currency.upload_qr"
	AuditActionDeactivateCurrency = "currency.deactivate"
	AuditActionPurgeCurrency      = "currency.purge"
)

// AuditEvent records one operator action. Events are written to the
// local audit table and published to Kafka; they capture what the
// gateway asked for, not what the backend ultimately committed.
type AuditEvent struct {
	EventID    string `json:"event_id"`
	OperatorID string `json:"operator_id"`
	Action     string `json:"action"`
	TargetID   string `json:"target_id"`
	Detail     string `json:"detail,omitempty"`
	Timestamp  int64  `json:"timestamp"`
}
