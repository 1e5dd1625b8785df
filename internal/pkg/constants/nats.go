package constants

// NATS subjects
const (
	// Published by the payments service
	SubjectTransactionCompleted = "transactions.completed"
	SubjectTransactionFailed    = "transactions.failed"

	// Published by the escrow service
	SubjectEscrowCreated  = "escrows.created"
	SubjectEscrowReleased = "escrows.released"
	SubjectEscrowRefunded = "escrows.refunded"
	SubjectEscrowDisputed = "escrows.disputed"

	// Notification collaborator handoff (carries the plaintext code once)
	SubjectDeliveryCode = "notifications.delivery_code"

	// Audit collaborator stream
	SubjectAuditEvents = "audit.events"
)

// Audit actions
const (
	AuditEscrowCreated       = "escrow.created"
	AuditDeliveryVerified    = "escrow.delivery_verified"
	AuditDeliveryRejected    = "escrow.delivery_rejected"
	AuditEscrowReleased      = "escrow.released"
	AuditEscrowRefunded      = "escrow.refunded"
	AuditEscrowDisputed      = "escrow.disputed"
	AuditDisputeResolved     = "dispute.resolved"
	AuditConfirmationCreated = "confirmation.generated"
	AuditConfirmationUsed    = "confirmation.used"
)
