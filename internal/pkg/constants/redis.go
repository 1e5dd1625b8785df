package constants

// Redis key formats
const (
	// Escrow service
	KeyCodeAttempts = "escrow:code:attempts:%s" // Format: escrow:code:attempts:{record_id}
	KeyCodeLock     = "escrow:code:lock:%s"     // Format: escrow:code:lock:{record_id}

	// Rate limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{identifier}
)
