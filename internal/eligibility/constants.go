package eligibility

// Log messages
const (
	LogMsgEvaluated        = "Eligibility evaluated"
	LogMsgDocumentUploaded = "Document uploaded"
	LogMsgDocumentReviewed = "Document reviewed"
	LogMsgPublishFailed    = "Failed to publish document event"
	LogMsgBlobCleanup      = "Failed to delete orphaned document file"
)

// Error messages
const (
	ErrMsgLoadInputsFailed   = "failed to load eligibility inputs: %w"
	ErrMsgDocTypeRequired    = "doc_type is required"
	ErrMsgInvalidDocStatus   = "invalid document decision %q"
	ErrMsgDocumentNotPending = "document is not pending"
	ErrMsgStoreFileFailed    = "failed to store document file: %w"
	ErrMsgCreateDocument     = "failed to create document: %w"
)

// Requirement details
const (
	DetailUnknownKind = "unknown rule kind"
)

const percentScale = 100.0
