package notify

import "time"

// Stream buffers
const (
	BroadcastBufferSize = 100
	ClientBufferSize    = 32
	KeepaliveInterval   = 30 * time.Second
)

// Stream event types that are not domain events
const (
	StreamTypeConnected = "connected"
	StreamTypeKeepalive = "keepalive"
)

// Discord embed colors
const (
	ColorSuccess = 0x2ECC71
	ColorWarning = 0xF1C40F
	ColorInfo    = 0x3498DB
	FooterText   = "Impulsa Guayaquil"
)

// Log messages
const (
	LogMsgSubscribed       = "Notification subscriber registered"
	LogMsgDeliveryFailed   = "Failed to deliver notification"
	LogMsgBadPayload       = "Ignoring event with unexpected payload"
	LogMsgStreamConnected  = "Notification stream connected"
	LogMsgStreamClosed     = "Notification stream disconnected"
	LogMsgStreamWriteError = "Failed to write notification stream"
	LogMsgDropped          = "Notification dropped, buffer full"
)

// Error messages
const (
	ErrMsgRedisAddrRequired = "redis address is required"
	ErrMsgRedisPing         = "redis ping: %w"
	ErrMsgWebhookRequired   = "discord webhook id and token are required"
	ErrMsgStreamUnsupported = "streaming not supported"
)
