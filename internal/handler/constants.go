package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

// RetryAfterSeconds is sent with every 429 response.
const RetryAfterSeconds = "60"

// maxPublishBodyBytes bounds publish request bodies. Articles are capped at
// 20000 characters by validation; this leaves room for multi-byte text.
const maxPublishBodyBytes = 128 * 1024
