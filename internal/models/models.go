// Package models defines the core data structures used throughout the application.
package models

import (
	"time"
)

// AuthorityKind distinguishes the two classes of impersonated authorities.
type AuthorityKind string

const (
	KindBank AuthorityKind = "BANK"
	KindGovt AuthorityKind = "GOVT"
)

// Official contact channels an authority actually uses.
const (
	ChannelSMS     = "SMS"
	ChannelEmail   = "EMAIL"
	ChannelApp     = "APP"
	ChannelCall    = "CALL"
	ChannelNotice  = "NOTICE"
	ChannelWebsite = "WEBSITE"
)

// AuthorityProfile is an immutable snapshot of a catalogue entry: what a bank or
// government body looks like and what it would never legitimately ask for.
type AuthorityProfile struct {
	Name             string        `json:"name"`
	Kind             AuthorityKind `json:"kind"`
	OfficialDomains  []string      `json:"official_domains"`
	OfficialChannels []string      `json:"official_channels"`
	NeverAsks        []string      `json:"never_asks"`
	NeverRequests    []string      `json:"never_requests"`
	SiteTitle        string        `json:"site_title,omitempty"`
	LastRefreshed    time.Time     `json:"last_refreshed"`
}

// ExtractedIntelligence holds structured identifiers pulled from a single message.
// Every list is first-seen deduplicated and capped at five entries.
type ExtractedIntelligence struct {
	PaymentHandles     []string          `json:"paymentHandles"`
	PhoneNumbers       []string          `json:"phoneNumbers"`
	Links              []string          `json:"links"`
	AccountLikeNumbers []string          `json:"accountLikeNumbers"`
	SuspiciousKeywords []string          `json:"suspiciousKeywords"`
	AuthorityProfile   *AuthorityProfile `json:"authorityProfile"`
}

// DetectionVerdict is the per-message classification result. Category is empty
// unless the verdict is positive.
type DetectionVerdict struct {
	IsScam       bool                  `json:"isScam"`
	Category     string                `json:"category,omitempty"`
	Score        int                   `json:"score"`
	Intelligence ExtractedIntelligence `json:"intelligence"`
}

// Message is a single inbound message from the boundary. Only Text feeds the
// detection engine; sender and timestamp are carried for the caller's benefit.
type Message struct {
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// MessageRequest is the request body for the honeypot message endpoint.
type MessageRequest struct {
	SessionID           string            `json:"sessionId,omitempty"`
	Message             Message           `json:"message"`
	ConversationHistory []Message         `json:"conversationHistory,omitempty"`
	Metadata            map[string]string `json:"metadata,omitempty"`
}

// MessageResponse is the API response for a processed message.
type MessageResponse struct {
	Status                string                `json:"status"`
	Reply                 string                `json:"reply"`
	ScamDetected          bool                  `json:"scamDetected"`
	ScamType              *string               `json:"scamType"`
	ScamScore             int                   `json:"scamScore"`
	ExtractedIntelligence ExtractedIntelligence `json:"extractedIntelligence"`
}

// APIKey represents an API key for authentication.
type APIKey struct {
	ID                string     `json:"id"`
	KeyHash           string     `json:"-"` // Never expose
	Name              string     `json:"name"`
	RequestsPerMinute int        `json:"requests_per_minute"`
	CreatedAt         time.Time  `json:"created_at"`
	LastUsedAt        *time.Time `json:"last_used_at,omitempty"`
}

// AuditLog represents an API request audit entry.
type AuditLog struct {
	ID           string    `json:"id"`
	APIKeyID     string    `json:"api_key_id"`
	Endpoint     string    `json:"endpoint"`
	Method       string    `json:"method"`
	RequestSize  int64     `json:"request_size"`
	ResponseCode int       `json:"response_code"`
	DurationMs   int64     `json:"duration_ms"`
	Timestamp    time.Time `json:"timestamp"`
}
