package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeNetwork represents page fetch and rendering errors
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeParsing represents HTML parsing errors
	ErrorTypeParsing ErrorType = "parsing"
	// ErrorTypeExtraction represents a page where no admissible price was found
	ErrorTypeExtraction ErrorType = "extraction"
	// ErrorTypeStorage represents database errors
	ErrorTypeStorage ErrorType = "storage"
	// ErrorTypePublisher represents publisher-related errors
	ErrorTypePublisher ErrorType = "publisher"
	// ErrorTypeConfiguration represents a brand with no policy or selector table
	ErrorTypeConfiguration ErrorType = "configuration"
)

// ScrapeError represents a scrape-specific error
type ScrapeError struct {
	Type    ErrorType
	Brand   string
	Message string
	Err     error
	Time    time.Time
}

// Error implements the error interface
func (e *ScrapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Brand, e.Message, e.Err)
	}
	if e.Brand == "" {
		return fmt.Sprintf("[%s] %s", e.Type, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Brand, e.Message)
}

// Unwrap returns the underlying error
func (e *ScrapeError) Unwrap() error {
	return e.Err
}

// IsRetryable returns true if a later scrape run may succeed
func (e *ScrapeError) IsRetryable() bool {
	switch e.Type {
	case ErrorTypeNetwork:
		return true
	case ErrorTypeExtraction:
		return true
	case ErrorTypeConfiguration:
		return false
	default:
		return false
	}
}

// New creates a new ScrapeError
func New(errType ErrorType, brand, message string, err error) *ScrapeError {
	return &ScrapeError{
		Type:    errType,
		Brand:   brand,
		Message: message,
		Err:     err,
		Time:    time.Now(),
	}
}

// NewNetwork creates a new network error
func NewNetwork(brand, message string, err error) *ScrapeError {
	return New(ErrorTypeNetwork, brand, message, err)
}

// NewParsing creates a new parsing error
func NewParsing(brand, message string, err error) *ScrapeError {
	return New(ErrorTypeParsing, brand, message, err)
}

// NewExtraction creates a new extraction error
func NewExtraction(brand, message string) *ScrapeError {
	return New(ErrorTypeExtraction, brand, message, nil)
}

// NewStorage creates a new storage error
func NewStorage(message string, err error) *ScrapeError {
	return New(ErrorTypeStorage, "", message, err)
}

// NewPublisher creates a new publisher error
func NewPublisher(brand, message string, err error) *ScrapeError {
	return New(ErrorTypePublisher, brand, message, err)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *ScrapeError {
	return New(ErrorTypeConfiguration, "", message, err)
}
