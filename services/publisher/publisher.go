package publisher

// Publisher broadcasts price update events to downstream consumers (alert
// and dashboard services).
type Publisher interface {
	// Publish publishes an update message keyed by brand
	Publish(brand string, message []byte) error

	// TrimStreams trims the backing streams to their maximum length
	TrimStreams() error

	// Close closes the publisher
	Close() error
}
