package config

import "time"

const defaultPort = 8080

const defaultLogLevel = "info"

var defaultBackend = Backend{
	BaseURL: "http://localhost:5000/api",
	Timeout: 10 * time.Second,
}

// MaxAttempts of 1 means the gateway does not retry.
var defaultGateway = Gateway{
	MaxAttempts: 1,
	BaseDelay:   150 * time.Millisecond,
	MaxDelay:    2 * time.Second,
}

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "partner_console",
}

var defaultKafka = Kafka{
	Topic:   "delivery-status-changed",
	GroupID: "partner-history-worker",
}

var defaultDelivery = Delivery{
	RemovalDelay: 2 * time.Second,
}

var defaultRateLimit = RateLimit{
	Enabled: true,
	Rate:    2,
	Burst:   5,
	TTL:     10 * time.Minute,
	MaxKeys: 1024,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultBackend returns the default backend settings.
func DefaultBackend() Backend {
	return defaultBackend
}

// DefaultGateway returns the default gateway retry settings.
func DefaultGateway() Gateway {
	return defaultGateway
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultKafka returns the default Kafka settings (no brokers).
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultDelivery returns the default delivery board settings.
func DefaultDelivery() Delivery {
	return defaultDelivery
}

// DefaultRateLimit returns the default action throttle settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
