package config

import "time"

// Config holds application configuration.
type Config struct {
	DatabaseURL string        `env:"DATABASE_URL"`
	ListenAddr  string        `env:"LISTEN_ADDR" envDefault:":8080"`
	BatchSize   uint          `env:"BATCH_SIZE" envDefault:"50"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`

	RecentlyTouchedTTL time.Duration `env:"RECENTLY_TOUCHED_TTL" envDefault:"5m"`
	AutofixNoticeTTL   time.Duration `env:"AUTOFIX_NOTICE_TTL" envDefault:"10s"`
	RestoreWindow      time.Duration `env:"RESTORE_WINDOW" envDefault:"168h"`
	PurgeAfter         time.Duration `env:"PURGE_AFTER" envDefault:"168h"`

	RabbitMQ    RabbitMQ
	WooCommerce WooCommerce
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL        string `env:"RABBITMQ_URL"`
	Exchange   string `env:"RABBITMQ_EXCHANGE" envDefault:"catalog-sync-ex"`
	Queue      string `env:"RABBITMQ_QUEUE" envDefault:"catalog-sync.commands"`
	RoutingKey string `env:"RABBITMQ_ROUTING_KEY" envDefault:"catalog-sync.commands"`
}

// WooCommerce holds storefront REST API configuration.
type WooCommerce struct {
	BaseURL        string `env:"WOO_BASE_URL"`
	ConsumerKey    string `env:"WOO_CONSUMER_KEY"`
	ConsumerSecret string `env:"WOO_CONSUMER_SECRET"`
}
