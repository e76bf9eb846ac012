package queue

import (
	"context"
	"net"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	DefaultPort           = 5672
	DefaultQueueName      = "my_queue"
	defaultConnectTimeout = 10 * time.Second
	defaultHeartbeat      = 10 * time.Second
)

// Config is used to establish a connection with a RabbitMQ server and to
// declare the single durable queue every publish and consume goes through.
type Config struct {
	Scheme   string
	Username string
	Password string
	Host     string
	Port     int
	Vhost    string

	QueueName      string
	ConnectionName string
	ConnectTimeout time.Duration
	Heartbeat      time.Duration
}

func (cfg Config) withDefaults() Config {
	if cfg.Scheme == "" {
		cfg.Scheme = "amqp"
	}

	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}

	if cfg.Vhost == "" {
		cfg.Vhost = "/"
	}

	if cfg.QueueName == "" {
		cfg.QueueName = DefaultQueueName
	}

	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = defaultConnectTimeout
	}

	if cfg.Heartbeat <= 0 {
		cfg.Heartbeat = defaultHeartbeat
	}

	return cfg
}

func (cfg Config) amqpConfig(ctx context.Context) amqp.Config {
	props := amqp.NewConnectionProperties()
	if cfg.ConnectionName != "" {
		props.SetClientConnectionName(cfg.ConnectionName)
	}

	return amqp.Config{
		Heartbeat:  cfg.Heartbeat,
		Locale:     "en_US",
		Dial:       contextDial(ctx, cfg.ConnectTimeout),
		Properties: props,
	}
}

// contextDial behaves like amqp.DefaultDial but also gives up when ctx is done.
func contextDial(ctx context.Context, timeout time.Duration) func(network, addr string) (net.Conn, error) {
	return func(network, addr string) (net.Conn, error) {
		dialer := &net.Dialer{Timeout: timeout}

		conn, err := dialer.DialContext(ctx, network, addr)
		if err != nil {
			return nil, err
		}

		// cleared by the client once the AMQP handshake completes
		deadline := time.Now().Add(timeout)
		if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
			deadline = ctxDeadline
		}

		if err := conn.SetDeadline(deadline); err != nil {
			_ = conn.Close()

			return nil, err
		}

		return conn, nil
	}
}

func getURL(cfg Config) string {
	uri := amqp.URI{
		Scheme:   cfg.Scheme,
		Username: cfg.Username,
		Password: cfg.Password,
		Host:     cfg.Host,
		Port:     cfg.Port,
		Vhost:    cfg.Vhost,
	}

	return uri.String()
}

// redactedURL is the connection URL safe for logs.
func redactedURL(cfg Config) string {
	if cfg.Password == "" {
		return getURL(cfg)
	}

	cfg.Password = "xxxxx"

	return getURL(cfg)
}
