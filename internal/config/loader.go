package config

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/architeacher/svc-project-messaging/internal/ports"
	"github.com/hashicorp/vault/api"
	"github.com/kelseyhightower/envconfig"
)

const redacted = "[REDACTED]"

// Loader overlays secrets on the configuration once at start up. The result
// is never reloaded, the broker configuration stays fixed for the process lifetime.
type Loader struct {
	cfg         *ServiceConfig
	secretsRepo ports.SecretsRepository
	dumpSignal  chan os.Signal
	out         io.Writer
}

// NewLoader creates a new config loader instance.
func NewLoader(cfg *ServiceConfig, secretsRepo ports.SecretsRepository) *Loader {
	return &Loader{
		cfg:         cfg,
		secretsRepo: secretsRepo,
		dumpSignal:  make(chan os.Signal, 1),
		out:         os.Stdout,
	}
}

// WatchDumpSignal dumps the configuration on SIGUSR1 until ctx is done.
func (l *Loader) WatchDumpSignal(ctx context.Context) {
	signal.Notify(l.dumpSignal, syscall.SIGUSR1)

	go func() {
		defer signal.Stop(l.dumpSignal)

		for {
			select {
			case <-ctx.Done():
				return
			case <-l.dumpSignal:
				l.DumpConfig()
			}
		}
	}()
}

// DumpConfig outputs the current configuration as JSON, credentials redacted.
func (l *Loader) DumpConfig() {
	safe := *l.cfg
	if safe.Queue.Password != "" {
		safe.Queue.Password = redacted
	}

	configJSON, err := json.MarshalIndent(safe, "", "  ")
	if err != nil {
		fmt.Fprintf(l.out, "Error marshaling config: %v\n", err)

		return
	}

	fmt.Fprintf(l.out, "\n=== Configuration Dump ===\n%s\n=== End Configuration ===\n\n", string(configJSON))
}

// Load overlays broker secrets from the KV v2 store.
func (l *Loader) Load(ctx context.Context) error {
	if !l.cfg.SecretStorage.Enabled {
		return fmt.Errorf("secret storage is not enabled")
	}

	if err := l.authenticateVault(ctx, l.secretsRepo, l.cfg.SecretStorage); err != nil {
		return fmt.Errorf("failed to authenticate with Vault: %w", err)
	}

	data, err := l.loadSecrets(ctx)
	if err != nil {
		return fmt.Errorf("failed to load secrets from Vault: %w", err)
	}

	l.applySecretsToConfig(data)

	return nil
}

// Init config from environment variables.
func Init() (*ServiceConfig, error) {
	cfg := &ServiceConfig{}

	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service configuration: %w", err)
	}

	if len(ServiceVersion) != 0 {
		cfg.AppConfig.ServiceVersion = ServiceVersion
	}

	if len(CommitSHA) != 0 {
		cfg.AppConfig.CommitSHA = CommitSHA
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects values the worker and the publisher cannot run with.
func (c *ServiceConfig) Validate() error {
	switch {
	case strings.TrimSpace(c.Queue.QueueName) == "":
		return fmt.Errorf("invalid configuration: RABBITMQ_QUEUE_NAME must not be empty")
	case c.Queue.Port <= 0 || c.Queue.Port > 65535:
		return fmt.Errorf("invalid configuration: RABBITMQ_PORT %d out of range", c.Queue.Port)
	case c.Worker.MaxAttempts < 1:
		return fmt.Errorf("invalid configuration: WORKER_MAX_ATTEMPTS must be at least 1")
	case c.Worker.Concurrency < 1:
		return fmt.Errorf("invalid configuration: WORKER_CONCURRENCY must be at least 1")
	case c.Worker.Backoff.BaseDelay <= 0 || c.Worker.Backoff.MaxDelay < c.Worker.Backoff.BaseDelay:
		return fmt.Errorf("invalid configuration: WORKER_INITIAL_DELAY must be positive and not above WORKER_MAX_DELAY")
	}

	return nil
}

func (l *Loader) authenticateVault(ctx context.Context, client ports.SecretsRepository, config SecretStorageConfig) error {
	switch strings.ToLower(config.AuthMethod) {
	case "token":
		if config.Token == "" {
			return fmt.Errorf("token is required for token auth method")
		}
		client.SetToken(config.Token)
		return nil

	case "approle":
		if config.RoleID == "" || config.SecretID == "" {
			return fmt.Errorf("role_id and secret_id are required for approle auth method")
		}

		data := map[string]any{
			"role_id":   config.RoleID,
			"secret_id": config.SecretID,
		}

		resp, err := client.WriteWithContext(ctx, "auth/approle/login", data)
		if err != nil {
			return fmt.Errorf("failed to authenticate via approle: %w", err)
		}

		if resp == nil || resp.Auth == nil {
			return fmt.Errorf("no auth info returned from Vault")
		}

		client.SetToken(resp.Auth.ClientToken)
		return nil

	default:
		return fmt.Errorf("unsupported auth method: %s", config.AuthMethod)
	}
}

func getSecretsWithRetry(ctx context.Context, secretsRepo ports.SecretsRepository, cfg SecretStorageConfig) (*api.Secret, error) {
	path := fmt.Sprintf("apps/data/%s", cfg.MountPath)

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	var secret *api.Secret
	var err error

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		secret, err = secretsRepo.GetSecrets(ctx, path)
		if err == nil {
			break
		}

		if attempt < cfg.MaxRetries {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("failed to read from path %s: %w", path, ctx.Err())
			case <-time.After(time.Duration(attempt+1) * time.Second):
			}
		}
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read from path %s after %d retries: %w", path, cfg.MaxRetries, err)
	}

	return secret, nil
}

func (l *Loader) loadSecrets(ctx context.Context) (map[string]any, error) {
	secret, err := getSecretsWithRetry(ctx, l.secretsRepo, l.cfg.SecretStorage)
	if err != nil {
		return nil, err
	}

	if secret == nil || secret.Data == nil {
		return nil, nil
	}

	// KV v2 nests the values under "data"
	result, ok := secret.Data["data"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid secret format at path apps/data/%s, missing 'data' key", l.cfg.SecretStorage.MountPath)
	}

	return result, nil
}

// applySecretsToConfig directly from flat key-value pairs stored in Vault
func (l *Loader) applySecretsToConfig(data map[string]any) {
	for key, value := range data {
		if strValue, ok := value.(string); ok && strValue != "" {
			l.applySecretToConfig(key, strValue)
		}
	}
}

func (l *Loader) applySecretToConfig(key, value string) {
	switch key {
	case "RABBITMQ_HOST":
		l.cfg.Queue.Host = value
	case "RABBITMQ_USERNAME":
		l.cfg.Queue.Username = value
	case "RABBITMQ_PASSWORD":
		l.cfg.Queue.Password = value
	case "RABBITMQ_QUEUE_NAME":
		l.cfg.Queue.QueueName = value
	}
}
