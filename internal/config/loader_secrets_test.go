package config_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hashicorp/vault/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architeacher/svc-project-messaging/internal/config"
	"github.com/architeacher/svc-project-messaging/internal/mocks"
)

func newVaultEnabledConfig(authMethod string) *config.ServiceConfig {
	return &config.ServiceConfig{
		SecretStorage: config.SecretStorageConfig{
			Enabled:    true,
			AuthMethod: authMethod,
			Token:      "root-token",
			RoleID:     "role",
			SecretID:   "secret",
			MountPath:  "svc-project-messaging",
			Timeout:    time.Second,
		},
		Queue: config.QueueConfig{
			Host:      "rabbitmq",
			Username:  "guest",
			Password:  "guest",
			QueueName: "my_queue",
		},
	}
}

func kvSecret(data map[string]any) *api.Secret {
	return &api.Secret{
		Data: map[string]any{
			"data": data,
		},
	}
}

func TestLoader_Load_OverlaysBrokerSecrets(t *testing.T) {
	t.Parallel()

	cfg := newVaultEnabledConfig("token")

	secretsRepo := &mocks.FakeSecretsRepository{}
	secretsRepo.GetSecretsReturns(kvSecret(map[string]any{
		"RABBITMQ_HOST":       "vault-broker",
		"RABBITMQ_USERNAME":   "svc-user",
		"RABBITMQ_PASSWORD":   "from-vault",
		"RABBITMQ_QUEUE_NAME": "orders",
		"UNRELATED_KEY":       "ignored",
		"RABBITMQ_PORT":       1234,
	}), nil)

	loader := config.NewLoader(cfg, secretsRepo)

	require.NoError(t, loader.Load(context.Background()))

	require.Equal(t, 1, secretsRepo.SetTokenCallCount())
	assert.Equal(t, "root-token", secretsRepo.SetTokenArgsForCall(0))

	_, path := secretsRepo.GetSecretsArgsForCall(0)
	assert.Equal(t, "apps/data/svc-project-messaging", path)

	assert.Equal(t, "vault-broker", cfg.Queue.Host)
	assert.Equal(t, "svc-user", cfg.Queue.Username)
	assert.Equal(t, "from-vault", cfg.Queue.Password)
	assert.Equal(t, "orders", cfg.Queue.QueueName)
}

func TestLoader_Load_AppRole(t *testing.T) {
	t.Parallel()

	cfg := newVaultEnabledConfig("approle")

	secretsRepo := &mocks.FakeSecretsRepository{}
	secretsRepo.WriteWithContextReturns(&api.Secret{
		Auth: &api.SecretAuth{ClientToken: "approle-token"},
	}, nil)
	secretsRepo.GetSecretsReturns(kvSecret(map[string]any{}), nil)

	loader := config.NewLoader(cfg, secretsRepo)

	require.NoError(t, loader.Load(context.Background()))

	_, path, data := secretsRepo.WriteWithContextArgsForCall(0)
	assert.Equal(t, "auth/approle/login", path)
	assert.Equal(t, "role", data["role_id"])
	assert.Equal(t, "secret", data["secret_id"])

	require.Equal(t, 1, secretsRepo.SetTokenCallCount())
	assert.Equal(t, "approle-token", secretsRepo.SetTokenArgsForCall(0))
}

func TestLoader_Load_Failures(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		mutate func(cfg *config.ServiceConfig)
		setup  func(repo *mocks.FakeSecretsRepository)
	}{
		{
			name:   "secret storage disabled",
			mutate: func(cfg *config.ServiceConfig) { cfg.SecretStorage.Enabled = false },
		},
		{
			name:   "unsupported auth method",
			mutate: func(cfg *config.ServiceConfig) { cfg.SecretStorage.AuthMethod = "kerberos" },
		},
		{
			name:   "missing token",
			mutate: func(cfg *config.ServiceConfig) { cfg.SecretStorage.Token = "" },
		},
		{
			name: "vault unreachable",
			setup: func(repo *mocks.FakeSecretsRepository) {
				repo.GetSecretsReturns(nil, errors.New("connection refused"))
			},
		},
		{
			name: "not a kv v2 secret",
			setup: func(repo *mocks.FakeSecretsRepository) {
				repo.GetSecretsReturns(&api.Secret{Data: map[string]any{"RABBITMQ_HOST": "flat"}}, nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := newVaultEnabledConfig("token")
			if tc.mutate != nil {
				tc.mutate(cfg)
			}

			secretsRepo := &mocks.FakeSecretsRepository{}
			if tc.setup != nil {
				tc.setup(secretsRepo)
			}

			err := config.NewLoader(cfg, secretsRepo).Load(context.Background())
			assert.Error(t, err)
			assert.Equal(t, "rabbitmq", cfg.Queue.Host)
		})
	}
}
