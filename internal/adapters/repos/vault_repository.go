package repos

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/vault/api"

	"github.com/architeacher/svc-project-messaging/internal/ports"
)

var _ ports.SecretsRepository = (*VaultRepository)(nil)

var ErrNoVaultClient = errors.New("vault client is not configured")

type (
	// VaultRepository reads the broker credentials overlay from Vault.
	VaultRepository struct {
		vaultClient *api.Client
	}
)

func NewVaultRepository(vaultClient *api.Client) *VaultRepository {
	return &VaultRepository{
		vaultClient: vaultClient,
	}
}

func (r *VaultRepository) SetToken(token string) {
	if r.vaultClient == nil {
		return
	}

	r.vaultClient.SetToken(token)
}

// GetSecrets reads path through the logical backend. A missing path yields a
// nil secret and no error.
func (r *VaultRepository) GetSecrets(ctx context.Context, path string) (*api.Secret, error) {
	if r.vaultClient == nil {
		return nil, ErrNoVaultClient
	}

	secret, err := r.vaultClient.Logical().ReadWithContext(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("vault read %s: %w", path, err)
	}

	return secret, nil
}

func (r *VaultRepository) WriteWithContext(ctx context.Context, path string, data map[string]any) (*api.Secret, error) {
	if r.vaultClient == nil {
		return nil, ErrNoVaultClient
	}

	secret, err := r.vaultClient.Logical().WriteWithContext(ctx, path, data)
	if err != nil {
		return nil, fmt.Errorf("vault write %s: %w", path, err)
	}

	return secret, nil
}
