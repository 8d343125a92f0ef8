package wallet

import (
	"context"

	"github.com/piresc/ridepay/internal/pkg/models"
)

// WalletGW publishes wallet events for collaborators
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/ridepay/services/wallet WalletGW
type WalletGW interface {
	PublishWalletEvent(ctx context.Context, eventType models.EventType, referenceID string, txns []*models.Transaction) error
}
