package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/ridepay/internal/pkg/constants"
	"github.com/piresc/ridepay/internal/pkg/eventbus"
	"github.com/piresc/ridepay/internal/pkg/models"
)

var walletSubjects = map[models.EventType]string{
	models.EventWalletTopup:      constants.SubjectWalletTopup,
	models.EventWalletWithdrawal: constants.SubjectWalletWithdrawal,
	models.EventWalletTransfer:   constants.SubjectWalletTransfer,
}

// WalletGW publishes wallet events on the event bus
type WalletGW struct {
	publisher *eventbus.EventPublisher
}

// NewWalletGW creates a new wallet gateway
func NewWalletGW(publisher *eventbus.EventPublisher) *WalletGW {
	return &WalletGW{publisher: publisher}
}

// PublishWalletEvent publishes the transactions of one wallet operation
func (g *WalletGW) PublishWalletEvent(ctx context.Context, eventType models.EventType, referenceID string, txns []*models.Transaction) error {
	subject, ok := walletSubjects[eventType]
	if !ok {
		return fmt.Errorf("unsupported wallet event %s", eventType)
	}
	return g.publisher.Publish(ctx, subject, &models.Event{
		Type:         eventType,
		Transactions: txns,
		ReferenceID:  referenceID,
	})
}
