package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/piresc/ridepay/services/wallet"
)

type referenceKey struct {
	walletID    string
	referenceID string
	category    models.TransactionCategory
	typ         models.TransactionType
}

// MemoryRepo keeps wallets in process. Writers of one wallet are serialised
// by a per-wallet lock acquired in id order.
type MemoryRepo struct {
	mu         sync.RWMutex
	wallets    map[string]*models.Wallet
	byAccount  map[string]string
	locks      map[string]chan struct{}
	txns       map[string][]*models.Transaction
	references map[referenceKey]struct{}
}

// NewMemoryRepository creates an empty in-memory wallet store
func NewMemoryRepository() *MemoryRepo {
	return &MemoryRepo{
		wallets:    make(map[string]*models.Wallet),
		byAccount:  make(map[string]string),
		locks:      make(map[string]chan struct{}),
		txns:       make(map[string][]*models.Transaction),
		references: make(map[referenceKey]struct{}),
	}
}

func (r *MemoryRepo) GetOrCreateByAccount(ctx context.Context, w *models.Wallet) (*models.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.byAccount[w.AccountID]; ok {
		c := *r.wallets[id]
		return &c, nil
	}

	stored := *w
	r.wallets[w.ID] = &stored
	r.byAccount[w.AccountID] = w.ID
	r.locks[w.ID] = make(chan struct{}, 1)

	c := stored
	return &c, nil
}

func (r *MemoryRepo) GetByAccount(ctx context.Context, accountID string) (*models.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byAccount[accountID]
	if !ok {
		return nil, wallet.ErrNotFound
	}
	c := *r.wallets[id]
	return &c, nil
}

func (r *MemoryRepo) Mutate(ctx context.Context, walletIDs []string, fn wallet.MutateFunc) error {
	ids := uniqueSorted(walletIDs)

	r.mu.RLock()
	locks := make([]chan struct{}, 0, len(ids))
	for _, id := range ids {
		l, ok := r.locks[id]
		if !ok {
			r.mu.RUnlock()
			return wallet.ErrNotFound
		}
		locks = append(locks, l)
	}
	r.mu.RUnlock()

	acquired := 0
	defer func() {
		for i := acquired - 1; i >= 0; i-- {
			<-locks[i]
		}
	}()
	for _, l := range locks {
		select {
		case l <- struct{}{}:
			acquired++
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	tx := &memoryTx{repo: r, wallets: make(map[string]*models.Wallet, len(ids))}
	r.mu.RLock()
	for _, id := range ids {
		c := *r.wallets[id]
		tx.wallets[id] = &c
	}
	r.mu.RUnlock()

	txns, err := fn(tx)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	pending := make(map[referenceKey]struct{}, len(txns))
	for _, t := range txns {
		if _, ok := tx.wallets[t.WalletID]; !ok {
			return wallet.ErrNotFound
		}
		if t.ReferenceID == "" {
			continue
		}
		key := referenceKey{t.WalletID, t.ReferenceID, t.Category, t.Type}
		if _, dup := r.references[key]; dup {
			return wallet.ErrDuplicateReference
		}
		if _, dup := pending[key]; dup {
			return wallet.ErrDuplicateReference
		}
		pending[key] = struct{}{}
	}

	for id, w := range tx.wallets {
		r.wallets[id] = w
	}
	for _, t := range txns {
		c := *t
		r.txns[t.WalletID] = append(r.txns[t.WalletID], &c)
	}
	for key := range pending {
		r.references[key] = struct{}{}
	}
	return nil
}

func (r *MemoryRepo) ListTransactions(ctx context.Context, walletID string, filter models.TransactionFilter) ([]*models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.txns[walletID]
	out := make([]*models.Transaction, 0, filter.Limit)
	// newest first
	for i := len(all) - 1 - filter.Offset; i >= 0 && len(out) < filter.Limit; i-- {
		c := *all[i]
		out = append(out, &c)
	}
	return out, nil
}

type memoryTx struct {
	repo    *MemoryRepo
	wallets map[string]*models.Wallet
}

func (tx *memoryTx) Wallet(id string) *models.Wallet {
	return tx.wallets[id]
}

func (tx *memoryTx) HasReference(walletID, referenceID string, category models.TransactionCategory, typ models.TransactionType) (bool, error) {
	tx.repo.mu.RLock()
	defer tx.repo.mu.RUnlock()
	_, ok := tx.repo.references[referenceKey{walletID, referenceID, category, typ}]
	return ok, nil
}

func uniqueSorted(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
