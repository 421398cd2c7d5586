package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/foodhubdev/foodhub/app/cart"
	"github.com/foodhubdev/foodhub/app/repositories"
	"gorm.io/gorm"
)

// LocalCartStore is the anonymous cart's home, backed by the visitor's session
// cookie. Implementations are built per request.
type LocalCartStore interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Clear() error
}

// SnapshotSource yields the catalog view carts are reconciled against.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (*cart.Snapshot, error)
}

// CartService owns cart persistence and the local-to-remote promotion that
// happens on sign-in. Signed-in carts live in the cart record table keyed by
// user id; anonymous carts live in the session cookie. Writes for one owner
// are serialized so concurrent requests cannot interleave stale encodes.
type CartService struct {
	recordRepo repositories.CartRecordRepositoryImpl
	snapshots  SnapshotSource
	notifier   *cart.Notifier

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewCartService(recordRepo repositories.CartRecordRepositoryImpl, snapshots SnapshotSource) *CartService {
	return &CartService{
		recordRepo: recordRepo,
		snapshots:  snapshots,
		notifier:   cart.NewNotifier(),
		locks:      make(map[string]*sync.Mutex),
	}
}

// Notifier exposes the change feed so views can subscribe to cart updates.
func (s *CartService) Notifier() *cart.Notifier {
	return s.notifier
}

func (s *CartService) ownerLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

// Load returns the owner's cart reconciled against the current catalog.
//
// For a signed-in user the remote record wins when it exists. When it does
// not, the local cart is promoted: persisted remotely once and cleared from
// the session. A corrupt record yields an empty cart without overwriting the
// stored payload, a remote read failure degrades to the local cart, and a
// catalog outage yields an empty cart, so the storefront keeps working. None
// of these soft failures touch the persisted record.
func (s *CartService) Load(ctx context.Context, local LocalCartStore, userID string) (cart.Cart, error) {
	loaded, err := s.load(ctx, local, userID)
	if err != nil {
		log.Printf("CartService.Load: catalog unavailable, serving empty cart: %v", err)
		return cart.Cart{}, nil
	}
	return loaded, nil
}

// load is the strict variant behind every mutation: a catalog outage must
// fail the operation, otherwise the follow-up persist would rebuild the
// owner's cart from nothing and clobber the stored record.
func (s *CartService) load(ctx context.Context, local LocalCartStore, userID string) (cart.Cart, error) {
	snapshot, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return cart.Cart{}, fmt.Errorf("failed to load catalog snapshot: %w", err)
	}

	if userID == "" {
		return s.loadLocal(local, snapshot), nil
	}

	record, err := s.recordRepo.Get(ctx, userID)
	switch {
	case err == nil:
		decoded, decErr := cart.Decode(record.Lines)
		if decErr != nil {
			log.Printf("CartService.Load: corrupt cart record for user %s: %v", userID, decErr)
			return cart.Cart{}, nil
		}
		return cart.Reconcile(decoded, snapshot), nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		return s.promote(ctx, local, userID, snapshot)

	default:
		log.Printf("CartService.Load: remote cart unavailable for user %s: %v", userID, err)
		return s.loadLocal(local, snapshot), nil
	}
}

func (s *CartService) loadLocal(local LocalCartStore, snapshot *cart.Snapshot) cart.Cart {
	data, err := local.Load()
	if err != nil {
		log.Printf("CartService.loadLocal: %v", err)
		return cart.Cart{}
	}
	decoded, err := cart.Decode(data)
	if err != nil {
		log.Printf("CartService.loadLocal: corrupt session cart: %v", err)
		return cart.Cart{}
	}
	return cart.Reconcile(decoded, snapshot)
}

// promote moves the anonymous cart into the user's remote record. It runs only
// when no record exists yet, so an established remote cart is never clobbered
// by a stale session.
func (s *CartService) promote(ctx context.Context, local LocalCartStore, userID string, snapshot *cart.Snapshot) (cart.Cart, error) {
	reconciled := s.loadLocal(local, snapshot)
	if err := s.persistRemote(ctx, userID, reconciled); err != nil {
		log.Printf("CartService.promote: failed to persist promoted cart for user %s: %v", userID, err)
		return reconciled, nil
	}
	if err := local.Clear(); err != nil {
		log.Printf("CartService.promote: failed to clear session cart: %v", err)
	}
	return reconciled, nil
}

// Persist writes the cart to the owner's active store and publishes the change
// to subscribers. A persist failure is returned to the caller but the
// in-memory cart stays valid.
func (s *CartService) Persist(ctx context.Context, local LocalCartStore, userID string, c cart.Cart) error {
	if userID != "" {
		if err := s.persistRemote(ctx, userID, c); err != nil {
			return err
		}
	} else {
		data, err := cart.Encode(c)
		if err != nil {
			return err
		}
		if err := local.Save(data); err != nil {
			return fmt.Errorf("failed to save session cart: %w", err)
		}
	}
	s.notifier.Publish(c)
	return nil
}

func (s *CartService) persistRemote(ctx context.Context, userID string, c cart.Cart) error {
	data, err := cart.Encode(c)
	if err != nil {
		return err
	}

	lock := s.ownerLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.recordRepo.Upsert(ctx, userID, data); err != nil {
		return fmt.Errorf("failed to persist cart for user %s: %w", userID, err)
	}
	return nil
}

// AddItem loads the owner's cart, applies the line identity rule and persists
// the result. The item and customization must already be resolved against the
// catalog.
func (s *CartService) AddItem(ctx context.Context, local LocalCartStore, userID string, item cart.Item, quantity int, customization *cart.Customization) (cart.Cart, error) {
	current, err := s.load(ctx, local, userID)
	if err != nil {
		return cart.Cart{}, err
	}
	updated := current.AddLine(item, quantity, customization)
	if err := s.Persist(ctx, local, userID, updated); err != nil {
		return cart.Cart{}, err
	}
	return updated, nil
}

// SetQuantity updates one line by its synthetic id; a quantity below 1 removes
// the line.
func (s *CartService) SetQuantity(ctx context.Context, local LocalCartStore, userID, lineID string, quantity int) (cart.Cart, error) {
	current, err := s.load(ctx, local, userID)
	if err != nil {
		return cart.Cart{}, err
	}
	updated := current.SetQuantity(lineID, quantity)
	if err := s.Persist(ctx, local, userID, updated); err != nil {
		return cart.Cart{}, err
	}
	return updated, nil
}

// RemoveLine deletes one line by its synthetic id.
func (s *CartService) RemoveLine(ctx context.Context, local LocalCartStore, userID, lineID string) (cart.Cart, error) {
	current, err := s.load(ctx, local, userID)
	if err != nil {
		return cart.Cart{}, err
	}
	updated := current.RemoveLine(lineID)
	if err := s.Persist(ctx, local, userID, updated); err != nil {
		return cart.Cart{}, err
	}
	return updated, nil
}

// Clear empties the owner's cart in both stores.
func (s *CartService) Clear(ctx context.Context, local LocalCartStore, userID string) error {
	if userID != "" {
		lock := s.ownerLock(userID)
		lock.Lock()
		err := s.recordRepo.Delete(ctx, userID)
		lock.Unlock()
		if err != nil {
			return fmt.Errorf("failed to clear cart for user %s: %w", userID, err)
		}
	}
	if err := local.Clear(); err != nil {
		return fmt.Errorf("failed to clear session cart: %w", err)
	}
	s.notifier.Publish(cart.Cart{})
	return nil
}
