package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/foodhubdev/foodhub/app/cart"
	"github.com/foodhubdev/foodhub/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRecordRepo struct {
	mu      sync.Mutex
	records map[string][]byte
	getErr  error
	saveErr error
	upserts int
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: map[string][]byte{}}
}

func (f *fakeRecordRepo) Get(_ context.Context, userID string) (*models.CartRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.records[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.CartRecord{UserID: userID, Lines: data}, nil
}

func (f *fakeRecordRepo) Upsert(_ context.Context, userID string, lines []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.upserts++
	f.records[userID] = lines
	return nil
}

func (f *fakeRecordRepo) Delete(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.records, userID)
	return nil
}

type fakeLocalStore struct {
	data    []byte
	cleared bool
}

func (f *fakeLocalStore) Load() ([]byte, error) { return f.data, nil }
func (f *fakeLocalStore) Save(data []byte) error {
	f.data = data
	return nil
}
func (f *fakeLocalStore) Clear() error {
	f.data = nil
	f.cleared = true
	return nil
}

type fakeSnapshots struct {
	snapshot *cart.Snapshot
	err      error
}

func (f *fakeSnapshots) Snapshot(context.Context) (*cart.Snapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshot, nil
}

func menuSnapshot() *cart.Snapshot {
	s := cart.NewSnapshot(
		cart.Item{ID: 1, Name: "Margherita Pizza", Price: decimal.NewFromInt(299), Category: "Italian"},
		cart.Item{ID: 2, Name: "Paneer Tikka", Price: decimal.NewFromInt(249), Category: "Indian"},
	)
	s.SetAdjustment("Italian", "extra_toppings", "olives", decimal.NewFromInt(20))
	return s
}

func sessionCartBytes(t *testing.T) []byte {
	t.Helper()
	c := cart.Cart{}.AddLine(cart.Item{ID: 1, Price: decimal.NewFromInt(299)}, 2, nil)
	data, err := cart.Encode(c)
	require.NoError(t, err)
	return data
}

func TestLoadPromotesLocalCartOnFirstSignIn(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewCartService(repo, &fakeSnapshots{snapshot: menuSnapshot()})
	local := &fakeLocalStore{data: sessionCartBytes(t)}

	loaded, err := svc.Load(context.Background(), local, "user-1")
	require.NoError(t, err)

	require.Len(t, loaded.Lines, 1)
	assert.Equal(t, 2, loaded.Lines[0].Quantity)
	assert.Equal(t, "Margherita Pizza", loaded.Lines[0].Item.Name, "promoted line reconciled against catalog")

	assert.Contains(t, repo.records, "user-1", "local cart written to the remote store")
	assert.True(t, local.cleared, "session cart cleared after promotion")
}

func TestLoadPrefersExistingRemoteCart(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewCartService(repo, &fakeSnapshots{snapshot: menuSnapshot()})

	remote := cart.Cart{}.AddLine(cart.Item{ID: 2, Price: decimal.NewFromInt(249)}, 1, nil)
	data, err := cart.Encode(remote)
	require.NoError(t, err)
	repo.records["user-1"] = data

	local := &fakeLocalStore{data: sessionCartBytes(t)}
	loaded, err := svc.Load(context.Background(), local, "user-1")
	require.NoError(t, err)

	require.Len(t, loaded.Lines, 1)
	assert.Equal(t, int64(2), loaded.Lines[0].Item.ID, "remote record wins over the stale session cart")
	assert.False(t, local.cleared, "no promotion when a record already exists")
}

func TestLoadDegradesToLocalOnRemoteFailure(t *testing.T) {
	repo := newFakeRecordRepo()
	repo.getErr = errors.New("connection refused")
	svc := NewCartService(repo, &fakeSnapshots{snapshot: menuSnapshot()})
	local := &fakeLocalStore{data: sessionCartBytes(t)}

	loaded, err := svc.Load(context.Background(), local, "user-1")
	require.NoError(t, err)

	require.Len(t, loaded.Lines, 1)
	assert.Equal(t, int64(1), loaded.Lines[0].Item.ID)
}

func TestLoadCorruptRecordYieldsEmptyCartWithoutOverwrite(t *testing.T) {
	repo := newFakeRecordRepo()
	repo.records["user-1"] = []byte(`{not json`)
	svc := NewCartService(repo, &fakeSnapshots{snapshot: menuSnapshot()})

	loaded, err := svc.Load(context.Background(), &fakeLocalStore{}, "user-1")
	require.NoError(t, err)

	assert.True(t, loaded.IsEmpty())
	assert.Equal(t, []byte(`{not json`), repo.records["user-1"], "corrupt payload left untouched")
}

func TestLoadCatalogOutageYieldsEmptyCart(t *testing.T) {
	repo := newFakeRecordRepo()
	repo.records["user-1"] = sessionCartBytes(t)
	svc := NewCartService(repo, &fakeSnapshots{err: errors.New("catalog down")})

	loaded, err := svc.Load(context.Background(), &fakeLocalStore{}, "user-1")
	require.NoError(t, err)

	assert.True(t, loaded.IsEmpty())
	assert.Contains(t, repo.records, "user-1", "stored record survives the outage")
}

func TestMutationsFailDuringCatalogOutage(t *testing.T) {
	repo := newFakeRecordRepo()
	before := sessionCartBytes(t)
	repo.records["user-1"] = before
	svc := NewCartService(repo, &fakeSnapshots{err: errors.New("catalog down")})

	item := cart.Item{ID: 2, Price: decimal.NewFromInt(249)}
	_, err := svc.AddItem(context.Background(), &fakeLocalStore{}, "user-1", item, 1, nil)
	assert.Error(t, err)

	_, err = svc.SetQuantity(context.Background(), &fakeLocalStore{}, "user-1", "some-line", 3)
	assert.Error(t, err)

	assert.Equal(t, before, repo.records["user-1"], "record not rebuilt from an empty cart")
}

func TestAddItemPersistsToActiveStore(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewCartService(repo, &fakeSnapshots{snapshot: menuSnapshot()})
	local := &fakeLocalStore{}

	item := cart.Item{ID: 1, Name: "Margherita Pizza", Price: decimal.NewFromInt(299), Category: "Italian"}

	updated, err := svc.AddItem(context.Background(), local, "", item, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.ItemCount())
	assert.NotEmpty(t, local.data, "anonymous cart saved to the session store")
	assert.Empty(t, repo.records, "no remote write for anonymous visitors")

	updated, err = svc.AddItem(context.Background(), local, "user-1", item, 1, nil)
	require.NoError(t, err)
	assert.Contains(t, repo.records, "user-1")
	assert.Equal(t, 2, updated.ItemCount(), "promoted session line merged with the new plain line")
}

func TestPersistFailureLeavesCartUsable(t *testing.T) {
	repo := newFakeRecordRepo()
	repo.saveErr = errors.New("deadlock")
	svc := NewCartService(repo, &fakeSnapshots{snapshot: menuSnapshot()})

	item := cart.Item{ID: 1, Price: decimal.NewFromInt(299)}
	c := cart.Cart{}.AddLine(item, 1, nil)

	err := svc.Persist(context.Background(), &fakeLocalStore{}, "user-1", c)
	assert.Error(t, err)
	assert.Equal(t, 1, c.ItemCount(), "in-memory cart unaffected by the failed write")
}

func TestConcurrentPersistsSerializePerOwner(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewCartService(repo, &fakeSnapshots{snapshot: menuSnapshot()})

	item := cart.Item{ID: 1, Price: decimal.NewFromInt(299)}
	c := cart.Cart{}.AddLine(item, 1, nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.Persist(context.Background(), &fakeLocalStore{}, "user-1", c)
		}()
	}
	wg.Wait()

	assert.Equal(t, 16, repo.upserts)
	decoded, err := cart.Decode(repo.records["user-1"])
	require.NoError(t, err)
	assert.Equal(t, 1, decoded.ItemCount())
}

func TestClearEmptiesBothStores(t *testing.T) {
	repo := newFakeRecordRepo()
	repo.records["user-1"] = sessionCartBytes(t)
	svc := NewCartService(repo, &fakeSnapshots{snapshot: menuSnapshot()})
	local := &fakeLocalStore{data: sessionCartBytes(t)}

	var published *cart.Cart
	svc.Notifier().Subscribe(func(c cart.Cart) { published = &c })

	require.NoError(t, svc.Clear(context.Background(), local, "user-1"))

	assert.NotContains(t, repo.records, "user-1")
	assert.True(t, local.cleared)
	require.NotNil(t, published, "subscribers told about the cleared cart")
	assert.True(t, published.IsEmpty())
}
