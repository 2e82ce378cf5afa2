package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"go-salon-api/internal/model"
	"go-salon-api/internal/store"
)

func newTestCartService(t *testing.T) *CartService {
	t.Helper()

	docs, err := store.New(t.TempDir())
	require.NoError(t, err)

	return NewCartService(docs)
}

func TestCartAddMergesExistingLine(t *testing.T) {
	t.Parallel()

	svc := newTestCartService(t)

	_, err := svc.Add(model.AddCartItemRequest{ID: "X", Name: "Warme Deken", Price: "29.99", Qty: 1})
	require.NoError(t, err)

	cart, err := svc.Add(model.AddCartItemRequest{ID: "X", Qty: 2})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	require.Equal(t, 3, cart.Items[0].Qty)
	require.Equal(t, "Warme Deken", cart.Items[0].Name)
}

func TestCartAddDefaultsQuantityToOne(t *testing.T) {
	t.Parallel()

	svc := newTestCartService(t)

	cart, err := svc.Add(model.AddCartItemRequest{ID: "X"})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 1, cart.Items[0].Qty)
}

func TestConcurrentAddsDoNotLoseUpdates(t *testing.T) {
	t.Parallel()

	svc := newTestCartService(t)

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Add(model.AddCartItemRequest{ID: "X", Qty: 1})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	cart, err := svc.Get()
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 2, cart.Items[0].Qty)
}

func TestCartRemoveAndClear(t *testing.T) {
	t.Parallel()

	svc := newTestCartService(t)

	_, err := svc.Add(model.AddCartItemRequest{ID: "X", Qty: 1})
	require.NoError(t, err)
	_, err = svc.Add(model.AddCartItemRequest{ID: "Y", Qty: 1})
	require.NoError(t, err)

	cart, err := svc.Remove("X")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, "Y", cart.Items[0].ID)

	cart, err = svc.Clear()
	require.NoError(t, err)
	require.Empty(t, cart.Items)
}
