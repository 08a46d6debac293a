package store_test

import (
	"testing"

	"github.com/saxenaaman628/proposal-voting-system/internal/store"
	"github.com/saxenaaman628/proposal-voting-system/internal/store/storetest"
)

func TestMemory(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		return store.NewMemory()
	})
}
