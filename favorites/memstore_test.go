package favorites

import (
	"context"
	"testing"

	"github.com/go-test/deep"

	brabant "github.com/frankokule97/brabant-events"
	"github.com/frankokule97/brabant-events/errors"
)

func TestMemStoreToggle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemStore()

	on, err := store.Toggle(ctx, "dev-1", "123")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !on {
		t.Fatal("first toggle should add")
	}

	has, err := store.Contains(ctx, "dev-1", "123")
	if err != nil {
		t.Fatal(err)
	}
	if !has {
		t.Fatal("contains after add = false")
	}

	off, err := store.Toggle(ctx, "dev-1", "123")
	if err != nil {
		t.Fatal(err)
	}
	if off {
		t.Fatal("second toggle should remove")
	}

	has, err = store.Contains(ctx, "dev-1", "123")
	if err != nil {
		t.Fatal(err)
	}
	if has {
		t.Fatal("contains after remove = true")
	}
}

func TestMemStoreDevicesAreIsolated(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemStore()

	if _, err := store.Toggle(ctx, "dev-1", "a"); err != nil {
		t.Fatal(err)
	}

	has, err := store.Contains(ctx, "dev-2", "a")
	if err != nil {
		t.Fatal(err)
	}
	if has {
		t.Fatal("favorite leaked between devices")
	}
}

func TestMemStoreList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemStore()

	for _, id := range []brabant.EventID{"c", "a", "b"} {
		if _, err := store.Toggle(ctx, "dev-1", id); err != nil {
			t.Fatal(err)
		}
	}

	ids, err := store.List(ctx, "dev-1")
	if err != nil {
		t.Fatal(err)
	}
	if diff := deep.Equal(ids, []brabant.EventID{"a", "b", "c"}); diff != nil {
		t.Fatalf("list: %v", diff)
	}
}

func TestMemStoreRequiresDevice(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemStore()

	if _, err := store.Toggle(ctx, "", "123"); !errors.Is(errors.Invalid, err) {
		t.Fatalf("toggle without device = %v, want Invalid", err)
	}
	if _, err := store.Contains(ctx, "", "123"); !errors.Is(errors.Invalid, err) {
		t.Fatalf("contains without device = %v, want Invalid", err)
	}
	if _, err := store.List(ctx, ""); !errors.Is(errors.Invalid, err) {
		t.Fatalf("list without device = %v, want Invalid", err)
	}
}
