package store

import (
	"errors"
	"testing"
)

func TestCreateUserAndCheckPassword(t *testing.T) {
	users := NewUserStore(newTestDB(t))

	created, err := users.Create("mina", "mina@example.com", "secret123")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected persisted user to have an id")
	}

	found, err := users.FindByUsername("mina")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !found.CheckPassword("secret123") {
		t.Fatalf("expected correct password to verify")
	}
	if found.CheckPassword("wrong") {
		t.Fatalf("expected wrong password to fail verification")
	}
}

func TestDuplicateEmailReportedBeforeUsername(t *testing.T) {
	users := NewUserStore(newTestDB(t))

	if _, err := users.Create("mina", "mina@example.com", "secret123"); err != nil {
		t.Fatalf("create: %v", err)
	}

	// both username and email conflict: email must win
	if _, err := users.Create("mina", "mina@example.com", "secret123"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	// only username conflicts
	if _, err := users.Create("mina", "other@example.com", "secret123"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	// only email conflicts
	if _, err := users.Create("other", "mina@example.com", "secret123"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAddUsageTimeAccumulates(t *testing.T) {
	users := NewUserStore(newTestDB(t))

	created, err := users.Create("mina", "mina@example.com", "secret123")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := users.AddUsageTime(created.ID, 30); err != nil {
		t.Fatalf("add usage: %v", err)
	}
	if err := users.AddUsageTime(created.ID, 30); err != nil {
		t.Fatalf("add usage: %v", err)
	}

	found, err := users.FindByID(created.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.TotalUsageTime != 60 {
		t.Fatalf("expected 60 seconds accumulated, got %d", found.TotalUsageTime)
	}
}
