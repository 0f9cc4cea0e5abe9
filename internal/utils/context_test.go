package utils

import (
	"context"
	"testing"

	"github.com/soundshelf/soundshelf/models"
)

func TestGetUserFromContext_Found(t *testing.T) {
	user := models.User{ID: "user-1", Username: "alice"}
	ctx := context.WithValue(context.Background(), UserCtxKey, user)

	got, ok := GetUserFromContext(ctx)
	if !ok {
		t.Fatal("expected user to be found in context")
	}
	if got.ID != user.ID {
		t.Errorf("expected ID %s, got %s", user.ID, got.ID)
	}
}

func TestGetUserFromContext_Missing(t *testing.T) {
	_, ok := GetUserFromContext(context.Background())
	if ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, "not-a-user")

	_, ok := GetUserFromContext(ctx)
	if ok {
		t.Error("expected ok=false for mistyped context value")
	}
}

func TestUUIDGenerator_Generate(t *testing.T) {
	gen := NewUUIDGenerator()

	first := gen.Generate()
	second := gen.Generate()

	if first == "" || second == "" {
		t.Fatal("expected non-empty identifiers")
	}
	if first == second {
		t.Error("expected distinct identifiers")
	}
}
