package reqctx

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/athletiq/athletiq_backend/internal/actor"
)

func TestActorRoundTrip(t *testing.T) {
	id, err := uuid.NewV7()
	if err != nil {
		t.Fatal(err)
	}
	want := actor.Actor{Role: actor.RoleDoctor, ID: id}

	ctx := WithActor(context.Background(), want)
	got, ok := ActorFromContext(ctx)
	if !ok {
		t.Fatal("actor not found")
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestActorMissing(t *testing.T) {
	if _, ok := ActorFromContext(context.Background()); ok {
		t.Error("found actor in empty context")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustActor did not panic")
		}
	}()
	MustActor(context.Background())
}
