package staff

import (
	"context"
	"testing"
)

func TestService_CreateUser_Validation(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	cases := []CreateUser{
		{Email: "a@x", FirstName: "S", LastName: "C"},
		{Username: "s", FirstName: "S", LastName: "C"},
		{Username: "s", Email: "a@x", LastName: "C"},
		{Username: "s", Email: "a@x", FirstName: "S"},
	}
	for i, in := range cases {
		if _, err := svc.CreateUser(ctx, in); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestService_CreateUser_UniqueUsername(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	in := CreateUser{Username: "schen", Email: "a@x", FirstName: "S", LastName: "C"}
	if _, err := svc.CreateUser(ctx, in); err != nil {
		t.Fatalf("first create: %v", err)
	}

	in.Email = "other@x"
	if _, err := svc.CreateUser(ctx, in); err == nil {
		t.Error("expected duplicate username to be rejected")
	}
}

func TestService_CreateUser_UniqueEmail(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, CreateUser{Username: "a", Email: "same@x", FirstName: "S", LastName: "C"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.CreateUser(ctx, CreateUser{Username: "b", Email: "same@x", FirstName: "S", LastName: "C"}); err == nil {
		t.Error("expected duplicate email to be rejected")
	}
}

func TestService_Login(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, CreateUser{Username: "schen", Email: "a@x", FirstName: "S", LastName: "C"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	u, err := svc.Login(ctx, "schen")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u == nil || u.ID != created.ID {
		t.Errorf("expected login to resolve the created user, got %+v", u)
	}

	unknown, err := svc.Login(ctx, "nobody")
	if err != nil {
		t.Fatalf("login unknown: %v", err)
	}
	if unknown != nil {
		t.Error("expected nil for unknown username")
	}

	if _, err := svc.Login(ctx, ""); err == nil {
		t.Error("expected error for empty username")
	}
}
