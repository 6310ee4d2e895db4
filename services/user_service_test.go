package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/camden-git/pvtheatresbackend/services"
	"github.com/camden-git/pvtheatresbackend/testutil"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := services.NewUserService(testutil.NewDB(t))

	user, err := svc.Register(ctx, services.RegisterInput{Login: "archiviste", Email: "a@example.org", Name: "Anne", Password: "secret1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.PasswordHash == "" || user.PasswordHash == "secret1" {
		t.Fatalf("password not hashed")
	}

	_, err = svc.Register(ctx, services.RegisterInput{Login: "archiviste", Email: "a@example.org", Name: "Anne", Password: "12345"})
	wantProblems(t, err, services.MsgUserPasswordTooShort, services.MsgUserLoginTaken, services.MsgUserEmailTaken)

	_, err = svc.Register(ctx, services.RegisterInput{Email: "not-an-address", Password: "secret1"})
	wantProblems(t, err, services.MsgUserLoginRequired, services.MsgUserEmailInvalid, services.MsgUserNameRequired)

	got, err := svc.Authenticate(ctx, "archiviste", "secret1")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("authenticated user %d, want %d", got.ID, user.ID)
	}
	if _, err := svc.Authenticate(ctx, "archiviste", "wrong"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v", err)
	}
	if _, err := svc.Authenticate(ctx, "nobody", "secret1"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Fatalf("unknown login err = %v", err)
	}

	_, err = svc.Get(ctx, 999)
	wantNotFound(t, err)
}
