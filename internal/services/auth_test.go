package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunohmachado/vitrine/internal/common"
)

func validRegistration() RegisterInput {
	return RegisterInput{
		Name:            "Ana Souza",
		Email:           "a@x.com",
		Password:        "secret1",
		PasswordConfirm: "secret1",
		Phone:           "11 99999-0000",
		CPF:             "123.456.789-00",
		AcceptedTerms:   true,
	}
}

func TestRegister_Validations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterInput)
		wantErr error
	}{
		{"short password", func(in *RegisterInput) { in.Password, in.PasswordConfirm = "abc", "abc" }, common.ErrPasswordTooShort},
		{"confirmation mismatch", func(in *RegisterInput) { in.PasswordConfirm = "secret2" }, common.ErrPasswordMismatch},
		{"terms not accepted", func(in *RegisterInput) { in.AcceptedTerms = false }, common.ErrTermsNotAccepted},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := newTestData(t)
			svc := NewAuthService(data)

			in := validRegistration()
			tc.mutate(&in)

			_, err := svc.Register(context.Background(), in)
			require.ErrorIs(t, err, tc.wantErr)

			// Failed validation must not leave any state behind.
			users, err := data.Users(context.Background())
			require.NoError(t, err)
			assert.Empty(t, users)
		})
	}
}

func TestRegister_DuplicateEmailRejected(t *testing.T) {
	svc := NewAuthService(newTestData(t))
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	second := validRegistration()
	second.Name = "Outra Ana"
	_, err = svc.Register(ctx, second)
	require.ErrorIs(t, err, common.ErrEmailTaken)
}

func TestRegister_EmailUniquenessIsCaseSensitive(t *testing.T) {
	svc := NewAuthService(newTestData(t))
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	upper := validRegistration()
	upper.Email = "A@x.com"
	_, err = svc.Register(ctx, upper)
	require.NoError(t, err)
}

func TestRegister_LogsCallerInWithRedactedProjection(t *testing.T) {
	data := newTestData(t)
	svc := NewAuthService(data)
	ctx := context.Background()

	u, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)
	assert.Empty(t, u.Password)
	assert.NotZero(t, u.ID)

	session, err := data.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "a@x.com", session.Email)
	assert.Empty(t, session.Password)

	// The stored record keeps the password.
	users, err := data.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "secret1", users[0].Password)
}

func TestLogin_SuccessSetsRedactedCurrentUser(t *testing.T) {
	data := newTestData(t)
	svc := NewAuthService(data)
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	u, err := svc.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Empty(t, u.Password)

	// The session projection must not carry the password field at all.
	session, err := data.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	raw, err := json.Marshal(session)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := NewAuthService(newTestData(t))
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	_, err = svc.Login(ctx, "a@x.com", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@x.com", "secret1")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogout_ClearsSession(t *testing.T) {
	data := newTestData(t)
	svc := NewAuthService(data)
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	session, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestUpdateProfile_MutatesRecordAndSessionInLockstep(t *testing.T) {
	data := newTestData(t)
	svc := NewAuthService(data)
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, ProfileInput{Name: "Ana Lima", Phone: "11 98888-0000"})
	require.NoError(t, err)
	assert.Equal(t, "Ana Lima", updated.Name)

	users, err := data.Users(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana Lima", users[0].Name)
	assert.Equal(t, "11 98888-0000", users[0].Phone)
	assert.Equal(t, "secret1", users[0].Password)

	session, err := data.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana Lima", session.Name)
}

func TestUpdateProfile_RequiresLogin(t *testing.T) {
	svc := NewAuthService(newTestData(t))

	_, err := svc.UpdateProfile(context.Background(), ProfileInput{Name: "x"})
	require.ErrorIs(t, err, common.ErrNotLoggedIn)
}

func TestChangePassword_RevalidatesCurrentPassword(t *testing.T) {
	data := newTestData(t)
	svc := NewAuthService(data)
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, "wrong", "newpass1", "newpass1")
	require.ErrorIs(t, err, common.ErrWrongPassword)

	require.NoError(t, svc.ChangePassword(ctx, "secret1", "newpass1", "newpass1"))

	// Old password no longer works, new one does.
	require.NoError(t, svc.Logout(ctx))
	_, err = svc.Login(ctx, "a@x.com", "secret1")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	_, err = svc.Login(ctx, "a@x.com", "newpass1")
	require.NoError(t, err)
}

func TestChangePassword_ValidatesNewPassword(t *testing.T) {
	svc := NewAuthService(newTestData(t))
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	require.ErrorIs(t, svc.ChangePassword(ctx, "secret1", "abc", "abc"), common.ErrPasswordTooShort)
	require.ErrorIs(t, svc.ChangePassword(ctx, "secret1", "newpass1", "other"), common.ErrPasswordMismatch)
}
