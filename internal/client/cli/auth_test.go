package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/splits-cli/internal/client/api"
	"github.com/dmitrijs2005/splits-cli/internal/client/models"
)

func TestLoginSuccess(t *testing.T) {
	out := captureOutput(t)
	fake := &fakeAPI{loginToken: testToken(t, "Alice", "111", time.Now().Add(time.Hour))}
	a := newTestApp(t, fake)
	stubTextInputs(t, "111")
	stubPassword(t, "secret")

	require.NoError(t, a.Login(context.Background()))

	assert.True(t, a.session.IsAuthenticated())
	assert.Equal(t, screenDashboard, a.activeScreen())
	assert.Contains(t, out.String(), "Welcome back, Alice!")
}

func TestLoginEmptyContact(t *testing.T) {
	out := captureOutput(t)
	fake := &fakeAPI{}
	a := newTestApp(t, fake)
	stubTextInputs(t, "  ")
	stubPassword(t, "secret")

	err := a.Login(context.Background())

	require.Error(t, err)
	assert.False(t, fake.called("Login"))
	assert.Contains(t, out.String(), "Please enter your contact number")
}

func TestLoginBackendError(t *testing.T) {
	out := captureOutput(t)
	fake := &fakeAPI{loginErr: &api.APIError{Status: 401, Message: "Invalid credentials"}}
	a := newTestApp(t, fake)
	stubTextInputs(t, "111")
	stubPassword(t, "wrong")

	err := a.Login(context.Background())

	require.Error(t, err)
	assert.False(t, a.session.IsAuthenticated())
	assert.Equal(t, screenAuth, a.activeScreen())
	assert.Contains(t, out.String(), "Invalid credentials")
}

func TestRegisterSuccess(t *testing.T) {
	out := captureOutput(t)
	fake := &fakeAPI{loginToken: testToken(t, "Bob", "222", time.Now().Add(time.Hour))}
	a := newTestApp(t, fake)
	stubTextInputs(t, "Bob", "222")
	stubPassword(t, "secret")

	require.NoError(t, a.Register(context.Background()))

	assert.True(t, a.session.IsAuthenticated())
	assert.Equal(t, screenDashboard, a.activeScreen())
	assert.Contains(t, out.String(), "Account created. Welcome, Bob!")
}

func TestRegisterMissingName(t *testing.T) {
	out := captureOutput(t)
	fake := &fakeAPI{}
	a := newTestApp(t, fake)
	stubTextInputs(t, "")

	err := a.Register(context.Background())

	require.Error(t, err)
	assert.False(t, fake.called("Register"))
	assert.Contains(t, out.String(), "Please enter your full name")
}

func TestLogout(t *testing.T) {
	out := captureOutput(t)
	a := newTestApp(t, &fakeAPI{})
	signIn(t, a, "Alice", "111")
	a.groups = []models.Group{{ID: "g1", GroupName: "Trip"}}

	require.NoError(t, a.Logout(context.Background()))

	assert.False(t, a.session.IsAuthenticated())
	assert.Equal(t, screenAuth, a.activeScreen())
	assert.Nil(t, a.groups)
	assert.Contains(t, out.String(), "Signed out.")
}

func TestWhoami(t *testing.T) {
	out := captureOutput(t)
	a := newTestApp(t, &fakeAPI{})

	a.Whoami()
	assert.Contains(t, out.String(), "Not signed in.")

	signIn(t, a, "Alice", "111")
	a.Whoami()
	assert.Contains(t, out.String(), "Alice (contact 111)")
}
