package olspanel

import (
	"context"
	"errors"
	"testing"

	"github.com/nerdbyteio/olspanel-manager/pkg/servermanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAccountPayload(t *testing.T) {
	client := &fakeHTTP{body: `{"success":true}`}
	m := newTestManager(t, client)

	require.NoError(t, m.CreateAccount(context.Background(), testAccount()))

	require.Len(t, client.calls, 1)
	assert.Equal(t, "https://panel.example.com:8443/admin_api/add_user/", client.calls[0].url)
	assert.Equal(t, map[string]string{
		"username":    "alice",
		"first_name":  "Alice Liddell",
		"last_name":   " ",
		"email":       "alice@example.org",
		"password":    "pa55word",
		"domain":      "alice.example.org",
		"pkg_id":      "4",
		"php_version": "8.2",
	}, client.calls[0].form)
}

func TestCreateAccountAlwaysSendsSpaceLastName(t *testing.T) {
	client := &fakeHTTP{body: `{"success":true}`}
	m := newTestManager(t, client)

	acct := testAccount()
	acct.Client = servermanager.Client{FirstName: "Solo", LastName: "Surname", Email: "s@example.org"}
	acct.Package = servermanager.Package{}
	require.NoError(t, m.CreateAccount(context.Background(), acct))

	form := client.calls[0].form
	assert.Equal(t, " ", form["last_name"])
	assert.Equal(t, "Solo Surname", form["first_name"])
	assert.NotContains(t, form, "pkg_id")
	assert.NotContains(t, form, "php_version")
}

func TestCreateAccountRemoteError(t *testing.T) {
	notifier := &fakeNotifier{}
	m, err := New(testConfig(), servermanager.Deps{
		HTTP:     &fakeHTTP{body: `{"success":false,"message":"Username already taken"}`},
		Notifier: notifier,
	})
	require.NoError(t, err)

	err = m.CreateAccount(context.Background(), testAccount())
	var remote *servermanager.RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, "Username already taken", remote.Message)
	assert.Empty(t, notifier.got)
}

func TestStateChangesShareEndpoint(t *testing.T) {
	cases := []struct {
		name   string
		call   func(*Manager, servermanager.Account) error
		state  string
		action string
	}{
		{"suspend", func(m *Manager, a servermanager.Account) error { return m.SuspendAccount(context.Background(), a) }, "SUSPEND", ActionSuspend},
		{"unsuspend", func(m *Manager, a servermanager.Account) error { return m.UnsuspendAccount(context.Background(), a) }, "UNSUSPEND", ActionUnsuspend},
		{"cancel", func(m *Manager, a servermanager.Account) error { return m.CancelAccount(context.Background(), a) }, "DELETE", ActionCancel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := &fakeHTTP{body: `{"success":true}`}
			notifier := &fakeNotifier{}
			m, err := New(testConfig(), servermanager.Deps{HTTP: client, Notifier: notifier})
			require.NoError(t, err)

			require.NoError(t, tc.call(m, testAccount()))

			require.Len(t, client.calls, 1)
			assert.Equal(t, "https://panel.example.com:8443/admin_api/suspend_user/", client.calls[0].url)
			assert.Equal(t, map[string]string{"username": "alice", "state": tc.state}, client.calls[0].form)

			require.Len(t, notifier.got, 1)
			assert.Equal(t, tc.action, notifier.got[0].Action)
			assert.Equal(t, "alice", notifier.got[0].Username)
			assert.Equal(t, Type, notifier.got[0].Manager)
		})
	}
}

func TestChangeAccountPackage(t *testing.T) {
	client := &fakeHTTP{body: `{"success":true}`}
	m := newTestManager(t, client)

	pkg := servermanager.Package{Name: "pro", CustomValues: map[string]string{CustomPackageID: "9", CustomPHPVersion: "8.3"}}
	require.NoError(t, m.ChangeAccountPackage(context.Background(), testAccount(), pkg))

	assert.Equal(t, "https://panel.example.com:8443/admin_api/update_user/", client.calls[0].url)
	assert.Equal(t, map[string]string{"username": "alice", "pkg_id": "9"}, client.calls[0].form)
}

func TestChangeAccountPassword(t *testing.T) {
	client := &fakeHTTP{body: `{"success":true}`}
	m := newTestManager(t, client)

	require.NoError(t, m.ChangeAccountPassword(context.Background(), testAccount(), "n3w-pass"))

	assert.Equal(t, "https://panel.example.com:8443/admin_api/update_user/", client.calls[0].url)
	assert.Equal(t, map[string]string{"username": "alice", "password": "n3w-pass"}, client.calls[0].form)
}

func TestUnsupportedChangesMakeNoRequest(t *testing.T) {
	client := &fakeHTTP{body: `{"success":true}`}
	m := newTestManager(t, client)
	ctx := context.Background()
	acct := testAccount()

	cases := map[string]error{
		"username changes":            m.ChangeAccountUsername(ctx, acct, "bob"),
		"changing the account domain": m.ChangeAccountDomain(ctx, acct, "bob.example.org"),
		"changing the account IP":     m.ChangeAccountIP(ctx, acct, "10.0.0.2"),
	}
	for action, err := range cases {
		var unsupported *servermanager.UnsupportedError
		require.True(t, errors.As(err, &unsupported), "%s: got %v", action, err)
		assert.Equal(t, action, unsupported.Action)
		assert.Equal(t, "OLSPanel does not support "+action, err.Error())
	}
	assert.Empty(t, client.calls)
}

func TestLoginURLWithAccount(t *testing.T) {
	client := &fakeHTTP{body: `{"url":"https://panel.example.com:8443/sso/xyz"}`}
	m := newTestManager(t, client)

	acct := testAccount()
	got, err := m.LoginURL(context.Background(), &acct)
	require.NoError(t, err)
	assert.Equal(t, "https://panel.example.com:8443/sso/xyz", got)
	assert.Equal(t, "https://panel.example.com:8443/admin_api/sso_login/", client.calls[0].url)
	assert.Equal(t, map[string]string{"username": "alice"}, client.calls[0].form)
}

func TestLoginURLWithoutURLField(t *testing.T) {
	m := newTestManager(t, &fakeHTTP{body: `{"success":true}`})

	acct := testAccount()
	_, err := m.LoginURL(context.Background(), &acct)
	var remote *servermanager.RemoteError
	assert.True(t, errors.As(err, &remote))
}

func TestSynchronizeAccountReturnsCopy(t *testing.T) {
	client := &fakeHTTP{}
	m := newTestManager(t, client)

	acct := testAccount()
	synced, err := m.SynchronizeAccount(context.Background(), acct)
	require.NoError(t, err)
	assert.Equal(t, acct, synced)
	assert.Empty(t, client.calls)

	synced.Package.CustomValues[CustomPackageID] = "99"
	assert.Equal(t, "4", acct.Package.CustomValues[CustomPackageID])
}
