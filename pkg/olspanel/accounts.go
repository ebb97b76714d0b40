package olspanel

import (
	"context"
	"strings"
	"time"

	"github.com/nerdbyteio/olspanel-manager/pkg/servermanager"
)

// Admin API endpoints.
const (
	endpointPackagesList = "packages_list"
	endpointSSOLogin     = "sso_login"
	endpointAddUser      = "add_user"
	endpointSuspendUser  = "suspend_user"
	endpointUpdateUser   = "update_user"
)

// suspend_user state values.
const (
	stateSuspend   = "SUSPEND"
	stateUnsuspend = "UNSUSPEND"
	stateDelete    = "DELETE"
)

// Package custom value keys.
const (
	CustomPackageID  = "pkg_id"
	CustomPHPVersion = "php_version"
)

// Actions reported in notifications.
const (
	ActionCreate         = "create"
	ActionSuspend        = "suspend"
	ActionUnsuspend      = "unsuspend"
	ActionCancel         = "cancel"
	ActionChangePackage  = "change_package"
	ActionChangePassword = "change_password"
)

// TestConnection lists packages to confirm the credentials are accepted.
func (m *Manager) TestConnection(ctx context.Context) error {
	_, err := m.request(ctx, endpointPackagesList, nil)
	return err
}

// LoginURL returns the panel URL. With an account it asks the panel for a
// single sign-on URL for that user.
func (m *Manager) LoginURL(ctx context.Context, account *servermanager.Account) (string, error) {
	if account == nil {
		return m.baseURL(), nil
	}

	res, err := m.request(ctx, endpointSSOLogin, map[string]string{
		"username": account.Username,
	})
	if err != nil {
		return "", err
	}
	url := res.Get("url").String()
	if url == "" {
		return "", &servermanager.RemoteError{Endpoint: endpointSSOLogin, Message: fallbackMessage}
	}
	return url, nil
}

// ResellerLoginURL returns the plain panel URL; reseller SSO is not offered.
func (m *Manager) ResellerLoginURL(ctx context.Context, _ *servermanager.Account) (string, error) {
	return m.LoginURL(ctx, nil)
}

// SynchronizeAccount returns an unchanged copy of account. The panel exposes
// no per-user read endpoint to reconcile against.
func (m *Manager) SynchronizeAccount(_ context.Context, account servermanager.Account) (servermanager.Account, error) {
	m.log.InfoObj("synchronizing account with server", "account", map[string]any{
		"username": account.Username,
	})
	return account.Clone(), nil
}

// CreateAccount creates the user, its website and hosting plan assignment.
func (m *Manager) CreateAccount(ctx context.Context, account servermanager.Account) error {
	payload := map[string]string{
		"username":   account.Username,
		"first_name": strings.TrimSpace(account.Client.FullName()),
		// The panel requires a last name but does not use it.
		"last_name": " ",
		"email":     account.Client.Email,
		"password":  account.Password,
		"domain":    account.Domain,
	}
	setCustomValue(payload, account.Package, CustomPackageID)
	setCustomValue(payload, account.Package, CustomPHPVersion)

	if _, err := m.request(ctx, endpointAddUser, payload); err != nil {
		return err
	}
	m.notify(ctx, ActionCreate, account)
	return nil
}

// SuspendAccount suspends the user.
func (m *Manager) SuspendAccount(ctx context.Context, account servermanager.Account) error {
	return m.setState(ctx, account, stateSuspend, ActionSuspend)
}

// UnsuspendAccount lifts a suspension.
func (m *Manager) UnsuspendAccount(ctx context.Context, account servermanager.Account) error {
	return m.setState(ctx, account, stateUnsuspend, ActionUnsuspend)
}

// CancelAccount deletes the user from the panel.
func (m *Manager) CancelAccount(ctx context.Context, account servermanager.Account) error {
	return m.setState(ctx, account, stateDelete, ActionCancel)
}

func (m *Manager) setState(ctx context.Context, account servermanager.Account, state, action string) error {
	_, err := m.request(ctx, endpointSuspendUser, map[string]string{
		"username": account.Username,
		"state":    state,
	})
	if err != nil {
		return err
	}
	m.notify(ctx, action, account)
	return nil
}

// ChangeAccountPackage moves the user to pkg's panel package.
func (m *Manager) ChangeAccountPackage(ctx context.Context, account servermanager.Account, pkg servermanager.Package) error {
	payload := map[string]string{"username": account.Username}
	setCustomValue(payload, pkg, CustomPackageID)

	if _, err := m.request(ctx, endpointUpdateUser, payload); err != nil {
		return err
	}
	account.Package = pkg
	m.notify(ctx, ActionChangePackage, account)
	return nil
}

// ChangeAccountPassword sets a new password for the user.
func (m *Manager) ChangeAccountPassword(ctx context.Context, account servermanager.Account, newPassword string) error {
	_, err := m.request(ctx, endpointUpdateUser, map[string]string{
		"username": account.Username,
		"password": newPassword,
	})
	if err != nil {
		return err
	}
	m.notify(ctx, ActionChangePassword, account)
	return nil
}

// ChangeAccountUsername is not supported by the panel API.
func (m *Manager) ChangeAccountUsername(context.Context, servermanager.Account, string) error {
	return &servermanager.UnsupportedError{Manager: Label, Action: "username changes"}
}

// ChangeAccountDomain is not supported by the panel API.
func (m *Manager) ChangeAccountDomain(context.Context, servermanager.Account, string) error {
	return &servermanager.UnsupportedError{Manager: Label, Action: "changing the account domain"}
}

// ChangeAccountIP is not supported by the panel API.
func (m *Manager) ChangeAccountIP(context.Context, servermanager.Account, string) error {
	return &servermanager.UnsupportedError{Manager: Label, Action: "changing the account IP"}
}

// setCustomValue copies a package attribute into payload. Unset attributes are
// left out of the request rather than sent empty.
func setCustomValue(payload map[string]string, pkg servermanager.Package, key string) {
	if v, ok := pkg.CustomValue(key); ok {
		payload[key] = v
	}
}

func (m *Manager) notify(ctx context.Context, action string, account servermanager.Account) {
	if m.notifier == nil {
		return
	}
	m.notifier.Notify(ctx, servermanager.Notification{
		Manager:    Type,
		Action:     action,
		Username:   account.Username,
		Domain:     account.Domain,
		OccurredAt: time.Now().UTC(),
	})
}
