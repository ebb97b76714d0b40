// Package olspanel manages hosting accounts on an OLSPanel server through its
// admin API.
package olspanel

import (
	"fmt"
	"strings"

	"github.com/nerdbyteio/olspanel-manager/pkg/httpclient"
	"github.com/nerdbyteio/olspanel-manager/pkg/servermanager"
)

const (
	// Type is the registry key for this manager.
	Type = "olspanel"
	// Label is shown on the host's server configuration form.
	Label = "OLSPanel"
)

// Manager implements servermanager.Manager for OLSPanel.
type Manager struct {
	cfg      servermanager.Config
	http     httpclient.Client
	log      servermanager.Logger
	observer servermanager.RequestObserver
	notifier servermanager.Notifier
}

var _ servermanager.Manager = (*Manager)(nil)

// New validates cfg and returns a ready manager. Missing collaborators fall
// back to a resty client built from cfg and a no-op logger.
func New(cfg servermanager.Config, deps servermanager.Deps) (*Manager, error) {
	m := newManager(cfg, deps)
	if err := m.Init(); err != nil {
		return nil, err
	}
	return m, nil
}

// Builder adapts the manager to servermanager.Builder. It does not validate;
// Registry.ManagerFor runs Init on the result.
func Builder(cfg servermanager.Config, deps servermanager.Deps) (servermanager.Manager, error) {
	return newManager(cfg, deps), nil
}

func newManager(cfg servermanager.Config, deps servermanager.Deps) *Manager {
	m := &Manager{
		cfg:      cfg,
		http:     deps.HTTP,
		log:      servermanager.EnsureLogger(deps.Log),
		observer: deps.Observer,
		notifier: deps.Notifier,
	}
	if m.http == nil {
		m.http = httpclient.NewRestyClient(httpclient.Options{
			Timeout:            cfg.Timeout(),
			InsecureSkipVerify: cfg.SkipTLSVerify(),
		})
	}
	return m
}

// Register adds the OLSPanel builder to reg.
func Register(reg servermanager.Registry) {
	reg.Register(Type, Builder)
}

// Form returns the configuration form metadata.
func (m *Manager) Form() servermanager.Form {
	return servermanager.Form{Label: Label}
}

// Init checks that the settings required to reach the panel are present.
// Host and username must hold more than whitespace; the password only has to
// be non-empty. Init has no side effects, so repeated calls agree.
func (m *Manager) Init() error {
	switch {
	case strings.TrimSpace(m.cfg.Host) == "":
		return &servermanager.ConfigError{Manager: Label, Missing: "hostname"}
	case strings.TrimSpace(m.cfg.Username) == "":
		return &servermanager.ConfigError{Manager: Label, Missing: "username"}
	case m.cfg.Password == "":
		return &servermanager.ConfigError{Manager: Label, Missing: "authentication credentials"}
	}
	return nil
}

// Port returns the panel port, see ResolvePort.
func (m *Manager) Port() int {
	return ResolvePort(m.cfg.Port)
}

func (m *Manager) baseURL() string {
	return fmt.Sprintf("https://%s:%d/", m.cfg.Host, m.Port())
}

func (m *Manager) endpointURL(endpoint string) string {
	return m.baseURL() + "admin_api/" + endpoint + "/"
}
