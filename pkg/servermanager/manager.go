package servermanager

import (
	"context"
	"time"

	"github.com/nerdbyteio/olspanel-manager/pkg/httpclient"
)

// Form describes how the host renders the manager in its configuration screen.
type Form struct {
	Label string `json:"label"`
}

// Manager is the contract every hosting control panel adapter fulfils.
// A nil error means the panel accepted the change.
type Manager interface {
	Form() Form
	// Init validates the configuration. Registry.ManagerFor calls it once on
	// every manager a Builder returns; it must not mutate state.
	Init() error

	TestConnection(ctx context.Context) error
	LoginURL(ctx context.Context, account *Account) (string, error)
	ResellerLoginURL(ctx context.Context, account *Account) (string, error)
	SynchronizeAccount(ctx context.Context, account Account) (Account, error)

	CreateAccount(ctx context.Context, account Account) error
	SuspendAccount(ctx context.Context, account Account) error
	UnsuspendAccount(ctx context.Context, account Account) error
	CancelAccount(ctx context.Context, account Account) error

	ChangeAccountPackage(ctx context.Context, account Account, pkg Package) error
	ChangeAccountUsername(ctx context.Context, account Account, newUsername string) error
	ChangeAccountDomain(ctx context.Context, account Account, newDomain string) error
	ChangeAccountPassword(ctx context.Context, account Account, newPassword string) error
	ChangeAccountIP(ctx context.Context, account Account, newIP string) error
}

// Notification describes a completed account change.
type Notification struct {
	Manager    string
	Action     string
	Username   string
	Domain     string
	OccurredAt time.Time
}

// Notifier receives account change notifications. Implementations must not block
// for long; delivery failures are theirs to report.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// RequestObserver records panel round trips.
type RequestObserver interface {
	ObserveRequest(manager, endpoint, outcome string, elapsed time.Duration)
}

// Deps are the collaborators the host supplies to a manager at construction.
// Every field is optional.
type Deps struct {
	HTTP     httpclient.Client
	Log      Logger
	Observer RequestObserver
	Notifier Notifier
}
