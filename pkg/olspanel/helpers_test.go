package olspanel

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/nerdbyteio/olspanel-manager/pkg/httpclient"
	"github.com/nerdbyteio/olspanel-manager/pkg/servermanager"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	url     string
	headers map[string]string
	form    map[string]string
}

type fakeResponse struct {
	status int
	body   []byte
}

func (f fakeResponse) Body() []byte    { return f.body }
func (f fakeResponse) StatusCode() int { return f.status }

// fakeHTTP records every request and answers with a canned response.
type fakeHTTP struct {
	mu     sync.Mutex
	calls  []recordedCall
	status int
	body   string
	err    error
}

func (f *fakeHTTP) PostForm(_ context.Context, url string, headers, form map[string]string) (httpclient.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, recordedCall{url: url, headers: headers, form: form})
	if f.err != nil {
		return nil, f.err
	}
	status := f.status
	if status == 0 {
		status = 200
	}
	return fakeResponse{status: status, body: []byte(f.body)}, nil
}

type observation struct {
	manager, endpoint, outcome string
}

type fakeObserver struct {
	seen []observation
}

func (f *fakeObserver) ObserveRequest(manager, endpoint, outcome string, _ time.Duration) {
	f.seen = append(f.seen, observation{manager, endpoint, outcome})
}

type fakeNotifier struct {
	got []servermanager.Notification
}

func (f *fakeNotifier) Notify(_ context.Context, n servermanager.Notification) {
	f.got = append(f.got, n)
}

func testConfig() servermanager.Config {
	return servermanager.Config{
		Host:     "panel.example.com",
		Port:     "8443",
		Username: "admin",
		Password: "secret",
	}
}

func newTestManager(t *testing.T, client *fakeHTTP) *Manager {
	t.Helper()
	m, err := New(testConfig(), servermanager.Deps{HTTP: client})
	require.NoError(t, err)
	return m
}

func testAccount() servermanager.Account {
	return servermanager.Account{
		Username: "alice",
		Password: "pa55word",
		Domain:   "alice.example.org",
		Client: servermanager.Client{
			FirstName: "  Alice",
			LastName:  "Liddell  ",
			Email:     "alice@example.org",
		},
		Package: servermanager.Package{
			Name: "starter",
			CustomValues: map[string]string{
				CustomPackageID:  "4",
				CustomPHPVersion: "8.2",
			},
		},
	}
}
