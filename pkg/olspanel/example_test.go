package olspanel_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/nerdbyteio/olspanel-manager/pkg/logger"
	"github.com/nerdbyteio/olspanel-manager/pkg/metrics"
	"github.com/nerdbyteio/olspanel-manager/pkg/olspanel"
	"github.com/nerdbyteio/olspanel-manager/pkg/publishers"
	"github.com/nerdbyteio/olspanel-manager/pkg/servermanager"
)

// Example shows how a host wires the manager from its stored server settings.
func Example() {
	cfg, err := servermanager.LoadConfig(map[string]any{
		"host":     "panel.example.com",
		"port":     "6844",
		"username": "admin",
		"password": "secret",
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	log := logger.New(cfg.LogLevel)
	defer log.Close()

	deps := servermanager.Deps{
		Log:      log,
		Observer: metrics.NewRecorder(nil),
	}
	if cfg.EventsFile != "" {
		fanout, err := publishers.FromFile(context.Background(), cfg.EventsFile, log)
		if err != nil {
			log.WarnObj("account events disabled", "error", err.Error())
		} else {
			defer fanout.Close()
			deps.Notifier = fanout
		}
	}

	reg := servermanager.NewRegistry(nil)
	olspanel.Register(reg)

	mgr, err := reg.ManagerFor(olspanel.Type, cfg, deps)
	if err != nil {
		var cfgErr *servermanager.ConfigError
		if errors.As(err, &cfgErr) {
			fmt.Println("configure:", cfgErr.Missing)
		}
		return
	}

	url, _ := mgr.LoginURL(context.Background(), nil)
	fmt.Println(url)
	// Output: https://panel.example.com:6844/
}
