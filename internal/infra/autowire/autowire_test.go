package autowire_test

import (
	"testing"

	"github.com/radelytskyi20/TaskManagement/internal/infra/autowire"
	"github.com/radelytskyi20/TaskManagement/internal/infra/core"
)

type storeComp struct {
	*core.BaseComponent
}

type svcComp struct {
	*core.BaseComponent
	Store *storeComp `infra:"dep:store"`
	Cache *storeComp `infra:"dep:cache?"`
}

func TestInjectAllResolvesTaggedFields(t *testing.T) {
	c := core.NewContainer()
	store := &storeComp{BaseComponent: core.NewBaseComponent("store")}
	svc := &svcComp{BaseComponent: core.NewBaseComponent("svc")}

	if err := c.Register("store", store); err != nil {
		t.Fatalf("register store: %v", err)
	}
	if err := c.Register("svc", svc); err != nil {
		t.Fatalf("register svc: %v", err)
	}

	if err := autowire.InjectAll(c); err != nil {
		t.Fatalf("inject failed: %v", err)
	}
	if svc.Store != store {
		t.Fatal("required dependency not injected")
	}
	if svc.Cache != nil {
		t.Fatal("optional missing dependency must stay nil")
	}

	// injection also records the dependency for start ordering
	var found bool
	for _, d := range svc.Dependencies() {
		if d == "store" {
			found = true
		}
	}
	if !found {
		t.Fatalf("runtime dependency not recorded: %v", svc.Dependencies())
	}
}

func TestInjectAllFailsOnMissingRequiredDep(t *testing.T) {
	c := core.NewContainer()
	svc := &svcComp{BaseComponent: core.NewBaseComponent("svc")}
	if err := c.Register("svc", svc); err != nil {
		t.Fatalf("register svc: %v", err)
	}
	if err := autowire.InjectAll(c); err == nil {
		t.Fatal("expected error for missing required dependency")
	}
}
