package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/atu-cloudnative/catalog-service/internal/domain"
	"github.com/atu-cloudnative/catalog-service/internal/service"
)

type stubLookup struct {
	info domain.HostInfo
	err  error
}

func (s stubLookup) Lookup(context.Context) (domain.HostInfo, error) {
	return s.info, s.err
}

func TestCatalogService_Welcome(t *testing.T) {
	svc := service.NewCatalogService(stubLookup{}, nil)

	for i := 0; i < 3; i++ {
		if got := svc.Welcome(); got != "Welcome to the Cloud Native Book Catalog!" {
			t.Fatalf("call %d: unexpected welcome %q", i, got)
		}
	}
}

func TestCatalogService_Greeting(t *testing.T) {
	svc := service.NewCatalogService(stubLookup{}, nil)

	got := svc.Greeting("World")
	want := "Hello World, welcome to the book catalog!,, I am yashwanth "
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestCatalogService_Health(t *testing.T) {
	svc := service.NewCatalogService(
		stubLookup{info: domain.HostInfo{Hostname: "node-a", OSName: "Linux"}},
		nil,
	)

	got, err := svc.Health(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "Application is healthy and running on: node-a (Linux)"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestCatalogService_Health_ResolutionFailure(t *testing.T) {
	failures := 0

	svc := service.NewCatalogService(
		stubLookup{err: fmt.Errorf("%w: no such host", domain.ErrHostnameResolution)},
		func() { failures++ },
	)

	_, err := svc.Health(context.Background())
	if !errors.Is(err, domain.ErrHostnameResolution) {
		t.Fatalf("expected ErrHostnameResolution, got %v", err)
	}
	if failures != 1 {
		t.Fatalf("expected failure hook to fire once, got %d", failures)
	}
}
