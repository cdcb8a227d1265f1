package service

import (
	"context"
	"fmt"

	"github.com/atu-cloudnative/catalog-service/internal/domain"
)

// HostLookup resolves the ambient host facts reported by the health check.
// Satisfied by *sysinfo.Resolver; tests substitute a stub.
type HostLookup interface {
	Lookup(ctx context.Context) (domain.HostInfo, error)
}

// CatalogService builds the responses for the public endpoints.
// It holds no per-request state and is safe for concurrent use.
type CatalogService struct {
	hosts          HostLookup
	onLookupFailed func()
}

// NewCatalogService wires the host lookup. onLookupFailed is invoked for
// every failed health check and may be nil.
func NewCatalogService(hosts HostLookup, onLookupFailed func()) *CatalogService {
	if onLookupFailed == nil {
		onLookupFailed = func() {}
	}
	return &CatalogService{hosts: hosts, onLookupFailed: onLookupFailed}
}

func (s *CatalogService) Welcome() string {
	return domain.WelcomeMessage
}

func (s *CatalogService) Greeting(name string) string {
	return domain.Greeting(name)
}

// Health resolves the host on every call. Resolution failures are counted
// and returned; there is no fallback hostname.
func (s *CatalogService) Health(ctx context.Context) (string, error) {
	info, err := s.hosts.Lookup(ctx)
	if err != nil {
		s.onLookupFailed()
		return "", fmt.Errorf("health check: %w", err)
	}
	return domain.HealthMessage(info), nil
}
