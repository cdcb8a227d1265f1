package sysinfo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atu-cloudnative/catalog-service/internal/domain"
	"github.com/atu-cloudnative/catalog-service/internal/sysinfo"
)

type fakeResolver struct {
	addrs []string
	err   error
	calls int
	block bool
}

func (f *fakeResolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	f.calls++
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.addrs, f.err
}

func hostname(name string) func() (string, error) {
	return func() (string, error) { return name, nil }
}

func TestResolver_Lookup(t *testing.T) {
	fr := &fakeResolver{addrs: []string{"10.0.0.7"}}
	r := sysinfo.New(time.Second,
		sysinfo.WithHostnameFunc(hostname("catalog-1")),
		sysinfo.WithHostResolver(fr),
		sysinfo.WithOSName("Linux"),
	)

	info, err := r.Lookup(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Hostname != "catalog-1" || info.OSName != "Linux" {
		t.Fatalf("unexpected host info: %+v", info)
	}
}

func TestResolver_Lookup_NotCached(t *testing.T) {
	fr := &fakeResolver{addrs: []string{"127.0.0.1"}}
	r := sysinfo.New(0, sysinfo.WithHostnameFunc(hostname("h")), sysinfo.WithHostResolver(fr))

	for i := 0; i < 3; i++ {
		if _, err := r.Lookup(context.Background()); err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
	}
	if fr.calls != 3 {
		t.Fatalf("expected 3 resolver calls, got %d", fr.calls)
	}
}

func TestResolver_Lookup_Failures(t *testing.T) {
	tests := []struct {
		name     string
		hostname func() (string, error)
		resolver *fakeResolver
	}{
		{
			name:     "kernel hostname error",
			hostname: func() (string, error) { return "", errors.New("uname failed") },
			resolver: &fakeResolver{addrs: []string{"127.0.0.1"}},
		},
		{
			name:     "empty hostname",
			hostname: hostname(""),
			resolver: &fakeResolver{addrs: []string{"127.0.0.1"}},
		},
		{
			name:     "name does not resolve",
			hostname: hostname("ghost"),
			resolver: &fakeResolver{err: errors.New("no such host")},
		},
		{
			name:     "resolves to nothing",
			hostname: hostname("ghost"),
			resolver: &fakeResolver{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := sysinfo.New(time.Second,
				sysinfo.WithHostnameFunc(tc.hostname),
				sysinfo.WithHostResolver(tc.resolver),
			)
			_, err := r.Lookup(context.Background())
			if !errors.Is(err, domain.ErrHostnameResolution) {
				t.Fatalf("expected ErrHostnameResolution, got %v", err)
			}
		})
	}
}

func TestResolver_Lookup_Timeout(t *testing.T) {
	fr := &fakeResolver{block: true}
	r := sysinfo.New(20*time.Millisecond,
		sysinfo.WithHostnameFunc(hostname("slow")),
		sysinfo.WithHostResolver(fr),
	)

	done := make(chan error, 1)
	go func() {
		_, err := r.Lookup(context.Background())
		done <- err
	}()

	select {
	case err := <-done:
		if !errors.Is(err, domain.ErrHostnameResolution) {
			t.Fatalf("expected ErrHostnameResolution, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Lookup did not honour its timeout")
	}
}

func TestOSName(t *testing.T) {
	tests := map[string]string{
		"linux":   "Linux",
		"darwin":  "Mac OS X",
		"windows": "Windows",
		"plan9":   "plan9",
	}
	for goos, want := range tests {
		if got := sysinfo.OSName(goos); got != want {
			t.Fatalf("OSName(%q): expected %q, got %q", goos, want, got)
		}
	}
}
