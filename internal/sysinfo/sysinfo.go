package sysinfo

import (
	"context"
	"fmt"
	"net"
	"os"
	"runtime"
	"time"

	"github.com/atu-cloudnative/catalog-service/internal/domain"
)

// HostResolver is the subset of *net.Resolver used to confirm that the
// machine's own name is known to the local network stack.
type HostResolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// Resolver reads the local hostname and platform OS name.
// Nothing is cached: every Lookup queries the OS again.
type Resolver struct {
	hostname func() (string, error)
	resolver HostResolver
	osName   string
	timeout  time.Duration
}

// Option customises a Resolver. Mostly useful in tests.
type Option func(*Resolver)

// WithHostnameFunc replaces os.Hostname as the source of the machine name.
func WithHostnameFunc(fn func() (string, error)) Option {
	return func(r *Resolver) { r.hostname = fn }
}

// WithHostResolver replaces net.DefaultResolver.
func WithHostResolver(hr HostResolver) Option {
	return func(r *Resolver) { r.resolver = hr }
}

// WithOSName overrides the detected OS name.
func WithOSName(name string) Option {
	return func(r *Resolver) { r.osName = name }
}

// New creates a Resolver whose lookups are bounded by timeout.
// A zero timeout leaves the caller's context as the only bound.
func New(timeout time.Duration, opts ...Option) *Resolver {
	r := &Resolver{
		hostname: os.Hostname,
		resolver: net.DefaultResolver,
		osName:   OSName(runtime.GOOS),
		timeout:  timeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lookup returns the current hostname and OS name. The hostname must both
// be reported by the kernel and resolve through the resolver; otherwise the
// returned error wraps domain.ErrHostnameResolution.
func (r *Resolver) Lookup(ctx context.Context) (domain.HostInfo, error) {
	name, err := r.hostname()
	if err != nil {
		return domain.HostInfo{}, fmt.Errorf("%w: %v", domain.ErrHostnameResolution, err)
	}
	if name == "" {
		return domain.HostInfo{}, fmt.Errorf("%w: empty hostname", domain.ErrHostnameResolution)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	addrs, err := r.resolver.LookupHost(ctx, name)
	if err != nil {
		return domain.HostInfo{}, fmt.Errorf("%w: lookup %s: %v", domain.ErrHostnameResolution, name, err)
	}
	if len(addrs) == 0 {
		return domain.HostInfo{}, fmt.Errorf("%w: lookup %s: no addresses", domain.ErrHostnameResolution, name)
	}

	return domain.HostInfo{Hostname: name, OSName: r.osName}, nil
}

// OSName maps a GOOS value to the display name operators expect to see.
// Unknown values are returned unchanged.
func OSName(goos string) string {
	switch goos {
	case "linux":
		return "Linux"
	case "darwin":
		return "Mac OS X"
	case "windows":
		return "Windows"
	case "freebsd":
		return "FreeBSD"
	case "openbsd":
		return "OpenBSD"
	case "netbsd":
		return "NetBSD"
	case "solaris":
		return "SunOS"
	case "aix":
		return "AIX"
	}
	return goos
}
