package domain

// WelcomeMessage is the body served at the service root.
const WelcomeMessage = "Welcome to the Cloud Native Book Catalog!"

// The trailing ",, I am yashwanth " is legacy copy that existing clients
// compare against byte-for-byte. Keep it as is.
const (
	greetingPrefix = "Hello "
	greetingSuffix = ", welcome to the book catalog!,, I am yashwanth "
	healthPrefix   = "Application is healthy and running on: "
)

// HostInfo is the pair of ambient machine facts reported by the health check.
type HostInfo struct {
	Hostname string `json:"hostname"`
	OSName   string `json:"os_name"`
}

// Greeting returns the personal greeting for name. The name is inserted
// verbatim: no trimming, escaping or length checks.
func Greeting(name string) string {
	return greetingPrefix + name + greetingSuffix
}

// HealthMessage renders the health check body for the given host.
func HealthMessage(info HostInfo) string {
	return healthPrefix + info.Hostname + " (" + info.OSName + ")"
}
