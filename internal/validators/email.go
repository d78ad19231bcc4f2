package validators

import (
	"net"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmailFormatValid checks the local@domain.tld shape only.
func IsEmailFormatValid(email string) bool {
	return emailPattern.MatchString(email)
}

// IsEmailDomainValid resolves the mail domain. Used on the guardian email
// at intake and on admin emails at registration; an address whose domain
// cannot receive mail is a dead end.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
