package validator

import (
	"net/mail"
	"strings"

	"github.com/spf13/viper"
)

// Email checks the address format and, when settings.allowed-email-domains
// is set, that it belongs to one of those domains.
func Email(email string) bool {
	return emailFormat(email) && emailDomain(email)
}

func emailFormat(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func emailDomain(email string) bool {
	validDomains := viper.GetStringSlice("settings.allowed-email-domains")
	if len(validDomains) == 0 {
		return true
	}

	email = strings.ToLower(email)
	for _, domain := range validDomains {
		if strings.HasSuffix(email, "@"+strings.TrimPrefix(strings.ToLower(domain), "@")) {
			return true
		}
	}
	return false
}
