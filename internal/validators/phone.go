package validators

import (
	"regexp"
	"strings"
)

// padrão frouxo: "+" opcional seguido de dígitos, espaços, hífens e parênteses
var phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]+$`)

func IsPhoneValid(phone string) bool {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return false
	}
	return phonePattern.MatchString(phone)
}
