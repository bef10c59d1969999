package whatsapp

import (
	"net/url"
	"strings"
)

const baseURL = "https://wa.me/"

// Link monta o deep link do WhatsApp para um telefone, com mensagem
// opcional pré-preenchida. O telefone é reduzido a dígitos.
func Link(phone, message string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	link := baseURL + digits.String()
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link
}
