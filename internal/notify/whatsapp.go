package notify

import (
	"net/url"
	"strings"
)

// WhatsAppLink monta o link wa.me para um telefone e texto. O telefone é
// reduzido a dígitos; o texto vai URL-encodado.
func WhatsAppLink(phone, text string) string {
	digits := strings.Builder{}
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	return "https://wa.me/" + digits.String() + "?text=" + url.QueryEscape(text)
}

// RenderTemplate substitui os placeholders {date}, {time} e {amount}
// usados nas mensagens configuráveis da loja.
func RenderTemplate(template string, vars map[string]string) string {
	out := template
	for k, v := range vars {
		out = strings.ReplaceAll(out, "{"+k+"}", v)
	}
	return out
}
