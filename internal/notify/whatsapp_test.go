package notify

import "testing"

func TestWhatsAppLink(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		text  string
		want  string
	}{
		{
			"telefone formatado vira dígitos",
			"(11) 99999-0000",
			"Olá",
			"https://wa.me/11999990000?text=Ol%C3%A1",
		},
		{
			"texto com espaços",
			"11999990000",
			"Seu pet está pronto",
			"https://wa.me/11999990000?text=Seu+pet+est%C3%A1+pronto",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WhatsAppLink(tt.phone, tt.text); got != tt.want {
				t.Errorf("WhatsAppLink() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderTemplate(t *testing.T) {
	got := RenderTemplate("Confirmado para {date} às {time}.", map[string]string{
		"date": "01/09/2026",
		"time": "10:00",
	})

	want := "Confirmado para 01/09/2026 às 10:00."
	if got != want {
		t.Errorf("RenderTemplate() = %q, want %q", got, want)
	}
}

func TestRenderTemplateUnknownPlaceholderStays(t *testing.T) {
	got := RenderTemplate("Pendente: R$ {amount}", map[string]string{"date": "x"})

	if got != "Pendente: R$ {amount}" {
		t.Errorf("RenderTemplate() = %q", got)
	}
}
