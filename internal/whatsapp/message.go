package whatsapp

import (
	"fmt"
	"strings"
)

// DetectPronoun escolhe o pronome da mensagem de retorno a partir do nome
// da criança. Heurística simples: nomes terminados em "a" são tratados
// como femininos.
func DetectPronoun(name string) string {
	clean := strings.ToLower(strings.TrimSpace(name))
	if strings.HasSuffix(clean, "a") {
		return "ela"
	}
	return "ele"
}

// RenderFollowup preenche o template de retorno. {cliente} recebe o nome
// do responsável e {pronome} o pronome da criança.
func RenderFollowup(template, responsibleName, childName string) string {
	msg := strings.ReplaceAll(template, "{cliente}", responsibleName)
	msg = strings.ReplaceAll(msg, "{pronome}", DetectPronoun(childName))
	return msg
}

// BookingMessage monta o corpo enviado pelo formulário público de
// agendamento.
func BookingMessage(stylistName, responsibleName, childName, address, birthdate string) string {
	return fmt.Sprintf(
		"Olá %s, gostaria de agendar um corte com você. Segue as informações:\n\n"+
			"Nome do responsável: %s\n"+
			"Nome da criança: %s\n"+
			"Endereço: %s\n"+
			"Data de nascimento: %s",
		stylistName, responsibleName, childName, address, birthdate,
	)
}
