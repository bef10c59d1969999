package followup

import (
	"sort"
	"strings"
	"time"

	"github.com/tiadeasalon/salon-manager/internal/models"
)

// ===============================
// Reconciliação cliente x agendamento
// ===============================
//
// O vínculo histórico entre agendamento e cliente é textual: telas
// diferentes gravaram o rótulo em dois formatos ("Criança (Responsável)"
// e "Criança - Responsável"). Agendamentos novos carregam client_id, mas
// os antigos só casam pelos níveis abaixo, do mais específico para o
// mais genérico.

// Labels retorna os dois formatos de rótulo produzidos pelas telas de
// agendamento para um cliente.
func Labels(c *models.Client) []string {
	return []string{
		c.ChildName + " (" + c.ResponsibleName + ")",
		c.ChildName + " - " + c.ResponsibleName,
	}
}

// labelFragment extrai o trecho antes do parêntese de um rótulo.
// "Ana (Maria)" -> "Ana"
func labelFragment(label string) string {
	if i := strings.Index(label, " ("); i >= 0 {
		return strings.TrimSpace(label[:i])
	}
	return strings.TrimSpace(label)
}

// MatchesClient informa se um agendamento pertence ao cliente.
// O vínculo por id tem prioridade sobre qualquer nível textual.
func MatchesClient(c *models.Client, ap *models.Appointment) bool {
	if ap.ClientID != nil {
		return *ap.ClientID == c.ID
	}

	label := strings.TrimSpace(ap.ClientName)
	if label == "" {
		return false
	}

	// Níveis 1 a 3: igualdade exata
	for _, l := range Labels(c) {
		if label == l {
			return true
		}
	}
	if label == c.ChildName || label == c.ResponsibleName {
		return true
	}

	// Nível 4: substring, sem diferenciar maiúsculas
	term := strings.ToLower(label)
	child := strings.ToLower(c.ChildName)
	resp := strings.ToLower(c.ResponsibleName)

	if strings.Contains(term, child) {
		return true
	}
	frag := strings.ToLower(labelFragment(label))
	if frag != "" && (strings.Contains(child, frag) || strings.Contains(resp, frag)) {
		return true
	}

	return false
}

// LastCompletedService devolve a data do serviço concluído mais recente
// do cliente. ok=false significa cliente sem histórico.
func LastCompletedService(
	c *models.Client,
	appointments []models.Appointment,
	loc *time.Location,
) (time.Time, bool) {

	var last time.Time
	found := false

	for i := range appointments {
		ap := &appointments[i]
		if ap.Status != "completed" {
			continue
		}
		if !MatchesClient(c, ap) {
			continue
		}

		d, err := ap.ParsedDate(loc)
		if err != nil {
			continue
		}
		if !found || d.After(last) {
			last = d
			found = true
		}
	}

	return last, found
}

// ResolveClient resolve um rótulo digitado no formulário para um cliente
// cadastrado. Os níveis exatos são esgotados em toda a lista antes de
// qualquer casamento parcial; no nível parcial vence o maior trecho
// casado e, em empate, o menor id.
func ResolveClient(label string, clients []models.Client) *models.Client {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil
	}

	// Nível 1: formatos combinados
	for i := range clients {
		for _, l := range Labels(&clients[i]) {
			if label == l {
				return &clients[i]
			}
		}
	}

	// Nível 2: nome da criança
	for i := range clients {
		if label == clients[i].ChildName {
			return &clients[i]
		}
	}

	// Nível 3: nome do responsável
	for i := range clients {
		if label == clients[i].ResponsibleName {
			return &clients[i]
		}
	}

	// Nível 4: busca parcial, sem diferenciar maiúsculas
	term := strings.ToLower(label)
	frag := strings.ToLower(labelFragment(label))

	type candidate struct {
		client  *models.Client
		matched int
	}
	var candidates []candidate

	for i := range clients {
		c := &clients[i]
		child := strings.ToLower(c.ChildName)
		resp := strings.ToLower(c.ResponsibleName)

		matched := 0
		switch {
		case child == term || resp == term:
			matched = len(term)
		case strings.Contains(term, child):
			matched = len(child)
		case frag != "" && (strings.Contains(child, frag) || strings.Contains(resp, frag)):
			matched = len(frag)
		}
		if matched > 0 {
			candidates = append(candidates, candidate{client: c, matched: matched})
		}
	}

	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].matched != candidates[j].matched {
			return candidates[i].matched > candidates[j].matched
		}
		return candidates[i].client.ID < candidates[j].client.ID
	})

	return candidates[0].client
}
