package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/tiadeasalon/salon-manager/internal/models"
)

// Linha do extrato financeiro exportado
var header = []string{"Data", "Valor", "Descrição", "Tipo"}

// FinancialCSV gera o extrato do mês: lançamentos manuais primeiro,
// depois os agendamentos concluídos com valor. O filtro de local se
// aplica só aos agendamentos; lançamentos manuais não têm local.
func FinancialCSV(
	records []models.FinancialRecord,
	completedAppointments []models.Appointment,
	location string,
) ([]byte, error) {

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i := range records {
		r := &records[i]
		row := []string{
			FormatDate(r.Date),
			FormatCurrency(r.Amount),
			r.Description,
			"Receita Manual",
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	for i := range completedAppointments {
		ap := &completedAppointments[i]
		if ap.Status != "completed" || ap.ServiceValue == nil {
			continue
		}
		if location != "" && ap.Location != location {
			continue
		}
		row := []string{
			FormatDate(ap.Date),
			FormatCurrency(*ap.ServiceValue),
			"Serviço - " + ap.ClientName,
			"Agendamento",
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FormatDate converte 2006-01-02 para a exibição dd/mm/aaaa.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "Data inválida"
	}
	return t.Format("02/01/2006")
}

// FormatCurrency formata em real: separador de milhar com ponto e
// decimais com vírgula.
func FormatCurrency(value float64) string {
	s := fmt.Sprintf("%.2f", value)

	intPart := s[:len(s)-3]
	decPart := s[len(s)-2:]

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := "R$ " + strings.Join(groups, ".") + "," + decPart
	if neg {
		out = "-" + out
	}
	return out
}
