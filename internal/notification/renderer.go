package notification

import (
	"fmt"
	"strings"
	"time"

	"tsmit_os/internal/domain/entities"
)

// NoSolutionProvided is substituted for the technical-solution variable when
// the order has no solution text yet.
const NoSolutionProvided = "Nenhuma solução técnica detalhada foi fornecida."

// dateLayout renders dates the way the shop communicates them (pt-BR,
// date only, no time).
const dateLayout = "02/01/2006"

// Context carries the variable set recognized by notification templates.
type Context struct {
	ClientName        string
	CollaboratorName  string
	OSNumber          string
	Equipment         string
	StatusName        string
	EntryDate         time.Time
	PickupDate        time.Time
	TechnicalSolution string
}

// BuildContext assembles the template variables for an order arriving at a
// status. PickupDate is the dispatch date itself: it is only meaningful when
// the target status is pickup-flagged, but rendering it is harmless
// otherwise.
func BuildContext(order entities.ServiceOrder, clientName string, now time.Time) Context {
	if clientName == "" {
		clientName = order.Collaborator.Name
	}
	return Context{
		ClientName:       clientName,
		CollaboratorName: order.Collaborator.Name,
		OSNumber:         order.OrderNumber,
		Equipment: strings.TrimSpace(fmt.Sprintf("%s %s %s",
			order.Equipment.Type, order.Equipment.Brand, order.Equipment.Model)),
		StatusName:        order.Status.Name,
		EntryDate:         order.CreatedAt,
		PickupDate:        now,
		TechnicalSolution: order.TechnicalSolution,
	}
}

// Render substitutes the recognized placeholder variables into a template.
// Both token syntaxes are honored: the current double-brace form shown in
// the notification settings screen and the legacy single-brace form still
// present in templates saved by older versions.
func Render(template string, ctx Context) string {
	solution := ctx.TechnicalSolution
	if strings.TrimSpace(solution) == "" {
		solution = NoSolutionProvided
	}

	r := strings.NewReplacer(
		"{{clientName}}", ctx.ClientName,
		"{{osNumber}}", ctx.OSNumber,
		"{{equipment}}", ctx.Equipment,
		"{{statusName}}", ctx.StatusName,
		"{{entryDate}}", ctx.EntryDate.Format(dateLayout),
		"{{pickupDate}}", ctx.PickupDate.Format(dateLayout),
		"{{technicalSolution}}", solution,
		"{client_name}", ctx.ClientName,
		"{collaborator_name}", ctx.CollaboratorName,
		"{os_number}", ctx.OSNumber,
		"{equipment}", ctx.Equipment,
		"{status_name}", ctx.StatusName,
		"{entry_date}", ctx.EntryDate.Format(dateLayout),
		"{pickup_date}", ctx.PickupDate.Format(dateLayout),
		"{technical_solution}", solution,
	)
	return r.Replace(template)
}

// Subject renders the email subject for a transition. A configured
// per-status subject template wins; otherwise the standard subject line is
// used.
func Subject(status entities.Status, ctx Context) string {
	if strings.TrimSpace(status.EmailSubject) != "" {
		return Render(status.EmailSubject, ctx)
	}
	return fmt.Sprintf("Atualização da OS %s - Status: %s", ctx.OSNumber, ctx.StatusName)
}

// EmailHTML renders a body template and wraps it in the standard HTML
// frame. Newlines in the template become <br> line breaks.
func EmailHTML(template string, ctx Context, order entities.ServiceOrder) string {
	body := strings.ReplaceAll(Render(template, ctx), "\n", "<br>")

	const commonStyle = "font-family: Arial, sans-serif; line-height: 1.6; color: #333;"
	const headerStyle = "color: #0056b3;"
	const footerStyle = "font-size: 0.8em; color: #777;"

	return fmt.Sprintf(`
        <div style="%s">
            <h2 style="%s">Atualização da Ordem de Serviço %s</h2>
            <p>Prezado(a) %s,</p>
            <div>%s</div>
            <p><strong>Resumo do Equipamento:</strong></p>
            <ul>
                <li><strong>Número da OS:</strong> %s</li>
                <li><strong>Equipamento:</strong> %s - %s %s</li>
                <li><strong>Problema Relatado:</strong> %s</li>
            </ul>
            <p>Atenciosamente,</p>
            <p>Sua Equipe TSMIT</p>
            <hr style="border: 0; border-top: 1px solid #eee; margin: 20px 0;"/>
            <p style="%s">Este é um e-mail automático, por favor, não responda.</p>
        </div>`,
		commonStyle, headerStyle, order.OrderNumber, ctx.ClientName, body,
		order.OrderNumber, order.Equipment.Type, order.Equipment.Brand,
		order.Equipment.Model, order.ReportedProblem, footerStyle)
}
