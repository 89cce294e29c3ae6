package notification

import (
	"strings"
	"testing"
	"time"

	"tsmit_os/internal/domain/entities"
)

func testOrder() entities.ServiceOrder {
	return entities.ServiceOrder{
		OrderNumber: "OS-042",
		Collaborator: entities.Collaborator{
			Name:  "João Pereira",
			Phone: "(11) 98888-7777",
		},
		Equipment: entities.Equipment{
			Type:  "Notebook",
			Brand: "Dell",
			Model: "Latitude 5420",
		},
		ReportedProblem: "Não liga",
		Status:          entities.Status{ID: "pickup", Name: "Pronta para Retirada"},
		CreatedAt:       time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
	}
}

func TestRender_CurrentTokens(t *testing.T) {
	ctx := BuildContext(testOrder(), "ACME Ltda", time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC))
	got := Render("Olá {{clientName}}, a OS {{osNumber}} ({{equipment}}) mudou para {{statusName}}. Entrada: {{entryDate}}. Retirada: {{pickupDate}}.", ctx)

	want := "Olá ACME Ltda, a OS OS-042 (Notebook Dell Latitude 5420) mudou para Pronta para Retirada. Entrada: 10/03/2026. Retirada: 15/03/2026."
	if got != want {
		t.Fatalf("unexpected render:\n got: %s\nwant: %s", got, want)
	}
}

func TestRender_LegacyTokens(t *testing.T) {
	ctx := BuildContext(testOrder(), "ACME Ltda", time.Now())
	got := Render("Olá {client_name}, a sua Ordem de Serviço nº {os_number} mudou para o status: {status_name}. Contato: {collaborator_name}.", ctx)

	want := "Olá ACME Ltda, a sua Ordem de Serviço nº OS-042 mudou para o status: Pronta para Retirada. Contato: João Pereira."
	if got != want {
		t.Fatalf("unexpected render:\n got: %s\nwant: %s", got, want)
	}
}

func TestRender_TechnicalSolutionFallback(t *testing.T) {
	ctx := BuildContext(testOrder(), "ACME Ltda", time.Now())
	got := Render("Solução: {{technicalSolution}}", ctx)
	if got != "Solução: "+NoSolutionProvided {
		t.Fatalf("expected fallback solution text, got %q", got)
	}

	order := testOrder()
	order.TechnicalSolution = "Troca da fonte."
	ctx = BuildContext(order, "ACME Ltda", time.Now())
	if got := Render("Solução: {technical_solution}", ctx); got != "Solução: Troca da fonte." {
		t.Fatalf("expected real solution text, got %q", got)
	}
}

func TestBuildContext_ClientNameFallsBackToCollaborator(t *testing.T) {
	ctx := BuildContext(testOrder(), "", time.Now())
	if ctx.ClientName != "João Pereira" {
		t.Fatalf("expected collaborator name fallback, got %q", ctx.ClientName)
	}
}

func TestSubject(t *testing.T) {
	ctx := BuildContext(testOrder(), "ACME Ltda", time.Now())

	status := entities.Status{Name: "Pronta para Retirada"}
	if got := Subject(status, ctx); got != "Atualização da OS OS-042 - Status: Pronta para Retirada" {
		t.Fatalf("unexpected default subject: %q", got)
	}

	status.EmailSubject = "OS {{osNumber}} atualizada"
	if got := Subject(status, ctx); got != "OS OS-042 atualizada" {
		t.Fatalf("unexpected templated subject: %q", got)
	}
}

func TestEmailHTML_ConvertsNewlines(t *testing.T) {
	order := testOrder()
	ctx := BuildContext(order, "ACME Ltda", time.Now())
	html := EmailHTML("linha um\nlinha dois", ctx, order)

	if !strings.Contains(html, "linha um<br>linha dois") {
		t.Fatalf("expected <br> conversion, got: %s", html)
	}
	if !strings.Contains(html, "Prezado(a) ACME Ltda") || !strings.Contains(html, "OS-042") {
		t.Fatalf("expected standard frame in html")
	}
}

func TestSanitizePhoneNumber(t *testing.T) {
	cases := []struct{ in, want string }{
		{"(11) 98888-7777", "5511988887777"},
		{"+55 (11) 98888-7777", "5511988887777"},
		{"5511988887777", "5511988887777"},
		{"1234", "1234"},
	}
	for _, tc := range cases {
		if got := SanitizePhoneNumber(tc.in); got != tc.want {
			t.Fatalf("SanitizePhoneNumber(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
