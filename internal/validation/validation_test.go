package validation

import (
	"errors"
	"testing"

	"github.com/projetomogo/api-mogo/internal/apperrors"
)

func TestColetorAcumulaTodosOsErros(t *testing.T) {
	var c Coletor
	if c.TemErros() {
		t.Error("coletor recém-criado não deveria ter erros")
	}
	if c.Erro() != nil {
		t.Error("coletor vazio deveria devolver nil")
	}

	c.Adicionar("nome", "Nome inválido")
	c.Adicionar("email", "Email inválido")

	err := c.Erro()
	var e *apperrors.Erro
	if !errors.As(err, &e) {
		t.Fatalf("esperado *apperrors.Erro, veio %T", err)
	}
	if e.Tipo != apperrors.TipoValidacao {
		t.Errorf("tipo = %v, esperado validação", e.Tipo)
	}
	if len(e.Campos) != 2 {
		t.Errorf("campos = %d, esperado 2", len(e.Campos))
	}
}

func TestNomeValido(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
		valido   bool
	}{
		{"joão", "João", true},
		{"  maria clara  ", "Maria Clara", true},
		{"j", "", false},
		{"jo4o", "", false},
		{"ana!", "", false},
		{"", "", false},
	}
	for _, c := range casos {
		got, ok := NomeValido(c.entrada)
		if ok != c.valido || got != c.esperado {
			t.Errorf("NomeValido(%q) = (%q, %v), esperado (%q, %v)",
				c.entrada, got, ok, c.esperado, c.valido)
		}
	}
}

func TestValidarSenhaForte(t *testing.T) {
	casos := []struct {
		senha    string
		mensagem string
	}{
		{"Abc123!@", ""},
		{"curta1!", "Senha deve ter pelo menos 8 caracteres"},
		{"semcapital1!", "Senha deve ter pelo menos 1 letra maiúscula"},
		{"SemNumero!", "Senha deve ter pelo menos 1 número"},
		{"SemEspecial1", "Senha deve ter pelo menos 1 caractere especial"},
	}
	for _, c := range casos {
		msg, ok := ValidarSenhaForte(c.senha)
		if c.mensagem == "" {
			if !ok {
				t.Errorf("senha %q deveria passar, veio %q", c.senha, msg)
			}
			continue
		}
		if ok || msg != c.mensagem {
			t.Errorf("senha %q: mensagem %q, esperado %q", c.senha, msg, c.mensagem)
		}
	}
}

func TestLimparApelido(t *testing.T) {
	if got := LimparApelido("Casa da Vó <3!!"); got != "Casa da Vó 3" {
		t.Errorf("LimparApelido = %q", got)
	}
	if got := LimparApelido("  !!!  "); got != "" {
		t.Errorf("apelido só de lixo deveria virar vazio, veio %q", got)
	}
}

func TestPertenceA(t *testing.T) {
	opcoes := []string{"fisica", "visual"}
	if !PertenceA("visual", opcoes) {
		t.Error("valor presente deveria pertencer")
	}
	if PertenceA("Visual", opcoes) {
		t.Error("comparação deve ser sensível a maiúsculas")
	}
}
