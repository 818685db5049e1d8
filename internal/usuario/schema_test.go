package usuario

import (
	"errors"
	"testing"

	"github.com/projetomogo/api-mogo/internal/apperrors"
)

func camposDoErro(t *testing.T, err error) map[string]string {
	t.Helper()
	var e *apperrors.Erro
	if !errors.As(err, &e) {
		t.Fatalf("esperado *apperrors.Erro, veio %T (%v)", err, err)
	}
	campos := map[string]string{}
	for _, c := range e.Campos {
		campos[c.Campo] = c.Mensagem
	}
	return campos
}

func TestRegistroValidarAcumulaErrosDeCampo(t *testing.T) {
	req := RegistroRequest{
		Nome:                 "j",
		Sobrenome:            "s1lva",
		Email:                "sem-arroba",
		EmailConfirmation:    "sem-arroba",
		Password:             "fraca",
		PasswordConfirmation: "fraca",
	}

	_, err := req.Validar()
	campos := camposDoErro(t, err)

	for _, campo := range []string{"nome", "sobrenome", "email", "password"} {
		if _, ok := campos[campo]; !ok {
			t.Errorf("faltou erro para o campo %q: %v", campo, campos)
		}
	}
}

func TestRegistroValidarRegrasCruzadasSoComCamposValidos(t *testing.T) {
	req := RegistroRequest{
		Nome:                 "joão",
		Sobrenome:            "silva",
		Email:                "joao@exemplo.com",
		EmailConfirmation:    "outro@exemplo.com",
		Password:             "Senha123!",
		PasswordConfirmation: "Diferente123!",
		AceitaTermos:         false,
		AceitaPrivacidade:    false,
	}

	_, err := req.Validar()
	campos := camposDoErro(t, err)

	if campos["email_confirmation"] != "Email e confirmação devem ser idênticos" {
		t.Errorf("confirmação de email: %q", campos["email_confirmation"])
	}
	if campos["password_confirmation"] != "Senha e confirmação devem ser idênticas" {
		t.Errorf("confirmação de senha: %q", campos["password_confirmation"])
	}
	if _, ok := campos["aceita_termos"]; !ok {
		t.Error("faltou erro de aceite de termos")
	}
}

func TestRegistroValidarNormaliza(t *testing.T) {
	req := RegistroRequest{
		Nome:                 "  maria clara  ",
		Sobrenome:            "souza",
		Email:                "  Maria@Exemplo.COM ",
		EmailConfirmation:    "maria@exemplo.com",
		Password:             "Senha123!",
		PasswordConfirmation: "Senha123!",
		AceitaTermos:         true,
		AceitaPrivacidade:    true,
	}

	dados, err := req.Validar()
	if err != nil {
		t.Fatalf("registro válido falhou: %v", err)
	}
	if dados.NomeCompleto != "Maria Clara Souza" {
		t.Errorf("nome completo = %q", dados.NomeCompleto)
	}
	if dados.Email != "maria@exemplo.com" {
		t.Errorf("email normalizado = %q", dados.Email)
	}
}

func TestLoginValidar(t *testing.T) {
	if err := (LoginRequest{Email: "a@b.com", Password: "12345678"}).Validar(); err != nil {
		t.Errorf("login bem formado falhou: %v", err)
	}
	err := (LoginRequest{Email: "errado", Password: "123"}).Validar()
	campos := camposDoErro(t, err)
	if len(campos) != 2 {
		t.Errorf("esperados 2 campos inválidos, veio %v", campos)
	}
}
