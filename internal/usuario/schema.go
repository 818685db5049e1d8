package usuario

import (
	"strings"

	"github.com/projetomogo/api-mogo/internal/validation"
)

// RegistroRequest é o corpo de POST /usuario/register/.
type RegistroRequest struct {
	Nome                 string `json:"nome"`
	Sobrenome            string `json:"sobrenome"`
	Email                string `json:"email"`
	EmailConfirmation    string `json:"email_confirmation"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	FotoPerfil           string `json:"foto_perfil"`
	Bio                  string `json:"bio"`
	AceitaTermos         bool   `json:"aceita_termos"`
	AceitaPrivacidade    bool   `json:"aceita_privacidade"`
}

// RegistroNormalizado é o resultado da validação do cadastro.
type RegistroNormalizado struct {
	NomeCompleto string
	Email        string
	Password     string
	FotoPerfil   string
	Bio          string
}

// Validar aplica as regras por campo e, só depois que todas passam, as
// regras cruzadas de confirmação. Todos os erros são devolvidos juntos.
func (r RegistroRequest) Validar() (RegistroNormalizado, error) {
	var c validation.Coletor

	nome, okNome := validation.NomeValido(r.Nome)
	if !okNome {
		c.Adicionar("nome", "Nome/sobrenome deve conter apenas letras e ter pelo menos 2 caracteres")
	}
	sobrenome, okSobrenome := validation.NomeValido(r.Sobrenome)
	if !okSobrenome {
		c.Adicionar("sobrenome", "Nome/sobrenome deve conter apenas letras e ter pelo menos 2 caracteres")
	}

	email := strings.ToLower(strings.TrimSpace(r.Email))
	if !validation.EmailValido(email) {
		c.Adicionar("email", "Email inválido")
	}
	if !validation.EmailValido(strings.ToLower(strings.TrimSpace(r.EmailConfirmation))) {
		c.Adicionar("email_confirmation", "Email inválido")
	}

	if msg, ok := validation.ValidarSenhaForte(r.Password); !ok {
		c.Adicionar("password", msg)
	}
	if len(r.PasswordConfirmation) < 8 {
		c.Adicionar("password_confirmation", "Senha deve ter pelo menos 8 caracteres")
	}

	if len([]rune(r.Bio)) > 500 {
		c.Adicionar("bio", "Bio deve ter no máximo 500 caracteres")
	}

	// Regras cruzadas só rodam quando os campos individuais passaram
	if !c.TemErros() {
		if email != strings.ToLower(strings.TrimSpace(r.EmailConfirmation)) {
			c.Adicionar("email_confirmation", "Email e confirmação devem ser idênticos")
		}
		if r.Password != r.PasswordConfirmation {
			c.Adicionar("password_confirmation", "Senha e confirmação devem ser idênticas")
		}
		if !r.AceitaTermos || !r.AceitaPrivacidade {
			c.Adicionar("aceita_termos", "Deve aceitar termos de uso e política de privacidade")
		}
	}

	if err := c.Erro(); err != nil {
		return RegistroNormalizado{}, err
	}

	return RegistroNormalizado{
		NomeCompleto: nome + " " + sobrenome,
		Email:        email,
		Password:     r.Password,
		FotoPerfil:   r.FotoPerfil,
		Bio:          r.Bio,
	}, nil
}

// LoginRequest é o corpo de POST /usuario/login/.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (l LoginRequest) Validar() error {
	var c validation.Coletor
	if !validation.EmailValido(strings.ToLower(strings.TrimSpace(l.Email))) {
		c.Adicionar("email", "Email inválido")
	}
	if len(l.Password) < 8 {
		c.Adicionar("password", "Senha deve ter pelo menos 8 caracteres")
	}
	return c.Erro()
}

// AtualizarRequest é o corpo de PUT/PATCH /usuario/{id}/. Ponteiros
// distinguem "não enviado" de "enviado vazio".
type AtualizarRequest struct {
	Nome *string `json:"nome"`
	Bio  *string `json:"bio"`
}
