package validation

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/projetomogo/api-mogo/internal/apperrors"
)

// Coletor acumula erros de campo de uma requisição. Toda a validação roda
// até o fim: o chamador recebe a lista completa, não apenas o primeiro erro.
type Coletor struct {
	erros []apperrors.ErroCampo
}

func (c *Coletor) Adicionar(campo, mensagem string) {
	c.erros = append(c.erros, apperrors.ErroCampo{Campo: campo, Mensagem: mensagem})
}

func (c *Coletor) TemErros() bool {
	return len(c.erros) > 0
}

// Erro devolve o erro de validação acumulado, ou nil se tudo passou.
func (c *Coletor) Erro() error {
	if len(c.erros) == 0 {
		return nil
	}
	return apperrors.Validacao(c.erros...)
}

var (
	regexEmail       = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	regexNome        = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]*$`)
	regexMaiuscula   = regexp.MustCompile(`[A-Z]`)
	regexNumero      = regexp.MustCompile(`[0-9]`)
	regexEspecial    = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
	regexApelidoLixo = regexp.MustCompile(`[^\wÀ-ÿ\s-]`)
)

func EmailValido(email string) bool {
	return regexEmail.MatchString(email)
}

// NomeValido aplica as regras de nome/sobrenome: sem dígitos, ao menos dois
// caracteres após trim, apenas letras e espaços.
func NomeValido(nome string) (string, bool) {
	if regexNumero.MatchString(nome) {
		return "", false
	}
	limpo := strings.TrimSpace(nome)
	if len([]rune(limpo)) < 2 {
		return "", false
	}
	if !regexNome.MatchString(nome) {
		return "", false
	}
	return titulo(limpo), true
}

// titulo coloca a inicial de cada palavra em maiúscula ("joão da silva" ->
// "João Da Silva"), equivalente ao .title() aplicado no cadastro.
func titulo(s string) string {
	palavras := strings.Fields(strings.ToLower(s))
	for i, p := range palavras {
		r := []rune(p)
		r[0] = unicode.ToUpper(r[0])
		palavras[i] = string(r)
	}
	return strings.Join(palavras, " ")
}

// ValidarSenhaForte confere os critérios mínimos de segurança e devolve a
// mensagem do primeiro critério violado.
func ValidarSenhaForte(senha string) (string, bool) {
	if len(senha) < 8 {
		return "Senha deve ter pelo menos 8 caracteres", false
	}
	if !regexMaiuscula.MatchString(senha) {
		return "Senha deve ter pelo menos 1 letra maiúscula", false
	}
	if !regexNumero.MatchString(senha) {
		return "Senha deve ter pelo menos 1 número", false
	}
	if !regexEspecial.MatchString(senha) {
		return "Senha deve ter pelo menos 1 caractere especial", false
	}
	return "", true
}

// LimparApelido remove caracteres especiais do apelido de favorito.
func LimparApelido(apelido string) string {
	return strings.TrimSpace(regexApelidoLixo.ReplaceAllString(apelido, ""))
}

// PertenceA informa se valor está entre as opções de um enum.
func PertenceA(valor string, opcoes []string) bool {
	for _, o := range opcoes {
		if valor == o {
			return true
		}
	}
	return false
}
