package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Tipos de erro da aplicação. Cada tipo carrega o status HTTP e a mensagem
// que o cliente recebe; o serviço apenas devolve o erro e o handler delega
// para Responder.
type Tipo string

const (
	TipoValidacao              Tipo = "validation_error"
	TipoNaoEncontrado          Tipo = "not_found"
	TipoJaExiste               Tipo = "already_exists"
	TipoContaDesativada        Tipo = "account_deactivated"
	TipoCredenciaisInvalidas   Tipo = "invalid_credentials"
	TipoAutenticacaoNecessaria Tipo = "authentication_required"
	TipoCoordenadaInvalida     Tipo = "invalid_coordinates"
)

// ErroCampo descreve a falha de um campo específico da requisição.
type ErroCampo struct {
	Campo    string `json:"campo"`
	Mensagem string `json:"mensagem"`
}

// Erro é o erro tipado trocado entre service e handler.
type Erro struct {
	Tipo     Tipo
	Mensagem string
	Campos   []ErroCampo
}

func (e *Erro) Error() string {
	if len(e.Campos) > 0 {
		return fmt.Sprintf("%s: %s (%d campos)", e.Tipo, e.Mensagem, len(e.Campos))
	}
	return fmt.Sprintf("%s: %s", e.Tipo, e.Mensagem)
}

func novo(tipo Tipo, mensagem string) *Erro {
	return &Erro{Tipo: tipo, Mensagem: mensagem}
}

// Construtores com as mensagens padrão em português.

func Validacao(campos ...ErroCampo) *Erro {
	return &Erro{
		Tipo:     TipoValidacao,
		Mensagem: "Solicitação incorreta. Verifique um ou mais campos.",
		Campos:   campos,
	}
}

func ValidacaoMsg(mensagem string, campos ...ErroCampo) *Erro {
	return &Erro{Tipo: TipoValidacao, Mensagem: mensagem, Campos: campos}
}

func NaoEncontrado(mensagem string) *Erro {
	return novo(TipoNaoEncontrado, mensagem)
}

func JaExiste(mensagem string) *Erro {
	return novo(TipoJaExiste, mensagem)
}

func ContaDesativada() *Erro {
	return novo(TipoContaDesativada, "Esta conta foi desativada e não pode ser mais utilizada.")
}

func CredenciaisInvalidas() *Erro {
	return novo(TipoCredenciaisInvalidas, "Credenciais inválidas.")
}

func AutenticacaoNecessaria() *Erro {
	return novo(TipoAutenticacaoNecessaria, "Autenticação necessária. Verifique se está logado.")
}

func CoordenadaInvalida() *Erro {
	return novo(TipoCoordenadaInvalida, "Coordenadas inválidas fornecidas")
}

// EhTipo informa se err é um *Erro do tipo dado.
func EhTipo(err error, tipo Tipo) bool {
	var e *Erro
	if errors.As(err, &e) {
		return e.Tipo == tipo
	}
	return false
}

// statusHTTP é o mapeamento fixo tipo -> status.
func statusHTTP(tipo Tipo) int {
	switch tipo {
	case TipoValidacao, TipoCoordenadaInvalida:
		return http.StatusBadRequest
	case TipoNaoEncontrado:
		return http.StatusNotFound
	case TipoJaExiste:
		return http.StatusConflict
	case TipoContaDesativada:
		return http.StatusForbidden
	case TipoCredenciaisInvalidas, TipoAutenticacaoNecessaria:
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
