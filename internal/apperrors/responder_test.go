package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func corpoDaResposta(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var corpo map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &corpo); err != nil {
		t.Fatalf("resposta não é JSON: %v", err)
	}
	return corpo
}

func TestResponderTraduzCadaTipo(t *testing.T) {
	casos := []struct {
		err    error
		status int
	}{
		{Validacao(ErroCampo{Campo: "nome", Mensagem: "Nome inválido"}), http.StatusBadRequest},
		{CoordenadaInvalida(), http.StatusBadRequest},
		{NaoEncontrado("Usuário não encontrado"), http.StatusNotFound},
		{JaExiste("O email já pertence a um usuário."), http.StatusConflict},
		{ContaDesativada(), http.StatusForbidden},
		{CredenciaisInvalidas(), http.StatusUnauthorized},
		{AutenticacaoNecessaria(), http.StatusUnauthorized},
	}

	for _, c := range casos {
		rec := httptest.NewRecorder()
		Responder(rec, c.err)
		if rec.Code != c.status {
			t.Errorf("%v: status %d, esperado %d", c.err, rec.Code, c.status)
		}
	}
}

func TestResponderErroDesconhecidoVira500Opaco(t *testing.T) {
	rec := httptest.NewRecorder()
	Responder(rec, errors.New("falha interna com detalhe sensível"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, esperado 500", rec.Code)
	}
	corpo := corpoDaResposta(t, rec)
	if corpo["message"] != "Erro inesperado." {
		t.Errorf("mensagem = %v, esperado opaca", corpo["message"])
	}
}

func TestResponderErroEmbrulhadoAindaTraduz(t *testing.T) {
	rec := httptest.NewRecorder()
	Responder(rec, fmt.Errorf("buscar usuário: %w", NaoEncontrado("Usuário não encontrado")))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, esperado 404 para erro embrulhado", rec.Code)
	}
}

func TestResponderIncluiCamposDeValidacao(t *testing.T) {
	rec := httptest.NewRecorder()
	Responder(rec, Validacao(
		ErroCampo{Campo: "email", Mensagem: "Email inválido"},
		ErroCampo{Campo: "password", Mensagem: "Senha deve ter pelo menos 8 caracteres"},
	))

	corpo := corpoDaResposta(t, rec)
	campos, ok := corpo["campos"].([]interface{})
	if !ok || len(campos) != 2 {
		t.Errorf("campos = %v, esperados 2 itens", corpo["campos"])
	}
}

func TestResponderJSONSemCorpo(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponderJSON(rec, http.StatusNoContent, nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, esperado 204", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("corpo deveria ser vazio, veio %q", rec.Body.String())
	}
}

func TestEhTipo(t *testing.T) {
	err := JaExiste("Local já está nos favoritos")
	if !EhTipo(err, TipoJaExiste) {
		t.Error("EhTipo deveria reconhecer o tipo do erro")
	}
	if EhTipo(err, TipoNaoEncontrado) {
		t.Error("EhTipo não deveria confundir tipos")
	}
	if EhTipo(errors.New("qualquer"), TipoJaExiste) {
		t.Error("erro comum não pertence à taxonomia")
	}
}
