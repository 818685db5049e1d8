package apperrors

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

type respostaErro struct {
	Mensagem string      `json:"message"`
	Campos   []ErroCampo `json:"campos,omitempty"`
}

// Responder traduz um erro tipado para a resposta HTTP correspondente.
// Erros fora da taxonomia viram 500 opaco, com detalhe apenas no log.
func Responder(w http.ResponseWriter, err error) {
	var e *Erro
	if !errors.As(err, &e) {
		slog.Error("erro não tratado", "err", err)
		escreverJSON(w, http.StatusInternalServerError, respostaErro{Mensagem: "Erro inesperado."})
		return
	}
	escreverJSON(w, statusHTTP(e.Tipo), respostaErro{Mensagem: e.Mensagem, Campos: e.Campos})
}

// ResponderJSON escreve uma resposta de sucesso com o status informado.
func ResponderJSON(w http.ResponseWriter, status int, corpo interface{}) {
	if corpo == nil {
		w.WriteHeader(status)
		return
	}
	escreverJSON(w, status, corpo)
}

func escreverJSON(w http.ResponseWriter, status int, corpo interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(corpo); err != nil {
		slog.Error("erro ao serializar resposta", "err", err)
	}
}
