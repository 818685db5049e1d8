package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/projetomogo/api-mogo/internal/apperrors"
)

type ctxKey string

const CtxUsuarioID ctxKey = "usuarioID"

// Middleware exige um access token Bearer válido e injeta o ID do usuário
// no contexto da requisição.
func Middleware(gerador *GeradorTokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			h := r.Header.Get("Authorization")
			if h == "" || !strings.HasPrefix(h, "Bearer ") {
				apperrors.Responder(w, apperrors.AutenticacaoNecessaria())
				return
			}
			claims, err := gerador.ValidarAccess(strings.TrimPrefix(h, "Bearer "))
			if err != nil {
				apperrors.Responder(w, apperrors.AutenticacaoNecessaria())
				return
			}
			ctx := context.WithValue(r.Context(), CtxUsuarioID, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UsuarioDoContexto recupera o ID do usuário autenticado.
func UsuarioDoContexto(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CtxUsuarioID).(string)
	return id, ok
}
