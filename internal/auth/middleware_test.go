package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func handlerQueEcoaUsuario(t *testing.T, esperadoID string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UsuarioDoContexto(r.Context())
		if !ok {
			t.Error("ID do usuário ausente do contexto")
		}
		if id != esperadoID {
			t.Errorf("ID no contexto = %q, esperado %q", id, esperadoID)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddlewareExigeBearer(t *testing.T) {
	g := NovoGeradorTokens("segredo-de-teste")
	protegido := Middleware(g)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	casos := []struct {
		nome   string
		header string
	}{
		{"sem header", ""},
		{"esquema errado", "Basic abc"},
		{"token inválido", "Bearer nao-e-um-jwt"},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/local/", nil)
			if c.header != "" {
				req.Header.Set("Authorization", c.header)
			}
			rec := httptest.NewRecorder()
			protegido.ServeHTTP(rec, req)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, esperado 401", rec.Code)
			}
		})
	}
}

func TestMiddlewareAceitaAccessValido(t *testing.T) {
	g := NovoGeradorTokens("segredo-de-teste")
	u := dadosDeTeste()

	par, err := g.GerarPar(u)
	if err != nil {
		t.Fatalf("gerar par falhou: %v", err)
	}

	protegido := Middleware(g)(handlerQueEcoaUsuario(t, u.ID))
	req := httptest.NewRequest(http.MethodGet, "/local/", nil)
	req.Header.Set("Authorization", "Bearer "+par.Access)
	rec := httptest.NewRecorder()
	protegido.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, esperado 200", rec.Code)
	}
}

func TestMiddlewareRecusaRefreshComoAccess(t *testing.T) {
	g := NovoGeradorTokens("segredo-de-teste")

	par, err := g.GerarPar(dadosDeTeste())
	if err != nil {
		t.Fatalf("gerar par falhou: %v", err)
	}

	protegido := Middleware(g)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("refresh token não deveria autorizar a requisição")
	}))
	req := httptest.NewRequest(http.MethodGet, "/local/", nil)
	req.Header.Set("Authorization", "Bearer "+par.Refresh)
	rec := httptest.NewRecorder()
	protegido.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, esperado 401", rec.Code)
	}
}

func TestMiddlewareLiberaPreflight(t *testing.T) {
	g := NovoGeradorTokens("segredo-de-teste")
	protegido := Middleware(g)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/local/", nil)
	rec := httptest.NewRecorder()
	protegido.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("preflight: status = %d, esperado 200", rec.Code)
	}
}
