package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tempo de vida dos tokens
const (
	AccessTTL  = 15 * time.Minute
	RefreshTTL = 30 * 24 * time.Hour
)

const (
	usoAccess  = "access"
	usoRefresh = "refresh"
)

// Claims do token, com as flags de perfil derivadas no login.
type Claims struct {
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	Nome       string `json:"nome"`
	IsPCD      bool   `json:"is_pcd"`
	IsTerceiro bool   `json:"is_terceiro"`
	Uso        string `json:"token_use"`
	jwt.RegisteredClaims
}

// ParTokens é o par devolvido no login e no refresh.
type ParTokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// DadosUsuario são os dados embutidos nas claims.
type DadosUsuario struct {
	ID         string
	Email      string
	Nome       string
	IsPCD      bool
	IsTerceiro bool
}

// GeradorTokens assina e valida JWTs HS256 com o segredo injetado.
type GeradorTokens struct {
	segredo []byte
}

func NovoGeradorTokens(segredo string) *GeradorTokens {
	return &GeradorTokens{segredo: []byte(segredo)}
}

// GerarPar emite access e refresh tokens para o usuário autenticado.
func (g *GeradorTokens) GerarPar(u DadosUsuario) (ParTokens, error) {
	access, err := g.assinar(u, usoAccess, AccessTTL)
	if err != nil {
		return ParTokens{}, fmt.Errorf("gerar access token: %w", err)
	}
	refresh, err := g.assinar(u, usoRefresh, RefreshTTL)
	if err != nil {
		return ParTokens{}, fmt.Errorf("gerar refresh token: %w", err)
	}
	return ParTokens{Access: access, Refresh: refresh}, nil
}

func (g *GeradorTokens) assinar(u DadosUsuario, uso string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:     u.ID,
		Email:      u.Email,
		Nome:       u.Nome,
		IsPCD:      u.IsPCD,
		IsTerceiro: u.IsTerceiro,
		Uso:        uso,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.segredo)
}

// ValidarAccess valida um access token e retorna as claims.
func (g *GeradorTokens) ValidarAccess(tokenStr string) (*Claims, error) {
	return g.validar(tokenStr, usoAccess)
}

// ValidarRefresh valida um refresh token e retorna as claims.
func (g *GeradorTokens) ValidarRefresh(tokenStr string) (*Claims, error) {
	return g.validar(tokenStr, usoRefresh)
}

func (g *GeradorTokens) validar(tokenStr, uso string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return g.segredo, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token inválido ou expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("não foi possível extrair claims")
	}
	if claims.Uso != uso {
		return nil, fmt.Errorf("token de uso %q onde se esperava %q", claims.Uso, uso)
	}
	return claims, nil
}
