package usuario

import (
	"github.com/projetomogo/api-mogo/internal/pcd"
)

// UsuarioTokenDTO são os dados do usuário devolvidos no login.
type UsuarioTokenDTO struct {
	ID         string `json:"id"`
	Nome       string `json:"nome"`
	Email      string `json:"email"`
	IsPCD      bool   `json:"is_pcd"`
	IsTerceiro bool   `json:"is_terceiro"`
}

// LoginResponse é o corpo de resposta de POST /usuario/login/.
type LoginResponse struct {
	Usuario UsuarioTokenDTO `json:"usuario"`
	Access  string          `json:"access"`
	Refresh string          `json:"refresh"`
}

// PerfilDTO é a resposta de GET /usuario/{id}/, com o perfil PCD embutido
// quando existir.
type PerfilDTO struct {
	Usuario
	PCD *pcd.PCD `json:"pcd"`
}

// RegistroPCDRequest é o corpo de POST /usuario/register/pcd/.
type RegistroPCDRequest struct {
	Usuario RegistroRequest  `json:"usuario"`
	PCD     pcd.CriarRequest `json:"pcd"`
}

// RegistroPCDResponse devolve o usuário e o perfil criados juntos.
type RegistroPCDResponse struct {
	Usuario *Usuario `json:"usuario"`
	PCD     *pcd.PCD `json:"pcd"`
}

// AlterarSenhaRequest é o corpo de POST /usuario/{id}/alterar_senha/.
type AlterarSenhaRequest struct {
	SenhaAtual string `json:"senha_atual"`
	NovaSenha  string `json:"nova_senha"`
}

// RefreshRequest é o corpo de POST /usuario/refresh/.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}
