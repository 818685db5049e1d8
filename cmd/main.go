package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/projetomogo/api-mogo/internal/auth"
	"github.com/projetomogo/api-mogo/internal/avaliacao"
	"github.com/projetomogo/api-mogo/internal/config"
	"github.com/projetomogo/api-mogo/internal/database"
	"github.com/projetomogo/api-mogo/internal/favorito"
	"github.com/projetomogo/api-mogo/internal/historico"
	"github.com/projetomogo/api-mogo/internal/local"
	"github.com/projetomogo/api-mogo/internal/pcd"
	"github.com/projetomogo/api-mogo/internal/rota"
	"github.com/projetomogo/api-mogo/internal/terceiro"
	"github.com/projetomogo/api-mogo/internal/usuario"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuração inválida", "erro", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	db, err := database.Conectar(cfg.DB)
	if err != nil {
		slog.Error("erro ao conectar no banco", "erro", err)
		os.Exit(1)
	}

	if err := database.Migrar(db,
		&usuario.Usuario{},
		&pcd.PCD{},
		&terceiro.Terceiro{},
		&local.Local{},
		&rota.Rota{},
		&historico.HistoricoBusca{},
		&avaliacao.Avaliacao{},
		&favorito.Favorito{},
	); err != nil {
		slog.Error("erro no auto migrate", "erro", err)
		os.Exit(1)
	}

	tokens := auth.NovoGeradorTokens(cfg.JWTSecret)

	// Handlers
	usuarioHandler := usuario.NewHandler(db, tokens)
	pcdHandler := pcd.NewHandler(db)
	terceiroHandler := terceiro.NewHandler(db)
	localHandler := local.NewHandler(db)
	rotaHandler := rota.NewHandler(db)
	historicoHandler := historico.NewHandler(db)
	avaliacaoHandler := avaliacao.NewHandler(db)
	favoritoHandler := favorito.NewHandler(db)

	// Router
	r := mux.NewRouter().StrictSlash(true)

	// Rotas públicas
	r.HandleFunc("/usuario/register/", usuarioHandler.Registrar).Methods("POST")
	r.HandleFunc("/usuario/register/pcd/", usuarioHandler.RegistrarComPCD).Methods("POST")
	r.HandleFunc("/usuario/login/", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/usuario/refresh/", usuarioHandler.Refresh).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.Middleware(tokens))

	// Usuários
	api.HandleFunc("/usuario/", usuarioHandler.Listar).Methods("GET")
	api.HandleFunc("/usuario/{id}/", usuarioHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/usuario/{id}/", usuarioHandler.Atualizar).Methods("PUT", "PATCH")
	api.HandleFunc("/usuario/{id}/", usuarioHandler.Desativar).Methods("DELETE")
	api.HandleFunc("/usuario/{id}/alterar_senha/", usuarioHandler.AlterarSenha).Methods("POST")
	api.HandleFunc("/usuario/{id}/terceiros/", terceiroHandler.ListarPorUsuario).Methods("GET")
	api.HandleFunc("/usuario/{id}/rotas/", rotaHandler.ListarPorUsuario).Methods("GET")
	api.HandleFunc("/usuario/{id}/historico/", historicoHandler.ListarPorUsuario).Methods("GET")
	api.HandleFunc("/usuario/{id}/favoritos/", favoritoHandler.ListarPorUsuario).Methods("GET")
	api.HandleFunc("/usuario/{id}/avaliacoes/", avaliacaoHandler.ListarPorUsuario).Methods("GET")

	// PCDs
	api.HandleFunc("/pcd/", pcdHandler.Listar).Methods("GET")
	api.HandleFunc("/pcd/", pcdHandler.Criar).Methods("POST")
	api.HandleFunc("/pcd/{usuarioId}/", pcdHandler.BuscarPorUsuario).Methods("GET")
	api.HandleFunc("/pcd/{usuarioId}/", pcdHandler.Atualizar).Methods("PUT", "PATCH")

	// Terceiros
	api.HandleFunc("/terceiro/", terceiroHandler.Listar).Methods("GET")
	api.HandleFunc("/terceiro/", terceiroHandler.Criar).Methods("POST")
	api.HandleFunc("/terceiro/{id}/", terceiroHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/terceiro/{id}/", terceiroHandler.Atualizar).Methods("PUT", "PATCH")
	api.HandleFunc("/terceiro/{id}/", terceiroHandler.Deletar).Methods("DELETE")

	// Locais
	api.HandleFunc("/local/", localHandler.Listar).Methods("GET")
	api.HandleFunc("/local/", localHandler.Criar).Methods("POST")
	api.HandleFunc("/local/proximos/", localHandler.BuscarProximos).Methods("GET")
	api.HandleFunc("/local/{id}/", localHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/local/{id}/avaliacoes/", avaliacaoHandler.ListarPorLocal).Methods("GET")
	api.HandleFunc("/local/{id}/avaliacoes/media/", avaliacaoHandler.MediaPorLocal).Methods("GET")

	// Rotas de navegação
	api.HandleFunc("/rota/", rotaHandler.Criar).Methods("POST")
	api.HandleFunc("/rota/{id}/", rotaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/rota/{id}/", rotaHandler.Deletar).Methods("DELETE")

	// Histórico de buscas
	api.HandleFunc("/historico/", historicoHandler.Criar).Methods("POST")

	// Avaliações
	api.HandleFunc("/avaliacao/", avaliacaoHandler.Listar).Methods("GET")
	api.HandleFunc("/avaliacao/", avaliacaoHandler.Criar).Methods("POST")
	api.HandleFunc("/avaliacao/{id}/", avaliacaoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/avaliacao/{id}/", avaliacaoHandler.Deletar).Methods("DELETE")

	// Favoritos
	api.HandleFunc("/favorito/", favoritoHandler.Listar).Methods("GET")
	api.HandleFunc("/favorito/", favoritoHandler.Criar).Methods("POST")
	api.HandleFunc("/favorito/buscar/", favoritoHandler.Buscar).Methods("GET")
	api.HandleFunc("/favorito/{id}/", favoritoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/favorito/{id}/", favoritoHandler.Deletar).Methods("DELETE")

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigens,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	slog.Info("servidor iniciado", "porta", cfg.Porta)
	if err := http.ListenAndServe(":"+cfg.Porta, c.Handler(r)); err != nil {
		slog.Error("servidor encerrado", "erro", err)
		os.Exit(1)
	}
}
