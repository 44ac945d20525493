package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/prefeitura-rio/portal-interno-sub000/config"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/api/handler"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/api/middleware"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/dto"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/model"
	"github.com/prefeitura-rio/portal-interno-sub000/pkg/jwt"
	"github.com/prefeitura-rio/portal-interno-sub000/pkg/redis"
)

// Setup monta o roteador Gin com middlewares e rotas
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Middlewares globais ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── Health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	admin := middleware.RoleAuth(model.PapelAdmin)
	gestao := middleware.RoleAuth(model.PapelAdmin, model.PapelGestor)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// Autenticação (rotas abertas com rate limit)
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 10, time.Minute))
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Rotas públicas do portal do cidadão
		publico := v1.Group("")
		publico.Use(middleware.RateLimit(rdb, 60, time.Minute))
		{
			publico.POST("/cursos/:id/inscricoes", h.Inscricao.Criar)
			publico.POST("/candidaturas", h.Candidatura.Criar)
			publico.GET("/categorias/ativas", h.Categoria.ListAtivas)
		}

		// Backoffice (autenticado)
		autorizado := v1.Group("")
		autorizado.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			autorizado.POST("/auth/logout", h.Auth.Logout)
			autorizado.GET("/auth/me", h.Auth.Me)

			// Catálogo de ações confirmáveis
			autorizado.GET("/acoes-confirmacao", h.Acao.Catalogo)

			// Cursos
			cursos := autorizado.Group("/cursos")
			cursos.Use(gestao)
			{
				cursos.GET("", h.Curso.List)
				cursos.GET("/:id", h.Curso.Get)
				cursos.POST("", middleware.ConfirmarAcao(dto.AcaoCursoCriar), h.Curso.Criar)
				cursos.PUT("/:id", middleware.ConfirmarAcao(dto.AcaoCursoSalvarAlteracoes), h.Curso.Atualizar)
				cursos.POST("/:id/encerrar", middleware.ConfirmarAcao(dto.AcaoCursoEncerrar), h.Curso.Encerrar)
				cursos.POST("/:id/cancelar", middleware.ConfirmarAcao(dto.AcaoCursoCancelar), h.Curso.Cancelar)
				cursos.POST("/:id/reabrir", middleware.ConfirmarAcao(dto.AcaoCursoReabrir), h.Curso.Reabrir)
				cursos.DELETE("/:id", middleware.ConfirmarAcao(dto.AcaoCursoExcluirRascunho), h.Curso.ExcluirRascunho)
				cursos.GET("/:id/calendario.ics", h.Curso.ExportarCalendario)

				// Inscrições do curso
				cursos.GET("/:id/inscricoes", h.Inscricao.List)
				cursos.GET("/:id/inscricoes/export", h.Export.ExportarCSV)
				cursos.GET("/:id/inscricoes/export.xlsx", h.Export.ExportarXLSX)
			}

			// Inscrições (operações diretas)
			inscricoes := autorizado.Group("/inscricoes")
			inscricoes.Use(gestao)
			{
				inscricoes.GET("/:id", h.Inscricao.Get)
				inscricoes.PUT("/status", h.Inscricao.AtualizarStatusLote)
				inscricoes.PUT("/:id/certificado", h.Inscricao.EmitirCertificado)
			}

			// Vagas de empregabilidade
			vagas := autorizado.Group("/vagas")
			vagas.Use(gestao)
			{
				vagas.GET("", h.Vaga.List)
				vagas.GET("/:id", h.Vaga.Get)
				vagas.POST("", middleware.ConfirmarAcao(dto.AcaoVagaCriar), h.Vaga.Criar)
				vagas.PUT("/:id", middleware.ConfirmarAcao(dto.AcaoVagaSalvarAlteracoes), h.Vaga.Atualizar)
				vagas.POST("/:id/encerrar", middleware.ConfirmarAcao(dto.AcaoVagaEncerrar), h.Vaga.Encerrar)
				vagas.POST("/:id/cancelar", middleware.ConfirmarAcao(dto.AcaoVagaCancelar), h.Vaga.Cancelar)
				vagas.DELETE("/:id", middleware.ConfirmarAcao(dto.AcaoVagaExcluirRascunho), h.Vaga.ExcluirRascunho)
				vagas.PUT("/:id/etapas/ordem", h.Vaga.ReordenarEtapas)
				vagas.GET("/:id/candidaturas", h.Candidatura.ListByVaga)
			}

			// Oportunidades MEI
			oportunidades := autorizado.Group("/oportunidades-mei")
			oportunidades.Use(gestao)
			{
				oportunidades.GET("", h.Oportunidade.List)
				oportunidades.GET("/:id", h.Oportunidade.Get)
				oportunidades.POST("", middleware.ConfirmarAcao(dto.AcaoMEICriar), h.Oportunidade.Criar)
				oportunidades.PUT("/:id", middleware.ConfirmarAcao(dto.AcaoMEISalvarAlteracoes), h.Oportunidade.Atualizar)
				oportunidades.POST("/:id/encerrar", middleware.ConfirmarAcao(dto.AcaoMEIEncerrar), h.Oportunidade.Encerrar)
				oportunidades.POST("/:id/cancelar", middleware.ConfirmarAcao(dto.AcaoMEICancelar), h.Oportunidade.Cancelar)
				oportunidades.DELETE("/:id", middleware.ConfirmarAcao(dto.AcaoMEIExcluirRascunho), h.Oportunidade.ExcluirRascunho)
			}

			// Serviços municipais
			servicos := autorizado.Group("/servicos")
			servicos.Use(gestao)
			{
				servicos.GET("", h.Servico.List)
				servicos.GET("/:id", h.Servico.Get)
				servicos.POST("", h.Servico.Criar)
				servicos.PUT("/:id", h.Servico.Atualizar)
				servicos.POST("/:id/enviar-aprovacao", middleware.ConfirmarAcao(dto.AcaoServicoEnviarAprovacao), h.Servico.EnviarParaAprovacao)
				servicos.POST("/:id/devolver", middleware.ConfirmarAcao(dto.AcaoServicoDevolverEdicao), h.Servico.DevolverParaEdicao)
				servicos.POST("/:id/publicar", admin, middleware.ConfirmarAcao(dto.AcaoServicoPublicar), h.Servico.Publicar)
				servicos.POST("/:id/despublicar", admin, middleware.ConfirmarAcao(dto.AcaoServicoDespublicar), h.Servico.Despublicar)
				servicos.DELETE("/:id", admin, middleware.ConfirmarAcao(dto.AcaoServicoExcluir), h.Servico.Excluir)
				servicos.POST("/:id/tombar", admin, middleware.ConfirmarAcao(dto.AcaoTombar), h.Servico.Tombar)
				servicos.DELETE("/:id/tombar", admin, middleware.ConfirmarAcao(dto.AcaoDestombar), h.Servico.Destombar)
			}

			// Categorias
			categorias := autorizado.Group("/categorias")
			categorias.Use(gestao)
			{
				categorias.GET("", h.Categoria.List)
				categorias.POST("", admin, h.Categoria.Criar)
				categorias.DELETE("/:id", admin, h.Categoria.Desativar)
			}
		}
	}

	return r
}
