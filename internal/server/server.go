package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/kossaiRedou/EasInvoice/internal/auth"
	authdomain "github.com/kossaiRedou/EasInvoice/internal/auth/domain"
	"github.com/kossaiRedou/EasInvoice/internal/auth/session"
	"github.com/kossaiRedou/EasInvoice/internal/client"
	clientdomain "github.com/kossaiRedou/EasInvoice/internal/client/domain"
	"github.com/kossaiRedou/EasInvoice/internal/config"
	"github.com/kossaiRedou/EasInvoice/internal/invoice"
	invoicedomain "github.com/kossaiRedou/EasInvoice/internal/invoice/domain"
	"github.com/kossaiRedou/EasInvoice/internal/label"
	labeldomain "github.com/kossaiRedou/EasInvoice/internal/label/domain"
	"github.com/kossaiRedou/EasInvoice/internal/logger"
	"github.com/kossaiRedou/EasInvoice/internal/profile"
	profiledomain "github.com/kossaiRedou/EasInvoice/internal/profile/domain"
	"github.com/kossaiRedou/EasInvoice/internal/providers/pdf"
	"github.com/kossaiRedou/EasInvoice/internal/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("server",
	auth.Module,
	invoice.Module,
	label.Module,
	client.Module,
	profile.Module,
	pdf.Module,
	render.Module,
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, log *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinMiddleware(log, logger.MiddlewareConfig{
		Debug:           !cfg.IsProduction(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(cfg config.Config, log *zap.Logger) *gin.Engine {
	return NewEngine(cfg, log)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.ListenAddr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	db         *gorm.DB
	authsvc    authdomain.Service
	sessions   *session.Manager
	genID      *snowflake.Node
	invoiceSvc invoicedomain.Service
	labelSvc   labeldomain.Service
	clientSvc  clientdomain.Service
	profileSvc profiledomain.Service
	pdfSvc     pdf.Provider
	renderer   *render.Renderer
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	DB         *gorm.DB
	Authsvc    authdomain.Service
	Sessions   *session.Manager
	GenID      *snowflake.Node
	InvoiceSvc invoicedomain.Service
	LabelSvc   labeldomain.Service
	ClientSvc  clientdomain.Service
	ProfileSvc profiledomain.Service
	PDFSvc     pdf.Provider
	Renderer   *render.Renderer
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		db:         p.DB,
		authsvc:    p.Authsvc,
		sessions:   p.Sessions,
		genID:      p.GenID,
		invoiceSvc: p.InvoiceSvc,
		labelSvc:   p.LabelSvc,
		clientSvc:  p.ClientSvc,
		profileSvc: p.ProfileSvc,
		pdfSvc:     p.PDFSvc,
		renderer:   p.Renderer,
	}

	svc.registerAuthRoutes()
	svc.registerInvoiceRoutes()
	svc.registerLabelRoutes()
	svc.registerClientRoutes()
	svc.registerProfileRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	auth := s.engine.Group("/auth")

	auth.POST("/register", s.Register)
	auth.POST("/login", s.Login)
	auth.POST("/logout", s.Logout)
	auth.GET("/me", s.AuthRequired(), s.Me)
}

func (s *Server) registerInvoiceRoutes() {
	invoices := s.engine.Group("/invoices", s.AuthRequired())

	invoices.GET("/new", s.NewInvoiceForm)
	invoices.GET("/rows", s.InvoiceRow)
	invoices.POST("", s.CreateInvoice)
	invoices.GET("", s.ListInvoices)
	invoices.GET("/:id", s.GetInvoice)
	invoices.GET("/:id/pdf", s.DownloadInvoicePDF)
	invoices.PATCH("/:id/status", s.UpdateInvoiceStatus)
	invoices.DELETE("/:id", s.DeleteInvoice)
}

func (s *Server) registerLabelRoutes() {
	labels := s.engine.Group("/labels", s.AuthRequired())

	labels.GET("/new", s.NewLabelForm)
	labels.GET("/rows", s.LabelRow)
	labels.POST("", s.CreateLabel)
	labels.GET("", s.ListLabels)
	labels.GET("/:id", s.GetLabel)
	labels.GET("/:id/pdf", s.DownloadLabelPDF)
	labels.DELETE("/:id", s.DeleteLabel)
}

func (s *Server) registerClientRoutes() {
	clients := s.engine.Group("/clients", s.AuthRequired())

	clients.POST("", s.CreateClient)
	clients.GET("", s.ListClients)
	clients.GET("/:id", s.GetClient)
	clients.DELETE("/:id", s.DeleteClient)
}

func (s *Server) registerProfileRoutes() {
	p := s.engine.Group("/profile", s.AuthRequired())

	p.GET("", s.GetProfile)
	p.PUT("", s.UpdateProfile)
}
