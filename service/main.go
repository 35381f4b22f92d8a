package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"semtint/config"
	"semtint/embedding"
	"semtint/refstore"
	"semtint/resolver"
)

type colorPayload struct {
	Text string `json:"text"`
}

type colorResponse struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

type server struct {
	resolver *resolver.Resolver
	logger   *slog.Logger
}

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	provider, err := embedding.New(context.Background(), &cfg.Embedder)
	if err != nil {
		log.Fatal("failed to construct embedding provider: ", err)
	}

	// The reference store must load, and agree with the provider on
	// dimensionality, before the service accepts any traffic.
	store, err := refstore.Load(cfg.StorePath, provider.Dimension())
	if err != nil {
		log.Fatal("failed to load reference store: ", err)
	}

	s := &server{
		resolver: resolver.New(provider, store),
		logger:   slog.Default(),
	}

	s.logger.Info("loaded reference store",
		slog.Int("entries", store.Len()),
		slog.Int("dimension", store.Dimension()))

	router := newRouter(s, cfg)

	err = router.Run(cfg.BindAddr)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("Unexpected error in http server:", err)
	}
}

func newRouter(s *server, cfg *config.Config) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default()) // Allow all origins
	router.Use(perClientRateLimit(cfg.RateLimit))

	router.Static("/static", cfg.StaticDir)
	router.GET("/", s.indexHandler(cfg.StaticDir))
	router.POST("/color", s.colorHandler)

	return router
}

func (s *server) colorHandler(ctx *gin.Context) {
	var payload colorPayload
	if err := ctx.Bind(&payload); err != nil {
		s.logger.ErrorContext(ctx, "failed to bind request to expected object", slog.Any("error", err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	color, err := s.resolver.Resolve(ctx, payload.Text)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve a color for the input text", slog.Any("error", err))
		ctx.String(http.StatusInternalServerError, "something went wrong resolving a color")
		return
	}

	ctx.JSON(http.StatusOK, colorResponse{R: color.R, G: color.G, B: color.B})
}

func (s *server) indexHandler(staticDir string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		indexPath := filepath.Join(staticDir, "index.html")
		if _, err := os.Stat(indexPath); err != nil {
			ctx.Status(http.StatusNotFound)
			return
		}
		ctx.File(indexPath)
	}
}
