package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"moodboard/configs"
	"moodboard/internal/handlers"
)

var (
	httpServer *HttpServer
	once       sync.Once
)

type HttpServer struct {
	ctx           context.Context
	configs       *configs.Config
	router        *gin.Engine
	restHandler   *handlers.RestHandler
	socketHandler *handlers.SocketBoardHandler
}

func NewHttpServer(
	ctx context.Context,
	configs *configs.Config,
	restHandler *handlers.RestHandler,
	socketHandler *handlers.SocketBoardHandler,
) *HttpServer {
	once.Do(func() {
		httpServer = &HttpServer{
			ctx:           ctx,
			configs:       configs,
			restHandler:   restHandler,
			socketHandler: socketHandler,
		}
	})
	return httpServer
}

func (hs *HttpServer) Run() {
	hs.initializeGin()
	hs.setupRestfulRoutes()
	hs.setupWebSocketRoutes()
	hs.setupSwaggerRoutes()

	server := hs.startServer()

	// Wait for interrupt signal to gracefully shut down the server
	hs.waitForShutdown(server)
}

func (hs *HttpServer) initializeGin() {
	hs.router = gin.Default()
}

func (hs *HttpServer) setupRestfulRoutes() {
	boards := hs.router.Group("/boards")
	{
		boards.GET("", hs.restHandler.GetBoards)
		boards.POST("", hs.restHandler.CreateBoard)
		boards.POST("/reorder", hs.restHandler.ReorderBoards)
		boards.GET("/:id", hs.restHandler.GetBoard)
		boards.PATCH("/:id", hs.restHandler.UpdateBoard)
		boards.DELETE("/:id", hs.restHandler.DeleteBoard)
		boards.GET("/:id/items", hs.restHandler.GetBoardItems)
		boards.POST("/:id/items", hs.restHandler.CreateBoardItem)
		boards.PATCH("/:id/items", hs.restHandler.UpdateBoardItem)
		boards.DELETE("/:id/items", hs.restHandler.DeleteBoardItem)
	}

	hs.router.POST("/images", hs.restHandler.UploadImage)
	hs.router.POST("/link-preview", hs.restHandler.GetLinkPreview)
}

func (hs *HttpServer) setupWebSocketRoutes() {
	hs.router.GET("/ws/board", hs.socketHandler.HandleSocketBoardRoute)
}

func (hs *HttpServer) setupSwaggerRoutes() {
	hs.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (hs *HttpServer) startServer() *http.Server {
	addr := fmt.Sprintf(":%d", hs.configs.Viper.GetInt("server.port"))
	server := &http.Server{
		Addr:    addr,
		Handler: hs.router,
	}

	go func() {
		log.Printf("HTTP server started on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	return server
}

func (hs *HttpServer) waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if err := server.Shutdown(hs.ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
