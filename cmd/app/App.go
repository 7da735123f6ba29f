package app

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"

	"moodboard/configs"
	"moodboard/internal/handlers"
	"moodboard/internal/repositories"
	"moodboard/internal/servers/database"
	"moodboard/internal/servers/http"
	"moodboard/internal/services"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	redis   *redis.Client
	ctx     context.Context
	configs *configs.Config
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

func (app *App) LetsGo() {
	app.ctx = context.Background()
	app.initializeConfigs()
	app.initializeRedis()

	db := database.GetDB(app.configs)
	boardRepo := repositories.NewBoardRepository(db)
	boardService := services.NewBoardService(boardRepo)
	boardItemRepo := repositories.NewBoardItemRepository(db)
	boardItemService := services.NewBoardItemService(boardItemRepo, app.redis, app.ctx)

	minioService := services.NewMinioService(app.configs)
	fileManagerService := services.NewFileManagerService(minioService)
	linkPreviewService := services.NewLinkPreviewService()

	restHandler := handlers.NewRestHandler(
		boardService,
		boardItemService,
		fileManagerService,
		linkPreviewService,
	)

	socketBoardHandler := handlers.NewSocketBoardHandler(
		app.redis,
		app.ctx,
		boardService,
		boardItemService,
		fileManagerService,
		linkPreviewService,
	)

	http.NewHttpServer(
		app.ctx,
		app.configs,
		restHandler,
		socketBoardHandler,
	).Run()
}

func (app *App) initializeRedis() {
	app.redis = redis.NewClient(&redis.Options{
		Addr: app.configs.Viper.GetString("redis.addr"),
	})
}

func (app *App) initializeConfigs() {
	app.configs = configs.GetConfig()
}
