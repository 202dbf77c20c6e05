package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/steellight541/cinema-app/catalog"
	"github.com/steellight541/cinema-app/config"
	"github.com/steellight541/cinema-app/database"
	"github.com/steellight541/cinema-app/handler"
	"github.com/steellight541/cinema-app/helper"
	"github.com/steellight541/cinema-app/realtime"
	"github.com/steellight541/cinema-app/router"
	"github.com/steellight541/cinema-app/store"
	"github.com/steellight541/cinema-app/utils"
)

func main() {
	app := fiber.New()
	app.Use(cors.New())

	var st store.Store
	if config.Config("STORE_DRIVER") == "postgres" {
		db, err := database.ConnectDB()
		if err != nil {
			utils.Logger.Fatalw("database connection failed", "error", err)
		}
		st, err = store.NewGormStore(db)
		if err != nil {
			utils.Logger.Fatalw("store migration failed", "error", err)
		}
	} else {
		dir := config.Config("DATA_DIR")
		if dir == "" {
			dir = "data"
		}
		fs, err := store.NewFileStore(dir)
		if err != nil {
			utils.Logger.Fatalw("failed to open data dir", "dir", dir, "error", err)
		}
		st = fs
	}

	helper.SeedUsers()

	hub := realtime.NewHub()
	var events realtime.Broadcaster = hub
	if addr := config.Config("REDIS_ADDR"); addr != "" {
		events = realtime.NewRedisBridge(addr, hub)
	}

	handler.Init(st, catalog.NewClient(config.Config("TMDB_API_KEY")), hub, events)
	handler.StartScreeningJanitor()

	router.SetupRoutes(app)

	port := config.Config("PORT")
	if port == "" {
		port = "3000"
	}
	if err := app.Listen(":" + port); err != nil {
		handler.StopScreeningJanitor()
		utils.Logger.Fatalw("server stopped", "error", err)
	}
}
