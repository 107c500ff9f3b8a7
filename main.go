package main

import (
	"StyleMate-Server/cmd/config"
	migration "StyleMate-Server/cmd/database/migrate"
	"StyleMate-Server/internal/utils"
	"log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}

	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
