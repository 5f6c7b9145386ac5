package main

import (
	"github.com/giovaneneves7/mimoo-backend/config"
	"github.com/giovaneneves7/mimoo-backend/routes"
	"github.com/giovaneneves7/mimoo-backend/services"
	"github.com/giovaneneves7/mimoo-backend/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitMailer()

	r := routes.SetupRouter()

	stop := make(chan struct{})
	defer close(stop)
	watcher := services.NewRolloverWatcher(config.DB, services.NewProgressService(config.DB))
	watcher.Start(stop)

	r.Run(":8080")
}
