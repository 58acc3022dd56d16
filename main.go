package main

import (
	"fmt"
	"log"

	"os-scheduling-simulator/api"
	"os-scheduling-simulator/config"
)

func main() {
	cfg := config.GetSchedulerConfig()

	app, err := api.NewApp(cfg)
	if err != nil {
		log.Fatalln(err)
	}

	log.Println("scheduler api listening on port", cfg.Port)
	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}
