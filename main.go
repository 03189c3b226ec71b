package main

import (
	"github.com/interview-express/experience_service/config"
	"github.com/interview-express/experience_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
