package main

import (
	"go-planner-api/core/logger"
	"go-planner-api/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
