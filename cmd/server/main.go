package main

import (
	"os"

	"modeldeck/backend/internal/app"
)

// @title           ModelDeck Backend API
// @version         1.0
// @description     Management and generation API for a local Ollama instance.
// @BasePath        /api
func main() {
	os.Exit(app.Run())
}
