package main

import "nextignition_backend/internal/app"

// @title NextIgnition API
// @version 1.0
// @description Бэкенд платформы для фаундеров, экспертов и инвесторов
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
