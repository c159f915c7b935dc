package main

import (
	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	routes.Run()
}
