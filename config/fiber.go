package config

import (
	"os"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func GetFiberHttpPort() string {
	port := os.Getenv("FIBER_HTTP_PORT")
	if port == "" {
		port = "5000"
	}
	return port
}

func GetFiberListenAddress() string {
	return ":" + GetFiberHttpPort()
}

func NewFiberApp() *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	return app
}
