package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"carmarket-service/config"
	"carmarket-service/database"
	"carmarket-service/event"
	"carmarket-service/event/listener"
	"carmarket-service/router"
	"carmarket-service/socketio"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	log.SetPrefix("carmarket-service: ")

	rest := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		StrictRouting:         true,
		AppName:               "carmarket-service",
		BodyLimit:             50 * 1024 * 1024,
	})

	rest.Use(cors.New())

	database.RedisConnect()
	database.PostgresConnect()

	event.RabbitMQConnect([]string{
		// Connect to queues
		"api",
		"backoffice",
	})

	// Run "api" queue listener
	go listener.Api()

	// Subscribe listener channel to "api" events
	event.RabbitMQSubscribe([]event.RabbitMQSubscribeListener{
		{
			Queue:   "api",
			Channel: listener.ApiChannel,
		},
	})

	socket := socketio.Init(rest)

	// Uploaded listing photos are served statically
	rest.Static("/uploads", "./uploads")

	router.Rest(rest)
	router.Socket(socket)

	go rest.Listen(fmt.Sprintf(":%s", config.Config("SERVER_PORT")))

	exit := make(chan struct{})
	SignalC := make(chan os.Signal, 1)

	signal.Notify(SignalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range SignalC {
			switch s {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				close(exit)
				return
			}
		}
	}()

	<-exit
	socket.Close(nil)
	event.RabbitMQChannel.Close()
	event.RabbitMQConnection.Close()
	event.InLogFile.Close()
	event.OutLogFile.Close()
	os.Exit(0)
}
