package socketio

import (
	"context"
	"fmt"
	"time"

	"carmarket-service/database"
	"carmarket-service/service"
	"carmarket-service/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/zishang520/engine.io/v2/log"
	"github.com/zishang520/socket.io-go-redis/adapter"
	r_type "github.com/zishang520/socket.io-go-redis/types"
	"github.com/zishang520/socket.io/v2/socket"
)

var server *socket.Server

func Init(app *fiber.App) *socket.Server {
	log.DEBUG = false

	options := socket.DefaultServerOptions()
	options.SetServeClient(true)
	options.SetAllowEIO3(true)
	options.SetPingInterval(300 * time.Millisecond)
	options.SetPingTimeout(200 * time.Millisecond)
	options.SetMaxHttpBufferSize(100000000)
	options.SetConnectTimeout(1000 * time.Millisecond)
	options.SetAdapter(&adapter.RedisAdapterBuilder{
		Redis: r_type.NewRedisClient(context.Background(), database.Redis[1]),
		Opts:  &adapter.RedisAdapterOptions{},
	})

	server = socket.NewServer(nil, nil)

	// Sockets authenticate with the same access token as REST calls. An
	// unauthenticated socket may connect but never joins a chat room.
	server.Use(func(client *socket.Socket, next func(*socket.ExtendedError)) {
		token, auth := client.Conn().Request().Query().Get("token")

		if auth {
			claims, err := utils.CheckAndExtractTokenMetadata(token, "JWT_ACCESS_KEY")

			if err == nil && !claims.Otp {
				client.SetData(claims)
			}
		}

		next(nil)
	})

	app.Get("/socket.io/", adaptor.HTTPHandler(server.ServeHandler(options)))
	app.Post("/socket.io/", adaptor.HTTPHandler(server.ServeHandler(options)))

	return server
}

// ChatRoom names the broadcast room of one listing's chat.
func ChatRoom(listingID uint) string {
	return fmt.Sprintf("chat_%d", listingID)
}

// EmitRoom sends an event to every socket in a room. No-op before Init.
func EmitRoom(room string, event string, message any) {
	if server == nil {
		return
	}
	server.To(socket.Room(room)).Emit(event, message)
}

func Broadcast(event string, message any) {
	if server == nil {
		return
	}
	server.FetchSockets()(func(sockets []*socket.RemoteSocket, _ error) {
		for _, socket := range sockets {
			socket.Emit(event, message)
		}
	})
}

// ChatNotifier delivers newly persisted messages to a listing's room. It
// satisfies service.Notifier; emits are fire-and-forget.
type ChatNotifier struct{}

func (ChatNotifier) NewMessage(listingID uint, message service.Message) {
	EmitRoom(ChatRoom(listingID), "new_message", message)
}
