package router

import (
	"strconv"

	"github.com/zishang520/socket.io/v2/socket"
)

func chatRoomArg(args []any) (string, bool) {
	if len(args) == 0 {
		return "", false
	}
	raw, ok := args[0].(map[string]any)
	if !ok {
		return "", false
	}

	switch value := raw["listingId"].(type) {
	case string:
		return value, value != ""
	case float64:
		return strconv.FormatUint(uint64(value), 10), true
	default:
		return "", false
	}
}

// Socket wires the real-time channel. Clients join a room per listing after
// opening a conversation; message history always comes from REST, the socket
// carries no replay.
func Socket(server *socket.Server) {
	server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		client.On("join_chat", func(args ...interface{}) {
			// Room membership is the only server-side state; reconnecting
			// clients simply rejoin.
			if client.Data() == nil {
				return
			}

			listingID, ok := chatRoomArg(args)
			if !ok {
				return
			}

			client.Join(socket.Room("chat_" + listingID))
		})

		client.On("leave_chat", func(args ...interface{}) {
			listingID, ok := chatRoomArg(args)
			if !ok {
				return
			}

			client.Leave(socket.Room("chat_" + listingID))
		})
	})
}
