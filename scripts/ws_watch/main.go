// Command ws_watch subscribes to a room and prints every update pushed by
// the server. Handy for eyeballing fan-out while poking the REST API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/vovakirdan/borderchat-server/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_watch: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:8080/ws", "WebSocket address")
	room := flag.String("room", "north", "room to watch")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	sub := proto.Inbound{Type: proto.InboundTypeSubscribe, Room: *room}
	if err := wsjson.Write(ctx, conn, sub); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}

	fmt.Printf("Watching room %s on %s. Ctrl+C to exit.\n", *room, *addr)

	for {
		var update proto.Update
		if err := wsjson.Read(ctx, conn, &update); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}

		fmt.Printf("--- %s (%d messages) ---\n", update.Room, len(update.Chat))
		for _, line := range update.Chat {
			fmt.Println(line)
		}
	}
}
