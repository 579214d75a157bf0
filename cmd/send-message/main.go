package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/rinnatamussina-hub/ig-chatgpt-bot/graph"
)

func main() {
	_ = godotenv.Load()

	accessToken := os.Getenv("PAGE_ACCESS_TOKEN")
	if accessToken == "" {
		fmt.Println("Error: PAGE_ACCESS_TOKEN must be set")
		os.Exit(1)
	}

	if len(os.Args) < 3 {
		fmt.Println("Usage: send-message <recipient_id> <message>")
		os.Exit(1)
	}

	recipientID := os.Args[1]
	message := os.Args[2]

	client := graph.NewClient(accessToken, os.Getenv("GRAPH_API_VERSION"))

	if err := client.SendText(context.Background(), recipientID, message); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Message sent successfully!")
}
