package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/shardlight/shardlight/internal/adapters/pubg"
)

func main() {
	apiKey := os.Getenv("PUBG_API_KEY")
	if apiKey == "" {
		log.Fatal("No PUBG API key provided")
	}

	if len(os.Args) < 2 {
		log.Fatal("No player name provided")
	}

	name := os.Args[1]
	if name == "" {
		log.Fatal("No player name provided")
	}

	shard := pubg.Shard(os.Getenv("PUBG_SHARD"))

	client, err := pubg.New(&http.Client{}, apiKey, shard, pubg.CacheTTLs{})
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	doc, err := client.Player(context.Background(), pubg.PlayerOptions{Name: name})
	if err != nil {
		log.Fatalf("Failed to get player: %v", err)
	}

	fmt.Println(string(doc.Raw()))
}
