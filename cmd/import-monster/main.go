package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/clients/srd"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/config"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/repositories"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/repositories/documents"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/services/monster"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	key := flag.String("key", "", "SRD monster key to import, e.g. goblin")
	id := flag.String("id", "", "actor id to store it under (default: the key)")
	cr := flag.Float64("cr", -1, "list monster keys at this challenge rating instead of importing")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client, err := srd.New(&srd.Config{HttpClient: &http.Client{Timeout: cfg.SRD.Timeout}})
	if err != nil {
		log.Fatalf("Failed to create SRD client: %v", err)
	}

	if *cr >= 0 {
		keys, err := client.ListMonsterKeysByCR(*cr)
		if err != nil {
			log.Fatalf("Failed to list monsters: %v", err)
		}
		for _, k := range keys {
			fmt.Println(k)
		}
		return
	}

	if *key == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	backends, err := repositories.Open(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer func() {
		if err := backends.Close(); err != nil {
			log.Printf("Error closing storage: %v", err)
		}
	}()

	svc := monster.NewService(&monster.ServiceConfig{
		SRDClient: client,
		Actors:    documents.NewRepository(backends.Documents),
	})

	doc, err := svc.ImportMonster(ctx, *key, *id)
	if err != nil {
		log.Fatalf("Failed to import %s: %v", *key, err)
	}

	fmt.Printf("Imported %s as %s: level %d, %d HP, AAC %d, %d actions\n",
		doc.Name, doc.ID, doc.Level, doc.HP.Max, doc.AscendingArmorClass, len(doc.Actions))
}
