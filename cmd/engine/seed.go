package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actor"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/repositories/documents"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rolltables"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/scripting"
)

// seedFile is the document bundle accepted by -seed
type seedFile struct {
	Actors []*actor.Actor      `json:"actors"`
	Macros []*scripting.Macro  `json:"macros"`
	Tables []*rolltables.Table `json:"tables"`
}

func loadSeed(ctx context.Context, repo *documents.Repository, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("parse seed: %w", err)
	}

	for _, a := range seed.Actors {
		if err := repo.SaveActor(ctx, a); err != nil {
			return err
		}
	}
	for _, m := range seed.Macros {
		if err := repo.SaveMacro(ctx, m); err != nil {
			return err
		}
	}
	for _, t := range seed.Tables {
		if err := repo.SaveTable(ctx, t); err != nil {
			return err
		}
	}

	log.Printf("Seeded %d actors, %d macros and %d tables", len(seed.Actors), len(seed.Macros), len(seed.Tables))
	return nil
}
