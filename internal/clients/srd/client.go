// Package srd imports monsters from the D&D 5e SRD API as actor documents
package srd

import (
	"net/http"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actor"
	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
)

type client struct {
	client dnd5e.Interface
}

type Config struct {
	HttpClient *http.Client
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("srd client config is required")
	}

	api, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client: cfg.HttpClient,
	})
	if err != nil {
		return nil, err
	}

	return &client{client: api}, nil
}

func (c *client) GetMonster(key string) (*actor.Actor, error) {
	monster, err := c.client.GetMonster(key)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get monster %s", key)
	}
	if monster == nil {
		return nil, dnderr.NotFoundf("monster %s not found", key)
	}
	return MonsterToActor(monster), nil
}

func (c *client) ListMonsterKeysByCR(cr float64) ([]string, error) {
	refs, err := c.client.ListMonstersWithFilter(&dnd5e.ListMonstersInput{
		ChallengeRating: &cr,
	})
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to list monsters at CR %v", cr)
	}

	keys := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref != nil && ref.Key != "" {
			keys = append(keys, ref.Key)
		}
	}
	return keys, nil
}
