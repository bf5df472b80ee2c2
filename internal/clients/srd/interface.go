package srd

//go:generate mockgen -destination=mock/mock_client.go -package=mocksrd . Client

import (
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actor"
)

// Client fetches SRD monsters as actor documents
type Client interface {
	GetMonster(key string) (*actor.Actor, error)
	ListMonsterKeysByCR(cr float64) ([]string, error)
}
