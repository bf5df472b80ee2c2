package chat

//go:generate mockgen -destination=mock/mock_session.go -package=mockchat -source=sink.go

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/resolver"
)

// Session is the part of a Discord session the sink sends through
type Session interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Sink posts resolutions to channels and delegation failures to an error
// channel
type Sink struct {
	session        Session
	errorChannelID string
}

// NewSink creates a sink. Errors are only logged when errorChannelID is
// empty.
func NewSink(session Session, errorChannelID string) *Sink {
	if session == nil {
		panic("discord session is required")
	}
	return &Sink{session: session, errorChannelID: errorChannelID}
}

// PostResult renders result as an embed and sends it to channelID
func (s *Sink) PostResult(ctx context.Context, channelID string, result *resolver.Result) error {
	if channelID == "" {
		return dnderr.InvalidArgument("channel id is required")
	}
	if result == nil {
		return dnderr.InvalidArgument("result is required")
	}

	if _, err := s.session.ChannelMessageSendEmbed(channelID, BuildResultEmbed(result)); err != nil {
		return dnderr.Wrapf(err, "failed to post %s result to channel %s", result.ActionID, channelID)
	}
	return nil
}

// NotifyError reports a failure to the error channel. It never fails.
func (s *Sink) NotifyError(ctx context.Context, message string) {
	if s.errorChannelID == "" {
		log.Printf("Chat: %s", message)
		return
	}
	if _, err := s.session.ChannelMessageSend(s.errorChannelID, "⚠️ "+message); err != nil {
		log.Printf("Chat: failed to send error notice %q: %v", message, err)
	}
}
