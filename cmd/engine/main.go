package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/chat"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/clients/srd"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/config"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actions"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/repositories"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/services"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/services/action"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/telemetry"
)

const usage = `usage: engine [-seed file.json] <command> [flags]

commands:
  use        resolve an action: -actor ID -action ID [-targets a,b] [-channel ID]
  actions    list an actor's actions and whether each is usable: -actor ID
  recharge   restore uses recharging on a cadence: -actor ID -cadence rest
  end-round  tick conditions and per-round actions: -actor ID
  conditions list an actor's active conditions: -actor ID
  dispel     remove a condition: -actor ID -condition ID, or every one an action attached: -actor ID -action ID
  rules      list rule modules and the selected one per category
  select     select a rule module: -category combat -module descending-ac
`

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	seed := flag.String("seed", "", "JSON file of actors, macros and roll tables to load first")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("Failed to flush traces: %v", err)
		}
	}()

	backends, err := repositories.Open(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer func() {
		if err := backends.Close(); err != nil {
			log.Printf("Error closing storage: %v", err)
		}
	}()

	providerCfg := &services.ProviderConfig{
		DocumentStore:      backends.Documents,
		SettingsRepository: backends.Settings,
		Selections:         cfg.Rules.Selections(),
	}

	if cfg.Discord.Token != "" {
		dg, err := discordgo.New("Bot " + cfg.Discord.Token)
		if err != nil {
			log.Fatalf("Failed to create Discord session: %v", err)
		}
		providerCfg.Sink = chat.NewSink(dg, cfg.Discord.ChannelID)
	}

	srdClient, err := srd.New(&srd.Config{HttpClient: &http.Client{Timeout: cfg.SRD.Timeout}})
	if err != nil {
		log.Printf("SRD client unavailable: %v", err)
	} else {
		providerCfg.SRDClient = srdClient
	}

	provider, err := services.NewProvider(ctx, providerCfg)
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}

	if *seed != "" {
		if err := loadSeed(ctx, provider.Documents, *seed); err != nil {
			log.Fatalf("Failed to load seed %s: %v", *seed, err)
		}
	}

	out, err := run(ctx, provider, flag.Arg(0), flag.Args()[1:])
	if err != nil {
		log.Printf("%s failed: %v%s", flag.Arg(0), err, failureDetail(err))
		os.Exit(exitCode(err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

// run executes one command and returns what to print
func run(ctx context.Context, p *services.Provider, command string, args []string) (any, error) {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	actorID := fs.String("actor", "", "actor id")
	actionID := fs.String("action", "", "action id")
	targets := fs.String("targets", "", "comma separated target actor ids")
	channel := fs.String("channel", "", "Discord channel to post the result to")
	cadence := fs.String("cadence", "", "recharge cadence")
	category := fs.String("category", "", "rule category")
	module := fs.String("module", "", "rule module id")
	conditionID := fs.String("condition", "", "condition id")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch command {
	case "use":
		return p.ActionService.UseAction(ctx, &action.UseActionInput{
			ActorID:   *actorID,
			ActionID:  *actionID,
			TargetIDs: splitList(*targets),
			ChannelID: *channel,
		})

	case "actions":
		return p.ActionService.AvailableActions(ctx, *actorID)

	case "recharge":
		if *cadence == "" {
			return nil, fmt.Errorf("-cadence is required")
		}
		return p.ActionService.Recharge(ctx, *actorID, actions.Cadence(*cadence))

	case "end-round":
		return p.ActionService.EndRound(ctx, *actorID)

	case "conditions":
		return p.ConditionService.GetConditions(ctx, *actorID)

	case "dispel":
		if *conditionID != "" {
			if err := p.ConditionService.RemoveCondition(ctx, *actorID, *conditionID); err != nil {
				return nil, err
			}
			return []string{*conditionID}, nil
		}
		if *actionID == "" {
			return nil, fmt.Errorf("-condition or -action is required")
		}
		return p.ConditionService.RemoveByAction(ctx, *actorID, *actionID)

	case "rules":
		return listRules(ctx, p), nil

	case "select":
		c := rules.Category(*category)
		if !c.Valid() {
			return nil, fmt.Errorf("unknown category %q", *category)
		}
		if _, ok := p.Registry.Get(c, *module); !ok {
			return nil, fmt.Errorf("no %s module %q", c, *module)
		}
		if err := p.Settings.SetSelected(ctx, c, *module); err != nil {
			return nil, err
		}
		return listRules(ctx, p), nil
	}

	return nil, fmt.Errorf("unknown command %q", command)
}

// ruleListing is one category's modules and selection
type ruleListing struct {
	Category rules.Category `json:"category"`
	Selected string         `json:"selected"`
	Modules  []string       `json:"modules"`
}

func listRules(ctx context.Context, p *services.Provider) []ruleListing {
	out := make([]ruleListing, 0, len(rules.Categories))
	for _, c := range rules.Categories {
		listing := ruleListing{Category: c, Modules: []string{}}
		for _, m := range p.Registry.GetAll(c) {
			listing.Modules = append(listing.Modules, m.ID())
		}
		if m, ok := p.Registry.GetSelected(ctx, c); ok {
			listing.Selected = m.ID()
		} else if m, ok := p.Registry.Default(c); ok {
			listing.Selected = m.ID()
		}
		out = append(out, listing)
	}
	return out
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
