// Package chat renders action results for Discord and posts them to channels
package chat

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/domain/actions"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/resolver"
)

// Embed colors
const (
	ColorSuccess = 0x2ecc71
	ColorFailure = 0xe74c3c
	ColorError   = 0xffaa00
	ColorBlind   = 0x7289da
)

// BuildResultEmbed renders a resolution. Blind results hide every roll and
// show only the flavor text.
func BuildResultEmbed(result *resolver.Result) *discordgo.MessageEmbed {
	b := NewEmbed().
		Title(fmt.Sprintf("⚔️ %s", displayName(result))).
		Description(result.Flavor).
		Color(resultColor(result)).
		Footer(fmt.Sprintf("%s used by %s", result.ActionID, result.SourceID))

	if result.Error != "" {
		b.Field("⚠️ Error", result.Error, false)
	}

	if result.Blind {
		return b.Field("🙈 Rolled in secret", "The outcome is hidden from the table.", false).Build()
	}

	if result.Consumed != nil {
		b.Field("🎒 Consumed", consumedText(result.Consumed), true)
	}

	if len(result.Targets) == 0 && result.Attempt != nil {
		b.Field("🎲 Roll", fmt.Sprintf("%s = **%d**", result.Attempt.Formula, result.Attempt.Total), true)
	}

	for _, target := range result.Targets {
		b.Field("🎯 "+target.TargetID, targetText(target), true)
	}

	for _, app := range result.EffectsApplied {
		name := effectIcon(app.EffectType) + " " + app.EffectID
		if app.TargetID != "" {
			name += " → " + app.TargetID
		}
		b.Field(name, applicationText(app), false)
	}

	return b.Build()
}

func displayName(result *resolver.Result) string {
	if result.ActionName != "" {
		return result.ActionName
	}
	return result.ActionID
}

func resultColor(result *resolver.Result) int {
	switch {
	case result.Blind:
		return ColorBlind
	case result.State == resolver.StateErrored:
		return ColorError
	case result.Success:
		return ColorSuccess
	default:
		return ColorFailure
	}
}

func consumedText(c *resolver.Consumed) string {
	text := fmt.Sprintf("%d %s", c.Amount, c.Type)
	if c.ItemID != "" {
		text += " from " + c.ItemID
	}
	if c.ActionUses > 0 {
		text += fmt.Sprintf("\n%d use(s) of the action", c.ActionUses)
	}
	return text
}

func targetText(t *resolver.TargetResult) string {
	if t.Error != "" {
		return "⚠️ " + t.Error
	}

	var sb strings.Builder
	if t.Roll != nil {
		sb.WriteString(fmt.Sprintf("Roll: **%d**", t.Roll.Total))
		if t.TargetNumber != 0 {
			sb.WriteString(fmt.Sprintf(" vs %d", t.TargetNumber))
		}
		sb.WriteString("\n")
	}

	switch {
	case t.Natural == resolver.NaturalHit:
		sb.WriteString("🎆 **NATURAL 20!**")
	case t.Natural == resolver.NaturalMiss:
		sb.WriteString("💢 **NATURAL 1!**")
	case t.Success:
		sb.WriteString("✅ **SUCCESS!**")
	default:
		sb.WriteString("❌ **FAILED!**")
	}
	return sb.String()
}

func applicationText(app *resolver.EffectApplication) string {
	var lines []string

	if app.Magnitude != nil {
		lines = append(lines, fmt.Sprintf("%s = **%d**", app.Magnitude.Formula, app.Amount))
	}
	if res := app.Resistance; res != nil {
		verdict := "failed"
		if res.Success {
			verdict = "succeeded"
		}
		check := string(res.Type)
		if res.Save != "" {
			check = res.Save
		}
		lines = append(lines, fmt.Sprintf("🛡️ %s %s (target %d)", check, verdict, res.Target))
	}
	if app.Output != "" {
		lines = append(lines, app.Output)
	}

	switch {
	case app.Error != "":
		lines = append(lines, "⚠️ "+app.Error)
	case app.Resisted:
		lines = append(lines, "Resisted")
	case app.Applied:
		lines = append(lines, "Applied")
	}
	return strings.Join(lines, "\n")
}

func effectIcon(t actions.EffectType) string {
	switch t {
	case actions.EffectDamage:
		return "💥"
	case actions.EffectHealing:
		return "💚"
	case actions.EffectStatus:
		return "🌀"
	case actions.EffectRollTable:
		return "📜"
	case actions.EffectMacro, actions.EffectScript:
		return "🪄"
	default:
		return "✨"
	}
}
