package effects

// Builder helps create condition templates
type Builder struct {
	template *Template
}

// NewBuilder creates a new template builder
func NewBuilder(name string) *Builder {
	return &Builder{
		template: &Template{
			Name:    name,
			Changes: []Change{},
		},
	}
}

// WithIcon sets the icon reference
func (b *Builder) WithIcon(icon string) *Builder {
	b.template.Icon = icon
	return b
}

// WithDescription adds a description
func (b *Builder) WithDescription(desc string) *Builder {
	b.template.Description = desc
	return b
}

// ForRounds sets the duration in combat rounds
func (b *Builder) ForRounds(rounds int) *Builder {
	b.template.Duration.Rounds = rounds
	return b
}

// ForTurns sets the duration in exploration turns
func (b *Builder) ForTurns(turns int) *Builder {
	b.template.Duration.Turns = turns
	return b
}

// ForSeconds sets the duration in seconds
func (b *Builder) ForSeconds(seconds int) *Builder {
	b.template.Duration.Seconds = seconds
	return b
}

// AddChange adds a change at the mode's default priority
func (b *Builder) AddChange(key, value string, mode ChangeMode) *Builder {
	b.template.Changes = append(b.template.Changes, Change{
		Key:   key,
		Value: value,
		Mode:  mode,
	})
	return b
}

// AddChangeWithPriority adds a change with an explicit priority
func (b *Builder) AddChangeWithPriority(key, value string, mode ChangeMode, priority int) *Builder {
	b.template.Changes = append(b.template.Changes, Change{
		Key:      key,
		Value:    value,
		Mode:     mode,
		Priority: &priority,
	})
	return b
}

// Build returns the constructed template
func (b *Builder) Build() *Template {
	return b.template
}

// Common condition templates

// BuildBlessedCondition creates the bless condition: +1 to hit for six turns
func BuildBlessedCondition() *Template {
	return NewBuilder("Blessed").
		WithIcon("icons/magic/holy/prayer-hands-glowing-yellow.webp").
		WithDescription("+1 bonus to attack rolls.").
		ForTurns(6).
		AddChange("mod.meleeAttack", "1", ModeAdd).
		AddChange("mod.missileAttack", "1", ModeAdd).
		Build()
}

// BuildShieldedCondition creates a magical shield: armour class 2 [17]
func BuildShieldedCondition() *Template {
	return NewBuilder("Shielded").
		WithIcon("icons/magic/defensive/shield-barrier-blue.webp").
		WithDescription("An invisible barrier grants armour class 2 [17].").
		ForTurns(2).
		AddChange("ac", "2", ModeDowngrade).
		AddChange("aac", "17", ModeUpgrade).
		Build()
}

// BuildHeldCondition creates a paralysis-style hold lasting the given rounds
func BuildHeldCondition(rounds int) *Template {
	return NewBuilder("Held").
		WithIcon("icons/magic/control/debuff-chains-ropes-purple.webp").
		WithDescription("The creature cannot move or act.").
		ForRounds(rounds).
		AddChangeWithPriority("movement.encounter", "0", ModeOverride, 100).
		Build()
}
