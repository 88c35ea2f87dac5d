package sandbox

import (
	"math/rand/v2"
	"strings"

	"github.com/automoto/hitsync/shared/gamemath"
	"github.com/automoto/hitsync/shared/leveldata"
	"github.com/automoto/hitsync/shared/messages"
)

type CommandKind int

const (
	// CommandMelee resolves a swing on every target at once.
	CommandMelee CommandKind = iota
	// CommandSkill is a melee swing attributed to a skill.
	CommandSkill
	// CommandVolley launches a damage-carrying projectile.
	CommandVolley
	// CommandCosmetic launches a projectile at a point, without damage.
	CommandCosmetic
	// CommandUnseen deals damage from an attacker the client never spawned,
	// so no hit keyframe can release it.
	CommandUnseen
)

type Command struct {
	Kind     CommandKind
	Attacker uint
	Targets  []uint
	Skill    uint32
	MoveType uint8
	Aim      gamemath.Vec3
}

// UnseenAttacker is the id used by CommandUnseen attacks.
const UnseenAttacker uint = 9999

type Script struct {
	Commands   []Command
	Period     float64 // seconds between commands
	MissChance float64
	CritChance float64
	MinDamage  int
	MaxDamage  int

	elapsed float64
	next    float64
	index   int
	rng     *rand.Rand
}

func NewScript(commands []Command, period float64, seed uint64) *Script {
	return &Script{
		Commands:   commands,
		Period:     period,
		MissChance: 0.1,
		CritChance: 0.15,
		MinDamage:  5,
		MaxDamage:  1200,
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Update advances the script clock and issues every command that came due.
// It returns how many were issued.
func (s *Script) Update(dt float64, feed *LocalFeed) int {
	if len(s.Commands) == 0 || s.Period <= 0 {
		return 0
	}
	s.elapsed += dt

	issued := 0
	for s.elapsed >= s.next {
		s.issue(s.Commands[s.index%len(s.Commands)], feed)
		s.index++
		s.next += s.Period
		issued++
	}
	return issued
}

func (s *Script) issue(c Command, feed *LocalFeed) {
	switch c.Kind {
	case CommandMelee, CommandSkill, CommandUnseen:
		attacker := c.Attacker
		if c.Kind == CommandUnseen {
			attacker = UnseenAttacker
		}
		for _, target := range c.Targets {
			amount, crit := s.roll()
			msg := messages.DamageEntity{
				AttackerID: attacker,
				TargetID:   target,
				Damage:     amount,
				IsCritical: crit,
			}
			if c.Kind == CommandSkill {
				msg.SkillID = c.Skill
				msg.SkillValue = amount
			}
			feed.PushDamage(msg)
		}

	case CommandVolley:
		for _, target := range c.Targets {
			amount, crit := s.roll()
			feed.PushProjectile(messages.FireProjectile{
				SourceID:    c.Attacker,
				TargetID:    target,
				MoveType:    c.MoveType,
				SkillID:     c.Skill,
				ApplyDamage: true,
				Damage:      amount,
				IsCritical:  crit,
			})
		}

	case CommandCosmetic:
		feed.PushProjectile(messages.FireProjectile{
			SourceID: c.Attacker,
			X:        c.Aim.X,
			Y:        c.Aim.Y,
			Z:        c.Aim.Z,
			MoveType: c.MoveType,
		})
	}
}

func (s *Script) roll() (int, bool) {
	if s.rng.Float64() < s.MissChance {
		return 0, false
	}
	amount := s.MinDamage
	if s.MaxDamage > s.MinDamage {
		amount += s.rng.IntN(s.MaxDamage - s.MinDamage + 1)
	}
	if s.rng.Float64() < s.CritChance {
		return amount * 2, true
	}
	return amount, false
}

// SpawnMessages turns zone spawn points into character spawns. The spawn
// named local becomes the player's character.
func SpawnMessages(spawns []leveldata.SpawnPoint, local string) []messages.SpawnCharacter {
	out := make([]messages.SpawnCharacter, 0, len(spawns))
	for _, sp := range spawns {
		hp := sp.HP
		if hp <= 0 {
			hp = 100
		}
		out = append(out, messages.SpawnCharacter{
			NetworkID: sp.ClientID,
			X:         sp.X,
			Z:         sp.Z,
			HP:        hp,
			MaxHP:     hp,
			IsLocal:   sp.Name == local,
		})
	}
	return out
}

// DefaultCommands builds the demo rotation from spawns named "hero",
// "archer" and "dummy-*".
func DefaultCommands(spawns []leveldata.SpawnPoint) []Command {
	var hero, archer uint
	var dummies []uint
	var far gamemath.Vec3
	for _, sp := range spawns {
		switch {
		case sp.Name == "hero":
			hero = sp.ClientID
		case sp.Name == "archer":
			archer = sp.ClientID
		case strings.HasPrefix(sp.Name, "dummy"):
			dummies = append(dummies, sp.ClientID)
			far = gamemath.Vec3{X: sp.X + 2, Z: sp.Z}
		}
	}
	if hero == 0 || archer == 0 || len(dummies) == 0 {
		return nil
	}

	return []Command{
		{Kind: CommandMelee, Attacker: hero, Targets: dummies},
		{Kind: CommandVolley, Attacker: archer, Targets: dummies[len(dummies)/2:][:1], MoveType: messages.MoveParabolic},
		{Kind: CommandSkill, Attacker: hero, Targets: dummies[:1], Skill: 4},
		{Kind: CommandCosmetic, Attacker: archer, Aim: far, MoveType: messages.MoveLinear},
		{Kind: CommandUnseen, Targets: dummies[len(dummies)-1:]},
		{Kind: CommandVolley, Attacker: archer, Targets: []uint{hero}, MoveType: messages.MoveLinear},
	}
}
