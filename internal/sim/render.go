package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/orbit-rush/internal/core"
)

// Glyphs for world objects.
const (
	PlayerChar = '◉'
	HazardChar = '◆'
	ShieldChar = '⊕'
	SlowMoChar = '◷'
	MagnetChar = '◈'
	RingChar   = '·'
	LockedChar = '˙'
)

// Render draws the current game state to the screen. Terminal cells are
// roughly twice as tall as wide, so world x is stretched by two to keep
// rings visually circular.
func (g *Game) Render(dst *core.Screen) {
	if g.world == nil {
		return
	}

	cx := dst.Width() / 2
	cy := dst.Height() / 2
	scale := g.worldScale(dst)
	now := g.now()

	g.renderRings(dst, cx, cy, scale, now)
	g.renderEntities(dst, cx, cy, scale, now)
	g.renderPlayer(dst, cx, cy, scale, now)
	g.renderHUD(dst, now)

	if g.paused {
		g.renderOverlay(dst, "PAUSED", "Press P to resume")
	} else if g.gameOver {
		g.renderGameOver(dst)
	}
}

// worldScale fits the outermost ring inside the screen with a margin
// for the HUD row.
func (g *Game) worldScale(dst *core.Screen) float64 {
	maxRadius := 1.0
	rings := g.world.Rings()
	for i := 0; i < rings.Count(); i++ {
		if r := rings.Radius(i); r > maxRadius {
			maxRadius = r
		}
	}
	vert := float64(dst.Height()/2 - 2)
	horiz := float64(dst.Width()/2-2) / 2
	return math.Min(vert, horiz) / maxRadius
}

func (g *Game) cell(cx, cy int, scale, wx, wy float64) (int, int) {
	return cx + int(math.Round(wx*scale*2)), cy + int(math.Round(wy*scale))
}

func (g *Game) renderRings(dst *core.Screen, cx, cy int, scale, now float64) {
	rings := g.world.Rings()
	dimmed := false
	if t, ok := g.world.Scoring().ActiveSpecial(now); ok && t == SpecialEclipse {
		dimmed = true
	}

	for i := 0; i < rings.Count(); i++ {
		radius := rings.Radius(i)
		ch := RingChar
		clr := core.ColorGray
		if i >= rings.ActiveCount() {
			ch = LockedChar
		} else if dimmed {
			clr = core.ColorDefault
		}

		steps := int(radius * scale * 12)
		if steps < 24 {
			steps = 24
		}
		for s := 0; s < steps; s++ {
			a := core.TwoPi * float64(s) / float64(steps)
			x, y := g.cell(cx, cy, scale, radius*math.Cos(a), radius*math.Sin(a))
			dst.SetCell(x, y, ch, clr)
		}
	}
}

func (g *Game) renderEntities(dst *core.Screen, cx, cy int, scale, now float64) {
	rings := g.world.Rings()
	g.world.Pool().ForEachActive(func(e *Entity) {
		wx, wy := g.world.motion.Position(rings, e.Ring, e.Angle)
		x, y := g.cell(cx, cy, scale, wx, wy)

		ch, clr := entityGlyph(e.Kind)
		if e.Kind == KindHazard && e.Neutralized(now) {
			clr = core.ColorGray
		}
		dst.SetCell(x, y, ch, clr)
	})
}

func entityGlyph(k EntityKind) (rune, core.Color) {
	switch k {
	case KindShieldPickup:
		return ShieldChar, core.ColorBrightBlue
	case KindSlowMoPickup:
		return SlowMoChar, core.ColorBrightGreen
	case KindMagnetPickup:
		return MagnetChar, core.ColorBrightMagenta
	default:
		return HazardChar, core.ColorBrightRed
	}
}

func (g *Game) renderPlayer(dst *core.Screen, cx, cy int, scale, now float64) {
	p := g.world.Player()
	wx, wy := g.world.motion.Position(g.world.Rings(), p.Ring, p.Angle)
	x, y := g.cell(cx, cy, scale, wx, wy)

	clr := core.ColorBrightWhite
	switch {
	case g.world.Effects().IsActive(EffectShield, now):
		clr = core.ColorBrightCyan
	case g.world.InGrace(now):
		clr = core.ColorYellow
	}
	dst.SetCell(x, y, PlayerChar, clr)
}

func (g *Game) renderHUD(dst *core.Screen, now float64) {
	sc := g.world.Scoring()
	hud := fmt.Sprintf("Score: %d  x%.2f  Lv %d", sc.Score(), sc.Multiplier(), sc.Level())
	if next := sc.NextCheckpoint(); next > 0 {
		hud += fmt.Sprintf("  Next: %d", next)
	}
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)

	if coins := g.coinsLabel(); coins != "" {
		dst.DrawTextColored(dst.Width()-len([]rune(coins))-1, 0, coins, core.ColorBrightYellow)
	}

	// Active effect timers along the bottom row.
	x := 1
	for _, eff := range g.world.Effects().Active(now) {
		label := fmt.Sprintf("[%s %.1fs]", eff.Type, g.world.Effects().Remaining(eff.Type, now))
		dst.DrawTextColored(x, dst.Height()-1, label, core.ColorBrightCyan)
		x += len([]rune(label)) + 1
	}

	if t, ok := sc.ActiveSpecial(now); ok {
		label := fmt.Sprintf("!! %s !!", t)
		dst.DrawTextColored(dst.Width()-len([]rune(label))-1, dst.Height()-1, label, core.ColorBrightMagenta)
	}
}

func (g *Game) renderGameOver(dst *core.Screen) {
	lines := []string{"GAME OVER"}
	if g.result != nil {
		lines = append(lines,
			fmt.Sprintf("Score %d  Lv %d", g.result.Score, g.result.Level),
			fmt.Sprintf("Near misses: %d", g.result.NearMisses),
		)
	}
	hint := "R: restart"
	if g.wallet != nil {
		hint += fmt.Sprintf("  V: revive (%d coins)", g.cfg.Powerups.ShieldCost*ReviveCostMult)
	}
	lines = append(lines, hint)
	g.renderOverlay(dst, lines...)
}

// renderOverlay draws a centered bordered box with the given lines.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	w := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > w {
			w = n
		}
	}
	w += 4
	h := len(lines) + 2
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l)
	}
}
