package swarm

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-swarm/internal/core"
)

// Sprite glyphs
const (
	PlayerChar    = 'A'
	CompanionChar = '^'
	ShotChar      = '|'
	HostileShotCh = '!'
	BossChar      = '█'
	BarrierChar   = '▓'
	CrateChar     = '□'
	RareCrateChar = '◆'
	GateChar      = '═'
	ConvoyChar    = '▄'
	EngineChar    = '●'
	HazardChar    = '~'
)

// hostileGlyphs maps archetypes to their screen glyph.
var hostileGlyphs = map[HostileKind]rune{
	KindGrunt:     'v',
	KindRammer:    'V',
	KindCharger:   'Y',
	KindShielded:  'M',
	KindBrood:     'W',
	KindKamikaze:  'x',
	KindSwarmUnit: '·',
}

// hostileColors maps archetypes to their color.
var hostileColors = map[HostileKind]core.Color{
	KindGrunt:     core.ColorGreen,
	KindRammer:    core.ColorYellow,
	KindCharger:   core.ColorOrange,
	KindShielded:  core.ColorCyan,
	KindBrood:     core.ColorMagenta,
	KindKamikaze:  core.ColorRed,
	KindSwarmUnit: core.ColorBrightRed,
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	w := g.world

	g.renderHUD(dst)
	g.renderObstacles(dst)
	g.renderGates(dst)
	g.renderConvoys(dst)
	g.renderHostiles(dst)
	g.renderBoss(dst)
	g.renderShots(dst)
	g.renderPickups(dst)
	g.renderHazard(dst)
	g.renderPlayer(dst)
	g.renderFloats(dst)

	if w.announceTTL > 0 && g.state == StatePlaying {
		dst.DrawTextCentered(3, fmt.Sprintf("=== WAVE %d ===", w.mode.Wave))
	}

	g.renderOverlay(dst)
}

// renderHUD draws score, wave, lives and gold on the top rows.
func (g *Game) renderHUD(dst *core.Screen) {
	w := g.world

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", w.score))

	var waveText string
	if w.rules.FinalWave > 0 {
		waveText = fmt.Sprintf("Wave: %d/%d", w.mode.Wave, w.rules.FinalWave)
	} else {
		waveText = fmt.Sprintf("Wave: %d", w.mode.Wave)
	}
	dst.DrawTextCentered(0, waveText)

	var right string
	if w.mode.Lives < 0 {
		right = fmt.Sprintf("Gold: %d", w.gold)
	} else {
		right = fmt.Sprintf("Lives: %d  Gold: %d", w.mode.Lives, w.gold)
	}
	dst.DrawText(dst.Width()-len(right)-1, 0, right)

	// Status row: health bar, combo, active effects
	hp := fmt.Sprintf("HP %d/%d", w.player.Health, w.player.Max)
	dst.DrawTextColored(1, 1, hp, healthColor(w.player.Health, w.player.Max))

	var effects []string
	if w.combo > 1 {
		effects = append(effects, fmt.Sprintf("x%d", w.combo))
	}
	if w.clock < w.rapidUntil {
		effects = append(effects, "RAPID")
	}
	if w.clock < w.shieldUntil {
		effects = append(effects, "SHIELD")
	}
	if w.clock < w.slowUntil {
		effects = append(effects, "SLOW")
	}
	if w.clock < w.boostUntil {
		effects = append(effects, "BOOST")
	}
	if len(effects) > 0 {
		dst.DrawTextColored(len(hp)+3, 1, strings.Join(effects, " "), core.ColorBrightCyan)
	}
}

func healthColor(health, max int) core.Color {
	switch {
	case health*3 <= max:
		return core.ColorBrightRed
	case health*3 <= max*2:
		return core.ColorYellow
	default:
		return core.ColorBrightGreen
	}
}

func (g *Game) renderPlayer(dst *core.Screen) {
	w := g.world
	if !w.player.Active {
		return
	}

	color := core.ColorBrightWhite
	if w.player.Invulnerable(w) || w.rules.Invincible {
		// Blink on a coarse clock interval
		if (w.clock/800)%2 == 0 {
			color = core.ColorGray
		}
	}

	b := w.player.Bounds()
	for dy := 0; dy < b.H; dy++ {
		for dx := 0; dx < b.W; dx++ {
			dst.SetColored(b.X+dx, b.Y+dy, PlayerChar, color)
		}
	}

	for _, c := range w.wing {
		if c.Active {
			dst.SetColored(c.X.ToCell(), c.Y.ToCell(), CompanionChar, core.ColorBrightBlue)
		}
	}
}

func (g *Game) renderHostiles(dst *core.Screen) {
	for _, h := range g.world.hostiles {
		if !h.Active {
			continue
		}
		glyph := hostileGlyphs[h.Kind]
		color := hostileColors[h.Kind]
		if h.Elite {
			color = core.ColorBrightMagenta
		}
		b := h.Bounds()
		for dy := 0; dy < b.H; dy++ {
			for dx := 0; dx < b.W; dx++ {
				dst.SetColored(b.X+dx, b.Y+dy, glyph, color)
			}
		}
	}
}

func (g *Game) renderBoss(dst *core.Screen) {
	w := g.world
	b := w.boss
	if b == nil || !b.Active {
		return
	}

	color := core.ColorBrightMagenta
	if b.Phase == BossDying {
		color = core.ColorBrightRed
	}
	r := b.Bounds()
	for dy := 0; dy < r.H; dy++ {
		for dx := 0; dx < r.W; dx++ {
			dst.SetColored(r.X+dx, r.Y+dy, BossChar, color)
		}
	}

	// Boss health bar above the HUD rows
	if b.Phase == BossActive {
		width := dst.Width() - 4
		filled := width * b.Health / b.MaxHealth
		for x := 0; x < width; x++ {
			ch := '░'
			if x < filled {
				ch = '█'
			}
			dst.SetColored(2+x, 2, ch, core.ColorBrightRed)
		}
	}
}

func (g *Game) renderShots(dst *core.Screen) {
	for _, p := range g.world.shots {
		if !p.Active {
			continue
		}
		color := core.ColorBrightYellow
		switch p.Kind {
		case ShotHoming:
			color = core.ColorBrightCyan
		case ShotBomb:
			color = core.ColorOrange
		case ShotLaser:
			color = core.ColorBrightWhite
		}
		dst.SetColored(p.X.ToCell(), p.Y.ToCell(), ShotChar, color)
	}
	for _, p := range g.world.hostileShots {
		if p.Active {
			dst.SetColored(p.X.ToCell(), p.Y.ToCell(), HostileShotCh, core.ColorRed)
		}
	}
}

func (g *Game) renderPickups(dst *core.Screen) {
	for _, p := range g.world.pickups {
		if p.Active {
			dst.SetColored(p.X.ToCell(), p.Y.ToCell(), p.Kind.Glyph(), core.ColorBrightYellow)
		}
	}
}

func (g *Game) renderObstacles(dst *core.Screen) {
	for _, o := range g.world.obstacles {
		if !o.Active {
			continue
		}
		glyph := BarrierChar
		color := core.ColorGray
		switch o.Kind {
		case ObstacleCrate:
			glyph = CrateChar
			color = core.ColorYellow
		case ObstacleRareCrate:
			glyph = RareCrateChar
			color = core.ColorBrightMagenta
		}
		b := o.Bounds()
		for dy := 0; dy < b.H; dy++ {
			for dx := 0; dx < b.W; dx++ {
				dst.SetColored(b.X+dx, b.Y+dy, glyph, color)
			}
		}
	}
}

func (g *Game) renderGates(dst *core.Screen) {
	for _, gt := range g.world.gates {
		if !gt.Active {
			continue
		}
		b := gt.Bounds()
		for dx := 0; dx < b.W; dx++ {
			dst.SetColored(b.X+dx, b.Y, GateChar, core.ColorBrightCyan)
		}
	}
}

func (g *Game) renderConvoys(dst *core.Screen) {
	for _, c := range g.world.convoys {
		if !c.Active {
			continue
		}
		b := c.Bounds()
		for dy := 0; dy < b.H; dy++ {
			for dx := 0; dx < b.W; dx++ {
				dst.SetColored(b.X+dx, b.Y+dy, ConvoyChar, core.ColorBlue)
			}
		}
		if !c.EngineDestroyed {
			e := c.EngineBounds()
			dst.SetColored(e.X+e.W/2, e.Y, EngineChar, core.ColorBrightYellow)
		}
	}
}

func (g *Game) renderHazard(dst *core.Screen) {
	hz := g.world.hazard
	if hz == nil {
		return
	}
	for y := hz.Row; y < dst.Height(); y++ {
		if y < 0 {
			continue
		}
		for x := 0; x < dst.Width(); x++ {
			dst.SetColored(x, y, HazardChar, core.ColorBrightBlue)
		}
	}
}

func (g *Game) renderFloats(dst *core.Screen) {
	for i := range g.world.floats {
		f := &g.world.floats[i]
		dst.DrawTextColored(f.X.ToCell(), f.Y.ToCell(), f.Text, f.Color)
	}
}

// renderOverlay draws the shop, pause and end screens over the playfield.
func (g *Game) renderOverlay(dst *core.Screen) {
	w := g.world
	mid := dst.Height() / 2

	switch g.state {
	case StatePaused:
		dst.DrawTextCentered(mid, "PAUSED")
		dst.DrawTextCentered(mid+1, "Press P to resume")

	case StateShop:
		dst.DrawTextCentered(mid-3, "=== SHOP ===")
		dst.DrawTextCentered(mid-2, fmt.Sprintf("Gold: %d", w.gold))
		for i, item := range shopItems {
			cursor := "  "
			if i == g.shopCursor {
				cursor = "> "
			}
			level := w.itemLevel(item)
			line := fmt.Sprintf("%s%s  lv %d  (%d gold)", cursor, item, level, w.ItemCost(item))
			if level >= w.cfg.Shop.MaxLevel {
				line = fmt.Sprintf("%s%s  lv %d  (max)", cursor, item, level)
			}
			dst.DrawTextCentered(mid+i, line)
		}
		dst.DrawTextCentered(mid+4, "Enter to buy, Esc to close")

	case StateGameOver:
		dst.DrawTextCentered(mid-1, "GAME OVER")
		dst.DrawTextCentered(mid, fmt.Sprintf("Score: %d   Wave: %d", w.score, w.mode.Wave))
		if g.restartLock == 0 {
			dst.DrawTextCentered(mid+2, "Press R to restart")
		}

	case StateVictory:
		dst.DrawTextCentered(mid-1, "VICTORY")
		dst.DrawTextCentered(mid, fmt.Sprintf("Score: %d   Kills: %d", w.score, w.kills))
		if g.restartLock == 0 {
			dst.DrawTextCentered(mid+2, "Press R to restart")
		}
	}
}
