package game

import (
	"fmt"
	"hash/fnv"

	"github.com/pthm-cable/backdrop/camera"
	"github.com/pthm-cable/backdrop/config"
	"github.com/pthm-cable/backdrop/renderer"
	"github.com/pthm-cable/backdrop/systems"
)

// PageAll shows every effect at once.
const PageAll = "all"

const defaultBackground = "#000000"

// resolveEffects returns the effect names to mount, back to front, and the
// page background.
func resolveEffects(cfg *config.Config, page string, override []string) ([]string, string, error) {
	background := defaultBackground
	if p, ok := cfg.Page(page); ok && p.Background != "" {
		background = p.Background
	}

	switch {
	case len(override) > 0:
		return override, background, nil
	case page == PageAll:
		return systems.Names, background, nil
	}

	p, ok := cfg.Page(page)
	if !ok {
		return nil, "", fmt.Errorf("unknown page %q", page)
	}
	return p.Effects, background, nil
}

// layerSeed derives a layer's spawner seed from the run seed, the effect name
// and how many layers of that effect came before it. A layer's pool does not
// depend on which other layers are on the page.
func layerSeed(seed int64, name string, nth int) int64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	s := seed + int64(h.Sum64()>>1) + int64(nth)
	if s == 0 {
		s = 1
	}
	return s
}

// newEffect builds the named effect for the current viewport with its own spawner.
func (g *Game) newEffect(name string, spawn *systems.Spawner) (systems.Effect, error) {
	cfg := g.cfg
	switch name {
	case systems.NameBallpit:
		return systems.NewBallpit(cfg.BallpitFor(g.page), spawn, g.cam), nil
	case systems.NameNetwork:
		return systems.NewNetwork(cfg.Network, spawn, g.width, g.height), nil
	case systems.NameStarfield:
		return systems.NewStarfield(cfg.Starfield, spawn, g.width, g.height), nil
	case systems.NameSnow:
		return systems.NewSnow(cfg.Snow, spawn, g.width, g.height), nil
	case systems.NameField:
		return systems.NewField(cfg.Field, spawn, g.width, g.height), nil
	case systems.NameCloud:
		// The cloud is framed wider than the ball pit it shares a page with.
		cam := camera.New(g.width, g.height, cfg.Camera.Distance, cfg.Cloud.FOV, cfg.Camera.Near, cfg.Camera.Far)
		return systems.NewCloud(cfg.Cloud, spawn, cam), nil
	}
	return nil, fmt.Errorf("unknown effect %q", name)
}

// newRenderer returns the renderer for an effect.
func (g *Game) newRenderer(e systems.Effect) renderer.Renderer {
	switch e := e.(type) {
	case *systems.Ballpit:
		return renderer.NewBallpitRenderer(e)
	case *systems.Network:
		return renderer.NewNetworkRenderer(e)
	case *systems.Starfield:
		return renderer.NewStarfieldRenderer(e)
	case *systems.Snow:
		return renderer.NewSnowRenderer(e)
	case *systems.Field:
		return renderer.NewFieldRenderer(e, g.background)
	case *systems.Cloud:
		return renderer.NewCloudRenderer(e)
	}
	return nil
}
