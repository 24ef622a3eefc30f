package client

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/naxaras/gaemstone/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProcessor struct {
	updates  int
	lastDt   float64
	unloaded bool
}

func (p *countingProcessor) OnUpdate(frame *ecs.UpdateFrame) {
	p.updates++
	p.lastDt = frame.Delta
}

func (p *countingProcessor) OnUnload() { p.unloaded = true }

type fakeOverlay struct {
	begins, ends int
	layoutW      int
}

func (o *fakeOverlay) BeginFrame() { o.begins++ }
func (o *fakeOverlay) EndFrame() { o.ends++ }

func (o *fakeOverlay) Draw(*ebiten.Image) {}

func (o *fakeOverlay) Layout(w, h int) { o.layoutW = w }

func newTestGame(t *testing.T, opts ...GameOption) *Game {
	t.Helper()
	g, err := NewGame(DefaultConfig(), nil, opts...)
	require.NoError(t, err)
	return g
}

func TestNewGameRegistersStores(t *testing.T) {
	g := newTestGame(t)

	_, ok := ecs.GetStore[Transform](g.Components)
	assert.True(t, ok)
	camStore, ok := ecs.GetStore[Camera](g.Components)
	assert.True(t, ok)
	_, isDict := camStore.(*ecs.DictionaryStore[Camera])
	assert.True(t, isDict)
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UpdatesPerSecond = 0
	_, err := NewGame(cfg, nil)
	assert.Error(t, err)
}

func TestGameLoadSpawnsMainCamera(t *testing.T) {
	p := &countingProcessor{}
	g := newTestGame(t, WithProcessors(p))

	var hookSawCamera bool
	g.OnLoad = func(g *Game) error {
		hookSawCamera = ecs.Has[Camera](g.Universe, g.MainCamera)
		return nil
	}

	require.NoError(t, g.load())
	assert.True(t, hookSawCamera)
	assert.Equal(t, 1, g.Processors.Len())

	cam, err := ecs.Get[Camera](g.Universe, g.MainCamera)
	require.NoError(t, err)
	assert.Equal(t, DefaultCamera, cam)

	tr, err := ecs.Get[Transform](g.Universe, g.MainCamera)
	require.NoError(t, err)
	x, y := tr.Position()
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestGameLoadHookError(t *testing.T) {
	g := newTestGame(t)
	boom := errors.New("boom")
	g.OnLoad = func(*Game) error { return boom }

	assert.ErrorIs(t, g.load(), boom)
}

func TestGameLoadDuplicateProcessor(t *testing.T) {
	g := newTestGame(t, WithProcessors(&countingProcessor{}, &countingProcessor{}))
	assert.ErrorIs(t, g.load(), ecs.ErrAlreadyStarted)
}

func TestGameUpdateDrivesProcessors(t *testing.T) {
	p := &countingProcessor{}
	g := newTestGame(t, WithProcessors(p))
	require.NoError(t, g.load())

	g.update(1.0 / 30.0)
	g.update(1.0 / 30.0)

	assert.Equal(t, 2, p.updates)
	assert.InDelta(t, 1.0/30.0, p.lastDt, 1e-9)
}

func TestGameClosingStopsProcessors(t *testing.T) {
	p := &countingProcessor{}
	g := newTestGame(t, WithProcessors(p))
	require.NoError(t, g.load())

	hookCalls := 0
	g.OnClosing = func(g *Game) {
		hookCalls++
		assert.Equal(t, 1, g.Processors.Len(), "hook runs before processors stop")
	}

	g.closing()
	g.closing()

	assert.Equal(t, 1, hookCalls)
	assert.True(t, p.unloaded)
	assert.Equal(t, 0, g.Processors.Len())
}

func TestGameLayoutForwardsToOverlay(t *testing.T) {
	o := &fakeOverlay{}
	g := newTestGame(t, WithOverlay(o))

	w, h := g.Layout(800, 600)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Equal(t, 800, o.layoutW)
}

func TestGameResources(t *testing.T) {
	fsys := fstest.MapFS{
		"shaders/basic.vs": &fstest.MapFile{Data: []byte("void main() {}")},
	}
	g, err := NewGame(DefaultConfig(), FSResources{FS: fsys})
	require.NoError(t, err)

	src, err := g.GetResourceAsString("shaders/basic.vs")
	require.NoError(t, err)
	assert.Equal(t, "void main() {}", src)

	_, err = g.GetResourceStream("missing.png")
	assert.Error(t, err)
}

func TestGameWithoutResources(t *testing.T) {
	g := newTestGame(t)
	_, err := g.GetResourceAsString("anything")
	assert.Error(t, err)
}

func TestGameViewMatrix(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.load())

	var camTransform Transform
	camTransform.Translate(10, 5)
	require.NoError(t, ecs.Set(g.Universe, g.MainCamera, camTransform))
	require.NoError(t, ecs.Set(g.Universe, g.MainCamera, Camera{Zoom: 2}))

	view := g.ViewMatrix()
	x, y := view.Apply(10, 5)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)

	x, y = view.Apply(11, 5)
	assert.InDelta(t, 2, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
}

func TestGameDrawSkipsSceneBeforeLoad(t *testing.T) {
	g := newTestGame(t)
	var draws int
	g.OnDraw = func(*Game, *ebiten.Image) { draws++ }

	g.Draw(nil)
	assert.Zero(t, draws)

	require.NoError(t, g.load())
	g.Draw(nil)
	assert.Equal(t, 1, draws)
}
