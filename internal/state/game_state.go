// internal/state/game_state.go
package state

import (
	"image"
	"time"

	"corridor-defense/internal/app"
	"corridor-defense/internal/audio"
	"corridor-defense/internal/config"
	"corridor-defense/internal/debug"
	"corridor-defense/internal/defs"
	"corridor-defense/internal/event"
	"corridor-defense/internal/ui"
	"corridor-defense/pkg/gridpath"
	"corridor-defense/pkg/logger"
	"corridor-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что GameState соответствует интерфейсу State
var _ State = (*GameState)(nil)

// Options — зависимости игрового экрана. Hub и Sound могут быть nil.
type Options struct {
	Catalog *defs.Catalog
	Seed    int64
	Hub     *debug.SnapshotHub
	Sound   *audio.SoundManager
}

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	catalog  *defs.Catalog
	hub      *debug.SnapshotHub
	sound    *audio.SoundManager
	game     *app.Game
	snapshot app.Snapshot

	renderer      *render.BoardRenderer
	infoPanel     *ui.InfoPanel
	towerSelector *ui.TowerSelector
	musicButton   *ui.MusicButton
	speedButton   *ui.SpeedButton
	pauseButton   *ui.PauseButton
	modal         *ui.GameOverModal

	// Перетаскивание башни из панели
	dragging bool
	dragKind defs.TowerKind

	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, opts Options) *GameState {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = defs.MustDefault()
	}
	face := basicfont.Face7x13
	board := catalog.Board
	width := int(float64(board.Columns) * board.CellSize)
	height := int(float64(board.Rows) * board.CellSize)

	colors := &render.BoardColors{
		BackgroundColor:  config.BackgroundColor,
		GridLineColor:    config.GridLineColor,
		PathColor:        config.PathColor,
		HealthBarBack:    config.HealthBarBack,
		HealthBarFill:    config.HealthBarFill,
		SlowTintColor:    config.SlowTintColor,
		StrokeColor:      config.TowerStrokeColor,
		MonsterColors:    config.MonsterColors,
		TowerColors:      config.TowerColors,
		ProjectileColors: config.ProjectileColors,
	}

	s := &GameState{
		sm:       sm,
		catalog:  catalog,
		hub:      opts.Hub,
		sound:    opts.Sound,
		renderer: render.NewBoardRenderer(board.Columns, board.Rows, board.CellSize, colors),
		infoPanel: ui.NewInfoPanel(
			image.Rect(config.InfoPanelX, config.InfoPanelY, config.InfoPanelX+config.InfoPanelWidth, config.InfoPanelY+config.InfoPanelHeight),
			face, config.PanelColor, config.PanelTextColor),
		towerSelector: ui.NewTowerSelector(
			image.Rect(config.TowerPanelX, config.TowerPanelY, config.TowerPanelX+config.TowerPanelWidth, config.TowerPanelY+config.TowerPanelHeight),
			catalog.Towers, config.TowerOptionStep, face, config.PanelColor, config.PanelTextColor, config.TowerColors),
		musicButton: ui.NewMusicButton(config.MusicButtonX, config.MusicButtonY, config.MusicButtonSize, config.MusicOnColor, config.MusicOffColor),
		speedButton: ui.NewSpeedButton(config.SpeedButtonX, config.SpeedButtonY, config.SpeedButtonSize, config.SpeedButtonColors),
		pauseButton: ui.NewPauseButton(config.PauseButtonX, config.PauseButtonY, config.PauseButtonSize, config.PauseColor, config.PlayColor),
		modal:       ui.NewGameOverModal(width, height, face, config.ModalShadeColor, config.PanelColor, config.PanelTextColor),
	}
	if s.sound != nil {
		s.musicButton.Playing = s.sound.IsMusicPlaying()
	}
	s.startSession(opts.Seed)
	return s
}

// startSession создаёт новую сессию и перерисовывает задник под её коридор.
func (s *GameState) startSession(seed int64) {
	s.game = app.NewGame(s.catalog, app.Options{Seed: seed})
	s.renderer.RenderBoardImage(s.game.PathPoints())

	if s.sound != nil {
		s.game.EventDispatcher.Subscribe(event.Victory, s.sound)
		s.game.EventDispatcher.Subscribe(event.Defeat, s.sound)
	}
	s.game.OnVictory(func() { s.endDrag() })
	s.game.OnDefeat(func() { s.endDrag() })

	if s.hub != nil {
		s.hub.Attach(s.game)
	}
	s.speedButton.SetMultiplier(s.game.SpeedMultiplier)
	s.pauseButton.SetPaused(false)
	s.endDrag()
	s.snapshot = s.game.Snapshot()
}

func (s *GameState) Enter() {
	s.pauseButton.SetPaused(false)
}

func (s *GameState) Update(deltaTime float64) {
	// Ввод обрабатывается до тиков, поэтому башня ставится между тиками
	if s.handleInput() {
		return
	}
	s.game.Update(deltaTime)
	s.snapshot = s.game.Snapshot()
}

// handleInput возвращает true, если состояние сменилось.
func (s *GameState) handleInput() bool {
	if !s.game.StateSystem.IsPlaying() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			logger.Log.Info("Restarting session")
			s.startSession(0)
		}
		return false
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.pause()
		return true
	}

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if s.handleClick(x, y) {
			return true
		}
	}
	if s.dragging && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		s.drop(x, y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		s.endDrag()
	}
	return false
}

func (s *GameState) handleClick(x, y int) bool {
	now := time.Now()
	if now.Sub(s.lastClickTime) < config.ClickCooldown {
		return false
	}

	switch {
	case s.pauseButton.Contains(x, y):
		s.lastClickTime = now
		s.pause()
		return true
	case s.speedButton.Contains(x, y):
		s.lastClickTime = now
		s.speedButton.SetMultiplier(s.game.ToggleSpeed())
	case s.musicButton.Contains(x, y):
		s.lastClickTime = now
		s.musicButton.LastClickTime = now
		if s.sound != nil {
			s.musicButton.Playing = s.sound.ToggleMusic()
		}
	default:
		if option, ok := s.towerSelector.OptionAt(x, y); ok && option.Cost <= s.game.ECS.Player.Gold {
			s.dragging = true
			s.dragKind = option.Kind
		}
	}
	return false
}

// drop пытается поставить перетаскиваемую башню в клетку под курсором.
func (s *GameState) drop(x, y int) {
	kind := s.dragKind
	s.endDrag()
	cell := gridpath.PixelToCell(float64(x), float64(y), s.catalog.Board.CellSize)
	if _, err := s.game.PlaceTower(kind, cell); err != nil {
		logger.Log.WithError(err).WithField("cell", cell).Debug("Tower not placed")
		return
	}
	s.snapshot = s.game.Snapshot()
}

func (s *GameState) endDrag() {
	s.dragging = false
	s.dragKind = ""
}

func (s *GameState) pause() {
	s.endDrag()
	s.pauseButton.TogglePause()
	s.sm.SetState(NewPauseState(s.sm, s))
}

func (s *GameState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.snapshot)
	if s.dragging {
		s.drawDragPreview(screen)
	}

	s.infoPanel.Draw(screen, s.snapshot)
	s.towerSelector.Draw(screen, s.snapshot.Gold)
	s.musicButton.Draw(screen)
	s.speedButton.Draw(screen)
	s.pauseButton.Draw(screen)
	s.modal.Draw(screen, s.snapshot)
}

// drawDragPreview подсвечивает клетку под курсором и радиус будущей башни.
func (s *GameState) drawDragPreview(screen *ebiten.Image) {
	def, ok := s.catalog.Tower(s.dragKind)
	if !ok {
		return
	}
	x, y := ebiten.CursorPosition()
	cellSize := s.catalog.Board.CellSize
	cell := gridpath.PixelToCell(float64(x), float64(y), cellSize)
	cx, cy := cell.Center(cellSize)

	clr := config.ValidDropColor
	if s.game.CanPlaceTower(s.dragKind, cell) != nil {
		clr = config.InvalidDropColor
	}
	s.renderer.DrawRange(screen, float32(cx), float32(cy), float32(def.Range), clr)
	s.renderer.DrawTower(screen, string(s.dragKind), float32(cx), float32(cy), 150)
}

func (s *GameState) Exit() {
	// Ничего не делаем при выходе
}
