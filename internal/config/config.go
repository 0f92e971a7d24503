// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	CellSize     = 40.0
	BoardColumns = 20
	BoardRows    = 16
	ScreenWidth  = BoardColumns * CellSize
	ScreenHeight = BoardRows * CellSize

	// Логический шаг симуляции не зависит от частоты кадров.
	TicksPerSecond   = 60
	TickStep         = time.Second / TicksPerSecond
	MaxDeltaTime     = 0.25 // секунды; больше за кадр не догоняем
	MaxTicksPerFrame = 8

	ProjectileHitRadius = 10.0
	ProjectileRadius    = 4.0
	MonsterRadiusFactor = 0.4
	TowerRadiusFactor   = 0.35

	ClickCooldown = 300 * time.Millisecond

	InfoPanelX      = 10
	InfoPanelY      = 10
	InfoPanelWidth  = 150
	InfoPanelHeight = 80

	TowerPanelWidth  = 150
	TowerPanelHeight = 80
	TowerPanelX      = ScreenWidth - TowerPanelWidth - 50
	TowerPanelY      = 10
	TowerOptionStep  = 25

	MusicButtonSize = 32.0
	MusicButtonX    = ScreenWidth - MusicButtonSize - 8
	MusicButtonY    = 8.0

	// Кнопки скорости и паузы стоят столбиком под кнопкой музыки
	SpeedButtonX    = MusicButtonX + MusicButtonSize/2
	SpeedButtonY    = MusicButtonY + MusicButtonSize + 24
	SpeedButtonSize = 12.0

	PauseButtonX    = SpeedButtonX
	PauseButtonY    = SpeedButtonY + 36
	PauseButtonSize = 10.0

	DefaultDebugAddr = "localhost:6060"
)

var (
	BackgroundColor  = color.RGBA{255, 245, 238, 255}
	GridLineColor    = color.RGBA{255, 228, 225, 255}
	PathColor        = color.RGBA{255, 182, 193, 205}
	PanelColor       = color.RGBA{255, 240, 245, 235}
	PanelTextColor   = color.RGBA{255, 105, 180, 255}
	ValidDropColor   = color.RGBA{144, 238, 144, 60}
	InvalidDropColor = color.RGBA{255, 182, 193, 60}
	HealthBarBack    = color.RGBA{60, 60, 60, 200}
	HealthBarFill    = color.RGBA{50, 205, 50, 255}
	SlowTintColor    = color.RGBA{71, 162, 230, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	ModalShadeColor  = color.RGBA{0, 0, 0, 140}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	MusicOnColor     = color.RGBA{255, 105, 180, 255}
	MusicOffColor    = color.RGBA{170, 170, 170, 255}
	PauseColor       = color.RGBA{70, 130, 180, 220}
	PlayColor        = color.RGBA{50, 205, 50, 220}

	MonsterColors = map[string]color.RGBA{
		"NORMAL": {139, 90, 43, 255},
		"ELITE":  {128, 0, 128, 255},
	}
	TowerColors = map[string]color.RGBA{
		"NORMAL": {255, 140, 0, 255},
		"SLOW":   {71, 162, 230, 255},
	}
	ProjectileColors = map[string]color.RGBA{
		"NORMAL": {255, 215, 0, 255},
		"SLOW":   {71, 162, 230, 255},
	}
	SpeedButtonColors = []color.RGBA{
		{70, 130, 180, 220},  // x1
		{220, 60, 60, 220},   // x2
		{194, 178, 128, 255}, // x4
	}
)
