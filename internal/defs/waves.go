package defs

import "time"

// WaveEntry — сколько монстров данного типа выходит в волне.
type WaveEntry struct {
	MonsterID string `yaml:"monster"`
	Count     int    `yaml:"count"`
}

// WaveDefinition описывает состав одной волны и интервал появления монстров.
type WaveDefinition struct {
	Monsters      []WaveEntry   `yaml:"monsters"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
}

// Size возвращает общее количество монстров в волне.
func (w WaveDefinition) Size() int {
	total := 0
	for _, e := range w.Monsters {
		total += e.Count
	}
	return total
}
