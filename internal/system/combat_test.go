package system

import (
	"testing"
	"time"

	"corridor-defense/internal/component"
	"corridor-defense/internal/defs"
	"corridor-defense/internal/event"
)

func basicCombat() component.Combat {
	return component.Combat{
		Damage:          10,
		Range:           200,
		AttackInterval:  500 * time.Millisecond,
		ProjectileSpeed: 50,
	}
}

func TestTowerCooldown(t *testing.T) {
	f := newFixture(t)
	f.addMonster(20, 20, 4, 1000)
	tower := f.addTower(60, 60, basicCombat())

	steps := []struct {
		now  time.Duration
		want int
	}{
		{0, 1}, // первый выстрел без ожидания
		{100 * time.Millisecond, 1},
		{499 * time.Millisecond, 1},
		{500 * time.Millisecond, 2},
		{900 * time.Millisecond, 2},
		{time.Second, 3},
	}
	for _, s := range steps {
		f.combat.Update(s.now)
		if got := len(f.ecs.ProjectileOrder); got != s.want {
			t.Fatalf("at %v: got %d projectiles, want %d", s.now, got, s.want)
		}
	}
	if last := f.ecs.Combats[tower].LastAttackTime; last != time.Second {
		t.Errorf("got last attack %v, want 1s", last)
	}
}

func TestTowerIdleWithoutTarget(t *testing.T) {
	f := newFixture(t)
	f.addMonster(1000, 1000, 4, 30)
	tower := f.addTower(60, 60, basicCombat())

	f.combat.Update(0)
	if len(f.ecs.ProjectileOrder) != 0 {
		t.Fatalf("got %d projectiles, want 0", len(f.ecs.ProjectileOrder))
	}
	if f.ecs.Combats[tower].HasAttacked {
		t.Error("idle tower marked as having attacked")
	}
}

func TestTowerTargetsFirstSpawned(t *testing.T) {
	f := newFixture(t)
	first := f.addMonster(100, 20, 4, 30)
	f.addMonster(60, 20, 4, 30) // ближе, но появился позже
	f.addTower(60, 60, basicCombat())

	f.combat.Update(0)
	pid := f.ecs.ProjectileOrder[0]
	if got := f.ecs.Projectiles[pid].TargetID; got != first {
		t.Errorf("got target %d, want %d", got, first)
	}
}

func TestProjectileHomesOnTarget(t *testing.T) {
	f := newFixture(t)
	target := f.addMonster(100, 20, 0, 30)
	pid := f.addProjectile(20, 20, target, 10, 5)

	f.projectile.Update(0)
	if pos := f.ecs.Positions[pid]; pos.X != 25 || pos.Y != 20 {
		t.Errorf("got (%v, %v), want (25, 20)", pos.X, pos.Y)
	}
	if h := f.ecs.Healths[target].Value; h != 30 {
		t.Errorf("got health %d before the hit, want 30", h)
	}
}

func TestProjectileDamageSummedAndRewardedOnce(t *testing.T) {
	f := newFixture(t)
	target := f.addMonster(100, 20, 0, 30)
	f.addProjectile(95, 20, target, 20, 5)
	f.addProjectile(100, 25, target, 20, 5)
	gold := f.ecs.Player.Gold

	f.projectile.Update(0)

	if f.ecs.IsMonster(target) {
		t.Fatal("monster survived 40 damage with 30 hp")
	}
	if got := f.ecs.Player.Gold - gold; got != 10 {
		t.Errorf("got reward %d, want 10", got)
	}
	if n := f.events.count(event.MonsterKilled); n != 1 {
		t.Errorf("got %d MonsterKilled events, want 1", n)
	}
	if len(f.ecs.ProjectileOrder) != 0 {
		t.Errorf("got %d projectiles left, want 0", len(f.ecs.ProjectileOrder))
	}
}

func TestProjectileDroppedWithTarget(t *testing.T) {
	f := newFixture(t)
	target := f.addMonster(100, 20, 0, 30)
	other := f.addMonster(300, 20, 0, 30)
	f.addProjectile(20, 20, target, 10, 5)
	kept := f.addProjectile(20, 20, other, 10, 5)

	f.ecs.RemoveMonster(target)
	if len(f.ecs.ProjectileOrder) != 1 || f.ecs.ProjectileOrder[0] != kept {
		t.Fatalf("got projectiles %v, want only %d", f.ecs.ProjectileOrder, kept)
	}

	// Снаряд, у которого цель пропала без каскада, убирается в Update
	f.ecs.Projectiles[kept].TargetID = 9999
	f.projectile.Update(0)
	if len(f.ecs.ProjectileOrder) != 0 {
		t.Errorf("got %d projectiles, want 0", len(f.ecs.ProjectileOrder))
	}
}

func TestSlowProjectileAppliesEffect(t *testing.T) {
	f := newFixture(t)
	target := f.addMonster(100, 20, 4, 30)
	pid := f.addProjectile(98, 20, target, 1, 5)
	f.ecs.Projectiles[pid].Effect = &defs.EffectDefinition{Type: defs.EffectSlow, Value: 0.5, Duration: time.Second}

	f.projectile.Update(0)

	effects := f.ecs.StatusEffects[target]
	if len(effects) != 1 || effects[0].Type != defs.EffectSlow || effects[0].AppliedAt != 0 {
		t.Fatalf("got effects %+v, want one fresh SLOW", effects)
	}
	if h := f.ecs.Healths[target].Value; h != 29 {
		t.Errorf("got health %d, want 29", h)
	}
}

func TestApplyDamageClampsAtZero(t *testing.T) {
	f := newFixture(t)
	id := f.addMonster(0, 0, 0, 30)

	if hp, ok := ApplyDamage(f.ecs, id, 50); !ok || hp != 0 {
		t.Errorf("got (%d, %v), want (0, true)", hp, ok)
	}
	if hp, ok := ApplyDamage(f.ecs, id, -5); !ok || hp != 0 {
		t.Errorf("negative damage: got (%d, %v), want (0, true)", hp, ok)
	}
	if _, ok := ApplyDamage(f.ecs, 12345, 1); ok {
		t.Error("damage applied to a missing entity")
	}
}
