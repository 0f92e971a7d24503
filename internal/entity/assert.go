// internal/entity/assert.go
package entity

import (
	"fmt"

	"corridor-defense/internal/types"
)

// DebugAssertions включает проверки инвариантов. Выставляется флагом -debug и тестами.
var DebugAssertions = false

// AssertGold: золото никогда не уходит в минус.
func AssertGold(gold int) {
	if DebugAssertions && gold < 0 {
		panic(fmt.Sprintf("invariant violated: gold is negative (%d)", gold))
	}
}

// AssertHealthNotIncreased: урон не может лечить монстра.
func AssertHealthNotIncreased(id types.EntityID, before, after int) {
	if DebugAssertions && after > before {
		panic(fmt.Sprintf("invariant violated: monster %d hp grew from %d to %d", id, before, after))
	}
}

// AssertPathIndex: индекс на пути не уменьшается.
func AssertPathIndex(id types.EntityID, before, after int) {
	if DebugAssertions && after < before {
		panic(fmt.Sprintf("invariant violated: monster %d path index went back from %d to %d", id, before, after))
	}
}
