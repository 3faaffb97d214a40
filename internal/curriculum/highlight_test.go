package curriculum_test

import (
	"testing"

	"github.com/alexanderramin/fluxo/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHighlight(t *testing.T) {
	g := testutil.NewPrereqChainGraph(t)

	t.Run("nothing hovered", func(t *testing.T) {
		h := g.Highlight("")
		assert.Empty(t, h.Prerequisites)
		assert.Empty(t, h.Successors)
		assert.False(t, h.IsHovered(""))
	})

	t.Run("hover root", func(t *testing.T) {
		h := g.Highlight("Y")
		assert.True(t, h.IsHovered("Y"))
		assert.Empty(t, h.Prerequisites)
		assert.True(t, h.IsSuccessor("X"))
		assert.True(t, h.IsSuccessor("Z"))
		assert.False(t, h.IsPrerequisite("X"))
	})

	t.Run("hover dependent", func(t *testing.T) {
		h := g.Highlight("X")
		assert.True(t, h.IsPrerequisite("Y"))
		assert.Empty(t, h.Successors)
		assert.False(t, h.IsHovered("Y"))
	})

	t.Run("hover unknown", func(t *testing.T) {
		h := g.Highlight("NOPE")
		assert.True(t, h.IsHovered("NOPE"))
		assert.Empty(t, h.Prerequisites)
		assert.Empty(t, h.Successors)
	})
}
