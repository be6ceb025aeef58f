package layout

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Mshel/pathviz/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinPatternsEvaluate(t *testing.T) {
	service, err := NewPatternService("")
	require.NoError(t, err)

	for _, name := range service.Names() {
		t.Run(name, func(t *testing.T) {
			pattern, err := service.Get(name)
			require.NoError(t, err)

			walls, err := Walls(context.Background(), pattern, 9, 11)
			require.NoError(t, err)
			assert.NotEmpty(t, walls)
			for _, wall := range walls {
				assert.True(t, wall.X >= 0 && wall.X < 11 && wall.Y >= 0 && wall.Y < 9, "%v out of bounds", wall)
			}
		})
	}
}

func TestColumnGapMatchesExpectedCells(t *testing.T) {
	service, err := NewPatternService("")
	require.NoError(t, err)
	pattern, err := service.Get("column-gap")
	require.NoError(t, err)

	walls, err := Walls(context.Background(), pattern, 5, 5)
	require.NoError(t, err)
	assert.Equal(t, []engine.Position{
		{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}, {X: 2, Y: 4},
	}, walls)
}

func TestApplyOnlyFillsEmptyCells(t *testing.T) {
	service, err := NewPatternService("")
	require.NoError(t, err)

	grid, err := engine.NewGrid(5, 5)
	require.NoError(t, err)
	grid.PlaceAt(engine.Position{X: 2, Y: 0}, engine.LeftButton)
	grid.PlaceAt(engine.Position{X: 2, Y: 4}, engine.LeftButton)

	placed, err := service.Apply(context.Background(), grid, "column")
	require.NoError(t, err)
	assert.Equal(t, 3, placed)
	assert.Equal(t, engine.Start, grid.TypeAt(engine.Position{X: 2, Y: 0}))
	assert.Equal(t, engine.End, grid.TypeAt(engine.Position{X: 2, Y: 4}))
	assert.Equal(t, 3, grid.Count(engine.Wall))
}

func TestApplyUnknownPattern(t *testing.T) {
	service, err := NewPatternService("")
	require.NoError(t, err)
	grid, err := engine.NewGrid(2, 2)
	require.NoError(t, err)

	_, err = service.Apply(context.Background(), grid, "nope")
	assert.ErrorIs(t, err, ErrPatternNotFound)
}

func TestPatternsLoadedFromDirectory(t *testing.T) {
	dir := t.TempDir()
	diagonal := `
		function layout(rows, cols)
			local walls = {}
			for i = 0, math.min(rows, cols) - 1 do
				table.insert(walls, {x = i, y = i})
			end
			return walls
		end
	`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "diagonal.lua"), []byte(diagonal), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	service, err := NewPatternService(dir)
	require.NoError(t, err)
	assert.Contains(t, service.Names(), "diagonal")
	assert.NotContains(t, service.Names(), "notes")

	pattern, err := service.Get("diagonal")
	require.NoError(t, err)
	walls, err := Walls(context.Background(), pattern, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, []engine.Position{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}, walls)
}

func TestBrokenPatterns(t *testing.T) {
	cases := map[string]string{
		"syntax":      `function layout(rows, cols`,
		"no layout":   `function other() return {} end`,
		"not a table": `function layout(rows, cols) return 7 end`,
		"bad entry":   `function layout(rows, cols) return {1, 2} end`,
		"missing y":   `function layout(rows, cols) return {{x = 1}} end`,
		"runtime":     `function layout(rows, cols) error("boom") end`,
	}

	for name, definition := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Walls(context.Background(), Pattern{Name: name, Definition: definition}, 3, 3)
			assert.Error(t, err)
		})
	}
}

func TestRunawayPatternIsStopped(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Walls(ctx, Pattern{Name: "spin", Definition: `function layout(rows, cols) while true do end end`}, 3, 3)
	assert.Error(t, err)
}
