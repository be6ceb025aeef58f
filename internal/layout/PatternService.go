package layout

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Mshel/pathviz/internal/engine"
	"github.com/charmbracelet/log"
	lua "github.com/yuin/gopher-lua"
)

const patternEvaluationTimeout = time.Second

var ErrPatternNotFound = errors.New("pattern not found")

// Pattern is a named Lua wall layout script.
type Pattern struct {
	Name       string
	Definition string
}

// PatternService keeps the built-in patterns plus any loaded from disk.
type PatternService struct {
	patterns map[string]Pattern
	names    []string
}

// NewPatternService registers the built-ins and every *.lua file in dir. An
// empty dir loads only the built-ins. A file named like a built-in replaces it.
func NewPatternService(dir string) (*PatternService, error) {
	service := &PatternService{patterns: make(map[string]Pattern)}
	for _, pattern := range builtinPatterns {
		service.register(pattern)
	}

	if dir == "" {
		return service, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		source, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read pattern %s: %w", entry.Name(), err)
		}
		name := strings.TrimSuffix(entry.Name(), ".lua")
		service.register(Pattern{Name: name, Definition: string(source)})
		log.Info("Loaded wall pattern", "name", name, "dir", dir)
	}

	return service, nil
}

func (s *PatternService) register(pattern Pattern) {
	if _, exists := s.patterns[pattern.Name]; !exists {
		s.names = append(s.names, pattern.Name)
	}
	s.patterns[pattern.Name] = pattern
}

// Names lists the registered patterns, built-ins first.
func (s *PatternService) Names() []string {
	return append([]string(nil), s.names...)
}

func (s *PatternService) Get(name string) (Pattern, error) {
	pattern, ok := s.patterns[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrPatternNotFound, name)
	}
	return pattern, nil
}

// Apply evaluates the named pattern for the grid size and turns the listed
// empty cells into walls. It returns how many walls were placed.
func (s *PatternService) Apply(ctx context.Context, grid *engine.Grid, name string) (int, error) {
	pattern, err := s.Get(name)
	if err != nil {
		return 0, err
	}

	walls, err := Walls(ctx, pattern, grid.Rows(), grid.Cols())
	if err != nil {
		return 0, err
	}

	placed := 0
	for _, wall := range walls {
		if grid.AddWall(wall) {
			placed++
		}
	}
	return placed, nil
}

// Walls runs the pattern's layout function and returns the positions it lists,
// sorted row by row.
func Walls(ctx context.Context, pattern Pattern, rows, cols int) ([]engine.Position, error) {
	ctx, cancel := context.WithTimeout(ctx, patternEvaluationTimeout)
	defer cancel()

	luaState := lua.NewState()
	defer luaState.Close()
	luaState.SetContext(ctx)

	if err := luaState.DoString(pattern.Definition); err != nil {
		return nil, fmt.Errorf("could not parse pattern %s: %w", pattern.Name, err)
	}

	layoutFn := luaState.GetGlobal("layout")
	if layoutFn.Type() != lua.LTFunction {
		return nil, fmt.Errorf("pattern %s does not define layout(rows, cols)", pattern.Name)
	}

	err := luaState.CallByParam(lua.P{
		Fn:      layoutFn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(rows), lua.LNumber(cols))
	if err != nil {
		return nil, fmt.Errorf("could not execute pattern %s: %w", pattern.Name, err)
	}

	luaReturn := luaState.Get(-1)
	luaState.Pop(1)

	luaTable, ok := luaReturn.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("pattern %s returned %s, expected table", pattern.Name, luaReturn.Type().String())
	}

	walls, err := convertLuaWallTable(luaTable)
	if err != nil {
		return nil, fmt.Errorf("pattern %s: %w", pattern.Name, err)
	}

	sort.Slice(walls, func(i, j int) bool {
		if walls[i].Y != walls[j].Y {
			return walls[i].Y < walls[j].Y
		}
		return walls[i].X < walls[j].X
	})
	return walls, nil
}

func convertLuaWallTable(luaTbl *lua.LTable) ([]engine.Position, error) {
	var walls []engine.Position
	var conversionErr error

	luaTbl.ForEach(func(key, value lua.LValue) {
		if conversionErr != nil {
			return
		}

		entry, ok := value.(*lua.LTable)
		if !ok {
			conversionErr = fmt.Errorf("entry %s is %s, expected {x=, y=}", key.String(), value.Type().String())
			return
		}

		x, xOk := entry.RawGetString("x").(lua.LNumber)
		y, yOk := entry.RawGetString("y").(lua.LNumber)
		if !xOk || !yOk {
			conversionErr = fmt.Errorf("entry %s is missing numeric x or y", key.String())
			return
		}

		walls = append(walls, engine.Position{X: int(x), Y: int(y)})
	})

	return walls, conversionErr
}
