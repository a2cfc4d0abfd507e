package world

import (
	"math"

	"github.com/udisondev/warband/internal/model"
)

// DefaultCellSize is the grid cell edge in world units.
// Larger than every query radius in the default config, so a query touches
// at most a 3×3 window of cells.
const DefaultCellSize = 8.0

// Locatable is anything stored in the grid.
type Locatable interface {
	ID() string
	Position() model.Vec2
}

type cell struct {
	x, y int32
}

// Grid — равномерная сетка ячеек для запросов "все объекты в радиусе R от P".
// Объекты сортируются по ячейкам при Rebuild; запрос обходит только ячейки,
// пересекающие квадрат вокруг круга, и отсеивает по точному расстоянию.
//
// Not thread-safe: owned by the world's simulation goroutine.
type Grid[T Locatable] struct {
	cellSize float64
	cells    map[cell][]T
	size     int
}

// NewGrid creates an empty grid. Non-positive cellSize falls back to DefaultCellSize.
func NewGrid[T Locatable](cellSize float64) *Grid[T] {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Grid[T]{
		cellSize: cellSize,
		cells:    make(map[cell][]T),
	}
}

// CellOf converts a world position to its cell index.
func (g *Grid[T]) CellOf(p model.Vec2) (x, y int32) {
	c := g.cellOf(p)
	return c.x, c.y
}

func (g *Grid[T]) cellOf(p model.Vec2) cell {
	return cell{
		x: int32(math.Floor(p.X / g.cellSize)),
		y: int32(math.Floor(p.Y / g.cellSize)),
	}
}

// Insert adds item at its current position.
func (g *Grid[T]) Insert(item T) {
	c := g.cellOf(item.Position())
	g.cells[c] = append(g.cells[c], item)
	g.size++
}

// Rebuild drops the index and re-inserts items at their current positions.
// Called after anything moved or was removed.
func (g *Grid[T]) Rebuild(items []T) {
	clear(g.cells)
	g.size = 0
	for _, item := range items {
		g.Insert(item)
	}
}

// Len returns the number of indexed items.
func (g *Grid[T]) Len() int {
	return g.size
}

// Within returns items whose position lies within radius of center.
// Order is deterministic: cells row by row, items in insertion order.
func (g *Grid[T]) Within(center model.Vec2, radius float64) []T {
	if radius < 0 || g.size == 0 {
		return nil
	}

	lo := g.cellOf(center.Sub(model.V(radius, radius)))
	hi := g.cellOf(center.Add(model.V(radius, radius)))

	var result []T
	for y := lo.y; y <= hi.y; y++ {
		for x := lo.x; x <= hi.x; x++ {
			for _, item := range g.cells[cell{x: x, y: y}] {
				if center.Distance(item.Position()) <= radius {
					result = append(result, item)
				}
			}
		}
	}
	return result
}
