package app

import "github.com/decker502/easing/pkg/config"

// GridLayout 网格布局（纯几何计算，不依赖 ebiten）
type GridLayout struct {
	columns    int
	cellWidth  int
	cellHeight int
	padding    int
	topOffset  int // 顶部信息栏高度
}

// NewGridLayout 根据网格配置创建布局
func NewGridLayout(grid config.GridConfig, topOffset int) GridLayout {
	columns := grid.Columns
	if columns < 1 {
		columns = 1
	}
	return GridLayout{
		columns:    columns,
		cellWidth:  grid.CellWidth,
		cellHeight: grid.CellHeight,
		padding:    grid.Padding,
		topOffset:  topOffset,
	}
}

// CellSize 返回单元宽高
func (g GridLayout) CellSize() (int, int) {
	return g.cellWidth, g.cellHeight
}

// CellPosition 获取页内第 index 个单元左上角的屏幕坐标
func (g GridLayout) CellPosition(index int) (int, int) {
	row := index / g.columns
	col := index % g.columns

	x := col*(g.cellWidth+g.padding) + g.padding
	y := row*(g.cellHeight+g.padding) + g.padding + g.topOffset
	return x, y
}

// CellAt 获取屏幕坐标处的页内单元索引，count 为当前页单元数
// 不在任何单元内返回 -1
func (g GridLayout) CellAt(screenX, screenY, count int) int {
	for i := 0; i < count; i++ {
		x, y := g.CellPosition(i)
		if screenX >= x && screenX <= x+g.cellWidth &&
			screenY >= y && screenY <= y+g.cellHeight {
			return i
		}
	}
	return -1
}

// Pager 分页计算
type Pager struct {
	Total   int // 总单元数
	PerPage int // 每页单元数
}

// NewPager 根据网格配置创建分页器
func NewPager(grid config.GridConfig, total int) Pager {
	perPage := grid.Columns * grid.RowsPerPage
	if perPage < 1 {
		perPage = 1
	}
	return Pager{Total: total, PerPage: perPage}
}

// Pages 总页数，至少为 1
func (p Pager) Pages() int {
	if p.Total <= 0 {
		return 1
	}
	return (p.Total + p.PerPage - 1) / p.PerPage
}

// Clamp 把页码限制在有效范围内
func (p Pager) Clamp(page int) int {
	if page < 0 {
		return 0
	}
	if last := p.Pages() - 1; page > last {
		return last
	}
	return page
}

// Range 返回第 page 页的单元区间 [start, end)
func (p Pager) Range(page int) (int, int) {
	page = p.Clamp(page)
	start := page * p.PerPage
	end := start + p.PerPage
	if end > p.Total {
		end = p.Total
	}
	if start > end {
		start = end
	}
	return start, end
}

// moveSelection 在 [0, count) 内循环移动选中项；未选中时从第一个开始
func moveSelection(current, delta, count int) int {
	if count <= 0 {
		return -1
	}
	if current < 0 || current >= count {
		return 0
	}
	return ((current+delta)%count + count) % count
}
