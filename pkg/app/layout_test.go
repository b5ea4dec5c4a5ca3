package app

import (
	"testing"

	"github.com/decker502/easing/pkg/config"
)

var testGrid = config.GridConfig{
	Columns:     3,
	CellWidth:   100,
	CellHeight:  80,
	Padding:     10,
	RowsPerPage: 2,
}

// TestCellPosition 测试单元坐标计算
func TestCellPosition(t *testing.T) {
	layout := NewGridLayout(testGrid, 25)

	tests := []struct {
		index int
		wantX int
		wantY int
	}{
		{0, 10, 35},
		{1, 120, 35},
		{2, 230, 35},
		{3, 10, 125},
		{5, 230, 125},
	}
	for _, tt := range tests {
		x, y := layout.CellPosition(tt.index)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("CellPosition(%d) = (%d, %d), want (%d, %d)", tt.index, x, y, tt.wantX, tt.wantY)
		}
	}
}

// TestCellAt 测试点击命中
func TestCellAt(t *testing.T) {
	layout := NewGridLayout(testGrid, 25)

	tests := []struct {
		name  string
		x, y  int
		count int
		want  int
	}{
		{"第一个单元", 50, 60, 6, 0},
		{"第二行第三列", 300, 200, 6, 5},
		{"间隙", 115, 60, 6, -1},
		{"信息栏", 50, 5, 6, -1},
		{"超出当前页单元数", 300, 200, 4, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := layout.CellAt(tt.x, tt.y, tt.count); got != tt.want {
				t.Errorf("CellAt(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// TestNewGridLayoutZeroColumns 列数为 0 时按 1 处理，避免除零
func TestNewGridLayoutZeroColumns(t *testing.T) {
	layout := NewGridLayout(config.GridConfig{CellWidth: 10, CellHeight: 10}, 0)
	if x, y := layout.CellPosition(2); x != 0 || y != 20 {
		t.Errorf("CellPosition(2) = (%d, %d), want (0, 20)", x, y)
	}
}

// TestPager 测试分页
func TestPager(t *testing.T) {
	p := NewPager(testGrid, 14) // 每页 6 个

	if p.Pages() != 3 {
		t.Errorf("Pages() = %d, want 3", p.Pages())
	}

	tests := []struct {
		page      int
		wantStart int
		wantEnd   int
	}{
		{0, 0, 6},
		{1, 6, 12},
		{2, 12, 14},
		{9, 12, 14}, // 超出按最后一页
		{-1, 0, 6},
	}
	for _, tt := range tests {
		start, end := p.Range(tt.page)
		if start != tt.wantStart || end != tt.wantEnd {
			t.Errorf("Range(%d) = [%d, %d), want [%d, %d)", tt.page, start, end, tt.wantStart, tt.wantEnd)
		}
	}

	empty := NewPager(testGrid, 0)
	if empty.Pages() != 1 {
		t.Errorf("empty Pages() = %d, want 1", empty.Pages())
	}
	if start, end := empty.Range(0); start != 0 || end != 0 {
		t.Errorf("empty Range(0) = [%d, %d)", start, end)
	}
}

// TestMoveSelection 测试循环移动
func TestMoveSelection(t *testing.T) {
	tests := []struct {
		name    string
		current int
		delta   int
		count   int
		want    int
	}{
		{"未选中", -1, 1, 5, 0},
		{"向右", 1, 1, 5, 2},
		{"向右回绕", 4, 1, 5, 0},
		{"向左回绕", 0, -1, 5, 4},
		{"向下跨行", 1, 3, 5, 4},
		{"向上回绕", 1, -3, 5, 3},
		{"空页", 2, 1, 0, -1},
		{"越界索引", 9, 1, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := moveSelection(tt.current, tt.delta, tt.count); got != tt.want {
				t.Errorf("moveSelection(%d, %d, %d) = %d, want %d", tt.current, tt.delta, tt.count, got, tt.want)
			}
		})
	}
}
