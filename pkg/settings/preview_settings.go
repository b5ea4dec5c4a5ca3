// Package settings 管理曲线预览器的持久化设置
//
// 设置通过 gdata 跨平台存储，内容为 YAML。
// gdata Manager 为 nil 时进入降级模式：设置只保存在内存中。
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 采样段数范围
const (
	MinSamples = 2
	MaxSamples = 512
)

// 存储路径常量
const (
	settingsObject   = "preview"
	settingsProperty = "settings"
)

// PreviewSettings 预览器设置
type PreviewSettings struct {
	Page       int  `yaml:"page"`       // 当前页码（从 0 开始）
	Selected   int  `yaml:"selected"`   // 选中的单元索引，-1 表示未选中
	ShowHelp   bool `yaml:"showHelp"`   // 是否显示帮助面板
	ShowGuides bool `yaml:"showGuides"` // 是否绘制 0/1 参考线
	Samples    int  `yaml:"samples"`    // 每条曲线的采样段数
}

// DefaultSettings 返回默认设置
func DefaultSettings() *PreviewSettings {
	return &PreviewSettings{
		Page:       0,
		Selected:   -1,
		ShowHelp:   true,
		ShowGuides: true,
		Samples:    64,
	}
}

// Manager 设置管理器
// 负责预览设置的加载、保存和内存管理
type Manager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式）
	settings     *PreviewSettings
}

// NewManager 创建设置管理器并尝试加载已保存的设置
//
// 加载失败不是致命错误，记录日志后使用默认设置。
func NewManager(gdataManager *gdata.Manager) *Manager {
	m := &Manager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := m.Load(); err != nil {
		log.Printf("[Settings] Warning: failed to load preview settings: %v (using defaults)", err)
	}
	return m
}

// Load 从 gdata 加载设置
//
// gdataManager 为 nil 或尚未保存过时使用默认设置。
func (m *Manager) Load() error {
	if m.gdataManager == nil {
		m.settings = DefaultSettings()
		return nil
	}

	if !m.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		m.settings = DefaultSettings()
		return nil
	}

	data, err := m.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		m.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 在默认值上反序列化，旧版本缺少的字段保持默认
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		m.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.Samples = clampSamples(loaded.Samples)
	if loaded.Page < 0 {
		loaded.Page = 0
	}

	m.settings = loaded
	log.Printf("[Settings] Preview settings loaded")
	return nil
}

// Save 保存设置到 gdata
//
// gdataManager 为 nil 时直接返回 nil（降级模式，不报错）。
func (m *Manager) Save() error {
	if m.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := m.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[Settings] Preview settings saved")
	return nil
}

// Settings 返回当前设置
func (m *Manager) Settings() *PreviewSettings {
	return m.settings
}

// IsPersistent 是否能持久化（非降级模式）
func (m *Manager) IsPersistent() bool {
	return m.gdataManager != nil
}

// SetPage 设置当前页码，负数按 0 处理
func (m *Manager) SetPage(page int) {
	if page < 0 {
		page = 0
	}
	m.settings.Page = page
}

// SetSelected 设置选中的单元，负数表示未选中
func (m *Manager) SetSelected(index int) {
	if index < 0 {
		index = -1
	}
	m.settings.Selected = index
}

// SetShowHelp 设置帮助面板开关
func (m *Manager) SetShowHelp(show bool) {
	m.settings.ShowHelp = show
}

// SetShowGuides 设置参考线开关
func (m *Manager) SetShowGuides(show bool) {
	m.settings.ShowGuides = show
}

// SetSamples 设置采样段数，限制在 [MinSamples, MaxSamples]
func (m *Manager) SetSamples(samples int) {
	m.settings.Samples = clampSamples(samples)
}

func clampSamples(samples int) int {
	if samples < MinSamples {
		return MinSamples
	}
	if samples > MaxSamples {
		return MaxSamples
	}
	return samples
}
