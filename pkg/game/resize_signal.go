package game

import "log"

// ResizeSignal 窗口尺寸变化通知
//
// 宿主在 Layout 中观察到外部尺寸或设备缩放比例变化时调用 Emit，
// 订阅者按注册顺序收到新尺寸。尺寸为逻辑像素；
// 需要按物理像素分配资源的订阅者读取 Scale()。
type ResizeSignal struct {
	listeners     registry[func(width, height int)]
	width, height int
	scale         float64
}

// NewResizeSignal 创建窗口尺寸变化通知，初始缩放比例为 1
func NewResizeSignal() *ResizeSignal {
	return &ResizeSignal{scale: 1}
}

// Subscribe 注册尺寸变化监听
func (s *ResizeSignal) Subscribe(fn func(width, height int)) *Subscription {
	return s.listeners.add(fn)
}

// Emit 记录新尺寸并通知所有监听者
func (s *ResizeSignal) Emit(width, height int) {
	s.width, s.height = width, height
	for _, e := range s.listeners.snapshot() {
		if !s.listeners.contains(e.id) {
			continue
		}
		e.fn(width, height)
	}
}

// Observe 仅在尺寸与上次不同时触发 Emit，缩放比例保持不变
// 返回是否发生了变化
func (s *ResizeSignal) Observe(width, height int) bool {
	return s.ObserveScaled(width, height, s.scale)
}

// ObserveScaled 尺寸或设备缩放比例变化时触发 Emit
// scale <= 0 按 1 处理
func (s *ResizeSignal) ObserveScaled(width, height int, scale float64) bool {
	if scale <= 0 {
		scale = 1
	}
	if width == s.width && height == s.height && scale == s.scale {
		return false
	}
	log.Printf("[ResizeSignal] 窗口尺寸变化: %dx%d@%.2f -> %dx%d@%.2f", s.width, s.height, s.scale, width, height, scale)
	s.scale = scale
	s.Emit(width, height)
	return true
}

// Size 返回最近一次通知的尺寸（逻辑像素）
func (s *ResizeSignal) Size() (width, height int) {
	return s.width, s.height
}

// Scale 返回设备缩放比例（物理像素 / 逻辑像素）
func (s *ResizeSignal) Scale() float64 {
	return s.scale
}

// Len 返回当前监听者数量
func (s *ResizeSignal) Len() int {
	return len(s.listeners.entries)
}
