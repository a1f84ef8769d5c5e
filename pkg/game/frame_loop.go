package game

// FrameLoop 每帧回调调度器
//
// 由宿主游戏循环在每次 Update 中调用 Tick()，
// 依次执行所有已注册的帧回调。回调在同一线程内同步执行，
// 不会并发调用，也不会在 Cancel 之后再被调用。
type FrameLoop struct {
	callbacks registry[func()]
	frame     uint64
}

// NewFrameLoop 创建帧回调调度器
func NewFrameLoop() *FrameLoop {
	return &FrameLoop{}
}

// Subscribe 注册帧回调
func (l *FrameLoop) Subscribe(fn func()) *Subscription {
	return l.callbacks.add(fn)
}

// Tick 执行一帧：按注册顺序调用所有回调
// 回调内取消的订阅（包括尚未执行到的）在本帧不再被调用
func (l *FrameLoop) Tick() {
	l.frame++
	for _, e := range l.callbacks.snapshot() {
		if !l.callbacks.contains(e.id) {
			continue
		}
		e.fn()
	}
}

// Frame 返回已执行的帧数
func (l *FrameLoop) Frame() uint64 {
	return l.frame
}

// Len 返回当前注册的回调数量
func (l *FrameLoop) Len() int {
	return len(l.callbacks.entries)
}
