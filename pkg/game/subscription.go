package game

// Subscription 表示一次回调注册，Cancel 后回调不再被调用
type Subscription struct {
	cancel func()
}

// Cancel 取消注册，可重复调用
func (s *Subscription) Cancel() {
	if s == nil || s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
}

// Active 返回订阅是否仍然有效
func (s *Subscription) Active() bool {
	return s != nil && s.cancel != nil
}

// registry 按注册顺序保存回调
// 只在 UI 线程（游戏循环）中使用，不加锁
type registry[F any] struct {
	nextID  uint64
	entries []registryEntry[F]
}

type registryEntry[F any] struct {
	id uint64
	fn F
}

func (r *registry[F]) add(fn F) *Subscription {
	r.nextID++
	id := r.nextID
	r.entries = append(r.entries, registryEntry[F]{id: id, fn: fn})
	return &Subscription{cancel: func() { r.remove(id) }}
}

func (r *registry[F]) remove(id uint64) {
	for i, e := range r.entries {
		if e.id == id {
			r.entries = append(r.entries[:i:i], r.entries[i+1:]...)
			return
		}
	}
}

// snapshot 返回当前回调列表的副本，回调执行期间的注册/取消不影响本轮遍历
func (r *registry[F]) snapshot() []registryEntry[F] {
	if len(r.entries) == 0 {
		return nil
	}
	out := make([]registryEntry[F], len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *registry[F]) contains(id uint64) bool {
	for _, e := range r.entries {
		if e.id == id {
			return true
		}
	}
	return false
}
