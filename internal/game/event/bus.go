package event

import "sync"

// Observer 通知订阅者
type Observer interface {
	Notify(ev Event)
}

// ObserverFunc 函数适配器
type ObserverFunc func(ev Event)

func (f ObserverFunc) Notify(ev Event) { f(ev) }

// Bus 按订阅顺序分发通知。
// 通知进入先进先出队列，由最外层的 Flush 依次送出；
// 订阅者回调中产生的新通知只入队，排在当前通知之后。
type Bus struct {
	mu        sync.RWMutex
	nextID    int
	observers []entry

	qmu        sync.Mutex
	queue      []Event
	publishing bool
}

type entry struct {
	id int
	o  Observer
}

// Subscribe 订阅通知，返回取消订阅函数
func (b *Bus) Subscribe(o Observer) (unsubscribe func()) {
	if o == nil {
		return func() {}
	}

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.observers = append(b.observers, entry{id: id, o: o})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, e := range b.observers {
		if e.id == id {
			b.observers = append(b.observers[:i], b.observers[i+1:]...)
			return
		}
	}
}

// Publish 入队并送出通知。订阅者可以在回调中再次调用状态机。
func (b *Bus) Publish(events ...Event) {
	b.Enqueue(events...)
	b.Flush()
}

// Enqueue 通知入队，不触发回调
func (b *Bus) Enqueue(events ...Event) {
	if len(events) == 0 {
		return
	}
	b.qmu.Lock()
	b.queue = append(b.queue, events...)
	b.qmu.Unlock()
}

// Flush 送出队列中的通知。已有 Flush 在进行时立即返回，
// 新入队的通知由进行中的那次 Flush 按顺序送出。
func (b *Bus) Flush() {
	b.qmu.Lock()
	if b.publishing {
		b.qmu.Unlock()
		return
	}
	b.publishing = true
	for len(b.queue) > 0 {
		ev := b.queue[0]
		b.queue = b.queue[1:]
		b.qmu.Unlock()
		b.notify(ev)
		b.qmu.Lock()
	}
	b.queue = nil
	b.publishing = false
	b.qmu.Unlock()
}

func (b *Bus) notify(ev Event) {
	b.mu.RLock()
	observers := make([]Observer, len(b.observers))
	for i, e := range b.observers {
		observers[i] = e.o
	}
	b.mu.RUnlock()

	for _, o := range observers {
		o.Notify(ev)
	}
}

// Len 当前订阅者数量
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.observers)
}
