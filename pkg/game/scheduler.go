package game

import (
	"container/heap"
	"time"
)

// ScheduledFunc 到期时执行的回调
type ScheduledFunc func()

type scheduledItem struct {
	at  time.Duration
	seq uint64 // 同一时刻按加入顺序执行
	fn  ScheduledFunc
}

type scheduleQueue []*scheduledItem

func (q scheduleQueue) Len() int { return len(q) }
func (q scheduleQueue) Less(i, j int) bool {
	if q[i].at == q[j].at {
		return q[i].seq < q[j].seq
	}
	return q[i].at < q[j].at
}
func (q scheduleQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *scheduleQueue) Push(x any)   { *q = append(*q, x.(*scheduledItem)) }
func (q *scheduleQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// Scheduler 按游戏时钟截止时刻排序的延迟回调队列
// 每个未冻结的逻辑帧调用一次 RunDue
type Scheduler struct {
	queue scheduleQueue
	seq   uint64
}

// NewScheduler 创建空队列
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule 在游戏时刻 at 之后执行 fn
func (s *Scheduler) Schedule(at time.Duration, fn ScheduledFunc) {
	s.seq++
	heap.Push(&s.queue, &scheduledItem{at: at, seq: s.seq, fn: fn})
}

// RunDue 执行所有截止时刻 <= now 的回调，返回执行数量
// 回调中新加入且已到期的任务会在同一次调用中执行
func (s *Scheduler) RunDue(now time.Duration) int {
	ran := 0
	for s.queue.Len() > 0 && s.queue[0].at <= now {
		item := heap.Pop(&s.queue).(*scheduledItem)
		item.fn()
		ran++
	}
	return ran
}

// Len 返回待执行任务数
func (s *Scheduler) Len() int {
	return s.queue.Len()
}

// Clear 丢弃全部任务（会话重置）
func (s *Scheduler) Clear() {
	s.queue = nil
}
