package engine

// frontierItem is a queued cell. Cost is the g value at push time, which lets
// the search recognise entries made stale by a later improvement.
type frontierItem struct {
	position     Position
	priority     int
	cost         int
	sequence     int
	indexInQueue int
}

// priorityFrontier is a container/heap min-queue ordered by priority, then by
// insertion order.
type priorityFrontier []*frontierItem

func (queue priorityFrontier) Len() int { return len(queue) }

func (queue priorityFrontier) Less(i, j int) bool {
	if queue[i].priority != queue[j].priority {
		return queue[i].priority < queue[j].priority
	}
	return queue[i].sequence < queue[j].sequence
}

func (queue priorityFrontier) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].indexInQueue = i
	queue[j].indexInQueue = j
}

func (queue *priorityFrontier) Push(x any) {
	item := x.(*frontierItem)
	item.indexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *priorityFrontier) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.indexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}
