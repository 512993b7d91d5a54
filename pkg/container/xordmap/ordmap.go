package xordmap

import "maps"

// link 表示可选的相邻键引用。
// ok 为 false 表示该方向没有相邻条目（即已到达链表端点）。
type link[K comparable] struct {
	key K
	ok  bool
}

// node 记录单个键在插入顺序中的位置。
// prev/next 存储的是相邻条目的键而非指针，所有寻址都经由 entries 查找完成，
// 从根本上消除悬垂引用与别名问题。
type node[K comparable] struct {
	prev link[K]
	next link[K]
}

// Map 是保持插入顺序的不可变关联容器（键即值，无独立 value）。
//
// 所有修改操作（Add/AddNew/Remove 等）都返回新的 Map 值，绝不修改接收者。
// 零值即为可用的空容器，与 [New] 返回的值语义等价。
//
// 设计决策: 内部用 head/tail 键 + entries 哈希表模拟双向链表。
// 每次修改通过 maps.Clone 复制 entries 后在副本上改写受影响的 1~3 个节点，
// 旧版本完全不受影响，因此多个逻辑版本可以被不同持有者同时安全读取。
// 代价是每次修改 O(n) 的复制开销，对本结构的目标规模（配置集、
// 最近使用追踪等小集合）是可接受的；查询类操作保持 O(1)。
type Map[K comparable] struct {
	head    link[K]
	tail    link[K]
	entries map[K]node[K]
}

// New 创建空容器。
func New[K comparable]() Map[K] {
	return Map[K]{}
}

// Add 将 v 插入到尾部；若 v 已存在则将其迁移到尾部（"touch" 语义），
// 其余条目的相对顺序保持不变。
//
// Add 是全函数：重复添加被迁移语义吸收，不会失败。
// 再次添加当前尾部元素是幂等的，直接返回原值（零复制）。
func (m Map[K]) Add(v K) Map[K] {
	// v 已是尾部，结构不会有任何变化
	if m.tail.ok && m.tail.key == v {
		return m
	}

	if len(m.entries) == 0 {
		return Map[K]{
			head:    link[K]{key: v, ok: true},
			tail:    link[K]{key: v, ok: true},
			entries: map[K]node[K]{v: {}},
		}
	}

	// 已存在于非尾部位置：先按 Remove 的四分支逻辑摘除，得到一致的中间版本
	if _, ok := m.entries[v]; ok {
		m = m.Remove(v)
	}

	// 追加为新尾部：改写旧尾部的 next，并写入 v 的节点
	entries := maps.Clone(m.entries)
	oldTail := m.tail.key
	pred := entries[oldTail]
	pred.next = link[K]{key: v, ok: true}
	entries[oldTail] = pred
	entries[v] = node[K]{prev: link[K]{key: oldTail, ok: true}}

	return Map[K]{
		head:    m.head,
		tail:    link[K]{key: v, ok: true},
		entries: entries,
	}
}

// AddNew 仅在 v 不存在时插入到尾部；已存在时为无操作（返回原值）。
// 与 Add 的区别：AddNew 绝不改变已有条目的顺序。
func (m Map[K]) AddNew(v K) Map[K] {
	if _, ok := m.entries[v]; ok {
		return m
	}
	return m.Add(v)
}

// AddNewChecked 与 AddNew 相同，但 v 已存在时返回 [DuplicateKeyError]
// 而非静默忽略。失败时返回原 Map，可继续使用。
func (m Map[K]) AddNewChecked(v K) (Map[K], error) {
	if _, ok := m.entries[v]; ok {
		return m, &DuplicateKeyError[K]{Key: v}
	}
	return m.Add(v), nil
}

// Remove 删除 v；v 不存在时为无操作（返回原值，不报错）。
//
// 按被删键的位置分四种情形：唯一条目（退化为空容器）、头部（后继成为新
// 头部并清除其 prev）、尾部（前驱成为新尾部并清除其 next）、中间条目
// （前驱与后继直接互联）。被删键的节点总是从 entries 中彻底移除。
func (m Map[K]) Remove(v K) Map[K] {
	n, ok := m.entries[v]
	if !ok {
		return m
	}

	// 唯一条目：退化为空容器
	if len(m.entries) == 1 {
		return New[K]()
	}

	entries := maps.Clone(m.entries)
	delete(entries, v)
	head, tail := m.head, m.tail

	switch {
	case !n.prev.ok:
		// v 是头部：后继成为新头部，清除其 prev
		succ := entries[n.next.key]
		succ.prev = link[K]{}
		entries[n.next.key] = succ
		head = n.next
	case !n.next.ok:
		// v 是尾部：前驱成为新尾部，清除其 next
		pred := entries[n.prev.key]
		pred.next = link[K]{}
		entries[n.prev.key] = pred
		tail = n.prev
	default:
		// 中间条目：前驱与后继互联（splice）
		pred := entries[n.prev.key]
		pred.next = n.next
		entries[n.prev.key] = pred
		succ := entries[n.next.key]
		succ.prev = n.prev
		entries[n.next.key] = succ
	}

	return Map[K]{head: head, tail: tail, entries: entries}
}

// RemoveChecked 与 Remove 相同，但 v 不存在时返回 [MissingKeyError]
// 而非无操作。失败时返回原 Map，可继续使用。
func (m Map[K]) RemoveChecked(v K) (Map[K], error) {
	if _, ok := m.entries[v]; !ok {
		return m, &MissingKeyError[K]{Key: v}
	}
	return m.Remove(v), nil
}

// Get 返回 v（若存在），否则返回 def。
// 纯查询，不影响顺序——这是它与 Add（插入并移动到尾部）的本质区别。
func (m Map[K]) Get(v K, def K) K {
	if _, ok := m.entries[v]; ok {
		return v
	}
	return def
}

// GetLazy 与 Get 相同，但默认值由 f 惰性计算：
// f 至多被调用一次，且仅在 v 不存在时调用。
func (m Map[K]) GetLazy(v K, f func() K) K {
	if _, ok := m.entries[v]; ok {
		return v
	}
	return f()
}

// Len 返回条目数，O(1)。
func (m Map[K]) Len() int {
	return len(m.entries)
}

// Contains 检查 v 是否存在，与顺序无关。
func (m Map[K]) Contains(v K) bool {
	_, ok := m.entries[v]
	return ok
}
