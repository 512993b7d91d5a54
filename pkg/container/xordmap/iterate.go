package xordmap

import (
	"fmt"
	"iter"
	"maps"
	"strings"
)

// Keys 返回从头到尾的键序列（插入顺序，最近 touch 的在最后）。
// 立即求值，O(n)；对同一个不可变 Map 重复调用总是得到相同序列。
func (m Map[K]) Keys() []K {
	keys := make([]K, 0, len(m.entries))
	for cur := m.head; cur.ok; cur = m.entries[cur.key].next {
		keys = append(keys, cur.key)
	}
	return keys
}

// All 返回从头到尾的迭代器，可直接用于 range。
//
// 由于 Map 是不可变值，迭代期间不存在并发修改问题：
// 迭代器捕获的是调用时刻的版本，之后产生的新版本与其无关。
func (m Map[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for cur := m.head; cur.ok; cur = m.entries[cur.key].next {
			if !yield(cur.key) {
				return
			}
		}
	}
}

// Backward 返回从尾到头的迭代器（All 的逆序）。
func (m Map[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		for cur := m.tail; cur.ok; cur = m.entries[cur.key].prev {
			if !yield(cur.key) {
				return
			}
		}
	}
}

// Head 返回顺序中的第一个键；容器为空时第二个返回值为 false。
func (m Map[K]) Head() (K, bool) {
	return m.head.key, m.head.ok
}

// Tail 返回顺序中的最后一个键；容器为空时第二个返回值为 false。
func (m Map[K]) Tail() (K, bool) {
	return m.tail.key, m.tail.ok
}

// Next 返回 v 在顺序中的后继键。
// v 不存在或 v 是尾部时第二个返回值为 false。
func (m Map[K]) Next(v K) (K, bool) {
	n, ok := m.entries[v]
	if !ok || !n.next.ok {
		var zero K
		return zero, false
	}
	return n.next.key, true
}

// Prev 返回 v 在顺序中的前驱键。
// v 不存在或 v 是头部时第二个返回值为 false。
func (m Map[K]) Prev(v K) (K, bool) {
	n, ok := m.entries[v]
	if !ok || !n.prev.ok {
		var zero K
		return zero, false
	}
	return n.prev.key, true
}

// Equal 判断两个 Map 是否结构相等：顺序、链接关系与条目集合全部一致。
//
// 设计决策: Map 含 map 字段，不能用 == 比较；Equal 是本包定义的
// 规范相等关系，也是"幂等再添加""删除不存在键为恒等"等代数性质
// 成立所依据的相等。
func (m Map[K]) Equal(other Map[K]) bool {
	return m.head == other.head &&
		m.tail == other.tail &&
		maps.Equal(m.entries, other.entries)
}

// Fold 按从头到尾的顺序对所有键做归约（eager，立即求值）。
// 这是 count/membership/reduce 等枚举式用法的通用载体。
func Fold[K comparable, A any](m Map[K], init A, f func(A, K) A) A {
	acc := init
	for k := range m.All() {
		acc = f(acc, k)
	}
	return acc
}

// String 返回调试用的顺序表示，如 xordmap[a b c]。
func (m Map[K]) String() string {
	var b strings.Builder
	b.WriteString("xordmap[")
	first := true
	for k := range m.All() {
		if !first {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", k)
		first = false
	}
	b.WriteByte(']')
	return b.String()
}
