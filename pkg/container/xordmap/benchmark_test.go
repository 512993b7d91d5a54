package xordmap

import (
	"fmt"
	"testing"
)

// buildMap 构造含 n 个条目的容器（键 0..n-1）。
func buildMap(n int) Map[int] {
	m := New[int]()
	for i := 0; i < n; i++ {
		m = m.Add(i)
	}
	return m
}

// =============================================================================
// 查询操作基准测试（O(1)，不复制）
// =============================================================================

func BenchmarkMap_Contains(b *testing.B) {
	m := buildMap(1000)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_ = m.Contains(500)
	}
}

func BenchmarkMap_Get(b *testing.B) {
	m := buildMap(1000)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_ = m.Get(500, -1)
	}
}

func BenchmarkMap_Get_Miss(b *testing.B) {
	m := buildMap(1000)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_ = m.Get(-42, -1)
	}
}

// =============================================================================
// 修改操作基准测试（整表复制，随规模线性增长）
// =============================================================================

func BenchmarkMap_Add(b *testing.B) {
	for _, size := range []int{16, 256, 4096} {
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			m := buildMap(size)

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				// 添加新键会触发一次整表复制
				_ = m.Add(size + 1)
			}
		})
	}
}

func BenchmarkMap_Add_TailFastPath(b *testing.B) {
	m := buildMap(1000)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		// 再添加当前尾部：零复制快路径
		_ = m.Add(999)
	}
}

func BenchmarkMap_Add_Relocate(b *testing.B) {
	m := buildMap(1000)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		// touch 头部元素：摘除 + 追加，两次复制
		_ = m.Add(0)
	}
}

func BenchmarkMap_Remove(b *testing.B) {
	for _, size := range []int{16, 256, 4096} {
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			m := buildMap(size)

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				_ = m.Remove(size / 2)
			}
		})
	}
}

// =============================================================================
// 遍历基准测试
// =============================================================================

func BenchmarkMap_Keys(b *testing.B) {
	m := buildMap(1000)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_ = m.Keys()
	}
}

func BenchmarkMap_All(b *testing.B) {
	m := buildMap(1000)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		for range m.All() {
		}
	}
}
