// Package xordmap 提供保持插入顺序的不可变关联容器。
//
// xordmap.Map 是"键即值"的有序集合：元素本身就是自己的查找键，
// 没有独立的 value。所有修改操作都是纯函数——返回新的 Map 值，
// 绝不改写接收者——因此任意多个版本可以被不同持有者同时读取，
// 无需任何同步。它是 LRU 缓存、有序配置集、最近使用追踪等结构的
// 底层原语；本包只实现原语本身，不含淘汰策略与容量上限。
//
// # 核心特性
//
//   - 泛型支持：任意 comparable 键类型
//   - 插入顺序：Keys/All 按插入（或最近 touch）顺序遍历
//   - touch 语义：Add 对已存在的键执行"移动到尾部"
//   - 值语义：零值即空容器，修改返回新值，旧版本永远有效
//   - 双向遍历：All 正序、Backward 逆序，Next/Prev 按键取相邻元素
//
// # 操作语义
//
//   - Add：插入到尾部；已存在则迁移到尾部，其余顺序不变，永不失败
//   - AddNew / AddNewChecked：仅当键不存在时插入；checked 变体对重复键
//     返回携带该键的 DuplicateKeyError
//   - Remove / RemoveChecked：删除键；unchecked 变体对不存在的键无操作，
//     checked 变体返回携带该键的 MissingKeyError
//   - Get / GetLazy：纯查询，不影响顺序；GetLazy 的默认值惰性计算，
//     仅在未命中时调用且至多一次
//
// # 设计决策
//
// 双向链表不用指针而用键：node 的 prev/next 是 entries 中的键，
// 所有寻址经由哈希查找完成。删除与重插只需改写 entries 即可，
// 不存在悬垂指针。
//
// 不可变更新采用整表复制（maps.Clone）：每次修改复制 entries 后
// 只改写受影响的 1~3 个节点。相比持久化树或 arena 版本化方案，
// 实现简单且正确性显而易见；代价是修改操作 O(n)。本结构面向
// 小规模集合（配置项、追踪列表），该取舍是合理的。对当前尾部
// 元素重复 Add 走零复制快路径。
//
// # 已知限制
//
//   - 修改操作 O(n)：每次 Add/Remove 复制整个 entries
//   - 迁移已存在键（Add 非尾部已有键）内部发生两次复制（摘除 + 追加）
//   - Keys 分配新切片，O(n)
//   - 无容量上限与淘汰策略：需要 LRU 淘汰的调用方应在其上自行封装
//
// # 注意事项
//
//   - Map 不能用 == 比较（含 map 字段），请使用 Equal
//   - 不可变性指 API 层面：持有者之间共享的内部结构永不被改写，
//     因此跨 goroutine 传递 Map 值是安全的
//   - checked 错误可用 errors.Is 匹配 ErrDuplicateKey / ErrMissingKey，
//     或用 errors.As 取出携带的键
package xordmap
