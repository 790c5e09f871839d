package ledger

// 以下辅助函数修改状态的同时记录撤销操作，交易失败时按逆序回滚。
// *big.Int 等指针类型的值必须视为不可变，每次写入新对象。

// SetMapValue 写入 map 并记录撤销
func SetMapValue[K comparable, V any](tx *Tx, m map[K]V, k K, v V) {
	prev, had := m[k]
	m[k] = v
	tx.Journal(func() {
		if had {
			m[k] = prev
		} else {
			delete(m, k)
		}
	})
}

// DeleteMapValue 删除 map 键并记录撤销
func DeleteMapValue[K comparable, V any](tx *Tx, m map[K]V, k K) {
	prev, had := m[k]
	if !had {
		return
	}
	delete(m, k)
	tx.Journal(func() {
		m[k] = prev
	})
}

// SetValue 写入字段并记录撤销
func SetValue[T any](tx *Tx, p *T, v T) {
	prev := *p
	*p = v
	tx.Journal(func() {
		*p = prev
	})
}

// AppendValue 追加切片元素并记录撤销
func AppendValue[T any](tx *Tx, s *[]T, v T) {
	n := len(*s)
	*s = append(*s, v)
	tx.Journal(func() {
		var zero T
		(*s)[n] = zero
		*s = (*s)[:n]
	})
}
