// internal/inventory/store.go

// Store 為書店庫存的聚合根 (Aggregate Root)：持有所有書籍並提供新增、列出、查詢、刪除。
// 本系統為單一使用者、同步執行的主控台程式，Store 不做任何鎖定，不可跨 goroutine 共用。

package inventory

import (
	"slices"
	"strings"
)

// Store 持有書籍清單。
// - books：底層切片不維持任何排序，排序於 List 時才產生。
type Store struct {
	books []Book
}

// NewStore 建立空白庫存實例（僅 in-memory 狀態，無外部依賴）。
func NewStore() *Store {
	return &Store{}
}

// Add 新增一本書。ID 已存在時回傳 ErrDuplicateID，且庫存維持不變；
// 絕不覆寫既有資料。其餘欄位須由呼叫端先行驗證。
func (s *Store) Add(title, author, id string, genre Genre) error {
	if s.indexOf(id) >= 0 {
		return ErrDuplicateID
	}
	s.books = append(s.books, NewBook(title, author, id, genre))
	return nil
}

// List 依 ID 以位元組序（ordinal）遞增排序後回傳所有書籍的拷貝。
// 內部切片會被重新排序，但集合內容不變。庫存為空時回傳 ErrEmptyInventory。
func (s *Store) List() ([]Book, error) {
	if len(s.books) == 0 {
		return nil, ErrEmptyInventory
	}
	slices.SortFunc(s.books, func(a, b Book) int {
		return strings.Compare(a.id, b.id)
	})
	return slices.Clone(s.books), nil
}

// FindByID 以完全比對（區分大小寫）查詢書籍；不存在則回傳 ErrNotFound。
func (s *Store) FindByID(id string) (Book, error) {
	i := s.indexOf(id)
	if i < 0 {
		return Book{}, ErrNotFound
	}
	return s.books[i], nil
}

// RemoveByID 刪除指定 ID 的書籍；ID 唯一，因此最多只會刪除一筆。
func (s *Store) RemoveByID(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.books = slices.Delete(s.books, i, i+1)
	return nil
}

// Len 回傳目前書籍數量。
func (s *Store) Len() int {
	return len(s.books)
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.books, func(b Book) bool { return b.id == id })
}
