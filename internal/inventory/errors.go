// internal/inventory/errors.go
//
// 本檔集中定義「領域錯誤（domain errors）」。
// 這些錯誤皆可恢復，由 console 層轉換成使用者看得懂的提示訊息，不會讓程式中止。

package inventory

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateID 代表書籍 ID 已存在，Add 被拒絕。
	// console 層會要求使用者重新輸入另一個 ID。
	ErrDuplicateID = errors.New("a book with this ID already exists")

	// ErrNotFound 代表找不到指定 ID 的書籍。
	ErrNotFound = errors.New("book not found")

	// ErrEmptyInventory 代表庫存為空，List 沒有任何資料可回傳。
	ErrEmptyInventory = errors.New("no books in inventory")

	// ErrInvalidInput 為所有格式層級錯誤的共同父錯誤。
	// 這類錯誤只會在呼叫 Store 之前由 console 層偵測，不會進入核心。
	ErrInvalidInput = errors.New("invalid input")
)

// 以下細分格式錯誤，皆包裝 ErrInvalidInput，可用 errors.Is 判斷類別。
var (
	ErrInvalidTitle  = fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
	ErrInvalidAuthor = fmt.Errorf("%w: author needs both a first and last name", ErrInvalidInput)
	ErrInvalidID     = fmt.Errorf("%w: ID cannot be empty", ErrInvalidInput)
	ErrInvalidGenre  = fmt.Errorf("%w: genre selection out of range", ErrInvalidInput)
)
