// Package inventory 定義書店庫存的核心領域模型與業務規則。
// 本檔定義 Book 結構，不含任何主控台或儲存細節。
package inventory

import "fmt"

// Book represents one inventory item. Fields are fixed at construction.
type Book struct {
	title  string
	author string
	id     string
	genre  Genre
}

// NewBook 建立一筆書籍資料；所有欄位須由呼叫端事先驗證。
func NewBook(title, author, id string, genre Genre) Book {
	return Book{title: title, author: author, id: id, genre: genre}
}

func (b Book) Title() string  { return b.title }
func (b Book) Author() string { return b.author }
func (b Book) ID() string     { return b.id }
func (b Book) Genre() Genre   { return b.genre }

// String 輸出單行書籍資訊，供 console 顯示。
func (b Book) String() string {
	return fmt.Sprintf("ID: %s, Title: %s, Author: %s, Genre: %s", b.id, b.title, b.author, b.genre)
}
