// internal/console/handler.go
//
// 各選單指令的處理流程。讀取失敗（含 EOF）一律往上回傳，由 Run 決定是否正常結束；
// 業務錯誤則轉為提示訊息後回到選單，不會中止程式。

package console

import (
	"errors"

	"bookstore/internal/inventory"
)

// addBook 依序詢問標題、作者、類別、ID 後新增書籍。
// ID 空白或重複時只重新詢問 ID，先前輸入的欄位保留。
func (c *Console) addBook() error {
	title, err := c.promptTitle()
	if err != nil {
		return err
	}
	author, err := c.promptAuthor()
	if err != nil {
		return err
	}
	genre, err := c.promptGenre()
	if err != nil {
		return err
	}

	for {
		id, err := c.promptID()
		if err != nil {
			return err
		}
		err = c.inv.Add(title, author, id, genre)
		switch {
		case err == nil:
			c.log.Info("book added", "id", id, "genre", genre.String())
			c.println("Book added successfully!")
			return nil
		case errors.Is(err, inventory.ErrDuplicateID):
			c.log.Debug("duplicate identifier", "id", id)
			c.println("A book with this ID already exists. Please use a unique ID.")
		default:
			c.log.Error("add book failed", "id", id, "err", err)
			c.printf("Could not add book: %v\n", err)
			return nil
		}
	}
}

// listBooks 依 ID 排序列出所有書籍；空庫存時輸出提示。
func (c *Console) listBooks() error {
	c.println("\n\n-------------- Inventory: -------------\n")
	books, err := c.inv.List()
	if errors.Is(err, inventory.ErrEmptyInventory) {
		c.println("No books in inventory.")
		return nil
	}
	if err != nil {
		c.log.Error("list books failed", "err", err)
		c.printf("Could not list books: %v\n", err)
		return nil
	}
	for _, b := range books {
		c.writeBook(b)
	}
	c.println("\n\n")
	return nil
}

// findBook 以完全比對的 ID 查詢並顯示一本書。
func (c *Console) findBook() error {
	c.printf("Enter the book's ID to find: ")
	id, err := c.readLine()
	if err != nil {
		return err
	}
	b, err := c.inv.FindByID(id)
	if err != nil {
		c.reportMiss(id, err)
		return nil
	}
	c.writeBook(b)
	return nil
}

// removeBook 以 ID 刪除一本書。
func (c *Console) removeBook() error {
	c.printf("Enter the book's ID to remove: ")
	id, err := c.readLine()
	if err != nil {
		return err
	}
	if err := c.inv.RemoveByID(id); err != nil {
		c.reportMiss(id, err)
		return nil
	}
	c.log.Info("book removed", "id", id)
	c.println("Book removed successfully.")
	return nil
}

func (c *Console) exit() error {
	return errExit
}

// reportMiss 將查詢/刪除失敗轉為訊息；ErrNotFound 以外的錯誤另記錄日誌。
func (c *Console) reportMiss(id string, err error) {
	if errors.Is(err, inventory.ErrNotFound) {
		c.log.Debug("book not found", "id", id)
		c.println("Book not found.")
		return
	}
	c.log.Error("lookup failed", "id", id, "err", err)
	c.printf("Could not look up book: %v\n", err)
}
