// internal/console/prompt.go
//
// 輸入提示與重試迴圈：格式錯誤時無限重新詢問，直到取得合法值或輸入結束。

package console

import "bookstore/internal/inventory"

func (c *Console) promptTitle() (string, error) {
	for {
		c.printf("Enter the book's title: ")
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		title, err := inventory.ValidateTitle(line)
		if err == nil {
			return title, nil
		}
		c.println("Invalid title. Title cannot be empty. Please try again.")
	}
}

func (c *Console) promptAuthor() (string, error) {
	for {
		c.printf("Enter the author's first and last name: ")
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		author, err := inventory.NormalizeAuthor(line)
		if err == nil {
			return author, nil
		}
		c.println("Invalid input. Please enter both a first and last name.")
	}
}

// promptGenre 以 1 起算的編號列出所有類別，只接受範圍內的數字。
func (c *Console) promptGenre() (inventory.Genre, error) {
	c.println("Select the book's genre:")
	for i, opt := range inventory.Genres() {
		c.printf("%d. %s\n", i+1, opt.Label)
	}
	c.printf("Enter the number corresponding to the genre: ")
	for {
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		g, err := inventory.ParseGenreSelection(line)
		if err == nil {
			return g, nil
		}
		c.println("Invalid selection, please try again.")
	}
}

func (c *Console) promptID() (string, error) {
	for {
		c.printf("Enter the book's ID: ")
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		id, err := inventory.ValidateID(line)
		if err == nil {
			return id, nil
		}
		c.println("Invalid ID. Please try again.")
	}
}
