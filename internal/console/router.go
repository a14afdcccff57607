// internal/console/router.go
//
// 本檔負責選單指令註冊：將已驗證的選單代號對應到處理函式。
// 選單顯示與指令分派共用同一份有序表，新增指令只需在 commands() 加一列。

package console

// command 為選單中的一列。
type command struct {
	key   string
	label string
	run   func(*Console) error
}

// commands 回傳依顯示順序排列的指令表。
func commands() []command {
	return []command{
		{"1", "Add a new book to the inventory.", (*Console).addBook},
		{"2", "Display the list of all books in the inventory.", (*Console).listBooks},
		{"3", "Display a book by book ID.", (*Console).findBook},
		{"4", "Remove a book from the inventory.", (*Console).removeBook},
		{"5", "Exit the program.", (*Console).exit},
	}
}

func indexCommands(cmds []command) map[string]command {
	m := make(map[string]command, len(cmds))
	for _, cmd := range cmds {
		m[cmd.key] = cmd
	}
	return m
}

// menu 輸出選單。
func (c *Console) menu() {
	c.println("\n" + c.banner)
	for _, cmd := range commands() {
		c.printf("%s. %s\n", cmd.key, cmd.label)
	}
	c.printf("Select an option: ")
}
