// internal/console/response.go
//
// 本檔統一主控台輸出格式；所有訊息皆經由此處寫出。

package console

import (
	"fmt"

	"bookstore/internal/inventory"
)

// printf 寫出格式化訊息；寫入錯誤忽略（終端輸出無法補救）。
func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}

// writeBook 以單行輸出一本書：ID、標題、作者、類別。
func (c *Console) writeBook(b inventory.Book) {
	c.println(b.String())
}
