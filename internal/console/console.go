// internal/console/console.go
//
// Package console
// ─────────────────────────────────────────────
// 提供主控台互動介面，作為 inventory 模組的表現層 (Presentation Layer)。
// 每個 handler 僅負責：
//  1. 讀取一行輸入並做格式層級驗證（空字串、作者姓名、選單編號）
//  2. 呼叫 Inventory 執行業務邏輯
//  3. 將結果或錯誤轉為使用者訊息
//
// inventory 不依賴任何 I/O，console 依賴 Inventory 介面。
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"bookstore/internal/inventory"
)

// DefaultBanner 為選單標題預設值。
const DefaultBanner = "Bookstore Inventory Management"

// Inventory 為 console 需要的核心操作集合；*inventory.Store 即為其實作。
type Inventory interface {
	Add(title, author, id string, genre inventory.Genre) error
	List() ([]inventory.Book, error)
	FindByID(id string) (inventory.Book, error)
	RemoveByID(id string) error
}

// Console 為主控台互動核心結構：
// - inv：注入的庫存實作，由呼叫端擁有。
// - in / out：逐行讀取輸入、寫出訊息；測試時以 buffer 取代 stdin/stdout。
// - log：結構化日誌，寫往 stderr，不與選單輸出交錯。
type Console struct {
	inv    Inventory
	in     *bufio.Reader
	out    io.Writer
	log    *slog.Logger
	banner string
	table  map[string]command
}

// Option 調整 Console 的可選設定。
type Option func(*Console)

// WithLogger 指定日誌輸出；未指定時丟棄所有日誌。
func WithLogger(l *slog.Logger) Option {
	return func(c *Console) {
		if l != nil {
			c.log = l
		}
	}
}

// WithBanner 指定選單標題；空字串維持預設。
func WithBanner(b string) Option {
	return func(c *Console) {
		if strings.TrimSpace(b) != "" {
			c.banner = b
		}
	}
}

// New 建立新的主控台。inv 不可為 nil。
func New(inv Inventory, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		inv:    inv,
		in:     bufio.NewReader(in),
		out:    out,
		log:    slog.New(slog.DiscardHandler),
		banner: DefaultBanner,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.table = indexCommands(commands())
	return c
}

// errExit 由「離開」指令回傳，讓 Run 結束迴圈。
var errExit = errors.New("exit")

// Run 執行選單迴圈，直到使用者選擇離開或輸入結束 (EOF)。
// 兩者皆視為正常結束並回傳 nil；只有底層讀取錯誤才會回傳 error。
func (c *Console) Run() error {
	for {
		c.menu()
		choice, err := c.readLine()
		if err != nil {
			return c.finish(err)
		}
		cmd, ok := c.table[choice]
		if !ok {
			c.println("Invalid option, please try again.")
			continue
		}
		if err := cmd.run(c); err != nil {
			return c.finish(err)
		}
	}
}

// finish 將 errExit / io.EOF 轉為正常結束。
func (c *Console) finish(err error) error {
	if errors.Is(err, errExit) || errors.Is(err, io.EOF) {
		c.log.Info("session ended", "reason", err.Error())
		return nil
	}
	return fmt.Errorf("read input: %w", err)
}

// readLine 讀取一行（不含換行），不限制單行長度。
// 最後一行沒有換行時照常回傳，下一次呼叫才回傳 io.EOF。
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
