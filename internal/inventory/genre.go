// internal/inventory/genre.go
//
// Genre 為封閉列舉。選單顯示與解析共用同一份有序表 genreTable，
// 新增類別時只需在此表加入一列，不會有魔術數字散落在邏輯中。

package inventory

import (
	"strconv"
	"strings"
)

// Genre 書籍類別。
type Genre int

const (
	Fiction Genre = iota
	NonFiction
	ScienceFiction
	Mystery
	Fantasy
)

// GenreOption 為選單中的一列：列舉值與顯示名稱。
type GenreOption struct {
	Value Genre
	Label string
}

// genreTable 依宣告順序排列；索引 +1 即為選單編號。
var genreTable = []GenreOption{
	{Fiction, "Fiction"},
	{NonFiction, "NonFiction"},
	{ScienceFiction, "ScienceFiction"},
	{Mystery, "Mystery"},
	{Fantasy, "Fantasy"},
}

// Genres 回傳所有類別的值拷貝，順序固定。
func Genres() []GenreOption {
	out := make([]GenreOption, len(genreTable))
	copy(out, genreTable)
	return out
}

// String 回傳類別顯示名稱；未知值回傳 Genre(n)。
func (g Genre) String() string {
	if g >= 0 && int(g) < len(genreTable) {
		return genreTable[g].Label
	}
	return "Genre(" + strconv.Itoa(int(g)) + ")"
}

// Valid 回報 g 是否為列舉中的合法值。
func (g Genre) Valid() bool {
	return g >= 0 && int(g) < len(genreTable)
}

// ParseGenreSelection 將 1-based 選單編號轉為 Genre。
// 非數字或超出範圍皆回傳 ErrInvalidGenre。
func ParseGenreSelection(s string) (Genre, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > len(genreTable) {
		return 0, ErrInvalidGenre
	}
	return genreTable[n-1].Value, nil
}
