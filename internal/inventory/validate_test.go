package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGenreSelection(t *testing.T) {
	tests := []struct {
		in   string
		want Genre
	}{
		{"1", Fiction},
		{"2", NonFiction},
		{"3", ScienceFiction},
		{"4", Mystery},
		{"5", Fantasy},
		{" 3 ", ScienceFiction},
	}
	for _, tt := range tests {
		got, err := ParseGenreSelection(tt.in)
		require.NoError(t, err, "in=%q", tt.in)
		assert.Equal(t, tt.want, got)
	}

	for _, in := range []string{"", "0", "6", "-1", "abc", "1.5", "2a"} {
		_, err := ParseGenreSelection(in)
		assert.ErrorIs(t, err, ErrInvalidGenre, "in=%q", in)
		assert.ErrorIs(t, err, ErrInvalidInput, "in=%q", in)
	}
}

func TestGenresOrderAndLabels(t *testing.T) {
	opts := Genres()
	require.Len(t, opts, 5)
	labels := make([]string, len(opts))
	for i, o := range opts {
		labels[i] = o.Label
		assert.Equal(t, Genre(i), o.Value)
		assert.Equal(t, o.Label, o.Value.String())
		assert.True(t, o.Value.Valid())
	}
	assert.Equal(t, []string{"Fiction", "NonFiction", "ScienceFiction", "Mystery", "Fantasy"}, labels)

	// 回傳值為拷貝，修改不影響內部表
	opts[0].Label = "changed"
	assert.Equal(t, "Fiction", Fiction.String())

	assert.False(t, Genre(99).Valid())
	assert.Equal(t, "Genre(99)", Genre(99).String())
}

func TestNormalizeAuthor(t *testing.T) {
	got, err := NormalizeAuthor("  Frank   Herbert ")
	require.NoError(t, err)
	assert.Equal(t, "Frank Herbert", got)

	got, err = NormalizeAuthor("Ursula K. Le Guin")
	require.NoError(t, err)
	assert.Equal(t, "Ursula K. Le Guin", got)

	// ❌ 單名或空白作者一律拒絕
	for _, in := range []string{"", "   ", "Homer", "  Homer  "} {
		_, err := NormalizeAuthor(in)
		assert.ErrorIs(t, err, ErrInvalidAuthor, "in=%q", in)
	}
}

func TestValidateTitleAndID(t *testing.T) {
	got, err := ValidateTitle(" Dune ")
	require.NoError(t, err)
	assert.Equal(t, " Dune ", got)

	_, err = ValidateTitle(" \t ")
	assert.ErrorIs(t, err, ErrInvalidTitle)

	got, err = ValidateID("B1")
	require.NoError(t, err)
	assert.Equal(t, "B1", got)

	_, err = ValidateID("")
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
