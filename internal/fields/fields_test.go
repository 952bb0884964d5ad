package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFind_SameLevel(t *testing.T) {
	f := New()
	f.Add("TITLE", "Main Title", LevelMain)

	n := f.Find("TITLE", LevelMain)
	require.NotEqual(t, NotFound, n)
	assert.Equal(t, "Main Title", f.Value(n))
	assert.Equal(t, LevelMain, f.Level(n))
}

func TestFind_CaseInsensitive(t *testing.T) {
	f := New()
	f.Add("Title", "x", LevelMain)
	assert.Equal(t, 0, f.Find("TITLE", LevelMain))
	assert.Equal(t, 0, f.Find("title", LevelAny))
}

func TestFind_LevelsDoNotCollide(t *testing.T) {
	f := New()
	f.Add("TITLE", "Article", LevelMain)
	f.Add("TITLE", "Journal", LevelHost)
	f.Add("TITLE", "Series", LevelSeries)

	assert.Equal(t, "Article", f.Lookup("TITLE", LevelMain))
	assert.Equal(t, "Journal", f.Lookup("TITLE", LevelHost))
	assert.Equal(t, "Series", f.Lookup("TITLE", LevelSeries))
	assert.Equal(t, []string{"Article", "Journal", "Series"}, f.Values("TITLE", LevelAny))
	assert.Equal(t, []int{0, 1, 2}, f.FindAll("TITLE", LevelAny))
}

func TestFind_NotFound(t *testing.T) {
	f := New()
	assert.Equal(t, NotFound, f.Find("AUTHOR", LevelAny))

	f.Add("AUTHOR", "Smith|John", LevelMain)
	assert.Equal(t, NotFound, f.Find("AUTHOR", LevelHost))
	assert.Equal(t, "", f.Lookup("AUTHOR", LevelOrig))
}

func TestAdd_EmptyValueIgnored(t *testing.T) {
	f := New()
	f.Add("NOTES", "", LevelMain)
	f.Add("", "value", LevelMain)
	assert.Equal(t, 0, f.Len())
}

func TestAdd_DuplicatesPreserveOrder(t *testing.T) {
	f := New()
	f.Add("AUTHOR", "Smith|John", LevelMain)
	f.Add("AUTHOR", "Doe|Jane", LevelMain)
	f.Add("AUTHOR", "Roe|Richard", LevelMain)

	assert.Equal(t, []string{"Smith|John", "Doe|Jane", "Roe|Richard"}, f.Values("AUTHOR", LevelMain))
}

func TestReplaceOrAdd(t *testing.T) {
	f := New()
	f.ReplaceOrAdd("GENRE", "thesis", LevelMain)
	assert.Equal(t, 1, f.Len())

	f.Add("GENRE", "second", LevelHost)
	f.ReplaceOrAdd("GENRE", "Diploma thesis", LevelHost)
	assert.Equal(t, 2, f.Len())
	// The first match at any level is overwritten.
	assert.Equal(t, "Diploma thesis", f.Value(0))
	assert.Equal(t, "second", f.Value(1))
}

func TestSetUsed(t *testing.T) {
	f := New()
	f.Add("CROSSREF", "parent", LevelMain)
	assert.False(t, f.Used(0))

	f.SetUsed(0)
	assert.True(t, f.Used(0))

	// Out-of-range indexes are ignored.
	f.SetUsed(NotFound)
	f.SetUsed(5)
}

func TestAll_InsertionOrder(t *testing.T) {
	f := New()
	f.Add("A", "1", LevelMain)
	f.Add("B", "2", LevelHost)
	f.Add("C", "3", LevelOrig)

	var tags []string
	for _, fld := range f.All() {
		tags = append(tags, fld.Tag)
	}
	assert.Equal(t, []string{"A", "B", "C"}, tags)
}

func TestRemoveAndClone(t *testing.T) {
	f := New()
	f.Add("A", "1", LevelMain)
	f.Add("B", "2", LevelMain)
	f.Add("C", "3", LevelMain)

	c := f.Clone()
	f.Remove(1)
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, "C", f.Tag(1))

	// The clone is unaffected.
	assert.Equal(t, 3, c.Len())
	c.SetValue(0, "changed")
	assert.Equal(t, "1", f.Value(0))
}

func TestMaxLevel(t *testing.T) {
	f := New()
	assert.Equal(t, LevelMain, f.MaxLevel())
	f.Add("TITLE", "x", LevelOrig)
	assert.Equal(t, LevelMain, f.MaxLevel())
	f.Add("TITLE", "y", LevelHost+2)
	assert.Equal(t, LevelHost+2, f.MaxLevel())
}
