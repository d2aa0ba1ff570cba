package categorytree

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnapshot(t *testing.T) {
	records := append(groceries(), cat(9, 99, "Lost"))
	snap, err := NewSnapshot(records, "7")
	require.NoError(t, err)

	assert.Equal(t, "7", snap.Version)
	assert.Equal(t, 5, snap.Len())
	assert.Equal(t, []int64{9}, snap.Report.Orphans)

	want, err := Build(records, nil)
	require.NoError(t, err)
	if diff := cmp.Diff(want, snap.Roots); diff != "" {
		t.Errorf("roots mismatch (-want +got):\n%s", diff)
	}

	n, ok := snap.Node(2)
	require.True(t, ok)
	assert.Equal(t, "Dairy", n.Name)

	_, ok = snap.Node(9)
	assert.False(t, ok, "orphans are not part of the tree")
	c, ok := snap.Category(9)
	require.True(t, ok)
	assert.Equal(t, "Lost", c.Name)
}

func TestSnapshot_SubtreeAndBranch(t *testing.T) {
	snap, err := NewSnapshot(groceries(), "1")
	require.NoError(t, err)

	top, err := snap.Subtree(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Food", "Drinks"}, names(top))

	sub, err := snap.Subtree(ptr(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"Dairy"}, names(sub))

	sub, err = snap.Subtree(ptr(404))
	require.NoError(t, err)
	assert.Empty(t, sub)

	ids, err := snap.Branch(1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids.Slice())

	ids, err = snap.Branch(4)
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, ids.Slice())
}

func TestSnapshot_SubtreeUnderOrphan(t *testing.T) {
	records := append(groceries(), cat(9, 99, "Lost"), cat(10, 9, "Lost child"))
	snap, err := NewSnapshot(records, "1")
	require.NoError(t, err)

	sub, err := snap.Subtree(ptr(9))
	require.NoError(t, err)
	assert.Equal(t, []string{"Lost child"}, names(sub))
}

func TestNewSnapshot_ServesTreeAroundCycle(t *testing.T) {
	records := append(groceries(), cat(5, 6, "a"), cat(6, 5, "b"))
	snap, err := NewSnapshot(records, "1")
	require.NoError(t, err)

	assert.Equal(t, []int64{5, 6}, snap.Report.Cycles)
	assert.Equal(t, []string{"Food", "Drinks"}, names(snap.Roots))
	ids, err := snap.Branch(1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids.Slice())

	var cycle *CycleError
	_, err = snap.Branch(5)
	require.True(t, errors.As(err, &cycle))
	assert.Equal(t, int64(5), cycle.ID)

	_, err = snap.Subtree(ptr(5))
	assert.True(t, errors.As(err, &cycle))
}

func TestNewSnapshot_RejectsDuplicates(t *testing.T) {
	records := append(groceries(), cat(2, 0, "Dairy again"))
	_, err := NewSnapshot(records, "1")

	var dup *DuplicateIDError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, int64(2), dup.ID)
}

func TestSnapshot_ETag(t *testing.T) {
	a, err := NewSnapshot(groceries(), "1")
	require.NoError(t, err)
	b, err := NewSnapshot(groceries(), "2")
	require.NoError(t, err)
	assert.Equal(t, a.ETag, b.ETag, "same directory content, same etag")

	renamed := groceries()
	renamed[3].Name = "Beverages"
	c, err := NewSnapshot(renamed, "3")
	require.NoError(t, err)
	assert.NotEqual(t, a.ETag, c.ETag)

	moved := groceries()
	moved[2].ParentID = ptr(4)
	d, err := NewSnapshot(moved, "4")
	require.NoError(t, err)
	assert.NotEqual(t, a.ETag, d.ETag)

	described := groceries()
	note := "Milk, yogurt and butter"
	described[1].Description = &note
	e, err := NewSnapshot(described, "5")
	require.NoError(t, err)
	assert.NotEqual(t, a.ETag, e.ETag, "description is rendered, so it changes the etag")

	empty := ""
	described[1].Description = &empty
	f, err := NewSnapshot(described, "6")
	require.NoError(t, err)
	assert.NotEqual(t, a.ETag, f.ETag, "empty description differs from none")

	touched := groceries()
	touched[1].UpdatedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	g, err := NewSnapshot(touched, "7")
	require.NoError(t, err)
	assert.NotEqual(t, a.ETag, g.ETag)
}

func TestSnapshot_CategoriesIsACopy(t *testing.T) {
	records := groceries()
	snap, err := NewSnapshot(records, "1")
	require.NoError(t, err)

	records[0].Name = "changed by caller"
	out := snap.Categories()
	out[1].Name = "changed again"

	again := snap.Categories()
	assert.Equal(t, "Food", again[0].Name)
	assert.Equal(t, "Dairy", again[1].Name)
}
