package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkdex/internal/navigation"
)

func deref(t *testing.T, p *int) int {
	t.Helper()
	require.NotNil(t, p)
	return *p
}

/*
TestCompute_Boundaries covers the first/previous/next/last semantics against
a sparse id subset, including a reference id that is itself a member.
*/
func TestCompute_Boundaries(t *testing.T) {
	ids := []int{1, 3, 5, 9}

	tests := []struct {
		name      string
		reference int
		first     int
		last      int
		previous  *int
		next      *int
	}{
		{"member_reference", 5, 1, 9, intp(3), intp(9)},
		{"gap_reference", 4, 1, 9, intp(3), intp(5)},
		{"before_all", 0, 1, 9, nil, intp(1)},
		{"after_all", 100, 1, 9, intp(9), nil},
		{"at_first", 1, 1, 9, nil, intp(3)},
		{"at_last", 9, 1, 9, intp(5), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, count := navigation.Compute(ids, tt.reference)

			assert.Equal(t, 4, count)
			assert.Equal(t, tt.first, deref(t, data.First))
			assert.Equal(t, tt.last, deref(t, data.Last))

			if tt.previous == nil {
				assert.Nil(t, data.Previous)
			} else {
				assert.Equal(t, *tt.previous, deref(t, data.Previous))
			}
			if tt.next == nil {
				assert.Nil(t, data.Next)
			} else {
				assert.Equal(t, *tt.next, deref(t, data.Next))
			}
		})
	}
}

/*
TestCompute_NeverReturnsReference checks the strict-inequality rule: even when
the reference id matches the predicate, Previous and Next skip over it.
*/
func TestCompute_NeverReturnsReference(t *testing.T) {
	data, _ := navigation.Compute([]int{7}, 7)

	assert.Nil(t, data.Previous)
	assert.Nil(t, data.Next)
	assert.Equal(t, 7, deref(t, data.First))
	assert.Equal(t, 7, deref(t, data.Last))
}

/*
TestCompute_AdjacencyProperty verifies that consecutive members of the subset
point at each other: Next(c1) == c2 and Previous(c2) == c1.
*/
func TestCompute_AdjacencyProperty(t *testing.T) {
	ids := []int{2, 4, 8, 16, 32}

	for i := 0; i < len(ids)-1; i++ {
		lower, upper := ids[i], ids[i+1]

		fromLower, _ := navigation.Compute(ids, lower)
		assert.Equal(t, upper, deref(t, fromLower.Next))

		fromUpper, _ := navigation.Compute(ids, upper)
		assert.Equal(t, lower, deref(t, fromUpper.Previous))
	}
}

/*
TestCompute_EmptySubset: zero matching comics means all-nil fields and count 0.
*/
func TestCompute_EmptySubset(t *testing.T) {
	data, count := navigation.Compute(nil, 10)

	assert.Zero(t, count)
	assert.Nil(t, data.First)
	assert.Nil(t, data.Previous)
	assert.Nil(t, data.Next)
	assert.Nil(t, data.Last)
}

/*
TestComputeAll_Batch checks the one-pass batch mode: one record per item,
ordered by item id, each consistent with the single-item engine.
*/
func TestComputeAll_Batch(t *testing.T) {
	occurrences := map[int][]int{
		3: {1, 5},
		1: {1, 2, 3},
		2: {4},
	}

	records := navigation.ComputeAll(occurrences, 3)

	require.Len(t, records, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{records[0].ItemID, records[1].ItemID, records[2].ItemID})

	// Item 1 appears in 1..3; reference 3 is a member.
	assert.Equal(t, 3, records[0].Count)
	assert.Equal(t, 2, deref(t, records[0].Previous))
	assert.Nil(t, records[0].Next)

	// Item 2 appears only after the reference.
	assert.Equal(t, 1, records[1].Count)
	assert.Nil(t, records[1].Previous)
	assert.Equal(t, 4, deref(t, records[1].Next))

	// Item 3 straddles the reference without containing it.
	assert.Equal(t, 2, records[2].Count)
	assert.Equal(t, 1, deref(t, records[2].Previous))
	assert.Equal(t, 5, deref(t, records[2].Next))
}

/*
TestParseExclusion validates the wire representations and the loud failure on
unknown filters.
*/
func TestParseExclusion(t *testing.T) {
	none, err := navigation.ParseExclusion("")
	require.NoError(t, err)
	assert.Equal(t, navigation.ExcludeNone, none)

	guest, err := navigation.ParseExclusion("guest")
	require.NoError(t, err)
	assert.Equal(t, navigation.ExcludeGuest, guest)
	assert.Equal(t, "guest", guest.String())

	nonCanon, err := navigation.ParseExclusion("non-canon")
	require.NoError(t, err)
	assert.Equal(t, navigation.ExcludeNonCanon, nonCanon)

	_, err = navigation.ParseExclusion("canon")
	assert.Error(t, err)
}

func intp(v int) *int { return &v }
