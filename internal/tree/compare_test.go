package tree

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/temirov/dirtree/internal/config"
	"github.com/temirov/dirtree/internal/fsmeta"
)

func comparatorFixture() []*Node {
	older := syntheticFile("/scan/zeta", 1, 10, fsmeta.Metadata{})
	older.modTime = time.Unix(100, 0)
	newer := syntheticFile("/scan/alpha", 1, 10, fsmeta.Metadata{})
	newer.modTime = time.Unix(200, 0)
	large := syntheticFile("/scan/mid", 1, 900, fsmeta.Metadata{})
	large.modTime = time.Unix(150, 0)
	directory := syntheticDirectory("/scan/dir", 1)
	return []*Node{older, newer, large, directory}
}

func TestComparatorIsTotalForEverySortType(t *testing.T) {
	t.Parallel()

	sortTypes := []config.SortType{
		config.SortName, config.SortNameReverse, config.SortSize,
		config.SortSizeReverse, config.SortTime, config.SortTimeReverse,
	}
	dirOrders := []config.DirOrder{config.DirOrderNone, config.DirOrderFirst, config.DirOrderLast}

	for _, sortType := range sortTypes {
		for _, dirOrder := range dirOrders {
			comparator := NewComparator(sortType, dirOrder)
			nodes := comparatorFixture()
			for _, a := range nodes {
				for _, b := range nodes {
					ordering := comparator(a, b)
					if a == b {
						assert.Zero(t, ordering)
						continue
					}
					assert.NotZero(t, ordering, "%s/%s: %s vs %s", sortType, dirOrder, a.Name(), b.Name())
					assert.Equal(t, -sign(ordering), sign(comparator(b, a)))
				}
			}
		}
	}
}

func TestComparatorOrderings(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		sortType config.SortType
		dirOrder config.DirOrder
		expected []string
	}{
		{name: "name", sortType: config.SortName, dirOrder: config.DirOrderNone, expected: []string{"alpha", "dir", "mid", "zeta"}},
		{name: "reverse_name", sortType: config.SortNameReverse, dirOrder: config.DirOrderNone, expected: []string{"zeta", "mid", "dir", "alpha"}},
		{name: "size", sortType: config.SortSize, dirOrder: config.DirOrderNone, expected: []string{"dir", "alpha", "zeta", "mid"}},
		{name: "reverse_size", sortType: config.SortSizeReverse, dirOrder: config.DirOrderNone, expected: []string{"mid", "alpha", "zeta", "dir"}},
		{name: "time_newest_first", sortType: config.SortTime, dirOrder: config.DirOrderLast, expected: []string{"alpha", "mid", "zeta", "dir"}},
		{name: "reverse_time", sortType: config.SortTimeReverse, dirOrder: config.DirOrderFirst, expected: []string{"dir", "zeta", "mid", "alpha"}},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			nodes := comparatorFixture()
			comparator := NewComparator(testCase.sortType, testCase.dirOrder)
			sortNodes(nodes, comparator)
			var names []string
			for _, node := range nodes {
				names = append(names, node.Name())
			}
			assert.Equal(t, testCase.expected, names)
			for index := 1; index < len(nodes); index++ {
				assert.Negative(t, comparator(nodes[index-1], nodes[index]))
			}
		})
	}
}

func sortNodes(nodes []*Node, comparator Comparator) {
	for outer := 1; outer < len(nodes); outer++ {
		for inner := outer; inner > 0 && comparator(nodes[inner-1], nodes[inner]) > 0; inner-- {
			nodes[inner-1], nodes[inner] = nodes[inner], nodes[inner-1]
		}
	}
}

func sign(value int) int {
	switch {
	case value < 0:
		return -1
	case value > 0:
		return 1
	default:
		return 0
	}
}
