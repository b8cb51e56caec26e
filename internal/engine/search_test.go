package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/protgraph/internal/model"
	"github.com/vk/protgraph/internal/testutil"
)

func TestSearch_AmbiguousAliasSummarizesEveryCandidate(t *testing.T) {
	e := newTestEngine(t)

	got := e.Search("SHARED", DefaultSearchLimit)

	assert.Equal(t, []ProteinSummary{
		{ProteinID: testutil.ProteinA, Name: model.StringPtr("Tumor protein p53"), UUID: "Protein::uuid-a"},
		{ProteinID: testutil.ProteinB, Name: model.StringPtr("Cyclin-dependent kinase inhibitor"), UUID: "Protein::uuid-b"},
	}, got)
}

func TestSearch_Limit(t *testing.T) {
	e := newTestEngine(t)

	all := e.Search("protein", 0)
	require.Len(t, all, 2)
	assert.ElementsMatch(t, []string{testutil.ProteinA, testutil.ProteinE}, []string{all[0].ProteinID, all[1].ProteinID})

	limited := e.Search("protein", 1)
	require.Len(t, limited, 1)
	assert.Equal(t, all[0], limited[0])
}

func TestSearch_Names(t *testing.T) {
	e := newTestEngine(t)

	edgeOnly := e.Search(testutil.ProteinD, DefaultSearchLimit)
	require.Len(t, edgeOnly, 1)
	require.NotNil(t, edgeOnly[0].Name)
	assert.Equal(t, testutil.ProteinD, *edgeOnly[0].Name, "a protein without a row is named after its id")
	assert.Empty(t, edgeOnly[0].UUID)

	unnamed := e.Search(testutil.ProteinC, DefaultSearchLimit)
	require.Len(t, unnamed, 1)
	assert.Nil(t, unnamed[0].Name, "a stored row without a name keeps a null name")
	assert.Nil(t, unnamed[0].Score)
}

func TestSearch_NoMatch(t *testing.T) {
	e := newTestEngine(t)

	got := e.Search("no-such-id", DefaultSearchLimit)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
