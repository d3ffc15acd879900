package tree

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"family-tree/backend/internal/graph"
	apperrors "family-tree/backend/pkg/errors"
)

func TestTree_EndToEndScenario(t *testing.T) {
	tr := New(zap.NewNop())

	abe := tr.AddPerson("Abe", "Cohen", graph.Male)
	bea := tr.AddPerson("Bea", "Cohen", graph.Female)

	require.NoError(t, tr.ConnectExisting(abe, bea, graph.Father))

	beaEdges, err := tr.Edges(bea.ID)
	require.NoError(t, err)
	assert.Equal(t, []graph.Edge{{Target: abe, Kind: graph.Father}}, beaEdges)

	abeEdges, err := tr.Edges(abe.ID)
	require.NoError(t, err)
	assert.Equal(t, []graph.Edge{{Target: bea, Kind: graph.Daughter}}, abeEdges)

	err = tr.ConnectExisting(abe, bea, graph.Mother)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeGenderRole), "got %v", err)

	carl := tr.AddPerson("Carl", "Katz", graph.Male)
	require.NoError(t, tr.ConnectExisting(bea, carl, graph.Marriage))

	dan := tr.AddPerson("Dan", "Levi", graph.Male)
	err = tr.ConnectExisting(bea, dan, graph.Marriage)

	var invalid *apperrors.ErrInvalidRelationship
	require.True(t, stderrors.As(err, &invalid), "got %v", err)
	assert.Equal(t, bea.ID, invalid.MemberID)
	assert.Equal(t, "MARRIAGE", invalid.Kind)

	danEdges, err := tr.Edges(dan.ID)
	require.NoError(t, err)
	assert.Empty(t, danEdges)
}

func TestTree_ConnectExistingRejectsUnregistered(t *testing.T) {
	tr := New(zap.NewNop())
	known := tr.AddPerson("Abe", "Cohen", graph.Male)
	stranger := &graph.Person{ID: 99, FirstName: "No", LastName: "Body", Gender: graph.Female}

	for _, pair := range [][2]*graph.Person{{known, stranger}, {stranger, known}} {
		err := tr.ConnectExisting(pair[0], pair[1], graph.Siblings)

		var missing *apperrors.ErrMemberNotRegistered
		require.True(t, stderrors.As(err, &missing), "got %v", err)
		assert.Equal(t, apperrors.ScopeTree, missing.Scope)
		assert.Equal(t, 99, missing.MemberID)
	}

	edges, err := tr.Edges(known.ID)
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestTree_ConnectExistingRejectsNil(t *testing.T) {
	tr := New(zap.NewNop())
	known := tr.AddPerson("Abe", "Cohen", graph.Male)

	for _, pair := range [][2]*graph.Person{{known, nil}, {nil, known}} {
		var err error
		require.NotPanics(t, func() {
			err = tr.ConnectExisting(pair[0], pair[1], graph.Siblings)
		})

		var missing *apperrors.ErrMemberNotRegistered
		require.True(t, stderrors.As(err, &missing), "got %v", err)
		assert.Equal(t, apperrors.ScopeTree, missing.Scope)
	}

	edges, err := tr.Edges(known.ID)
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestTree_ConnectByID(t *testing.T) {
	tr := New(zap.NewNop())
	sara := tr.AddPerson("Sara", "Cohen", graph.Female)
	isaac := tr.AddPerson("Isaac", "Cohen", graph.Male)

	require.NoError(t, tr.ConnectByID(isaac.ID, sara.ID, graph.Son))

	edges, err := tr.Edges(isaac.ID)
	require.NoError(t, err)
	assert.Equal(t, []graph.Edge{{Target: sara, Kind: graph.Mother}}, edges)

	err = tr.ConnectByID(isaac.ID, 42, graph.Son)
	var missing *apperrors.ErrMemberNotRegistered
	require.True(t, stderrors.As(err, &missing))
	assert.Equal(t, 42, missing.MemberID)
}

func TestTree_Bootstrap(t *testing.T) {
	tr := New(zap.NewNop())

	first, err := tr.Bootstrap("Rav", "Levi", graph.Male, graph.WithCohort(0))
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.True(t, first.IsInstitutional())

	_, err = tr.Bootstrap("Second", "Try", graph.Female)
	var notEmpty *apperrors.ErrTreeNotEmpty
	require.True(t, stderrors.As(err, &notEmpty))
	assert.Equal(t, 1, notEmpty.Size)
	assert.Equal(t, 1, tr.Len())
}

func TestTree_IdentifiersSurviveRejections(t *testing.T) {
	tr := New(zap.NewNop())
	a := tr.AddPerson("A", "A", graph.Male)
	b := tr.AddPerson("B", "B", graph.Male)

	require.Error(t, tr.ConnectExisting(a, b, graph.Marriage))

	c := tr.AddPerson("C", "C", graph.Female)
	assert.Equal(t, 3, c.ID)
	assert.Len(t, tr.People(), 3)
}

func TestTree_Available(t *testing.T) {
	tr := New(zap.NewNop())
	mother := tr.AddPerson("Sara", "Cohen", graph.Female)
	child := tr.AddPerson("Isaac", "Cohen", graph.Male)
	require.NoError(t, tr.ConnectExisting(mother, child, graph.Mother))

	kinds, err := tr.Available(child.ID)
	require.NoError(t, err)
	assert.NotContains(t, kinds, graph.Mother)
	assert.Contains(t, kinds, graph.Father)

	_, err = tr.Available(404)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeMembership))

	_, err = tr.Edges(404)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeMembership))
}
