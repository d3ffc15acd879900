package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestKind_ExpectedGender(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected Gender
		ok       bool
	}{
		{Father, Male, true},
		{Mother, Female, true},
		{Son, Male, true},
		{Daughter, Female, true},
		{Grandfather, Male, true},
		{Grandmother, Female, true},
		{Grandson, Male, true},
		{Granddaughter, Female, true},
		{Marriage, Female, false},
		{Siblings, Female, false},
		{Cousins, Female, false},
	}

	require.Len(t, tests, len(Kinds))
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got, ok := tt.kind.ExpectedGender()
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestKind_EveryKindHasAFamily(t *testing.T) {
	for _, k := range Kinds {
		assert.NotEqual(t, FamilyUnknown, k.Family(), k.String())
	}
	assert.Equal(t, FamilyUnknown, Kind(0).Family())
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseKind(" granddaughter ")
	require.NoError(t, err)
	assert.Equal(t, Granddaughter, got)

	_, err = ParseKind("UNCLE")
	assert.Error(t, err)
}

func TestKind_YAML(t *testing.T) {
	var doc struct {
		Relation Kind `yaml:"relation"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("relation: mother\n"), &doc))
	assert.Equal(t, Mother, doc.Relation)

	err := yaml.Unmarshal([]byte("relation: aunt\n"), &doc)
	assert.Error(t, err)
}

func TestKind_MarshalTextRejectsUnknown(t *testing.T) {
	_, err := Kind(99).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestSortEdges(t *testing.T) {
	a, b, c := &Person{ID: 1}, &Person{ID: 2}, &Person{ID: 3}
	edges := []Edge{
		{Target: a, Kind: Cousins},
		{Target: b, Kind: Father},
		{Target: c, Kind: Son},
		{Target: a, Kind: Marriage},
		{Target: b, Kind: Daughter},
	}

	sorted := SortEdges(edges)

	assert.Equal(t, []Kind{Marriage, Son, Daughter, Father, Cousins}, []Kind{
		sorted[0].Kind, sorted[1].Kind, sorted[2].Kind, sorted[3].Kind, sorted[4].Kind,
	})
	// input untouched
	assert.Equal(t, Cousins, edges[0].Kind)
}
