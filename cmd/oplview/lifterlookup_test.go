package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oplcore/oplcore/opltypes"
	"github.com/oplcore/oplcore/store"
)

func buildTestStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(2, 0, 0)
	_, err := s.AddLifter(store.Lifter{Username: "johndoe", Name: "John Doe"})
	require.NoError(t, err)
	_, err = s.AddLifter(store.Lifter{Username: "janedoeski", Name: "Jane Doeski"})
	require.NoError(t, err)
	s.Freeze()
	return s
}

func TestLifterIndexSearchFindsByName(t *testing.T) {
	s := buildTestStore(t)
	li := buildLifterIndex(s)

	matches := li.search("John")
	require.NotEmpty(t, matches)
	assert.Equal(t, "John Doe", s.Lifter(matches[0]).Name)
}

func TestLifterIndexSearchFindsByUsername(t *testing.T) {
	s := buildTestStore(t)
	li := buildLifterIndex(s)

	matches := li.search("janedoeski")
	require.NotEmpty(t, matches)
	assert.Equal(t, opltypes.Username("janedoeski"), s.Lifter(matches[0]).Username)
}

func TestLifterIndexSearchNoMatch(t *testing.T) {
	s := buildTestStore(t)
	li := buildLifterIndex(s)

	assert.Empty(t, li.search("zzznomatchzzz"))
}
