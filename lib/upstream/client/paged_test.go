package client

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePaged(t *testing.T) {
	t.Run(`full envelope`, func(t *testing.T) {
		paged, err := ParsePaged(json.RawMessage(`{
			"items": [{"id": "a"}, {"id": "b"}],
			"pageNumber": 2,
			"pageSize": 2,
			"totalCount": 7,
			"totalPages": 4,
			"hasNextPage": true,
			"hasPreviousPage": true
		}`))
		require.Nil(t, err)
		require.Len(t, paged.Items, 2)
		require.Equal(t, 2, paged.PageNumber)
		require.Equal(t, 7, paged.TotalCount)
		require.Equal(t, 4, paged.TotalPages)
		require.True(t, paged.HasNextPage)
		require.True(t, paged.HasPreviousPage)
	})

	t.Run(`bare array`, func(t *testing.T) {
		paged, err := ParsePaged(json.RawMessage(`[{"id": "a"}, {"id": "b"}, {"id": "c"}]`))
		require.Nil(t, err)
		require.Len(t, paged.Items, 3)
		require.Equal(t, 1, paged.PageNumber)
		require.Equal(t, 3, paged.TotalCount)
		require.Equal(t, 1, paged.TotalPages)
		require.False(t, paged.HasNextPage)
	})

	t.Run(`data wrapper with defaulted metadata`, func(t *testing.T) {
		paged, err := ParsePaged(json.RawMessage(`{"data": [{"id": "a"}]}`))
		require.Nil(t, err)
		require.Len(t, paged.Items, 1)
		require.Equal(t, 1, paged.PageNumber)
		require.Equal(t, 1, paged.TotalCount)
		require.Equal(t, 1, paged.PageSize)
		require.Equal(t, 1, paged.TotalPages)
	})

	t.Run(`empty body`, func(t *testing.T) {
		paged, err := ParsePaged(nil)
		require.Nil(t, err)
		require.Empty(t, paged.Items)
	})

	t.Run(`scalar body is rejected`, func(t *testing.T) {
		_, err := ParsePaged(json.RawMessage(`"nope"`))
		require.NotNil(t, err)
	})
}

func TestPageQuery(t *testing.T) {
	query := PageQuery(3, 100)
	require.Equal(t, "3", query.Get("PageNumber"))
	require.Equal(t, "100", query.Get("PageSize"))
}
