package request_test

import (
	"testing"

	"cinema-tickets/internal/dto/request"

	"github.com/stretchr/testify/assert"
)

func TestPaginatedRequestLimit(t *testing.T) {
	assert.Equal(t, request.DefaultPageSize, request.PaginatedRequest{}.Limit())
	assert.Equal(t, request.DefaultPageSize, request.PaginatedRequest{PageSize: -5}.Limit())
	assert.Equal(t, 25, request.PaginatedRequest{PageSize: 25}.Limit())
	assert.Equal(t, request.MaxPageSize, request.PaginatedRequest{PageSize: 100}.Limit())
	assert.Equal(t, request.MaxPageSize, request.PaginatedRequest{PageSize: 101}.Limit())
	assert.Equal(t, request.MaxPageSize, request.PaginatedRequest{PageSize: 5000}.Limit())
}

func TestPaginatedRequestOffset(t *testing.T) {
	assert.Equal(t, 0, request.PaginatedRequest{Page: 0}.Offset())
	assert.Equal(t, 0, request.PaginatedRequest{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, 10, request.PaginatedRequest{Page: 2, PageSize: 10}.Offset())
	assert.Equal(t, 300, request.PaginatedRequest{Page: 4, PageSize: 100}.Offset())
}
