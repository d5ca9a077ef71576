package utils_test

import (
	"testing"

	"cinema-tickets/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 7, utils.ParseInt("7", 1))
	assert.Equal(t, 1, utils.ParseInt("", 1))
	assert.Equal(t, 1, utils.ParseInt("abc", 1))
}

func TestParseIDList(t *testing.T) {
	ids, err := utils.ParseIDList("1,4,7")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 4, 7}, ids)

	ids, err = utils.ParseIDList(" 2 , 3 ")
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, ids)

	_, err = utils.ParseIDList("1,abc")
	assert.Error(t, err)

	_, err = utils.ParseIDList("1,,3")
	assert.Error(t, err)
}
