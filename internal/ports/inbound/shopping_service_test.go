package inbound

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrysage/v2/internal/domain/grocery"
	"github.com/pantrysage/v2/internal/domain/shopping"
)

func TestGroupedItemsFollowsAisleOrder(t *testing.T) {
	dto := &ShoppingListDTO{
		Items: []shopping.ListItem{
			{Item: "cheddar", Category: grocery.CategoryDairy},
			{Item: "apples", Category: grocery.CategoryProduce},
			{Item: "milk", Category: grocery.CategoryDairy},
			{Item: "spinach", Category: grocery.CategoryProduce},
		},
	}

	groups := dto.GroupedItems()

	require.Len(t, groups, 2)
	assert.Equal(t, string(grocery.CategoryProduce), groups[0].Category)
	assert.Equal(t, grocery.CategoryProduce.DisplayName(), groups[0].Label)
	assert.Equal(t, string(grocery.CategoryDairy), groups[1].Category)

	// List order survives within a section.
	require.Len(t, groups[1].Items, 2)
	assert.Equal(t, "cheddar", groups[1].Items[0].Item)
	assert.Equal(t, "milk", groups[1].Items[1].Item)
}

func TestGroupedItemsEmptyList(t *testing.T) {
	dto := &ShoppingListDTO{}
	assert.Empty(t, dto.GroupedItems())
}
