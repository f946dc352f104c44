package grocery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyKnownSections(t *testing.T) {
	classifier := NewClassifier(nil, nil)

	tests := []struct {
		name string
		want Category
	}{
		{"garlic", CategoryProduce},
		{"2 ripe avocados", CategoryProduce},
		{"baby spinach", CategoryProduce},
		{"eggplant", CategoryProduce},
		{"corn on the cob", CategoryProduce},
		{"corn", CategoryProduce},

		{"milk", CategoryDairy},
		{"whole milk", CategoryDairy},
		{"large eggs", CategoryDairy},
		{"shredded cheddar", CategoryDairy},
		{"unsalted butter", CategoryDairy},
		{"butter", CategoryDairy},

		{"all-purpose flour", CategoryDryGoods},
		{"peanut butter", CategoryDryGoods},
		{"salt", CategoryDryGoods},
		{"smoked paprika", CategoryDryGoods},
		{"vanilla extract", CategoryDryGoods},
		{"olive oil", CategoryDryGoods},

		{"coconut milk", CategoryCannedGoods},
		{"chicken broth", CategoryCannedGoods},
		{"black beans", CategoryCannedGoods},
		{"canned tuna", CategoryCannedGoods},

		{"chicken breast", CategoryPoultry},
		{"ground turkey", CategoryPoultry},
		{"thick cut bacon", CategoryPork},
		{"ground beef", CategoryRedMeat},
		{"lamb chops", CategoryRedMeat},
		{"salmon fillet", CategorySeafood},
		{"deli meat", CategoryDeli},

		{"frozen peas", CategoryFrozen},
		{"ice cream", CategoryFrozen},

		{"orange juice", CategoryBeverages},
		{"green tea", CategoryBeverages},
		{"almond milk", CategoryBeverages},
		{"coconut water", CategoryBeverages},

		{"tortilla chips", CategorySnacks},
		{"dark chocolate", CategorySnacks},
		{"sourdough bread", CategoryBread},
		{"hamburger buns", CategoryBread},
		{"salsa verde", CategoryEthnicFoods},
		{"red curry paste", CategoryEthnicFoods},

		{"paper towels", CategoryHouseholdGoods},
		{"dish soap", CategoryCleaningSupplies},
		{"cat litter", CategoryPets},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.name))
		})
	}
}

func TestClassifyWaterSkipRule(t *testing.T) {
	classifier := NewClassifier(nil, nil)

	// Bare water is omitted; qualified water is a purchasable beverage.
	assert.Equal(t, CategorySkip, classifier.Classify("water"))
	assert.Equal(t, CategorySkip, classifier.Classify("cold water"))
	assert.Equal(t, CategorySkip, classifier.Classify("Water"))

	assert.Equal(t, CategoryBeverages, classifier.Classify("bottled water"))
	assert.Equal(t, CategoryBeverages, classifier.Classify("sparkling water"))
	assert.Equal(t, CategoryBeverages, classifier.Classify("coconut water"))
	assert.Equal(t, CategoryBeverages, classifier.Classify("gallon of water"))

	// Word-boundary match: watermelon is not water.
	assert.NotEqual(t, CategorySkip, classifier.Classify("watermelon"))
}

func TestClassifyPrecedenceOrder(t *testing.T) {
	classifier := NewClassifier(nil, nil)

	// Earlier categories claim names that would also satisfy later ones.
	assert.Equal(t, CategoryProduce, classifier.Classify("eggplant"),
		"produce must claim eggplant before dairy's egg keyword")
	assert.Equal(t, CategoryCannedGoods, classifier.Classify("coconut milk"),
		"canned-goods must claim coconut milk; dairy keywords must not")
	assert.Equal(t, CategoryDryGoods, classifier.Classify("peanut butter"),
		"dry-goods must claim peanut butter; dairy's butter keywords must not")
	assert.Equal(t, CategoryCannedGoods, classifier.Classify("chicken broth"),
		"canned-goods precedes poultry")
	assert.Equal(t, CategoryRedMeat, classifier.Classify("steak"),
		"red-meat precedes beverages' tea keyword")
}

func TestClassifyDefaultsToProduce(t *testing.T) {
	classifier := NewClassifier(nil, nil)

	assert.Equal(t, CategoryProduce, classifier.Classify("dragonfruit"))
	assert.Equal(t, CategoryProduce, classifier.Classify("xyzzy"))
}

func TestClassifyDeterministic(t *testing.T) {
	classifier := NewClassifier(nil, nil)

	names := []string{"water", "bottled water", "coconut milk", "eggs",
		"Ground Beef", "dragonfruit", ""}
	for _, name := range names {
		first := classifier.Classify(name)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, classifier.Classify(name), name)
		}
	}
}

func TestClassifyAlwaysYieldsValidCategory(t *testing.T) {
	classifier := NewClassifier(nil, nil)

	names := []string{
		"water", "bottled water", "coconut milk", "eggs", "tofu",
		"mystery ingredient", "Sliced Ham", "FROZEN PIZZA", "sea salt",
		"a", "...", "12 oz",
	}
	for _, name := range names {
		category := classifier.Classify(name)
		assert.True(t, category.IsValid(), "classify(%q) = %q", name, category)
	}
}

func TestRuleSetVersioned(t *testing.T) {
	rules := DefaultRuleSet()
	require.NotEmpty(t, rules.Version)
	require.NotEmpty(t, rules.Rules)

	classifier := NewClassifier(rules, nil)
	assert.Equal(t, rules.Version, classifier.RulesVersion())
}

func TestContainsEither(t *testing.T) {
	assert.True(t, ContainsEither("large eggs", "eggs"))
	assert.True(t, ContainsEither("eggs", "large eggs"))
	assert.True(t, ContainsEither("Milk", "whole milk"))
	assert.False(t, ContainsEither("flour", "sugar"))
	assert.False(t, ContainsEither("", "eggs"))
	assert.False(t, ContainsEither("eggs", " "))
}
