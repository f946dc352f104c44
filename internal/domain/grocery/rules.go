package grocery

// CategoryRule binds one category to the keyword set that claims it.
// Rules are evaluated in slice order; the first match wins, so earlier
// categories take precedence when a name satisfies several keyword sets
// ("coconut milk" must reach canned-goods before dairy's milk keywords
// can claim it, so dairy carries "whole milk" rather than a bare "milk";
// symmetric containment still lets plain "milk" match it).
type CategoryRule struct {
	Category Category
	Keywords []string
}

// SkipRule omits an item entirely when its name contains Keyword, unless
// the name also contains one of the Qualifiers. Used for bare "water":
// recipes list it as an ingredient but nobody buys it.
type SkipRule struct {
	Keyword    string
	Qualifiers []string
}

// RuleSet is the immutable, versioned classification table. It is loaded
// once at process start; every component classifies through the same set.
type RuleSet struct {
	Version string
	Skip    SkipRule
	Rules   []CategoryRule
}

// DefaultRuleSet returns the built-in classification table. The keyword
// lists are seeded from observed grocery vocabulary; precedence follows the
// fixed category order so multi-word names resolve before their generic
// suffixes do.
func DefaultRuleSet() *RuleSet {
	return &RuleSet{
		Version: "2025.3",
		Skip: SkipRule{
			Keyword:    "water",
			Qualifiers: []string{"bottled", "gallon", "sparkling", "coconut"},
		},
		Rules: []CategoryRule{
			{Category: CategoryProduce, Keywords: []string{
				"lettuce", "spinach", "kale", "tomato", "onion", "carrot",
				"celery", "bell pepper", "broccoli", "cauliflower", "cucumber",
				// "apple", "orange" and "grape" are deliberately absent:
				// they would claim "orange juice" before beverages can.
				// Plain apples and oranges land in produce via the default.
				"avocado", "potato", "garlic", "ginger", "banana",
				"lemon", "lime", "strawberr", "blueberr",
				"pineapple", "mango", "cilantro", "parsley", "basil", "thyme",
				"rosemary", "mint", "oregano", "sage", "dill", "mushroom",
				"zucchini", "squash", "eggplant", "cabbage", "asparagus",
				"green beans", "peas", "corn on the cob", "scallion",
				"green onion", "leek", "radish", "beets", "turnip", "parsnip",
				"jalapeno", "coleslaw",
			}},
			{Category: CategoryDairy, Keywords: []string{
				"whole milk", "skim milk", "2% milk", "buttermilk",
				"heavy cream", "sour cream", "cream cheese", "whipped cream",
				"half and half", "cheese", "cheddar", "mozzarella", "parmesan",
				// "salted butter" instead of a bare "butter" for the same
				// reason as milk: "peanut butter" must fall through to
				// dry-goods. Plain "butter" still matches by containment.
				"ricotta", "salted butter", "unsalted butter", "yogurt", "egg",
			}},
			{Category: CategoryDryGoods, Keywords: []string{
				"flour", "sugar", "rice", "pasta", "noodle", "oats", "cereal",
				"quinoa", "couscous", "baking powder", "baking soda", "yeast",
				"cornstarch", "salt", "spice", "seasoning", "cumin", "paprika",
				"chili powder", "garlic powder", "onion powder", "cinnamon",
				"nutmeg", "turmeric", "cardamom", "coriander", "clove",
				"allspice", "bay leaves", "black pepper", "white pepper",
				"cayenne", "red pepper flakes", "vanilla", "extract", "honey",
				"maple syrup", "olive oil", "vegetable oil", "canola oil",
				"coconut oil", "sesame oil", "vinegar", "peanut butter",
				"jelly", "jam", "ketchup", "mustard", "mayonnaise", "tahini",
				"dried",
			}},
			{Category: CategoryCannedGoods, Keywords: []string{
				"canned", "can of", "tomato paste", "tomato sauce", "broth",
				"stock", "beans", "chickpeas", "garbanzo", "lentils",
				"coconut milk", "evaporated milk", "condensed milk", "soup",
				"jarred", "diced tomatoes", "crushed tomatoes",
			}},
			{Category: CategoryPoultry, Keywords: []string{
				"chicken", "turkey", "duck", "cornish hen",
			}},
			{Category: CategoryPork, Keywords: []string{
				"pork", "bacon", "ham", "sausage", "prosciutto", "pancetta",
				"chorizo", "pepperoni", "salami",
			}},
			{Category: CategoryRedMeat, Keywords: []string{
				"beef", "steak", "ribeye", "sirloin", "filet mignon",
				"brisket", "chuck roast", "short ribs", "lamb", "veal",
				"venison",
			}},
			{Category: CategorySeafood, Keywords: []string{
				"fish", "salmon", "tuna", "cod", "halibut", "tilapia",
				"trout", "sea bass", "mahi mahi", "shrimp", "crab", "lobster",
				"scallop", "mussel", "oyster", "clam", "calamari", "octopus",
				"anchov",
			}},
			{Category: CategoryDeli, Keywords: []string{
				"deli", "sliced turkey", "sliced ham", "sliced cheese",
				"lunch meat", "pastrami", "corned beef", "roast beef",
			}},
			{Category: CategoryFrozen, Keywords: []string{
				"frozen", "ice cream", "popsicle", "gelato", "sherbet",
				"sorbet",
			}},
			{Category: CategoryBeverages, Keywords: []string{
				"bottled water", "sparkling water", "coconut water", "water",
				"juice", "soda", "coffee", "tea", "wine", "beer", "kombucha",
				"almond milk", "soy milk", "oat milk", "energy drink",
				"sports drink",
			}},
			{Category: CategorySnacks, Keywords: []string{
				"chips", "pretzel", "popcorn", "nuts", "peanuts", "almonds",
				"cashews", "walnuts", "pecans", "pistachios", "trail mix",
				"granola bar", "protein bar", "candy", "chocolate", "cracker",
			}},
			{Category: CategoryBread, Keywords: []string{
				"bread", "bagel", "muffin", "croissant", "sourdough",
				"baguette", "roll", "bun", "tortilla", "pita", "naan",
				"cake", "cookie", "donut", "pie",
			}},
			{Category: CategoryEthnicFoods, Keywords: []string{
				"salsa", "soy sauce", "sriracha", "fish sauce", "miso",
				"curry", "garam masala", "kimchi", "wasabi", "nori", "mirin",
				"sake", "taco", "ramen", "refried",
			}},
			{Category: CategoryHouseholdGoods, Keywords: []string{
				"paper towel", "toilet paper", "napkin", "tissue", "foil",
				"plastic wrap", "ziplock", "garbage bag", "trash bag",
				"light bulb", "batteries",
			}},
			{Category: CategoryCleaningSupplies, Keywords: []string{
				"detergent", "soap", "cleaner", "bleach", "sponge",
				"disinfectant",
			}},
			{Category: CategoryPets, Keywords: []string{
				"dog", "cat", "pet", "litter", "kibble", "bird seed",
			}},
		},
	}
}
