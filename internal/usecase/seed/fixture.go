package seed

// The demo dataset: one supermarket with a full SVG floor plan, fourteen
// sections bound to SVG elements, and a category/product spread wide
// enough to exercise navigation and search end to end.

const (
	fixtureStoreName    = "SuperMart Central"
	fixtureStoreAddress = "123 Main Street, Downtown"
)

type fixtureSection struct {
	name         string
	color        string
	mapElementID string
}

type fixtureCategory struct {
	name       string
	sectionIdx int
}

type fixtureProduct struct {
	name        string
	price       float64
	categoryIdx int
	description string
}

var fixtureSections = []fixtureSection{
	{"Fresh Produce", "#28a745", "produce-section"},
	{"Beverages", "#17a2b8", "beverages-section"},
	{"Snacks & Chips", "#fd7e14", "snacks-section"},
	{"Cereal & Breakfast", "#ffc107", "cereal-section"},
	{"Canned Goods", "#6c757d", "canned-section"},
	{"Pasta & International", "#e83e8c", "pasta-section"},
	{"Baking & Spices", "#20c997", "baking-section"},
	{"Health & Beauty", "#6f42c1", "health-section"},
	{"Household & Cleaning", "#dc3545", "household-section"},
	{"Pet Supplies", "#795548", "pet-section"},
	{"Fresh Bakery", "#fd7e14", "bakery-section"},
	{"Deli & Meats", "#dc3545", "deli-section"},
	{"Dairy", "#6f42c1", "dairy-section"},
	{"Frozen Foods", "#007bff", "frozen-section"},
}

// Categories inherit their section's color.
var fixtureCategories = []fixtureCategory{
	{"Fresh Fruits", 0},
	{"Vegetables", 0},
	{"Soft Drinks", 1},
	{"Juices", 1},
	{"Chips & Crackers", 2},
	{"Nuts & Candy", 2},
	{"Breakfast Cereals", 3},
	{"Canned Soup", 4},
	{"Pasta", 5},
	{"Baking Essentials", 6},
	{"Personal Care", 7},
	{"Cleaning Supplies", 8},
	{"Pet Food", 9},
	{"Fresh Bread", 10},
	{"Deli Meats", 11},
	{"Milk & Cheese", 12},
	{"Ice Cream", 13},
}

var fixtureProducts = []fixtureProduct{
	{"Fresh Apples", 2.99, 0, "Crispy red apples"},
	{"Bananas", 1.49, 0, "Fresh yellow bananas"},
	{"Carrots", 1.89, 1, "Fresh organic carrots"},
	{"Spinach", 2.49, 1, "Fresh baby spinach"},

	{"Coca Cola", 1.99, 2, "Classic cola drink"},
	{"Bottled Water", 0.99, 2, "Pure spring water"},
	{"Orange Juice", 3.49, 3, "Fresh squeezed orange juice"},
	{"Apple Juice", 2.99, 3, "100% apple juice"},

	{"Potato Chips", 2.49, 4, "Crispy salted chips"},
	{"Chocolate Cookies", 3.99, 4, "Double chocolate chip cookies"},
	{"Mixed Nuts", 5.99, 5, "Roasted mixed nuts"},
	{"Gummy Bears", 1.79, 5, "Fruity gummy candy"},

	{"Corn Flakes", 4.29, 6, "Classic breakfast cereal"},
	{"Granola", 5.49, 6, "Honey oat granola"},

	{"Chicken Soup", 1.89, 7, "Campbell's chicken noodle soup"},
	{"Tomato Sauce", 1.29, 7, "Organic tomato sauce"},

	{"Spaghetti", 1.99, 8, "Italian spaghetti pasta"},
	{"Ramen Noodles", 0.89, 8, "Instant ramen"},

	{"All-Purpose Flour", 2.49, 9, "5lb bag of flour"},
	{"Vanilla Extract", 4.99, 9, "Pure vanilla extract"},

	{"Shampoo", 6.99, 10, "Moisturizing shampoo"},
	{"Toothpaste", 3.49, 10, "Whitening toothpaste"},

	{"Dish Soap", 4.49, 11, "Lemon scented dish soap"},
	{"Paper Towels", 6.99, 11, "Absorbent paper towels"},

	{"Dog Food", 12.99, 12, "Premium dry dog food"},
	{"Cat Treats", 3.99, 12, "Salmon flavored treats"},

	{"Sourdough Bread", 3.99, 13, "Fresh baked sourdough"},
	{"Blueberry Muffins", 4.99, 13, "Pack of 6 muffins"},

	{"Sliced Turkey", 7.99, 14, "Fresh sliced turkey breast"},
	{"Ham", 6.99, 14, "Honey glazed ham"},

	{"Whole Milk", 3.49, 15, "1 gallon whole milk"},
	{"Cheddar Cheese", 4.99, 15, "Sharp cheddar cheese"},

	{"Ice Cream", 5.99, 16, "Vanilla ice cream"},
	{"Frozen Pizza", 4.49, 16, "Pepperoni pizza"},
}

// fixtureLayoutMap is the store floor plan. The rect ids are the map element
// identifiers the sections above bind to.
const fixtureLayoutMap = `<svg viewBox="0 0 1200 800" xmlns="http://www.w3.org/2000/svg">
    <!-- Store Background -->
    <rect width="1200" height="800" fill="#f8f9fa" stroke="#dee2e6" stroke-width="2"/>

    <!-- Entrance Area -->
    <rect x="550" y="750" width="100" height="50" fill="#6c757d" />
    <text x="600" y="775" text-anchor="middle" fill="white" font-size="14" font-weight="bold">ENTRANCE</text>

    <!-- Main Entrance Aisle (Vertical) -->
    <rect x="580" y="650" width="40" height="100" fill="#e9ecef" stroke="#adb5bd" stroke-width="1"/>
    <text x="600" y="700" text-anchor="middle" fill="#6c757d" font-size="10" transform="rotate(-90, 600, 700)">MAIN ENTRANCE</text>

    <!-- Customer Service & Pharmacy (Front Right) -->
    <rect id="service-section" x="650" y="650" width="200" height="80" fill="#17a2b8" opacity="0.7" stroke="#117a8b" stroke-width="3" rx="5"/>
    <text x="750" y="695" text-anchor="middle" fill="white" font-size="12" font-weight="bold">CUSTOMER SERVICE</text>

    <!-- Bakery (Front Left) -->
    <rect id="bakery-section" x="350" y="650" width="200" height="80" fill="#fd7e14" opacity="0.7" stroke="#e55a00" stroke-width="3" rx="5"/>
    <text x="450" y="695" text-anchor="middle" fill="white" font-size="12" font-weight="bold">FRESH BAKERY</text>

    <!-- Produce Section (Front Center-Left) -->
    <rect id="produce-section" x="100" y="500" width="250" height="120" fill="#28a745" opacity="0.7" stroke="#20c997" stroke-width="3" rx="5"/>
    <text x="225" y="570" text-anchor="middle" fill="white" font-size="14" font-weight="bold">FRESH PRODUCE</text>
    <text x="225" y="590" text-anchor="middle" fill="white" font-size="11">Fruits &amp; Vegetables</text>

    <!-- Deli & Meat Counter (Front Right) -->
    <rect id="deli-section" x="850" y="500" width="250" height="120" fill="#dc3545" opacity="0.7" stroke="#c02938" stroke-width="3" rx="5"/>
    <text x="975" y="560" text-anchor="middle" fill="white" font-size="14" font-weight="bold">DELI &amp; MEATS</text>
    <text x="975" y="580" text-anchor="middle" fill="white" font-size="11">Fresh Cut Daily</text>

    <!-- Dairy Section (Back Right) -->
    <rect id="dairy-section" x="950" y="300" width="200" height="150" fill="#6f42c1" opacity="0.7" stroke="#5a2d8c" stroke-width="3" rx="5"/>
    <text x="1050" y="370" text-anchor="middle" fill="white" font-size="12" font-weight="bold">DAIRY</text>
    <text x="1050" y="390" text-anchor="middle" fill="white" font-size="11">Milk, Cheese, Yogurt</text>

    <!-- Frozen Foods (Back Left) -->
    <rect id="frozen-section" x="50" y="300" width="200" height="150" fill="#007bff" opacity="0.7" stroke="#0056b3" stroke-width="3" rx="5"/>
    <text x="150" y="370" text-anchor="middle" fill="white" font-size="12" font-weight="bold">FROZEN FOODS</text>
    <text x="150" y="390" text-anchor="middle" fill="white" font-size="11">Ice Cream &amp; Frozen</text>

    <!-- Aisle 1: Beverages -->
    <rect id="beverages-section" x="300" y="400" width="150" height="80" fill="#17a2b8" opacity="0.7" stroke="#117a8b" stroke-width="3" rx="5"/>
    <text x="375" y="430" text-anchor="middle" fill="white" font-size="10" font-weight="bold">AISLE 1</text>
    <text x="375" y="450" text-anchor="middle" fill="white" font-size="11">BEVERAGES</text>
    <text x="375" y="465" text-anchor="middle" fill="white" font-size="9">Soda, Juice, Water</text>

    <!-- Aisle 2: Snacks & Chips -->
    <rect id="snacks-section" x="480" y="400" width="150" height="80" fill="#fd7e14" opacity="0.7" stroke="#e55a00" stroke-width="3" rx="5"/>
    <text x="555" y="430" text-anchor="middle" fill="white" font-size="10" font-weight="bold">AISLE 2</text>
    <text x="555" y="450" text-anchor="middle" fill="white" font-size="11">SNACKS</text>
    <text x="555" y="465" text-anchor="middle" fill="white" font-size="9">Chips, Crackers, Nuts</text>

    <!-- Aisle 3: Cereal & Breakfast -->
    <rect id="cereal-section" x="660" y="400" width="150" height="80" fill="#ffc107" opacity="0.7" stroke="#d39e00" stroke-width="3" rx="5"/>
    <text x="735" y="430" text-anchor="middle" fill="white" font-size="10" font-weight="bold">AISLE 3</text>
    <text x="735" y="450" text-anchor="middle" fill="white" font-size="11">CEREAL</text>
    <text x="735" y="465" text-anchor="middle" fill="white" font-size="9">Breakfast Items</text>

    <!-- Aisle 4: Canned Goods -->
    <rect id="canned-section" x="300" y="250" width="150" height="80" fill="#6c757d" opacity="0.7" stroke="#5a6268" stroke-width="3" rx="5"/>
    <text x="375" y="280" text-anchor="middle" fill="white" font-size="10" font-weight="bold">AISLE 4</text>
    <text x="375" y="300" text-anchor="middle" fill="white" font-size="11">CANNED GOODS</text>
    <text x="375" y="315" text-anchor="middle" fill="white" font-size="9">Soup, Sauce, Beans</text>

    <!-- Aisle 5: Pasta & International -->
    <rect id="pasta-section" x="480" y="250" width="150" height="80" fill="#e83e8c" opacity="0.7" stroke="#d91a72" stroke-width="3" rx="5"/>
    <text x="555" y="280" text-anchor="middle" fill="white" font-size="10" font-weight="bold">AISLE 5</text>
    <text x="555" y="300" text-anchor="middle" fill="white" font-size="11">PASTA</text>
    <text x="555" y="315" text-anchor="middle" fill="white" font-size="9">International Foods</text>

    <!-- Aisle 6: Baking & Spices -->
    <rect id="baking-section" x="660" y="250" width="150" height="80" fill="#20c997" opacity="0.7" stroke="#17a085" stroke-width="3" rx="5"/>
    <text x="735" y="280" text-anchor="middle" fill="white" font-size="10" font-weight="bold">AISLE 6</text>
    <text x="735" y="300" text-anchor="middle" fill="white" font-size="11">BAKING</text>
    <text x="735" y="315" text-anchor="middle" fill="white" font-size="9">Flour, Sugar, Spices</text>

    <!-- Aisle 7: Health & Beauty -->
    <rect id="health-section" x="300" y="100" width="150" height="80" fill="#6f42c1" opacity="0.7" stroke="#5a2d8c" stroke-width="3" rx="5"/>
    <text x="375" y="130" text-anchor="middle" fill="white" font-size="10" font-weight="bold">AISLE 7</text>
    <text x="375" y="150" text-anchor="middle" fill="white" font-size="11">HEALTH &amp; BEAUTY</text>
    <text x="375" y="165" text-anchor="middle" fill="white" font-size="9">Personal Care</text>

    <!-- Aisle 8: Household & Cleaning -->
    <rect id="household-section" x="480" y="100" width="150" height="80" fill="#dc3545" opacity="0.7" stroke="#c02938" stroke-width="3" rx="5"/>
    <text x="555" y="130" text-anchor="middle" fill="white" font-size="10" font-weight="bold">AISLE 8</text>
    <text x="555" y="150" text-anchor="middle" fill="white" font-size="11">HOUSEHOLD</text>
    <text x="555" y="165" text-anchor="middle" fill="white" font-size="9">Cleaning Supplies</text>

    <!-- Pet Supplies (Back Center) -->
    <rect id="pet-section" x="660" y="100" width="150" height="80" fill="#795548" opacity="0.7" stroke="#5d4037" stroke-width="3" rx="5"/>
    <text x="735" y="130" text-anchor="middle" fill="white" font-size="10" font-weight="bold">PET SUPPLIES</text>
    <text x="735" y="150" text-anchor="middle" fill="white" font-size="11">Food &amp; Accessories</text>

    <!-- Horizontal Aisles -->
    <rect x="280" y="190" width="550" height="30" fill="#e9ecef" stroke="#adb5bd" stroke-width="1"/>
    <rect x="280" y="340" width="550" height="30" fill="#e9ecef" stroke="#adb5bd" stroke-width="1"/>
    <rect x="280" y="490" width="550" height="30" fill="#e9ecef" stroke="#adb5bd" stroke-width="1"/>

    <!-- Vertical Aisles -->
    <rect x="270" y="90" width="30" height="430" fill="#e9ecef" stroke="#adb5bd" stroke-width="1"/>
    <rect x="460" y="90" width="30" height="430" fill="#e9ecef" stroke="#adb5bd" stroke-width="1"/>
    <rect x="640" y="90" width="30" height="430" fill="#e9ecef" stroke="#adb5bd" stroke-width="1"/>
    <rect x="820" y="90" width="30" height="430" fill="#e9ecef" stroke="#adb5bd" stroke-width="1"/>

    <!-- Direction Arrows for Navigation -->
    <defs>
        <marker id="arrowhead" markerWidth="10" markerHeight="7" refX="9" refY="3.5" orient="auto">
            <polygon points="0 0, 10 3.5, 0 7" fill="#28a745" />
        </marker>
    </defs>

    <!-- Store Labels -->
    <text x="600" y="30" text-anchor="middle" fill="#343a40" font-size="18" font-weight="bold">SuperMart Central - Complex Layout</text>
    <text x="50" y="60" fill="#6c757d" font-size="12">&#8592; Frozen Foods</text>
    <text x="1050" y="60" fill="#6c757d" font-size="12">Dairy &#8594;</text>
</svg>`
