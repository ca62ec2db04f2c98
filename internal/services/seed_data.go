package services

import "tienda/internal/models"

// Static fixture data for the seeder. Passwords are stored here in plain
// text and hashed at insert time.

type seedUser struct {
	email    string
	password string
	fullName string
	roles    []string
}

var seedUsers = []seedUser{
	{
		email:    "admin@tienda.com",
		password: "Abc123456",
		fullName: "Admin Tienda",
		roles:    []string{models.RoleAdmin, models.RoleUser},
	},
	{
		email:    "cliente@tienda.com",
		password: "Abc123456",
		fullName: "Cliente Tienda",
		roles:    []string{models.RoleUser},
	},
}

var seedProducts = []CreateProductInput{
	{
		Title:       "Men's Chill Crew Neck Sweatshirt",
		Price:       75,
		Description: "Introducing the softest crew neck in the collection, with a double layer knit and durable ribbed trim.",
		Stock:       7,
		Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
		Gender:      "men",
		Tags:        []string{"sweatshirt"},
		Images:      []string{"1740176-00-A_0_2000.jpg", "1740176-00-A_1.jpg"},
	},
	{
		Title:       "Men's Quilted Shirt Jacket",
		Price:       200,
		Description: "A lightweight quilted jacket with an insulated liner for winter weather.",
		Stock:       5,
		Sizes:       []string{"XS", "S", "M", "XL", "XXL"},
		Gender:      "men",
		Tags:        []string{"jacket"},
		Images:      []string{"1740507-00-A_0_2000.jpg", "1740507-00-A_1.jpg"},
	},
	{
		Title:       "Women's Strap Tee",
		Price:       30,
		Description: "A slim fit tee with a crew neckline and raw hem sleeves.",
		Stock:       10,
		Sizes:       []string{"XS", "S", "M", "L"},
		Gender:      "women",
		Tags:        []string{"shirt"},
		Images:      []string{"1740280-00-A_0_2000.jpg", "1740280-00-A_1.jpg"},
	},
	{
		Title:       "Women's Raven Joggers",
		Price:       100,
		Description: "French terry joggers with a relaxed leg and ribbed cuffs.",
		Stock:       162,
		Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
		Gender:      "women",
		Tags:        []string{"trousers"},
		Images:      []string{"1740270-00-A_0_2000.jpg", "1740270-00-A_1.jpg"},
	},
	{
		Title:       "Kids Cyberquad Bomber Jacket",
		Price:       65,
		Description: "A water-resistant bomber jacket with a quilted liner and graphic interior taping.",
		Stock:       10,
		Sizes:       []string{"XS", "S", "M"},
		Gender:      "kid",
		Tags:        []string{"jacket"},
		Images:      []string{"1742702-00-A_0_2000.jpg", "1742702-00-A_1.jpg"},
	},
	{
		Title:       "Unisex 3D Large Wordmark Pullover Hoodie",
		Price:       70,
		Description: "A fleece pullover hoodie with an oversized wordmark across the chest.",
		Stock:       15,
		Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
		Gender:      "unisex",
		Tags:        []string{"hoodie"},
		Images:      []string{"1740051-00-A_0_2000.jpg", "1740051-00-A_1.jpg"},
	},
}
