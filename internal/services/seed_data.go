// internal/services/seed_data.go
package services

type seedUser struct {
	Email    string
	FullName string
	Password string
	Roles    []string
}

var seedUsers = []seedUser{
	{
		Email:    "admin@catalog.local",
		FullName: "Store Administrator",
		Password: "Admin123!",
		Roles:    []string{"admin", "user"},
	},
	{
		Email:    "demo@catalog.local",
		FullName: "Demo User",
		Password: "Demo1234!",
		Roles:    []string{"user"},
	},
}

var seedProducts = []CreateProductRequest{
	{
		Title:       "Men's Chill Crew Neck Sweatshirt",
		Price:       75,
		Description: "Introducing the softest crew neck sweatshirt in the collection, made from recycled cotton fleece.",
		Stock:       7,
		Tags:        []string{"sweatshirt"},
		Images:      []string{"1740176-00-A_0_2000.jpg", "1740176-00-A_1.jpg"},
	},
	{
		Title:       "Men's Quilted Shirt Jacket",
		Price:       200,
		Description: "A lightweight quilted jacket with an asymmetric zipper and double stitching details.",
		Stock:       5,
		Tags:        []string{"jacket"},
		Images:      []string{"1740507-00-A_0_2000.jpg", "1740507-00-A_1.jpg"},
	},
	{
		Title:       "Men's Raven Lightweight Zip Up Bomber Jacket",
		Price:       130,
		Description: "A bomber jacket made from breathable stretch fabric with an added moisture-wicking interior.",
		Stock:       10,
		Tags:        []string{"shirt"},
		Images:      []string{"1740250-00-A_0_2000.jpg", "1740250-00-A_1.jpg"},
	},
	{
		Title:       "Women's Cropped Puffer Jacket",
		Price:       225,
		Description: "A cropped puffer jacket with a unique quilt pattern and matte finish.",
		Stock:       85,
		Tags:        []string{"hoodie"},
		Images:      []string{"1740535-00-A_0_2000.jpg", "1740535-00-A_1.jpg"},
	},
	{
		Title:       "Women's Chill Half Zip Cropped Hoodie",
		Price:       130,
		Description: "A soft fleece hoodie with a cropped silhouette and an elastic hem.",
		Stock:       10,
		Tags:        []string{"hoodie"},
		Images:      []string{"1740226-00-A_0_2000.jpg", "1740226-00-A_1.jpg"},
	},
	{
		Title:       "Kids Cyberquad Bomber Jacket",
		Price:       65,
		Description: "A graphic bomber jacket for the younger riders, with a glow-in-the-dark interior lining.",
		Stock:       10,
		Tags:        []string{"shirt"},
		Images:      []string{"1742702-00-A_0_2000.jpg", "1742702-00-A_1.jpg"},
	},
	{
		Title:       "3D Large Wordmark Pullover Hoodie",
		Price:       70,
		Description: "A cotton-polyester pullover hoodie with a silicone-printed wordmark across the chest.",
		Stock:       15,
		Tags:        []string{"hoodie"},
		Images:      []string{"1740051-00-A_0_2000.jpg", "1740051-00-A_1.jpg"},
	},
	{
		Title:       "Chill Pullover Hoodie",
		Price:       130,
		Description: "The chill pullover hoodie has a premium, heavyweight exterior and a soft fleece interior.",
		Stock:       10,
		Tags:        []string{"hoodie"},
		Images:      []string{"1740111-00-A_0_2000.jpg", "1740111-00-A_1.jpg"},
	},
}
