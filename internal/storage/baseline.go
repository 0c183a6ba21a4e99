package storage

import "junkdealer/internal/domain"

// DemoPassword is the plaintext password of the seeded demo user.
const DemoPassword = "password123"

func strp(s string) *string { return &s }
func idp(id int64) *int64   { return &id }

func category(id int64, parent *int64, name, desc, icon, price string) domain.Category {
	return domain.Category{
		ID:           id,
		Name:         name,
		Description:  strp(desc),
		Icon:         strp(icon),
		ParentID:     parent,
		CurrentPrice: strp(price),
		PriceUnit:    "kg",
		IsActive:     true,
	}
}

// BaselineCategories is the recyclable-material taxonomy every fresh store starts with.
// Metals (2) and Electronics (1) are the only parents.
func BaselineCategories() []domain.Category {
	return []domain.Category{
		category(1, nil, "Electronics", "Phones, laptops, circuit boards", "fas fa-microchip", "450.00"),
		category(2, nil, "Metals", "Copper, aluminum, steel", "fas fa-coins", "280.00"),
		category(3, nil, "Plastic", "Bottles, containers, packaging", "fas fa-leaf", "15.00"),
		category(4, nil, "Paper", "Newspapers, books, cardboard", "fas fa-newspaper", "12.00"),
		category(5, idp(2), "Copper", "Pure copper materials", "fas fa-coins", "620.00"),
		category(6, idp(2), "Aluminum", "Aluminum cans and sheets", "fas fa-coins", "180.00"),
		category(7, idp(2), "Steel", "Iron and steel materials", "fas fa-coins", "45.00"),
		category(8, idp(2), "Brass", "Brass materials and fittings", "fas fa-coins", "350.00"),
		category(9, idp(1), "Batteries", "Old batteries and cells", "fas fa-battery-empty", "85.00"),
		category(10, nil, "Glass", "Glass bottles and containers", "fas fa-wine-bottle", "8.00"),
		category(11, nil, "Textiles", "Fabric and clothing waste", "fas fa-tshirt", "25.00"),
		category(12, nil, "Wood", "Wood scraps and furniture", "fas fa-tree", "18.00"),
		category(13, nil, "Rubber", "Rubber materials and tires", "fas fa-circle", "32.00"),
		category(14, idp(1), "Cables", "Electric cables and wires", "fas fa-plug", "125.00"),
		category(15, idp(1), "Appliances", "Old appliances and machines", "fas fa-tv", "95.00"),
	}
}

func BaselineDealers() []domain.Dealer {
	return []domain.Dealer{
		{ID: 1, Name: "Green Recyclers", Address: "123 Main St, Mumbai", Phone: "+91 9876543210",
			Email: strp("contact@greenrecyclers.com"), City: "Mumbai", Rating: strp("4.50"), IsActive: true,
			Specialties: []int64{1, 2}},
		{ID: 2, Name: "EcoWaste Solutions", Address: "456 Park Ave, Delhi", Phone: "+91 9876543211",
			Email: strp("info@ecowaste.com"), City: "Delhi", Rating: strp("4.30"), IsActive: true,
			Specialties: []int64{2, 3, 4}},
		{ID: 3, Name: "Metal Masters", Address: "789 Industrial Rd, Bangalore", Phone: "+91 9876543212",
			Email: strp("sales@metalmasters.com"), City: "Bangalore", Rating: strp("4.70"), IsActive: true,
			Specialties: []int64{2, 5, 6, 7}},
	}
}

// BaselineProducts returns the demo listings, all sold by sellerID.
// CreatedAt is left zero; the caller stamps it.
func BaselineProducts(sellerID int64) []domain.Product {
	img := []string{"/api/placeholder/400/300"}
	mk := func(id int64, title, desc, price, cat, cond, loc string) domain.Product {
		return domain.Product{
			ID: id, SellerID: sellerID, Title: title, Description: strp(desc), Price: price,
			Category: cat, Condition: cond, Images: append([]string(nil), img...), Location: strp(loc),
			IsAvailable: true, IsRecycled: true,
		}
	}
	return []domain.Product{
		mk(1, "Reclaimed Wood Table", "Beautiful dining table made from 100% recycled wood", "8999.00", "furniture", "like-new", "Mumbai"),
		mk(2, "Eco Tote Bag", "Stylish tote bag made from recycled plastic bottles", "499.00", "accessories", "new", "Mumbai"),
		mk(3, "Metal Art Sculpture", "Handcrafted decorative sculpture from recycled metal", "2599.00", "decor", "new", "Delhi"),
		mk(4, "Recycled Planters", "Set of planters made from recycled plastic", "799.00", "garden", "new", "Bangalore"),
	}
}

// DemoUser is the seeded account; hash is the bcrypt hash of DemoPassword.
func DemoUser(hash string) domain.NewUser {
	return domain.NewUser{
		Username:  "demo_user",
		Email:     "demo@example.com",
		Hash:      hash,
		FirstName: "Demo",
		LastName:  "User",
		Phone:     strp("+91 9876543213"),
		Address:   strp("Demo Address"),
		City:      strp("Mumbai"),
	}
}
