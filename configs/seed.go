package configs

import (
	"log"

	"github.com/TarunBali/menu-magic-mobile-dine/entity"
	"golang.org/x/crypto/bcrypt"
)

// สร้าง staff ครั้งแรก (admin/admin123 for the demo)
func SeedStaff(username, password string) error {
	db := DB()

	var count int64
	db.Model(&entity.Staff{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		log.Println("ℹ️ staff already exists:", username)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	staff := entity.Staff{
		Username: username,
		Password: string(hash),
		Role:     "admin",
	}
	return db.Create(&staff).Error
}

// Seed the static menu catalog. The catalog is read-only at runtime.
func SeedMenu() error {
	db := DB()

	categories := []entity.MenuCategory{
		{Slug: "starters", Name: "Starters"},
		{Slug: "mains", Name: "Main Course"},
		{Slug: "breads", Name: "Breads"},
		{Slug: "desserts", Name: "Desserts"},
		{Slug: "beverages", Name: "Beverages"},
	}
	for _, c := range categories {
		if err := db.FirstOrCreate(&entity.MenuCategory{}, entity.MenuCategory{Slug: c.Slug, Name: c.Name}).Error; err != nil {
			return err
		}
	}

	items := []entity.MenuItem{
		{Name: "Paneer Tikka", Description: "Char-grilled cottage cheese with mint chutney", Price: 220, Image: "/images/paneer-tikka.jpg", Category: "starters", IsVegetarian: true, IsSpicy: true},
		{Name: "Chicken 65", Description: "South Indian fried chicken, curry leaves", Price: 260, Image: "/images/chicken-65.jpg", Category: "starters", IsSpicy: true},
		{Name: "Veg Spring Rolls", Description: "Crispy rolls with sweet chilli dip", Price: 180, Image: "/images/spring-rolls.jpg", Category: "starters", IsVegetarian: true},
		{Name: "Butter Chicken", Description: "Tandoori chicken in tomato-butter gravy", Price: 340, Image: "/images/butter-chicken.jpg", Category: "mains"},
		{Name: "Dal Makhani", Description: "Slow-cooked black lentils", Price: 250, Image: "/images/dal-makhani.jpg", Category: "mains", IsVegetarian: true},
		{Name: "Hyderabadi Biryani", Description: "Fragrant basmati rice, saffron, fried onion", Price: 320, Image: "/images/biryani.jpg", Category: "mains", IsSpicy: true},
		{Name: "Palak Paneer", Description: "Cottage cheese in spinach gravy", Price: 270, Image: "/images/palak-paneer.jpg", Category: "mains", IsVegetarian: true},
		{Name: "Butter Naan", Description: "Tandoor-baked, brushed with butter", Price: 60, Image: "/images/naan.jpg", Category: "breads", IsVegetarian: true},
		{Name: "Garlic Naan", Description: "Naan topped with garlic and coriander", Price: 75, Image: "/images/garlic-naan.jpg", Category: "breads", IsVegetarian: true},
		{Name: "Gulab Jamun", Description: "Warm milk dumplings in rose syrup", Price: 120, Image: "/images/gulab-jamun.jpg", Category: "desserts", IsVegetarian: true},
		{Name: "Kulfi Falooda", Description: "Saffron kulfi with vermicelli", Price: 150, Image: "/images/kulfi.jpg", Category: "desserts", IsVegetarian: true},
		{Name: "Masala Chai", Description: "Spiced milk tea", Price: 50, Image: "/images/chai.jpg", Category: "beverages", IsVegetarian: true},
		{Name: "Sweet Lassi", Description: "Churned yogurt, cardamom", Price: 90, Image: "/images/lassi.jpg", Category: "beverages", IsVegetarian: true},
	}
	for _, it := range items {
		row := it
		if err := db.Where("name = ?", it.Name).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}

	log.Println("✅ Menu catalog seeded")
	return nil
}
