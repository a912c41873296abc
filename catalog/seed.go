package catalog

import "storefront/domain"

var seedProducts = []domain.Product{
	{
		ID:          1,
		Name:        "iPhone 15 Pro",
		Price:       999.99,
		Description: "Latest Apple iPhone with advanced camera system and A17 Pro chip",
		Image:       "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/iphone-15-pro-black-titanium-select?wid=800&hei=800&fmt=jpeg&qlt=90&.v=1692875267993",
		Category:    "Smartphones",
		Stock:       50,
		Rating:      4.8,
	},
	{
		ID:          2,
		Name:        "MacBook Pro 16",
		Price:       2499.99,
		Description: "Powerful laptop with M2 Pro chip for professional use",
		Image:       "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/mbp16-spacegray-select-202301?wid=800&hei=800&fmt=jpeg&qlt=90&.v=1671304673202",
		Category:    "Laptops",
		Stock:       30,
		Rating:      4.9,
	},
	{
		ID:          3,
		Name:        "PlayStation 5",
		Price:       499.99,
		Description: "Next-gen gaming console with stunning graphics and fast loading",
		Image:       "https://gmedia.playstation.com/is/image/SIEPDC/ps5-product-thumbnail-01-en-14sep21",
		Category:    "Gaming",
		Stock:       25,
		Rating:      4.7,
	},
	{
		ID:          4,
		Name:        "Samsung QLED 4K TV",
		Price:       1299.99,
		Description: "65-inch 4K Smart TV with Quantum HDR and Alexa built-in",
		Image:       "https://images.samsung.com/is/image/samsung/p6pim/uk/qe65q60bauxxu/gallery/uk-qled-q60b-qe65q60bauxxu-531504744?$650_519_PNG$",
		Category:    "TVs",
		Stock:       15,
		Rating:      4.6,
	},
	{
		ID:          5,
		Name:        "iPad Air",
		Price:       599.99,
		Description: "Versatile tablet with M1 chip and stunning Liquid Retina display",
		Image:       "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/ipad-air-select-wifi-blue-202203?wid=800&hei=800&fmt=jpeg&qlt=90&.v=1645065732688",
		Category:    "Tablets",
		Stock:       40,
		Rating:      4.8,
	},
	{
		ID:          6,
		Name:        "Sony WH-1000XM4",
		Price:       349.99,
		Description: "Premium wireless noise-cancelling headphones",
		Image:       "https://electronics.sony.com/image/5d02da5df552836db894cad8e2a0e804?fmt=png-alpha&wid=800&hei=800",
		Category:    "Audio",
		Stock:       35,
		Rating:      4.9,
	},
	{
		ID:          7,
		Name:        "Nintendo Switch OLED",
		Price:       349.99,
		Description: "Hybrid gaming console with vibrant OLED display",
		Image:       "https://assets.nintendo.com/image/upload/f_auto/q_auto/dpr_2.0/c_scale,w_400/ncom/en_US/switch/site-design-update/hardware/switch/nintendo-switch-oled-model-white-set/gallery/image01",
		Category:    "Gaming",
		Stock:       20,
		Rating:      4.7,
	},
	{
		ID:          8,
		Name:        "Canon EOS R6",
		Price:       2499.99,
		Description: "Professional mirrorless camera with 20MP full-frame sensor",
		Image:       "https://static.bhphoto.com/images/images500x500/canon_eos_r6_mirrorless_digital_1594281159_1547010.jpg",
		Category:    "Cameras",
		Stock:       10,
		Rating:      4.8,
	},
	{
		ID:          9,
		Name:        "Samsung Galaxy Watch 5",
		Price:       279.99,
		Description: "Advanced smartwatch with health monitoring features",
		Image:       "https://images.samsung.com/is/image/samsung/p6pim/uk/2208/gallery/uk-galaxy-watch5-40mm-sm-r900nzsaeua-533187693?$650_519_PNG$",
		Category:    "Wearables",
		Stock:       45,
		Rating:      4.6,
	},
	{
		ID:          10,
		Name:        "Dell XPS 13",
		Price:       1299.99,
		Description: "Ultra-portable laptop with InfinityEdge display",
		Image:       "https://i.dell.com/is/image/DellContent/content/dam/ss2/product-images/dell-client-products/notebooks/xps-notebooks/xps-13-9315/media-gallery/notebook-xps-9315-nt-blue-gallery-1.psd?fmt=png-alpha&pscan=auto&scl=1&wid=800&hei=800&qlt=100,1&resMode=sharp2&size=800,800&chrss=full",
		Category:    "Laptops",
		Stock:       25,
		Rating:      4.7,
	},
}

// NewDefault returns the built-in storefront catalog.
func NewDefault() *Catalog {
	c, err := New(seedProducts...)
	if err != nil {
		panic("catalog: invalid seed data: " + err.Error())
	}
	return c
}
