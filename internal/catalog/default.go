package catalog

import "oro/internal/models"

const img = "https://images.unsplash.com/"

// Default returns the built-in sample catalog of retailer products.
func Default() []models.Product {
	return []models.Product{
		{ID: "hm1", Title: "H&M Oversized Blazer", Price: 49.99, Tags: []string{"blazer", "oversized", "casual", "navy", "hm", "affordable"}, Shop: "H&M",
			Image:        img + "photo-1507003211169-0a1dd7228f2d?w=300&h=400&fit=crop",
			AffiliateURL: "https://www2.hm.com/en_us/productpage.0000000000000000.html?ref=capsule", EthicsFlags: []string{"conscious"}, Category: "outerwear", Color: "navy",
			Description: "Relaxed-fit blazer in woven fabric with notched lapels and front buttons."},
		{ID: "hm2", Title: "H&M Ribbed Tank Top", Price: 9.99, Tags: []string{"tank", "basic", "ribbed", "white", "casual", "hm"}, Shop: "H&M",
			Image:        img + "photo-1594633313593-bab3825d0caf?w=300&h=400&fit=crop",
			AffiliateURL: "https://www2.hm.com/en_us/productpage.0000000000000001.html?ref=capsule", EthicsFlags: []string{"organic-cotton"}, Category: "tops", Color: "white",
			Description: "Fitted tank top in soft ribbed jersey made from organic cotton."},
		{ID: "hm3", Title: "H&M Wide Trousers", Price: 29.99, Tags: []string{"trousers", "wide", "relaxed", "beige", "casual", "hm"}, Shop: "H&M",
			Image:        img + "photo-1594633313593-bab3825d0caf?w=300&h=400&fit=crop",
			AffiliateURL: "https://www2.hm.com/en_us/productpage.0000000000000002.html?ref=capsule", EthicsFlags: []string{}, Category: "bottoms", Color: "beige",
			Description: "Wide-leg trousers in woven fabric with an elasticated waistband."},
		{ID: "zara1", Title: "Zara Structured Navy Blazer", Price: 89.90, Tags: []string{"blazer", "structured", "navy", "formal", "work", "zara", "premium"}, Shop: "Zara",
			Image:        img + "photo-1591047139829-d91aecb6caea?w=300&h=400&fit=crop",
			AffiliateURL: "https://www.zara.com/us/en/structured-blazer-p00000000.html?ref=capsule", EthicsFlags: []string{}, Category: "outerwear", Color: "navy",
			Description: "Structured blazer with peak lapels, chest pocket, and front button fastening."},
		{ID: "zara2", Title: "Zara Knit Sweater", Price: 39.90, Tags: []string{"sweater", "knit", "soft", "beige", "casual", "zara"}, Shop: "Zara",
			Image:        img + "photo-1434389677669-e08b4cac3105?w=300&h=400&fit=crop",
			AffiliateURL: "https://www.zara.com/us/en/knit-sweater-p00000001.html?ref=capsule", EthicsFlags: []string{}, Category: "tops", Color: "beige",
			Description: "Round neck sweater in soft knit fabric with dropped shoulders."},
		{ID: "zara3", Title: "Zara High Waist Trousers", Price: 49.90, Tags: []string{"trousers", "high-waist", "tailored", "black", "work", "zara"}, Shop: "Zara",
			Image:        img + "photo-1594633313593-bab3825d0caf?w=300&h=400&fit=crop",
			AffiliateURL: "https://www.zara.com/us/en/high-waist-trousers-p00000002.html?ref=capsule", EthicsFlags: []string{}, Category: "bottoms", Color: "black",
			Description: "High-waist trousers with pressed creases and zip fly."},
		{ID: "zara5", Title: "Zara Midi Dress", Price: 59.90, Tags: []string{"dress", "midi", "elegant", "black", "formal", "zara"}, Shop: "Zara",
			Image:        img + "photo-1515372039744-b8f02a3ae446?w=300&h=400&fit=crop",
			AffiliateURL: "https://www.zara.com/us/en/midi-dress-p00000004.html?ref=capsule", EthicsFlags: []string{}, Category: "dresses", Color: "black",
			Description: "Midi dress with V-neck and three-quarter sleeves."},
		{ID: "uniqlo1", Title: "Uniqlo Heattech Crew Neck Long Sleeve T-Shirt", Price: 14.90, Tags: []string{"shirt", "heattech", "basic", "white", "uniqlo", "tech"}, Shop: "Uniqlo",
			Image:        img + "photo-1521572163474-6864f9cf17ab?w=300&h=400&fit=crop",
			AffiliateURL: "https://www.uniqlo.com/us/en/heattech-crew-neck-long-sleeve-t-shirt?ref=capsule", EthicsFlags: []string{}, Category: "tops", Color: "white",
			Description: "HEATTECH crew neck long sleeve T-shirt with moisture-wicking technology."},
		{ID: "uniqlo2", Title: "Uniqlo Smart Ankle Pants", Price: 39.90, Tags: []string{"pants", "smart", "ankle", "navy", "work", "uniqlo", "wrinkle-free"}, Shop: "Uniqlo",
			Image:        img + "photo-1473966968600-fa801b869a1a?w=300&h=400&fit=crop",
			AffiliateURL: "https://www.uniqlo.com/us/en/smart-ankle-pants?ref=capsule", EthicsFlags: []string{}, Category: "bottoms", Color: "navy",
			Description: "Wrinkle-resistant ankle pants with stretch fabric for comfort."},
		{ID: "uniqlo3", Title: "Uniqlo Cashmere Crew Neck Sweater", Price: 79.90, Tags: []string{"sweater", "cashmere", "luxury", "gray", "uniqlo", "premium"}, Shop: "Uniqlo",
			Image:        img + "photo-1434389677669-e08b4cac3105?w=300&h=400&fit=crop",
			AffiliateURL: "https://www.uniqlo.com/us/en/cashmere-crew-neck-sweater?ref=capsule", EthicsFlags: []string{}, Category: "tops", Color: "gray",
			Description: "100% cashmere crew neck sweater with a soft, luxurious feel."},
		{ID: "stories1", Title: "& Other Stories Oversized Wool Coat", Price: 179, Tags: []string{"coat", "wool", "oversized", "camel", "outerwear", "stories", "luxury"}, Shop: "& Other Stories",
			Image:        img + "photo-1544966503-7cc5ac882d5f?w=300&h=400&fit=crop",
			AffiliateURL: "https://www.stories.com/en_usd/oversized-wool-coat.html?ref=capsule", EthicsFlags: []string{"wool"}, Category: "outerwear", Color: "camel",
			Description: "Oversized double-breasted wool coat with wide lapels."},
		{ID: "stories2", Title: "& Other Stories Leather Ankle Boots", Price: 129, Tags: []string{"boots", "ankle", "leather", "black", "shoes", "stories"}, Shop: "& Other Stories",
			Image:        img + "photo-1608256246200-53e635b5b65f?w=300&h=400&fit=crop",
			AffiliateURL: "https://www.stories.com/en_usd/leather-ankle-boots.html?ref=capsule", EthicsFlags: []string{}, Category: "shoes", Color: "black",
			Description: "Pointed toe ankle boots in smooth leather with block heel."},
		{ID: "cos1", Title: "COS Relaxed Blazer", Price: 150, Tags: []string{"blazer", "relaxed", "minimal", "black", "cos", "luxury"}, Shop: "COS",
			Image:        img + "photo-1507003211169-0a1dd7228f2d?w=300&h=400&fit=crop",
			AffiliateURL: "https://www.cosstores.com/en_usd/relaxed-blazer.html?ref=capsule", EthicsFlags: []string{}, Category: "outerwear", Color: "black",
			Description: "Relaxed-fit blazer with clean lines and minimal detailing."},
		{ID: "cos2", Title: "COS Wide-Leg Trousers", Price: 79, Tags: []string{"trousers", "wide-leg", "minimal", "gray", "cos", "relaxed"}, Shop: "COS",
			Image:        img + "photo-1594633313593-bab3825d0caf?w=300&h=400&fit=crop",
			AffiliateURL: "https://www.cosstores.com/en_usd/wide-leg-trousers.html?ref=capsule", EthicsFlags: []string{}, Category: "bottoms", Color: "gray",
			Description: "Wide-leg trousers in a relaxed fit with pressed creases."},
		{ID: "massimo1", Title: "Massimo Dutti Wool Blazer", Price: 195, Tags: []string{"blazer", "wool", "luxury", "navy", "massimo", "premium", "formal"}, Shop: "Massimo Dutti",
			Image:        img + "photo-1591047139829-d91aecb6caea?w=300&h=400&fit=crop",
			AffiliateURL: "https://www.massimodutti.com/us/wool-blazer?ref=capsule", EthicsFlags: []string{"wool"}, Category: "outerwear", Color: "navy",
			Description: "Tailored wool blazer with peak lapels and working buttonholes."},
		{ID: "everlane1", Title: "Everlane The Organic Cotton Long-Sleeve Crew", Price: 28, Tags: []string{"shirt", "organic", "crew", "white", "everlane", "sustainable", "basic"}, Shop: "Everlane",
			Image:        img + "photo-1521572163474-6864f9cf17ab?w=300&h=400&fit=crop",
			AffiliateURL: "https://www.everlane.com/organic-cotton-long-sleeve-crew?ref=capsule", EthicsFlags: []string{"organic-cotton", "sustainable"}, Category: "tops", Color: "white",
			Description: "Classic crew neck made from 100% organic cotton."},
		{ID: "everlane2", Title: "Everlane The Way-High Drape Pant", Price: 88, Tags: []string{"pants", "high-waist", "drape", "black", "everlane", "sustainable"}, Shop: "Everlane",
			Image:        img + "photo-1594633313593-bab3825d0caf?w=300&h=400&fit=crop",
			AffiliateURL: "https://www.everlane.com/way-high-drape-pant?ref=capsule", EthicsFlags: []string{"sustainable"}, Category: "bottoms", Color: "black",
			Description: "High-waisted pants with a fluid drape and tapered leg."},
	}
}
