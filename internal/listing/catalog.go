package listing

import (
	"cmp"
	"slices"
)

const (
	amazonSearch   = "https://www.amazon.in/s?k=9kg+inverter+washing+machine"
	flipkartSearch = "https://www.flipkart.com/search?q=9kg+inverter+washing+machine"
)

// Catalog returns the fixed set of mock listings in catalog order.
// Every call allocates a new slice.
func Catalog() []Listing {
	return []Listing{
		{
			Name:  "Samsung 9 Kg 5 Star Inverter Fully Automatic Front Load with In-built Heater",
			Price: 28990,
			Site:  "Amazon",
			URL:   amazonSearch,
			Image: "https://m.media-amazon.com/images/I/71TuZVu9ZEL._SX679_.jpg",
		},
		{
			Name:  "LG 9 Kg 5 Star Inverter Direct Drive Fully Automatic Front Load",
			Price: 32490,
			Site:  "Flipkart",
			URL:   flipkartSearch,
			Image: "https://rukminim2.flixcart.com/image/416/416/xif0q/washing-machine-new/4/d/g/-original-imagz8qzhuzckgyf.jpeg",
		},
		{
			Name:  "Bosch 9 kg 5 Star Inverter Fully Automatic Front Load with In-built Heater",
			Price: 35990,
			Site:  "Amazon",
			URL:   amazonSearch,
			Image: "https://m.media-amazon.com/images/I/71kYL9kOdjL._SX679_.jpg",
		},
		{
			Name:  "IFB 9 Kg 5 Star AI Powered Fully Automatic Front Load Washing Machine",
			Price: 31990,
			Site:  "Reliance Digital",
			URL:   "https://www.reliancedigital.in/search?q=9kg%20inverter%20washing%20machine",
			Image: "https://www.ifbappliances.com/media/catalog/product/cache/1/image/9df78eab33525d08d6e5fb8d27136e95/e/x/executive_plus_vx_id_9_kg_1400_rpm_fully_automatic_front_load_washing_machine_-_mocha_-_1.jpg",
		},
		{
			Name:  "Whirlpool 9 Kg 5 Star Royal Plus Fully Automatic Front Load",
			Price: 29990,
			Site:  "Flipkart",
			URL:   flipkartSearch,
			Image: "https://rukminim2.flixcart.com/image/416/416/xif0q/washing-machine-new/a/h/g/-original-imagvgf4xhgzanhy.jpeg",
		},
		{
			Name:  "Haier 9 Kg 5 Star Inverter Fully Automatic Front Load",
			Price: 27990,
			Site:  "Amazon",
			URL:   amazonSearch,
			Image: "https://m.media-amazon.com/images/I/61YUWs6qKiL._SX679_.jpg",
		},
		{
			Name:  "Godrej 9 Kg 5 Star Fully Automatic Front Load with In-built Heater",
			Price: 30490,
			Site:  "Croma",
			URL:   "https://www.croma.com/search/?q=9kg%20inverter%20washing%20machine",
			Image: "https://media.croma.com/image/upload/v1694672676/Croma%20Assets/Large%20Appliances/Washers%20and%20Dryers/Images/301896_0_vvklxr.png",
		},
		{
			Name:  "Panasonic 9 Kg 5 Star Inverter Fully Automatic Front Load",
			Price: 33490,
			Site:  "Vijay Sales",
			URL:   "https://www.vijaysales.com/search/9kg%20inverter%20washing%20machine",
			Image: "https://www.panasonic.com/content/dam/panasonic/in/en/products/home-appliances/washing-machines/front-load/na-127xb1/NA-127XB1W01_1.png",
		},
		{
			Name:  "Voltas Beko 9 Kg ProSmart Inverter Fully Automatic Front Load",
			Price: 26990,
			Site:  "Flipkart",
			URL:   flipkartSearch,
			Image: "https://rukminim2.flixcart.com/image/416/416/xif0q/washing-machine-new/n/p/w/-original-imaghhfyzmgwyzgc.jpeg",
		},
		{
			Name:  "MarQ by Flipkart 9 Kg 5 Star Inverter Fully Automatic Front Load",
			Price: 24990,
			Site:  "Flipkart",
			URL:   flipkartSearch,
			Image: "https://rukminim2.flixcart.com/image/416/416/xif0q/washing-machine-new/l/x/c/-original-imagqznghhzhhzkf.jpeg",
		},
		{
			Name:  "Siemens 9 Kg 5 Star iQ300 Fully Automatic Front Load",
			Price: 39990,
			Site:  "Amazon",
			URL:   amazonSearch,
			Image: "https://m.media-amazon.com/images/I/51xGYdqWCxL._SX679_.jpg",
		},
		{
			Name:  "Midea 9 Kg 5 Star Inverter Fully Automatic Front Load",
			Price: 25990,
			Site:  "Amazon",
			URL:   amazonSearch,
			Image: "https://m.media-amazon.com/images/I/61AXY2w5V7L._SX679_.jpg",
		},
	}
}

// SortByPrice returns a copy of ls ordered by ascending price. Listings with
// equal prices keep their relative input order.
func SortByPrice(ls []Listing) []Listing {
	out := slices.Clone(ls)
	if out == nil {
		out = []Listing{}
	}
	slices.SortStableFunc(out, func(a, b Listing) int {
		return cmp.Compare(a.Price, b.Price)
	})
	return out
}

func IsSortedByPrice(ls []Listing) bool {
	return slices.IsSortedFunc(ls, func(a, b Listing) int {
		return cmp.Compare(a.Price, b.Price)
	})
}
