package booking

// Pricing is the static fare table: one unit price per class name.
type Pricing struct {
	Prices  map[string]float64
	Default float64
}

func DefaultPricing() Pricing {
	return Pricing{
		Prices:  map[string]float64{"Economy": 450, "Business": 850, "First": 1200},
		Default: 500,
	}
}

func (p Pricing) UnitPrice(className string) float64 {
	if price, ok := p.Prices[className]; ok {
		return price
	}
	return p.Default
}
