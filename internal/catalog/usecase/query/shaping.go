package query

import "github.com/nrivas/marketscope/internal/catalog/domain"

// shapeCharacteristics projects characteristic rows into name/value pairs.
func shapeCharacteristics(characteristics []domain.Characteristic) []domain.CharacteristicValue {
	values := make([]domain.CharacteristicValue, 0, len(characteristics))
	for _, c := range characteristics {
		values = append(values, domain.CharacteristicValue{
			Name:  c.Name,
			Value: c.Value,
		})
	}
	return values
}

// shapeResolvedProduct builds a catalog entry from a base product, its
// surviving listings and the representative characteristic set.
func shapeResolvedProduct(base domain.BaseProduct, listings []domain.Listing, characteristics []domain.Characteristic) domain.ResolvedProduct {
	variants := make([]domain.ResolvedVariant, 0, len(listings))
	for _, l := range listings {
		variants = append(variants, domain.ResolvedVariant{
			ID:            l.ID,
			Marketplace:   l.Marketplace,
			Price:         l.Price,
			PreviousPrice: l.PreviousPrice,
			Stock:         l.Stock,
			Seller:        l.SellerName(),
		})
	}

	return domain.ResolvedProduct{
		ID:              base.ID,
		Name:            base.Name,
		Brand:           base.Brand,
		Model:           base.Model,
		SKU:             base.SKU,
		Category:        base.CategoryName(),
		Description:     base.Description,
		ImageURL:        base.ImageURL,
		Variants:        variants,
		Characteristics: shapeCharacteristics(characteristics),
	}
}

// shapeComparisonProduct builds one comparison row from a base product and
// all of its active listings.
func shapeComparisonProduct(base domain.BaseProduct, listings []domain.Listing, characteristics []domain.Characteristic) domain.ComparisonProduct {
	variants := make([]domain.ComparisonVariant, 0, len(listings))
	for i := range listings {
		l := &listings[i]
		variant := domain.ComparisonVariant{
			ID:            l.ID,
			Marketplace:   l.Marketplace,
			Price:         l.Price,
			PreviousPrice: l.PreviousPrice,
			Stock:         l.Stock,
			URL:           l.URL,
			ImageURL:      l.ImageURL,
			Seller:        l.SellerName(),
		}
		if l.HasDiscount() {
			discount := l.DiscountPercent()
			variant.DiscountPercent = &discount
		}
		variants = append(variants, variant)
	}

	return domain.ComparisonProduct{
		ID:              base.ID,
		Name:            base.Name,
		Brand:           base.Brand,
		Model:           base.Model,
		SKU:             base.SKU,
		Variants:        variants,
		Characteristics: shapeCharacteristics(characteristics),
	}
}

// matchesCharacteristicFilter checks the representative characteristic set
// against the name -> allowed values map. Every named characteristic must be
// present with one of its allowed values.
func matchesCharacteristicFilter(characteristics []domain.Characteristic, filter map[string][]string) bool {
	if len(filter) == 0 {
		return true
	}

	byName := make(map[string]string, len(characteristics))
	for _, c := range characteristics {
		if _, seen := byName[c.Name]; !seen {
			byName[c.Name] = c.Value
		}
	}

	for name, allowed := range filter {
		if len(allowed) == 0 {
			continue
		}
		value, ok := byName[name]
		if !ok {
			return false
		}
		match := false
		for _, candidate := range allowed {
			if candidate == value {
				match = true
				break
			}
		}
		if !match {
			return false
		}
	}

	return true
}
