package carrier

// NewDefaultRegistry builds the registry with the built-in carrier set:
// the three standard parcel carriers plus an international and a hazmat
// carrier exercising the capability variants.
func NewDefaultRegistry() (*Registry, error) {
	fedex, err := NewCarrier(
		"FEDEX",
		"FedEx",
		`(\b\d{12}\b|\b\d{15}\b)`,
		"https://www.fedex.com/fedextrack/?trknbr={trackingNumber}",
	)
	if err != nil {
		return nil, err
	}

	ups, err := NewCarrier(
		"UPS",
		"UPS",
		`\b1Z[A-Z0-9]{16}\b`,
		"https://www.ups.com/track?tracknum={trackingNumber}",
	)
	if err != nil {
		return nil, err
	}

	dhl, err := NewCarrier(
		"DHL",
		"DHL",
		`\b\d{10}\b`,
		"https://www.dhl.com/track?trackingNumber={trackingNumber}",
	)
	if err != nil {
		return nil, err
	}

	dhlExpress, err := NewInternationalCarrier(
		"DHLEXPRESS",
		"DHL International",
		`\b(DHL[A-Z0-9]{7}X)\b`,
		"https://www.dhl.com/track?trackingNumber={trackingNumber}",
		[]string{"US", "UK", "CN", "JP", "DE"},
		map[string]int{
			"US": 24,
			"UK": 36,
			"DE": 36,
			"JP": 48,
			"CN": 72,
		},
		72,
	)
	if err != nil {
		return nil, err
	}

	chemlog, err := NewHazmatCarrier(
		"CHEMLOG",
		"Chemical Logistics",
		`\bHZ\d{8}\b`,
		"https://chemlog.com/track/{trackingNumber}",
		[]string{"flammable", "corrosive", "radioactive"},
		map[string]string{
			"flammable":   "Keep away from heat sources",
			"corrosive":   "Handle with protective gear",
			"radioactive": "Special containment required",
		},
	)
	if err != nil {
		return nil, err
	}

	registry := NewRegistry()
	for _, c := range []*Carrier{fedex, ups, dhl, dhlExpress, chemlog} {
		if err = registry.Register(c); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
