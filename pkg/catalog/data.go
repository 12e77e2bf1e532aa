package catalog

import "cropcal/entities"

// Built-in lifecycle data compiled from ICAR institute guidelines for South
// India. These are general recommendations; local extension offices may advise
// differently.
func builtinCrops() []CropTemplate {
	return []CropTemplate{tomato(), potato(), corn()}
}

func tomato() CropTemplate {
	return CropTemplate{
		Name:           "Tomato",
		ScientificName: "Solanum lycopersicum",
		DurationDays:   90,
		Varieties: map[string][]string{
			"Karnataka": {"Arka Vikas", "Arka Meghali", "Arka Abha"},
			"General":   {"Pusa Ruby", "Pusa Gaurav"},
		},
		SowingSeasons: map[string]string{
			"Kharif": "June-July",
			"Rabi":   "October-November",
			"Summer": "January-February",
		},
		Description: "Tomato cultivation for South India (ICAR guidelines)",
		Activities: []ActivityTemplate{
			{Name: "Land Preparation & Nursery Sowing", Day: 0, Category: entities.CategoryPlanting,
				Description: "Prepare raised beds, sow seeds in nursery. Seed rate: 200-250g/ha", Source: "ICAR-IIHR, Bangalore"},
			{Name: "Nursery Irrigation", Day: 2, Category: entities.CategoryIrrigation,
				Description: "Light irrigation twice daily for germination", Source: "UAS Bangalore"},
			{Name: "Seedling Care", Day: 10, Category: entities.CategoryMaintenance,
				Description: "Monitor for damping off disease, apply fungicide if needed", Source: "ICAR guidelines"},
			{Name: "Main Field Preparation", Day: 20, Category: entities.CategoryPlanting,
				Description: "Deep plowing, FYM application @ 25t/ha, form ridges and furrows", Source: "Karnataka Dept of Agriculture"},
			{Name: "Transplanting", Day: 25, Category: entities.CategoryPlanting,
				Description: "Transplant 25-30 day old seedlings. Spacing: 60cm x 45cm", Source: "ICAR-IIHR"},
			{Name: "First Irrigation After Transplanting", Day: 26, Category: entities.CategoryIrrigation,
				Description: "Immediate light irrigation after transplanting", Source: "UAS Bangalore"},
			{Name: "Gap Filling", Day: 30, Category: entities.CategoryMaintenance,
				Description: "Replace dead seedlings within 7 days of transplanting", Source: "Standard practice"},
			{Name: "First Fertilizer Application", Day: 32, Category: entities.CategoryFertilization,
				Description: "Apply 50% N, full P and K. NPK: 150:100:100 kg/ha", Source: "ICAR recommendation"},
			{Name: "Staking", Day: 35, Category: entities.CategoryMaintenance,
				Description: "Provide bamboo/wooden stakes for support (for indeterminate varieties)", Source: "Standard practice"},
			{Name: "Earthing Up", Day: 40, Category: entities.CategoryMaintenance,
				Description: "Earth up around plants to support stem and roots", Source: "UAS Bangalore"},
			{Name: "Second Fertilizer Application", Day: 45, Category: entities.CategoryFertilization,
				Description: "Top dressing: Apply remaining 50% N", Source: "ICAR recommendation"},
			{Name: "Pest & Disease Monitoring", Day: 50, Category: entities.CategorySpraying,
				Description: "Monitor for leaf curl, fruit borer, whitefly. IPM approach recommended", Source: "ICAR-IPM guidelines"},
			{Name: "Pruning & De-suckering", Day: 55, Category: entities.CategoryMaintenance,
				Description: "Remove side shoots to maintain 2-3 main stems", Source: "Horticultural practice"},
			{Name: "Flowering Stage Care", Day: 60, Category: entities.CategoryMaintenance,
				Description: "Ensure adequate moisture. Apply 2% DAP spray for fruit set", Source: "UAS Bangalore"},
			{Name: "Fruit Development Irrigation", Day: 70, Category: entities.CategoryIrrigation,
				Description: "Critical irrigation during fruit development. Drip irrigation @ 4L/plant/day", Source: "Precision farming guide"},
			{Name: "Fruit Borer Management", Day: 75, Category: entities.CategorySpraying,
				Description: "Install pheromone traps @ 4-5/acre. Spray Bt if needed", Source: "ICAR-IPM"},
			{Name: "Pre-Harvest Spray", Day: 85, Category: entities.CategorySpraying,
				Description: "Stop chemical sprays 7 days before harvest. Foliar nutrition if needed", Source: "Food safety guidelines"},
			{Name: "First Harvest", Day: 90, Category: entities.CategoryHarvesting,
				Description: "Harvest red ripe fruits. Yield: 25-30 tons/ha expected", Source: "ICAR-IIHR"},
		},
		Optimal: entities.OptimalConditions{
			TempMin:             15,
			TempMax:             30,
			RainfallThresholdMm: 50,
			SoilPh:              [2]float64{6.0, 7.0},
			CriticalStages: map[string]string{
				"transplanting": "Avoid heavy rain",
				"flowering":     "Temperature 20-25°C critical",
				"fruit_setting": "Avoid temp > 32°C",
			},
		},
		DataSource:       "ICAR-Indian Institute of Horticultural Research, Bangalore",
		LastUpdated:      "2025-02-05",
		ValidationStatus: "Research-based, validated for South India",
	}
}

func potato() CropTemplate {
	return CropTemplate{
		Name:           "Potato",
		ScientificName: "Solanum tuberosum",
		DurationDays:   90,
		Varieties: map[string][]string{
			"Karnataka": {"Kufri Jyoti", "Kufri Chandramukhi", "Kufri Giriraj"},
			"General":   {"Kufri Pukhraj", "Kufri Bahar"},
		},
		SowingSeasons: map[string]string{
			"Main Season": "October-November",
			"Hill Areas":  "March-April",
		},
		Description: "Potato cultivation based on ICAR-CPRI guidelines",
		Activities: []ActivityTemplate{
			{Name: "Land Preparation", Day: 0, Category: entities.CategoryPlanting,
				Description: "Deep plowing 20-25cm, form ridges 60cm apart. Apply FYM @ 20-25 t/ha", Source: "ICAR-CPRI, Shimla"},
			{Name: "Seed Treatment", Day: 2, Category: entities.CategoryPlanting,
				Description: "Treat seed tubers with Mancozeb @ 2g/L for 30 mins", Source: "Disease management protocol"},
			{Name: "Planting", Day: 5, Category: entities.CategoryPlanting,
				Description: "Plant seed tubers (25-30g) on ridges. Spacing: 60cm x 20cm. Seed rate: 2-2.5 t/ha", Source: "ICAR-CPRI"},
			{Name: "Basal Fertilizer Application", Day: 5, Category: entities.CategoryFertilization,
				Description: "Apply NPK: 150:100:100 kg/ha. Full P, K and 50% N at planting", Source: "ICAR recommendation"},
			{Name: "First Irrigation", Day: 7, Category: entities.CategoryIrrigation,
				Description: "Light irrigation immediately after planting", Source: "Standard practice"},
			{Name: "Emergence Stage", Day: 15, Category: entities.CategoryMaintenance,
				Description: "Monitor for uniform emergence. Replace missing hills if needed", Source: "Crop management"},
			{Name: "First Earthing Up", Day: 25, Category: entities.CategoryMaintenance,
				Description: "Earth up to form ridges when plants are 15-20cm tall", Source: "ICAR-CPRI"},
			{Name: "Top Dressing - Nitrogen", Day: 30, Category: entities.CategoryFertilization,
				Description: "Apply remaining 50% N. Water immediately after application", Source: "ICAR recommendation"},
			{Name: "Second Earthing Up", Day: 45, Category: entities.CategoryMaintenance,
				Description: "Final earthing up to prevent tuber greening", Source: "Standard practice"},
			{Name: "Late Blight Monitoring", Day: 50, Category: entities.CategorySpraying,
				Description: "Critical stage for late blight. Monitor weather (RH > 90%, Temp 10-25°C). Spray Mancozeb if needed", Source: "ICAR-Plant Protection"},
			{Name: "Tuber Initiation Care", Day: 55, Category: entities.CategoryIrrigation,
				Description: "Ensure adequate moisture. Critical stage for yield. Drip irrigation @ 25mm/week", Source: "Precision farming"},
			{Name: "Aphid & Virus Management", Day: 60, Category: entities.CategorySpraying,
				Description: "Install yellow sticky traps. Use neem oil spray for aphids", Source: "IPM guidelines"},
			{Name: "Tuber Bulking Stage", Day: 70, Category: entities.CategoryIrrigation,
				Description: "Maintain consistent moisture. Avoid water stress", Source: "ICAR-CPRI"},
			{Name: "Stop Irrigation", Day: 80, Category: entities.CategoryIrrigation,
				Description: "Stop irrigation 10-15 days before harvest to mature tubers", Source: "Harvesting protocol"},
			{Name: "Haulm Cutting", Day: 85, Category: entities.CategoryMaintenance,
				Description: "Cut vines 10 days before harvest for skin hardening", Source: "ICAR-CPRI"},
			{Name: "Harvesting", Day: 90, Category: entities.CategoryHarvesting,
				Description: "Dig tubers carefully. Expected yield: 25-30 t/ha", Source: "ICAR-CPRI"},
		},
		Optimal: entities.OptimalConditions{
			TempMin:             15,
			TempMax:             25,
			RainfallThresholdMm: 60,
			SoilPh:              [2]float64{5.5, 6.5},
			CriticalStages: map[string]string{
				"tuber_initiation": "Temperature 15-20°C critical",
				"tuber_bulking":    "Adequate moisture essential",
				"late_blight_risk": "High humidity + cool temp (10-25°C)",
			},
		},
		DataSource:       "ICAR-Central Potato Research Institute, Shimla",
		LastUpdated:      "2025-02-05",
		ValidationStatus: "Research-based, CPRI validated",
	}
}

func corn() CropTemplate {
	return CropTemplate{
		Name:           "Corn",
		ScientificName: "Zea mays",
		DurationDays:   100,
		Varieties: map[string][]string{
			"Karnataka": {"Pusa Vivek Maize Hybrid 27", "NAH 1137"},
			"General":   {"Ganga 5", "Pusa HM 4"},
		},
		SowingSeasons: map[string]string{
			"Kharif": "June-July",
			"Rabi":   "October-November",
			"Spring": "February-March",
		},
		Description: "Maize cultivation based on ICAR-IIMR guidelines",
		Activities: []ActivityTemplate{
			{Name: "Land Preparation", Day: 0, Category: entities.CategoryPlanting,
				Description: "Deep plowing, harrowing. Apply FYM @ 10-12 t/ha", Source: "ICAR-IIMR, Ludhiana"},
			{Name: "Sowing", Day: 5, Category: entities.CategoryPlanting,
				Description: "Dibbling/drilling seeds 5cm deep. Spacing: 60cm x 20cm. Seed rate: 20-25 kg/ha", Source: "ICAR-IIMR"},
			{Name: "Basal Fertilizer", Day: 5, Category: entities.CategoryFertilization,
				Description: "Apply NPK: 150:75:40 kg/ha. Full P, K and 1/3 N at sowing", Source: "ICAR recommendation"},
			{Name: "Pre-emergence Weedicide", Day: 6, Category: entities.CategoryWeeding,
				Description: "Apply Atrazine @ 0.5 kg/ha within 3 days of sowing", Source: "Weed management"},
			{Name: "First Irrigation", Day: 7, Category: entities.CategoryIrrigation,
				Description: "Light irrigation for germination if needed", Source: "Standard practice"},
			{Name: "Germination Stage", Day: 10, Category: entities.CategoryMaintenance,
				Description: "Monitor for uniform germination. Protect from birds", Source: "Crop management"},
			{Name: "Thinning", Day: 15, Category: entities.CategoryMaintenance,
				Description: "Thin to maintain 1 plant per hill at 2-leaf stage", Source: "ICAR-IIMR"},
			{Name: "First Top Dressing", Day: 20, Category: entities.CategoryFertilization,
				Description: "Apply 1/3 N when plants are knee-high", Source: "ICAR recommendation"},
			{Name: "Earthing Up", Day: 25, Category: entities.CategoryMaintenance,
				Description: "Earth up to support plants and control weeds", Source: "Standard practice"},
			{Name: "Fall Armyworm Monitoring", Day: 30, Category: entities.CategorySpraying,
				Description: "Scout for FAW. Install pheromone traps @ 5/acre", Source: "ICAR-IPM alert"},
			{Name: "Critical Irrigation - Vegetative", Day: 35, Category: entities.CategoryIrrigation,
				Description: "Ensure moisture during rapid growth phase", Source: "Water management"},
			{Name: "Second Top Dressing", Day: 40, Category: entities.CategoryFertilization,
				Description: "Apply remaining 1/3 N before tasseling", Source: "ICAR recommendation"},
			{Name: "Stem Borer Management", Day: 45, Category: entities.CategorySpraying,
				Description: "Release Trichogramma cards @ 50,000/ha or spray if needed", Source: "Biocontrol protocol"},
			{Name: "Tasseling Stage", Day: 55, Category: entities.CategoryIrrigation,
				Description: "Critical irrigation - most sensitive to water stress", Source: "ICAR-IIMR (Critical stage)"},
			{Name: "Silking Stage", Day: 60, Category: entities.CategoryMaintenance,
				Description: "Ensure good pollination. Maintain moisture", Source: "Reproductive stage care"},
			{Name: "Grain Filling Irrigation", Day: 75, Category: entities.CategoryIrrigation,
				Description: "Maintain soil moisture during grain filling", Source: "Water management"},
			{Name: "Stop Irrigation", Day: 90, Category: entities.CategoryIrrigation,
				Description: "Stop irrigation for grain maturation", Source: "Harvest preparation"},
			{Name: "Harvesting", Day: 100, Category: entities.CategoryHarvesting,
				Description: "Harvest when grains are hard, moisture 20-22%. Expected yield: 8-10 t/ha", Source: "ICAR-IIMR"},
		},
		Optimal: entities.OptimalConditions{
			TempMin:             18,
			TempMax:             32,
			RainfallThresholdMm: 70,
			SoilPh:              [2]float64{6.0, 7.5},
			CriticalStages: map[string]string{
				"tasseling":     "Water stress reduces yield by 50%",
				"silking":       "High temperature (>35°C) affects pollination",
				"grain_filling": "Adequate moisture essential",
			},
		},
		DataSource:       "ICAR-Indian Institute of Maize Research, Ludhiana",
		LastUpdated:      "2025-02-05",
		ValidationStatus: "Research-based, IIMR validated",
	}
}
