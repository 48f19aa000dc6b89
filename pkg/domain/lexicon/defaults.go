package lexicon

// Default returns the built-in lexicon for the apparel factory floor. Alias
// tokens cover English plus transliterated and native-script Hindi, Tamil,
// Kannada and Telugu terms operators actually type.
func Default() *Lexicon {
	return New(
		defaultMaterials(),
		defaultLocations(),
		defaultSKUs(),
		defaultPurposes(),
		defaultUrgency(),
		defaultMaterialCodes(),
	)
}

func defaultMaterials() *Table {
	return MustTable([]Entry{
		{"cotton", "Cotton Fabric"},
		{"cotton fabric", "Cotton Fabric"},
		{"कपास", "Cotton Fabric"},
		{"कपास कपड़ा", "Cotton Fabric"},
		{"பருத்தி", "Cotton Fabric"},
		{"ಹತ್ತಿ", "Cotton Fabric"},
		{"పత్తి", "Cotton Fabric"},

		{"fleece", "Fleece Fabric"},
		{"fleece fabric", "Fleece Fabric"},
		{"फ्लीस", "Fleece Fabric"},

		{"polyester", "Polyester Fabric"},
		{"polyester fabric", "Polyester Fabric"},
		{"पॉलिएस्टर", "Polyester Fabric"},
		{"పాలిస్టర్", "Polyester Fabric"},

		{"thread", "Thread (White)"},
		{"thread white", "Thread (White)"},
		{"white thread", "Thread (White)"},
		{"thread black", "Thread (Black)"},
		{"black thread", "Thread (Black)"},
		{"धागा", "Thread (White)"},
		{"நூல்", "Thread (White)"},
		{"ದಾರ", "Thread (White)"},
		{"దారం", "Thread (White)"},
		// No red thread stocked; map to the closest available colour.
		{"thread red", "Thread (White)"},
		{"red color thread", "Thread (White)"},

		{"zipper", "Zipper (Metal)"},
		{"metal zipper", "Zipper (Metal)"},
		{"जिप", "Zipper (Metal)"},
		{"ஜிப்", "Zipper (Metal)"},
		{"zip", "Zipper (Metal)"},

		{"elastic", "Elastic Band"},
		{"elastic band", "Elastic Band"},
		{"इलास्टिक", "Elastic Band"},
		{"ఎలాస్టిక్", "Elastic Band"},

		{"label", "Neck Label"},
		{"neck label", "Neck Label"},
		{"woven label", "Woven Label"},
		{"printed tag", "Printed Tag"},
		{"printed label", "Printed Label"},
		{"labels", "Neck Label"},

		{"poly bag", "Poly Bag"},
		{"polybag", "Poly Bag"},
		{"bag", "Poly Bag"},
		{"பை", "Poly Bag"},
		{"ಚೀಲ", "Poly Bag"},

		{"drawstring", "Drawstring"},
		{"cord", "Drawstring"},

		{"chemical", "Chemical"},
		{"chemicals", "Chemical"},
		{"रसायन", "Chemical"},
	})
}

func defaultLocations() *Table {
	return MustTable([]Entry{
		{"cutting", "Cutting Floor"},
		{"cutting floor", "Cutting Floor"},
		{"cutting dept", "Cutting Floor"},
		{"कटिंग", "Cutting Floor"},
		{"கட்டிங்", "Cutting Floor"},
		{"ಕಟಿಂಗ್", "Cutting Floor"},

		{"sewing", "Sewing Floor"},
		{"sewing floor", "Sewing Floor"},
		{"sewing dept", "Sewing Floor"},
		{"stitching", "Sewing Floor"},
		{"stitching floor", "Sewing Floor"},
		{"सिलाई", "Sewing Floor"},
		{"தையல்", "Sewing Floor"},
		{"ಹೊಲಿಗೆ", "Sewing Floor"},
		{"కుట్టు", "Sewing Floor"},

		{"finishing", "Finishing Floor"},
		{"finishing floor", "Finishing Floor"},
		{"finishing dept", "Finishing Floor"},
		{"फिनिशिंग", "Finishing Floor"},

		{"qc", "QC Floor"},
		{"qa", "QC Floor"},
		{"quality", "QC Floor"},
		{"quality control", "QC Floor"},
		{"inspection", "QC Floor"},
		{"गुणवत्ता", "QC Floor"},

		{"packing", "Packing Floor"},
		{"packing floor", "Packing Floor"},
		{"packaging", "Packing Floor"},
		{"पैकिंग", "Packing Floor"},
		{"பேக்கிங்", "Packing Floor"},

		{"maintenance", "Maintenance"},
		{"मेंटेनेंस", "Maintenance"},
		{"रखरखाव", "Maintenance"},

		{"store", "Store"},
		{"store room", "Store Room"},
		{"स्टोर", "Store"},

		{"production", "Production"},
		{"उत्पादन", "Production"},

		{"procurement", "Procurement"},
		{"खरीद", "Procurement"},

		{"accounts", "Accounts"},
		{"लेखा", "Accounts"},

		{"rm store", "RM Store A"},
		{"rm store a", "RM Store A"},
		{"rm store b", "RM Store B"},
		{"raw material", "RM Store A"},
		{"warehouse", "RM Store A"},
		{"accessories", "Accessories"},
		{"packaging store", "Packaging"},
	})
}

func defaultSKUs() *Table {
	return MustTable([]Entry{
		{"t-shirt", "TS-001"},
		{"tshirt", "TS-001"},
		{"ts-001", "TS-001"},
		{"ts001", "TS-001"},
		{"cotton t-shirt", "TS-001"},
		{"टी-शर्ट", "TS-001"},
		{"டி-ஷர்ட்", "TS-001"},

		{"hoodie", "HD-001"},
		{"hd-001", "HD-001"},
		{"hd001", "HD-001"},
		{"fleece hoodie", "HD-001"},
		{"हुडी", "HD-001"},

		{"track pants", "TR-001"},
		{"trackpants", "TR-001"},
		{"pants", "TR-001"},
		{"tr-001", "TR-001"},
		{"tr001", "TR-001"},
		{"polyester pants", "TR-001"},
		{"ट्रैक पैंट", "TR-001"},
	})
}

func defaultPurposes() *Table {
	return MustTable([]Entry{
		{"production", "Production"},
		{"rework", "Rework"},
		{"qc", "QC"},
		{"quality", "QC"},
		{"maintenance", "Maintenance"},
		{"repair", "Maintenance"},
		{"sample", "Sample"},
		{"packing", "Packing"},
		{"packaging", "Packing"},
		{"testing", "QC"},
	})
}

func defaultUrgency() *Table {
	return MustTable([]Entry{
		{"urgent", "urgent"},
		{"immediate", "urgent"},
		{"immediately", "urgent"},
		{"asap", "urgent"},
		{"today", "urgent"},
		{"now", "urgent"},
		{"shift end", "urgent"},
		{"before shift", "urgent"},
		{"तुरंत", "urgent"},
		{"जल्दी", "urgent"},
	})
}

func defaultMaterialCodes() map[string]string {
	return map[string]string{
		"Cotton Fabric":    "COT-001",
		"Fleece Fabric":    "FLE-001",
		"Polyester Fabric": "POL-001",
		"Thread (White)":   "THR-W01",
		"Thread (Black)":   "THR-B01",
		"Zipper (Metal)":   "ZIP-M01",
		"Elastic Band":     "ELA-001",
		"Drawstring":       "DRW-001",
		"Neck Label":       "LAB-N01",
		"Woven Label":      "LAB-W01",
		"Printed Tag":      "TAG-P01",
		"Printed Label":    "LAB-P01",
		"Poly Bag":         "BAG-P01",
	}
}
