package refdata

func builtinPresets() []DeviceProfilePreset {
	return []DeviceProfilePreset{
		{ID: "galaxy_s24_ultra", Name: "Samsung Galaxy S24 Ultra", Manufacturer: ManufacturerSamsung, Brand: "samsung", Model: "SM-S928B", Device: "e3q",
			TACPrefixes: []string{"35332510", "35290611"}, OUIHints: []string{"A0:82:1F", "F0:25:B7"}},
		{ID: "galaxy_s23", Name: "Samsung Galaxy S23", Manufacturer: ManufacturerSamsung, Brand: "samsung", Model: "SM-S911B", Device: "dm1q",
			TACPrefixes: []string{"35875807"}, OUIHints: []string{"5C:0A:5B", "8C:77:12"}},
		{ID: "galaxy_a54", Name: "Samsung Galaxy A54 5G", Manufacturer: ManufacturerSamsung, Brand: "samsung", Model: "SM-A546B", Device: "a54x",
			TACPrefixes: []string{"35391110"}, OUIHints: []string{"00:1D:25"}},
		{ID: "galaxy_z_fold5", Name: "Samsung Galaxy Z Fold5", Manufacturer: ManufacturerSamsung, Brand: "samsung", Model: "SM-F946B", Device: "q5q",
			TACPrefixes: []string{"35926210"}, OUIHints: []string{"F0:25:B7"}},
		{ID: "pixel_8_pro", Name: "Google Pixel 8 Pro", Manufacturer: ManufacturerGoogle, Brand: "google", Model: "Pixel 8 Pro", Device: "husky",
			TACPrefixes: []string{"35467811"}, OUIHints: []string{"3C:5A:B4", "F4:F5:E8"}},
		{ID: "pixel_8", Name: "Google Pixel 8", Manufacturer: ManufacturerGoogle, Brand: "google", Model: "Pixel 8", Device: "shiba",
			TACPrefixes: []string{"35282210"}, OUIHints: []string{"3C:5A:B4"}},
		{ID: "pixel_7a", Name: "Google Pixel 7a", Manufacturer: ManufacturerGoogle, Brand: "google", Model: "Pixel 7a", Device: "lynx",
			TACPrefixes: []string{"35384410"}, OUIHints: []string{"F8:8F:CA"}},
		{ID: "pixel_6", Name: "Google Pixel 6", Manufacturer: ManufacturerGoogle, Brand: "google", Model: "Pixel 6", Device: "oriole",
			TACPrefixes: []string{"35891709"}, OUIHints: []string{"54:60:09"}},
		{ID: "xiaomi_14", Name: "Xiaomi 14", Manufacturer: ManufacturerXiaomi, Brand: "Xiaomi", Model: "23127PN0CG", Device: "houji",
			TACPrefixes: []string{"86769303"}, OUIHints: []string{"64:09:80"}},
		{ID: "redmi_note_13_pro", Name: "Redmi Note 13 Pro 5G", Manufacturer: ManufacturerXiaomi, Brand: "Redmi", Model: "23117RA68G", Device: "garnet",
			TACPrefixes: []string{"86893503"}, OUIHints: []string{"28:6C:07", "34:CE:00"}},
		{ID: "poco_f5", Name: "POCO F5", Manufacturer: ManufacturerXiaomi, Brand: "POCO", Model: "23049PCD8G", Device: "marble",
			TACPrefixes: []string{"86255504"}, OUIHints: []string{"F8:A4:5F"}},
		{ID: "oneplus_12", Name: "OnePlus 12", Manufacturer: ManufacturerOnePlus, Brand: "OnePlus", Model: "CPH2581", Device: "waffle",
			TACPrefixes: []string{"86588204"}, OUIHints: []string{"94:65:2D"}},
		{ID: "oneplus_11", Name: "OnePlus 11 5G", Manufacturer: ManufacturerOnePlus, Brand: "OnePlus", Model: "CPH2449", Device: "salami",
			TACPrefixes: []string{"86101404"}, OUIHints: []string{"C0:EE:FB"}},
		{ID: "huawei_p60_pro", Name: "HUAWEI P60 Pro", Manufacturer: ManufacturerHuawei, Brand: "HUAWEI", Model: "MNA-LX9", Device: "HWMNA",
			TACPrefixes: []string{"86690103"}, OUIHints: []string{"28:6E:D4"}},
		{ID: "moto_edge_40", Name: "motorola edge 40", Manufacturer: ManufacturerMotorola, Brand: "motorola", Model: "XT2303-2", Device: "lyriq",
			TACPrefixes: []string{"35456710"}, OUIHints: []string{"9C:D9:17"}},
		{ID: "moto_g84", Name: "moto g84 5G", Manufacturer: ManufacturerMotorola, Brand: "motorola", Model: "XT2347-2", Device: "bangkk",
			TACPrefixes: []string{"35904711"}, OUIHints: []string{"E8:91:20"}},
		{ID: "xperia_1_v", Name: "Sony Xperia 1 V", Manufacturer: ManufacturerSony, Brand: "Sony", Model: "XQ-DQ72", Device: "pdx234",
			TACPrefixes: []string{"35889110"}, OUIHints: []string{"94:CE:2C"}},
		{ID: "oppo_reno10", Name: "OPPO Reno10 5G", Manufacturer: ManufacturerOppo, Brand: "OPPO", Model: "CPH2531", Device: "OP5711",
			TACPrefixes: []string{"86811105"}, OUIHints: []string{"A4:3D:78"}},
		{ID: "vivo_x100_pro", Name: "vivo X100 Pro", Manufacturer: ManufacturerVivo, Brand: "vivo", Model: "V2324", Device: "PD2324",
			TACPrefixes: []string{"86492306"}, OUIHints: []string{"3C:A3:48"}},
		{ID: "nokia_g42", Name: "Nokia G42 5G", Manufacturer: ManufacturerNokia, Brand: "Nokia", Model: "TA-1581", Device: "SLD_sprout",
			TACPrefixes: []string{"35693911"}, OUIHints: []string{"64:A7:69"}},
	}
}

// Builtin は組み込みの参照テーブル一式を返す。
// 呼び出しごとに新しいスライス・マップを生成する。
func Builtin() Data {
	return Data{
		Countries:       builtinCountries(),
		Locations:       builtinLocations(),
		Carriers:        builtinCarriers(),
		Presets:         builtinPresets(),
		TACs:            builtinTACs(),
		OUIs:            builtinOUIs(),
		SerialTemplates: builtinSerialTemplates(),
		Routers:         builtinRouters(),
	}
}
