package refdata

func builtinCountries() []Country {
	return []Country{
		{ISO: "US", Name: "United States", PhoneCode: "1"},
		{ISO: "CA", Name: "Canada", PhoneCode: "1"},
		{ISO: "GB", Name: "United Kingdom", PhoneCode: "44"},
		{ISO: "IN", Name: "India", PhoneCode: "91"},
		{ISO: "DE", Name: "Germany", PhoneCode: "49"},
		{ISO: "FR", Name: "France", PhoneCode: "33"},
		{ISO: "JP", Name: "Japan", PhoneCode: "81"},
		{ISO: "CN", Name: "China", PhoneCode: "86"},
		{ISO: "AU", Name: "Australia", PhoneCode: "61"},
		{ISO: "BR", Name: "Brazil", PhoneCode: "55"},
		{ISO: "MX", Name: "Mexico", PhoneCode: "52"},
		{ISO: "ES", Name: "Spain", PhoneCode: "34"},
		{ISO: "IT", Name: "Italy", PhoneCode: "39"},
		{ISO: "KR", Name: "South Korea", PhoneCode: "82"},
		{ISO: "RU", Name: "Russia", PhoneCode: "7"},
		{ISO: "ID", Name: "Indonesia", PhoneCode: "62"},
		{ISO: "PK", Name: "Pakistan", PhoneCode: "92"},
		{ISO: "ZA", Name: "South Africa", PhoneCode: "27"},
		{ISO: "AE", Name: "United Arab Emirates", PhoneCode: "971"},
		{ISO: "TR", Name: "Turkey", PhoneCode: "90"},
		{ISO: "NL", Name: "Netherlands", PhoneCode: "31"},
		{ISO: "SE", Name: "Sweden", PhoneCode: "46"},
		{ISO: "PL", Name: "Poland", PhoneCode: "48"},
		{ISO: "PH", Name: "Philippines", PhoneCode: "63"},
		{ISO: "SG", Name: "Singapore", PhoneCode: "65"},
	}
}

func builtinLocations() []LocationData {
	return []LocationData{
		{
			CountryISO: "US",
			Regions: []Region{
				{Name: "New York", MinLat: 40.49, MaxLat: 40.92, MinLon: -74.26, MaxLon: -73.70},
				{Name: "Los Angeles", MinLat: 33.70, MaxLat: 34.34, MinLon: -118.67, MaxLon: -118.16},
				{Name: "Chicago", MinLat: 41.64, MaxLat: 42.02, MinLon: -87.94, MaxLon: -87.52},
				{Name: "Houston", MinLat: 29.52, MaxLat: 30.11, MinLon: -95.79, MaxLon: -95.01},
				{Name: "San Francisco Bay", MinLat: 37.23, MaxLat: 37.93, MinLon: -122.52, MaxLon: -121.75},
			},
			Timezones: []string{"America/New_York", "America/Chicago", "America/Denver", "America/Los_Angeles", "America/Phoenix"},
			Locales:   []string{"en_US", "es_US"},
		},
		{
			CountryISO: "CA",
			Regions: []Region{
				{Name: "Toronto", MinLat: 43.58, MaxLat: 43.86, MinLon: -79.64, MaxLon: -79.12},
				{Name: "Vancouver", MinLat: 49.20, MaxLat: 49.32, MinLon: -123.23, MaxLon: -123.02},
				{Name: "Montreal", MinLat: 45.41, MaxLat: 45.70, MinLon: -73.97, MaxLon: -73.47},
			},
			Timezones: []string{"America/Toronto", "America/Vancouver", "America/Edmonton", "America/Halifax"},
			Locales:   []string{"en_CA", "fr_CA"},
		},
		{
			CountryISO: "GB",
			Regions: []Region{
				{Name: "London", MinLat: 51.28, MaxLat: 51.69, MinLon: -0.51, MaxLon: 0.33},
				{Name: "Manchester", MinLat: 53.40, MaxLat: 53.54, MinLon: -2.32, MaxLon: -2.15},
				{Name: "Birmingham", MinLat: 52.38, MaxLat: 52.56, MinLon: -2.03, MaxLon: -1.73},
			},
			Timezones: []string{"Europe/London"},
			Locales:   []string{"en_GB"},
		},
		{
			CountryISO: "IN",
			Regions: []Region{
				{Name: "Delhi", MinLat: 28.40, MaxLat: 28.88, MinLon: 76.84, MaxLon: 77.35},
				{Name: "Mumbai", MinLat: 18.89, MaxLat: 19.27, MinLon: 72.77, MaxLon: 72.99},
				{Name: "Bengaluru", MinLat: 12.83, MaxLat: 13.14, MinLon: 77.46, MaxLon: 77.78},
			},
			Timezones: []string{"Asia/Kolkata"},
			Locales:   []string{"en_IN", "hi_IN"},
		},
		{
			CountryISO: "DE",
			Regions: []Region{
				{Name: "Berlin", MinLat: 52.34, MaxLat: 52.68, MinLon: 13.09, MaxLon: 13.76},
				{Name: "Munich", MinLat: 48.06, MaxLat: 48.25, MinLon: 11.36, MaxLon: 11.72},
				{Name: "Hamburg", MinLat: 53.40, MaxLat: 53.74, MinLon: 9.73, MaxLon: 10.33},
			},
			Timezones: []string{"Europe/Berlin"},
			Locales:   []string{"de_DE"},
		},
		{
			CountryISO: "FR",
			Regions: []Region{
				{Name: "Paris", MinLat: 48.82, MaxLat: 48.90, MinLon: 2.22, MaxLon: 2.47},
				{Name: "Lyon", MinLat: 45.71, MaxLat: 45.81, MinLon: 4.77, MaxLon: 4.90},
				{Name: "Marseille", MinLat: 43.21, MaxLat: 43.39, MinLon: 5.28, MaxLon: 5.53},
			},
			Timezones: []string{"Europe/Paris"},
			Locales:   []string{"fr_FR"},
		},
		{
			CountryISO: "JP",
			Regions: []Region{
				{Name: "Tokyo", MinLat: 35.53, MaxLat: 35.82, MinLon: 139.56, MaxLon: 139.92},
				{Name: "Osaka", MinLat: 34.57, MaxLat: 34.77, MinLon: 135.41, MaxLon: 135.59},
			},
			Timezones: []string{"Asia/Tokyo"},
			Locales:   []string{"ja_JP"},
		},
		{
			CountryISO: "CN",
			Regions: []Region{
				{Name: "Beijing", MinLat: 39.75, MaxLat: 40.05, MinLon: 116.20, MaxLon: 116.56},
				{Name: "Shanghai", MinLat: 31.09, MaxLat: 31.35, MinLon: 121.33, MaxLon: 121.65},
				{Name: "Shenzhen", MinLat: 22.49, MaxLat: 22.66, MinLon: 113.85, MaxLon: 114.20},
			},
			Timezones: []string{"Asia/Shanghai"},
			Locales:   []string{"zh_CN"},
		},
		{
			CountryISO: "AU",
			Regions: []Region{
				{Name: "Sydney", MinLat: -34.05, MaxLat: -33.70, MinLon: 150.90, MaxLon: 151.30},
				{Name: "Melbourne", MinLat: -37.95, MaxLat: -37.70, MinLon: 144.80, MaxLon: 145.10},
			},
			Timezones: []string{"Australia/Sydney", "Australia/Melbourne", "Australia/Brisbane", "Australia/Perth"},
			Locales:   []string{"en_AU"},
		},
		{
			CountryISO: "BR",
			Regions: []Region{
				{Name: "Sao Paulo", MinLat: -23.70, MaxLat: -23.45, MinLon: -46.80, MaxLon: -46.45},
				{Name: "Rio de Janeiro", MinLat: -23.00, MaxLat: -22.80, MinLon: -43.40, MaxLon: -43.15},
			},
			Timezones: []string{"America/Sao_Paulo"},
			Locales:   []string{"pt_BR"},
		},
		{
			CountryISO: "MX",
			Regions: []Region{
				{Name: "Mexico City", MinLat: 19.30, MaxLat: 19.55, MinLon: -99.25, MaxLon: -99.05},
				{Name: "Guadalajara", MinLat: 20.60, MaxLat: 20.75, MinLon: -103.42, MaxLon: -103.28},
			},
			Timezones: []string{"America/Mexico_City", "America/Monterrey", "America/Tijuana"},
			Locales:   []string{"es_MX"},
		},
		{
			CountryISO: "ES",
			Regions: []Region{
				{Name: "Madrid", MinLat: 40.35, MaxLat: 40.50, MinLon: -3.80, MaxLon: -3.60},
				{Name: "Barcelona", MinLat: 41.35, MaxLat: 41.45, MinLon: 2.10, MaxLon: 2.22},
			},
			Timezones: []string{"Europe/Madrid"},
			Locales:   []string{"es_ES", "ca_ES"},
		},
		{
			CountryISO: "IT",
			Regions: []Region{
				{Name: "Rome", MinLat: 41.83, MaxLat: 41.97, MinLon: 12.40, MaxLon: 12.60},
				{Name: "Milan", MinLat: 45.42, MaxLat: 45.52, MinLon: 9.12, MaxLon: 9.25},
			},
			Timezones: []string{"Europe/Rome"},
			Locales:   []string{"it_IT"},
		},
		{
			CountryISO: "KR",
			Regions: []Region{
				{Name: "Seoul", MinLat: 37.45, MaxLat: 37.65, MinLon: 126.85, MaxLon: 127.15},
				{Name: "Busan", MinLat: 35.05, MaxLat: 35.25, MinLon: 128.95, MaxLon: 129.15},
			},
			Timezones: []string{"Asia/Seoul"},
			Locales:   []string{"ko_KR"},
		},
		{
			CountryISO: "RU",
			Regions: []Region{
				{Name: "Moscow", MinLat: 55.60, MaxLat: 55.90, MinLon: 37.40, MaxLon: 37.80},
				{Name: "Saint Petersburg", MinLat: 59.85, MaxLat: 60.05, MinLon: 30.20, MaxLon: 30.45},
			},
			Timezones: []string{"Europe/Moscow"},
			Locales:   []string{"ru_RU"},
		},
		{
			CountryISO: "ID",
			Regions: []Region{
				{Name: "Jakarta", MinLat: -6.35, MaxLat: -6.10, MinLon: 106.70, MaxLon: 106.97},
			},
			Timezones: []string{"Asia/Jakarta", "Asia/Makassar"},
			Locales:   []string{"id_ID"},
		},
		{
			CountryISO: "PK",
			Regions: []Region{
				{Name: "Karachi", MinLat: 24.80, MaxLat: 25.05, MinLon: 66.95, MaxLon: 67.20},
				{Name: "Lahore", MinLat: 31.45, MaxLat: 31.60, MinLon: 74.25, MaxLon: 74.40},
			},
			Timezones: []string{"Asia/Karachi"},
			Locales:   []string{"ur_PK", "en_PK"},
		},
		{
			CountryISO: "ZA",
			Regions: []Region{
				{Name: "Johannesburg", MinLat: -26.30, MaxLat: -26.05, MinLon: 27.90, MaxLon: 28.15},
				{Name: "Cape Town", MinLat: -34.05, MaxLat: -33.85, MinLon: 18.40, MaxLon: 18.65},
			},
			Timezones: []string{"Africa/Johannesburg"},
			Locales:   []string{"en_ZA", "af_ZA"},
		},
		{
			CountryISO: "AE",
			Regions: []Region{
				{Name: "Dubai", MinLat: 25.05, MaxLat: 25.30, MinLon: 55.10, MaxLon: 55.40},
				{Name: "Abu Dhabi", MinLat: 24.40, MaxLat: 24.50, MinLon: 54.30, MaxLon: 54.45},
			},
			Timezones: []string{"Asia/Dubai"},
			Locales:   []string{"ar_AE", "en_AE"},
		},
		{
			CountryISO: "TR",
			Regions: []Region{
				{Name: "Istanbul", MinLat: 40.95, MaxLat: 41.10, MinLon: 28.80, MaxLon: 29.15},
				{Name: "Ankara", MinLat: 39.85, MaxLat: 40.00, MinLon: 32.75, MaxLon: 32.95},
			},
			Timezones: []string{"Europe/Istanbul"},
			Locales:   []string{"tr_TR"},
		},
		{
			CountryISO: "NL",
			Regions: []Region{
				{Name: "Amsterdam", MinLat: 52.33, MaxLat: 52.42, MinLon: 4.80, MaxLon: 4.98},
			},
			Timezones: []string{"Europe/Amsterdam"},
			Locales:   []string{"nl_NL"},
		},
		{
			CountryISO: "SE",
			Regions: []Region{
				{Name: "Stockholm", MinLat: 59.28, MaxLat: 59.38, MinLon: 17.95, MaxLon: 18.15},
			},
			Timezones: []string{"Europe/Stockholm"},
			Locales:   []string{"sv_SE"},
		},
		{
			CountryISO: "PL",
			Regions: []Region{
				{Name: "Warsaw", MinLat: 52.15, MaxLat: 52.30, MinLon: 20.90, MaxLon: 21.10},
			},
			Timezones: []string{"Europe/Warsaw"},
			Locales:   []string{"pl_PL"},
		},
		{
			CountryISO: "PH",
			Regions: []Region{
				{Name: "Metro Manila", MinLat: 14.50, MaxLat: 14.70, MinLon: 120.95, MaxLon: 121.10},
			},
			Timezones: []string{"Asia/Manila"},
			Locales:   []string{"en_PH", "fil_PH"},
		},
		{
			CountryISO: "SG",
			Regions: []Region{
				{Name: "Singapore", MinLat: 1.27, MaxLat: 1.42, MinLon: 103.70, MaxLon: 103.95},
			},
			Timezones: []string{"Asia/Singapore"},
			Locales:   []string{"en_SG", "zh_SG"},
		},
	}
}
