package refdata

// builtinCarriers は組み込みのキャリアテーブルを返す。
// ICCID発行者コードは原則としてMNCを用いる（米国はSIM上の実運用値）。
func builtinCarriers() []Carrier {
	return []Carrier{
		// 米国
		{MCCMNC: "310260", CountryISO: "US", CountryCode: "1", ICCIDIssuerCode: "260", DisplayName: "T-Mobile"},
		{MCCMNC: "310410", CountryISO: "US", CountryCode: "1", ICCIDIssuerCode: "410", DisplayName: "AT&T"},
		{MCCMNC: "311480", CountryISO: "US", CountryCode: "1", ICCIDIssuerCode: "480", DisplayName: "Verizon"},
		{MCCMNC: "310120", CountryISO: "US", CountryCode: "1", ICCIDIssuerCode: "120", DisplayName: "Sprint"},
		// カナダ
		{MCCMNC: "302720", CountryISO: "CA", CountryCode: "1", ICCIDIssuerCode: "720", DisplayName: "Rogers"},
		{MCCMNC: "302610", CountryISO: "CA", CountryCode: "1", ICCIDIssuerCode: "610", DisplayName: "Bell"},
		{MCCMNC: "302220", CountryISO: "CA", CountryCode: "1", ICCIDIssuerCode: "220", DisplayName: "Telus"},
		// 英国
		{MCCMNC: "23410", CountryISO: "GB", CountryCode: "44", ICCIDIssuerCode: "10", DisplayName: "O2 - UK"},
		{MCCMNC: "23415", CountryISO: "GB", CountryCode: "44", ICCIDIssuerCode: "15", DisplayName: "Vodafone UK"},
		{MCCMNC: "23420", CountryISO: "GB", CountryCode: "44", ICCIDIssuerCode: "20", DisplayName: "Three"},
		{MCCMNC: "23430", CountryISO: "GB", CountryCode: "44", ICCIDIssuerCode: "30", DisplayName: "EE"},
		// インド
		{MCCMNC: "40410", CountryISO: "IN", CountryCode: "91", ICCIDIssuerCode: "10", DisplayName: "Airtel"},
		{MCCMNC: "405857", CountryISO: "IN", CountryCode: "91", ICCIDIssuerCode: "857", DisplayName: "Jio"},
		{MCCMNC: "40420", CountryISO: "IN", CountryCode: "91", ICCIDIssuerCode: "20", DisplayName: "Vi India"},
		{MCCMNC: "40472", CountryISO: "IN", CountryCode: "91", ICCIDIssuerCode: "72", DisplayName: "BSNL Mobile"},
		// ドイツ
		{MCCMNC: "26201", CountryISO: "DE", CountryCode: "49", ICCIDIssuerCode: "01", DisplayName: "Telekom.de"},
		{MCCMNC: "26202", CountryISO: "DE", CountryCode: "49", ICCIDIssuerCode: "02", DisplayName: "Vodafone.de"},
		{MCCMNC: "26203", CountryISO: "DE", CountryCode: "49", ICCIDIssuerCode: "03", DisplayName: "O2 - DE"},
		// フランス
		{MCCMNC: "20801", CountryISO: "FR", CountryCode: "33", ICCIDIssuerCode: "01", DisplayName: "Orange F"},
		{MCCMNC: "20810", CountryISO: "FR", CountryCode: "33", ICCIDIssuerCode: "10", DisplayName: "SFR"},
		{MCCMNC: "20820", CountryISO: "FR", CountryCode: "33", ICCIDIssuerCode: "20", DisplayName: "Bouygues Telecom"},
		{MCCMNC: "20815", CountryISO: "FR", CountryCode: "33", ICCIDIssuerCode: "15", DisplayName: "Free Mobile"},
		// 日本
		{MCCMNC: "44010", CountryISO: "JP", CountryCode: "81", ICCIDIssuerCode: "10", DisplayName: "NTT DOCOMO"},
		{MCCMNC: "44020", CountryISO: "JP", CountryCode: "81", ICCIDIssuerCode: "20", DisplayName: "SoftBank"},
		{MCCMNC: "44051", CountryISO: "JP", CountryCode: "81", ICCIDIssuerCode: "51", DisplayName: "au"},
		{MCCMNC: "44011", CountryISO: "JP", CountryCode: "81", ICCIDIssuerCode: "11", DisplayName: "Rakuten Mobile"},
		// 中国
		{MCCMNC: "46000", CountryISO: "CN", CountryCode: "86", ICCIDIssuerCode: "00", DisplayName: "China Mobile"},
		{MCCMNC: "46001", CountryISO: "CN", CountryCode: "86", ICCIDIssuerCode: "01", DisplayName: "China Unicom"},
		{MCCMNC: "46011", CountryISO: "CN", CountryCode: "86", ICCIDIssuerCode: "11", DisplayName: "China Telecom"},
		// オーストラリア
		{MCCMNC: "50501", CountryISO: "AU", CountryCode: "61", ICCIDIssuerCode: "01", DisplayName: "Telstra"},
		{MCCMNC: "50502", CountryISO: "AU", CountryCode: "61", ICCIDIssuerCode: "02", DisplayName: "Optus"},
		{MCCMNC: "50503", CountryISO: "AU", CountryCode: "61", ICCIDIssuerCode: "03", DisplayName: "Vodafone AU"},
		// ブラジル
		{MCCMNC: "72405", CountryISO: "BR", CountryCode: "55", ICCIDIssuerCode: "05", DisplayName: "Claro BR"},
		{MCCMNC: "72406", CountryISO: "BR", CountryCode: "55", ICCIDIssuerCode: "06", DisplayName: "Vivo"},
		{MCCMNC: "72402", CountryISO: "BR", CountryCode: "55", ICCIDIssuerCode: "02", DisplayName: "TIM"},
		// メキシコ
		{MCCMNC: "334020", CountryISO: "MX", CountryCode: "52", ICCIDIssuerCode: "020", DisplayName: "Telcel"},
		{MCCMNC: "334050", CountryISO: "MX", CountryCode: "52", ICCIDIssuerCode: "050", DisplayName: "AT&T MX"},
		// スペイン
		{MCCMNC: "21401", CountryISO: "ES", CountryCode: "34", ICCIDIssuerCode: "01", DisplayName: "Vodafone ES"},
		{MCCMNC: "21403", CountryISO: "ES", CountryCode: "34", ICCIDIssuerCode: "03", DisplayName: "Orange ES"},
		{MCCMNC: "21407", CountryISO: "ES", CountryCode: "34", ICCIDIssuerCode: "07", DisplayName: "Movistar"},
		// イタリア
		{MCCMNC: "22201", CountryISO: "IT", CountryCode: "39", ICCIDIssuerCode: "01", DisplayName: "TIM"},
		{MCCMNC: "22210", CountryISO: "IT", CountryCode: "39", ICCIDIssuerCode: "10", DisplayName: "Vodafone IT"},
		{MCCMNC: "22288", CountryISO: "IT", CountryCode: "39", ICCIDIssuerCode: "88", DisplayName: "WINDTRE"},
		// 韓国
		{MCCMNC: "45005", CountryISO: "KR", CountryCode: "82", ICCIDIssuerCode: "05", DisplayName: "SK Telecom"},
		{MCCMNC: "45008", CountryISO: "KR", CountryCode: "82", ICCIDIssuerCode: "08", DisplayName: "KT"},
		{MCCMNC: "45006", CountryISO: "KR", CountryCode: "82", ICCIDIssuerCode: "06", DisplayName: "LG U+"},
		// ロシア
		{MCCMNC: "25001", CountryISO: "RU", CountryCode: "7", ICCIDIssuerCode: "01", DisplayName: "MTS"},
		{MCCMNC: "25002", CountryISO: "RU", CountryCode: "7", ICCIDIssuerCode: "02", DisplayName: "MegaFon"},
		{MCCMNC: "25099", CountryISO: "RU", CountryCode: "7", ICCIDIssuerCode: "99", DisplayName: "Beeline"},
		// インドネシア
		{MCCMNC: "51010", CountryISO: "ID", CountryCode: "62", ICCIDIssuerCode: "10", DisplayName: "Telkomsel"},
		{MCCMNC: "51001", CountryISO: "ID", CountryCode: "62", ICCIDIssuerCode: "01", DisplayName: "Indosat Ooredoo"},
		{MCCMNC: "51011", CountryISO: "ID", CountryCode: "62", ICCIDIssuerCode: "11", DisplayName: "XL Axiata"},
		// パキスタン
		{MCCMNC: "41001", CountryISO: "PK", CountryCode: "92", ICCIDIssuerCode: "01", DisplayName: "Jazz"},
		{MCCMNC: "41006", CountryISO: "PK", CountryCode: "92", ICCIDIssuerCode: "06", DisplayName: "Telenor PK"},
		// 南アフリカ
		{MCCMNC: "65501", CountryISO: "ZA", CountryCode: "27", ICCIDIssuerCode: "01", DisplayName: "Vodacom"},
		{MCCMNC: "65510", CountryISO: "ZA", CountryCode: "27", ICCIDIssuerCode: "10", DisplayName: "MTN"},
		// アラブ首長国連邦
		{MCCMNC: "42402", CountryISO: "AE", CountryCode: "971", ICCIDIssuerCode: "02", DisplayName: "Etisalat"},
		{MCCMNC: "42403", CountryISO: "AE", CountryCode: "971", ICCIDIssuerCode: "03", DisplayName: "du"},
		// トルコ
		{MCCMNC: "28601", CountryISO: "TR", CountryCode: "90", ICCIDIssuerCode: "01", DisplayName: "Turkcell"},
		{MCCMNC: "28602", CountryISO: "TR", CountryCode: "90", ICCIDIssuerCode: "02", DisplayName: "Vodafone TR"},
		// オランダ
		{MCCMNC: "20404", CountryISO: "NL", CountryCode: "31", ICCIDIssuerCode: "04", DisplayName: "Vodafone NL"},
		{MCCMNC: "20408", CountryISO: "NL", CountryCode: "31", ICCIDIssuerCode: "08", DisplayName: "KPN"},
		{MCCMNC: "20416", CountryISO: "NL", CountryCode: "31", ICCIDIssuerCode: "16", DisplayName: "Odido"},
		// スウェーデン
		{MCCMNC: "24001", CountryISO: "SE", CountryCode: "46", ICCIDIssuerCode: "01", DisplayName: "Telia"},
		{MCCMNC: "24007", CountryISO: "SE", CountryCode: "46", ICCIDIssuerCode: "07", DisplayName: "Tele2"},
		// ポーランド
		{MCCMNC: "26001", CountryISO: "PL", CountryCode: "48", ICCIDIssuerCode: "01", DisplayName: "Plus"},
		{MCCMNC: "26002", CountryISO: "PL", CountryCode: "48", ICCIDIssuerCode: "02", DisplayName: "T-Mobile PL"},
		{MCCMNC: "26003", CountryISO: "PL", CountryCode: "48", ICCIDIssuerCode: "03", DisplayName: "Orange PL"},
		// フィリピン
		{MCCMNC: "51502", CountryISO: "PH", CountryCode: "63", ICCIDIssuerCode: "02", DisplayName: "Globe"},
		{MCCMNC: "51503", CountryISO: "PH", CountryCode: "63", ICCIDIssuerCode: "03", DisplayName: "Smart"},
		// シンガポール
		{MCCMNC: "52501", CountryISO: "SG", CountryCode: "65", ICCIDIssuerCode: "01", DisplayName: "Singtel"},
		{MCCMNC: "52505", CountryISO: "SG", CountryCode: "65", ICCIDIssuerCode: "05", DisplayName: "StarHub"},
	}
}
