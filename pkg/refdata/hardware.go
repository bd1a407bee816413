package refdata

// builtinTACs はメーカー別のTAC（IMEI先頭8桁）プールを返す。
func builtinTACs() map[Manufacturer][]string {
	return map[Manufacturer][]string{
		ManufacturerSamsung:  {"35332510", "35290611", "35875807", "35391110", "35926210", "35170312", "35474513", "35449209"},
		ManufacturerGoogle:   {"35282210", "35384410", "35467811", "35891709", "35309511"},
		ManufacturerXiaomi:   {"86769303", "86893503", "86255504", "86445605", "86033206"},
		ManufacturerOnePlus:  {"86588204", "86101404", "86265305", "86777806"},
		ManufacturerHuawei:   {"86690103", "86767804", "86482505", "86407106"},
		ManufacturerMotorola: {"35456710", "35904711", "35617612", "35208813"},
		ManufacturerSony:     {"35889110", "35442211", "35169712"},
		ManufacturerOppo:     {"86811105", "86127606", "86540907"},
		ManufacturerVivo:     {"86492306", "86602007", "86971508"},
		ManufacturerNokia:    {"35693911", "35212412", "35841013"},
	}
}

// builtinOUIs はメーカー別のOUI（MACアドレス先頭3オクテット）を返す。
func builtinOUIs() map[Manufacturer][]string {
	return map[Manufacturer][]string{
		ManufacturerSamsung:  {"00:12:FB", "00:15:99", "00:16:32", "00:1D:25", "5C:0A:5B", "8C:77:12", "A0:82:1F", "F0:25:B7"},
		ManufacturerGoogle:   {"3C:5A:B4", "F4:F5:E8", "54:60:09", "F8:8F:CA", "00:1A:11"},
		ManufacturerXiaomi:   {"00:9E:C8", "28:6C:07", "34:CE:00", "64:09:80", "F8:A4:5F"},
		ManufacturerOnePlus:  {"94:65:2D", "C0:EE:FB", "64:A2:F9"},
		ManufacturerHuawei:   {"00:18:82", "00:1E:10", "28:6E:D4", "48:46:FB", "80:B6:86"},
		ManufacturerMotorola: {"9C:D9:17", "E8:91:20", "40:78:6A", "5C:51:88"},
		ManufacturerSony:     {"30:17:C8", "58:48:22", "94:CE:2C", "00:24:BE"},
		ManufacturerOppo:     {"2C:5B:B8", "A4:3D:78", "E8:BB:A8"},
		ManufacturerVivo:     {"3C:A3:48", "70:47:E9", "20:5E:F7"},
		ManufacturerNokia:    {"00:1A:16", "00:21:FC", "64:A7:69"},
	}
}

// builtinSerialTemplates はメーカー別のシリアル番号テンプレートを返す。
//
//	# 数字, @ 英大文字(I/O/Q除く), * 英数字(I/O/Q除く), % 16進大文字, ~ 16進小文字
//
// \ の直後の文字とそれ以外の文字はそのまま出力される。
func builtinSerialTemplates() map[Manufacturer][]string {
	return map[Manufacturer][]string{
		ManufacturerSamsung:  {"R5#@##*****", "RF8@##*****"},
		ManufacturerGoogle:   {"##@#%%%%@@####"},
		ManufacturerXiaomi:   {"~~~~~~~~"},
		ManufacturerOnePlus:  {"~~~~~~~~"},
		ManufacturerHuawei:   {"@@@####@########"},
		ManufacturerMotorola: {"ZY##*****@"},
		ManufacturerSony:     {"CB5A******"},
		ManufacturerOppo:     {"%%%%%%%%%%%%"},
		ManufacturerVivo:     {"@@@#########"},
		ManufacturerNokia:    {"###@@@@#######"},
	}
}

// GenericSerialTemplate はメーカー不明時のシリアル番号テンプレート。
const GenericSerialTemplate = "************"

func builtinRouters() []RouterVendor {
	return []RouterVendor{
		{Name: "TP-Link", OUIs: []string{"50:C7:BF", "14:CC:20", "98:DA:C4"}, SSIDTemplates: []string{"TP-Link_%%%%", "TP-Link_%%%%_5G"}},
		{Name: "NETGEAR", OUIs: []string{"A0:40:A0", "20:E5:2A"}, SSIDTemplates: []string{"NETGEAR##", "NETGEAR##-5G"}},
		{Name: "Linksys", OUIs: []string{"58:6D:8F", "C0:56:27"}, SSIDTemplates: []string{"Linksys#####"}},
		{Name: "ASUS", OUIs: []string{"04:D4:C4", "2C:56:DC"}, SSIDTemplates: []string{"ASUS_%%", "ASUS_%%_5G"}},
		{Name: "D-Link", OUIs: []string{"1C:7E:E5", "C4:A8:1D"}, SSIDTemplates: []string{"dlink-%%%%"}},
		{Name: "Ubiquiti", OUIs: []string{"78:8A:20", "24:5A:4C"}, SSIDTemplates: []string{"UniFi-@@@@"}},
	}
}
