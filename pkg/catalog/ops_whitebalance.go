package catalog

// White balance family, 0x23xx.
const (
	OpSetWhiteBalance  Code = 0x2301
	OpGetWhiteBalance  Code = 0x2302
	OpCapWhiteBalance  Code = 0x2303
	OpSetColorTemp     Code = 0x2304
	OpGetColorTemp     Code = 0x2305
	OpCapColorTemp     Code = 0x2306
	OpSetWBShiftR      Code = 0x2307
	OpGetWBShiftR      Code = 0x2308
	OpCapWBShiftR      Code = 0x2309
	OpSetWBShiftB      Code = 0x230A
	OpGetWBShiftB      Code = 0x230B
	OpCapWBShiftB      Code = 0x230C
	OpSetCustomWBArea  Code = 0x230D
	OpGetCustomWBArea  Code = 0x230E
	OpCapCustomWBArea  Code = 0x230F
	OpCaptureCustomWB  Code = 0x2310
)

var whiteBalanceOps = []opdef{
	{"SetWhiteBalance", OpSetWhiteBalance},
	{"GetWhiteBalance", OpGetWhiteBalance},
	{"CapWhiteBalance", OpCapWhiteBalance},
	{"SetColorTemp", OpSetColorTemp},
	{"GetColorTemp", OpGetColorTemp},
	{"CapColorTemp", OpCapColorTemp},
	{"SetWBShiftR", OpSetWBShiftR},
	{"GetWBShiftR", OpGetWBShiftR},
	{"CapWBShiftR", OpCapWBShiftR},
	{"SetWBShiftB", OpSetWBShiftB},
	{"GetWBShiftB", OpGetWBShiftB},
	{"CapWBShiftB", OpCapWBShiftB},
	{"SetCustomWBArea", OpSetCustomWBArea},
	{"GetCustomWBArea", OpGetCustomWBArea},
	{"CapCustomWBArea", OpCapCustomWBArea},
	{"CaptureCustomWB", OpCaptureCustomWB},
}
