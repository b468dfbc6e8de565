package catalog

// Utility family, 0x40xx. Clock, owner strings, battery and media state.
const (
	OpSetDateTime        Code = 0x4001
	OpGetDateTime        Code = 0x4002
	OpSetArtist          Code = 0x4003
	OpGetArtist          Code = 0x4004
	OpSetCopyright       Code = 0x4005
	OpGetCopyright       Code = 0x4006
	OpSetDeviceName      Code = 0x4007
	OpGetDeviceName      Code = 0x4008
	OpGetFirmwareVersion Code = 0x4009
	OpGetModelName       Code = 0x400A
	OpGetBodySerial      Code = 0x400B
	OpSetBeepVolume      Code = 0x400C
	OpGetBeepVolume      Code = 0x400D
	OpCapBeepVolume      Code = 0x400E
	OpGetBatteryLevel    Code = 0x400F
	OpGetBatteryInfo     Code = 0x4010
	OpGetMediaStatus     Code = 0x4011
	OpGetMediaCapacity   Code = 0x4012
	OpGetFolderInfo      Code = 0x4013
	OpSetFolderNumber    Code = 0x4014
	OpGetShotsRemaining  Code = 0x4015
)

var utilityOps = []opdef{
	{"SetDateTime", OpSetDateTime},
	{"GetDateTime", OpGetDateTime},
	{"SetArtist", OpSetArtist},
	{"GetArtist", OpGetArtist},
	{"SetCopyright", OpSetCopyright},
	{"GetCopyright", OpGetCopyright},
	{"SetDeviceName", OpSetDeviceName},
	{"GetDeviceName", OpGetDeviceName},
	{"GetFirmwareVersion", OpGetFirmwareVersion},
	{"GetModelName", OpGetModelName},
	{"GetBodySerial", OpGetBodySerial},
	{"SetBeepVolume", OpSetBeepVolume},
	{"GetBeepVolume", OpGetBeepVolume},
	{"CapBeepVolume", OpCapBeepVolume},
	{"GetBatteryLevel", OpGetBatteryLevel},
	{"GetBatteryInfo", OpGetBatteryInfo},
	{"GetMediaStatus", OpGetMediaStatus},
	{"GetMediaCapacity", OpGetMediaCapacity},
	{"GetFolderInfo", OpGetFolderInfo},
	{"SetFolderNumber", OpSetFolderNumber},
	{"GetShotsRemaining", OpGetShotsRemaining},
}
