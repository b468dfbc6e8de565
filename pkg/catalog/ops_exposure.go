package catalog

// Exposure family, 0x20xx.
const (
	OpSetAEMode           Code = 0x2001
	OpGetAEMode           Code = 0x2002
	OpCapAEMode           Code = 0x2003
	OpSetShutterSpeed     Code = 0x2004
	OpGetShutterSpeed     Code = 0x2005
	OpCapShutterSpeed     Code = 0x2006
	OpSetExposureBias     Code = 0x2007
	OpGetExposureBias     Code = 0x2008
	OpCapExposureBias     Code = 0x2009
	OpSetMeteringMode     Code = 0x200A
	OpGetMeteringMode     Code = 0x200B
	OpCapMeteringMode     Code = 0x200C
	OpSetShutterType      Code = 0x200D
	OpGetShutterType      Code = 0x200E
	OpCapShutterType      Code = 0x200F
	OpSetSensitivity      Code = 0x2010
	OpGetSensitivity      Code = 0x2011
	OpCapSensitivity      Code = 0x2012
	OpSetISOAutoSetting   Code = 0x2013
	OpGetISOAutoSetting   Code = 0x2014
	OpCapISOAutoSetting   Code = 0x2015
	OpSetAELock           Code = 0x2016
	OpGetAELock           Code = 0x2017
)

var exposureOps = []opdef{
	{"SetAEMode", OpSetAEMode},
	{"GetAEMode", OpGetAEMode},
	{"CapAEMode", OpCapAEMode},
	{"SetShutterSpeed", OpSetShutterSpeed},
	{"GetShutterSpeed", OpGetShutterSpeed},
	{"CapShutterSpeed", OpCapShutterSpeed},
	{"SetExposureBias", OpSetExposureBias},
	{"GetExposureBias", OpGetExposureBias},
	{"CapExposureBias", OpCapExposureBias},
	{"SetMeteringMode", OpSetMeteringMode},
	{"GetMeteringMode", OpGetMeteringMode},
	{"CapMeteringMode", OpCapMeteringMode},
	{"SetShutterType", OpSetShutterType},
	{"GetShutterType", OpGetShutterType},
	{"CapShutterType", OpCapShutterType},
	{"SetSensitivity", OpSetSensitivity},
	{"GetSensitivity", OpGetSensitivity},
	{"CapSensitivity", OpCapSensitivity},
	{"SetISOAutoSetting", OpSetISOAutoSetting},
	{"GetISOAutoSetting", OpGetISOAutoSetting},
	{"CapISOAutoSetting", OpCapISOAutoSetting},
	{"SetAELock", OpSetAELock},
	{"GetAELock", OpGetAELock},
}
