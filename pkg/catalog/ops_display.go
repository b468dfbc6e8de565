package catalog

// Display family, 0x42xx. Finder, monitor and on-screen furniture.
const (
	OpSetViewMode           Code = 0x4201
	OpGetViewMode           Code = 0x4202
	OpCapViewMode           Code = 0x4203
	OpSetEVFBrightness      Code = 0x4204
	OpGetEVFBrightness      Code = 0x4205
	OpCapEVFBrightness      Code = 0x4206
	OpSetLCDBrightness      Code = 0x4207
	OpGetLCDBrightness      Code = 0x4208
	OpCapLCDBrightness      Code = 0x4209
	OpSetPerformanceMode    Code = 0x420A
	OpGetPerformanceMode    Code = 0x420B
	OpCapPerformanceMode    Code = 0x420C
	OpSetCropMode           Code = 0x420D
	OpGetCropMode           Code = 0x420E
	OpCapCropMode           Code = 0x420F
	OpGetCropAreaFrame      Code = 0x4210
	OpSetPreviewTime        Code = 0x4211
	OpGetPreviewTime        Code = 0x4212
	OpCapPreviewTime        Code = 0x4213
	OpSetFrameGuideMode     Code = 0x4214
	OpGetFrameGuideMode     Code = 0x4215
	OpCapFrameGuideMode     Code = 0x4216
	OpSetFrameGuideGridInfo Code = 0x4217
	OpGetFrameGuideGridInfo Code = 0x4218
	OpSetCustomDispInfo     Code = 0x4219
	OpGetCustomDispInfo     Code = 0x421A
	OpCapCustomDispInfo     Code = 0x421B
	OpSetFuncLock           Code = 0x421C
	OpGetFuncLock           Code = 0x421D
	OpCapFuncLock           Code = 0x421E
	OpSetFunctionButton     Code = 0x421F
	OpGetFunctionButton     Code = 0x4220
	OpCapFunctionButton     Code = 0x4221
)

var displayOps = []opdef{
	{"SetViewMode", OpSetViewMode},
	{"GetViewMode", OpGetViewMode},
	{"CapViewMode", OpCapViewMode},
	{"SetEVFBrightness", OpSetEVFBrightness},
	{"GetEVFBrightness", OpGetEVFBrightness},
	{"CapEVFBrightness", OpCapEVFBrightness},
	{"SetLCDBrightness", OpSetLCDBrightness},
	{"GetLCDBrightness", OpGetLCDBrightness},
	{"CapLCDBrightness", OpCapLCDBrightness},
	{"SetPerformanceMode", OpSetPerformanceMode},
	{"GetPerformanceMode", OpGetPerformanceMode},
	{"CapPerformanceMode", OpCapPerformanceMode},
	{"SetCropMode", OpSetCropMode},
	{"GetCropMode", OpGetCropMode},
	{"CapCropMode", OpCapCropMode},
	{"GetCropAreaFrame", OpGetCropAreaFrame},
	{"SetPreviewTime", OpSetPreviewTime},
	{"GetPreviewTime", OpGetPreviewTime},
	{"CapPreviewTime", OpCapPreviewTime},
	{"SetFrameGuideMode", OpSetFrameGuideMode},
	{"GetFrameGuideMode", OpGetFrameGuideMode},
	{"CapFrameGuideMode", OpCapFrameGuideMode},
	{"SetFrameGuideGridInfo", OpSetFrameGuideGridInfo},
	{"GetFrameGuideGridInfo", OpGetFrameGuideGridInfo},
	{"SetCustomDispInfo", OpSetCustomDispInfo},
	{"GetCustomDispInfo", OpGetCustomDispInfo},
	{"CapCustomDispInfo", OpCapCustomDispInfo},
	{"SetFuncLock", OpSetFuncLock},
	{"GetFuncLock", OpGetFuncLock},
	{"CapFuncLock", OpCapFuncLock},
	{"SetFunctionButton", OpSetFunctionButton},
	{"GetFunctionButton", OpGetFunctionButton},
	{"CapFunctionButton", OpCapFunctionButton},
}
