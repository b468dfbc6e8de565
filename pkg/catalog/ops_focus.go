package catalog

// Lens and focus family, 0x22xx.
const (
	OpSetFocusMode            Code = 0x2201
	OpGetFocusMode            Code = 0x2202
	OpCapFocusMode            Code = 0x2203
	OpSetAFMode               Code = 0x2204
	OpGetAFMode               Code = 0x2205
	OpCapAFMode               Code = 0x2206
	OpSetFocusArea            Code = 0x2207
	OpGetFocusArea            Code = 0x2208
	OpCapFocusArea            Code = 0x2209
	OpSetFocusPos             Code = 0x220A
	OpGetFocusPos             Code = 0x220B
	OpCapFocusPos             Code = 0x220C
	OpSetMacroMode            Code = 0x220D
	OpGetMacroMode            Code = 0x220E
	OpCapMacroMode            Code = 0x220F
	OpSetAFPriority           Code = 0x2210
	OpGetAFPriority           Code = 0x2211
	OpCapAFPriority           Code = 0x2212
	OpSetMFAssist             Code = 0x2213
	OpGetMFAssist             Code = 0x2214
	OpCapMFAssist             Code = 0x2215
	OpSetFocusCheck           Code = 0x2216
	OpGetFocusCheck           Code = 0x2217
	OpCapFocusCheck           Code = 0x2218
	OpSetInterlockAEAFArea    Code = 0x2219
	OpGetInterlockAEAFArea    Code = 0x221A
	OpCapInterlockAEAFArea    Code = 0x221B
	OpSetAFIlluminator        Code = 0x221C
	OpGetAFIlluminator        Code = 0x221D
	OpCapAFIlluminator        Code = 0x221E
	OpSetFaceDetectionMode    Code = 0x221F
	OpGetFaceDetectionMode    Code = 0x2220
	OpCapFaceDetectionMode    Code = 0x2221
	OpSetEyeAFMode            Code = 0x2222
	OpGetEyeAFMode            Code = 0x2223
	OpCapEyeAFMode            Code = 0x2224
	OpSetAperture             Code = 0x2225
	OpGetAperture             Code = 0x2226
	OpCapAperture             Code = 0x2227
	OpSetFocusLimiterPosA     Code = 0x2228
	OpSetFocusLimiterPosB     Code = 0x2229
	OpClearFocusLimiter       Code = 0x222A
	OpGetFocusLimiterRange    Code = 0x222B
	OpGetFocusLimiterIndicator Code = 0x222C
	OpGetFaceFrameInfo        Code = 0x222D
	OpGetLensName             Code = 0x222E
	OpGetLensFocalLength      Code = 0x222F
	OpSetAFZoneCustom         Code = 0x2230
	OpGetAFZoneCustom         Code = 0x2231
	OpCapAFZoneCustom         Code = 0x2232
)

var lensFocusOps = []opdef{
	{"SetFocusMode", OpSetFocusMode},
	{"GetFocusMode", OpGetFocusMode},
	{"CapFocusMode", OpCapFocusMode},
	{"SetAFMode", OpSetAFMode},
	{"GetAFMode", OpGetAFMode},
	{"CapAFMode", OpCapAFMode},
	{"SetFocusArea", OpSetFocusArea},
	{"GetFocusArea", OpGetFocusArea},
	{"CapFocusArea", OpCapFocusArea},
	{"SetFocusPos", OpSetFocusPos},
	{"GetFocusPos", OpGetFocusPos},
	{"CapFocusPos", OpCapFocusPos},
	{"SetMacroMode", OpSetMacroMode},
	{"GetMacroMode", OpGetMacroMode},
	{"CapMacroMode", OpCapMacroMode},
	{"SetAFPriority", OpSetAFPriority},
	{"GetAFPriority", OpGetAFPriority},
	{"CapAFPriority", OpCapAFPriority},
	{"SetMFAssist", OpSetMFAssist},
	{"GetMFAssist", OpGetMFAssist},
	{"CapMFAssist", OpCapMFAssist},
	{"SetFocusCheck", OpSetFocusCheck},
	{"GetFocusCheck", OpGetFocusCheck},
	{"CapFocusCheck", OpCapFocusCheck},
	{"SetInterlockAEAFArea", OpSetInterlockAEAFArea},
	{"GetInterlockAEAFArea", OpGetInterlockAEAFArea},
	{"CapInterlockAEAFArea", OpCapInterlockAEAFArea},
	{"SetAFIlluminator", OpSetAFIlluminator},
	{"GetAFIlluminator", OpGetAFIlluminator},
	{"CapAFIlluminator", OpCapAFIlluminator},
	{"SetFaceDetectionMode", OpSetFaceDetectionMode},
	{"GetFaceDetectionMode", OpGetFaceDetectionMode},
	{"CapFaceDetectionMode", OpCapFaceDetectionMode},
	{"SetEyeAFMode", OpSetEyeAFMode},
	{"GetEyeAFMode", OpGetEyeAFMode},
	{"CapEyeAFMode", OpCapEyeAFMode},
	{"SetAperture", OpSetAperture},
	{"GetAperture", OpGetAperture},
	{"CapAperture", OpCapAperture},
	{"SetFocusLimiterPosA", OpSetFocusLimiterPosA},
	{"SetFocusLimiterPosB", OpSetFocusLimiterPosB},
	{"ClearFocusLimiter", OpClearFocusLimiter},
	{"GetFocusLimiterRange", OpGetFocusLimiterRange},
	{"GetFocusLimiterIndicator", OpGetFocusLimiterIndicator},
	{"GetFaceFrameInfo", OpGetFaceFrameInfo},
	{"GetLensName", OpGetLensName},
	{"GetLensFocalLength", OpGetLensFocalLength},
	{"SetAFZoneCustom", OpSetAFZoneCustom},
	{"GetAFZoneCustom", OpGetAFZoneCustom},
	{"CapAFZoneCustom", OpCapAFZoneCustom},
}
