package catalog

// opLayouts binds the operations that exchange a compound record to the
// published layout name. The layouts themselves live in the records
// package; the binding is by name so hosts can join the two registries.
var opLayouts = map[string]string{
	"SetFocusArea":             "FocusArea",
	"GetFocusArea":             "FocusArea",
	"CapFocusPos":              "FocusPosCap",
	"GetFocusLimiterRange":     "FocusLimiterRange",
	"GetFocusLimiterIndicator": "FocusLimiterIndicator",
	"SetAFZoneCustom":          "AFZoneCustom",
	"GetAFZoneCustom":          "AFZoneCustom",
	"CapAFZoneCustom":          "AFZoneCustom",
	"GetFaceFrameInfo":         "FaceFrame",
	"SetISOAutoSetting":        "ISOAutoSetting",
	"GetISOAutoSetting":        "ISOAutoSetting",
	"SetCustomWBArea":          "CustomWBArea",
	"GetCustomWBArea":          "CustomWBArea",
	"SetFrameGuideGridInfo":    "FrameGuideGrid",
	"GetFrameGuideGridInfo":    "FrameGuideGrid",
	"GetCropAreaFrame":         "CropAreaFrame",
	"GetFolderInfo":            "FolderInfo",
}

// OperationLayout reports the record layout an operation exchanges, if
// any. Operations without a record binding take plain scalars.
func OperationLayout(name string) (string, bool) {
	l, ok := opLayouts[name]
	return l, ok
}
