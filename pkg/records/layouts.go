package records

import "fmt"

// Published layout names.
const (
	LayoutFocusArea             = "FocusArea"
	LayoutFocusPosCap           = "FocusPosCap"
	LayoutFocusLimiterRange     = "FocusLimiterRange"
	LayoutFocusLimiterIndicator = "FocusLimiterIndicator"
	LayoutAFZoneCustom          = "AFZoneCustom"
	LayoutFaceFrame             = "FaceFrame"
	LayoutISOAutoSetting        = "ISOAutoSetting"
	LayoutCustomWBArea          = "CustomWBArea"
	LayoutFrameGuideGrid        = "FrameGuideGrid"
	LayoutCropAreaFrame         = "CropAreaFrame"
	LayoutFolderInfo            = "FolderInfo"
)

// Field is one packed field of a layout. Width is in bytes; byte-array
// fields are unsigned with their full array width.
type Field struct {
	Name   string
	Width  int
	Signed bool
}

// RecordLayout describes one published byte-packed layout.
type RecordLayout struct {
	Name   string
	Fields []Field
}

// Size is the packed size in bytes, the plain sum of the field widths.
func (l RecordLayout) Size() int {
	n := 0
	for _, f := range l.Fields {
		n += f.Width
	}
	return n
}

func i32(name string) Field { return Field{Name: name, Width: 4, Signed: true} }

var layouts = []RecordLayout{
	{Name: LayoutFocusArea, Fields: []Field{i32("H"), i32("V"), i32("Size")}},
	{Name: LayoutFocusPosCap, Fields: []Field{
		i32("InfinityPulse"), i32("MacroPulse"),
		i32("OverSearchInfinity"), i32("OverSearchMacro"),
		i32("DepthOfField"), i32("MinDriveStep"),
	}},
	{Name: LayoutFocusLimiterRange, Fields: []Field{i32("PosA"), i32("PosB")}},
	{Name: LayoutFocusLimiterIndicator, Fields: []Field{
		i32("Current"), i32("DOFNear"), i32("DOFFar"),
		i32("PosA"), i32("PosB"), i32("Valid"),
	}},
	{Name: LayoutAFZoneCustom, Fields: []Field{
		i32("H"), i32("V"),
		i32("HMin"), i32("HMax"), i32("VMin"), i32("VMax"),
	}},
	{Name: LayoutFaceFrame, Fields: []Field{
		i32("ID"), i32("Timestamp"),
		i32("X"), i32("Y"), i32("Width"), i32("Height"),
		i32("ColorIndex"), i32("Type"), i32("Likeness"), i32("Selected"),
	}},
	{Name: LayoutISOAutoSetting, Fields: []Field{
		i32("DefaultSensitivity"), i32("MaxSensitivity"), i32("ShutterSpeedFloor"),
		{Name: "Label", Width: 32},
	}},
	{Name: LayoutCustomWBArea, Fields: []Field{i32("X"), i32("Y"), i32("Size")}},
	{Name: LayoutFrameGuideGrid, Fields: []Field{
		i32("HPos0"), i32("HPos1"), i32("HPos2"), i32("HPos3"), i32("HPos4"),
		i32("VPos0"), i32("VPos1"), i32("VPos2"), i32("VPos3"), i32("VPos4"),
		i32("HLineWidth"), i32("VLineWidth"), i32("ColorIndex"), i32("Alpha"),
	}},
	{Name: LayoutCropAreaFrame, Fields: []Field{i32("X"), i32("Y"), i32("Width"), i32("Height")}},
	{Name: LayoutFolderInfo, Fields: []Field{
		{Name: "Suffix", Width: 6},
		i32("Number"), i32("MaxFrame"), i32("Status"),
	}},
}

var layoutsByName = map[string]RecordLayout{}

func init() {
	for _, l := range layouts {
		if _, dup := layoutsByName[l.Name]; dup {
			panic(fmt.Sprintf("records: duplicate layout %s", l.Name))
		}
		layoutsByName[l.Name] = l
	}
}

// Layout resolves a published layout name.
func Layout(name string) (RecordLayout, error) {
	l, ok := layoutsByName[name]
	if !ok {
		return RecordLayout{}, fmt.Errorf("layout %q: %w", name, ErrUnknownLayout)
	}
	return l, nil
}

// Layouts returns every published layout name in publication order.
func Layouts() []string {
	out := make([]string, len(layouts))
	for i, l := range layouts {
		out[i] = l.Name
	}
	return out
}
