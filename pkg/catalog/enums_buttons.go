package catalog

// Button-assignment domains.
const (
	DomainFunctionButton Domain = "FunctionButton"
	DomainButtonFunction Domain = "ButtonFunction"
)

func registerButtonEnums() {
	registerDomain(DomainFunctionButton, KindToken)
	registerEnum(DomainFunctionButton, "Fn1", 1)
	registerEnum(DomainFunctionButton, "Fn2", 2)
	registerEnum(DomainFunctionButton, "Fn3", 3)
	registerEnum(DomainFunctionButton, "Fn4", 4)
	registerEnum(DomainFunctionButton, "Fn5", 5)
	registerEnum(DomainFunctionButton, "Fn6", 6)

	registerDomain(DomainButtonFunction, KindToken)
	registerEnum(DomainButtonFunction, "None", 0)
	registerEnum(DomainButtonFunction, "ImageSize", 1)
	registerEnum(DomainButtonFunction, "ImageQuality", 2)
	registerEnum(DomainButtonFunction, "FilmSimulation", 3)
	registerEnum(DomainButtonFunction, "DynamicRange", 4)
	registerEnum(DomainButtonFunction, "WhiteBalance", 5)
	registerEnum(DomainButtonFunction, "FocusArea", 6)
	registerEnum(DomainButtonFunction, "Histogram", 7)
	registerEnum(DomainButtonFunction, "DepthPreview", 8)
	registerEnum(DomainButtonFunction, "ExposurePreview", 9)
	registerEnum(DomainButtonFunction, "LiveViewZoom", 10)
	registerEnum(DomainButtonFunction, "FaceDetection", 11)
}
