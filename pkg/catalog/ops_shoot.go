package catalog

// Shoot family, 0x30xx: shutter release, bulb, movie record, capture delay.
const (
	OpPressShutter        Code = 0x3001
	OpStartBulb           Code = 0x3002
	OpStopBulb            Code = 0x3003
	OpStartMovieRecording Code = 0x3004
	OpStopMovieRecording  Code = 0x3005
	OpSetCaptureDelay     Code = 0x3006
	OpGetCaptureDelay     Code = 0x3007
	OpCapCaptureDelay     Code = 0x3008
)

var shootOps = []opdef{
	{"PressShutter", OpPressShutter},
	{"StartBulb", OpStartBulb},
	{"StopBulb", OpStopBulb},
	{"StartMovieRecording", OpStartMovieRecording},
	{"StopMovieRecording", OpStopMovieRecording},
	{"SetCaptureDelay", OpSetCaptureDelay},
	{"GetCaptureDelay", OpGetCaptureDelay},
	{"CapCaptureDelay", OpCapCaptureDelay},
}
