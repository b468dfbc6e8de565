package catalog

// Maintenance family, 0x41xx.
const (
	OpGetShutterCount            Code = 0x4101
	OpExecuteSensorCleaning      Code = 0x4102
	OpSetSensorCleaningSchedule  Code = 0x4103
	OpGetSensorCleaningSchedule  Code = 0x4104
	OpCapSensorCleaningSchedule  Code = 0x4105
	OpFormatMedia                Code = 0x4106
	OpResetSettings              Code = 0x4107
	OpExecutePixelMapping        Code = 0x4108
	OpGetInternalTemperature     Code = 0x4109
)

var maintenanceOps = []opdef{
	{"GetShutterCount", OpGetShutterCount},
	{"ExecuteSensorCleaning", OpExecuteSensorCleaning},
	{"SetSensorCleaningSchedule", OpSetSensorCleaningSchedule},
	{"GetSensorCleaningSchedule", OpGetSensorCleaningSchedule},
	{"CapSensorCleaningSchedule", OpCapSensorCleaningSchedule},
	{"FormatMedia", OpFormatMedia},
	{"ResetSettings", OpResetSettings},
	{"ExecutePixelMapping", OpExecutePixelMapping},
	{"GetInternalTemperature", OpGetInternalTemperature},
}
