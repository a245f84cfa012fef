package vocab

// CAT+ ontology classes.
const (
	CatCampaign               = Cat + "Campaign"
	CatBatch                  = Cat + "Batch"
	CatSample                 = Cat + "Sample"
	CatObservation            = Cat + "Observation"
	CatPlate                  = Cat + "Plate"
	CatWell                   = Cat + "Well"
	CatSolvent                = Cat + "Solvent"
	CatCartridge              = Cat + "Cartridge"
	CatMeasurement            = Cat + "Measurement"
	CatPeakList               = Cat + "PeakList"
	CatProduct                = Cat + "Product"
	CatDimension              = Cat + "Dimension"
	CatDeviceSystemDocument   = Cat + "DeviceSystemDocument"
	CatProcessedDataDocument  = Cat + "ProcessedDataDocument"
	CatSampleDocument         = Cat + "SampleDocument"
	CatInjectionDocument      = Cat + "InjectionDocument"
	CatCubeStructure          = Cat + "CubeStructure"
	CatChromatogramDataCube   = Cat + "ChromatogramDataCube"
	CatUVSpectrumDataCube     = Cat + "ThreeDimensionalUltravioletSpectrumDataCube"
	CatMassSpectrumDataCube   = Cat + "ThreeDimensionalMassSpectrumDataCube"
	CatInjectionVolumeSetting = Cat + "AutosamplerInjectionVolumeSetting"

	// ErrorMargin is both a class and the property linking an observation to it.
	CatErrorMargin = Cat + "errorMargin"
)

// Action classes. The JSON "actionName" value selects one of them.
const (
	CatAddAction            = Cat + "AddAction"
	CatSetTemperatureAction = Cat + "SetTemperatureAction"
	CatFiltrateAction       = Cat + "FiltrateAction"
	CatShakeAction          = Cat + "ShakeAction"
	CatSetVacuumAction      = Cat + "SetVacuumAction"
	CatSetPressureAction    = Cat + "SetPressureAction"
)

// CAT+ properties.
const (
	CatHasBatch                 = Cat + "hasBatch"
	CatHasSample                = Cat + "hasSample"
	CatHasSolvent               = Cat + "hasSolvent"
	CatHasWell                  = Cat + "hasWell"
	CatHasPlate                 = Cat + "hasPlate"
	CatHasCartridge             = Cat + "hasCartridge"
	CatHasChemical              = Cat + "hasChemical"
	CatHasObjective             = Cat + "hasObjective"
	CatHasLiquidChromatography  = Cat + "hasLiquidChromatography"
	CatHasProduct               = Cat + "hasProduct"
	CatSubEquipmentName         = Cat + "subEquipmentName"
	CatIsSpmeProcess            = Cat + "isSpmeProcess"
	CatSpeedInRPM               = Cat + "speedInRPM"
	CatVolumeEvaporationFinal   = Cat + "volumeEvaporationFinal"
	CatTemperatureTumbleStirrer = Cat + "temperatureTumbleStirrerShape"
	CatSpeedTumbleStirrer       = Cat + "speedTumbleStirrerShape"
	CatVacuum                   = Cat + "vacuum"
	CatTemperatureShaker        = Cat + "temperatureShakerShape"
	CatTemperatureInDegC        = Cat + "temperatureInDegC"
	CatOrder                    = Cat + "order"
	CatDispenseType             = Cat + "dispenseType"
	CatStartDuration            = Cat + "startDuration"
	CatEndingDuration           = Cat + "endingDuration"
	CatReactionType             = Cat + "reactionType"
	CatReactionName             = Cat + "reactionName"
	CatOptimizationType         = Cat + "optimizationType"
	CatGenericObjective         = Cat + "genericObjective"
	CatCampaignClass            = Cat + "campaignClass"
	CatCampaignType             = Cat + "campaignType"
	CatCriteria                 = Cat + "criteria"
	CatContainerID              = Cat + "containerID"
	CatContainerBarcode         = Cat + "containerBarcode"
	CatRole                     = Cat + "role"
	CatVialShape                = Cat + "vialShape"
	CatExpectedDatum            = Cat + "expectedDatum"
	CatInternalBarCode          = Cat + "internalBarCode"
	CatMeasuredQuantity         = Cat + "measuredQuantity"
	CatCasNumber                = Cat + "casNumber"
	CatSwissCatNumber           = Cat + "swissCatNumber"
	CatVolume                   = Cat + "volume"
	CatCartridgeName            = Cat + "cartridgeName"
	CatCartridgeComposition     = Cat + "cartridgeComposition"
	CatPeak                     = Cat + "Peak"
	CatMeasure                  = Cat + "measure"
	CatDimensionProperty        = Cat + "dimension"
)
