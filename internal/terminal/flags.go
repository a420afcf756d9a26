package terminal

// set of supported terminal flags
const (
	// FlagAutoConfirm is the name of the auto-confirm flag
	FlagAutoConfirm = "auto-confirm"

	// FlagAutoConfirmShort is the short name of the auto-confirm flag
	FlagAutoConfirmShort = "y"

	// FlagAutoConfirmUsage is the usage text for the auto-confirm flag
	FlagAutoConfirmUsage = "set to automatically proceed through CLI confirmations"

	// FlagDisableColors is the name of the disable-colors flag
	FlagDisableColors = "disable-colors"

	// FlagDisableColorsUsage is the usage text for the disable-colors flag
	FlagDisableColorsUsage = "disable output styling"
)
