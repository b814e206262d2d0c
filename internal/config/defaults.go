package config

const (
	defaultQueueName             = "Zebra-ZD421-203dpi-ZPL"
	defaultPrinterHost           = "127.0.0.1"
	defaultPrinterPort           = 631
	defaultHomeboxTimeoutSeconds = 10
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Printer: Printer{
			QueueName: defaultQueueName,
			Host:      defaultPrinterHost,
			Port:      defaultPrinterPort,
		},
		Homebox: Homebox{
			TimeoutSeconds: defaultHomeboxTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
