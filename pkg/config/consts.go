package config

const (
	EnvPrefix = "BULKCART"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv     = "BULKCART_APP_ENV"
	EnvAppPort    = "BULKCART_APP_PORT"
	EnvRedisURL   = "BULKCART_REDIS_URL"
	EnvDefaultMOQ = "BULKCART_DEFAULT_MOQ"
	EnvInvoiceURL = "BULKCART_INVOICE_URL"
)
