package constants

// Environments
const (
	EnvLocal   = "local"
	EnvDevelop = "develop"
	EnvProd    = "prod"
)

// Pub/Sub providers
const (
	PubSubProviderNone   = ""
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Session stores
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Mail drivers
const (
	MailDriverSMTP = "smtp"
	MailDriverLog  = "log"
)
