package config

import (
	"strings"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "100KB"
	defaultCookieName         = "SHOPLOC_SESSION"
	defaultSessionTTL         = 2 * time.Hour
	defaultCodeLength         = 6
	defaultCodeTTL            = 10 * time.Minute
	defaultPasswordMinLength  = 6
	defaultWorkerPort         = 8081
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// AllowedOrigins enables credentialed CORS for the listed front ends.
		AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordPolicy *PasswordPolicyConfig `json:"passwordPolicy" yaml:"passwordPolicy"`

	Session *SessionConfig `json:"session" yaml:"session"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Verification *VerificationConfig `json:"verification" yaml:"verification"`

	Mail *MailConfig `json:"mail" yaml:"mail"`

	// PubSub configuration for order event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for merchant storefront codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Worker configuration for the notifier process
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// PasswordPolicyConfig defines the minimal password requirements checked at registration
type PasswordPolicyConfig struct {
	MinLength int `json:"minLength" yaml:"minLength"`
}

// SessionConfig defines the login session cookie and its backing store
type SessionConfig struct {
	// Store is "memory" or "redis"
	Store      string        `json:"store" yaml:"store"`
	CookieName string        `json:"cookieName" yaml:"cookieName"`
	TTL        time.Duration `json:"ttl" yaml:"ttl"`
	Secure     bool          `json:"secure" yaml:"secure"`
}

// RedisConfig defines the redis connection used by the redis session store
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// VerificationConfig defines the emailed one-time login code
type VerificationConfig struct {
	CodeLength int           `json:"codeLength" yaml:"codeLength"`
	CodeTTL    time.Duration `json:"codeTTL" yaml:"codeTTL"`
	// MaxAttempts caps wrong code submissions per pending login. Zero means unlimited.
	MaxAttempts int `json:"maxAttempts" yaml:"maxAttempts"`
}

// MailConfig defines the outgoing mail transport
type MailConfig struct {
	// Driver is "smtp" or "log"
	Driver   string `json:"driver" yaml:"driver"`
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	From     string `json:"from" yaml:"from"`
	FromName string `json:"fromName" yaml:"fromName"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// PushAudience is the audience of the OIDC token on push requests. Empty
	// means the URL the request was received on.
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`

	// PushServiceAccount, when set, must match the email claim of the token.
	PushServiceAccount string `json:"pushServiceAccount" yaml:"pushServiceAccount"`
}

// WorkerConfig defines the notifier worker HTTP listener
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
}

// New reads config.yaml from the working directory or a nearby config/
// directory, then applies environment overrides and defaults.
func New() (*Config, error) {
	cfg := &Config{}
	if err := load(cfg, "config", searchDirs()); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills the optional sections so consumers never see nil pointers.
func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}

	if cfg.PasswordPolicy == nil {
		cfg.PasswordPolicy = &PasswordPolicyConfig{}
	}
	if cfg.PasswordPolicy.MinLength <= 0 {
		cfg.PasswordPolicy.MinLength = defaultPasswordMinLength
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.Store == "" {
		cfg.Session.Store = "memory"
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = defaultCookieName
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = defaultSessionTTL
	}

	if cfg.Verification == nil {
		cfg.Verification = &VerificationConfig{}
	}
	if cfg.Verification.CodeLength <= 0 {
		cfg.Verification.CodeLength = defaultCodeLength
	}
	if cfg.Verification.CodeTTL <= 0 {
		cfg.Verification.CodeTTL = defaultCodeTTL
	}

	if cfg.Mail == nil {
		cfg.Mail = &MailConfig{Driver: "log"}
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Port <= 0 {
		cfg.Worker.Port = defaultWorkerPort
	}
}
