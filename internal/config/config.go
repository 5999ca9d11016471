package config

import (
	"net"
	"time"
)

type Config struct {
	App      AppConfig      `env-prefix:"APP_"`
	HTTP     HTTPConfig     `env-prefix:"HTTP_"`
	Database DatabaseConfig `env-prefix:"DB_"`
	Demo     DemoConfig     `env-prefix:"DEMO_"`
	Sync     SyncConfig     `env-prefix:"SYNC_"`
	Auth     AuthConfig     `env-prefix:"AUTH_"`
}

type AppConfig struct {
	LogLevel string `env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	Pretty   bool   `env:"PRETTY" env-default:"false"`
}

type HTTPConfig struct {
	Addr string `env:"ADDR" env-default:":8081"`
}

type DatabaseConfig struct {
	Port           string        `env:"PORT" env-default:"5432"`
	Host           string        `env:"HOST"`
	Name           string        `env:"NAME" env-default:"postgres"`
	User           string        `env:"USER" env-default:"user"`
	Password       string        `env:"PASSWORD"`
	RetryAttempts  uint          `env:"RETRY_ATTEMPTS" env-default:"3" validate:"min=1,max=10"`
	RetryDelay     time.Duration `env:"RETRY_DELAY" env-default:"300ms"`
	MaxConns       int32         `env:"MAX_CONNS" env-default:"5" validate:"min=1,max=20"`
	MigrateOnStart bool          `env:"MIGRATE_ON_START" env-default:"true"`
	AppName        string        `env:"APP_NAME" env-default:"exec-notes"`
}

// Configured reports whether enough is set to reach a database. Without it
// the service runs in demo mode.
func (c DatabaseConfig) Configured() bool {
	return c.Host != "" && c.Password != ""
}

func (c DatabaseConfig) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

type DemoConfig struct {
	// Store is where demo notes are kept: file, sqlite or memory.
	Store string `env:"STORE" env-default:"file" validate:"oneof=file sqlite memory"`
	Dir   string `env:"DIR" env-default:".demo"`
	Force bool   `env:"FORCE" env-default:"false"`
}

type SyncConfig struct {
	NotificationLimit int    `env:"NOTIFICATION_LIMIT" env-default:"20" validate:"min=1,max=100"`
	// Channel must match the pg_notify channel of the change feed migration.
	Channel string `env:"CHANNEL" env-default:"note_changes" validate:"eq=note_changes"`
}

type AuthConfig struct {
	Token string `env:"TOKEN"`
}
