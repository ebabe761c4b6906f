package config

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"      validate:"required"`
	Logger      LoggerConfig      `yaml:"logger"      validate:"required"`
	Gin         GinConfig         `yaml:"gin"         validate:"required"`
	Storage     StorageConfig     `yaml:"storage"     validate:"required"`
	Postgres    PostgresConfig    `yaml:"postgres"`
	Redis       RedisConfig       `yaml:"redis"`
	RabbitMQ    RabbitMQConfig    `yaml:"rabbitmq"`
	Auth        AuthConfig        `yaml:"auth"        validate:"required"`
	Booking     BookingConfig     `yaml:"booking"     validate:"required"`
	Wallet      WalletConfig      `yaml:"wallet"      validate:"required"`
	Idempotency IdempotencyConfig `yaml:"idempotency"`
	Tracing     TracingConfig     `yaml:"tracing"`
	Scheduler   SchedulerConfig   `yaml:"scheduler"   validate:"required"`
	Telegram    TelegramConfig    `yaml:"telegram"`
}

type ServerConfig struct {
	Addr           string        `yaml:"addr"            env:"SERVER_ADDR"            env-default:":8080" validate:"required"`
	ReadTimeout    time.Duration `yaml:"read_timeout"    env:"SERVER_READ_TIMEOUT"    env-default:"10s"   validate:"gt=0"`
	WriteTimeout   time.Duration `yaml:"write_timeout"   env:"SERVER_WRITE_TIMEOUT"   env-default:"10s"   validate:"gt=0"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"    env:"SERVER_IDLE_TIMEOUT"    env-default:"60s"   validate:"gt=0"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"SERVER_REQUEST_TIMEOUT" env-default:"5s"    validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

// StorageConfig selects the booking store. memory keeps everything in process and
// needs neither Postgres nor migrations.
type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres" validate:"required,oneof=memory postgres"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost" validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"      validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"  validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"  validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"rahi"      validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"        validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"         validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"        validate:"gt=0"`
	MigrationsDir   string        `yaml:"migrations_dir"    env:"DB_MIGRATIONS_DIR"    env-default:"migrations"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// RedisConfig is optional: without an address idempotency keys and OTP attempts live in memory.
type RedisConfig struct {
	Addr     string `yaml:"addr"      env:"REDIS_ADDR"      env-default:""`
	Password string `yaml:"password"  env:"REDIS_PASSWORD"  env-default:""`
	DB       int    `yaml:"db"        env:"REDIS_DB"        env-default:"0"  validate:"min=0"`
	PoolSize int    `yaml:"pool_size" env:"REDIS_POOL_SIZE" env-default:"10" validate:"min=1"`
}

// RabbitMQConfig is optional: without a URL events are delivered in process.
type RabbitMQConfig struct {
	URL      string `yaml:"url"      env:"RABBITMQ_URL"      env-default:""`
	Exchange string `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"rahi.bookings"      validate:"required"`
	Queue    string `yaml:"queue"    env:"RABBITMQ_QUEUE"    env-default:"rahi.notifications" validate:"required"`
}

type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-default:""    validate:"required,min=16"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL"  env-default:"72h" validate:"gt=0"`
}

type BookingConfig struct {
	CommissionRate float64       `yaml:"commission_rate" env:"BOOKING_COMMISSION_RATE" env-default:"0.10" validate:"gte=0,lt=1"`
	OTPDigits      int           `yaml:"otp_digits"      env:"BOOKING_OTP_DIGITS"      env-default:"4"    validate:"min=4,max=6"`
	OTPMaxAttempts int           `yaml:"otp_max_attempts" env:"BOOKING_OTP_MAX_ATTEMPTS" env-default:"5"  validate:"min=1"`
	OTPWindow      time.Duration `yaml:"otp_window"      env:"BOOKING_OTP_WINDOW"      env-default:"15m"  validate:"gt=0"`
	CandidatePool  int           `yaml:"candidate_pool"  env:"BOOKING_CANDIDATE_POOL"  env-default:"5"    validate:"min=1"`
	MatchBatch     int           `yaml:"match_batch"     env:"BOOKING_MATCH_BATCH"     env-default:"100"  validate:"min=1"`
}

type WalletConfig struct {
	MinWithdrawal float64 `yaml:"min_withdrawal" env:"WALLET_MIN_WITHDRAWAL" env-default:"100"          validate:"gte=0"`
	Timezone      string  `yaml:"timezone"       env:"WALLET_TIMEZONE"       env-default:"Asia/Kolkata" validate:"required"`
}

// Location is where "today" and "this week" boundaries of the earnings summary fall.
func (w WalletConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(w.Timezone)
	if err != nil {
		return nil, fmt.Errorf("wallet timezone %q: %w", w.Timezone, err)
	}
	return loc, nil
}

func (w WalletConfig) Minimum() decimal.Decimal {
	return decimal.NewFromFloat(w.MinWithdrawal).Round(2)
}

type IdempotencyConfig struct {
	TTL time.Duration `yaml:"ttl" env:"IDEMPOTENCY_TTL" env-default:"24h" validate:"gt=0"`
}

type TracingConfig struct {
	Endpoint    string  `yaml:"endpoint"     env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:""`
	SampleRatio float64 `yaml:"sample_ratio" env:"OTEL_SAMPLE_RATIO"           env-default:"1" validate:"gte=0,lte=1"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"10s" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
