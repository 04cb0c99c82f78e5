package config

import (
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"

	minTokenSecretLength = 32
	devTokenSecret       = "club-manager-development-secret-not-for-production"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                   string
	ServiceName              string
	ServiceVersion           string
	HTTPAddr                 string
	ReadTimeout              time.Duration
	WriteTimeout             time.Duration
	LogLevel                 logging.Level
	LogFormat                string
	StoreDriver              string
	DBURL                    string
	DBMaxOpenConns           int
	DBMaxIdleConns           int
	CacheEnabled             bool
	CacheTTL                 time.Duration
	CORSAllowedOrigins       []string
	SwaggerEnabled           bool
	AuthTokenSecret          string
	AuthTokenIssuer          string
	AuthTokenTTL             time.Duration
	AuthBcryptCost           int
	LoginRateLimitPerMinute  int
	LoginRateLimitBurst      int
	MatchPageSize            int
	HonorsPageSize           int
	RecategorizeWorkers      int
	SeedEnabled              bool
	SeedAdminEmail           string
	SeedAdminPassword        string
	PprofEnabled             bool
	PprofAddr                string
	UptraceEnabled           bool
	UptraceDSN               string
	PyroscopeEnabled         bool
	PyroscopeServerAddress   string
	PyroscopeAppName         string
	PyroscopeAuthToken       string
	PyroscopeBasicAuthUser   string
	PyroscopeBasicAuthPasswd string
	PyroscopeUploadRate      time.Duration
}

// Load reads the optional .env file (ENV_FILE overrides the path) and then
// the process environment. Variables already set in the environment win.
func Load() (Config, error) {
	envFile := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, errors.Wrapf(err, "load %s", envFile)
	}

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}
	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, errors.Wrap(err, "parse SWAGGER_ENABLED")
	}

	readTimeout, err := getEnvAsPositiveDuration("APP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := getEnvAsPositiveDuration("APP_WRITE_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}

	logFormat := strings.ToLower(strings.TrimSpace(getEnv("APP_LOG_FORMAT", "json")))
	if logFormat != "json" && logFormat != "console" {
		return Config{}, errors.Newf("invalid APP_LOG_FORMAT %q: valid values are json, console", logFormat)
	}

	storeDriver := strings.ToLower(strings.TrimSpace(getEnv("STORE_DRIVER", StoreMemory)))
	if storeDriver != StoreMemory && storeDriver != StorePostgres {
		return Config{}, errors.Newf("invalid STORE_DRIVER %q: valid values are %s, %s", storeDriver, StoreMemory, StorePostgres)
	}
	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if storeDriver == StorePostgres && dbURL == "" {
		return Config{}, errors.New("DB_URL is required when STORE_DRIVER=postgres")
	}
	dbMaxOpenConns, err := getEnvAsInt("DB_MAX_OPEN_CONNS", 10)
	if err != nil {
		return Config{}, errors.Wrap(err, "parse DB_MAX_OPEN_CONNS")
	}
	dbMaxIdleConns, err := getEnvAsInt("DB_MAX_IDLE_CONNS", 5)
	if err != nil {
		return Config{}, errors.Wrap(err, "parse DB_MAX_IDLE_CONNS")
	}
	if dbMaxOpenConns < 1 || dbMaxIdleConns < 0 {
		return Config{}, errors.New("DB_MAX_OPEN_CONNS must be >= 1 and DB_MAX_IDLE_CONNS must be >= 0")
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, errors.Wrap(err, "parse CACHE_ENABLED")
	}
	cacheTTL, err := getEnvAsPositiveDuration("CACHE_TTL", "60s")
	if err != nil {
		return Config{}, err
	}

	tokenSecret := getEnv("AUTH_TOKEN_SECRET", "")
	if tokenSecret == "" && appEnv != EnvProd {
		tokenSecret = devTokenSecret
	}
	if len(tokenSecret) < minTokenSecretLength {
		return Config{}, errors.Newf("AUTH_TOKEN_SECRET must be at least %d bytes", minTokenSecretLength)
	}
	tokenTTL, err := getEnvAsPositiveDuration("AUTH_TOKEN_TTL", "24h")
	if err != nil {
		return Config{}, err
	}
	bcryptCost, err := getEnvAsInt("AUTH_BCRYPT_COST", 12)
	if err != nil {
		return Config{}, errors.Wrap(err, "parse AUTH_BCRYPT_COST")
	}

	loginRatePerMinute, err := getEnvAsInt("LOGIN_RATE_LIMIT_PER_MINUTE", 10)
	if err != nil {
		return Config{}, errors.Wrap(err, "parse LOGIN_RATE_LIMIT_PER_MINUTE")
	}
	loginRateBurst, err := getEnvAsInt("LOGIN_RATE_LIMIT_BURST", 5)
	if err != nil {
		return Config{}, errors.Wrap(err, "parse LOGIN_RATE_LIMIT_BURST")
	}

	matchPageSize, err := getEnvAsPositiveInt("MATCH_PAGE_SIZE", 10)
	if err != nil {
		return Config{}, err
	}
	honorsPageSize, err := getEnvAsPositiveInt("HONORS_PAGE_SIZE", 10)
	if err != nil {
		return Config{}, err
	}
	recategorizeWorkers, err := getEnvAsPositiveInt("RECATEGORIZE_WORKERS", 4)
	if err != nil {
		return Config{}, err
	}

	seedEnabled, err := strconv.ParseBool(getEnv("SEED_ENABLED", "true"))
	if err != nil {
		return Config{}, errors.Wrap(err, "parse SEED_ENABLED")
	}
	seedAdminEmail := strings.TrimSpace(getEnv("SEED_ADMIN_EMAIL", ""))
	seedAdminPassword := getEnv("SEED_ADMIN_PASSWORD", "")
	if (seedAdminEmail == "") != (seedAdminPassword == "") {
		return Config{}, errors.New("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD must be set together")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, errors.Wrap(err, "parse PPROF_ENABLED")
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, errors.Wrap(err, "parse UPTRACE_ENABLED")
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, errors.New("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, errors.Wrap(err, "parse PYROSCOPE_ENABLED")
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, errors.New("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsPositiveDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                   appEnv,
		ServiceName:              getEnv("APP_SERVICE_NAME", "club-manager-api"),
		ServiceVersion:           getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                 getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:              readTimeout,
		WriteTimeout:             writeTimeout,
		LogLevel:                 parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		LogFormat:                logFormat,
		StoreDriver:              storeDriver,
		DBURL:                    dbURL,
		DBMaxOpenConns:           dbMaxOpenConns,
		DBMaxIdleConns:           dbMaxIdleConns,
		CacheEnabled:             cacheEnabled,
		CacheTTL:                 cacheTTL,
		CORSAllowedOrigins:       splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SwaggerEnabled:           swaggerEnabled,
		AuthTokenSecret:          tokenSecret,
		AuthTokenTTL:             tokenTTL,
		AuthBcryptCost:           bcryptCost,
		LoginRateLimitPerMinute:  loginRatePerMinute,
		LoginRateLimitBurst:      loginRateBurst,
		MatchPageSize:            matchPageSize,
		HonorsPageSize:           honorsPageSize,
		RecategorizeWorkers:      recategorizeWorkers,
		SeedEnabled:              seedEnabled,
		SeedAdminEmail:           seedAdminEmail,
		SeedAdminPassword:        seedAdminPassword,
		PprofEnabled:             pprofEnabled,
		PprofAddr:                pprofAddr,
		UptraceEnabled:           uptraceEnabled,
		UptraceDSN:               uptraceDSN,
		PyroscopeEnabled:         pyroscopeEnabled,
		PyroscopeServerAddress:   pyroscopeServerAddress,
		PyroscopeAuthToken:       strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:   strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPasswd: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:      pyroscopeUploadRate,
	}
	cfg.AuthTokenIssuer = strings.TrimSpace(getEnv("AUTH_TOKEN_ISSUER", cfg.ServiceName))
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, errors.New("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, errors.New("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsPositiveInt(key string, fallback int) (int, error) {
	out, err := getEnvAsInt(key, fallback)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", key)
	}
	if out <= 0 {
		return 0, errors.Newf("%s must be > 0", key)
	}
	return out, nil
}

func getEnvAsPositiveDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", key)
	}
	if out <= 0 {
		return 0, errors.Newf("%s must be > 0", key)
	}
	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", errors.Newf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
