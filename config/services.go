package config

import "time"

// Logging is shared by every service config.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (l *Logging) fromEnv() {
	overrideString(&l.Level, "LOG_LEVEL")
	overrideString(&l.Format, "LOG_FORMAT")
}

// Diner configures diner-svc.
type Diner struct {
	Addr          string        `yaml:"addr"`
	APIBaseURL    string        `yaml:"api_base_url"`
	HTTPTimeout   time.Duration `yaml:"http_timeout"`
	PopupDelay    time.Duration `yaml:"popup_delay"`
	SessionTTL    time.Duration `yaml:"session_ttl"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
	QRSize        int           `yaml:"qr_size"`
	Logging       Logging       `yaml:"logging"`
}

// LoadDiner applies defaults, then CONFIG_FILE, then environment overrides.
func LoadDiner() (Diner, error) {
	cfg := Diner{
		Addr:          ":8084",
		APIBaseURL:    "http://localhost:8080/api",
		HTTPTimeout:   30 * time.Second,
		PopupDelay:    5 * time.Second,
		SessionTTL:    2 * time.Hour,
		SweepInterval: 5 * time.Minute,
		QRSize:        256,
		Logging:       Logging{Level: "info", Format: "json"},
	}
	if err := LoadFile(GetEnv("CONFIG_FILE", ""), &cfg); err != nil {
		return cfg, err
	}

	overrideString(&cfg.Addr, "DINER_ADDR")
	overrideString(&cfg.APIBaseURL, "API_BASE_URL")
	overrideDuration(&cfg.HTTPTimeout, "HTTP_TIMEOUT")
	overrideDuration(&cfg.PopupDelay, "POPUP_DELAY")
	overrideDuration(&cfg.SessionTTL, "SESSION_TTL")
	overrideDuration(&cfg.SweepInterval, "SESSION_SWEEP_INTERVAL")
	overrideInt(&cfg.QRSize, "QR_SIZE")
	cfg.Logging.fromEnv()
	return cfg, nil
}

// Kitchen configures kitchen-svc.
type Kitchen struct {
	Addr         string        `yaml:"addr"`
	APIBaseURL   string        `yaml:"api_base_url"`
	HTTPTimeout  time.Duration `yaml:"http_timeout"`
	PollInterval time.Duration `yaml:"poll_interval"`
	Kafka        Kafka         `yaml:"kafka"`
	Logging      Logging       `yaml:"logging"`
}

func LoadKitchen() (Kitchen, error) {
	cfg := Kitchen{
		Addr:         ":8085",
		APIBaseURL:   "http://localhost:8080/api",
		HTTPTimeout:  30 * time.Second,
		PollInterval: 5 * time.Second,
		Kafka:        Kafka{Topic: "order-events", GroupID: "kitchen-portal"},
		Logging:      Logging{Level: "info", Format: "json"},
	}
	if err := LoadFile(GetEnv("CONFIG_FILE", ""), &cfg); err != nil {
		return cfg, err
	}

	overrideString(&cfg.Addr, "KITCHEN_ADDR")
	overrideString(&cfg.APIBaseURL, "API_BASE_URL")
	overrideDuration(&cfg.HTTPTimeout, "HTTP_TIMEOUT")
	overrideDuration(&cfg.PollInterval, "POLL_INTERVAL")
	overrideString(&cfg.Kafka.Broker, "KAFKA_BROKER")
	overrideString(&cfg.Kafka.Topic, "KAFKA_TOPIC")
	overrideString(&cfg.Kafka.GroupID, "KAFKA_GROUP_ID")
	cfg.Logging.fromEnv()
	return cfg, nil
}

// Order configures order-svc.
type Order struct {
	Addr         string        `yaml:"addr"`
	Postgres     Postgres      `yaml:"postgres"`
	Redis        Redis         `yaml:"redis"`
	Kafka        Kafka         `yaml:"kafka"`
	NutritionTTL time.Duration `yaml:"nutrition_ttl"`
	Logging      Logging       `yaml:"logging"`
}

func LoadOrder() (Order, error) {
	cfg := Order{
		Addr:         ":8081",
		Postgres:     Postgres{Host: "localhost", Port: "5432", Name: "foodfriend", User: "postgres"},
		Redis:        Redis{Host: "localhost", Port: "6379"},
		Kafka:        Kafka{Topic: "order-events"},
		NutritionTTL: 24 * time.Hour,
		Logging:      Logging{Level: "info", Format: "json"},
	}
	if err := LoadFile(GetEnv("CONFIG_FILE", ""), &cfg); err != nil {
		return cfg, err
	}

	overrideString(&cfg.Addr, "ORDER_ADDR")
	overrideString(&cfg.Postgres.Host, "DB_HOST")
	overrideString(&cfg.Postgres.Port, "DB_PORT")
	overrideString(&cfg.Postgres.Name, "DB_NAME")
	overrideString(&cfg.Postgres.User, "DB_USER")
	overrideString(&cfg.Postgres.Password, "DB_PASSWORD")
	overrideString(&cfg.Redis.Host, "REDIS_HOST")
	overrideString(&cfg.Redis.Port, "REDIS_PORT")
	overrideString(&cfg.Kafka.Broker, "KAFKA_BROKER")
	overrideString(&cfg.Kafka.Topic, "KAFKA_TOPIC")
	overrideDuration(&cfg.NutritionTTL, "NUTRITION_TTL")
	cfg.Logging.fromEnv()
	return cfg, nil
}

// Gateway configures api-gateway.
type Gateway struct {
	Addr          string  `yaml:"addr"`
	OrderSvcURL   string  `yaml:"order_svc_url"`
	ChatSvcURL    string  `yaml:"chat_svc_url"`
	DinerSvcURL   string  `yaml:"diner_svc_url"`
	KitchenSvcURL string  `yaml:"kitchen_svc_url"`
	FrontendDir   string  `yaml:"frontend_dir"`
	Logging       Logging `yaml:"logging"`
}

func LoadGateway() (Gateway, error) {
	cfg := Gateway{
		Addr:          ":8080",
		OrderSvcURL:   "http://localhost:8081",
		ChatSvcURL:    "http://localhost:5000",
		DinerSvcURL:   "http://localhost:8084",
		KitchenSvcURL: "http://localhost:8085",
		FrontendDir:   "./frontend",
		Logging:       Logging{Level: "info", Format: "json"},
	}
	if err := LoadFile(GetEnv("CONFIG_FILE", ""), &cfg); err != nil {
		return cfg, err
	}

	overrideString(&cfg.Addr, "GATEWAY_ADDR")
	overrideString(&cfg.OrderSvcURL, "ORDER_SVC_URL")
	overrideString(&cfg.ChatSvcURL, "CHAT_SVC_URL")
	overrideString(&cfg.DinerSvcURL, "DINER_SVC_URL")
	overrideString(&cfg.KitchenSvcURL, "KITCHEN_SVC_URL")
	overrideString(&cfg.FrontendDir, "FRONTEND_DIR")
	cfg.Logging.fromEnv()
	return cfg, nil
}
