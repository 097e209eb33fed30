package config

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// Postgres holds connection settings for the order store.
type Postgres struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

func (p Postgres) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Name)
}

// Redis holds connection settings for the nutrition cache.
type Redis struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

func (r Redis) Addr() string {
	return r.Host + ":" + r.Port
}

// Kafka holds broker and topic settings for order events.
type Kafka struct {
	Broker  string `yaml:"broker"`
	Topic   string `yaml:"topic"`
	GroupID string `yaml:"group_id"`
}

// Enabled reports whether a broker was configured.
func (k Kafka) Enabled() bool {
	return k.Broker != ""
}

func MustInitPostgres(cfg Postgres, log logrus.FieldLogger) *sql.DB {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	if err = db.Ping(); err != nil {
		log.WithError(err).Fatal("failed to ping database")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg Redis, log logrus.FieldLogger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.WithError(err).Fatal("failed to connect to redis")
	}

	return client
}

func NewKafkaReader(cfg Kafka) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Broker},
		Topic:   cfg.Topic,
		GroupID: cfg.GroupID,
	})
}

func NewKafkaWriter(cfg Kafka) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.Broker),
		Topic:    cfg.Topic,
		Balancer: &kafka.LeastBytes{},
	}
}
