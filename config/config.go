package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string
	ServerPort string
	BaseURL    string

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string

	KafkaBroker   string
	KafkaTopic    string
	KafkaGroupID  string
	KafkaUsername string
	KafkaPassword string

	AccessSecret       string
	TokenExpireMinutes int

	SMSGatewayURL   string
	SMSApiKey       string
	SMSSignName     string
	SMSTemplateCode string
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: env file not found or could not be loaded:", err)
		}
	}

	expireMinutes := 30
	if raw := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			expireMinutes = v
		}
	}

	return Config{
		Env:        os.Getenv("ENV"),
		ServerPort: os.Getenv("SERVER_PORT"),
		BaseURL:    os.Getenv("BASE_URL"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    os.Getenv("KAFKA_TOPIC"),
		KafkaGroupID:  os.Getenv("KAFKA_GROUP_ID"),
		KafkaUsername: os.Getenv("KAFKA_USERNAME"),
		KafkaPassword: os.Getenv("KAFKA_PASSWORD"),

		AccessSecret:       os.Getenv("ACCESS_SECRET"),
		TokenExpireMinutes: expireMinutes,

		SMSGatewayURL:   os.Getenv("SMS_GATEWAY_URL"),
		SMSApiKey:       os.Getenv("SMS_API_KEY"),
		SMSSignName:     os.Getenv("SMS_SIGN_NAME"),
		SMSTemplateCode: os.Getenv("SMS_TEMPLATE_CODE"),
	}
}
