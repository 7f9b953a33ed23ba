package config

import (
	"context"
	"fmt"

	"rentdesk/services/logger"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Components are the external resources the server depends on.
type Components struct {
	DB         *gorm.DB
	Redis      *redis.Client
	Cloudinary *cloudinary.Cloudinary
}

func (c *Components) Close() {
	if c.Redis != nil {
		c.Redis.Close()
	}
	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

func InitApp(cfg *Config) (*gin.Engine, *melody.Melody, *cron.Cron) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", "X-Request-ID")
	configCors.AllowCredentials = true
	if len(cfg.AllowedOrigins) > 0 {
		configCors.AllowOrigins = cfg.AllowedOrigins
	} else {
		configCors.AllowOriginFunc = func(origin string) bool {
			return true
		}
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	return router, melody.New(), cron.New()
}

func InitComponents(ctx context.Context, cfg *Config, log logger.Logger) (*Components, error) {
	db, err := ConnectDB(cfg)
	if err != nil {
		return nil, err
	}
	comps := &Components{DB: db}

	comps.Redis, err = ConnectRedis(ctx, cfg.Redis)
	if err != nil {
		comps.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	if comps.Redis == nil {
		log.Info("REDIS_ADDR not set, logout token revocation is disabled")
	}

	comps.Cloudinary, err = ConnectCloudinary(cfg.CloudinaryURL)
	if err != nil {
		comps.Close()
		return nil, fmt.Errorf("failed to init Cloudinary: %w", err)
	}

	log.Info("All components initialized successfully")
	return comps, nil
}
