package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rahadian/member-portal/config"
	repo "github.com/rahadian/member-portal/internal/domain/repository"
	"github.com/rahadian/member-portal/internal/session"
	"github.com/rahadian/member-portal/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	mongoClient *mongo.Client
	redisClient *redis.Client

	userRepo     repo.UserRepository
	sessionStore session.Store
	cookies      *helpers.CookieManager
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }

func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }

func SetMongo(m *mongo.Client) { mongoClient = m }
func GetMongo() *mongo.Client  { return mongoClient }

func SetRedis(r *redis.Client) { redisClient = r }
func GetRedis() *redis.Client  { return redisClient }

func SetUserRepository(r repo.UserRepository) { userRepo = r }
func GetUserRepository() repo.UserRepository  { return userRepo }

func SetSessionStore(s session.Store) { sessionStore = s }
func GetSessionStore() session.Store  { return sessionStore }

func SetCookies(m *helpers.CookieManager) { cookies = m }
func GetCookies() *helpers.CookieManager  { return cookies }
