package main

import (
	"database/sql"
	"log"
	"time"

	"firebase.google.com/go/messaging"
	"github.com/redis/go-redis/v9"

	"github.com/diarhyseni/real-estateapp/internal/config"
	"github.com/diarhyseni/real-estateapp/internal/handlers"
	"github.com/diarhyseni/real-estateapp/internal/repositories"
	"github.com/diarhyseni/real-estateapp/internal/services"
	"github.com/diarhyseni/real-estateapp/utils"
)

type application struct {
	cfg      config.Config
	errorLog *log.Logger
	infoLog  *log.Logger
	db       *sql.DB
	redis    *redis.Client

	tokenManager *utils.Manager
	contactFeed  *ContactFeed

	userRepo *repositories.UserRepository

	propertyHandler *handlers.PropertyHandler
	categoryHandler *handlers.CategoryHandler
	typeHandler     *handlers.TypeHandler
	userHandler     *handlers.UserHandler
	contactHandler  *handlers.ContactHandler
	favoriteHandler *handlers.FavoriteHandler
	uploadHandler   *handlers.UploadHandler
}

func initializeApp(cfg config.Config, db *sql.DB, redisClient *redis.Client, fcmClient *messaging.Client, errorLog, infoLog *log.Logger) *application {
	// Repositories
	propertyRepo := repositories.PropertyRepository{DB: db}
	categoryRepo := repositories.CategoryRepository{DB: db}
	typeRepo := repositories.TypeRepository{DB: db}
	userRepo := repositories.UserRepository{DB: db}
	contactRepo := repositories.ContactRepository{DB: db}
	favoriteRepo := repositories.FavoriteRepository{DB: db}

	tokenManager, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		errorLog.Fatal(err)
	}

	contactFeed := NewContactFeed(errorLog)

	// Services
	propertyService := &services.PropertyService{
		PropertyRepo: &propertyRepo,
		TypeRepo:     &typeRepo,
		CategoryRepo: &categoryRepo,
	}
	categoryService := &services.CategoryService{CategoryRepo: &categoryRepo, PropertyRepo: &propertyRepo}
	typeService := &services.TypeService{TypeRepo: &typeRepo, PropertyRepo: &propertyRepo}
	userService := &services.UserService{
		UserRepo:     &userRepo,
		TokenManager: tokenManager,
		SigningKey:   cfg.Auth.SigningKey,
		AccessTTL:    time.Duration(cfg.Auth.AccessTTLMinutes) * time.Minute,
	}
	pushService := &services.PushService{Client: fcmClient, UserRepo: &userRepo, ErrorLog: errorLog}
	contactService := &services.ContactService{
		ContactRepo: &contactRepo,
		Notifiers:   []services.ContactNotifier{contactFeed, pushService},
		ErrorLog:    errorLog,
	}
	favoriteService := &services.FavoriteService{FavoriteRepo: &favoriteRepo, PropertyRepo: &propertyRepo}

	return &application{
		cfg:          cfg,
		errorLog:     errorLog,
		infoLog:      infoLog,
		db:           db,
		redis:        redisClient,
		tokenManager: tokenManager,
		contactFeed:  contactFeed,
		userRepo:     &userRepo,

		propertyHandler: &handlers.PropertyHandler{Service: propertyService},
		categoryHandler: &handlers.CategoryHandler{Service: categoryService},
		typeHandler:     &handlers.TypeHandler{Service: typeService},
		userHandler:     &handlers.UserHandler{Service: userService},
		contactHandler:  &handlers.ContactHandler{Service: contactService},
		favoriteHandler: &handlers.FavoriteHandler{Service: favoriteService},
		uploadHandler:   &handlers.UploadHandler{},
	}
}
